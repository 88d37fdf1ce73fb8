package javaserial

const (
	streamMagic   = 0xaced
	streamVersion = 5
)

// Decoder turns a serialized stream's bytes into the sequence of top-level
// values it encodes. A Decoder is single-use: create one per stream with New
// or NewWithRegistry and call Decode exactly once.
type Decoder struct {
	r       *Reader
	handles handleTable
	reg     *Registry
	Debugf  func(format string, args ...any)
}

// New returns a Decoder for buf that looks up custom class-data parsers and
// post-processors in the process-wide DefaultRegistry.
func New(buf []byte) *Decoder {
	return NewWithRegistry(buf, DefaultRegistry())
}

// NewWithRegistry returns a Decoder for buf that uses reg instead of the
// default registry for custom class-data parsers and post-processors.
func NewWithRegistry(buf []byte, reg *Registry) *Decoder {
	return &Decoder{r: newReader(buf), reg: reg}
}

// Decode reads the stream header and then every top-level content item until
// the buffer is exhausted, returning them in order.
func (d *Decoder) Decode() ([]any, error) {
	magic, err := d.r.ReadU2()
	if err != nil {
		return nil, wrapErr("read magic", d.r.Pos(), err)
	}
	if magic != streamMagic {
		return nil, wrapErr("read magic", 0, ErrBadMagic)
	}
	version, err := d.r.ReadU2()
	if err != nil {
		return nil, wrapErr("read version", d.r.Pos(), err)
	}
	if version != streamVersion {
		return nil, wrapErr("read version", 2, ErrBadVersion)
	}

	var items []any
	for !d.r.AtEOF() {
		v, err := d.content()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// Decode decodes buf using the DefaultRegistry. It is a convenience
// equivalent to New(buf).Decode().
func Decode(buf []byte) ([]any, error) {
	return New(buf).Decode()
}

// debugf logs to Debugf if set, otherwise does nothing.
func (d *Decoder) debugf(format string, args ...any) {
	if d.Debugf != nil {
		d.Debugf(format, args...)
	}
}

// peekTag reads the next tag byte without any allow-list check.
func (d *Decoder) peekTag() (tag, error) {
	pos := d.r.Pos()
	b, err := d.r.ReadU1()
	if err != nil {
		return 0, wrapErr("read tag", pos, err)
	}
	if int(b) < tagBase || int(b)-tagBase >= int(tagCount) {
		return 0, wrapErr("read tag", pos, ErrUnknownTag)
	}
	return tag(int(b) - tagBase), nil
}

func tagAllowed(t tag, allowed []tag) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}

// content reads one top-level stream item: a tag byte followed by whatever
// that tag dictates. If allowed is non-empty, the read tag must be a member
// of it or ErrTagNotAllowed is returned — used to enforce the restricted
// grammar at class-description positions.
func (d *Decoder) content(allowed ...tag) (any, error) {
	start := d.r.Pos()
	t, err := d.peekTag()
	if err != nil {
		return nil, err
	}
	if !tagAllowed(t, allowed) {
		return nil, wrapErr("content", start, ErrTagNotAllowed)
	}
	d.debugf("content: tag=%s offset=%d", t, start)

	switch t {
	case tagNull:
		return nil, nil
	case tagReference:
		return d.readReference()
	case tagClassDesc, tagProxyClassDesc:
		return d.readClassDescFromTag(t)
	case tagObject:
		return d.readObject()
	case tagString:
		return d.readString(false)
	case tagLongString:
		return d.readString(true)
	case tagArray:
		return d.readArray()
	case tagClass:
		return d.readClass()
	case tagBlockData:
		return d.readBlockData(false)
	case tagBlockDataLong:
		return d.readBlockData(true)
	case tagEndBlockData:
		return EndBlock, nil
	case tagEnum:
		return d.readEnum()
	case tagReset, tagException:
		return nil, wrapErr("content", start, ErrUnsupported)
	default:
		return nil, wrapErr("content", start, ErrUnknownTag)
	}
}

// readReference reads a back-reference handle and resolves it against
// already-decoded values.
func (d *Decoder) readReference() (any, error) {
	pos := d.r.Pos()
	h, err := d.r.ReadU4()
	if err != nil {
		return nil, wrapErr("read reference", pos, err)
	}
	v, ok := d.handles.get(int(h))
	if !ok {
		return nil, wrapErr("resolve reference", pos, ErrUnknownTag)
	}
	return v, nil
}

// readString reads a String or LongString content item and assigns it a
// handle (strings are referenceable but never self-referential).
func (d *Decoder) readString(long bool) (string, error) {
	var s string
	var err error
	if long {
		s, err = d.r.ReadUTFLong()
	} else {
		s, err = d.r.ReadUTF()
	}
	if err != nil {
		return "", err
	}
	d.handles.add(s)
	return s, nil
}

// readBlockData reads a BlockData or BlockDataLong payload.
func (d *Decoder) readBlockData(long bool) (BlockData, error) {
	pos := d.r.Pos()
	var n int
	if long {
		n4, err := d.r.ReadU4()
		if err != nil {
			return nil, err
		}
		n = int(n4)
	} else {
		n1, err := d.r.ReadU1()
		if err != nil {
			return nil, err
		}
		n = int(n1)
	}
	b, err := d.r.ReadBytes(n)
	if err != nil {
		return nil, wrapErr("read block data", pos, err)
	}
	out := make(BlockData, len(b))
	copy(out, b)
	return out, nil
}

// readClass reads a Class content item: a class descriptor for a java.lang.Class
// instance itself, rather than for an object whose class it is.
func (d *Decoder) readClass() (*ClassDescriptor, error) {
	class, err := d.readClassDesc()
	if err != nil {
		return nil, err
	}
	d.handles.add(class)
	return class, nil
}

// readAnnotations reads a sequence of content items terminated by an
// EndBlockData tag, as used for both class-descriptor annotations and
// writeObject/writeExternal custom data.
func (d *Decoder) readAnnotations() ([]any, error) {
	var items []any
	for {
		v, err := d.content()
		if err != nil {
			return nil, err
		}
		if _, ok := v.(endBlockT); ok {
			return items, nil
		}
		items = append(items, v)
	}
}
