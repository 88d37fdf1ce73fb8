package javaserial

// readEnum reads a TC_ENUM content item: a class descriptor, a handle for
// the constant itself, then the constant's name. The handle is reserved
// before the name is read so the constant's handle precedes its name
// string's, in stream order; the slot stays empty until the name has been
// read, so a reference to the constant from within its own name fails.
func (d *Decoder) readEnum() (*Enum, error) {
	class, err := d.readClassDesc()
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, wrapErr("read enum", d.r.Pos(), ErrUnknownClassInStream)
	}

	_, slot := d.handles.reserve()

	v, err := d.content(tagString, tagLongString, tagReference)
	if err != nil {
		return nil, err
	}
	name, ok := v.(string)
	if !ok {
		return nil, wrapErr("read enum constant name", d.r.Pos(), ErrUnsupported)
	}

	e := &Enum{Class: class, Name: name}
	d.handles.fill(slot, e)
	return e, nil
}
