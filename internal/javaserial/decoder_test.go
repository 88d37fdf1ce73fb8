package javaserial

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamBuilder assembles a serialized stream byte by byte for tests,
// so fixtures read the same way the format is described rather than as
// opaque fixture blobs.
type streamBuilder struct {
	buf []byte
}

func newStream() *streamBuilder {
	return &streamBuilder{}
}

func (s *streamBuilder) header() *streamBuilder {
	return s.u2(streamMagic).u2(streamVersion)
}

func (s *streamBuilder) raw(b []byte) *streamBuilder {
	s.buf = append(s.buf, b...)
	return s
}

func (s *streamBuilder) u1(v byte) *streamBuilder {
	return s.raw([]byte{v})
}

func (s *streamBuilder) u2(v uint16) *streamBuilder {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return s.raw(b[:])
}

func (s *streamBuilder) u4(v uint32) *streamBuilder {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return s.raw(b[:])
}

func (s *streamBuilder) u8(v uint64) *streamBuilder {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return s.raw(b[:])
}

func (s *streamBuilder) f32(v float32) *streamBuilder {
	return s.u4(math.Float32bits(v))
}

func (s *streamBuilder) f64(v float64) *streamBuilder {
	return s.u8(math.Float64bits(v))
}

func (s *streamBuilder) utf(str string) *streamBuilder {
	return s.u2(uint16(len(str))).raw([]byte(str))
}

func (s *streamBuilder) tag(t tag) *streamBuilder {
	return s.u1(tagBase + byte(t))
}

func (s *streamBuilder) hexID(hex string) *streamBuilder {
	var b [8]byte
	for i := 0; i < 8; i++ {
		var hi, lo byte
		hi, lo = hex[i*2], hex[i*2+1]
		b[i] = unhex(hi)<<4 | unhex(lo)
	}
	return s.raw(b[:])
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}

// nullClassDesc writes a Null tag, usable wherever a class-description
// position (such as a superclass slot) is required.
func (s *streamBuilder) nullClassDesc() *streamBuilder {
	return s.tag(tagNull)
}

type fieldSpec struct {
	typ       byte
	name      string
	className string
}

// classDesc writes a full ClassDesc content item: tag, name, uid, flags,
// field table, an empty annotation block, and super (defaulting to null via
// the writeSuper callback).
func (s *streamBuilder) classDesc(name, uid string, flags byte, fields []fieldSpec, writeSuper func(*streamBuilder)) *streamBuilder {
	s.tag(tagClassDesc).utf(name).hexID(uid).u1(flags).u2(uint16(len(fields)))
	for _, f := range fields {
		s.u1(f.typ).utf(f.name)
		if f.typ == 'L' || f.typ == '[' {
			s.tag(tagString).utf(f.className)
		}
	}
	s.tag(tagEndBlockData)
	if writeSuper == nil {
		s.nullClassDesc()
	} else {
		writeSuper(s)
	}
	return s
}

func (s *streamBuilder) bytes() []byte {
	return s.buf
}

// blockData writes a short-form BlockData content item.
func (s *streamBuilder) blockData(b []byte) *streamBuilder {
	return s.tag(tagBlockData).u1(byte(len(b))).raw(b)
}

func decodeAll(t *testing.T, buf []byte) []any {
	t.Helper()
	items, err := Decode(buf)
	require.NoError(t, err)
	return items
}

func TestReaderPrimitives(t *testing.T) {
	r := newReader([]byte{0x01, 0x02, 0x03, 0x04, 0xFF})
	u1, err := r.ReadU1()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u1)

	u2, err := r.ReadU2()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), u2)

	i1, err := r.ReadI1()
	require.NoError(t, err)
	assert.Equal(t, int8(4), i1)

	_, err = r.ReadU2()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrematureEnd))
}

func TestDecodeString(t *testing.T) {
	buf := newStream().header().tag(tagString).utf("hello").bytes()
	items := decodeAll(t, buf)
	require.Len(t, items, 1)
	assert.Equal(t, "hello", items[0])
}

func TestDecodeLongString(t *testing.T) {
	payload := strings.Repeat("x", 131072)
	buf := newStream().header().tag(tagLongString).u8(uint64(len(payload))).raw([]byte(payload)).bytes()
	items := decodeAll(t, buf)
	require.Len(t, items, 1)
	s := items[0].(string)
	assert.Len(t, s, 131072)
	assert.True(t, strings.HasPrefix(s, "x"))
	assert.True(t, strings.HasSuffix(s, "x"))
}

func TestDecodePrimitiveObjectFields(t *testing.T) {
	fields := []fieldSpec{{typ: 'I', name: "x"}, {typ: 'Z', name: "flag"}}
	b := newStream().header().tag(tagObject)
	b.classDesc("Sample", "0000123456789abc", scSerializable, fields, nil)
	b.u4(42).u1(1)
	items := decodeAll(t, b.bytes())
	require.Len(t, items, 1)
	obj := items[0].(*Object)
	assert.Equal(t, "Sample", obj.Class.Name)
	assert.Equal(t, "0000123456789abc", obj.Class.SerialVersionUID)
	x, ok := obj.Fields.Get("x")
	require.True(t, ok)
	assert.Equal(t, int32(42), x)
	flag, ok := obj.Fields.Get("flag")
	require.True(t, ok)
	assert.Equal(t, true, flag)
	level, ok := obj.Extends["Sample"]
	require.True(t, ok)
	lx, _ := level.Get("x")
	assert.Equal(t, int32(42), lx)
}

func TestDecodeBackReference(t *testing.T) {
	b := newStream().header()
	b.tag(tagString).utf("shared")
	b.tag(tagReference).u4(baseHandle)
	items := decodeAll(t, b.bytes())
	require.Len(t, items, 2)
	assert.Equal(t, "shared", items[0])
	assert.Equal(t, "shared", items[1])
}

func TestDecodeInheritance(t *testing.T) {
	baseFields := []fieldSpec{{typ: 'I', name: "foo"}}
	derivedFields := []fieldSpec{{typ: 'I', name: "foo"}}

	b := newStream().header().tag(tagObject)
	b.classDesc("Derived", "00000000deadbeef", scSerializable, derivedFields, func(s *streamBuilder) {
		s.classDesc("Base", "00000000cafebabe", scSerializable, baseFields, nil)
	})
	// class data written root (Base) first, then Derived, per the
	// inheritance chain order.
	b.u4(123) // Base.foo
	b.u4(345) // Derived.foo

	items := decodeAll(t, b.bytes())
	require.Len(t, items, 1)
	obj := items[0].(*Object)

	baseLevel := obj.Extends["Base"]
	baseFoo, _ := baseLevel.Get("foo")
	assert.Equal(t, int32(123), baseFoo)

	derivedLevel := obj.Extends["Derived"]
	derivedFoo, _ := derivedLevel.Get("foo")
	assert.Equal(t, int32(345), derivedFoo)

	flatFoo, _ := obj.Fields.Get("foo")
	assert.Equal(t, int32(345), flatFoo, "leaf class value must shadow the ancestor's")
}

func TestDecodeCustomAnnotations(t *testing.T) {
	b := newStream().header().tag(tagObject)
	b.classDesc("Custom", "0000000000000001", scSerializable|scWriteMethod, nil, nil)
	b.tag(tagString).utf("foo=12345")
	b.tag(tagString).utf(`bar="Hello, World!"`)
	b.tag(tagEndBlockData)

	items := decodeAll(t, b.bytes())
	require.Len(t, items, 1)
	obj := items[0].(*Object)
	raw, ok := obj.Fields.Get(annotationsKey)
	require.True(t, ok)
	annotations := raw.([]any)
	require.Len(t, annotations, 2)
	assert.Equal(t, "foo=12345", annotations[0])
	assert.Equal(t, `bar="Hello, World!"`, annotations[1])
}

// TestDecodeRegisteredParserReadsTrailingAnnotations covers mode 0x03 with a
// registered custom parser: the parser consumes the leading block data, and
// the decoder must still read the trailing annotation block afterward and
// store it under the reserved "@" key rather than leaving it unconsumed.
func TestDecodeRegisteredParserReadsTrailingAnnotations(t *testing.T) {
	var reg Registry
	require.NoError(t, reg.RegisterParser("CustomWithParser", "0000000000000004",
		func(d *Decoder, class *ClassDescriptor) (OrderedFields, error) {
			v, err := d.content(tagBlockData)
			if err != nil {
				return OrderedFields{}, err
			}
			fields := newOrderedFields()
			fields.Set("count", int(v.(BlockData)[0]))
			return fields, nil
		}))

	b := newStream().header().tag(tagObject)
	b.classDesc("CustomWithParser", "0000000000000004", scSerializable|scWriteMethod, nil, nil)
	b.blockData([]byte{5})
	b.tag(tagString).utf("trailing")
	b.tag(tagEndBlockData)

	items, err := NewWithRegistry(b.bytes(), &reg).Decode()
	require.NoError(t, err)
	require.Len(t, items, 1)
	obj := items[0].(*Object)

	count, ok := obj.Fields.Get("count")
	require.True(t, ok)
	assert.Equal(t, 5, count)

	raw, ok := obj.Fields.Get(annotationsKey)
	require.True(t, ok)
	annotations := raw.([]any)
	require.Len(t, annotations, 1)
	assert.Equal(t, "trailing", annotations[0])
}

func TestDecodeEnum(t *testing.T) {
	b := newStream().header().tag(tagEnum)
	b.classDesc("Suit", "0000000000000002", scEnum|scSerializable, nil, nil)
	b.tag(tagString).utf("HEARTS")

	items := decodeAll(t, b.bytes())
	require.Len(t, items, 1)
	e := items[0].(*Enum)
	assert.True(t, e.Class.IsEnum)
	assert.Equal(t, "Suit", e.Class.Name)
	assert.Equal(t, "HEARTS", e.Name)
}

func TestDecodePrimitiveArray(t *testing.T) {
	b := newStream().header().tag(tagArray)
	b.classDesc("[I", "0000000000000003", 0, nil, nil)
	b.u4(3)
	b.u4(12).u4(34).u4(56)

	items := decodeAll(t, b.bytes())
	require.Len(t, items, 1)
	arr := items[0].(*Array)
	assert.Equal(t, "[I", arr.Class.Name)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, []any{int32(12), int32(34), int32(56)}, arr.Elements)
}

func TestDecodeBadMagic(t *testing.T) {
	buf := newStream().u2(0x1234).u2(streamVersion).bytes()
	_, err := Decode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadMagic))
}

func TestDecodeBadVersion(t *testing.T) {
	buf := newStream().u2(streamMagic).u2(7).bytes()
	_, err := Decode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadVersion))
}

func TestDecodePrematureEnd(t *testing.T) {
	buf := newStream().header().tag(tagString).u2(10).raw([]byte("abc")).bytes()
	_, err := Decode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrematureEnd))
}
