package javaserial

// readArray reads a TC_ARRAY content item: a class descriptor, a handle for
// the array itself, a signed element count, then that many elements whose
// type is determined by the class's array signature (e.g. "[I", "[[D",
// "[Ljava.lang.String;").
func (d *Decoder) readArray() (*Array, error) {
	class, err := d.readClassDesc()
	if err != nil {
		return nil, err
	}
	if class == nil || len(class.Name) < 2 || class.Name[0] != '[' {
		return nil, wrapErr("read array", d.r.Pos(), ErrUnsupported)
	}

	_, slot := d.handles.reserve()

	length, err := d.r.ReadI4()
	if err != nil {
		return nil, wrapErr("read array length", d.r.Pos(), err)
	}
	if length < 0 {
		return nil, wrapErr("read array length", d.r.Pos(), ErrUnsupported)
	}

	elemType := class.Name[1]
	elements := make([]any, length)
	arr := &Array{Class: class, Elements: elements}
	d.handles.fill(slot, arr)
	for i := range elements {
		v, err := d.readArrayElement(elemType)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}

	return arr, nil
}

// readArrayElement reads one array element of the given element type code.
func (d *Decoder) readArrayElement(elemType byte) (any, error) {
	pos := d.r.Pos()
	switch elemType {
	case 'B':
		v, err := d.r.ReadI1()
		return v, wrapErr("read byte element", pos, err)
	case 'C':
		v, err := d.r.ReadU2()
		return v, wrapErr("read char element", pos, err)
	case 'D':
		v, err := d.r.ReadFloat64()
		return v, wrapErr("read double element", pos, err)
	case 'F':
		v, err := d.r.ReadFloat32()
		return v, wrapErr("read float element", pos, err)
	case 'I':
		v, err := d.r.ReadI4()
		return v, wrapErr("read int element", pos, err)
	case 'J':
		v, err := d.r.ReadI8()
		return v, wrapErr("read long element", pos, err)
	case 'S':
		v, err := d.r.ReadI2()
		return v, wrapErr("read short element", pos, err)
	case 'Z':
		v, err := d.r.ReadU1()
		return v != 0, wrapErr("read boolean element", pos, err)
	case 'L', '[':
		return d.content()
	default:
		return nil, wrapErr("read array element", pos, ErrUnknownFieldType)
	}
}
