package javaserial

const (
	scWriteMethod    = 0x01
	scSerializable   = 0x02
	scExternalizable = 0x04
	scBlockData      = 0x08
	scEnum           = 0x10
)

// readClassDesc reads whatever appears at a class-description position: a
// real class descriptor, a proxy descriptor (unsupported), null, or a back
// reference to a previously-seen descriptor.
func (d *Decoder) readClassDesc() (*ClassDescriptor, error) {
	v, err := d.content(classDescTags...)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	cd, ok := v.(*ClassDescriptor)
	if !ok {
		return nil, wrapErr("read class desc", d.r.Pos(), ErrUnknownClassInStream)
	}
	return cd, nil
}

// readClassDescFromTag reads the body of a ClassDesc or ProxyClassDesc
// content item, the tag byte having already been consumed by content.
func (d *Decoder) readClassDescFromTag(t tag) (*ClassDescriptor, error) {
	if t == tagProxyClassDesc {
		return nil, wrapErr("read class desc", d.r.Pos(), ErrUnsupported)
	}

	_, slot := d.handles.reserve()

	name, err := d.r.ReadUTF()
	if err != nil {
		return nil, wrapErr("read class name", d.r.Pos(), err)
	}
	uid, err := d.r.ReadHexID(8)
	if err != nil {
		return nil, wrapErr("read serialVersionUID", d.r.Pos(), err)
	}
	flags, err := d.r.ReadU1()
	if err != nil {
		return nil, wrapErr("read class flags", d.r.Pos(), err)
	}

	class := &ClassDescriptor{
		Name:             name,
		SerialVersionUID: uid,
		Flags:            flags,
		IsEnum:           flags&scEnum != 0,
	}
	d.handles.fill(slot, class)

	numFields, err := d.r.ReadI2()
	if err != nil {
		return nil, wrapErr("read field count", d.r.Pos(), err)
	}
	if numFields < 0 {
		return nil, wrapErr("read field count", d.r.Pos(), ErrUnsupported)
	}
	fields := make([]FieldDescriptor, 0, numFields)
	for i := 0; i < int(numFields); i++ {
		fd, err := d.readFieldDescriptor()
		if err != nil {
			return nil, err
		}
		fields = append(fields, fd)
	}
	class.Fields = fields

	annotations, err := d.readAnnotations()
	if err != nil {
		return nil, err
	}
	class.Annotations = annotations

	super, err := d.readClassDesc()
	if err != nil {
		return nil, err
	}
	class.Super = super

	return class, nil
}

// readFieldDescriptor reads one field's type code, name, and — for object
// and array fields — its class name.
func (d *Decoder) readFieldDescriptor() (FieldDescriptor, error) {
	typeCode, err := d.r.ReadU1()
	if err != nil {
		return FieldDescriptor{}, wrapErr("read field type", d.r.Pos(), err)
	}
	name, err := d.r.ReadUTF()
	if err != nil {
		return FieldDescriptor{}, wrapErr("read field name", d.r.Pos(), err)
	}
	fd := FieldDescriptor{Type: typeCode, Name: name}
	if fd.isReference() {
		className, err := d.readTypeString()
		if err != nil {
			return FieldDescriptor{}, err
		}
		fd.ClassName = className
	} else {
		switch typeCode {
		case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		default:
			return FieldDescriptor{}, wrapErr("read field type", d.r.Pos(), ErrUnknownFieldType)
		}
	}
	return fd, nil
}

// readTypeString reads the class-name/signature string attached to an
// object or array field descriptor, which is itself encoded as a content
// item (a String, LongString, or a back reference to one).
func (d *Decoder) readTypeString() (string, error) {
	v, err := d.content(tagString, tagLongString, tagReference)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrapErr("read type string", d.r.Pos(), ErrUnsupported)
	}
	return s, nil
}
