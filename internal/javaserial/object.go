package javaserial

// annotationsKey is the reserved field name under which a class level's
// writeObject/writeExternal annotation data is stored.
const annotationsKey = "@"

// readObject reads a TC_OBJECT content item: a class descriptor followed by
// the object's class data, one level per class in the inheritance chain
// from the root ancestor down to the object's own class.
func (d *Decoder) readObject() (*Object, error) {
	class, err := d.readClassDesc()
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, wrapErr("read object", d.r.Pos(), ErrUnknownClassInStream)
	}

	_, slot := d.handles.reserve()

	obj := &Object{
		Class:   class,
		Fields:  newOrderedFields(),
		Extends: make(map[string]OrderedFields),
	}
	d.handles.fill(slot, obj)

	chain := ancestorChain(class)
	for _, level := range chain {
		levelFields, err := d.readClassData(level)
		if err != nil {
			return nil, err
		}
		obj.Extends[level.Name] = levelFields
		for _, name := range levelFields.Names() {
			v, _ := levelFields.Get(name)
			obj.Fields.Set(name, v)
		}
	}

	if post, ok := d.reg.postProcessorFor(class.registryKey()); ok {
		if err := post(obj); err != nil {
			return nil, wrapErr("post-process object", d.r.Pos(), err)
		}
	}

	return obj, nil
}

// ancestorChain returns class and its ancestors ordered from the topmost
// superclass down to class itself — the order in which Java writes (and
// expects to read) per-class object data.
func ancestorChain(class *ClassDescriptor) []*ClassDescriptor {
	var chain []*ClassDescriptor
	for c := class; c != nil; c = c.Super {
		chain = append(chain, c)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// readClassData reads one class level's worth of object data, dispatching
// on the class's serialization mode flags.
func (d *Decoder) readClassData(class *ClassDescriptor) (OrderedFields, error) {
	fields := newOrderedFields()

	if class.Flags&scExternalizable != 0 {
		if class.Flags&scBlockData == 0 {
			return fields, wrapErr("read class data", d.r.Pos(), ErrUnsupported)
		}
		annotations, err := d.readAnnotations()
		if err != nil {
			return fields, err
		}
		if len(annotations) > 0 {
			fields.Set(annotationsKey, annotations)
		}
		return fields, nil
	}

	for _, fd := range class.Fields {
		v, err := d.readFieldValue(fd)
		if err != nil {
			return fields, err
		}
		fields.Set(fd.Name, v)
	}

	if class.Flags&scWriteMethod == 0 {
		return fields, nil
	}

	if parser, ok := d.reg.parserFor(class.registryKey()); ok {
		custom, err := parser(d, class)
		if err != nil {
			return fields, wrapErr("custom class data", d.r.Pos(), err)
		}
		for _, name := range custom.Names() {
			v, _ := custom.Get(name)
			fields.Set(name, v)
		}
	}

	annotations, err := d.readAnnotations()
	if err != nil {
		return fields, err
	}
	if len(annotations) > 0 {
		fields.Set(annotationsKey, annotations)
	}
	return fields, nil
}

// readFieldValue reads one declared field's value: a primitive read directly
// off the wire, or a reference/array read as a nested content item.
func (d *Decoder) readFieldValue(fd FieldDescriptor) (any, error) {
	pos := d.r.Pos()
	switch fd.Type {
	case 'B':
		v, err := d.r.ReadI1()
		return v, wrapErr("read byte field", pos, err)
	case 'C':
		v, err := d.r.ReadU2()
		return v, wrapErr("read char field", pos, err)
	case 'D':
		v, err := d.r.ReadFloat64()
		return v, wrapErr("read double field", pos, err)
	case 'F':
		v, err := d.r.ReadFloat32()
		return v, wrapErr("read float field", pos, err)
	case 'I':
		v, err := d.r.ReadI4()
		return v, wrapErr("read int field", pos, err)
	case 'J':
		v, err := d.r.ReadI8()
		return v, wrapErr("read long field", pos, err)
	case 'S':
		v, err := d.r.ReadI2()
		return v, wrapErr("read short field", pos, err)
	case 'Z':
		v, err := d.r.ReadU1()
		return v != 0, wrapErr("read boolean field", pos, err)
	case 'L', '[':
		return d.content()
	default:
		return nil, wrapErr("read field value", pos, ErrUnknownFieldType)
	}
}
