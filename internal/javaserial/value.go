package javaserial

// BlockData is an opaque byte run embedded in the stream (the payload of a
// BlockData/BlockDataLong tag) and passed through undecoded.
type BlockData []byte

// endBlockT is the distinguished sentinel type returned for an
// EndBlockData tag. It is distinct from every other decoded value so it can
// never be mistaken for real content; it only ever appears while collecting
// an annotation block, never as a decoded value itself.
type endBlockT struct{}

// EndBlock is the single instance of endBlockT.
var EndBlock = endBlockT{}

// FieldDescriptor describes one field of a class: its primitive/object/array
// type code, its name, and — for L and [ fields — the element/class name.
type FieldDescriptor struct {
	Type      byte
	Name      string
	ClassName string
}

func (f FieldDescriptor) isReference() bool {
	return f.Type == 'L' || f.Type == '['
}

// ClassDescriptor is a parsed class descriptor: name, serialVersionUID,
// flags, ordered fields, trailing annotations, and a superclass chain.
type ClassDescriptor struct {
	Name             string
	SerialVersionUID string
	Flags            byte
	IsEnum           bool
	Fields           []FieldDescriptor
	Annotations      []any
	Super            *ClassDescriptor
}

// registryKey is the (className, serialVersionUID) key used to look up
// custom parsers and post-processors.
func (c *ClassDescriptor) registryKey() string {
	return c.Name + "@" + c.SerialVersionUID
}

// fieldEntry is one name/value pair in an OrderedFields.
type fieldEntry struct {
	Name  string
	Value any
}

// OrderedFields is an ordered name->value mapping. Insertion order is
// preserved; setting an existing name overwrites its value in place rather
// than moving it to the end, matching Java field-shadowing semantics (a more
// derived class's write of an inherited field name replaces, not appends).
type OrderedFields struct {
	entries []fieldEntry
	index   map[string]int
}

func newOrderedFields() OrderedFields {
	return OrderedFields{index: make(map[string]int)}
}

// Set assigns value to name, preserving the position of a pre-existing name.
func (o *OrderedFields) Set(name string, value any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[name]; ok {
		o.entries[i].Value = value
		return
	}
	o.index[name] = len(o.entries)
	o.entries = append(o.entries, fieldEntry{Name: name, Value: value})
}

// Get returns the value for name and whether it was present.
func (o OrderedFields) Get(name string) (any, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.entries[i].Value, true
}

// Names returns field names in insertion order.
func (o OrderedFields) Names() []string {
	names := make([]string, len(o.entries))
	for i, e := range o.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of fields.
func (o OrderedFields) Len() int { return len(o.entries) }

// Object is a decoded instance of a serializable (or externalizable) class.
// Fields is the flattened view (more-derived classes shadow their ancestors);
// Extends holds the unshadowed per-ancestor-class breakdown.
type Object struct {
	Class   *ClassDescriptor
	Fields  OrderedFields
	Extends map[string]OrderedFields
}

// Array is a decoded primitive or reference array, in declaration order.
type Array struct {
	Class    *ClassDescriptor
	Elements []any
}

// Enum is a decoded enum constant: its name plus the class descriptor of the
// specific enum constant class (which may be an anonymous per-constant
// subclass when the constant has a class body).
type Enum struct {
	Class *ClassDescriptor
	Name  string
}

// String lets an Enum compare naturally against its constant name.
func (e *Enum) String() string { return e.Name }
