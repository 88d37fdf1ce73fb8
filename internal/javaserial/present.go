package javaserial

import "encoding/base64"

// ToJSONValue projects a decoded value (as returned by Decode) into a tree
// of plain maps, slices, and scalars suitable for encoding/json, since the
// decoded types themselves (Object, Array, Enum, BlockData) are not directly
// JSON-friendly: BlockData is base64-encoded, objects carry a "$class" key,
// and cyclic back-references are broken by projecting only the first
// encounter of a given pointer and a "$ref" placeholder thereafter.
func ToJSONValue(v any) any {
	return toJSONValue(v, make(map[any]bool))
}

func toJSONValue(v any, seen map[any]bool) any {
	switch t := v.(type) {
	case nil:
		return nil
	case endBlockT:
		return nil
	case BlockData:
		return base64.StdEncoding.EncodeToString(t)
	case *Object:
		if seen[t] {
			return map[string]any{"$ref": t.Class.Name}
		}
		seen[t] = true
		out := map[string]any{"$class": t.Class.Name}
		for _, name := range t.Fields.Names() {
			fv, _ := t.Fields.Get(name)
			out[name] = toJSONValue(fv, seen)
		}
		return out
	case *Array:
		if seen[t] {
			return map[string]any{"$ref": t.Class.Name}
		}
		seen[t] = true
		elems := make([]any, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = toJSONValue(e, seen)
		}
		return map[string]any{"$class": t.Class.Name, "elements": elems}
	case *Enum:
		return map[string]any{"$class": t.Class.Name, "name": t.Name}
	case *ClassDescriptor:
		return map[string]any{"$classDesc": t.Name, "serialVersionUID": t.SerialVersionUID}
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toJSONValue(e, seen)
		}
		return out
	default:
		return t
	}
}
