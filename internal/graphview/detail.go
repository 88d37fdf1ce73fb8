package graphview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mabhi256/jserial/internal/javaserial"
)

// renderDetail formats the full breakdown of one decoded value: its
// flattened fields for an Object (plus the per-ancestor Extends view),
// its elements for an Array, or a short line for anything simpler.
func renderDetail(v any) string {
	switch t := v.(type) {
	case *javaserial.Object:
		return renderObjectDetail(t)
	case *javaserial.Array:
		return renderArrayDetail(t)
	case *javaserial.Enum:
		return fmt.Sprintf("%s\n\n%s",
			classStyle.Render(t.Class.Name),
			textStyle.Render("constant: "+t.Name))
	default:
		return textStyle.Render(fmt.Sprintf("%v", v))
	}
}

func renderObjectDetail(obj *javaserial.Object) string {
	var b strings.Builder
	fmt.Fprintln(&b, classStyle.Render(obj.Class.Name))
	fmt.Fprintf(&b, "serialVersionUID: %s\n\n", obj.Class.SerialVersionUID)

	fmt.Fprintln(&b, infoStyle.Render("Fields"))
	for _, name := range obj.Fields.Names() {
		val, _ := obj.Fields.Get(name)
		fmt.Fprintf(&b, "  %s = %s\n", name, formatValue(val))
	}

	if len(obj.Extends) > 1 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, infoStyle.Render("By ancestor class"))
		classNames := make([]string, 0, len(obj.Extends))
		for name := range obj.Extends {
			classNames = append(classNames, name)
		}
		sort.Strings(classNames)
		for _, name := range classNames {
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(name))
			level := obj.Extends[name]
			for _, fname := range level.Names() {
				val, _ := level.Get(fname)
				fmt.Fprintf(&b, "    %s = %s\n", fname, formatValue(val))
			}
		}
	}

	return b.String()
}

func renderArrayDetail(arr *javaserial.Array) string {
	var b strings.Builder
	fmt.Fprintln(&b, classStyle.Render(arr.Class.Name))
	fmt.Fprintf(&b, "%d elements\n\n", len(arr.Elements))
	for i, e := range arr.Elements {
		fmt.Fprintf(&b, "  [%d] %s\n", i, formatValue(e))
	}
	return b.String()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case javaserial.BlockData:
		return fmt.Sprintf("<%d bytes of block data>", len(t))
	case *javaserial.Object:
		return t.Class.Name + "{...}"
	case *javaserial.Array:
		return fmt.Sprintf("%s[%d]", t.Class.Name, len(t.Elements))
	case *javaserial.Enum:
		return t.Class.Name + "." + t.Name
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}
