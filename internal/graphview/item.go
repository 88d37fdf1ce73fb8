package graphview

import (
	"fmt"

	"github.com/mabhi256/jserial/internal/javaserial"
)

// valueItem wraps one top-level decoded value for display in the value
// list, implementing bubbles/list.Item.
type valueItem struct {
	index int
	value any
}

func (i valueItem) FilterValue() string {
	return i.title()
}

func (i valueItem) Title() string {
	return i.title()
}

func (i valueItem) Description() string {
	switch v := i.value.(type) {
	case *javaserial.Object:
		return fmt.Sprintf("%d fields", v.Fields.Len())
	case *javaserial.Array:
		return fmt.Sprintf("%d elements", len(v.Elements))
	case *javaserial.Enum:
		return v.Class.Name
	default:
		return ""
	}
}

func (i valueItem) title() string {
	switch v := i.value.(type) {
	case *javaserial.Object:
		return fmt.Sprintf("[%d] %s", i.index, v.Class.Name)
	case *javaserial.Array:
		return fmt.Sprintf("[%d] %s", i.index, v.Class.Name)
	case *javaserial.Enum:
		return fmt.Sprintf("[%d] %s.%s", i.index, v.Class.Name, v.Name)
	case string:
		return fmt.Sprintf("[%d] String %q", i.index, truncate(v, 40))
	case nil:
		return fmt.Sprintf("[%d] null", i.index)
	default:
		return fmt.Sprintf("[%d] %v", i.index, v)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
