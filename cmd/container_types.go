package cmd

import (
	"encoding/binary"
	"fmt"

	"github.com/mabhi256/jserial/internal/javaserial"
)

// registerContainerTypes seeds reg with post-processors for java.util.ArrayList
// and java.util.HashMap, as a worked example of the (className,
// serialVersionUID) registry contract — not a claim of a complete built-in
// collections catalog.
func registerContainerTypes(reg *javaserial.Registry) {
	must(reg.RegisterPostProcessor("java.util.ArrayList", "7881d21d99c7619d", arrayListPostProcessor))
	must(reg.RegisterPostProcessor("java.util.HashMap", "0507dac1c31660d1", hashMapPostProcessor))
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("container-types registration: %v", err))
	}
}

// arrayListPostProcessor reads ArrayList's writeObject annotation stream: a
// leading block of raw bytes holding the element count, followed by that
// many element content items.
func arrayListPostProcessor(obj *javaserial.Object) error {
	raw, ok := obj.Fields.Get("@")
	if !ok {
		return nil
	}
	items, _ := raw.([]any)
	count, rest, err := readLeadingInt(items)
	if err != nil {
		return nil // not in the expected shape; leave annotations untouched
	}
	if count > len(rest) {
		count = len(rest)
	}
	elements := append([]any(nil), rest[:count]...)
	obj.Fields.Set("elements", elements)
	return nil
}

// hashMapPostProcessor reads HashMap's writeObject annotation stream: a
// leading block of raw bytes holding (bucket count, entry count), followed
// by that many (key, value) content item pairs.
func hashMapPostProcessor(obj *javaserial.Object) error {
	raw, ok := obj.Fields.Get("@")
	if !ok {
		return nil
	}
	items, _ := raw.([]any)
	if len(items) == 0 {
		return nil
	}
	block, ok := items[0].(javaserial.BlockData)
	if !ok || len(block) < 8 {
		return nil
	}
	size := int(binary.BigEndian.Uint32(block[4:8]))
	rest := items[1:]
	if size*2 > len(rest) {
		size = len(rest) / 2
	}
	type entry struct {
		Key   any
		Value any
	}
	entries := make([]entry, 0, size)
	for i := 0; i < size; i++ {
		entries = append(entries, entry{Key: rest[2*i], Value: rest[2*i+1]})
	}
	obj.Fields.Set("entries", entries)
	return nil
}

// readLeadingInt pulls a big-endian int32 out of a leading BlockData item,
// returning it along with the remaining annotation items.
func readLeadingInt(items []any) (int, []any, error) {
	if len(items) == 0 {
		return 0, nil, fmt.Errorf("no annotation items")
	}
	block, ok := items[0].(javaserial.BlockData)
	if !ok || len(block) < 4 {
		return 0, nil, fmt.Errorf("leading item is not a 4+ byte block")
	}
	return int(binary.BigEndian.Uint32(block[:4])), items[1:], nil
}
