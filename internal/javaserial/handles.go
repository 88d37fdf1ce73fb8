package javaserial

// handleTable tracks every value assigned a handle during a decode, in
// creation order, so that later Reference tags can resolve back to them.
// Handles are dense integers counting up from baseHandle, so a slice
// indexed by (handle - baseHandle) is sufficient; there is no need for the
// teacher's map-backed registry here.
type handleTable struct {
	values []any
}

// reserve allocates the next handle before its value is fully decoded (used
// for class descriptors, objects, arrays, and enum constants, all of which
// must be referenceable by their own nested fields). It returns the handle
// and the slot index to fill in later via fill.
func (h *handleTable) reserve() (handle int, slot int) {
	slot = len(h.values)
	h.values = append(h.values, nil)
	return baseHandle + slot, slot
}

// fill sets the value at a slot previously returned by reserve.
func (h *handleTable) fill(slot int, value any) {
	h.values[slot] = value
}

// add reserves and immediately fills a handle for a value that has no
// internal self-references (strings, and the descriptor yielded by a Class
// item), returning the assigned handle.
func (h *handleTable) add(value any) int {
	handle, slot := h.reserve()
	h.fill(slot, value)
	return handle
}

// get resolves a handle to its value. ok is false for a handle that was
// never assigned (out of range) or that was reserved but never filled.
func (h *handleTable) get(handle int) (value any, ok bool) {
	slot := handle - baseHandle
	if slot < 0 || slot >= len(h.values) {
		return nil, false
	}
	return h.values[slot], h.values[slot] != nil
}
