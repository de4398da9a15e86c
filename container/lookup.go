package container

// IDLookupTable maps stable ids to offsets in a dense, contiguous range.
// Adding hands out an id; removing compacts the dense range by swapping the
// removed entry with the last one, so both operations are O(1) and no
// surviving id is ever invalidated. This is the structure to reach for when a
// set of live entities needs stable handles and cache-friendly iteration at
// the same time. The zero value is an empty, ready-to-use table.
type IDLookupTable[I ID] struct {
	// denseToID[offset] = id occupying that dense slot.
	denseToID []I
	// idToDense[id] = dense offset, or the free-list chain when the id is
	// released. The chain uses the id-plus-one encoding described on free.
	idToDense []int32
	// Head of the free id list, stored as the id plus one so that zero means
	// empty.
	free int32
}

// NewIDLookupTable creates an empty table with room for capacity entries.
func NewIDLookupTable[I ID](capacity int) *IDLookupTable[I] {
	return &IDLookupTable[I]{
		denseToID: make([]I, 0, capacity),
		idToDense: make([]int32, 0, capacity),
	}
}

// Add allocates a new id mapped to the end of the dense range.
func (t *IDLookupTable[I]) Add() I {
	if t.free == 0 {
		id := I(len(t.idToDense))
		t.idToDense = append(t.idToDense, int32(len(t.denseToID)))
		t.denseToID = append(t.denseToID, id)
		return id
	}
	id := t.free - 1
	t.free = t.idToDense[id]
	t.idToDense[id] = int32(len(t.denseToID))
	t.denseToID = append(t.denseToID, I(id))
	return I(id)
}

// Remove releases id, swapping its dense slot with the last occupied slot and
// fixing up the swapped entry's back-pointer.
func (t *IDLookupTable[I]) Remove(id I) {
	o := t.idToDense[id]
	last := len(t.denseToID) - 1
	if int(o) != last {
		moved := t.denseToID[last]
		t.idToDense[moved] = o
		t.denseToID[o] = moved
	}
	t.denseToID = t.denseToID[:last]
	t.idToDense[id] = t.free
	t.free = int32(id) + 1
}

// Lookup returns the dense offset currently assigned to id.
func (t *IDLookupTable[I]) Lookup(id I) int { return int(t.idToDense[id]) }

// IDForOffset returns the id occupying the given dense offset.
func (t *IDLookupTable[I]) IDForOffset(offset int) I { return t.denseToID[offset] }

// SwapOffsets exchanges the entries at two dense offsets in place. Every id
// keeps resolving to its entry; only the iteration order changes.
func (t *IDLookupTable[I]) SwapOffsets(o1, o2 int) {
	t.denseToID[o1], t.denseToID[o2] = t.denseToID[o2], t.denseToID[o1]
	t.idToDense[t.denseToID[o1]] = int32(o1)
	t.idToDense[t.denseToID[o2]] = int32(o2)
}

// SwapIDs exchanges the dense positions of two ids.
func (t *IDLookupTable[I]) SwapIDs(id1, id2 I) {
	t.SwapOffsets(t.Lookup(id1), t.Lookup(id2))
}

// Len returns the number of live entries.
func (t *IDLookupTable[I]) Len() int { return len(t.denseToID) }

// Clear drops every entry while keeping the allocated storage.
func (t *IDLookupTable[I]) Clear() {
	t.denseToID = t.denseToID[:0]
	t.idToDense = t.idToDense[:0]
	t.free = 0
}
