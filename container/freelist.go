// Package container provides the arena-style containers used by the
// tessellation engine. All of them hand out small integer ids instead of
// pointers; traversal is table lookup, which keeps entities relocatable and
// lets the caller reuse storage across runs.
package container

// ID is the constraint for the typed integer handles used throughout this
// package. Using a distinct named type per id space (vertex ids, span ids,
// and so on) means the compiler rejects indexing one space with another.
type ID interface {
	~int | ~int32 | ~uint32
}

// Marks a slot as currently occupied. Any other value in a slot's next field
// means the slot is on the free list.
const slotLive int32 = -2

type freeSlot[T any] struct {
	val  T
	next int32
}

// FreeList is a slice-backed arena with an intrusive free list. Add returns a
// stable id; Remove releases the slot without shifting any other element, so
// every other id stays valid. A freed slot's id must not be used again until
// that slot has been handed back out by Add. The zero value is an empty,
// ready-to-use list.
type FreeList[I ID, T any] struct {
	slots []freeSlot[T]
	// Head of the free list, stored as the slot id plus one so that zero
	// means empty. Freed slots chain through their next fields with the same
	// encoding.
	free int32
}

// NewFreeList creates an empty FreeList with room for capacity elements.
func NewFreeList[I ID, T any](capacity int) *FreeList[I, T] {
	return &FreeList[I, T]{slots: make([]freeSlot[T], 0, capacity)}
}

// Add stores val and returns its id, reusing a freed slot when one exists.
func (f *FreeList[I, T]) Add(val T) I {
	if f.free == 0 {
		f.slots = append(f.slots, freeSlot[T]{val: val, next: slotLive})
		return I(len(f.slots) - 1)
	}
	id := f.free - 1
	f.free = f.slots[id].next
	f.slots[id] = freeSlot[T]{val: val, next: slotLive}
	return I(id)
}

// Remove pushes the slot onto the free list. The value is left in place until
// the slot is reused; callers must not touch it through a stale id.
func (f *FreeList[I, T]) Remove(id I) {
	if f.slots[id].next != slotLive {
		panic("container: remove of a freed FreeList slot")
	}
	f.slots[id].next = f.free
	f.free = int32(id) + 1
}

// Get returns a pointer to the value stored at id. It panics if the slot is
// currently on the free list, since reading through a stale id is always a
// bug in the caller.
func (f *FreeList[I, T]) Get(id I) *T {
	if f.slots[id].next != slotLive {
		panic("container: access to a freed FreeList slot")
	}
	return &f.slots[id].val
}

// Live reports whether id refers to an occupied slot.
func (f *FreeList[I, T]) Live(id I) bool {
	return int(id) < len(f.slots) && f.slots[id].next == slotLive
}

// Len returns the number of slots, live or free.
func (f *FreeList[I, T]) Len() int { return len(f.slots) }

// Clear releases every slot while keeping the allocated storage.
func (f *FreeList[I, T]) Clear() {
	f.slots = f.slots[:0]
	f.free = 0
}
