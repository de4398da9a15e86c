package container

// IDVec is a slice indexed by a typed integer id rather than a raw int. The
// id type parameter documents which id space the container belongs to and
// keeps, say, a vertex id from ever indexing span storage.
type IDVec[I ID, T any] struct {
	data []T
}

// NewIDVec creates an empty IDVec with room for capacity elements.
func NewIDVec[I ID, T any](capacity int) IDVec[I, T] {
	return IDVec[I, T]{data: make([]T, 0, capacity)}
}

// Push appends a value and returns its id.
func (v *IDVec[I, T]) Push(val T) I {
	v.data = append(v.data, val)
	return I(len(v.data) - 1)
}

// Get returns the value stored at id.
func (v *IDVec[I, T]) Get(id I) T { return v.data[id] }

// At returns a pointer to the value stored at id for in-place mutation.
func (v *IDVec[I, T]) At(id I) *T { return &v.data[id] }

// Set stores val at id, growing the container with zero values when id is
// past the current length.
func (v *IDVec[I, T]) Set(id I, val T) {
	for len(v.data) <= int(id) {
		var zero T
		v.data = append(v.data, zero)
	}
	v.data[id] = val
}

// Resize grows or truncates to exactly n elements, zero-filling new slots.
func (v *IDVec[I, T]) Resize(n int) {
	if n <= len(v.data) {
		v.data = v.data[:n]
		return
	}
	var zero T
	for len(v.data) < n {
		v.data = append(v.data, zero)
	}
}

// Len returns the number of elements.
func (v *IDVec[I, T]) Len() int { return len(v.data) }

// Clear empties the container while keeping the allocated storage.
func (v *IDVec[I, T]) Clear() { v.data = v.data[:0] }

// Slice exposes the backing slice as an IDSlice.
func (v *IDVec[I, T]) Slice() IDSlice[I, T] { return IDSlice[I, T](v.data) }

// IDSlice is a read-only view over contiguous data indexed by typed id.
type IDSlice[I ID, T any] []T

// Get returns the value stored at id.
func (s IDSlice[I, T]) Get(id I) T { return s[id] }

// Len returns the number of elements.
func (s IDSlice[I, T]) Len() int { return len(s) }
