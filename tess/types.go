package tess

// Point is a position in the plane. The sweep advances in increasing Y; X
// breaks ties, which simulates a slightly rotated coordinate system so that
// no two distinct points ever share a sweep position.
type Point struct {
	X, Y float64
}

// VertexID is a stable handle to a vertex position. Ids are assigned in
// insertion order; vertices synthesized at self-intersections extend the same
// id space and are never removed.
type VertexID int32

// SubPathID identifies a sub-path within a Path.
type SubPathID int32

// Side tags which boundary chain of a span a vertex belongs to.
type Side int

const (
	// SideLeft is the left boundary chain of a span.
	SideLeft Side = iota
	// SideRight is the right boundary chain of a span.
	SideRight
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// IsLeft reports whether s is the left side.
func (s Side) IsLeft() bool { return s == SideLeft }

// IsRight reports whether s is the right side.
func (s Side) IsRight() bool { return s == SideRight }

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// vertex pairs a position with its stable id while it travels through the
// sweep.
type vertex struct {
	pos Point
	id  VertexID
}
