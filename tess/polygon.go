package tess

import (
	"math"

	"github.com/pathfill/pathfill/container"
)

// PointID addresses a logical position within one polygon's vertex sequence.
// Unlike VertexID it is not stable: inserting or removing shifts every point
// id after the mutation, so callers must not retain point ids across
// structural edits.
type PointID int32

// PolygonID selects a polygon inside a ComplexPolygon: 0 is the outer
// boundary, 1..n are the holes.
type PolygonID int32

// ComplexPointID addresses a point across the boundary/hole split so that
// algorithms can circulate over any contour of a ComplexPolygon uniformly.
type ComplexPointID struct {
	Polygon PolygonID
	Point   PointID
}

// WindingOrder is the rotational sense of a closed polygon.
type WindingOrder int

const (
	Clockwise WindingOrder = iota
	CounterClockwise
)

func (w WindingOrder) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// PolygonView is a read-only circular index sequence over vertex ids.
type PolygonView []VertexID

// Vertex returns the vertex id at point.
func (v PolygonView) Vertex(point PointID) VertexID { return v[point] }

// Next returns the point after point, wrapping.
func (v PolygonView) Next(point PointID) PointID {
	return PointID((int(point) + 1) % len(v))
}

// Previous returns the point before point, wrapping.
func (v PolygonView) Previous(point PointID) PointID {
	return PointID((int(point) + len(v) - 1) % len(v))
}

// NextVertex returns the vertex id after point.
func (v PolygonView) NextVertex(point PointID) VertexID { return v[v.Next(point)] }

// PreviousVertex returns the vertex id before point.
func (v PolygonView) PreviousVertex(point PointID) VertexID { return v[v.Previous(point)] }

// NumVertices returns the number of points.
func (v PolygonView) NumVertices() int { return len(v) }

// Polygon owns a circular vertex id sequence.
type Polygon struct {
	Vertices []VertexID
}

// PolygonFromRange builds a polygon over the consecutive ids [first,
// first+count).
func PolygonFromRange(first VertexID, count int) Polygon {
	ids := make([]VertexID, count)
	for i := range ids {
		ids[i] = first + VertexID(i)
	}
	return Polygon{Vertices: ids}
}

// View returns a read-only view of the sequence.
func (p *Polygon) View() PolygonView { return PolygonView(p.Vertices) }

// PushVertex appends a vertex id and returns its point id.
func (p *Polygon) PushVertex(v VertexID) PointID {
	p.Vertices = append(p.Vertices, v)
	return PointID(len(p.Vertices) - 1)
}

// InsertVertex inserts a vertex id at point, shifting later points right.
func (p *Polygon) InsertVertex(point PointID, v VertexID) {
	p.Vertices = append(p.Vertices, 0)
	copy(p.Vertices[point+1:], p.Vertices[point:])
	p.Vertices[point] = v
}

// RemoveVertex removes and returns the vertex id at point, shifting later
// points left.
func (p *Polygon) RemoveVertex(point PointID) VertexID {
	v := p.Vertices[point]
	p.Vertices = append(p.Vertices[:point], p.Vertices[point+1:]...)
	return v
}

// Reverse returns the polygon with its winding flipped.
func (p *Polygon) Reverse() Polygon {
	out := Polygon{Vertices: make([]VertexID, len(p.Vertices))}
	for i, v := range p.Vertices {
		out.Vertices[len(p.Vertices)-1-i] = v
	}
	return out
}

// ComplexPolygon composes one outer polygon with zero or more holes,
// addressable as a single point space.
type ComplexPolygon struct {
	Main  Polygon
	Holes []Polygon
}

// Polygon returns the polygon selected by id.
func (c *ComplexPolygon) Polygon(id PolygonID) *Polygon {
	if id == 0 {
		return &c.Main
	}
	return &c.Holes[id-1]
}

// NumPolygons returns 1 + the number of holes.
func (c *ComplexPolygon) NumPolygons() int { return 1 + len(c.Holes) }

// NumVertices returns the total vertex count over all contours.
func (c *ComplexPolygon) NumVertices() int {
	n := len(c.Main.Vertices)
	for i := range c.Holes {
		n += len(c.Holes[i].Vertices)
	}
	return n
}

// AddHole appends a hole contour.
func (c *ComplexPolygon) AddHole(hole Polygon) {
	c.Holes = append(c.Holes, hole)
}

// Vertex returns the vertex id at a complex point.
func (c *ComplexPolygon) Vertex(id ComplexPointID) VertexID {
	return c.Polygon(id.Polygon).Vertices[id.Point]
}

// Next circulates forward within the point's contour.
func (c *ComplexPolygon) Next(id ComplexPointID) ComplexPointID {
	return ComplexPointID{id.Polygon, c.Polygon(id.Polygon).View().Next(id.Point)}
}

// Previous circulates backward within the point's contour.
func (c *ComplexPolygon) Previous(id ComplexPointID) ComplexPointID {
	return ComplexPointID{id.Polygon, c.Polygon(id.Polygon).View().Previous(id.Point)}
}

// ComputeWindingOrder classifies a closed polygon by summing the directed
// turning angle at every vertex. A clockwise loop accumulates more than
// (n-1)·π; using that threshold instead of n·π tolerates one degenerate
// exactly-π vertex without flipping the whole classification. Returns false
// for polygons with fewer than three vertices.
func ComputeWindingOrder(view PolygonView, positions container.IDSlice[VertexID, Point]) (WindingOrder, bool) {
	n := view.NumVertices()
	if n < 3 {
		return CounterClockwise, false
	}

	angle := 0.0
	for point := PointID(0); int(point) < n; point++ {
		a := positions.Get(view.PreviousVertex(point))
		b := positions.Get(view.Vertex(point))
		c := positions.Get(view.NextVertex(point))
		angle += directedAngle(a.sub(b), c.sub(b))
	}

	if angle > float64(n-1)*math.Pi {
		return Clockwise, true
	}
	return CounterClockwise, true
}

// ContainsPointEvenOdd reports whether p is inside the region view encloses
// under the even-odd rule, by counting boundary crossings to the right of p.
// Output is not defined for points exactly on an edge.
func ContainsPointEvenOdd(view PolygonView, positions container.IDSlice[VertexID, Point], p Point) bool {
	crossings := 0
	for point := PointID(0); int(point) < view.NumVertices(); point++ {
		a := positions.Get(view.Vertex(point))
		b := positions.Get(view.NextVertex(point))
		if a.Below(p) == b.Below(p) {
			continue
		}
		// The edge straddles p's sweep level; horizontal edges never do and
		// their NaN crossing drops out of the comparison.
		if lineHorizontalIntersection(a, b, p.Y) > p.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

// PathFromComplexPolygon flattens a complex polygon into a Path with one
// closed sub-path per contour.
func PathFromComplexPolygon(c *ComplexPolygon, positions container.IDSlice[VertexID, Point]) *Path {
	b := NewPathBuilder()
	for id := PolygonID(0); int(id) < c.NumPolygons(); id++ {
		poly := c.Polygon(id)
		for _, v := range poly.Vertices {
			b.LineTo(positions.Get(v))
		}
		b.Close()
	}
	return b.Build()
}
