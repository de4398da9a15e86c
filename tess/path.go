package tess

import "github.com/pathfill/pathfill/container"

// Path is the engine's input: an ordered set of sub-paths, each a circular
// sequence of positioned vertices. Vertex ids are global across sub-paths and
// stable; the tessellator only ever appends (synthetic intersection
// vertices), it never mutates or removes what the caller built.
type Path struct {
	positions container.IDVec[VertexID, Point]
	subOf     container.IDVec[VertexID, SubPathID]
	subs      []subPath
}

type subPath struct {
	first  VertexID
	count  int32
	closed bool
}

// NumVertices returns the total number of vertices across all sub-paths.
func (p *Path) NumVertices() int { return p.positions.Len() }

// NumSubPaths returns the number of sub-paths.
func (p *Path) NumSubPaths() int { return len(p.subs) }

// Position returns the position of vertex v.
func (p *Path) Position(v VertexID) Point { return p.positions.Get(v) }

// SubPathOf returns the sub-path containing vertex v.
func (p *Path) SubPathOf(v VertexID) SubPathID { return p.subOf.Get(v) }

// Closed reports whether a sub-path was explicitly closed. The fill rule
// treats every sub-path as a loop either way; the flag matters to strokers
// and other consumers of the same path.
func (p *Path) Closed(s SubPathID) bool { return p.subs[s].closed }

// Next returns the vertex after v along its sub-path, wrapping at the end.
func (p *Path) Next(v VertexID) VertexID {
	sub := p.subs[p.subOf.Get(v)]
	local := int32(v) - int32(sub.first)
	return sub.first + VertexID((local+1)%sub.count)
}

// Previous returns the vertex before v along its sub-path, wrapping at the
// start.
func (p *Path) Previous(v VertexID) VertexID {
	sub := p.subs[p.subOf.Get(v)]
	local := int32(v) - int32(sub.first)
	return sub.first + VertexID((local+sub.count-1)%sub.count)
}

// Positions exposes the vertex positions indexed by id.
func (p *Path) Positions() container.IDSlice[VertexID, Point] { return p.positions.Slice() }

// PathBuilder accumulates MoveTo/LineTo/Close commands into a Path. Curves
// are out of scope here: callers flatten beforehand and feed line segments.
type PathBuilder struct {
	path    Path
	current int32 // vertices in the open sub-path
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder { return &PathBuilder{} }

// MoveTo ends any open sub-path and starts a new one at p.
func (b *PathBuilder) MoveTo(p Point) *PathBuilder {
	b.endSubPath(false)
	b.push(p)
	return b
}

// LineTo appends a vertex to the open sub-path, implicitly starting one if
// none is open.
func (b *PathBuilder) LineTo(p Point) *PathBuilder {
	b.push(p)
	return b
}

// Close marks the open sub-path as closed and ends it.
func (b *PathBuilder) Close() *PathBuilder {
	b.endSubPath(true)
	return b
}

// AddPolygon appends a whole closed sub-path from a point slice.
func (b *PathBuilder) AddPolygon(points []Point) *PathBuilder {
	b.endSubPath(false)
	for _, p := range points {
		b.push(p)
	}
	b.endSubPath(true)
	return b
}

// Build finishes the path. The builder must not be reused afterwards.
func (b *PathBuilder) Build() *Path {
	b.endSubPath(false)
	path := b.path
	b.path = Path{}
	return &path
}

func (b *PathBuilder) push(p Point) {
	id := b.path.positions.Push(p)
	b.path.subOf.Set(id, SubPathID(len(b.path.subs)))
	b.current++
}

func (b *PathBuilder) endSubPath(closed bool) {
	if b.current == 0 {
		return
	}
	first := VertexID(b.path.positions.Len() - int(b.current))
	b.path.subs = append(b.path.subs, subPath{first: first, count: b.current, closed: closed})
	b.current = 0
}
