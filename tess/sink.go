package tess

// Range identifies a contiguous run of vertices or indices produced by one
// tessellation call, as offsets into the sink's buffers.
type Range struct {
	First, Count int
}

// GeometrySink receives the triangle mesh. The engine drives it strictly as
// BeginGeometry, a batch of PushVertex and PushIndices calls, EndGeometry;
// it never retains the sink past the call. Implementations typically copy
// straight into vertex/index buffers for upload.
type GeometrySink interface {
	BeginGeometry()
	// PushVertex appends a vertex position and returns its index in the
	// sink's vertex buffer.
	PushVertex(p Point) VertexID
	// PushIndices appends one triangle. All triangles of a call share one
	// winding convention.
	PushIndices(a, b, c VertexID)
	// EndGeometry returns the vertex and index ranges appended since
	// BeginGeometry.
	EndGeometry() (vertices Range, indices Range)
}

// VertexBuffers is the in-memory GeometrySink used by the engine's staging
// area, the tests, and callers that just want slices out.
type VertexBuffers struct {
	Vertices []Point
	Indices  []VertexID

	firstVertex int
	firstIndex  int
}

// BeginGeometry marks the start of a new geometry range.
func (vb *VertexBuffers) BeginGeometry() {
	vb.firstVertex = len(vb.Vertices)
	vb.firstIndex = len(vb.Indices)
}

// PushVertex appends a vertex and returns its buffer index.
func (vb *VertexBuffers) PushVertex(p Point) VertexID {
	vb.Vertices = append(vb.Vertices, p)
	return VertexID(len(vb.Vertices) - 1)
}

// PushIndices appends one triangle.
func (vb *VertexBuffers) PushIndices(a, b, c VertexID) {
	vb.Indices = append(vb.Indices, a, b, c)
}

// EndGeometry returns the ranges appended since BeginGeometry.
func (vb *VertexBuffers) EndGeometry() (Range, Range) {
	return Range{First: vb.firstVertex, Count: len(vb.Vertices) - vb.firstVertex},
		Range{First: vb.firstIndex, Count: len(vb.Indices) - vb.firstIndex}
}

// TriangleCount returns the number of whole triangles in the buffer.
func (vb *VertexBuffers) TriangleCount() int { return len(vb.Indices) / 3 }

// Clear empties both buffers while keeping their storage.
func (vb *VertexBuffers) Clear() {
	vb.Vertices = vb.Vertices[:0]
	vb.Indices = vb.Indices[:0]
	vb.firstVertex = 0
	vb.firstIndex = 0
}
