package tess

// Workspace owns every allocation a fill pass needs: the sorted event
// queue, the active spans, the pending intersection queue and the staged
// output buffers. Reusing one workspace across calls amortizes all of it;
// a fresh zero-value Workspace also works. A Workspace serves one fill at
// a time and is not safe for concurrent use.
type Workspace struct {
	events        eventQueue
	sweep         sweepLine
	intersections intersectionQueue
	output        *VertexBuffers
	staging       VertexBuffers
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

func (ws *Workspace) reset() {
	ws.sweep.clear()
	ws.intersections.clear()
	ws.staging.Clear()
	ws.output = &ws.staging
	ws.staging.BeginGeometry()
}

// FillPath tessellates the interior of path and writes the result to sink.
// Triangles are staged in the workspace and copied to the sink only once
// the whole path has been swept, so a failing pass (which surfaces as a
// panic carrying *Error, see HandleFillPanicRecover) leaves the sink
// untouched. The returned ranges cover the vertices and indices pushed to
// the sink by this call.
func FillPath(path *Path, ws *Workspace, sink GeometrySink) (Range, Range) {
	ws.reset()

	// The staged vertices start as a copy of the path's own points, in id
	// order. Synthetic vertices minted at intersections are appended after
	// them, so output indices are valid path-or-synthetic vertex ids.
	for i := 0; i < path.NumVertices(); i++ {
		ws.staging.PushVertex(path.Position(VertexID(i)))
	}

	ws.events.fill(path)

	t := tessellator{
		path:         path,
		ws:           ws,
		sl:           &ws.sweep,
		nextVertexID: VertexID(path.NumVertices()),
	}
	t.tessellate()

	// Spans still open here never closed because their geometry collapsed
	// to nothing (all points coincident, zero-area loops). They produced
	// no triangles and are dropped without error.

	sink.BeginGeometry()
	for _, p := range ws.staging.Vertices {
		sink.PushVertex(p)
	}
	for i := 0; i+2 < len(ws.staging.Indices); i += 3 {
		sink.PushIndices(ws.staging.Indices[i], ws.staging.Indices[i+1], ws.staging.Indices[i+2])
	}
	return sink.EndGeometry()
}
