// An incremental path fill tessellation package for Go.
//
// This package converts closed paths, which may be non-convex, may span
// several sub-paths, and may contain holes, into a triangle mesh. Triangles
// are produced in a single top-to-bottom sweep, and self-intersecting input
// is handled by splitting edges at their crossing points on the fly.
package pathfill

import "github.com/pathfill/pathfill/tess"

type Point = tess.Point
type Path = tess.Path
type PathBuilder = tess.PathBuilder
type Workspace = tess.Workspace
type GeometrySink = tess.GeometrySink
type VertexBuffers = tess.VertexBuffers
type Range = tess.Range
type VertexID = tess.VertexID
type Error = tess.Error
type ErrorKind = tess.ErrorKind

const (
	DegenerateInput    = tess.DegenerateInput
	InvariantViolation = tess.InvariantViolation
)

// NewPathBuilder returns an empty path builder.
func NewPathBuilder() *PathBuilder { return tess.NewPathBuilder() }

// NewWorkspace returns an empty reusable workspace.
func NewWorkspace() *Workspace { return tess.NewWorkspace() }

// Fill takes one or more closed point loops and converts their interior
// into triangles.
//
// Loops wound counterclockwise are solid; loops wound clockwise cut holes
// out of the solid loops that surround them. The order of the loops is
// irrelevant.
func Fill(loops ...[]Point) (result *VertexBuffers, err error) {
	defer func() {
		recoveredErr := tess.HandleFillPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	var builder PathBuilder
	for _, loop := range loops {
		builder.AddPolygon(loop)
	}
	path := builder.Build()

	out := &VertexBuffers{}
	tess.FillPath(path, tess.NewWorkspace(), out)
	return out, nil
}

// FillPath tessellates the interior of path into sink, reusing the
// workspace's allocations. The sink is only written to if the whole fill
// succeeds; on error it is left exactly as it was. The returned ranges
// cover the vertices and indices this call pushed to the sink.
func FillPath(path *Path, ws *Workspace, sink GeometrySink) (vertices Range, indices Range, err error) {
	defer func() {
		recoveredErr := tess.HandleFillPanicRecover(recover())
		if recoveredErr != nil {
			vertices = Range{}
			indices = Range{}
			err = recoveredErr
		}
	}()

	vertices, indices = tess.FillPath(path, ws, sink)
	return vertices, indices, nil
}
