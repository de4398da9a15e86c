package pathfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.

func TestFill_Square(t *testing.T) {
	out, err := Fill([]Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TriangleCount())
	assert.Len(t, out.Vertices, 4)
}

func TestFill_SquareWithHole(t *testing.T) {
	outer := []Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}
	hole := []Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	}

	out, err := Fill(outer, hole)
	require.NoError(t, err)
	assert.Equal(t, 8, out.TriangleCount())
}

func TestFill_Empty(t *testing.T) {
	out, err := Fill()
	require.NoError(t, err)
	assert.Equal(t, 0, out.TriangleCount())
}

func TestFill_DegenerateInput(t *testing.T) {
	// Doubled corner
	out, err := Fill([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 2}})
	require.Error(t, err)
	assert.Nil(t, out)

	var tessErr *Error
	require.ErrorAs(t, err, &tessErr)
	assert.Equal(t, DegenerateInput, tessErr.Kind)
}

func TestFillPath_ReusesWorkspace(t *testing.T) {
	path := NewPathBuilder().
		AddPolygon([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}).
		Build()

	ws := NewWorkspace()
	sink := &VertexBuffers{}

	vertices, indices, err := FillPath(path, ws, sink)
	require.NoError(t, err)
	assert.Equal(t, Range{First: 0, Count: 4}, vertices)
	assert.Equal(t, Range{First: 0, Count: 6}, indices)

	vertices, indices, err = FillPath(path, ws, sink)
	require.NoError(t, err)
	assert.Equal(t, Range{First: 4, Count: 4}, vertices)
	assert.Equal(t, Range{First: 6, Count: 6}, indices)
}
