package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBuilder(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(Point{0, 0}).
		LineTo(Point{1, 0}).
		LineTo(Point{1, 1}).
		Close()
	b.MoveTo(Point{5, 5}).
		LineTo(Point{6, 5}).
		LineTo(Point{6, 6})
	path := b.Build()

	require.Equal(t, 2, path.NumSubPaths())
	require.Equal(t, 6, path.NumVertices())

	assert.True(t, path.Closed(0))
	// An unterminated sub-path ends up open
	assert.False(t, path.Closed(1))

	assert.Equal(t, SubPathID(0), path.SubPathOf(2))
	assert.Equal(t, SubPathID(1), path.SubPathOf(3))

	// Circulation wraps within each sub-path
	assert.Equal(t, VertexID(0), path.Next(2))
	assert.Equal(t, VertexID(2), path.Previous(0))
	assert.Equal(t, VertexID(3), path.Next(5))
	assert.Equal(t, VertexID(5), path.Previous(3))

	assert.Equal(t, Point{6, 6}, path.Position(5))
	assert.Equal(t, Point{1, 0}, path.Positions().Get(1))
}

func TestPathBuilder_AddPolygon(t *testing.T) {
	b := NewPathBuilder()
	b.AddPolygon([]Point{{0, 0}, {2, 0}, {1, 2}})
	b.AddPolygon([]Point{{0, 5}, {2, 5}, {1, 7}})
	path := b.Build()

	require.Equal(t, 2, path.NumSubPaths())
	assert.True(t, path.Closed(0))
	assert.True(t, path.Closed(1))
	assert.Equal(t, VertexID(3), path.Next(5))
}

func TestPathBuilder_Empty(t *testing.T) {
	path := NewPathBuilder().Build()
	assert.Equal(t, 0, path.NumVertices())
	assert.Equal(t, 0, path.NumSubPaths())

	// MoveTo with no following vertices still records the lone point
	path = NewPathBuilder().MoveTo(Point{1, 1}).Build()
	assert.Equal(t, 1, path.NumVertices())
	require.Equal(t, 1, path.NumSubPaths())
	assert.Equal(t, VertexID(0), path.Next(0))
	assert.Equal(t, VertexID(0), path.Previous(0))
}
