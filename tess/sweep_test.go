package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpan(leftID, rightID VertexID) span {
	return newSpan(
		spanEdge{
			upper: vertex{pos: Point{float64(leftID), 0}, id: leftID},
			lower: vertex{pos: Point{float64(leftID), 10}, id: leftID + 100},
		},
		spanEdge{
			upper: vertex{pos: Point{float64(rightID), 0}, id: rightID},
			lower: vertex{pos: Point{float64(rightID), 10}, id: rightID + 100},
		},
	)
}

func TestSweepLine_InsertRemove(t *testing.T) {
	var sl sweepLine

	sl.insert(0, testSpan(0, 1))
	sl.insert(1, testSpan(4, 5))
	sl.insert(1, testSpan(2, 3))

	require.Equal(t, 3, sl.len())
	require.Equal(t, 3, sl.table.Len())
	assert.Equal(t, VertexID(0), sl.at(0).left.upper.id)
	assert.Equal(t, VertexID(2), sl.at(1).left.upper.id)
	assert.Equal(t, VertexID(4), sl.at(2).left.upper.id)

	// Ids stay stable while positions shift
	first := sl.order[0]
	sl.remove(1)
	require.Equal(t, 2, sl.len())
	assert.Equal(t, first, sl.order[0])
	assert.Equal(t, VertexID(4), sl.at(1).left.upper.id)
	assert.Equal(t, sl.len(), sl.table.Len())

	sl.remove(0)
	sl.remove(0)
	assert.Equal(t, 0, sl.len())
	assert.Equal(t, 0, sl.table.Len())
}

func TestSweepLine_Clear(t *testing.T) {
	var sl sweepLine
	sl.insert(0, testSpan(0, 1))
	sl.insert(1, testSpan(2, 3))
	sl.clear()
	assert.Equal(t, 0, sl.len())
	assert.Equal(t, 0, sl.table.Len())

	sl.insert(0, testSpan(6, 7))
	require.Equal(t, 1, sl.len())
	assert.Equal(t, VertexID(6), sl.at(0).left.upper.id)
}

func TestSweepLine_DbgString(t *testing.T) {
	var sl sweepLine
	assert.Equal(t, "|  sl: empty", sl.dbgString())

	sl.insert(0, testSpan(0, 1))
	s := sl.at(0)
	s.mergeVertex(vertex{pos: Point{0.5, 5}, id: 50}, SideRight)

	dump := sl.dbgString()
	assert.Contains(t, dump, "merge")
	t.Log(dump)
}
