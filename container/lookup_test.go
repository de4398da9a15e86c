package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testID int32

// Every id must round-trip through its dense offset, no matter how the table
// has been churned.
func checkLookupTable(t *testing.T, table *IDLookupTable[testID]) {
	assert.Equal(t, 0, table.Len())

	ids := make([]testID, 0, 100)
	for i := 0; i < 100; i++ {
		id := table.Add()
		ids = append(ids, id)
		assert.Equal(t, id, table.IDForOffset(table.Lookup(id)))
		assert.Equal(t, i+1, table.Len())
	}

	for o := 0; o < table.Len(); o++ {
		assert.Equal(t, o, table.Lookup(table.IDForOffset(o)))
	}

	table.Remove(ids[10])
	table.Remove(ids[1])
	table.Remove(ids[0])
	table.Remove(ids[5])
	table.Remove(ids[25])
	assert.Equal(t, 95, table.Len())

	for o := 0; o < table.Len(); o++ {
		assert.Equal(t, o, table.Lookup(table.IDForOffset(o)))
	}

	for i := 0; i < 10; i++ {
		table.Add()
		for o := 0; o < table.Len(); o++ {
			assert.Equal(t, o, table.Lookup(table.IDForOffset(o)))
		}
	}
}

func TestIDLookupTable(t *testing.T) {
	t1 := NewIDLookupTable[testID](0)
	checkLookupTable(t, t1)
	t1.Clear()
	checkLookupTable(t, t1)

	t2 := NewIDLookupTable[testID](30)
	checkLookupTable(t, t2)
	t2.Clear()
	checkLookupTable(t, t2)
}

func TestIDLookupTableZeroValue(t *testing.T) {
	var table IDLookupTable[testID]
	checkLookupTable(t, &table)
}

func TestIDLookupTableReusesFreedIDs(t *testing.T) {
	table := NewIDLookupTable[testID](4)
	a := table.Add()
	b := table.Add()
	table.Remove(a)

	// The freed slot comes back from the head of the free list.
	c := table.Add()
	assert.Equal(t, a, c)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, b, table.IDForOffset(table.Lookup(b)))
}

func TestIDLookupTableSwapOffsets(t *testing.T) {
	table := NewIDLookupTable[testID](4)
	a := table.Add()
	b := table.Add()
	c := table.Add()

	table.SwapOffsets(0, 2)
	assert.Equal(t, c, table.IDForOffset(0))
	assert.Equal(t, a, table.IDForOffset(2))
	// Ids still resolve after reordering.
	assert.Equal(t, a, table.IDForOffset(table.Lookup(a)))
	assert.Equal(t, b, table.IDForOffset(table.Lookup(b)))
	assert.Equal(t, c, table.IDForOffset(table.Lookup(c)))

	table.SwapIDs(a, b)
	assert.Equal(t, a, table.IDForOffset(1))
	assert.Equal(t, b, table.IDForOffset(2))
}
