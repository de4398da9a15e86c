package tess

import "sort"

// eventQueue materializes every path vertex id sorted by ascending (Y, X).
// This total order is the sweep direction: classification, intersection
// insertion and span lookups all assume events arrive exactly in it. The
// whole queue is built up front because intersections injected mid-sweep
// need a random-access order to merge into.
type eventQueue struct {
	events []VertexID
}

func (q *eventQueue) fill(path *Path) {
	q.events = q.events[:0]
	for i := 0; i < path.NumVertices(); i++ {
		q.events = append(q.events, VertexID(i))
	}

	positions := path.Positions()
	// Stable sort so that coincident points keep their insertion order. That
	// makes the documented tie-break order (Y, X, id) hold and two runs over
	// the same input produce identical output.
	sort.SliceStable(q.events, func(i, j int) bool {
		return positions.Get(q.events[j]).Below(positions.Get(q.events[i]))
	})
}
