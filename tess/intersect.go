package tess

import "github.com/pathfill/pathfill/container"

// intersectionID indexes the free list holding pending intersections.
type intersectionID int32

// intersection is a crossing detected between an edge entering the sweep
// line and an edge already on it. The synthetic vertex at the crossing has
// already been allocated (point.id); aDown and bDown are the lower ends of
// the two edges, with bDown on the side that makes the pair
// counter-clockwise around the crossing point:
//
//	       \         /
//	 aUp -> \       / <- bUp
//	         \     /
//	          \   /
//	   point -> x
//	           / \
//	          /   \
//	 bDown-> /     \ <- aDown
//
// The handler replaying the crossing relies on that orientation to tell
// whether the edges merely swap sides (left/right) or open a new span
// between them (up/down).
type intersection struct {
	point vertex
	aDown vertex
	bDown vertex
}

// intersectionQueue keeps pending intersections sorted by the sweep order
// of their crossing point. Records live in a free list so that ids handed
// out for debugging stay stable while the sorted order slice churns.
type intersectionQueue struct {
	store container.FreeList[intersectionID, intersection]
	order []intersectionID
}

func (q *intersectionQueue) push(it intersection) {
	id := q.store.Add(it)

	// Insert before the first queued crossing that sits below the new one.
	// Coincident crossings keep arrival order.
	i := 0
	for i < len(q.order) {
		if q.store.Get(q.order[i]).point.pos.Below(it.point.pos) {
			break
		}
		i++
	}
	q.order = append(q.order, 0)
	copy(q.order[i+1:], q.order[i:])
	q.order[i] = id
}

// peek returns the next crossing in sweep order without consuming it.
func (q *intersectionQueue) peek() (intersection, bool) {
	if len(q.order) == 0 {
		return intersection{}, false
	}
	return *q.store.Get(q.order[0]), true
}

func (q *intersectionQueue) pop() intersection {
	id := q.order[0]
	it := *q.store.Get(id)
	q.store.Remove(id)
	q.order = q.order[:copy(q.order, q.order[1:])]
	return it
}

func (q *intersectionQueue) len() int { return len(q.order) }

func (q *intersectionQueue) clear() {
	q.store.Clear()
	q.order = q.order[:0]
}

// checkIntersections tests the edge (up, down) about to be inserted at
// spanIndex/side against every edge currently on the sweep line, except the
// edge it is replacing on its own span.
func (t *tessellator) checkIntersections(spanIndex int, side Side, up, down vertex) {
	for i := 0; i < t.sl.len(); i++ {
		s := t.sl.at(i)
		if i != spanIndex || side.IsRight() {
			left := s.left
			t.testIntersection(&left, up, down)
		}
		if i != spanIndex || side.IsLeft() {
			right := s.right
			t.testIntersection(&right, up, down)
		}
	}
}

// testIntersection intersects the sweep-line edge against the incoming
// edge (up, down) and, if they properly cross, allocates a synthetic vertex
// and queues the crossing for replay. Merge edges have no geometry below
// the line and edges that share a lower endpoint meet there by
// construction, so both are skipped.
func (t *tessellator) testIntersection(edge *spanEdge, up, down vertex) {
	if edge.merge || edge.lower.id == up.id || edge.lower.id == down.id {
		return
	}
	p, ok := segmentIntersection(edge.upper.pos, edge.lower.pos, up.pos, down.pos)
	if !ok {
		return
	}

	it := intersection{
		point: t.newVertex(p),
		aDown: down,
		bDown: edge.lower,
	}
	// Normalize so that walking point -> bDown -> aDown turns
	// counter-clockwise. The replay handler keys off which of the two
	// lower endpoints bDown is.
	if directedAngleAt(it.point.pos, it.bDown.pos, it.aDown.pos) > pi {
		it.aDown, it.bDown = it.bDown, it.aDown
	}
	t.ws.intersections.push(it)
}

// onIntersectionEvent replays a queued crossing once the sweep reaches it.
// The synthetic vertex acts as two fused events: for the span whose edges
// cross it is either a left+right pair (the edges trade sides) or an
// end+start pair (the crossing closes one span and opens another between
// the swapped edges).
func (t *tessellator) onIntersectionEvent(it *intersection) {
	for i := 0; i < t.sl.len(); i++ {
		s := t.sl.at(i)
		if s.right.lower.id == it.bDown.id {
			// The edges cross "sideways": bDown continues as the left edge
			// of the next span and aDown as the right edge of this one.
			// Re-run the two single-side events without intersection checks
			// so the pair does not re-detect its own crossing.
			t.onRightEventNoIntersection(i, it.point, it.aDown)
			t.onLeftEventNoIntersection(i+1, it.point, it.bDown)
			return
		}
		if s.left.lower.id == it.bDown.id {
			// The edges cross "vertically": the span between them is pinched
			// shut at the crossing and a new one opens below it with the
			// lower halves swapped.
			t.onEndEvent(it.point, i)
			t.sl.insert(i, newSpan(
				spanEdge{upper: it.point, lower: it.aDown},
				spanEdge{upper: it.point, lower: it.bDown},
			))
			return
		}
	}
	throwf(InvariantViolation, "queued intersection at %v matches no active span edge", it.point.pos)
}
