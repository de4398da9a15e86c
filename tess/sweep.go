package tess

import (
	"github.com/pathfill/pathfill/container"
)

// SpanID is a stable handle to an active span. Handles survive unrelated
// insertions and removals, which keeps debug dumps and the liveness
// registry meaningful while the left-to-right order churns.
type SpanID int32

// spanEdge is one boundary of an active span. It joins the last vertex the
// sweep saw on that boundary (upper) to the vertex the boundary is heading
// toward (lower). A merge edge has no lower endpoint yet: it ends at a
// merge vertex and waits for a split or end event to resolve it.
type spanEdge struct {
	upper vertex
	lower vertex
	merge bool
}

// span is a strip of filled interior between a left and a right edge.
// Every vertex event that touches the span is also fed to its monotone
// tesselator, so triangles are produced as the sweep advances and the
// span's full vertex chain never needs to be stored.
type span struct {
	left  spanEdge
	right spanEdge
	tess  monotoneTesselator
}

func newSpan(l, r spanEdge) span {
	s := span{left: l, right: r}
	s.tess.begin(l.upper.pos, l.upper.id)
	return s
}

// vertex advances one of the span's edges through a regular vertex:
// current becomes the edge's upper endpoint and next its new lower target.
func (s *span) vertex(current, next vertex, side Side) {
	s.setUpperVertex(current, side)
	s.setLowerVertex(next, side)
}

// mergeVertex ends one of the span's edges at a merge vertex. The edge is
// flagged so later events know it has no geometry below the sweep line.
func (s *span) mergeVertex(v vertex, side Side) {
	s.setUpperVertex(v, side)
	s.setNoLowerVertex(side)
}

func (s *span) setUpperVertex(v vertex, side Side) {
	s.edge(side).upper = v
	s.tess.vertex(v.pos, v.id, side)
}

func (s *span) setLowerVertex(v vertex, side Side) {
	e := s.edge(side)
	e.lower = v
	e.merge = false
}

func (s *span) setNoLowerVertex(side Side) {
	s.edge(side).merge = true
}

func (s *span) edge(side Side) *spanEdge {
	if side.IsLeft() {
		return &s.left
	}
	return &s.right
}

func (s *span) end(pos Point, id VertexID) {
	s.tess.end(pos, id)
}

// sweepLine holds the active spans in left-to-right order. Span payloads
// live in an id-indexed vector and the lookup table tracks which ids are
// live, so a span keeps its id for its whole lifetime; order is the
// positional layer on top and is the only thing insert and remove shift.
type sweepLine struct {
	order []SpanID
	spans container.IDVec[SpanID, span]
	table container.IDLookupTable[SpanID]
}

func (sl *sweepLine) len() int { return len(sl.order) }

func (sl *sweepLine) at(i int) *span { return sl.spans.At(sl.order[i]) }

func (sl *sweepLine) insert(i int, s span) {
	id := sl.table.Add()
	sl.spans.Set(id, s)
	sl.order = append(sl.order, 0)
	copy(sl.order[i+1:], sl.order[i:])
	sl.order[i] = id
}

func (sl *sweepLine) remove(i int) {
	id := sl.order[i]
	sl.table.Remove(id)
	sl.order = sl.order[:i+copy(sl.order[i:], sl.order[i+1:])]
}

func (sl *sweepLine) clear() {
	sl.order = sl.order[:0]
	sl.spans.Clear()
	sl.table.Clear()
}

// event is one sweep stop: a path vertex together with its two neighbors
// along the sub-path. The neighbors decide the vertex kind (up, down or
// regular) and supply the lower endpoints of any edges the event opens.
type event struct {
	current  vertex
	previous vertex
	next     vertex
}

// tessellator drives one fill pass. It owns no storage of its own beyond
// the cursor for synthetic vertex ids; spans, pending intersections and
// staged output all live in the workspace.
type tessellator struct {
	path *Path
	ws   *Workspace
	sl   *sweepLine

	// id for the next synthetic vertex created at an intersection.
	nextVertexID VertexID
}

func (t *tessellator) vertexAt(id VertexID) vertex {
	return vertex{pos: t.path.Position(id), id: id}
}

// newVertex allocates a synthetic vertex at an intersection point. It is
// appended to the staged output immediately so that indices referring to
// it are valid no matter when the crossing is replayed.
func (t *tessellator) newVertex(pos Point) vertex {
	v := vertex{pos: pos, id: t.nextVertexID}
	t.nextVertexID++
	t.ws.output.PushVertex(pos)
	return v
}

func (t *tessellator) tessellate() {
	for _, e := range t.ws.events.events {
		evt := event{
			current:  t.vertexAt(e),
			previous: t.vertexAt(t.path.Previous(e)),
			next:     t.vertexAt(t.path.Next(e)),
		}

		// Crossings detected earlier that sit above the current vertex are
		// replayed first so the sweep line is consistent when the real
		// event is handled.
		for t.ws.intersections.len() > 0 {
			it, _ := t.ws.intersections.peek()
			if !evt.current.pos.Below(it.point.pos) {
				break
			}
			it = t.ws.intersections.pop()
			t.onIntersectionEvent(&it)
		}

		t.onEvent(&evt)
	}
}

func (t *tessellator) onEvent(evt *event) {
	belowPrev := evt.current.pos.Below(evt.previous.pos)
	belowNext := evt.current.pos.Below(evt.next.pos)

	if belowPrev && belowNext {
		t.onDownEvent(evt.current)
		return
	}
	if !belowPrev && !belowNext {
		t.onUpEvent(evt)
		return
	}

	// One neighbor above, one below: the vertex continues a single edge.
	// Pass along whichever neighbor is the downward continuation.
	if evt.next.pos.Below(evt.current.pos) {
		t.onRegularEvent(evt.current, evt.next)
	} else {
		t.onRegularEvent(evt.current, evt.previous)
	}
}

// findSpanAndSide locates the span edge whose lower endpoint is the given
// vertex. Every regular and down event must match exactly one live edge;
// a miss means the input walked outside the region the sweep line knows
// about, which happens with self-touching or repeated geometry.
func (t *tessellator) findSpanAndSide(id VertexID) (int, Side) {
	for i := 0; i < t.sl.len(); i++ {
		s := t.sl.at(i)
		if !s.left.merge && s.left.lower.id == id {
			return i, SideLeft
		}
		if !s.right.merge && s.right.lower.id == id {
			return i, SideRight
		}
	}
	throwf(DegenerateInput, "vertex %d is not the lower endpoint of any active edge", id)
	return 0, SideLeft
}

func (t *tessellator) onRegularEvent(current, next vertex) {
	i, side := t.findSpanAndSide(current.id)
	if side.IsLeft() {
		t.onLeftEvent(i, current, next)
	} else {
		t.onRightEvent(i, current, next)
	}
}

func (t *tessellator) onLeftEvent(spanIndex int, current, next vertex) {
	if t.sl.at(spanIndex).right.merge {
		//     \ /
		//  \   x   <-- merge vertex
		//   \ :
		// ll x   <-- current vertex
		//     \r
		t.sl.at(spanIndex+1).setLowerVertex(current, SideLeft)
		t.endSpan(spanIndex, current)
	}
	t.insertEdge(spanIndex, SideLeft, current, next)
}

func (t *tessellator) onLeftEventNoIntersection(spanIndex int, current, next vertex) {
	if t.sl.at(spanIndex).right.merge {
		t.sl.at(spanIndex+1).setLowerVertex(current, SideLeft)
		t.endSpan(spanIndex, current)
	}
	t.insertEdgeNoIntersection(spanIndex, SideLeft, current, next)
}

func (t *tessellator) onRightEvent(spanIndex int, current, next vertex) {
	t.insertEdge(spanIndex, SideRight, current, next)
}

func (t *tessellator) onRightEventNoIntersection(spanIndex int, current, next vertex) {
	t.insertEdgeNoIntersection(spanIndex, SideRight, current, next)
}

// findSpanUp walks the spans left to right and finds where an up vertex
// lands. Returns the span index and whether the vertex is inside that
// span (split event) or in the gap before it (start event). Horizontal
// edges produce NaN intersections which never compare greater, so they
// are skipped, the same as merge edges.
func (t *tessellator) findSpanUp(v vertex) (int, bool) {
	x, y := v.pos.X, v.pos.Y
	for i := 0; i < t.sl.len(); i++ {
		s := t.sl.at(i)
		if !s.left.merge {
			lx := lineHorizontalIntersection(s.left.upper.pos, s.left.lower.pos, y)
			if lx > x {
				return i, false // outside, to the left of span i
			}
		}
		if !s.right.merge {
			rx := lineHorizontalIntersection(s.right.upper.pos, s.right.lower.pos, y)
			if rx > x {
				return i, true // inside span i
			}
		}
	}
	return t.sl.len(), false
}

func (t *tessellator) onUpEvent(evt *event) {
	spanIndex, inside := t.findSpanUp(evt.current)

	l := spanEdge{upper: evt.current, lower: evt.previous}
	r := spanEdge{upper: evt.current, lower: evt.next}

	// The smaller directed angle from previous to next tells which
	// neighbor is on which side of the downward wedge.
	angle := directedAngle(
		evt.previous.pos.sub(evt.current.pos),
		evt.next.pos.sub(evt.current.pos),
	)
	if angle < pi {
		l, r = r, l
	}

	if inside {
		t.onSplitEvent(evt, spanIndex, l, r)
		return
	}

	// Start event. The span does not exist yet, so no index is excluded
	// from the intersection checks.
	t.checkIntersections(t.sl.len(), SideLeft, l.upper, l.lower)
	t.checkIntersections(t.sl.len(), SideRight, r.upper, r.lower)
	t.sl.insert(spanIndex, newSpan(l, r))
}

func (t *tessellator) onSplitEvent(evt *event, spanIndex int, l, r spanEdge) {
	if t.sl.at(spanIndex).left.merge {
		//            \ /
		//             x   <-- merge vertex
		//  left span  :  right span
		//             x   <-- current split vertex
		//           l/ \r
		// The split resolves the pending merge: each of the two spans that
		// met at the merge vertex takes one of the new edges.
		t.sl.at(spanIndex-1).vertex(evt.current, l.lower, SideRight)
		t.sl.at(spanIndex).vertex(evt.current, r.lower, SideLeft)
		return
	}

	//      /
	//     x
	//    / :r2
	// ll/   x   <-- current split vertex
	//     l/ \r
	// No pending merge. Cut the span in two along a chord up to its left
	// edge's upper vertex.
	ll := t.sl.at(spanIndex).left
	r2 := spanEdge{upper: ll.upper, lower: evt.current}

	t.sl.insert(spanIndex, newSpan(ll, r2))

	t.insertEdge(spanIndex, SideRight, evt.current, l.lower)
	t.insertEdge(spanIndex+1, SideLeft, evt.current, r.lower)
}

func (t *tessellator) onDownEvent(v vertex) {
	spanIndex, side := t.findSpanAndSide(v.id)

	if spanIndex >= t.sl.len() {
		throwf(InvariantViolation, "down event on span %d with %d active spans", spanIndex, t.sl.len())
	}

	if side.IsLeft() {
		t.onEndEvent(v, spanIndex)
	} else {
		t.onMergeEvent(v, spanIndex)
	}
}

func (t *tessellator) onEndEvent(v vertex, spanIndex int) {
	if t.sl.at(spanIndex).right.merge {
		//   \ /
		//  \ x   <-- merge vertex
		//   \:/
		//    x   <-- current vertex
		// The merge belongs to this span and the one to its right, which
		// both close at the current vertex.
		t.endSpan(spanIndex, v)
	}
	t.endSpan(spanIndex, v)
}

func (t *tessellator) onMergeEvent(v vertex, spanIndex int) {
	if spanIndex >= t.sl.len()-1 {
		throwf(InvariantViolation, "merge event on rightmost span %d", spanIndex)
	}

	if t.sl.at(spanIndex).right.merge {
		//     / \ /
		//  \ / .-x    <-- merge vertex
		//   x-'      <-- current merge vertex
		// Two chained merges: close the middle span at the current vertex
		// before recording the new merge.
		t.sl.at(spanIndex+2).setLowerVertex(v, SideLeft)
		t.endSpan(spanIndex+1, v)
	}

	if t.sl.at(spanIndex+1).left.lower.id != v.id {
		throwf(InvariantViolation, "merge vertex %d does not close the adjacent span", v.id)
	}

	t.sl.at(spanIndex).mergeVertex(v, SideRight)
	t.sl.at(spanIndex+1).mergeVertex(v, SideLeft)
}

func (t *tessellator) insertEdge(spanIndex int, side Side, up, down vertex) {
	t.checkIntersections(spanIndex, side, up, down)
	t.sl.at(spanIndex).vertex(up, down, side)
}

func (t *tessellator) insertEdgeNoIntersection(spanIndex int, side Side, up, down vertex) {
	t.sl.at(spanIndex).vertex(up, down, side)
}

// endSpan closes a span at the given vertex, flushes its triangles to the
// staged output and retires it from the sweep line.
func (t *tessellator) endSpan(spanIndex int, v vertex) {
	s := t.sl.at(spanIndex)
	s.end(v.pos, v.id)
	s.tess.flush(t.ws.output)
	t.sl.remove(spanIndex)
}
