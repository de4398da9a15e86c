package tess

// monotoneTesselator turns the vertex sequence of one span into triangles as
// the sweep feeds it. Each vertex arrives tagged with the chain it belongs to
// (left or right); the classic monotone-polygon stack discipline then emits
// every triangle the new vertex can see.
//
// The tesselator accumulates index triples locally and hands them to the
// staging buffers when the span closes, so an aborted sweep never leaks a
// half-finished fan.
type monotoneTesselator struct {
	stack     []monotoneVertex
	previous  monotoneVertex
	triangles []triangle
}

type monotoneVertex struct {
	pos  Point
	id   VertexID
	side Side
}

type triangle [3]VertexID

// begin seeds the tesselator with the span's starting vertex. The seed is
// tagged left by convention; nothing has a side until a second vertex exists.
func (m *monotoneTesselator) begin(pos Point, id VertexID) {
	first := monotoneVertex{pos: pos, id: id, side: SideLeft}
	m.stack = m.stack[:0]
	m.triangles = m.triangles[:0]
	m.previous = first
	m.stack = append(m.stack, first)
}

// vertex feeds the next vertex down one of the chains.
func (m *monotoneTesselator) vertex(pos Point, id VertexID, side Side) {
	current := monotoneVertex{pos: pos, id: id, side: side}
	rightSide := side == SideRight

	if !current.pos.Below(m.previous.pos) {
		throwf(DegenerateInput, "monotone chain vertex %d does not advance the sweep", id)
	}
	if len(m.stack) == 0 {
		throwf(InvariantViolation, "monotone tesselator fed vertex %d with an empty stack", id)
	}

	if current.side != m.previous.side {
		// Jumped to the other chain: every vertex still on the stack is
		// visible from here, so fan them all out and restart the stack from
		// the previous vertex.
		for i := 0; i+1 < len(m.stack); i++ {
			a, b := m.stack[i], m.stack[i+1]
			if rightSide {
				a, b = b, a
			}
			m.pushTriangle(a, b, current)
		}
		m.stack = m.stack[:0]
		m.stack = append(m.stack, m.previous)
	} else {
		// Same chain: pop while the two most recent vertices and the current
		// one form a convex corner, emitting each ear as we go.
		lastPopped := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		for len(m.stack) > 0 {
			a := lastPopped
			b := m.stack[len(m.stack)-1]
			if rightSide {
				a, b = b, a
			}
			if directedAngle(current.pos.sub(b.pos), a.pos.sub(b.pos)) <= pi {
				m.pushTriangle(a, b, current)
				lastPopped = m.stack[len(m.stack)-1]
				m.stack = m.stack[:len(m.stack)-1]
			} else {
				break
			}
		}
		m.stack = append(m.stack, lastPopped)
	}

	m.stack = append(m.stack, current)
	m.previous = current
}

// end closes the span at its terminal vertex. The terminal vertex belongs to
// both chains; treating it as the side opposite the last-seen vertex forces
// the final fan.
func (m *monotoneTesselator) end(pos Point, id VertexID) {
	side := m.previous.side.Opposite()
	m.vertex(pos, id, side)
	m.stack = m.stack[:0]
}

// pushTriangle records one triangle, flipping the order when needed so that
// every emitted triangle shares a single winding convention.
func (m *monotoneTesselator) pushTriangle(a, b, c monotoneVertex) {
	if directedAngle(c.pos.sub(b.pos), a.pos.sub(b.pos)) <= pi {
		m.triangles = append(m.triangles, triangle{a.id, b.id, c.id})
	} else {
		m.triangles = append(m.triangles, triangle{b.id, a.id, c.id})
	}
}

// flush hands the accumulated triangles to the staging buffers.
func (m *monotoneTesselator) flush(out *VertexBuffers) {
	for _, t := range m.triangles {
		out.PushIndices(t[0], t[1], t[2])
	}
	m.triangles = m.triangles[:0]
}
