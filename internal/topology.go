package internal

// Triangle level mutation. Every triangle is created through setTriangle,
// which orients it counterclockwise and records it on the correct side of each
// of its edges, so the side bookkeeping lives in exactly one place.

// The three vertices of a triangle, counterclockwise.
func (g *MeshGraph) TriangleVertices(id TriangleID) (a, b, c VertexID) {
	t := g.Triangle(id)
	ab := g.Edge(t.EdgeAB)
	bc := g.Edge(t.EdgeBC)
	switch {
	case bc.Has(ab.VertexB):
		b = ab.VertexB
	case bc.Has(ab.VertexA):
		b = ab.VertexA
	default:
		fatalWrapf(ErrInconsistentMesh, "edges %d and %d of triangle %d share no vertex", t.EdgeAB, t.EdgeBC, id)
	}
	return ab.Other(b), b, bc.Other(b)
}

func (g *MeshGraph) TrianglePositions(id TriangleID) (a, b, c Vector2) {
	va, vb, vc := g.TriangleVertices(id)
	return g.position(va), g.position(vb), g.position(vc)
}

// The vertex of triangle t that isn't on edge e.
func (g *MeshGraph) oppositeVertex(t TriangleID, e EdgeID) VertexID {
	edge := g.Edge(e)
	a, b, c := g.TriangleVertices(t)
	for _, v := range [3]VertexID{a, b, c} {
		if !edge.Has(v) {
			return v
		}
	}
	fatalWrapf(ErrInconsistentMesh, "triangle %d is degenerate along edge %d", t, e)
	return 0
}

// The two edges of t other than e.
func (g *MeshGraph) otherEdges(t TriangleID, e EdgeID) []EdgeID {
	result := make([]EdgeID, 0, 2)
	for _, id := range g.Triangle(t).Edges() {
		if id != e {
			result = append(result, id)
		}
	}
	return result
}

func (g *MeshGraph) newTriangle(a, b, c VertexID) TriangleID {
	return g.setTriangle(g.GenerateTriangleId(), a, b, c)
}

// Store triangle id as the cycle a, b, c, creating missing edges, and link it
// into its edges. An existing record under id must already be unlinked.
func (g *MeshGraph) setTriangle(id TriangleID, a, b, c VertexID) TriangleID {
	orientation := Orientation(g.position(a), g.position(b), g.position(c))
	if orientation == 0 {
		fatalf("cannot create degenerate triangle %d, %d, %d", a, b, c)
	}
	if orientation < 0 {
		b, c = c, b
	}
	t := Triangle{
		EdgeAB: g.findOrCreateEdge(a, b),
		EdgeBC: g.findOrCreateEdge(b, c),
		EdgeCA: g.findOrCreateEdge(c, a),
	}
	g.triangles[id] = t
	g.link(id, t.EdgeAB, c)
	g.link(id, t.EdgeBC, a)
	g.link(id, t.EdgeCA, b)
	return id
}

// Record triangle t on the side of edge e where its opposite vertex lies.
func (g *MeshGraph) link(t TriangleID, e EdgeID, opposite VertexID) {
	edge := g.Edge(e)
	side := g.sideOfEdge(edge, g.position(opposite))
	slot := &edge.TriangleLeft
	if side == Right {
		slot = &edge.TriangleRight
	}
	if slot.IsSet() && !slot.Is(t) {
		fatalWrapf(ErrInconsistentMesh, "edge %d already has triangle %s on the side of triangle %d", e, slot, t)
	}
	*slot = SomeTriangle(t)
	g.setEdge(e, edge)
}

func (g *MeshGraph) sideOfEdge(edge Edge, p Vector2) Side {
	if Orientation(g.position(edge.VertexA), g.position(edge.VertexB), p) > 0 {
		return Left
	}
	return Right
}

// Delete a triangle and clear it from its edges. The edges are kept.
func (g *MeshGraph) removeTriangle(id TriangleID) {
	t := g.Triangle(id)
	for _, e := range t.Edges() {
		g.unlink(id, e)
	}
	delete(g.triangles, id)
}

func (g *MeshGraph) unlink(t TriangleID, e EdgeID) {
	edge := g.Edge(e)
	if edge.TriangleLeft.Is(t) {
		edge.TriangleLeft = NoTriangle
	}
	if edge.TriangleRight.Is(t) {
		edge.TriangleRight = NoTriangle
	}
	g.setEdge(e, edge)
}

// The endpoints of e ordered so that p is strictly on the left of a → b. False
// when p is aligned with the edge.
func (g *MeshGraph) orientToward(e EdgeID, p Vector2) (a, b VertexID, ok bool) {
	edge := g.Edge(e)
	a, b = edge.VertexA, edge.VertexB
	pa, pb := g.position(a), g.position(b)
	if IsAligned(pa, pb, p, g.tolerances.Alignment) {
		return a, b, false
	}
	if Orientation(pa, pb, p) < 0 {
		a, b = b, a
	}
	return a, b, true
}
