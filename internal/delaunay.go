package internal

import "go.uber.org/zap"

// Delaunay maintenance by edge flips (Lawson). An interior edge is locally
// Delaunay when neither triangle's circumcircle strictly contains the opposite
// vertex of the other triangle. Flipping a non-conforming edge can break its
// four neighbors, so they go back on the worklist.

// Turn the whole mesh into its Delaunay triangulation.
func (g *MeshGraph) DelaunayTriangulation() {
	var interior []EdgeID
	for _, id := range g.EdgeIDs() {
		if g.edges[id].IsInterior() {
			interior = append(interior, id)
		}
	}
	flips := g.legalize(interior)
	g.logger.Debug("delaunay pass",
		zap.Int("candidates", len(interior)),
		zap.Int("flips", flips))
}

// The quadrilateral around interior edge e: its endpoints s1, s2, the vertex
// s3 opposite it in the right triangle and s4 opposite it in the left one.
type quad struct {
	s1, s2, s3, s4 VertexID
	t1, t2         TriangleID
}

func (g *MeshGraph) quadAround(e EdgeID) quad {
	edge := g.Edge(e)
	t1, okLeft := edge.TriangleLeft.Get()
	t2, okRight := edge.TriangleRight.Get()
	if !okLeft || !okRight {
		fatalWrapf(ErrNotInterior, "edge %d", e)
	}
	return quad{
		s1: edge.VertexA,
		s2: edge.VertexB,
		s3: g.oppositeVertex(t2, e),
		s4: g.oppositeVertex(t1, e),
		t1: t1,
		t2: t2,
	}
}

// Whether interior edge e satisfies the empty circumcircle criterion. Boundary
// and dangling edges trivially do. Cocircular configurations conform.
func (g *MeshGraph) RespectDelaunay(e EdgeID) bool {
	if !g.Edge(e).IsInterior() {
		return true
	}
	q := g.quadAround(e)
	s1, s2 := g.position(q.s1), g.position(q.s2)
	s3, s4 := g.position(q.s3), g.position(q.s4)

	if GetCircle(s1, s4, s2).contains(s3, g.tolerances.Circle) {
		return false
	}
	if GetCircle(s1, s2, s3).contains(s4, g.tolerances.Circle) {
		return false
	}
	return true
}

// Whether the quadrilateral around e is strictly convex, so that its other
// diagonal can replace e.
func (g *MeshGraph) CanReverseEdge(e EdgeID) bool {
	if !g.Edge(e).IsInterior() {
		return false
	}
	q := g.quadAround(e)
	s1, s2 := g.position(q.s1), g.position(q.s2)
	s3, s4 := g.position(q.s3), g.position(q.s4)
	o1 := Orientation(s3, s4, s1)
	o2 := Orientation(s3, s4, s2)
	if o1 == 0 || o2 == 0 || (o1 > 0) == (o2 > 0) {
		return false
	}
	return !IsAligned(s3, s4, s1, g.tolerances.Alignment) && !IsAligned(s3, s4, s2, g.tolerances.Alignment)
}

// Flip interior edge e: remove (s1, s2), insert (s3, s4) and rebuild the two
// triangles in place as (s2, s3, s4) and (s1, s4, s3), keeping their IDs.
// Returns the new edge.
func (g *MeshGraph) ReverseEdge(e EdgeID) EdgeID {
	flipped, _ := g.reverseEdge(e)
	return flipped
}

// Like ReverseEdge, also returning the four edges around the quadrilateral.
func (g *MeshGraph) reverseEdge(e EdgeID) (EdgeID, []EdgeID) {
	if !g.CanReverseEdge(e) {
		fatalWrapf(ErrNotFlippable, "edge %d", e)
	}
	q := g.quadAround(e)
	around := append(g.otherEdges(q.t1, e), g.otherEdges(q.t2, e)...)

	g.removeTriangle(q.t1)
	g.removeTriangle(q.t2)
	g.deleteEdge(e)

	flipped := g.addEdge(q.s3, q.s4)
	g.setTriangle(q.t1, q.s1, q.s4, q.s3)
	g.setTriangle(q.t2, q.s2, q.s3, q.s4)
	return flipped, around
}

// Flip edges from the worklist until every edge it reaches conforms. Returns
// the number of flips.
func (g *MeshGraph) legalize(edges []EdgeID) int {
	queue := append([]EdgeID(nil), edges...)
	queued := make(map[EdgeID]struct{}, len(queue))
	for _, e := range queue {
		queued[e] = struct{}{}
	}

	// Cocircular ties conform, so every flip makes progress, but a budget keeps
	// floating point noise from spinning forever.
	budget := 16 + 4*len(g.edges)*len(g.edges)
	flips := 0
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		delete(queued, e)

		if !g.HasEdge(e) || !g.edges[e].IsInterior() {
			continue
		}
		if g.RespectDelaunay(e) || !g.CanReverseEdge(e) {
			continue
		}
		if flips >= budget {
			g.logger.Warn("flip budget exhausted, mesh may not be fully delaunay",
				zap.Int("flips", flips))
			return flips
		}

		_, around := g.reverseEdge(e)
		flips++
		for _, next := range around {
			if _, ok := queued[next]; ok {
				continue
			}
			queued[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return flips
}
