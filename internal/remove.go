package internal

import (
	"sort"

	"go.uber.org/zap"
)

// Removal. Deleting a vertex deletes its triangles and leaves a hole bounded
// by its link: a closed loop for an interior vertex, an open chain for a hull
// vertex. Closed loops are retriangulated by clipping Delaunay ears. For open
// chains, the new hull is found with a Graham walk over the chain, and each
// pocket between the hull and the chain is ear clipped the same way.

// Remove the vertex at exactly this position. Returns false if there is none.
func (g *MeshGraph) RemoveDelaunayPoint(point Vector2) bool {
	id, ok := g.FindVertex(point)
	if !ok {
		return false
	}
	g.RemoveDelaunayVertex(id)
	return true
}

func (g *MeshGraph) RemoveDelaunayVertex(id VertexID) {
	g.Vertex(id)

	if len(g.triangles) == 0 {
		g.removeFromChain(id)
		g.logger.Debug("removed chain vertex", zap.Uint32("vertex", uint32(id)))
		return
	}

	incident := g.incidentEdges(id)
	var triangles []TriangleID
	seen := make(map[TriangleID]struct{})
	for _, e := range incident {
		for _, t := range g.edges[e].Triangles() {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				triangles = append(triangles, t)
			}
		}
	}
	sort.Slice(triangles, func(i, j int) bool { return triangles[i] < triangles[j] })

	// The link is checked before anything is mutated.
	var link []EdgeID
	for _, t := range triangles {
		for _, e := range g.Triangle(t).Edges() {
			if !g.edges[e].Has(id) {
				link = append(link, e)
			}
		}
	}
	loop, closed := g.orderLink(id, link)

	firstNewEdge := EdgeID(g.edgeIDGenerator)
	for _, t := range triangles {
		g.removeTriangle(t)
	}
	for _, e := range incident {
		g.deleteEdge(e)
	}
	delete(g.vertices, id)

	if len(loop) > 0 {
		if closed {
			g.clipEars(loop)
		} else {
			g.fillPockets(loop)
		}
	}

	var created []EdgeID
	for _, e := range g.EdgeIDs() {
		if e >= firstNewEdge {
			created = append(created, e)
		}
	}
	// The link edges now border new triangles too.
	flips := g.legalize(append(created, link...))

	g.logger.Debug("removed vertex",
		zap.Uint32("vertex", uint32(id)),
		zap.Bool("interior", closed),
		zap.Int("link", len(loop)),
		zap.Int("flips", flips))
}

// Without triangles the vertices form a path. Rejoin the neighbors of the
// removed vertex so it stays one.
func (g *MeshGraph) removeFromChain(id VertexID) {
	var neighbors []VertexID
	for _, e := range g.incidentEdges(id) {
		neighbors = append(neighbors, g.edges[e].Other(id))
		g.deleteEdge(e)
	}
	delete(g.vertices, id)
	if len(neighbors) == 2 {
		g.findOrCreateEdge(neighbors[0], neighbors[1])
	}
}

// Order the link edges of vertex v into a vertex sequence. A closed link comes
// back counterclockwise. An open link comes back counterclockwise around v,
// starting at the hull vertex after v. Anything else is not a simple polygon.
func (g *MeshGraph) orderLink(v VertexID, link []EdgeID) (loop []VertexID, closed bool) {
	if len(link) == 0 {
		return nil, false
	}
	adjacency := make(map[VertexID][]VertexID)
	for _, e := range link {
		edge := g.edges[e]
		adjacency[edge.VertexA] = append(adjacency[edge.VertexA], edge.VertexB)
		adjacency[edge.VertexB] = append(adjacency[edge.VertexB], edge.VertexA)
	}

	var ends []VertexID
	for u, neighbors := range adjacency {
		switch len(neighbors) {
		case 1:
			ends = append(ends, u)
		case 2:
		default:
			fatalWrapf(ErrNonSimpleHole, "vertex %d has degree %d around removed vertex %d", u, len(neighbors), v)
		}
	}
	if len(ends) != 0 && len(ends) != 2 {
		fatalWrapf(ErrNonSimpleHole, "link of vertex %d has %d open ends", v, len(ends))
	}
	closed = len(ends) == 0

	var start VertexID
	if closed {
		first := true
		for u := range adjacency {
			if first || u < start {
				start, first = u, false
			}
		}
	} else {
		start = ends[0]
		if ends[1] < start {
			start = ends[1]
		}
	}

	loop = []VertexID{start}
	visited := map[VertexID]struct{}{start: {}}
	for current := start; ; {
		next, ok := VertexID(0), false
		for _, candidate := range adjacency[current] {
			if _, done := visited[candidate]; !done {
				next, ok = candidate, true
				break
			}
		}
		if !ok {
			break
		}
		visited[next] = struct{}{}
		loop = append(loop, next)
		current = next
	}
	if len(loop) != len(adjacency) {
		fatalWrapf(ErrNonSimpleHole, "link of vertex %d is not connected", v)
	}

	positions := g.positions(loop)
	if closed {
		if SignedArea(positions) < 0 {
			reverseVertices(loop)
		}
		return loop, true
	}
	center := g.position(v)
	if len(loop) > 1 && !IsTriangleOriented(center, positions[0], positions[1]) {
		reverseVertices(loop)
	}
	return loop, false
}

// Triangulate the region between an open link chain and the new hull.
func (g *MeshGraph) fillPockets(chain []VertexID) {
	// Walk the chain in hull order, keeping left and straight turns. Only
	// strict right turns are popped, so every pocket has a positive area.
	walk := append([]VertexID(nil), chain...)
	reverseVertices(walk)
	var hull []int
	for i, v := range walk {
		p := g.position(v)
		for len(hull) >= 2 {
			a := g.position(walk[hull[len(hull)-2]])
			b := g.position(walk[hull[len(hull)-1]])
			if Orientation(a, b, p) >= 0 {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}

	for k := 0; k+1 < len(hull); k++ {
		from, to := hull[k], hull[k+1]
		if to-from < 2 {
			continue
		}
		pocket := append([]VertexID(nil), walk[from:to+1]...)
		area := SignedArea(g.positions(pocket))
		if area == 0 {
			continue
		}
		if area < 0 {
			reverseVertices(pocket)
		}
		g.clipEars(pocket)
	}
}

// Ear clip a counterclockwise simple polygon. Ears whose circumcircle holds
// no other polygon vertex are preferred; any valid ear is the fallback.
func (g *MeshGraph) clipEars(loop []VertexID) {
	loop = append([]VertexID(nil), loop...)
	for len(loop) > 3 {
		ear := -1
		for i := range loop {
			if g.isEar(loop, i) && g.isEmptyCircleEar(loop, i) {
				ear = i
				break
			}
		}
		if ear < 0 {
			for i := range loop {
				if g.isEar(loop, i) {
					ear = i
					g.logger.Warn("no empty circumcircle ear, clipping plain ear",
						zap.Int("polygon", len(loop)))
					break
				}
			}
		}
		if ear < 0 {
			fatalWrapf(ErrNonSimpleHole, "no ear left in polygon of %d vertices", len(loop))
		}
		prev := loop[CircularIndex(ear-1, len(loop))]
		next := loop[CircularIndex(ear+1, len(loop))]
		g.newTriangle(prev, loop[ear], next)
		loop = append(loop[:ear], loop[ear+1:]...)
	}
	if len(loop) == 3 {
		a, b, c := g.position(loop[0]), g.position(loop[1]), g.position(loop[2])
		if Orientation(a, b, c) <= 0 {
			fatalWrapf(ErrNonSimpleHole, "last triangle %d, %d, %d is degenerate", loop[0], loop[1], loop[2])
		}
		g.newTriangle(loop[0], loop[1], loop[2])
	}
}

// A convex corner whose triangle holds no other polygon vertex, boundary
// included. Both tests are exact, so a thin ear with real area still counts.
func (g *MeshGraph) isEar(loop []VertexID, i int) bool {
	prev := loop[CircularIndex(i-1, len(loop))]
	next := loop[CircularIndex(i+1, len(loop))]
	a, b, c := g.position(prev), g.position(loop[i]), g.position(next)
	if !IsTriangleOriented(a, b, c) {
		return false
	}
	for _, v := range loop {
		if v == prev || v == loop[i] || v == next {
			continue
		}
		p := g.position(v)
		if Orientation(a, b, p) >= 0 && Orientation(b, c, p) >= 0 && Orientation(c, a, p) >= 0 {
			return false
		}
	}
	return true
}

func (g *MeshGraph) isEmptyCircleEar(loop []VertexID, i int) bool {
	prev := loop[CircularIndex(i-1, len(loop))]
	next := loop[CircularIndex(i+1, len(loop))]
	circle := GetCircle(g.position(prev), g.position(loop[i]), g.position(next))
	for _, v := range loop {
		if v == prev || v == loop[i] || v == next {
			continue
		}
		if circle.contains(g.position(v), g.tolerances.Circle) {
			return false
		}
	}
	return true
}

func (g *MeshGraph) positions(ids []VertexID) []Vector2 {
	result := make([]Vector2, len(ids))
	for i, id := range ids {
		result[i] = g.position(id)
	}
	return result
}

func reverseVertices(ids []VertexID) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
