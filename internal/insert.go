package internal

import (
	"sort"

	"go.uber.org/zap"
)

// Insertion. A new point either extends the collinear bootstrap chain, breaks
// collinearity for the first time, or lands in an existing triangulation. In
// the last case we find the region it invalidates (its cavity), delete the
// triangles in it, and fan new triangles from the point to the cavity
// boundary.

// Insert a point, fanning it against the first compatible region. Inserting a
// point that exactly matches an existing vertex does nothing.
func (g *MeshGraph) AddPoint(point Vector2) {
	g.insert(point, false)
}

// Insert a point and keep the mesh Delaunay, growing the cavity over every
// neighboring triangle whose circumcircle contains the point.
func (g *MeshGraph) AddDelaunayPoint(point Vector2) {
	g.insert(point, true)
}

func (g *MeshGraph) insert(point Vector2, delaunay bool) {
	if existing, ok := g.FindVertex(point); ok {
		g.logger.Debug("ignoring duplicate point",
			zap.Uint32("vertex", uint32(existing)),
			zap.Float64("x", point.X), zap.Float64("y", point.Y))
		return
	}

	prior := g.VertexIDs()
	id := g.addVertex(point)

	switch {
	case len(prior) == 0:
	case len(prior) == 1:
		g.addEdge(prior[0], id)
	case len(g.triangles) == 0:
		g.insertIntoChain(prior, id, delaunay)
	default:
		g.insertIntoTriangulation(id, delaunay)
	}

	g.logger.Debug("inserted point",
		zap.Uint32("vertex", uint32(id)),
		zap.Bool("delaunay", delaunay),
		zap.Int("vertices", len(g.vertices)),
		zap.Int("edges", len(g.edges)),
		zap.Int("triangles", len(g.triangles)))
}

// Vertices sorted along the line they all sit on, with their position along it.
type chainVertex struct {
	id VertexID
	t  float64
}

func (g *MeshGraph) sortChain(ids []VertexID) (chain []chainVertex, origin, direction Vector2) {
	origin = g.position(ids[0])
	// The farthest vertex from the first gives a well conditioned direction.
	for _, id := range ids[1:] {
		d := g.position(id).Sub(origin)
		if d.Norm() > direction.Norm() {
			direction = d
		}
	}
	chain = make([]chainVertex, len(ids))
	for i, id := range ids {
		chain[i] = chainVertex{id, g.position(id).Sub(origin).Dot(direction)}
	}
	sort.Slice(chain, func(i, j int) bool { return chain[i].t < chain[j].t })
	return chain, origin, direction
}

// No triangles yet, so the prior vertices form a path along one line.
func (g *MeshGraph) insertIntoChain(prior []VertexID, id VertexID, delaunay bool) {
	p := g.position(id)
	chain, origin, direction := g.sortChain(prior)
	first := g.position(chain[0].id)
	last := g.position(chain[len(chain)-1].id)

	if IsAligned(first, last, p, g.tolerances.Alignment) {
		g.extendChain(chain, id, p.Sub(origin).Dot(direction))
		return
	}

	// The point breaks collinearity: fan it against every link of the path.
	for i := 0; i+1 < len(chain); i++ {
		g.findOrCreateEdge(chain[i].id, chain[i+1].id)
	}
	var created []EdgeID
	for i := 0; i+1 < len(chain); i++ {
		t := g.newTriangle(chain[i].id, chain[i+1].id, id)
		edges := g.Triangle(t).Edges()
		created = append(created, edges[:]...)
	}
	if delaunay {
		g.legalize(created)
	}
}

// Add a collinear point to the path, splitting the link it falls on.
func (g *MeshGraph) extendChain(chain []chainVertex, id VertexID, t float64) {
	i := sort.Search(len(chain), func(i int) bool { return chain[i].t > t })
	switch i {
	case 0:
		g.addEdge(id, chain[0].id)
	case len(chain):
		g.addEdge(chain[len(chain)-1].id, id)
	default:
		before, after := chain[i-1].id, chain[i].id
		if e, ok := g.FindEdge(before, after); ok {
			g.deleteEdge(e)
		}
		g.addEdge(before, id)
		g.addEdge(id, after)
	}
}

func (g *MeshGraph) insertIntoTriangulation(id VertexID, delaunay bool) {
	p := g.position(id)
	c := newCavity()

	if t, ok := g.locateTriangle(p); ok {
		c.add(t)
		if e, ok := g.edgeContaining(t, p); ok {
			// The point splits an edge. Both triangles around it go.
			c.split = e
			c.hasSplit = true
			for _, other := range g.Edge(e).Triangles() {
				c.add(other)
			}
		}
	} else {
		for _, e := range g.visibleHullEdges(p) {
			c.visible[e] = struct{}{}
		}
	}

	if delaunay {
		g.growCavity(c, p)
	}

	boundary, doomed := g.cavityBoundary(c)
	if len(boundary) == 0 {
		g.connectToNearest(id)
		return
	}

	for _, t := range c.order {
		g.removeTriangle(t)
	}
	for _, e := range doomed {
		g.deleteEdge(e)
	}
	var created []EdgeID
	for _, e := range boundary {
		edge := g.Edge(e)
		t := g.newTriangle(edge.VertexA, edge.VertexB, id)
		edges := g.Triangle(t).Edges()
		created = append(created, edges[:]...)
	}

	if delaunay {
		g.legalize(created)
	}
}

// The triangles removed by an insertion, plus the hull edges the new point
// sees from outside the mesh.
type cavity struct {
	triangles map[TriangleID]struct{}
	order     []TriangleID
	visible   map[EdgeID]struct{}
	split     EdgeID
	hasSplit  bool
}

func newCavity() *cavity {
	return &cavity{
		triangles: make(map[TriangleID]struct{}),
		visible:   make(map[EdgeID]struct{}),
	}
}

func (c *cavity) add(t TriangleID) {
	if c.has(t) {
		return
	}
	c.triangles[t] = struct{}{}
	c.order = append(c.order, t)
}

func (c *cavity) has(t TriangleID) bool {
	_, ok := c.triangles[t]
	return ok
}

func (c *cavity) isVisible(e EdgeID) bool {
	_, ok := c.visible[e]
	return ok
}

// The cavity edges in a stable order: edges of cavity triangles, then
// visible hull edges.
func (g *MeshGraph) cavityEdges(c *cavity) []EdgeID {
	seen := make(map[EdgeID]struct{})
	var result []EdgeID
	add := func(e EdgeID) {
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		result = append(result, e)
	}
	for _, t := range c.order {
		for _, e := range g.Triangle(t).Edges() {
			add(e)
		}
	}
	var visible []EdgeID
	for e := range c.visible {
		visible = append(visible, e)
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i] < visible[j] })
	for _, e := range visible {
		add(e)
	}
	return result
}

// Split the cavity edges into the boundary the new point is fanned against and
// the edges that end up inside the cavity and must go.
func (g *MeshGraph) cavityBoundary(c *cavity) (boundary, doomed []EdgeID) {
	for _, e := range g.cavityEdges(c) {
		if c.hasSplit && e == c.split {
			doomed = append(doomed, e)
			continue
		}
		edge := g.Edge(e)
		inside := 0
		outside := 0
		for _, t := range edge.Triangles() {
			if c.has(t) {
				inside++
			} else {
				outside++
			}
		}
		switch {
		case inside == 2:
			doomed = append(doomed, e)
		case inside == 1 && outside == 0 && c.isVisible(e):
			// A visible hull edge whose triangle was swallowed.
			doomed = append(doomed, e)
		default:
			boundary = append(boundary, e)
		}
	}
	return boundary, doomed
}

// Bowyer-Watson style growth: walk outward from the cavity boundary and
// swallow each neighbor whose circumcircle strictly contains p, as long as the
// cavity stays star shaped around p.
func (g *MeshGraph) growCavity(c *cavity, p Vector2) {
	queue := g.cavityEdges(c)
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		var neighbor TriangleID
		found := false
		for _, t := range g.Edge(e).Triangles() {
			if !c.has(t) {
				neighbor, found = t, true
			}
		}
		if !found {
			continue
		}

		a, b, ok := g.orientToward(e, p)
		if !ok {
			continue
		}
		v := g.oppositeVertex(neighbor, e)
		pv := g.position(v)
		if !g.circumcircle(neighbor).contains(p, g.tolerances.Circle) {
			continue
		}
		// Both new boundary edges must face p, or the fan would fold over.
		pa, pb := g.position(a), g.position(b)
		if !IsTriangleOriented(pa, pv, p) || IsAligned(pa, pv, p, g.tolerances.Alignment) {
			continue
		}
		if !IsTriangleOriented(pv, pb, p) || IsAligned(pv, pb, p, g.tolerances.Alignment) {
			continue
		}

		c.add(neighbor)
		queue = append(queue, g.otherEdges(neighbor, e)...)
	}
}

// The first triangle containing p, boundary included. Exact signs, so every
// fan triangle built from it has a positive area.
func (g *MeshGraph) locateTriangle(p Vector2) (TriangleID, bool) {
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TrianglePositions(id)
		if Orientation(a, b, p) >= 0 && Orientation(b, c, p) >= 0 && Orientation(c, a, p) >= 0 {
			return id, true
		}
	}
	return 0, false
}

// The edge of triangle t that p lies on. p must be inside t and isn't one of
// its vertices, so it is strictly between the endpoints.
func (g *MeshGraph) edgeContaining(t TriangleID, p Vector2) (EdgeID, bool) {
	for _, e := range g.Triangle(t).Edges() {
		edge := g.Edge(e)
		if Orientation(g.position(edge.VertexA), g.position(edge.VertexB), p) == 0 {
			return e, true
		}
	}
	return 0, false
}

// Hull edges whose open side faces p, strictly.
func (g *MeshGraph) visibleHullEdges(p Vector2) []EdgeID {
	var result []EdgeID
	for _, id := range g.EdgeIDs() {
		edge := g.edges[id]
		if !edge.IsBoundary() {
			continue
		}
		orientation := Orientation(g.position(edge.VertexA), g.position(edge.VertexB), p)
		// Only exact collinearity is skipped; thin triangles with real area
		// are fanned.
		if orientation == 0 {
			continue
		}
		isLeft := orientation > 0
		if isLeft && edge.TriangleLeft.IsSet() {
			continue
		}
		if !isLeft && edge.TriangleRight.IsSet() {
			continue
		}
		result = append(result, id)
	}
	return result
}

// Last resort when no region can take the point: hang it off the nearest
// vertex with a dangling edge.
func (g *MeshGraph) connectToNearest(id VertexID) {
	p := g.position(id)
	var nearest VertexID
	best := -1.0
	for _, other := range g.VertexIDs() {
		if other == id {
			continue
		}
		distance := g.position(other).Sub(p).Norm()
		if best < 0 || distance < best {
			nearest, best = other, distance
		}
	}
	g.logger.Warn("no compatible region for point, connecting it to the nearest vertex",
		zap.Uint32("vertex", uint32(id)),
		zap.Uint32("nearest", uint32(nearest)))
	g.addEdge(nearest, id)
}

func (g *MeshGraph) circumcircle(t TriangleID) Circle {
	a, b, c := g.TrianglePositions(t)
	return GetCircle(a, b, c)
}
