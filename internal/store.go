package internal

import (
	"sort"

	"go.uber.org/zap"
)

// MeshGraph is a planar triangulated mesh stored as three ID-keyed maps. It
// exclusively owns every vertex, edge and triangle; entities only refer to
// each other by ID.
//
// A MeshGraph is not safe for concurrent use.
type MeshGraph struct {
	vertices  map[VertexID]Vertex
	edges     map[EdgeID]Edge
	triangles map[TriangleID]Triangle

	// Vertex pair → edge joining them.
	edgeIndex map[edgeKey]EdgeID

	vertexIDGenerator   uint32
	edgeIDGenerator     uint32
	triangleIDGenerator uint32

	tolerances Tolerances
	logger     *zap.Logger
}

type Options struct {
	Tolerances Tolerances
	Logger     *zap.Logger
}

func NewMeshGraph(options Options) *MeshGraph {
	g := &MeshGraph{
		tolerances: options.Tolerances.orDefault(),
		logger:     options.Logger,
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	g.Clear()
	return g
}

// Clear drops every entity. ID generators keep counting so IDs handed out
// before the clear are never reused.
func (g *MeshGraph) Clear() {
	g.vertices = make(map[VertexID]Vertex)
	g.edges = make(map[EdgeID]Edge)
	g.triangles = make(map[TriangleID]Triangle)
	g.edgeIndex = make(map[edgeKey]EdgeID)
}

func (g *MeshGraph) Tolerances() Tolerances { return g.tolerances }
func (g *MeshGraph) Logger() *zap.Logger    { return g.logger }

func (g *MeshGraph) GenerateVertexId() VertexID {
	id := g.vertexIDGenerator
	g.vertexIDGenerator++
	return VertexID(id)
}

func (g *MeshGraph) GenerateEdgeId() EdgeID {
	id := g.edgeIDGenerator
	g.edgeIDGenerator++
	return EdgeID(id)
}

func (g *MeshGraph) GenerateTriangleId() TriangleID {
	id := g.triangleIDGenerator
	g.triangleIDGenerator++
	return TriangleID(id)
}

// Lookups. A missing ID is a programming error and panics.

func (g *MeshGraph) Vertex(id VertexID) Vertex {
	v, ok := g.vertices[id]
	if !ok {
		fatalWrapf(ErrVertexNotFound, "vertex %d", id)
	}
	return v
}

func (g *MeshGraph) Edge(id EdgeID) Edge {
	e, ok := g.edges[id]
	if !ok {
		fatalWrapf(ErrEdgeNotFound, "edge %d", id)
	}
	return e
}

func (g *MeshGraph) Triangle(id TriangleID) Triangle {
	t, ok := g.triangles[id]
	if !ok {
		fatalWrapf(ErrTriangleNotFound, "triangle %d", id)
	}
	return t
}

func (g *MeshGraph) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]
	return ok
}

func (g *MeshGraph) HasEdge(id EdgeID) bool {
	_, ok := g.edges[id]
	return ok
}

func (g *MeshGraph) HasTriangle(id TriangleID) bool {
	_, ok := g.triangles[id]
	return ok
}

func (g *MeshGraph) VertexCount() int   { return len(g.vertices) }
func (g *MeshGraph) EdgeCount() int     { return len(g.edges) }
func (g *MeshGraph) TriangleCount() int { return len(g.triangles) }

func (g *MeshGraph) position(id VertexID) Vector2 {
	return g.Vertex(id).Position
}

// Sorted ID lists. Every scan of the store goes through these so that results
// don't depend on map iteration order.

func (g *MeshGraph) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *MeshGraph) EdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *MeshGraph) TriangleIDs() []TriangleID {
	ids := make([]TriangleID, 0, len(g.triangles))
	for id := range g.triangles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Raw mutation. These keep the edge index in sync but know nothing about
// triangle sides; see topology.go for that.

func (g *MeshGraph) addVertex(p Vector2) VertexID {
	id := g.GenerateVertexId()
	g.vertices[id] = Vertex{Position: p}
	return id
}

func (g *MeshGraph) addEdge(a, b VertexID) EdgeID {
	if a == b {
		fatalf("cannot create an edge from vertex %d to itself", a)
	}
	key := newEdgeKey(a, b)
	if existing, ok := g.edgeIndex[key]; ok {
		fatalWrapf(ErrInconsistentMesh, "edge %d already joins vertices %d and %d", existing, a, b)
	}
	id := g.GenerateEdgeId()
	g.edges[id] = Edge{VertexA: a, VertexB: b}
	g.edgeIndex[key] = id
	return id
}

func (g *MeshGraph) deleteEdge(id EdgeID) {
	e := g.Edge(id)
	delete(g.edgeIndex, newEdgeKey(e.VertexA, e.VertexB))
	delete(g.edges, id)
}

func (g *MeshGraph) setEdge(id EdgeID, e Edge) {
	g.edges[id] = e
}

// The edge joining a and b, if there is one.
func (g *MeshGraph) FindEdge(a, b VertexID) (EdgeID, bool) {
	id, ok := g.edgeIndex[newEdgeKey(a, b)]
	return id, ok
}

func (g *MeshGraph) findOrCreateEdge(a, b VertexID) EdgeID {
	if id, ok := g.FindEdge(a, b); ok {
		return id
	}
	return g.addEdge(a, b)
}

// The vertex at exactly this position, if any.
func (g *MeshGraph) FindVertex(p Vector2) (VertexID, bool) {
	for _, id := range g.VertexIDs() {
		if g.vertices[id].Position == p {
			return id, true
		}
	}
	return 0, false
}

// The vertex nearest to p. Ties go to the lowest ID.
func (g *MeshGraph) GetClosestPoint(p Vector2) (VertexID, bool) {
	var closest VertexID
	found := false
	best := 0.0
	for _, id := range g.VertexIDs() {
		distance := g.vertices[id].Position.Sub(p).Norm()
		if !found || distance < best {
			closest, best, found = id, distance, true
		}
	}
	return closest, found
}

// Every edge touching v.
func (g *MeshGraph) incidentEdges(v VertexID) []EdgeID {
	var result []EdgeID
	for _, id := range g.EdgeIDs() {
		if g.edges[id].Has(v) {
			result = append(result, id)
		}
	}
	return result
}

// Snapshot is a deep copy of the store, used to roll back a failed mutation.
type Snapshot struct {
	vertices  map[VertexID]Vertex
	edges     map[EdgeID]Edge
	triangles map[TriangleID]Triangle
}

func (g *MeshGraph) Snapshot() Snapshot {
	s := Snapshot{
		vertices:  make(map[VertexID]Vertex, len(g.vertices)),
		edges:     make(map[EdgeID]Edge, len(g.edges)),
		triangles: make(map[TriangleID]Triangle, len(g.triangles)),
	}
	for id, v := range g.vertices {
		s.vertices[id] = v
	}
	for id, e := range g.edges {
		s.edges[id] = e
	}
	for id, t := range g.triangles {
		s.triangles[id] = t
	}
	return s
}

// Restore puts the entities back to the snapshot. The ID generators are left
// alone, so IDs handed out by the rolled back mutation are not reused.
func (g *MeshGraph) Restore(s Snapshot) {
	g.Clear()
	for id, v := range s.vertices {
		g.vertices[id] = v
	}
	for id, e := range s.edges {
		g.edges[id] = e
		g.edgeIndex[newEdgeKey(e.VertexA, e.VertexB)] = id
	}
	for id, t := range s.triangles {
		g.triangles[id] = t
	}
}
