package meshgraph

import "github.com/pkg/errors"

// Read only traversal. ID lists come back sorted.

func (m *Mesh) VertexCount() int   { return m.graph.VertexCount() }
func (m *Mesh) EdgeCount() int     { return m.graph.EdgeCount() }
func (m *Mesh) TriangleCount() int { return m.graph.TriangleCount() }

func (m *Mesh) VertexIDs() []VertexID     { return m.graph.VertexIDs() }
func (m *Mesh) EdgeIDs() []EdgeID         { return m.graph.EdgeIDs() }
func (m *Mesh) TriangleIDs() []TriangleID { return m.graph.TriangleIDs() }

func (m *Mesh) Vertex(id VertexID) (Vertex, error) {
	if !m.graph.HasVertex(id) {
		return Vertex{}, errors.Wrapf(ErrVertexNotFound, "vertex %d", id)
	}
	return m.graph.Vertex(id), nil
}

func (m *Mesh) Edge(id EdgeID) (Edge, error) {
	if !m.graph.HasEdge(id) {
		return Edge{}, errors.Wrapf(ErrEdgeNotFound, "edge %d", id)
	}
	return m.graph.Edge(id), nil
}

func (m *Mesh) Triangle(id TriangleID) (Triangle, error) {
	var triangle Triangle
	err := m.query("triangle", func() {
		triangle = m.graph.Triangle(id)
	})
	return triangle, err
}

// The three vertices of a triangle, counterclockwise.
func (m *Mesh) TriangleVertices(id TriangleID) (a, b, c VertexID, err error) {
	err = m.query("triangle vertices", func() {
		a, b, c = m.graph.TriangleVertices(id)
	})
	return a, b, c, err
}

// The edge joining two vertices, if any.
func (m *Mesh) FindEdge(a, b VertexID) (EdgeID, bool) {
	return m.graph.FindEdge(a, b)
}

// The vertex at exactly this position, if any.
func (m *Mesh) FindVertex(point Vector2) (VertexID, bool) {
	return m.graph.FindVertex(point)
}

// Every triangle as three counterclockwise points.
func (m *Mesh) Mesh2D() []Vector2 { return m.graph.Mesh2D() }

// Triangles lifted onto the XZ plane at height y, facing +Y.
func (m *Mesh) Mesh3DXZ(y float64) []Vector3 { return m.graph.Mesh3DXZ(y) }

// Triangles lifted onto the XY plane at depth z, facing +Z.
func (m *Mesh) Mesh3DXY(z float64) []Vector3 { return m.graph.Mesh3DXY(z) }

func (m *Mesh) Lines() [][2]Vector2 { return m.graph.Lines() }

// The boundary as a counterclockwise vertex loop.
func (m *Mesh) Hull() []VertexID { return m.graph.Hull() }

// Check the mesh invariants. Never fails on a mesh built through this API.
func (m *Mesh) Validate() error { return m.graph.Validate() }

// Check the invariants and that every interior edge is locally Delaunay.
func (m *Mesh) ValidateDelaunay() error { return m.graph.ValidateDelaunay() }

func (m *Mesh) Dump() string { return m.graph.Dump() }

func (m *Mesh) DrawPNG(path string, options DrawOptions) error {
	return m.graph.DrawPNG(path, options)
}
