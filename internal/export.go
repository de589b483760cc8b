package internal

import "sort"

// Flattened views of the mesh for drawing. Triangles come out three points at
// a time, in triangle ID order.

// Every triangle as three counterclockwise points.
func (g *MeshGraph) Mesh2D() []Vector2 {
	mesh := make([]Vector2, 0, len(g.triangles)*3)
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TrianglePositions(id)
		mesh = append(mesh, a, b, c)
	}
	return mesh
}

// The mesh lifted onto the XZ plane at height y. Mapping (x, y) to (x, z)
// mirrors the winding, so triangles are emitted as A, C, B to keep facing +Y.
func (g *MeshGraph) Mesh3DXZ(y float64) []Vector3 {
	mesh := make([]Vector3, 0, len(g.triangles)*3)
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TrianglePositions(id)
		mesh = append(mesh,
			Vector3{X: a.X, Y: y, Z: a.Y},
			Vector3{X: c.X, Y: y, Z: c.Y},
			Vector3{X: b.X, Y: y, Z: b.Y},
		)
	}
	return mesh
}

// The mesh lifted onto the XY plane at depth z, facing +Z.
func (g *MeshGraph) Mesh3DXY(z float64) []Vector3 {
	mesh := make([]Vector3, 0, len(g.triangles)*3)
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TrianglePositions(id)
		mesh = append(mesh,
			Vector3{X: a.X, Y: a.Y, Z: z},
			Vector3{X: b.X, Y: b.Y, Z: z},
			Vector3{X: c.X, Y: c.Y, Z: z},
		)
	}
	return mesh
}

// Every edge as a segment, in edge ID order.
func (g *MeshGraph) Lines() [][2]Vector2 {
	lines := make([][2]Vector2, 0, len(g.edges))
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		lines = append(lines, [2]Vector2{g.position(e.VertexA), g.position(e.VertexB)})
	}
	return lines
}

// The boundary edges walked counterclockwise as a vertex loop. Empty when the
// mesh has no triangles.
func (g *MeshGraph) Hull() []VertexID {
	next := make(map[VertexID]VertexID)
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		if !e.IsBoundary() {
			continue
		}
		// The triangle must end up on the left of from → to.
		from, to := e.VertexA, e.VertexB
		if e.TriangleRight.IsSet() {
			from, to = to, from
		}
		next[from] = to
	}
	if len(next) == 0 {
		return nil
	}

	starts := make([]VertexID, 0, len(next))
	for v := range next {
		starts = append(starts, v)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	hull := []VertexID{starts[0]}
	for v, ok := next[starts[0]]; ok && v != starts[0] && len(hull) <= len(next); v, ok = next[v] {
		hull = append(hull, v)
	}
	return hull
}

// Sort the points by x then y, insert them one by one and return the mesh
// lifted onto the XZ plane.
func IncrementalTriangulation(points []Vector2, y float64, options Options) []Vector3 {
	g := NewMeshGraph(options)
	for _, p := range SortPoints(points) {
		g.AddPoint(p)
	}
	return g.Mesh3DXZ(y)
}

func SortPoints(points []Vector2) []Vector2 {
	sorted := append([]Vector2(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}
