package internal

import "github.com/pkg/errors"

// Validate checks the topological invariants of the mesh and returns the first
// violation found. It does not panic, so it can run on a mesh in any state.
func (g *MeshGraph) Validate() error {
	if err := g.validateEdges(); err != nil {
		return err
	}
	if err := g.validateTriangles(); err != nil {
		return err
	}
	if err := g.validateVertices(); err != nil {
		return err
	}
	return g.validateHull()
}

// ValidateDelaunay checks the invariants and local Delaunay optimality of
// every interior edge.
func (g *MeshGraph) ValidateDelaunay() error {
	if err := g.Validate(); err != nil {
		return err
	}
	for _, id := range g.EdgeIDs() {
		if !g.RespectDelaunay(id) {
			return errors.Errorf("edge %d is not locally delaunay", id)
		}
	}
	return nil
}

func (g *MeshGraph) validateEdges() error {
	if len(g.edgeIndex) != len(g.edges) {
		return errors.Errorf("edge index has %d entries for %d edges", len(g.edgeIndex), len(g.edges))
	}
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		if e.VertexA == e.VertexB {
			return errors.Errorf("edge %d is a loop on vertex %d", id, e.VertexA)
		}
		for _, v := range [2]VertexID{e.VertexA, e.VertexB} {
			if !g.HasVertex(v) {
				return errors.Errorf("edge %d references missing vertex %d", id, v)
			}
		}
		if indexed, ok := g.FindEdge(e.VertexA, e.VertexB); !ok || indexed != id {
			return errors.Errorf("edge %d is not indexed under its vertices", id)
		}
		left, hasLeft := e.TriangleLeft.Get()
		right, hasRight := e.TriangleRight.Get()
		if hasLeft && hasRight && left == right {
			return errors.Errorf("edge %d has triangle %d on both sides", id, left)
		}
		for _, t := range e.Triangles() {
			tri, ok := g.triangles[t]
			if !ok {
				return errors.Errorf("edge %d references missing triangle %d", id, t)
			}
			if !tri.HasEdge(id) {
				return errors.Errorf("edge %d references triangle %d which does not contain it", id, t)
			}
		}
		if len(g.triangles) > 0 && e.IsDangling() {
			return errors.Errorf("edge %d has no triangle although the mesh is triangulated", id)
		}
	}
	return nil
}

func (g *MeshGraph) validateTriangles() error {
	for _, id := range g.TriangleIDs() {
		t := g.triangles[id]
		for _, e := range t.Edges() {
			if !g.HasEdge(e) {
				return errors.Errorf("triangle %d references missing edge %d", id, e)
			}
		}
		ab, bc, ca := g.edges[t.EdgeAB], g.edges[t.EdgeBC], g.edges[t.EdgeCA]
		var b VertexID
		switch {
		case bc.Has(ab.VertexB):
			b = ab.VertexB
		case bc.Has(ab.VertexA):
			b = ab.VertexA
		default:
			return errors.Errorf("edges AB and BC of triangle %d share no vertex", id)
		}
		a, c := ab.Other(b), bc.Other(b)
		if a == b || b == c || c == a {
			return errors.Errorf("triangle %d has repeated vertices", id)
		}
		if !ca.Has(c) || !ca.Has(a) {
			return errors.Errorf("edge CA of triangle %d does not close the cycle", id)
		}
		pa, pb, pc := g.vertices[a].Position, g.vertices[b].Position, g.vertices[c].Position
		if !IsTriangleOriented(pa, pb, pc) {
			return errors.Errorf("triangle %d is not counterclockwise", id)
		}
		for _, side := range [3]struct {
			edge     EdgeID
			opposite Vector2
		}{{t.EdgeAB, pc}, {t.EdgeBC, pa}, {t.EdgeCA, pb}} {
			e := g.edges[side.edge]
			expected := Right
			if Orientation(g.vertices[e.VertexA].Position, g.vertices[e.VertexB].Position, side.opposite) > 0 {
				expected = Left
			}
			if !e.Triangle(expected).Is(id) {
				return errors.Errorf("edge %d does not hold triangle %d on its %s side", side.edge, id, sideName(expected))
			}
		}
	}
	return nil
}

func (g *MeshGraph) validateVertices() error {
	seen := make(map[Vector2]VertexID, len(g.vertices))
	for _, id := range g.VertexIDs() {
		p := g.vertices[id].Position
		if other, ok := seen[p]; ok {
			return errors.Errorf("vertices %d and %d share position %v", other, id, p)
		}
		seen[p] = id
	}
	return nil
}

// Every boundary edge must have the whole mesh on its triangle side, and every
// corner of the convex hull of the vertices must be on the boundary.
func (g *MeshGraph) validateHull() error {
	if len(g.triangles) == 0 {
		return nil
	}
	onBoundary := make(map[Vector2]struct{})
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		if !e.IsBoundary() {
			continue
		}
		a, b := g.vertices[e.VertexA].Position, g.vertices[e.VertexB].Position
		if e.TriangleRight.IsSet() {
			a, b = b, a
		}
		onBoundary[a] = struct{}{}
		onBoundary[b] = struct{}{}
		for _, v := range g.VertexIDs() {
			p := g.vertices[v].Position
			if Orientation(a, b, p) < 0 && !IsAligned(a, b, p, g.tolerances.Alignment) {
				return errors.Errorf("vertex %d lies outside boundary edge %d", v, id)
			}
		}
	}
	var points []Vector2
	for _, id := range g.VertexIDs() {
		points = append(points, g.vertices[id].Position)
	}
	for _, corner := range GrahamScanConvexShell(points) {
		if _, ok := onBoundary[corner]; !ok {
			return errors.Errorf("hull corner %v is not on the mesh boundary", corner)
		}
	}
	return nil
}

func sideName(s Side) string {
	if s == Left {
		return "left"
	}
	return "right"
}
