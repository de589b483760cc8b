package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/meshgraph/dbg"
)

// This is for debugging purposes only

// Dump lists every entity with its references. Interior edges are green,
// boundary edges cyan and dangling edges red. Every ID carries a readable
// nickname to make long dumps easier to follow.
func (g *MeshGraph) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MeshGraph: %d vertices, %d edges, %d triangles\n",
		len(g.vertices), len(g.edges), len(g.triangles))
	for _, id := range g.VertexIDs() {
		fmt.Fprintf(&b, "  %s (%.6g, %.6g)\n", g.vertexName(id), g.vertices[id].Position.X, g.vertices[id].Position.Y)
	}
	for _, id := range g.EdgeIDs() {
		fmt.Fprintf(&b, "  %s\n", g.edgeString(id))
	}
	for _, id := range g.TriangleIDs() {
		t := g.triangles[id]
		fmt.Fprintf(&b, "  %s <AB: %s, BC: %s, CA: %s>\n",
			g.triangleName(id), g.edgeName(t.EdgeAB), g.edgeName(t.EdgeBC), g.edgeName(t.EdgeCA))
	}
	return b.String()
}

func (g *MeshGraph) edgeString(id EdgeID) string {
	e := g.edges[id]
	return fmt.Sprintf("%s %s → %s <L: %s, R: %s>",
		g.edgeName(id),
		g.vertexName(e.VertexA),
		g.vertexName(e.VertexB),
		g.triangleRefName(e.TriangleLeft),
		g.triangleRefName(e.TriangleRight),
	)
}

func (g *MeshGraph) vertexName(id VertexID) string {
	return fmt.Sprintf("v%d:%s", id, dbg.Name(id))
}

func (g *MeshGraph) triangleName(id TriangleID) string {
	return fmt.Sprintf("t%d:%s", id, dbg.Name(id))
}

func (g *MeshGraph) triangleRefName(ref TriangleRef) string {
	id, ok := ref.Get()
	if !ok {
		return dbg.Name(nil)
	}
	return g.triangleName(id)
}

func (g *MeshGraph) edgeName(id EdgeID) string {
	name := fmt.Sprintf("e%d:%s", id, dbg.Name(id))
	e, ok := g.edges[id]
	switch {
	case !ok || e.IsDangling():
		name = aurora.Red(name).String()
	case e.IsBoundary():
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}
