package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var squareWithCenter = []Vector2{
	{X: 0, Y: 0},
	{X: 4, Y: 0},
	{X: 4, Y: 4},
	{X: 0, Y: 4},
	{X: 2, Y: 2},
}

func TestRemoveDelaunayVertex_Interior(t *testing.T) {
	g := newDelaunayMesh(squareWithCenter...)
	require.Equal(t, 4, g.TriangleCount())
	requireDelaunayMesh(t, g)

	g.RemoveDelaunayVertex(4)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 2, g.TriangleCount())
	requireDelaunayMesh(t, g)
}

func TestRemoveDelaunayVertex_InteriorPentagon(t *testing.T) {
	points := []Vector2{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 12, Y: 8},
		{X: 5, Y: 12},
		{X: -2, Y: 7},
		{X: 5, Y: 5},
	}
	g := newDelaunayMesh(points...)
	require.Equal(t, 5, g.TriangleCount())

	g.RemoveDelaunayVertex(5)
	assert.Equal(t, 3, g.TriangleCount())
	requireDelaunayMesh(t, g)
}

func TestRemoveDelaunayVertex_Hull(t *testing.T) {
	g := newDelaunayMesh(squareWithCenter...)

	// The center ends up on the new hull, between the two remaining corners
	g.RemoveDelaunayVertex(2)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 2, g.TriangleCount())
	requireDelaunayMesh(t, g)
	assert.True(t, g.Edge(requireEdge(t, g, 1, 4)).IsBoundary())
	assert.True(t, g.Edge(requireEdge(t, g, 4, 3)).IsBoundary())
}

func TestRemoveDelaunayVertex_HullWithPocket(t *testing.T) {
	// Removing the apex exposes a reflex chain that must be filled
	points := []Vector2{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 50, Y: 50},
		{X: 60, Y: 5},
		{X: 40, Y: 5},
		{X: 50, Y: 4},
	}
	g := newDelaunayMesh(points...)
	requireDelaunayMesh(t, g)

	g.RemoveDelaunayVertex(2)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.TriangleCount())
	requireDelaunayMesh(t, g)
	hull := g.Hull()
	assert.Len(t, hull, 4)
	assert.NotContains(t, hull, VertexID(5))
}

func TestRemoveDelaunayVertex_HullWithThinPocket(t *testing.T) {
	// Removing the top vertex leaves a pocket whose last triangle, a, q, c,
	// is very thin but has a real area.
	g := NewMeshGraph(Options{})
	a := g.addVertex(Vector2{X: 0, Y: 0})
	w := g.addVertex(Vector2{X: 21, Y: -8})
	q := g.addVertex(Vector2{X: 67, Y: -0.0005})
	c := g.addVertex(Vector2{X: 100, Y: 0})
	top := g.addVertex(Vector2{X: 50, Y: 30})
	bottom := g.addVertex(Vector2{X: 50, Y: -40})
	for _, link := range [][2]VertexID{{a, w}, {w, q}, {q, c}} {
		g.newTriangle(top, link[0], link[1])
		g.newTriangle(bottom, link[0], link[1])
	}
	requireValidMesh(t, g)

	require.NoError(t, recoverMeshError(func() { g.RemoveDelaunayVertex(top) }))
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 9, g.EdgeCount())
	assert.Equal(t, 5, g.TriangleCount())
	requireValidMesh(t, g)
	assert.True(t, g.Edge(requireEdge(t, g, a, c)).IsBoundary())
	assert.True(t, g.Edge(requireEdge(t, g, q, c)).IsInterior())
}

func TestRemoveDelaunayVertex_Chain(t *testing.T) {
	g := newTestMesh(Vector2{X: 0, Y: 0}, Vector2{X: 1, Y: 0}, Vector2{X: 2, Y: 0})
	require.Equal(t, 2, g.EdgeCount())

	g.RemoveDelaunayVertex(1)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	requireEdge(t, g, 0, 2)

	g.RemoveDelaunayVertex(2)
	assert.Equal(t, 0, g.EdgeCount())
	g.RemoveDelaunayVertex(0)
	assert.Equal(t, 0, g.VertexCount())
}

func TestRemoveDelaunayVertex_BackToChain(t *testing.T) {
	g := newDelaunayMesh(Vector2{X: 0, Y: 0}, Vector2{X: 1, Y: 0}, Vector2{X: 2, Y: 0}, Vector2{X: 1, Y: 1})
	require.Equal(t, 2, g.TriangleCount())

	g.RemoveDelaunayVertex(3)
	assert.Equal(t, 0, g.TriangleCount())
	assert.Equal(t, 2, g.EdgeCount())
	requireValidMesh(t, g)

	// The chain still accepts points
	g.AddDelaunayPoint(Vector2{X: 1, Y: -1})
	assert.Equal(t, 2, g.TriangleCount())
	requireDelaunayMesh(t, g)
}

func TestRemoveDelaunayPoint(t *testing.T) {
	g := newDelaunayMesh(squareWithCenter...)
	assert.False(t, g.RemoveDelaunayPoint(Vector2{X: 1, Y: 1}))
	assert.Equal(t, 5, g.VertexCount())

	assert.True(t, g.RemoveDelaunayPoint(Vector2{X: 2, Y: 2}))
	assert.Equal(t, 4, g.VertexCount())
	requireDelaunayMesh(t, g)
}

func TestRemoveDelaunayVertex_Missing(t *testing.T) {
	g := newDelaunayMesh(squareWithCenter...)
	err := recoverMeshError(func() { g.RemoveDelaunayVertex(42) })
	assert.True(t, errors.Is(err, ErrVertexNotFound))
	assert.Equal(t, 5, g.VertexCount())
}

func TestRemoveDelaunayVertex_NonSimpleHole(t *testing.T) {
	// Two triangles touching only at the center vertex
	g := NewMeshGraph(Options{})
	center := g.addVertex(Vector2{X: 0, Y: 0})
	a := g.addVertex(Vector2{X: 2, Y: -1})
	b := g.addVertex(Vector2{X: 2, Y: 1})
	c := g.addVertex(Vector2{X: -2, Y: 1})
	d := g.addVertex(Vector2{X: -2, Y: -1})
	g.newTriangle(center, a, b)
	g.newTriangle(center, c, d)

	err := recoverMeshError(func() { g.RemoveDelaunayVertex(center) })
	assert.True(t, errors.Is(err, ErrNonSimpleHole))

	// Nothing was touched
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 2, g.TriangleCount())
}

func TestRemoveDelaunayVertex_RoundTrip(t *testing.T) {
	points := randomPoints(4, 40, 100)
	g := newDelaunayMesh(points...)
	requireDelaunayMesh(t, g)

	ids := g.VertexIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		g.RemoveDelaunayVertex(ids[i])
		require.Equal(t, i, g.VertexCount())
		requireDelaunayMesh(t, g)
	}
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.TriangleCount())
}

func TestRemoveDelaunayVertex_RandomOrder(t *testing.T) {
	points := randomPoints(5, 40, 100)
	g := newDelaunayMesh(points...)

	// Remove every other vertex, then compare with a mesh built from the
	// survivors alone
	var survivors []Vector2
	for i, id := range g.VertexIDs() {
		if i%2 == 0 {
			g.RemoveDelaunayVertex(id)
			requireDelaunayMesh(t, g)
		} else {
			survivors = append(survivors, points[i])
		}
	}

	fresh := newDelaunayMesh(survivors...)
	assert.Equal(t, fresh.TriangleCount(), g.TriangleCount())
	assert.Equal(t, fresh.EdgeCount(), g.EdgeCount())
	assert.ElementsMatch(t, positionTriangles(fresh), positionTriangles(g))
}

// Triangles as sorted position triples, for comparing meshes with different
// IDs.
func positionTriangles(g *MeshGraph) [][3]Vector2 {
	var result [][3]Vector2
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TrianglePositions(id)
		// Rotate so the smallest point comes first; winding is fixed
		points := [3]Vector2{a, b, c}
		first := 0
		for i, p := range points {
			q := points[first]
			if p.X < q.X || (p.X == q.X && p.Y < q.Y) {
				first = i
			}
		}
		result = append(result, [3]Vector2{points[first], points[(first+1)%3], points[(first+2)%3]})
	}
	return result
}
