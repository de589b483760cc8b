package internal

// This contains no actual tests. It holds helpers for checking meshes.

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidMesh(t *testing.T, g *MeshGraph) {
	t.Helper()
	require.NoError(t, g.Validate(), g.Dump())
	// A triangulated disk with no dangling edges satisfies V - E + F = 1.
	if g.TriangleCount() > 0 {
		assert.Equal(t, 1, g.VertexCount()-g.EdgeCount()+g.TriangleCount(), "euler relation")
	}
}

func requireDelaunayMesh(t *testing.T, g *MeshGraph) {
	t.Helper()
	requireValidMesh(t, g)
	require.NoError(t, g.ValidateDelaunay(), g.Dump())
}

func newTestMesh(points ...Vector2) *MeshGraph {
	g := NewMeshGraph(Options{})
	for _, p := range points {
		g.AddPoint(p)
	}
	return g
}

func newDelaunayMesh(points ...Vector2) *MeshGraph {
	g := NewMeshGraph(Options{})
	for _, p := range points {
		g.AddDelaunayPoint(p)
	}
	return g
}

func randomPoints(seed int64, n int, size float64) []Vector2 {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Vector2, n)
	for i := range points {
		points[i] = Vector2{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	return points
}

// Every triangle as its sorted vertex IDs, for comparing meshes built from the
// same insertion sequence.
func triangleSet(g *MeshGraph) map[[3]VertexID]struct{} {
	set := make(map[[3]VertexID]struct{})
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TriangleVertices(id)
		key := []VertexID{a, b, c}
		sort.Slice(key, func(i, j int) bool { return key[i] < key[j] })
		set[[3]VertexID{key[0], key[1], key[2]}] = struct{}{}
	}
	return set
}

// Run fn and return the error it panicked with, if any.
func recoverMeshError(fn func()) (err error) {
	defer func() {
		err = HandleMeshPanicRecover(recover())
	}()
	fn()
	return nil
}

func requireEdge(t *testing.T, g *MeshGraph, a, b VertexID) EdgeID {
	t.Helper()
	id, ok := g.FindEdge(a, b)
	require.True(t, ok, "expected an edge between %d and %d", a, b)
	return id
}
