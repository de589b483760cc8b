package internal

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Build a mesh from random points, then take it apart again in random order,
// checking the whole mesh after every step. Random clouds eventually produce
// nearly collinear hull vertices, which exercise the tolerance paths.
func TestInsertRemove_Stress(t *testing.T) {
	seeds := 200
	if testing.Short() {
		seeds = 20
	}
	for _, delaunay := range []bool{false, true} {
		for seed := int64(0); seed < int64(seeds); seed++ {
			t.Run(fmt.Sprintf("delaunay=%v/seed=%d", delaunay, seed), func(t *testing.T) {
				stressMesh(t, seed, 60, delaunay)
			})
		}
	}
}

func stressMesh(t *testing.T, seed int64, n int, delaunay bool) {
	check := requireValidMesh
	if delaunay {
		check = requireDelaunayMesh
	}

	g := NewMeshGraph(Options{})
	for i, p := range randomPoints(seed, n, 100) {
		err := recoverMeshError(func() { g.insert(p, delaunay) })
		require.NoError(t, err, "inserting point %d at %v", i, p)
		check(t, g)
	}
	require.Equal(t, n, g.VertexCount())

	ids := g.VertexIDs()
	rand.New(rand.NewSource(seed)).Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	for i, id := range ids {
		err := recoverMeshError(func() { g.RemoveDelaunayVertex(id) })
		require.NoError(t, err, "removal %d of vertex %d", i, id)
		check(t, g)
	}
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 0, g.TriangleCount())
}
