package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIds(t *testing.T) {
	g := NewMeshGraph(Options{})
	assert.Equal(t, VertexID(0), g.GenerateVertexId())
	assert.Equal(t, VertexID(1), g.GenerateVertexId())
	assert.Equal(t, EdgeID(0), g.GenerateEdgeId())
	assert.Equal(t, TriangleID(0), g.GenerateTriangleId())
	assert.Equal(t, TriangleID(1), g.GenerateTriangleId())

	// Clearing doesn't reset the counters
	g.Clear()
	assert.Equal(t, VertexID(2), g.GenerateVertexId())
	assert.Equal(t, EdgeID(1), g.GenerateEdgeId())
}

func TestLookups(t *testing.T) {
	g := newTestMesh(Vector2{X: 0, Y: 0}, Vector2{X: 1, Y: 0}, Vector2{X: 0, Y: 1})
	assert.Equal(t, []VertexID{0, 1, 2}, g.VertexIDs())
	assert.Len(t, g.EdgeIDs(), 3)
	assert.Len(t, g.TriangleIDs(), 1)
	assert.Equal(t, Vector2{X: 1, Y: 0}, g.Vertex(1).Position)

	id, ok := g.FindVertex(Vector2{X: 0, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, VertexID(2), id)
	_, ok = g.FindVertex(Vector2{X: 0.5, Y: 0.5})
	assert.False(t, ok)

	_, ok = g.FindEdge(0, 1)
	assert.True(t, ok)
	_, ok = g.FindEdge(1, 0)
	assert.True(t, ok, "edge lookup ignores direction")
}

func TestLookups_Missing(t *testing.T) {
	g := NewMeshGraph(Options{})

	err := recoverMeshError(func() { g.Vertex(12) })
	assert.True(t, errors.Is(err, ErrVertexNotFound))
	err = recoverMeshError(func() { g.Edge(3) })
	assert.True(t, errors.Is(err, ErrEdgeNotFound))
	err = recoverMeshError(func() { g.Triangle(5) })
	assert.True(t, errors.Is(err, ErrTriangleNotFound))

	assert.False(t, g.HasVertex(12))
	assert.False(t, g.HasEdge(3))
	assert.False(t, g.HasTriangle(5))
}

func TestGetClosestPoint(t *testing.T) {
	g := NewMeshGraph(Options{})
	_, ok := g.GetClosestPoint(Vector2{})
	assert.False(t, ok)

	g.AddPoint(Vector2{X: 0, Y: 0})
	g.AddPoint(Vector2{X: 10, Y: 0})
	g.AddPoint(Vector2{X: 0, Y: 10})

	id, ok := g.GetClosestPoint(Vector2{X: 8, Y: 1})
	require.True(t, ok)
	assert.Equal(t, VertexID(1), id)

	// Equidistant from 1 and 2, so the lowest ID wins
	id, _ = g.GetClosestPoint(Vector2{X: 10, Y: 10})
	assert.Equal(t, VertexID(1), id)
}

func TestSnapshotRestore(t *testing.T) {
	g := newTestMesh(Vector2{X: 0, Y: 0}, Vector2{X: 4, Y: 0}, Vector2{X: 0, Y: 4})
	snapshot := g.Snapshot()

	g.AddPoint(Vector2{X: 1, Y: 1})
	g.AddPoint(Vector2{X: 5, Y: 5})
	require.Equal(t, 5, g.VertexCount())

	g.Restore(snapshot)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.TriangleCount())
	requireValidMesh(t, g)

	// IDs used before the restore are not handed out again
	assert.Equal(t, VertexID(5), g.GenerateVertexId())

	// The restored mesh keeps working
	g.AddPoint(Vector2{X: 1, Y: 1})
	requireValidMesh(t, g)
	assert.Equal(t, 3, g.TriangleCount())
}

func TestIncidentEdges(t *testing.T) {
	g := newTestMesh(Vector2{X: 0, Y: 0}, Vector2{X: 4, Y: 0}, Vector2{X: 0, Y: 4}, Vector2{X: 1, Y: 1})
	assert.Len(t, g.incidentEdges(3), 3)
	assert.Len(t, g.incidentEdges(0), 3)
}
