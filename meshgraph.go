// A planar triangle mesh that grows and shrinks one point at a time.
//
// Points are inserted either by fanning them against the region they land in,
// or with a local Bowyer-Watson cavity so that the mesh stays Delaunay. Any
// mesh can be turned into its Delaunay triangulation with edge flips, and
// vertices can be removed again, retriangulating the hole they leave.
//
// Every mutating call either completes or leaves the mesh exactly as it was:
// the mesh is snapshotted before each call and restored if the call fails.
// Callers that don't want that overhead can use the advanced package instead.
package meshgraph

import (
	"github.com/osuushi/meshgraph/advanced"
	"github.com/osuushi/meshgraph/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Vector2 = advanced.Vector2
type Vector3 = advanced.Vector3
type VertexID = advanced.VertexID
type EdgeID = advanced.EdgeID
type TriangleID = advanced.TriangleID
type Vertex = advanced.Vertex
type Edge = advanced.Edge
type Triangle = advanced.Triangle
type Options = advanced.Options
type Tolerances = advanced.Tolerances
type DrawOptions = advanced.DrawOptions

var (
	ErrVertexNotFound = advanced.ErrVertexNotFound
	ErrEdgeNotFound   = advanced.ErrEdgeNotFound
	ErrNotInterior    = advanced.ErrNotInterior
	ErrNotFlippable   = advanced.ErrNotFlippable
	ErrNonSimpleHole  = advanced.ErrNonSimpleHole
)

// Mesh is a MeshGraph behind an API that returns errors instead of panicking.
// It is not safe for concurrent use.
type Mesh struct {
	graph *internal.MeshGraph
}

func New(options Options) *Mesh {
	return &Mesh{graph: internal.NewMeshGraph(options)}
}

// Run a mutation against the graph. If it panics with a mesh error, the graph
// is restored to its state before the call and the error is returned.
func (m *Mesh) mutate(operation string, fn func()) (err error) {
	snapshot := m.graph.Snapshot()
	defer func() {
		recoveredErr := internal.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			m.graph.Restore(snapshot)
			m.graph.Logger().Warn("rolled back failed mesh operation",
				zap.String("operation", operation),
				zap.Error(recoveredErr))
			err = errors.WithMessage(recoveredErr, operation)
		}
	}()
	fn()
	return nil
}

// Run a read only call against the graph, converting mesh errors.
func (m *Mesh) query(operation string, fn func()) (err error) {
	defer func() {
		recoveredErr := internal.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			err = errors.WithMessage(recoveredErr, operation)
		}
	}()
	fn()
	return nil
}

// Insert a point, fanning it against the region it lands in. Inserting a
// point that exactly matches an existing vertex does nothing.
func (m *Mesh) AddPoint(point Vector2) error {
	return m.mutate("add point", func() {
		m.graph.AddPoint(point)
	})
}

// Insert a point and keep the mesh Delaunay.
func (m *Mesh) AddDelaunayPoint(point Vector2) error {
	return m.mutate("add delaunay point", func() {
		m.graph.AddDelaunayPoint(point)
	})
}

// Flip edges until the whole mesh is Delaunay.
func (m *Mesh) DelaunayTriangulation() error {
	return m.mutate("delaunay triangulation", func() {
		m.graph.DelaunayTriangulation()
	})
}

// Whether the edge passes the empty circumcircle test. Hull edges always do.
func (m *Mesh) RespectDelaunay(id EdgeID) (respects bool, err error) {
	err = m.query("respect delaunay", func() {
		respects = m.graph.RespectDelaunay(id)
	})
	return respects, err
}

// Replace an interior edge by the other diagonal of its quadrilateral. The two
// triangles keep their IDs; the new edge is returned. Fails with
// ErrNotFlippable when the quadrilateral isn't strictly convex.
func (m *Mesh) ReverseEdge(id EdgeID) (flipped EdgeID, err error) {
	err = m.mutate("reverse edge", func() {
		flipped = m.graph.ReverseEdge(id)
	})
	return flipped, err
}

// Remove a vertex and retriangulate the hole it leaves, keeping the mesh
// Delaunay. Fails with ErrNonSimpleHole if the triangles around the vertex
// don't form a simple fan; the mesh is left untouched in that case.
func (m *Mesh) RemoveDelaunayVertex(id VertexID) error {
	return m.mutate("remove vertex", func() {
		m.graph.RemoveDelaunayVertex(id)
	})
}

// Remove the vertex at exactly this position. Fails with ErrVertexNotFound if
// there is none.
func (m *Mesh) RemoveDelaunayPoint(point Vector2) error {
	id, ok := m.graph.FindVertex(point)
	if !ok {
		return errors.Wrapf(ErrVertexNotFound, "remove point (%g, %g)", point.X, point.Y)
	}
	return m.RemoveDelaunayVertex(id)
}

// The vertex nearest to the point. False when the mesh is empty.
func (m *Mesh) GetClosestPoint(point Vector2) (VertexID, bool) {
	return m.graph.GetClosestPoint(point)
}

// Remove everything. IDs handed out before are never reused.
func (m *Mesh) Clear() {
	m.graph.Clear()
}

// The underlying graph, for raw access through the advanced package.
func (m *Mesh) Graph() *advanced.MeshGraph {
	return m.graph
}
