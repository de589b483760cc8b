package meshgraph

import (
	"github.com/osuushi/meshgraph/internal"
	"github.com/pkg/errors"
)

// Build a mesh from a point set in one go.
//
// The points are sorted by x then y and inserted in that order, which keeps
// the hull search short. With delaunay set, the mesh is then flipped into its
// Delaunay triangulation. Duplicate points are ignored.
func Triangulate(points []Vector2, delaunay bool, options Options) (result *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = errors.WithMessage(recoveredErr, "triangulate")
		}
	}()

	g := internal.NewMeshGraph(options)
	for _, p := range internal.SortPoints(points) {
		g.AddPoint(p)
	}
	if delaunay {
		g.DelaunayTriangulation()
	}
	return &Mesh{graph: g}, nil
}
