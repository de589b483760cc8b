// Raw access to the mesh engine.
//
// Everything here works on the MeshGraph directly, without the snapshot and
// rollback the root package wraps around each call. Operations panic with a
// MeshError when an invariant is violated (a missing ID, a flip of a hull edge,
// a hole that can't be retriangulated). Recover with HandleMeshPanicRecover to
// turn those panics into errors. After such a panic the mesh may be left half
// mutated; restore a Snapshot taken beforehand if you need to keep using it.
package advanced

import (
	"io"

	"github.com/osuushi/meshgraph/internal"
)

type MeshGraph = internal.MeshGraph
type Options = internal.Options
type Tolerances = internal.Tolerances
type Snapshot = internal.Snapshot
type MeshError = internal.MeshError

type Vector2 = internal.Vector2
type Vector3 = internal.Vector3

type VertexID = internal.VertexID
type EdgeID = internal.EdgeID
type TriangleID = internal.TriangleID
type Vertex = internal.Vertex
type Edge = internal.Edge
type Triangle = internal.Triangle
type TriangleRef = internal.TriangleRef
type Side = internal.Side
type Circle = internal.Circle

type Plane = internal.Plane
type Ray = internal.Ray
type DrawOptions = internal.DrawOptions

const (
	Left  = internal.Left
	Right = internal.Right

	AlignmentTolerance = internal.AlignmentTolerance
	CircleTolerance    = internal.CircleTolerance
	RaycastTolerance   = internal.RaycastTolerance
)

var NoTriangle = internal.NoTriangle

var (
	ErrVertexNotFound   = internal.ErrVertexNotFound
	ErrEdgeNotFound     = internal.ErrEdgeNotFound
	ErrTriangleNotFound = internal.ErrTriangleNotFound
	ErrNotInterior      = internal.ErrNotInterior
	ErrNotFlippable     = internal.ErrNotFlippable
	ErrNonSimpleHole    = internal.ErrNonSimpleHole
	ErrInconsistentMesh = internal.ErrInconsistentMesh
)

var GroundPlane = internal.GroundPlane

func NewMeshGraph(options Options) *MeshGraph {
	return internal.NewMeshGraph(options)
}

func DefaultTolerances() Tolerances {
	return internal.DefaultTolerances()
}

// Convert a recovered panic value into an error. MeshErrors become errors;
// anything else is re-panicked. Use it in a deferred function:
//
//	defer func() {
//		if recoveredErr := advanced.HandleMeshPanicRecover(recover()); recoveredErr != nil {
//			err = recoveredErr
//		}
//	}()
func HandleMeshPanicRecover(r interface{}) error {
	return internal.HandleMeshPanicRecover(r)
}

// Geometry

func GetCircle(a, b, c Vector2) Circle              { return internal.GetCircle(a, b, c) }
func GetCircleCenter(a, b, c Vector2) Vector2       { return internal.GetCircleCenter(a, b, c) }
func GetCircleRadius(a, b, c Vector2) float64       { return internal.GetCircleRadius(a, b, c) }
func PointIsInsideTriangle(p, a, b, c Vector2) bool { return internal.PointIsInsideTriangle(p, a, b, c) }
func IsTriangleOriented(a, b, c Vector2) bool       { return internal.IsTriangleOriented(a, b, c) }
func Angle(x, y Vector2) float64                    { return internal.Angle(x, y) }
func SignedAngle(x, y Vector2) float64              { return internal.SignedAngle(x, y) }
func CalculateCenter(points []Vector2) Vector2      { return internal.CalculateCenter(points) }

func JarvisConvexShell(points []Vector2) []Vector2 {
	return internal.JarvisConvexShell(points)
}

func GrahamScanConvexShell(points []Vector2) []Vector2 {
	return internal.GrahamScanConvexShell(points)
}

// Raycasting

func Raycast(plane Plane, ray Ray) (float64, bool)        { return internal.Raycast(plane, ray) }
func RaycastToPoint(plane Plane, ray Ray) (Vector3, bool) { return internal.RaycastToPoint(plane, ray) }
func GroundPoint(ray Ray) (Vector2, bool)                 { return internal.GroundPoint(ray) }

// Sort the points by x then y, insert them one by one into a fresh mesh and
// return it lifted onto the XZ plane at height y.
func IncrementalTriangulation(points []Vector2, y float64, options Options) []Vector3 {
	return internal.IncrementalTriangulation(points, y, options)
}

func SortPoints(points []Vector2) []Vector2 {
	return internal.SortPoints(points)
}

// Print a PNG written by DrawPNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	return internal.CatPNG(path, w)
}
