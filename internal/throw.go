package internal

import "github.com/pkg/errors"

// Threading errors through every step of an insertion, a flip pass or a hole
// retriangulation would add a ton of noise to the geometry code. Instead, the
// engine panics with a MeshError, and the public API recovers to convert it to
// an error.

var (
	ErrVertexNotFound   = errors.New("vertex not found")
	ErrEdgeNotFound     = errors.New("edge not found")
	ErrTriangleNotFound = errors.New("triangle not found")
	ErrNotInterior      = errors.New("edge is not interior")
	ErrNotFlippable     = errors.New("edge quadrilateral is not convex")
	ErrNonSimpleHole    = errors.New("hole polygon is not simple")
	ErrInconsistentMesh = errors.New("mesh topology is inconsistent")
)

type MeshError struct {
	err error
}

func (e MeshError) Error() string { return e.err.Error() }
func (e MeshError) Cause() error  { return e.err }
func (e MeshError) Unwrap() error { return e.err }

// Panic with a MeshError.
func fatalf(format string, args ...interface{}) {
	panic(MeshError{errors.Errorf(format, args...)})
}

// Panic with a MeshError wrapping one of the sentinel errors above.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(MeshError{errors.Wrapf(err, format, args...)})
}

func HandleMeshPanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError
		}
		panic(r)
	}
	return nil
}
