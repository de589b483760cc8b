package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

type Vector2 = r2.Point
type Vector3 = r3.Vector

// Entities reference each other by ID only. IDs are generated densely per
// entity kind and never reused.
type VertexID uint32
type EdgeID uint32
type TriangleID uint32

type Vertex struct {
	Position Vector2
}

// TriangleRef is the optional triangle on one side of an edge.
type TriangleRef struct {
	id  TriangleID
	set bool
}

var NoTriangle = TriangleRef{}

func SomeTriangle(id TriangleID) TriangleRef {
	return TriangleRef{id: id, set: true}
}

func (r TriangleRef) Get() (TriangleID, bool) { return r.id, r.set }
func (r TriangleRef) IsSet() bool             { return r.set }
func (r TriangleRef) Is(id TriangleID) bool   { return r.set && r.id == id }

func (r TriangleRef) String() string {
	if !r.set {
		return "-"
	}
	return fmt.Sprintf("%d", r.id)
}

type Side int

const (
	Left Side = iota
	Right
)

// An edge joins two vertices. TriangleLeft lies on the left of the directed
// edge VertexA → VertexB, TriangleRight on its right.
type Edge struct {
	VertexA       VertexID
	VertexB       VertexID
	TriangleLeft  TriangleRef
	TriangleRight TriangleRef
}

func (e Edge) Has(v VertexID) bool {
	return e.VertexA == v || e.VertexB == v
}

// The endpoint that isn't v.
func (e Edge) Other(v VertexID) VertexID {
	if e.VertexA == v {
		return e.VertexB
	}
	return e.VertexA
}

func (e Edge) IsInterior() bool { return e.TriangleLeft.set && e.TriangleRight.set }
func (e Edge) IsBoundary() bool { return e.TriangleLeft.set != e.TriangleRight.set }
func (e Edge) IsDangling() bool { return !e.TriangleLeft.set && !e.TriangleRight.set }

func (e Edge) Triangle(side Side) TriangleRef {
	if side == Left {
		return e.TriangleLeft
	}
	return e.TriangleRight
}

// The triangles on both sides, in left, right order, skipping empty sides.
func (e Edge) Triangles() []TriangleID {
	var result []TriangleID
	if id, ok := e.TriangleLeft.Get(); ok {
		result = append(result, id)
	}
	if id, ok := e.TriangleRight.Get(); ok {
		result = append(result, id)
	}
	return result
}

// The side of the edge holding triangle t, if any.
func (e Edge) SideOf(t TriangleID) (Side, bool) {
	switch {
	case e.TriangleLeft.Is(t):
		return Left, true
	case e.TriangleRight.Is(t):
		return Right, true
	}
	return Left, false
}

// A triangle is a cycle of three edges. Walking AB → BC → CA visits the
// vertices counterclockwise.
type Triangle struct {
	EdgeAB EdgeID
	EdgeBC EdgeID
	EdgeCA EdgeID
}

func (t Triangle) Edges() [3]EdgeID {
	return [3]EdgeID{t.EdgeAB, t.EdgeBC, t.EdgeCA}
}

func (t Triangle) HasEdge(e EdgeID) bool {
	return t.EdgeAB == e || t.EdgeBC == e || t.EdgeCA == e
}

type Circle struct {
	Center Vector2
	Radius float64
}

// Unordered vertex pair, used to find the edge joining two vertices.
type edgeKey struct {
	lo, hi VertexID
}

func newEdgeKey(a, b VertexID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}
