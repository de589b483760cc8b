package internal

import "math"

// Ray casting against planes. Callers turn a viewport ray into a point on the
// ground plane with these and hand the point to the mesh; the mesh itself
// never knows about windows or cameras.

type Plane struct {
	Origin Vector3
	Normal Vector3
}

type Ray struct {
	Origin    Vector3
	Direction Vector3
}

func (r Ray) GetPoint(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// The ground plane y = 0, facing up.
var GroundPlane = Plane{Normal: Vector3{Y: 1}}

// Distance along the ray to the plane, in units of the ray direction. Misses
// when the ray is parallel to the plane. Hits behind the origin are negative.
func Raycast(plane Plane, ray Ray) (float64, bool) {
	denom := plane.Normal.Dot(ray.Direction)
	if math.Abs(denom) <= RaycastTolerance {
		return 0, false
	}
	return -plane.Normal.Dot(ray.Origin.Sub(plane.Origin)) / denom, true
}

func RaycastToPoint(plane Plane, ray Ray) (Vector3, bool) {
	t, ok := Raycast(plane, ray)
	if !ok {
		return Vector3{}, false
	}
	return ray.GetPoint(t), true
}

// The point where the ray meets the ground plane, as mesh coordinates (x, z).
func GroundPoint(ray Ray) (Vector2, bool) {
	hit, ok := RaycastToPoint(GroundPlane, ray)
	if !ok {
		return Vector2{}, false
	}
	return Vector2{X: hit.X, Y: hit.Z}, true
}
