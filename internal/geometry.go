package internal

import "math"

// Twice the signed area of ABC. Positive when A, B, C wind counterclockwise.
func Orientation(a, b, c Vector2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func IsTriangleOriented(a, b, c Vector2) bool {
	return Orientation(a, b, c) > 0
}

// Orientation test on the two sides of a triangle sharing the origin A.
func IsVectorPairOriented(ab, ac Vector2) bool {
	return ab.Cross(ac) > 0
}

// Whether p sits on the line through a and b, up to the alignment tolerance. A
// point coincident with a is aligned with anything.
func IsAligned(a, b, p Vector2, tolerance float64) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if ab.Norm() == 0 || ap.Norm() == 0 {
		return true
	}
	return math.Abs(ab.Normalize().Dot(ap.Normalize())) >= 1-tolerance
}

// Whether p lies on the open segment ab.
func IsOnSegment(a, b, p Vector2, tolerance float64) bool {
	if p == a || p == b || !IsAligned(a, b, p, tolerance) {
		return false
	}
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab)
	return t > 0 && t < ab.Dot(ab)
}

// Point in triangle test, inclusive of the boundary. The triangle may be given
// in either winding. The vertices themselves count as inside; points on the
// extension of an edge beyond the triangle do not.
func PointIsInsideTriangle(p, a, b, c Vector2) bool {
	return pointIsInsideTriangle(p, a, b, c, AlignmentTolerance)
}

func pointIsInsideTriangle(p, a, b, c Vector2, tolerance float64) bool {
	if p == a || p == b || p == c {
		return true
	}
	orientation := Orientation(a, b, c)
	if orientation == 0 {
		return false
	}
	if orientation < 0 {
		b, c = c, b
	}
	for _, side := range [3][2]Vector2{{a, b}, {b, c}, {c, a}} {
		if Orientation(side[0], side[1], p) > 0 {
			continue
		}
		if !IsAligned(side[0], side[1], p, tolerance) {
			return false
		}
	}
	return true
}

// Circumcenter of ABC. Undefined for collinear points; callers never pass any.
func GetCircleCenter(a, b, c Vector2) Vector2 {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	a2 := a.Dot(a)
	b2 := b.Dot(b)
	c2 := c.Dot(c)
	return Vector2{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
}

func GetCircleRadius(a, b, c Vector2) float64 {
	return GetCircleCenter(a, b, c).Sub(a).Norm()
}

func GetCircle(a, b, c Vector2) Circle {
	center := GetCircleCenter(a, b, c)
	return Circle{Center: center, Radius: center.Sub(a).Norm()}
}

// Strict containment. Points on the circle, up to the tolerance, are outside.
func (c Circle) Contains(p Vector2) bool {
	return c.contains(p, CircleTolerance)
}

func (c Circle) contains(p Vector2, tolerance float64) bool {
	return p.Sub(c.Center).Norm() < c.Radius*(1-tolerance)
}

// Unsigned angle in radians between x and y.
func Angle(x, y Vector2) float64 {
	cos := x.Normalize().Dot(y.Normalize())
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// Angle from x to y in radians, counterclockwise, within [0, 2π).
func SignedAngle(x, y Vector2) float64 {
	angle := Angle(x, y)
	if IsVectorPairOriented(x, y) || angle == 0 {
		return angle
	}
	return 2*math.Pi - angle
}

func CalculateCenter(points []Vector2) Vector2 {
	if len(points) == 0 {
		return Vector2{}
	}
	var center Vector2
	for _, p := range points {
		center = center.Add(p)
	}
	return center.Mul(1 / float64(len(points)))
}

// Twice the signed area of a polygon, positive when counterclockwise.
func SignedArea(points []Vector2) float64 {
	var area float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		area += p.Cross(q)
	}
	return area
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
