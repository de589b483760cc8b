package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycast(t *testing.T) {
	up := Vector3{Y: 1}
	down := Vector3{Y: -1}
	diagonal := Vector3{X: 1, Y: 1, Z: 1}.Normalize()
	flatDiagonal := Vector3{X: 1, Y: 1}.Normalize()

	cases := []struct {
		name     string
		plane    Plane
		ray      Ray
		hit      bool
		distance float64
	}{
		{"straight down", Plane{Normal: up}, Ray{Origin: up, Direction: down}, true, 1},
		{"behind the origin", Plane{Normal: up}, Ray{Origin: up, Direction: up}, true, -1},
		{"offset plane origin", Plane{Origin: Vector3{X: 10, Z: 10}, Normal: up}, Ray{Origin: up, Direction: down}, true, 1},
		{"raised plane", Plane{Origin: Vector3{Y: 0.5}, Normal: up}, Ray{Origin: up, Direction: down}, true, 0.5},
		{"parallel", Plane{Normal: up}, Ray{Origin: up, Direction: Vector3{X: 1}}, false, 0},
		{"vertical plane", Plane{Origin: Vector3{X: -1, Y: 5}, Normal: Vector3{X: 1}}, Ray{Origin: up, Direction: Vector3{X: 1}}, true, -1},
		{"oblique", Plane{Origin: Vector3{X: 1, Y: 1, Z: 1}, Normal: diagonal}, Ray{Origin: down, Direction: diagonal}, true, Vector3{X: 4.0 / 3, Y: 4.0 / 3, Z: 4.0 / 3}.Norm()},
		{"oblique in xy", Plane{Origin: Vector3{X: 1, Y: 1}, Normal: flatDiagonal}, Ray{Origin: down, Direction: flatDiagonal}, true, math.Sqrt(4.5)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			distance, ok := Raycast(c.plane, c.ray)
			require.Equal(t, c.hit, ok)
			if c.hit {
				assert.InDelta(t, c.distance, distance, Epsilon)
			}
		})
	}
}

func TestGroundPoint(t *testing.T) {
	ray := Ray{Origin: Vector3{X: 2, Y: 4, Z: -3}, Direction: Vector3{Y: -2}}
	p, ok := GroundPoint(ray)
	require.True(t, ok)
	assert.InDelta(t, 2, p.X, Epsilon)
	assert.InDelta(t, -3, p.Y, Epsilon)

	hit, ok := RaycastToPoint(GroundPlane, ray)
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Y, Epsilon)

	_, ok = GroundPoint(Ray{Origin: Vector3{Y: 1}, Direction: Vector3{Z: 1}})
	assert.False(t, ok)
}
