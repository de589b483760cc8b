package internal

import "math"

// All floating point slack used by the engine lives here. Predicates are plain
// float64 arithmetic, so every comparison that decides between two code paths
// goes through one of these.
const (
	// Two directions are aligned when 1 - |cos θ| is at most this.
	AlignmentTolerance = 1e-10
	// A point is strictly inside a circle when its distance to the center is
	// below Radius * (1 - CircleTolerance). Cocircular points are outside.
	CircleTolerance = 1e-10
	// Raycasts against planes closer to parallel than this miss.
	RaycastTolerance = 1e-4
	// Generic absolute tolerance for value comparisons and tests.
	Epsilon = 1e-9
)

type Tolerances struct {
	Alignment float64
	Circle    float64
}

func DefaultTolerances() Tolerances {
	return Tolerances{
		Alignment: AlignmentTolerance,
		Circle:    CircleTolerance,
	}
}

func (t Tolerances) orDefault() Tolerances {
	d := DefaultTolerances()
	if t.Alignment <= 0 {
		t.Alignment = d.Alignment
	}
	if t.Circle <= 0 {
		t.Circle = d.Circle
	}
	return t
}

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
