package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexShell_Square(t *testing.T) {
	points := []Vector2{
		{X: 0.5, Y: 0.5},
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 0.5, Y: 0.5},
	}
	for name, shell := range map[string][]Vector2{
		"jarvis": JarvisConvexShell(points),
		"graham": GrahamScanConvexShell(points),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, shell, 4)
			assert.NotContains(t, shell, Vector2{X: 0.5, Y: 0.5})
			assert.Greater(t, SignedArea(shell), 0.0)
		})
	}
}

func TestConvexShell_JarvisMatchesGraham(t *testing.T) {
	points := randomPoints(7, 50, 100)
	jarvis := JarvisConvexShell(points)
	graham := GrahamScanConvexShell(points)
	require.Len(t, graham, len(jarvis))
	require.Greater(t, len(jarvis), 2)

	// Same loop, possibly starting somewhere else
	offset := -1
	for i, p := range graham {
		if p == jarvis[0] {
			offset = i
		}
	}
	require.GreaterOrEqual(t, offset, 0)
	for i, p := range jarvis {
		assert.Equal(t, p, graham[CircularIndex(i+offset, len(graham))])
	}

	// Every point is inside the shell
	for _, p := range points {
		for i := range jarvis {
			a, b := jarvis[i], jarvis[CircularIndex(i+1, len(jarvis))]
			assert.GreaterOrEqual(t, Orientation(a, b, p), -Epsilon)
		}
	}
}

func TestConvexShell_Degenerate(t *testing.T) {
	assert.Len(t, JarvisConvexShell([]Vector2{{X: 1, Y: 1}, {X: 1, Y: 1}}), 1)
	assert.Len(t, GrahamScanConvexShell(nil), 0)
}
