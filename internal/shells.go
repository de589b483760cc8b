package internal

import "sort"

// Convex shells of point clouds. Both return the hull corners counterclockwise
// without collinear points. They are used to check that the boundary edges of
// a mesh really are its hull.

// Gift wrapping, starting from the leftmost (then lowest) point.
func JarvisConvexShell(points []Vector2) []Vector2 {
	points = uniquePoints(points)
	if len(points) < 3 {
		return points
	}

	first := points[0]
	for _, p := range points[1:] {
		if p.X < first.X || (p.X == first.X && p.Y < first.Y) {
			first = p
		}
	}

	shell := []Vector2{first}
	current := first
	for i := 0; i < len(points); i++ {
		next := points[0]
		if next == current {
			next = points[1]
		}
		for _, candidate := range points {
			if candidate == current {
				continue
			}
			orientation := Orientation(current, next, candidate)
			if orientation < 0 {
				next = candidate
			} else if orientation == 0 && candidate.Sub(current).Norm() > next.Sub(current).Norm() {
				next = candidate
			}
		}
		if next == first {
			break
		}
		shell = append(shell, next)
		current = next
	}
	return shell
}

// Sort the points by angle around their centroid, then repeatedly drop any
// point that doesn't make a left turn with its neighbors.
func GrahamScanConvexShell(points []Vector2) []Vector2 {
	points = uniquePoints(points)
	if len(points) < 3 {
		return points
	}

	center := CalculateCenter(points)
	reference := Vector2{X: 1, Y: 0}
	shell := append([]Vector2(nil), points...)
	sort.SliceStable(shell, func(i, j int) bool {
		toI := shell[i].Sub(center)
		toJ := shell[j].Sub(center)
		angleI := SignedAngle(reference, toI)
		angleJ := SignedAngle(reference, toJ)
		if angleI == angleJ {
			return toI.Norm() < toJ.Norm()
		}
		return angleI < angleJ
	})

	for changed := true; changed && len(shell) > 2; {
		changed = false
		for i := 0; i < len(shell) && len(shell) > 2; {
			prev := shell[CircularIndex(i-1, len(shell))]
			next := shell[CircularIndex(i+1, len(shell))]
			if IsTriangleOriented(prev, shell[i], next) {
				i++
				continue
			}
			shell = append(shell[:i], shell[i+1:]...)
			changed = true
		}
	}
	return shell
}

func uniquePoints(points []Vector2) []Vector2 {
	seen := make(map[Vector2]struct{}, len(points))
	result := make([]Vector2, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
