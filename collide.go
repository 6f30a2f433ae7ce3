package lander

import "math"

// Collided reports whether two convex polygons overlap, using the separating
// axis theorem with OverlapProjected. Touching boundaries count as a collision.
func Collided(a, b []Position) bool {
	return CollidedMode(a, b, OverlapProjected)
}

// CollidedMode is Collided with an explicit overlap mode. Candidate axes are
// the normals of every edge of a and of every edge of b; the shapes collide
// when none of them separates the projections.
func CollidedMode(a, b []Position, mode OverlapMode) bool {
	var buf axisBuffers
	return buf.noSeparatingAxis(a, b, mode) && buf.noSeparatingAxis(b, a, mode)
}

// axisBuffers holds scratch space reused across axes and pairs.
type axisBuffers struct {
	projA, projB []Position
}

// noSeparatingAxis tests the normals of ref's edges, including the closing
// edge from the last vertex to the first, and reports whether the
// projections of ref and other overlap on all of them.
func (buf *axisBuffers) noSeparatingAxis(ref, other []Position, mode OverlapMode) bool {
	n := len(ref)
	for i := 0; i < n; i++ {
		p1 := ref[i]
		p2 := ref[(i+1)%n]
		// Vertical edges divide by zero and yield an infinite gradient, whose
		// normal has gradient -0 and is handled by Project's horizontal case.
		g := (p1.Y - p2.Y) / (p1.X - p2.X)
		axis := -1 / g

		var overlap bool
		if mode == OverlapScalar {
			overlap = scalarOverlap(ref, other, axis)
		} else {
			overlap = buf.projectedOverlap(ref, other, axis)
		}
		if !overlap {
			return false
		}
	}
	return true
}

// projectedOverlap projects both shapes onto the line through the origin with
// the given gradient and compares the x and y extents of the projections.
func (buf *axisBuffers) projectedOverlap(a, b []Position, gradient float64) bool {
	buf.projA = projectAll(buf.projA[:0], a, gradient)
	buf.projB = projectAll(buf.projB[:0], b, gradient)

	aLo, aHi := Extrema(buf.projA)
	bLo, bHi := Extrema(buf.projB)

	return aHi.X >= bLo.X && bHi.X >= aLo.X &&
		aHi.Y >= bLo.Y && bHi.Y >= aLo.Y
}

func projectAll(dst, points []Position, gradient float64) []Position {
	for _, p := range points {
		dst = append(dst, Project(p, gradient))
	}
	return dst
}

// scalarOverlap reduces every vertex to a coordinate along the direction of
// the line y = gradient*x and intersects the two closed intervals. The
// direction is left unnormalized; scaling does not change the result.
func scalarOverlap(a, b []Position, gradient float64) bool {
	aLo, aHi := axisInterval(a, gradient)
	bLo, bHi := axisInterval(b, gradient)
	return aHi >= bLo && bHi >= aLo
}

func axisInterval(points []Position, gradient float64) (lo, hi float64) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		var s float64
		switch {
		case math.IsInf(gradient, 0):
			s = p.Y
		case math.Abs(gradient) < epsilon:
			s = p.X
		default:
			s = p.X + float64(gradient*p.Y)
		}
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return lo, hi
}
