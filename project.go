package lander

import "math"

// epsilon is the float64 machine epsilon (2^-52).
const epsilon = 0x1p-52

// Project returns the orthogonal projection of p onto the line y = gradient*x.
//
// An infinite gradient is the vertical line x = 0 and a gradient smaller in
// magnitude than machine epsilon is treated as the horizontal line y = 0.
// Other gradients intersect the line with its perpendicular through p.
func Project(p Position, gradient float64) Position {
	switch {
	case math.IsInf(gradient, 0):
		return Position{X: 0, Y: p.Y}
	case math.Abs(gradient) < epsilon:
		return Position{X: p.X, Y: 0}
	}
	// Explicit float64 conversions block fused multiply-add so projections
	// are bit-identical on every GOARCH.
	orth := -1 / gradient
	b := p.Y - float64(orth*p.X)
	x := -b / (orth - gradient)
	return Position{X: x, Y: float64(gradient * x)}
}

// Extrema returns the componentwise minimum and maximum of points. NaN
// coordinates are skipped, so an empty slice or one holding only NaN yields
// (MaxFloat64, MaxFloat64) and (-MaxFloat64, -MaxFloat64).
func Extrema(points []Position) (lo, hi Position) {
	lo = Position{X: math.MaxFloat64, Y: math.MaxFloat64}
	hi = Position{X: -math.MaxFloat64, Y: -math.MaxFloat64}
	for _, p := range points {
		if !math.IsNaN(p.X) {
			lo.X = math.Min(lo.X, p.X)
			hi.X = math.Max(hi.X, p.X)
		}
		if !math.IsNaN(p.Y) {
			lo.Y = math.Min(lo.Y, p.Y)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}
