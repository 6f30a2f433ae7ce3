package lander

import (
	"github.com/golang/geo/r2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the viewport origin.
type scrollAnim struct {
	target Position
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps world coordinates (meters, Y up) to display coordinates
// (pixels, Y down, origin at the top-left corner).
type Viewport struct {
	// Origin is the world position of the display's top-left corner.
	Origin Position
	// Ratio is the scale in meters per pixel.
	Ratio float64

	followTarget *RigidBody
	followOffset Position
	followLerp   float64

	scrollTween *scrollAnim
}

// NewViewport returns a viewport with the given origin and meters-per-pixel ratio.
func NewViewport(origin Position, ratio float64) *Viewport {
	return &Viewport{Origin: origin, Ratio: ratio}
}

// TranslatePos converts a world position to display pixels.
func (v *Viewport) TranslatePos(real Position) Position {
	return Position{
		X: (real.X - v.Origin.X) / v.Ratio,
		Y: (v.Origin.Y - real.Y) / v.Ratio,
	}
}

// TranslateSize converts a world length to pixels.
func (v *Viewport) TranslateSize(size float64) float64 {
	return size / v.Ratio
}

// ScreenToWorld converts display pixels to a world position.
func (v *Viewport) ScreenToWorld(px Position) Position {
	return Position{
		X: v.Origin.X + px.X*v.Ratio,
		Y: v.Origin.Y - px.Y*v.Ratio,
	}
}

// VisibleBounds returns the world-space rectangle covered by a display of
// the given pixel size.
func (v *Viewport) VisibleBounds(width, height float64) r2.Rect {
	lo := v.ScreenToWorld(Position{X: 0, Y: height})
	hi := v.ScreenToWorld(Position{X: width, Y: 0})
	return r2.RectFromPoints(r2.Point{X: lo.X, Y: lo.Y}, r2.Point{X: hi.X, Y: hi.Y})
}

// Follow makes the viewport track a body's centroid. offset is the world
// distance from the origin to the centroid when centered; a lerp of 1.0
// snaps immediately, lower values give smoother following.
func (v *Viewport) Follow(body *RigidBody, offset Position, lerp float64) {
	v.followTarget = body
	v.followOffset = offset
	v.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (v *Viewport) Unfollow() {
	v.followTarget = nil
}

// ScrollTo animates the origin to the given world position over duration seconds.
func (v *Viewport) ScrollTo(origin Position, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		target: origin,
		tweenX: gween.New(float32(v.Origin.X), float32(origin.X), duration, easeFn),
		tweenY: gween.New(float32(v.Origin.Y), float32(origin.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Update advances follow and scroll by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.followTarget != nil {
		c := v.followTarget.Centroid()
		targetX := c.X - v.followOffset.X
		targetY := c.Y - v.followOffset.Y
		v.Origin.X += (targetX - v.Origin.X) * v.followLerp
		v.Origin.Y += (targetY - v.Origin.Y) * v.followLerp
	}

	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.Origin.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.Origin.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			// Tweens run in float32; land on the exact target.
			v.Origin = v.scrollTween.target
			v.scrollTween = nil
		}
	}
}
