// Package core provides fundamental types and utilities for the flappy platform.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Vec2 is a 2D vector in world units. Used for positions, velocities and
// accelerations alike.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box described by its centre and full size.
// World boxes use +Y up.
type Box struct {
	Center Vec2
	W, H   float64
}

// NewBox creates a box centred at c with the given width and height.
func NewBox(c Vec2, w, h float64) Box {
	return Box{Center: c, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.W/2 }

// Bottom returns the y-coordinate of the lower edge.
func (b Box) Bottom() float64 { return b.Center.Y - b.H/2 }

// Top returns the y-coordinate of the upper edge.
func (b Box) Top() float64 { return b.Center.Y + b.H/2 }

// OverlapsX reports whether the horizontal extents of b and o overlap.
// Touching edges do not count as overlap.
func (b Box) OverlapsX(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right()
}

// Rect represents an axis-aligned rectangle in screen cells (+Y down).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
