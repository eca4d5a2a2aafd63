// Package vmath holds the cell-grid geometry used by the simulation: integer cell
// positions and sizes, fractional positions and velocities, and the span tests
// used for paddle contact.
package vmath

import (
	"fmt"
	"math"
)

// Point is an integer cell coordinate, X to the right and Y downward
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells
type Size struct {
	Width, Height int
}

// Offset returns p moved by (dx, dy)
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec2 is a fractional position or velocity
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Trunc drops the fractional part toward zero, giving the rendered cell
func (v Vec2) Trunc() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

// OnCell reports whether v sits exactly on an integer cell boundary
func OnCell(v float64) bool {
	return v == math.Trunc(v)
}
