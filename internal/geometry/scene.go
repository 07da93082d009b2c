package geometry

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Style carries the paint attributes of a shape. Colors are free-form
// strings (named colors or hex) and are interpreted by the renderer.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	// FillOpacity is in [0, 1]; shapes built by this package always set it.
	FillOpacity float64
}

// Shape is one node of a scene: Circle, Line, Polygon, PathShape or Group.
type Shape interface {
	shape()
}

// Circle is a circle around Center.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Style  Style
}

// Line is a straight segment.
type Line struct {
	From, To vec.Vec2
	Style    Style
}

// Polygon is a closed polygon through Points.
type Polygon struct {
	Points []vec.Vec2
	Style  Style
}

// PathShape is an arbitrary outline.
type PathShape struct {
	Path  Path
	Style Style
}

// Group applies Transform to all of its children, which are drawn in order.
type Group struct {
	Transform Transform
	Children  []Shape
}

func (Circle) shape()    {}
func (Line) shape()      {}
func (Polygon) shape()   {}
func (PathShape) shape() {}
func (Group) shape()     {}

// Transform rotates by Rotate degrees about the local origin and then
// translates by Translate. This is the SVG "translate(x y) rotate(d)".
type Transform struct {
	Translate vec.Vec2
	Rotate    float64
}

// IsIdentity reports whether t leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t.Rotate == 0 && t.Translate.X == 0 && t.Translate.Y == 0
}

// Matrix returns t as an affine matrix. Positive angles turn the x-axis
// towards the y-axis, i.e. clockwise on a y-down canvas.
func (t Transform) Matrix() matrix.Matrix {
	rad := radians(t.Rotate)
	c, s := math.Cos(rad), math.Sin(rad)
	return matrix.Matrix{c, s, -s, c, t.Translate.X, t.Translate.Y}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polar returns the point at radius r along the angle deg.
func polar(r, deg float64) vec.Vec2 {
	rad := radians(deg)
	return vec.Vec2{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}
