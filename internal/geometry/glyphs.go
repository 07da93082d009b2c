package geometry

import "seehuhn.de/go/geom/vec"

// glyphPieces are the seven tans of a 4×4 tangram square, in grid units.
var glyphPieces = []struct {
	color  string
	points []vec.Vec2
}{
	{"#60b5cc", []vec.Vec2{pt(0, 0), pt(4, 0), pt(2, 2)}},
	{"#5a6378", []vec.Vec2{pt(0, 0), pt(2, 2), pt(0, 4)}},
	{"#60b5cc", []vec.Vec2{pt(4, 2), pt(4, 4), pt(2, 4)}},
	{"#7fd13b", []vec.Vec2{pt(2, 2), pt(3, 1), pt(4, 2), pt(3, 3)}},
	{"#f0ad00", []vec.Vec2{pt(3, 1), pt(4, 0), pt(4, 2)}},
	{"#f0ad00", []vec.Vec2{pt(2, 2), pt(3, 3), pt(1, 3)}},
	{"#7fd13b", []vec.Vec2{pt(0, 4), pt(1, 3), pt(3, 3), pt(2, 4)}},
}

const (
	glyphScale   = 4
	glyphOffsetX = -8
	glyphOffsetY = 12
	glyphOpacity = 0.25
)

// Glyphs returns the decorative tangram drawn in the lower half of the
// face. They are purely cosmetic.
func Glyphs() []Shape {
	shapes := make([]Shape, 0, len(glyphPieces))
	for _, piece := range glyphPieces {
		points := make([]vec.Vec2, len(piece.points))
		for i, p := range piece.points {
			points[i] = pt(p.X*glyphScale+glyphOffsetX, p.Y*glyphScale+glyphOffsetY)
		}
		shapes = append(shapes, Polygon{
			Points: points,
			Style:  Style{Fill: piece.color, Stroke: "none", FillOpacity: glyphOpacity},
		})
	}
	return shapes
}
