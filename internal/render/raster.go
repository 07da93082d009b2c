package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/Tiliavir/dial/internal/geometry"
)

// circleSegments is the number of chords used for a full circle.
const circleSegments = 96

// PNG rasterizes scene and writes it as a PNG.
func PNG(w io.Writer, scene geometry.Group, size int) error {
	img, err := Raster(scene, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// Raster draws scene onto a transparent size×size image.
func Raster(scene geometry.Group, size int) (*image.RGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	r := &rasterizer{
		dst: image.NewRGBA(image.Rect(0, 0, size, size)),
		z:   vector.NewRasterizer(size, size),
	}
	s := float64(size) / geometry.ViewSize
	if err := r.draw(scene, matrix.Matrix{s, 0, 0, s, 0, 0}); err != nil {
		return nil, err
	}
	return r.dst, nil
}

type rasterizer struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

// polyline is a flattened subpath in device coordinates.
type polyline struct {
	points []vec.Vec2
	closed bool
}

func (r *rasterizer) draw(s geometry.Shape, m matrix.Matrix) error {
	switch s := s.(type) {
	case geometry.Group:
		local := s.Transform.Matrix().Mul(m)
		for _, c := range s.Children {
			if err := r.draw(c, local); err != nil {
				return err
			}
		}
		return nil

	case geometry.Circle:
		outline := polyline{points: circlePoints(s.Center, s.Radius, m), closed: true}
		if err := r.fill([]polyline{outline}, s.Style); err != nil {
			return err
		}
		if !strokes(s.Style) {
			return nil
		}
		hw := s.Style.StrokeWidth / 2
		ring := []polyline{
			{points: circlePoints(s.Center, s.Radius+hw, m), closed: true},
			{points: reversed(circlePoints(s.Center, math.Max(s.Radius-hw, 0), m)), closed: true},
		}
		return r.paint(ring, s.Style.Stroke, 1)

	case geometry.Line:
		if !strokes(s.Style) {
			return nil
		}
		line := polyline{points: []vec.Vec2{apply(m, s.From), apply(m, s.To)}}
		return r.stroke([]polyline{line}, s.Style.Stroke, s.Style.StrokeWidth*scaleOf(m))

	case geometry.Polygon:
		pts := make([]vec.Vec2, len(s.Points))
		for i, p := range s.Points {
			pts[i] = apply(m, p)
		}
		outline := []polyline{{points: pts, closed: true}}
		if err := r.fill(outline, s.Style); err != nil {
			return err
		}
		if !strokes(s.Style) {
			return nil
		}
		return r.stroke(outline, s.Style.Stroke, s.Style.StrokeWidth*scaleOf(m))

	case geometry.PathShape:
		outline := flatten(s.Path, m)
		if err := r.fill(outline, s.Style); err != nil {
			return err
		}
		if !strokes(s.Style) {
			return nil
		}
		return r.stroke(outline, s.Style.Stroke, s.Style.StrokeWidth*scaleOf(m))
	}
	return fmt.Errorf("unsupported shape %T", s)
}

func strokes(st geometry.Style) bool {
	return st.Stroke != "" && st.Stroke != "none" && st.StrokeWidth > 0
}

func (r *rasterizer) fill(outline []polyline, st geometry.Style) error {
	if st.Fill == "" || st.Fill == "none" || st.FillOpacity <= 0 {
		return nil
	}
	return r.paint(outline, st.Fill, st.FillOpacity)
}

// stroke expands every segment of outline into a quad of the given width.
// All quads share one orientation, so overlaps at joints do not cancel.
func (r *rasterizer) stroke(outline []polyline, col string, width float64) error {
	var quads []polyline
	for _, pl := range outline {
		n := len(pl.points)
		last := n - 1
		if pl.closed {
			last = n
		}
		for i := 0; i < last; i++ {
			a, b := pl.points[i], pl.points[(i+1)%n]
			d := b.Sub(a)
			if d.Length() == 0 {
				continue
			}
			off := d.Normalize().Rot90().Mul(width / 2)
			quads = append(quads, polyline{
				points: []vec.Vec2{a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)},
				closed: true,
			})
		}
	}
	return r.paint(quads, col, 1)
}

// paint fills the union of outline with col at the given opacity.
func (r *rasterizer) paint(outline []polyline, col string, opacity float64) error {
	c, err := ParseColor(col)
	if err != nil {
		return err
	}
	c.A = uint8(math.Round(float64(c.A) * math.Min(math.Max(opacity, 0), 1)))
	if c.A == 0 {
		return nil
	}

	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	for _, pl := range outline {
		if len(pl.points) < 3 {
			continue
		}
		r.z.MoveTo(float32(pl.points[0].X), float32(pl.points[0].Y))
		for _, p := range pl.points[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.dst, b, image.NewUniform(c), image.Point{})
	return nil
}

// apply maps v through m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// scaleOf is the length scale factor of m, used for stroke widths.
func scaleOf(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

func circlePoints(center vec.Vec2, radius float64, m matrix.Matrix) []vec.Vec2 {
	pts := make([]vec.Vec2, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = apply(m, vec.Vec2{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return pts
}

func reversed(pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// flatten converts p into polylines in device space. Arcs are split into
// chords of at most 1/circleSegments of a turn.
func flatten(p geometry.Path, m matrix.Matrix) []polyline {
	var (
		out     []polyline
		cur     []vec.Vec2 // local coordinates
		pen     vec.Vec2
		closed  bool
		started bool
	)
	flush := func() {
		if len(cur) > 1 {
			pts := make([]vec.Vec2, len(cur))
			for i, q := range cur {
				pts[i] = apply(m, q)
			}
			out = append(out, polyline{points: pts, closed: closed})
		}
		cur, closed = nil, false
	}

	for _, c := range p.Commands {
		switch c.Op {
		case geometry.PathOpMoveTo:
			flush()
			pen = vec.Vec2{X: c.Args[0], Y: c.Args[1]}
			cur = []vec.Vec2{pen}
			started = true
		case geometry.PathOpLineTo:
			if !started {
				cur, started = []vec.Vec2{pen}, true
			}
			pen = vec.Vec2{X: c.Args[0], Y: c.Args[1]}
			cur = append(cur, pen)
		case geometry.PathOpArcTo:
			if !started {
				cur, started = []vec.Vec2{pen}, true
			}
			end := vec.Vec2{X: c.Args[5], Y: c.Args[6]}
			cur = append(cur, arcPoints(pen, end, c.Args[0], c.Args[3] != 0, c.Args[4] != 0)...)
			pen = end
		case geometry.PathOpClose:
			closed = true
			first := pen
			if len(cur) > 0 {
				first = cur[0]
			}
			flush()
			pen, started = first, false
		}
	}
	flush()
	return out
}

// arcPoints returns the points after from along the circular arc of the
// given radius to to, following the SVG endpoint arc rules. A radius too
// small to span the chord is scaled up.
func arcPoints(from, to vec.Vec2, radius float64, largeArc, sweep bool) []vec.Vec2 {
	half := from.Sub(to).Mul(0.5)
	d2 := half.X*half.X + half.Y*half.Y
	if d2 == 0 || radius == 0 {
		return []vec.Vec2{to}
	}
	r := math.Max(math.Abs(radius), math.Sqrt(d2))

	coef := math.Sqrt(math.Max(r*r-d2, 0) / d2)
	if largeArc == sweep {
		coef = -coef
	}
	mid := from.Add(to).Mul(0.5)
	cp := vec.Vec2{X: coef * half.Y, Y: -coef * half.X}
	center := cp.Add(mid)

	start := math.Atan2((half.Y-cp.Y)/r, (half.X-cp.X)/r)
	end := math.Atan2((-half.Y-cp.Y)/r, (-half.X-cp.X)/r)
	delta := end - start
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (2 * math.Pi) * circleSegments))
	if n < 1 {
		n = 1
	}
	pts := make([]vec.Vec2, 0, n)
	for i := 1; i < n; i++ {
		a := start + delta*float64(i)/float64(n)
		pts = append(pts, vec.Vec2{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	return append(pts, to)
}
