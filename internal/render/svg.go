package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/Tiliavir/dial/internal/geometry"
)

// SVG writes scene as an SVG document whose viewBox is the logical square.
func SVG(w io.Writer, scene geometry.Group, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	s := float64(size)
	canvas.Startview(s, s, 0, 0, geometry.ViewSize, geometry.ViewSize)
	writeShape(canvas, scene)
	canvas.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func writeShape(canvas *svg.SVG, s geometry.Shape) {
	switch s := s.(type) {
	case geometry.Group:
		if s.Transform.IsIdentity() {
			canvas.Group()
		} else {
			canvas.Gtransform(transformAttr(s.Transform))
		}
		for _, c := range s.Children {
			writeShape(canvas, c)
		}
		canvas.Gend()
	case geometry.Circle:
		canvas.Circle(s.Center.X, s.Center.Y, s.Radius, paintAttrs(s.Style, true))
	case geometry.Line:
		canvas.Line(s.From.X, s.From.Y, s.To.X, s.To.Y, paintAttrs(s.Style, false))
	case geometry.Polygon:
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, paintAttrs(s.Style, true))
	case geometry.PathShape:
		canvas.Path(s.Path.String(), paintAttrs(s.Style, true))
	}
}

func transformAttr(t geometry.Transform) string {
	var parts []string
	if t.Translate.X != 0 || t.Translate.Y != 0 {
		parts = append(parts, fmt.Sprintf("translate(%s %s)",
			geometry.FormatNumber(t.Translate.X), geometry.FormatNumber(t.Translate.Y)))
	}
	if t.Rotate != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%s)", geometry.FormatNumber(t.Rotate)))
	}
	return strings.Join(parts, " ")
}

// paintAttrs renders st as raw attributes; svgo passes strings containing
// "=" through unchanged.
func paintAttrs(st geometry.Style, filled bool) string {
	var b strings.Builder
	if filled {
		fill := st.Fill
		if fill == "" {
			fill = "none"
		}
		fmt.Fprintf(&b, `fill=%q`, fill)
		if fill != "none" && st.FillOpacity != 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, geometry.FormatNumber(st.FillOpacity))
		}
	}
	if st.Stroke != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, `stroke=%q`, st.Stroke)
		if st.Stroke != "none" {
			fmt.Fprintf(&b, ` stroke-width="%s"`, geometry.FormatNumber(st.StrokeWidth))
		}
	}
	return b.String()
}
