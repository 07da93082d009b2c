package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PathOp is a path drawing operation.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at (x, y)
	PathOpLineTo               // Line to (x, y)
	PathOpArcTo                // Elliptical arc: rx, ry, rotation, large-arc, sweep, x, y
	PathOpClose                // Close subpath
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpArcTo:
		return "arc_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand is a single path operation with its arguments.
type PathCommand struct {
	Op   PathOp
	Args []float64
}

// Path is a vector outline built from MoveTo, LineTo, ArcTo and Close.
type Path struct {
	Commands []PathCommand
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// ArcTo adds a circular arc of radius r from the current point to (x, y),
// using the SVG large-arc and sweep flag semantics.
func (p *Path) ArcTo(r float64, largeArc, sweep bool, x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpArcTo,
		Args: []float64{r, r, 0, flag(largeArc), flag(sweep), x, y},
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// String returns the path in SVG path data syntax, e.g. "M 1 2 L 3 4 Z".
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case PathOpMoveTo:
			b.WriteString("M")
		case PathOpLineTo:
			b.WriteString("L")
		case PathOpArcTo:
			b.WriteString("A")
		case PathOpClose:
			b.WriteString("Z")
		}
		for _, a := range c.Args {
			b.WriteByte(' ')
			b.WriteString(FormatNumber(a))
		}
	}
	return b.String()
}

// FormatNumber prints v with at most four decimals and no trailing zeros.
func FormatNumber(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
