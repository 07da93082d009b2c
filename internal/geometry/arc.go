package geometry

import "github.com/Tiliavir/dial/internal/model"

const (
	busyInner = 42
	busyOuter = 48
	// halfDial is half of the 60-unit dial.
	halfDial = 30
)

// HourSpan is the distance between start and end in hour units, used to
// choose the large-arc variant. Unlike HourUnit it does not reduce the hour
// modulo 12, and it compares truncated units rather than the swept angle;
// both quirks decide the arc variant near the boundary and are kept as is.
func HourSpan(start, end model.TimeOfDay) int {
	d := (end.Hour*5 + end.Minute/12) - (start.Hour*5 + start.Minute/12)
	if d < 0 {
		d = -d
	}
	return d
}

// LargeArc reports whether the band from start to end takes the long way
// round the dial. A span of exactly 30 units counts as large.
func LargeArc(start, end model.TimeOfDay) bool {
	return HourSpan(start, end) >= halfDial
}

// BusyPath returns the outline of the band between the inner and outer busy
// radii, swept clockwise from start to end.
func BusyPath(start, end model.TimeOfDay) Path {
	a1 := AngleForUnit(float64(HourUnit(start.Hour, start.Minute)))
	a2 := AngleForUnit(float64(HourUnit(end.Hour, end.Minute)))
	large := LargeArc(start, end)

	innerStart := polar(busyInner, a1)
	outerStart := polar(busyOuter, a1)
	outerEnd := polar(busyOuter, a2)
	innerEnd := polar(busyInner, a2)

	var p Path
	p.MoveTo(innerStart.X, innerStart.Y)
	p.LineTo(outerStart.X, outerStart.Y)
	p.ArcTo(busyOuter, large, true, outerEnd.X, outerEnd.Y)
	p.LineTo(innerEnd.X, innerEnd.Y)
	p.ArcTo(busyInner, large, false, innerStart.X, innerStart.Y)
	p.Close()
	return p
}

// ArcPath returns the filled, semi-transparent busy band for an interval.
func (th Theme) ArcPath(start, end model.TimeOfDay, color string) PathShape {
	return PathShape{
		Path: BusyPath(start, end),
		Style: Style{
			Fill:        color,
			Stroke:      color,
			StrokeWidth: 0.5,
			FillOpacity: th.BusyOpacity,
		},
	}
}

// ArcPath builds a busy band with DefaultTheme.
func ArcPath(start, end model.TimeOfDay, color string) PathShape {
	return DefaultTheme.ArcPath(start, end, color)
}
