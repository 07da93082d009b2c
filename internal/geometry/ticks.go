package geometry

const (
	faceRadius      = 49
	tickOuter       = 49
	tickInnerLong   = 35
	tickInnerShort  = 42
	tickWidthLong   = 1
	tickWidthShort  = 0.5
	ticksPerRound   = 60
	ticksPerNumeral = 5
)

// Tick is one radial mark on the rim.
type Tick struct {
	Index int     // 1..60; 60 sits at 12 o'clock
	Inner float64 // inner radius
	Outer float64 // outer radius
	Angle float64 // degrees, from AngleForUnit(Index)
}

// Long reports whether the tick marks one of the twelve hour positions.
func (t Tick) Long() bool {
	return t.Index%ticksPerNumeral == 0
}

// Ticks returns the 60 rim marks in index order 1..60.
func Ticks() []Tick {
	ticks := make([]Tick, 0, ticksPerRound)
	for i := 1; i <= ticksPerRound; i++ {
		inner := float64(tickInnerShort)
		if i%ticksPerNumeral == 0 {
			inner = tickInnerLong
		}
		ticks = append(ticks, Tick{
			Index: i,
			Inner: inner,
			Outer: tickOuter,
			Angle: AngleForUnit(float64(i)),
		})
	}
	return ticks
}

// tickShape draws t as a horizontal line rotated into place.
func (th Theme) tickShape(t Tick) Shape {
	width := tickWidthShort
	if t.Long() {
		width = tickWidthLong
	}
	return Group{
		Transform: Transform{Rotate: t.Angle},
		Children: []Shape{
			Line{From: pt(t.Inner, 0), To: pt(t.Outer, 0), Style: th.ink(width)},
		},
	}
}

// TickShapes returns the drawable rim marks.
func (th Theme) TickShapes() []Shape {
	ticks := Ticks()
	shapes := make([]Shape, len(ticks))
	for i, t := range ticks {
		shapes[i] = th.tickShape(t)
	}
	return shapes
}
