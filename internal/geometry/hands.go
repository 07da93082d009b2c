package geometry

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"github.com/Tiliavir/dial/internal/model"
)

// Hand outlines, drawn pointing at 3 o'clock before rotation.
var (
	// hourHead is a kite whose widest point is 10 units out.
	hourHead = []vec.Vec2{pt(0, 0), pt(10, -4), pt(26, 0), pt(10, 4)}
	// minuteHead is narrower and longer, widest 5 units out.
	minuteHead = []vec.Vec2{pt(0, 0), pt(5, -2), pt(40, 0), pt(5, 2)}
)

const (
	hourShaft         = 10
	minuteShaft       = 5
	secondTail        = -5
	secondTip         = 40
	counterweightAt   = 34
	counterweightSize = 3
)

// HourHandAngle is the rotation of the hour hand for t.
func HourHandAngle(t model.TimeOfDay) float64 {
	return AngleForUnit(float64(HourUnit(t.Hour, t.Minute)))
}

// MinuteHandAngle is the rotation of the minute hand for t.
func MinuteHandAngle(t model.TimeOfDay) float64 {
	return AngleForUnit(float64(t.Minute))
}

// SecondHandAngle is the rotation of the second hand for t.
func SecondHandAngle(t model.TimeOfDay) float64 {
	return AngleForUnit(float64(t.Second))
}

// HourHand returns the hour hand for t, rotated about the local origin.
func (th Theme) HourHand(t model.TimeOfDay) Group {
	return Group{
		Transform: Transform{Rotate: HourHandAngle(t)},
		Children: []Shape{
			Line{From: pt(0, 0), To: pt(hourShaft, 0), Style: th.ink(2)},
			Polygon{Points: slices.Clone(hourHead), Style: th.ink(0.5)},
		},
	}
}

// MinuteHand returns the minute hand for t, rotated about the local origin.
func (th Theme) MinuteHand(t model.TimeOfDay) Group {
	return Group{
		Transform: Transform{Rotate: MinuteHandAngle(t)},
		Children: []Shape{
			Line{From: pt(0, 0), To: pt(minuteShaft, 0), Style: th.ink(1.5)},
			Polygon{Points: slices.Clone(minuteHead), Style: th.ink(0.5)},
		},
	}
}

// SecondHand returns the thin, counterweighted second hand for t.
func (th Theme) SecondHand(t model.TimeOfDay) Group {
	line := Style{Fill: th.Second, Stroke: th.Second, StrokeWidth: 0.5, FillOpacity: 1}
	ring := Style{Fill: th.Second, Stroke: th.Second, StrokeWidth: 0.5, FillOpacity: 0}
	return Group{
		Transform: Transform{Rotate: SecondHandAngle(t)},
		Children: []Shape{
			Line{From: pt(secondTail, 0), To: pt(secondTip, 0), Style: line},
			Circle{Center: pt(counterweightAt, 0), Radius: counterweightSize, Style: ring},
		},
	}
}

// HourHand builds the hour hand with DefaultTheme.
func HourHand(t model.TimeOfDay) Group { return DefaultTheme.HourHand(t) }

// MinuteHand builds the minute hand with DefaultTheme.
func MinuteHand(t model.TimeOfDay) Group { return DefaultTheme.MinuteHand(t) }

// SecondHand builds the second hand with DefaultTheme.
func SecondHand(t model.TimeOfDay) Group { return DefaultTheme.SecondHand(t) }
