// Package geometry turns a time of day into a declarative clock scene.
//
// All shapes are expressed in a local coordinate system centred on the
// clock, 100 units across, with the positive x-axis pointing at 3 o'clock
// and y pointing down. Only Compose applies the translation that moves the
// origin to the middle of the 100×100 square.
package geometry

import "math"

// AngleForUnit converts a position on the 60-unit dial (minutes, seconds, or
// an hour unit) into a rotation in degrees. Unit 15 is angle zero because
// unrotated hands point at 3 o'clock; unit 0 is -90, straight up.
func AngleForUnit(unit float64) float64 {
	return (unit - 15) * 360 / 60
}

// HourUnit maps an hour and minute onto the 60-unit dial so the hour hand can
// share AngleForUnit. The minute contribution is truncated, so the hand moves
// in twelve steps per hour.
func HourUnit(hour, minute int) int {
	return (hour%12)*5 + minute/12
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
