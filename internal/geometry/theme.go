package geometry

// Theme holds the colors used for the static face and the hands.
type Theme struct {
	Face        string  // disk fill
	Ink         string  // rim, ticks, hour and minute hands
	Second      string  // second hand
	BusyOpacity float64 // fill opacity of busy bands
}

// DefaultTheme is a black-on-white face with a red second hand.
var DefaultTheme = Theme{
	Face:        "white",
	Ink:         "black",
	Second:      "red",
	BusyOpacity: 0.4,
}

func (th Theme) ink(width float64) Style {
	return Style{Fill: th.Ink, Stroke: th.Ink, StrokeWidth: width, FillOpacity: 1}
}
