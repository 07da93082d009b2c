package geometry

import "github.com/Tiliavir/dial/internal/model"

// ViewSize is the edge length of the logical coordinate square.
const ViewSize = 100

// Options selects the optional parts of the face.
type Options struct {
	Theme  Theme
	Glyphs bool
}

// DefaultOptions is the plain clock: default theme, no glyphs.
func DefaultOptions() Options {
	return Options{Theme: DefaultTheme}
}

// Compose builds the whole scene for t with DefaultOptions.
func Compose(t model.TimeOfDay, busy []model.BusyInterval) Group {
	return DefaultOptions().Compose(t, busy)
}

// Compose builds the scene, back to front: face disk, glyphs, ticks, busy
// bands in list order, then the hour, minute and second hands. Everything
// is wrapped in a single translation to the centre of the view square.
func (o Options) Compose(t model.TimeOfDay, busy []model.BusyInterval) Group {
	th := o.Theme
	children := make([]Shape, 0, 64+len(busy)+len(glyphPieces))

	children = append(children, Circle{
		Center: pt(0, 0),
		Radius: faceRadius,
		Style:  Style{Fill: th.Face, Stroke: th.Ink, StrokeWidth: 0.5, FillOpacity: 1},
	})
	if o.Glyphs {
		children = append(children, Glyphs()...)
	}
	children = append(children, th.TickShapes()...)
	for _, b := range busy {
		children = append(children, th.ArcPath(b.Start, b.End, b.Color))
	}
	children = append(children,
		th.HourHand(t),
		th.MinuteHand(t),
		th.SecondHand(t),
	)

	return Group{
		Transform: Transform{Translate: pt(ViewSize/2, ViewSize/2)},
		Children:  children,
	}
}
