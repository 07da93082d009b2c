package geometry

import "github.com/Tiliavir/dial/internal/model"

// DefaultMargin is subtracted from the smaller viewport edge.
const DefaultMargin = 10

// RenderSize returns the edge length of the square clock for a viewport:
// the smaller of width and height, less margin. The result is at least 1.
func RenderSize(vp model.Viewport, margin int) int {
	size := min(vp.Width, vp.Height) - margin
	if size < 1 {
		return 1
	}
	return size
}
