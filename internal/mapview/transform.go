// Package mapview maps logical sensor coordinates onto a rendered campus
// map image.
package mapview

import (
	"roomwatch/internal/validate"
)

// Position is a pixel position on the rendered image.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pixel scales a logical (x,y) in [0,800]x[0,600] to the rendered image's
// measured width and height: (x*width/800, y*height/600). The transform is
// stateless and does not round or clamp; callers recompute it whenever the
// rendered size changes.
func Pixel(x, y int, width, height float64) Position {
	return Position{
		X: float64(x) * width / float64(validate.MaxX),
		Y: float64(y) * height / float64(validate.MaxY),
	}
}
