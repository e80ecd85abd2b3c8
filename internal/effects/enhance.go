package effects

import (
	"fmt"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/pictool/internal/picture"
)

// Sharpen returns a sharpened copy of a picture using a 3x3 sharpening
// kernel. Dimensions are preserved.
func Sharpen(pic *picture.Picture) *picture.Picture {
	return picture.FromImage(effect.Sharpen(pic.ToImage()))
}

// Edges returns a grayscale edge map of a picture. Larger radii detect
// broader edges at the cost of detail; radius 1 is a good default for
// diagrams and screenshots.
func Edges(pic *picture.Picture, radius float64) (*picture.Picture, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: edge detection radius must be at least 1, got %g",
			picture.ErrInvalidArgument, radius)
	}
	return picture.FromImage(effect.EdgeDetection(pic.ToImage(), radius)), nil
}
