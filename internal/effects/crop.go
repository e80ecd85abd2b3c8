package effects

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pictool/internal/picture"
)

// Crop extracts the rectangular region (x1,y1)-(x2,y2) from a picture.
//
// (x1,y1) is the inclusive top-left corner and (x2,y2) the exclusive
// bottom-right corner. An optional scale factor resizes the cropped region
// with Lanczos resampling; pass 1.0 to keep the cropped size.
//
// Returns an error wrapping picture.ErrInvalidArgument when the region is
// degenerate or falls outside the picture.
func Crop(pic *picture.Picture, x1, y1, x2, y2 int, scale float64) (*picture.Picture, error) {
	if x1 < 0 || y1 < 0 || x2 > pic.Width() || y2 > pic.Height() {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) outside %dx%d picture",
			picture.ErrInvalidArgument, x1, y1, x2, y2, pic.Width(), pic.Height())
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("%w: crop region must satisfy x1 < x2 and y1 < y2", picture.ErrInvalidArgument)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", picture.ErrInvalidArgument, scale)
	}

	cropped := imaging.Crop(pic.ToImage(), image.Rect(x1, y1, x2, y2))
	if scale != 1.0 {
		w := int(float64(cropped.Bounds().Dx()) * scale)
		h := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, w, h, imaging.Lanczos)
	}
	return picture.FromImage(cropped), nil
}

// Resize scales a picture to exactly width x height pixels using Lanczos
// resampling. Both dimensions must be positive; aspect ratio is not
// preserved automatically.
func Resize(pic *picture.Picture, width, height int) (*picture.Picture, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: resize dimensions must be positive, got %dx%d",
			picture.ErrInvalidArgument, width, height)
	}
	resized := imaging.Resize(pic.ToImage(), width, height, imaging.Lanczos)
	return picture.FromImage(resized), nil
}
