package effects

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ironsheep/pictool/internal/picture"
)

// Grid overlays a coordinate grid on a copy of a picture.
//
// Vertical and horizontal lines are drawn every spacing pixels, starting at
// spacing (the axes themselves are not drawn). The line color is given as a
// hex string like "#FF0000". The spacing must be at least 1 and the color
// must parse; either failure wraps picture.ErrInvalidArgument.
func Grid(pic *picture.Picture, spacing int, colorHex string) (*picture.Picture, error) {
	if spacing < 1 {
		return nil, fmt.Errorf("%w: grid spacing must be at least 1, got %d", picture.ErrInvalidArgument, spacing)
	}
	line, err := parseHexColor(colorHex)
	if err != nil {
		return nil, fmt.Errorf("%w: grid color %q: %v", picture.ErrInvalidArgument, colorHex, err)
	}

	img := pic.ToImage()
	bounds := img.Bounds()

	for x := spacing; x < bounds.Dx(); x += spacing {
		for y := 0; y < bounds.Dy(); y++ {
			img.Set(x, y, line)
		}
	}
	for y := spacing; y < bounds.Dy(); y += spacing {
		for x := 0; x < bounds.Dx(); x++ {
			img.Set(x, y, line)
		}
	}

	return picture.FromImage(img), nil
}

// parseHexColor parses a hex color string like "#FF0000" or "FF0000".
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("want 6 hex digits, got %d", len(hex))
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		A: 255,
	}, nil
}
