package picture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"
)

// Sentinel errors for the failure modes of this package. Callers match them
// with errors.Is; the wrapped message carries the path or coordinates involved.
var (
	// ErrDecode indicates an input file could not be read or is not a
	// supported image format.
	ErrDecode = errors.New("image decode failed")

	// ErrEncode indicates the output file could not be written.
	ErrEncode = errors.New("image encode failed")

	// ErrOutOfBounds indicates a pixel accessor was called with coordinates
	// outside the picture's dimensions.
	ErrOutOfBounds = errors.New("pixel out of bounds")

	// ErrInvalidArgument indicates an operation was given a value outside
	// its domain, such as an unsupported rotation angle or an empty blend.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RGB is a fully-opaque colour with 8-bit components.
//
// Each component ranges from 0 to 255, where 0 is no intensity and 255 is
// full intensity.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Picture is an owned width x height grid of RGB pixels.
//
// Coordinates are 0-based with (0,0) at the top-left corner; X increases
// rightward and Y increases downward. The backing buffer stores three bytes
// per pixel in row-major order and is never shared between Pictures: every
// operation that produces a new Picture allocates a fresh, independent buffer.
//
// A Picture is not safe for concurrent mutation. Each instance is intended
// to be exclusively owned by a single caller at a time.
type Picture struct {
	width  int
	height int
	pix    []uint8 // 3 bytes per pixel, row-major, no alpha
}

// New creates a blank picture with the given non-negative dimensions.
// All pixels start out black (0,0,0).
func New(width, height int) *Picture {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Picture{
		width:  width,
		height: height,
		pix:    make([]uint8, 3*width*height),
	}
}

// FromImage converts a standard library image into a Picture.
//
// Pixel values are reduced to 8-bit components; any alpha channel is
// discarded, so the result is always fully opaque. The source image is not
// retained: the Picture owns its own copy of the pixel data.
func FromImage(img image.Image) *Picture {
	bounds := img.Bounds()
	p := New(bounds.Dx(), bounds.Dy())

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// Convert from 16-bit to 8-bit
			p.set(x, y, RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return p
}

// ToImage converts the picture to a standard library image for encoding or
// for handing to image libraries. The returned image has its own pixel
// storage; mutating it does not affect the Picture. Alpha is always 255.
func (p *Picture) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.at(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int { return p.width }

// Height returns the picture height in pixels.
func (p *Picture) Height() int { return p.height }

// Contains reports whether (x, y) lies within the picture's boundaries.
func (p *Picture) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Pixel returns the colour at (x, y).
//
// Returns an error wrapping ErrOutOfBounds if the coordinates do not lie
// within the picture.
func (p *Picture) Pixel(x, y int) (RGB, error) {
	if !p.Contains(x, y) {
		return RGB{}, fmt.Errorf("%w: (%d,%d) in %dx%d picture", ErrOutOfBounds, x, y, p.width, p.height)
	}
	return p.at(x, y), nil
}

// SetPixel overwrites the pixel at (x, y) with a fully-opaque colour.
//
// Returns an error wrapping ErrOutOfBounds if the coordinates do not lie
// within the picture.
func (p *Picture) SetPixel(x, y int, c RGB) error {
	if !p.Contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d picture", ErrOutOfBounds, x, y, p.width, p.height)
	}
	p.set(x, y, c)
	return nil
}

// at reads a pixel without a bounds check. Transforms use it after
// establishing their own bounds.
func (p *Picture) at(x, y int) RGB {
	i := 3 * (y*p.width + x)
	return RGB{p.pix[i], p.pix[i+1], p.pix[i+2]}
}

// set writes a pixel without a bounds check.
func (p *Picture) set(x, y int, c RGB) {
	i := 3 * (y*p.width + x)
	p.pix[i], p.pix[i+1], p.pix[i+2] = c.R, c.G, c.B
}

// Equal reports whether two pictures are graphically identical: same
// dimensions and an exact channel-for-channel match on every pixel.
// A nil other is never equal.
func (p *Picture) Equal(other *Picture) bool {
	if other == nil {
		return false
	}
	if p.width != other.width || p.height != other.height {
		return false
	}
	return bytes.Equal(p.pix, other.pix)
}

// String returns a debug representation listing the RGB components of every
// pixel, one row per line.
func (p *Picture) String() string {
	var sb strings.Builder
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.at(x, y)
			fmt.Fprintf(&sb, "(%d,%d,%d)", c.R, c.G, c.B)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
