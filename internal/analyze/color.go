package analyze

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pictool/internal/picture"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a sampled color value in multiple representations:
// a "#RRGGBB" hex string for web usage, 8-bit RGB components, and HSL for
// perceptual comparisons.
type ColorResult struct {
	Hex string      `json:"hex"`
	RGB picture.RGB `json:"rgb"`
	HSL HSLColor    `json:"hsl"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. Sampling outside the
// picture returns an error wrapping picture.ErrOutOfBounds.
func SampleColor(pic *picture.Picture, x, y int) (*ColorResult, error) {
	c, err := pic.Pixel(x, y)
	if err != nil {
		return nil, err
	}

	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()

	return &ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGB: c,
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}

// ColorFrequency represents a quantized color and its occurrence frequency.
type ColorFrequency struct {
	Hex        string      `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64     `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        picture.RGB `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors,
// sorted by frequency in descending order.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors from a picture.
//
// To group similar colors, each component is quantized to the nearest lower
// multiple of 16 before counting, so colors within 16 units of each other
// per component collapse into one bucket. Fewer than count colors may be
// returned when the picture has fewer distinct quantized colors. An empty
// picture yields an empty result.
func DominantColors(pic *picture.Picture, count int) (*DominantColorsResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: color count must be at least 1", picture.ErrInvalidArgument)
	}

	counts := make(map[picture.RGB]int)
	total := 0
	for y := 0; y < pic.Height(); y++ {
		for x := 0; x < pic.Width(); x++ {
			c, _ := pic.Pixel(x, y)
			q := picture.RGB{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			counts[q]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for q, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", q.R, q.G, q.B),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        q,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}
