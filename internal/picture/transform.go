package picture

import "fmt"

// Invert replaces every channel c of every pixel with 255-c, in place.
// Applying it twice restores the original picture.
func (p *Picture) Invert() {
	for i := range p.pix {
		p.pix[i] = 255 - p.pix[i]
	}
}

// Grayscale replaces every pixel with the truncating average of its three
// channels, in place. The operation is idempotent.
func (p *Picture) Grayscale() {
	for i := 0; i < len(p.pix); i += 3 {
		avg := uint8((int(p.pix[i]) + int(p.pix[i+1]) + int(p.pix[i+2])) / 3)
		p.pix[i], p.pix[i+1], p.pix[i+2] = avg, avg, avg
	}
}

// Rotate90 returns a new picture rotated 90 degrees clockwise. A WxH input
// yields an HxW output; the source pixel (i, j) lands at (height-1-j, i).
func (p *Picture) Rotate90() *Picture {
	out := New(p.height, p.width)
	for j := 0; j < p.height; j++ {
		for i := 0; i < p.width; i++ {
			out.set(p.height-1-j, i, p.at(i, j))
		}
	}
	return out
}

// Rotation is a validated multiple of 90 degrees. Its numeric value is the
// number of 90-degree steps to apply.
type Rotation int

const (
	Rotation90  Rotation = 1
	Rotation180 Rotation = 2
	Rotation270 Rotation = 3
)

// ParseRotation validates a rotation angle given in degrees.
//
// Only 90, 180, and 270 are supported; anything else returns an error
// wrapping ErrInvalidArgument and no transform should be performed.
func ParseRotation(degrees int) (Rotation, error) {
	switch degrees {
	case 90:
		return Rotation90, nil
	case 180:
		return Rotation180, nil
	case 270:
		return Rotation270, nil
	}
	return 0, fmt.Errorf("%w: cannot rotate by %d degrees (want 90, 180 or 270)", ErrInvalidArgument, degrees)
}

// Rotate returns a new picture rotated clockwise by the given rotation.
//
// 180 and 270-degree rotations are obtained by composing the 90-degree step,
// allocating a fresh picture at each step.
func (p *Picture) Rotate(r Rotation) *Picture {
	out := p.Rotate90()
	for n := Rotation(1); n < r; n++ {
		out = out.Rotate90()
	}
	return out
}

// FlipAxis selects the mirror axis for Flip.
type FlipAxis int

const (
	Horizontal FlipAxis = iota // mirror across the vertical axis
	Vertical                   // mirror across the horizontal axis
)

// ParseFlipAxis validates a flip direction string.
//
// Exactly "H" means horizontal and exactly "V" means vertical; any other
// value returns an error wrapping ErrInvalidArgument rather than silently
// defaulting to a vertical flip.
func ParseFlipAxis(s string) (FlipAxis, error) {
	switch s {
	case "H":
		return Horizontal, nil
	case "V":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: unknown flip direction %q (want H or V)", ErrInvalidArgument, s)
}

// Flip returns a new picture mirrored across the given axis.
func (p *Picture) Flip(axis FlipAxis) *Picture {
	if axis == Horizontal {
		return p.FlipHorizontal()
	}
	return p.FlipVertical()
}

// FlipHorizontal returns a new picture mirrored across the vertical axis:
// the source pixel (i, j) lands at (width-1-i, j).
func (p *Picture) FlipHorizontal() *Picture {
	out := New(p.width, p.height)
	for j := 0; j < p.height; j++ {
		for i := 0; i < p.width; i++ {
			out.set(p.width-1-i, j, p.at(i, j))
		}
	}
	return out
}

// FlipVertical returns a new picture mirrored across the horizontal axis:
// the source pixel (i, j) lands at (i, height-1-j).
func (p *Picture) FlipVertical() *Picture {
	out := New(p.width, p.height)
	for j := 0; j < p.height; j++ {
		for i := 0; i < p.width; i++ {
			out.set(i, p.height-1-j, p.at(i, j))
		}
	}
	return out
}

// Blend averages the receiver with the given pictures channel by channel.
// See BlendAll for the exact semantics.
func (p *Picture) Blend(others ...*Picture) *Picture {
	all := make([]*Picture, 0, len(others)+1)
	all = append(all, p)
	all = append(all, others...)
	out, _ := BlendAll(all) // cannot fail: all always contains the receiver
	return out
}

// BlendAll averages an ordered sequence of pictures channel by channel.
//
// The output covers the overlapping top-left region: its width and height
// are the minimum width and minimum height across all inputs. Each output
// channel is the truncating integer average of that channel across all N
// inputs.
//
// An empty sequence returns an error wrapping ErrInvalidArgument.
func BlendAll(pictures []*Picture) (*Picture, error) {
	if len(pictures) == 0 {
		return nil, fmt.Errorf("%w: blend needs at least one picture", ErrInvalidArgument)
	}

	w, h := pictures[0].width, pictures[0].height
	for _, p := range pictures[1:] {
		if p.width < w {
			w = p.width
		}
		if p.height < h {
			h = p.height
		}
	}

	n := len(pictures)
	out := New(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			var r, g, b int
			for _, p := range pictures {
				c := p.at(i, j)
				r += int(c.R)
				g += int(c.G)
				b += int(c.B)
			}
			out.set(i, j, RGB{uint8(r / n), uint8(g / n), uint8(b / n)})
		}
	}
	return out, nil
}

// Blur returns a new picture where every interior pixel is the truncating
// average of its 3x3 neighborhood.
//
// A pixel whose 3x3 neighborhood does not fit entirely within the picture
// is copied through unchanged; the first out-of-bounds neighbor aborts the
// accumulation for that pixel. On any picture narrower or shorter than 3
// pixels the result is therefore an exact copy.
func (p *Picture) Blur() *Picture {
	out := New(p.width, p.height)
	for j := 0; j < p.height; j++ {
		for i := 0; i < p.width; i++ {
			var r, g, b int
			interior := true
		neighbors:
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if !p.Contains(i+dx, j+dy) {
						interior = false
						break neighbors
					}
					c := p.at(i+dx, j+dy)
					r += int(c.R)
					g += int(c.G)
					b += int(c.B)
				}
			}
			if interior {
				out.set(i, j, RGB{uint8(r / 9), uint8(g / 9), uint8(b / 9)})
			} else {
				out.set(i, j, p.at(i, j))
			}
		}
	}
	return out
}
