package picture

import (
	"errors"
	"testing"
)

func TestInvert(t *testing.T) {
	p := New(2, 1)
	p.set(0, 0, RGB{0, 128, 255})
	p.set(1, 0, RGB{10, 20, 30})

	p.Invert()

	if c := mustPixel(t, p, 0, 0); c != (RGB{255, 127, 0}) {
		t.Errorf("inverted pixel: got %+v, want (255,127,0)", c)
	}
	if c := mustPixel(t, p, 1, 0); c != (RGB{245, 235, 225}) {
		t.Errorf("inverted pixel: got %+v, want (245,235,225)", c)
	}
}

func TestInvert_Involution(t *testing.T) {
	p := makeNumbered(5, 4)
	orig := makeNumbered(5, 4)

	p.Invert()
	if p.Equal(orig) {
		t.Fatal("a single invert should change the picture")
	}
	p.Invert()
	if !p.Equal(orig) {
		t.Error("invert applied twice should restore the original")
	}
}

func TestGrayscale(t *testing.T) {
	p := New(1, 1)
	p.set(0, 0, RGB{10, 20, 31})

	p.Grayscale()

	// (10+20+31)/3 = 20 with truncating division
	if c := mustPixel(t, p, 0, 0); c != (RGB{20, 20, 20}) {
		t.Errorf("grayscale pixel: got %+v, want (20,20,20)", c)
	}
}

func TestGrayscale_ChannelsEqualAndIdempotent(t *testing.T) {
	p := makeNumbered(6, 5)

	p.Grayscale()
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			c := mustPixel(t, p, x, y)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("pixel (%d,%d) channels differ after grayscale: %+v", x, y, c)
			}
		}
	}

	once := makeNumbered(6, 5)
	once.Grayscale()
	p.Grayscale()
	if !p.Equal(once) {
		t.Error("grayscale applied twice should equal grayscale applied once")
	}
}

func TestRotate90_Dimensions(t *testing.T) {
	p := makeNumbered(5, 3)

	r := p.Rotate90()
	if r.Width() != 3 || r.Height() != 5 {
		t.Errorf("rotated dimensions: got %dx%d, want 3x5", r.Width(), r.Height())
	}
}

func TestRotate90_Placement(t *testing.T) {
	// 2x2 picture with distinct corners:
	//   A B        C A
	//   C D   ->   D B
	p := New(2, 2)
	a, b, c, d := RGB{R: 1}, RGB{R: 2}, RGB{R: 3}, RGB{R: 4}
	p.set(0, 0, a)
	p.set(1, 0, b)
	p.set(0, 1, c)
	p.set(1, 1, d)

	r := p.Rotate90()

	if got := mustPixel(t, r, 0, 0); got != c {
		t.Errorf("top-left: got %+v, want %+v", got, c)
	}
	if got := mustPixel(t, r, 1, 0); got != a {
		t.Errorf("top-right: got %+v, want %+v", got, a)
	}
	if got := mustPixel(t, r, 0, 1); got != d {
		t.Errorf("bottom-left: got %+v, want %+v", got, d)
	}
	if got := mustPixel(t, r, 1, 1); got != b {
		t.Errorf("bottom-right: got %+v, want %+v", got, b)
	}
}

func TestRotate90_FourTimesIsIdentity(t *testing.T) {
	p := makeNumbered(4, 7)

	r := p.Rotate90().Rotate90().Rotate90().Rotate90()
	if !r.Equal(p) {
		t.Error("four 90-degree rotations should restore the original")
	}
}

func TestRotate_Composition(t *testing.T) {
	p := makeNumbered(4, 3)

	if !p.Rotate(Rotation180).Equal(p.Rotate90().Rotate90()) {
		t.Error("Rotate(180) should equal two 90-degree rotations")
	}
	if !p.Rotate(Rotation270).Equal(p.Rotate90().Rotate90().Rotate90()) {
		t.Error("Rotate(270) should equal three 90-degree rotations")
	}
}

func TestParseRotation(t *testing.T) {
	tests := []struct {
		degrees int
		want    Rotation
		wantErr bool
	}{
		{90, Rotation90, false},
		{180, Rotation180, false},
		{270, Rotation270, false},
		{0, 0, true},
		{45, 0, true},
		{360, 0, true},
		{-90, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRotation(tt.degrees)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseRotation(%d): got err %v, want ErrInvalidArgument", tt.degrees, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRotation(%d): got (%v, %v), want %v", tt.degrees, got, err, tt.want)
		}
	}
}

func TestFlipHorizontal(t *testing.T) {
	p := New(3, 1)
	p.set(0, 0, RGB{R: 1})
	p.set(1, 0, RGB{R: 2})
	p.set(2, 0, RGB{R: 3})

	f := p.FlipHorizontal()

	if got := mustPixel(t, f, 0, 0); got != (RGB{R: 3}) {
		t.Errorf("leftmost: got %+v, want (3,0,0)", got)
	}
	if got := mustPixel(t, f, 2, 0); got != (RGB{R: 1}) {
		t.Errorf("rightmost: got %+v, want (1,0,0)", got)
	}
}

func TestFlipVertical(t *testing.T) {
	p := New(1, 3)
	p.set(0, 0, RGB{G: 1})
	p.set(0, 1, RGB{G: 2})
	p.set(0, 2, RGB{G: 3})

	f := p.FlipVertical()

	if got := mustPixel(t, f, 0, 0); got != (RGB{G: 3}) {
		t.Errorf("topmost: got %+v, want (0,3,0)", got)
	}
	if got := mustPixel(t, f, 0, 2); got != (RGB{G: 1}) {
		t.Errorf("bottommost: got %+v, want (0,1,0)", got)
	}
}

func TestFlip_Involutions(t *testing.T) {
	p := makeNumbered(5, 4)

	if !p.FlipHorizontal().FlipHorizontal().Equal(p) {
		t.Error("horizontal flip applied twice should restore the original")
	}
	if !p.FlipVertical().FlipVertical().Equal(p) {
		t.Error("vertical flip applied twice should restore the original")
	}
	if f := p.FlipHorizontal(); f.Width() != 5 || f.Height() != 4 {
		t.Errorf("flip dimensions: got %dx%d, want 5x4", f.Width(), f.Height())
	}
}

func TestParseFlipAxis(t *testing.T) {
	if axis, err := ParseFlipAxis("H"); err != nil || axis != Horizontal {
		t.Errorf("ParseFlipAxis(H): got (%v, %v), want Horizontal", axis, err)
	}
	if axis, err := ParseFlipAxis("V"); err != nil || axis != Vertical {
		t.Errorf("ParseFlipAxis(V): got (%v, %v), want Vertical", axis, err)
	}

	// No silent fallback for unrecognized directions
	for _, s := range []string{"h", "v", "horizontal", "HV", ""} {
		if _, err := ParseFlipAxis(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseFlipAxis(%q): got %v, want ErrInvalidArgument", s, err)
		}
	}
}

func TestBlend_SelfIsIdentity(t *testing.T) {
	p := makeNumbered(4, 4)

	if !p.Blend(p, p).Equal(p) {
		t.Error("blending a picture with itself should leave it unchanged")
	}
}

func TestBlend_BlackAndWhite(t *testing.T) {
	black := makeSolid(2, 2, RGB{0, 0, 0})
	white := makeSolid(2, 2, RGB{255, 255, 255})

	blended := black.Blend(white)

	// 255/2 = 127 with truncating division
	want := RGB{127, 127, 127}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := mustPixel(t, blended, x, y); c != want {
				t.Errorf("pixel (%d,%d): got %+v, want %+v", x, y, c, want)
			}
		}
	}
}

func TestBlend_MinimumDimensions(t *testing.T) {
	a := makeSolid(5, 2, RGB{R: 100})
	b := makeSolid(3, 4, RGB{R: 50})

	blended := a.Blend(b)

	if blended.Width() != 3 || blended.Height() != 2 {
		t.Errorf("blended dimensions: got %dx%d, want 3x2", blended.Width(), blended.Height())
	}
	if c := mustPixel(t, blended, 0, 0); c != (RGB{R: 75}) {
		t.Errorf("blended pixel: got %+v, want (75,0,0)", c)
	}
}

func TestBlendAll_Empty(t *testing.T) {
	if _, err := BlendAll(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("BlendAll(nil): got %v, want ErrInvalidArgument", err)
	}
	if _, err := BlendAll([]*Picture{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("BlendAll(empty): got %v, want ErrInvalidArgument", err)
	}
}

func TestBlur_SmallPicturesUnchanged(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"1x1", 1, 1},
		{"2x2", 2, 2},
		{"2x5", 2, 5},
		{"5x2", 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := makeNumbered(tt.width, tt.height)
			if !p.Blur().Equal(p) {
				t.Error("blur of a picture with no interior pixels should be an exact copy")
			}
		})
	}
}

func TestBlur_CenterPixel(t *testing.T) {
	p := makeSolid(3, 3, RGB{10, 20, 30})
	p.set(1, 1, RGB{100, 100, 100})

	blurred := p.Blur()

	// Truncating averages: (8*10+100)/9=20, (8*20+100)/9=28, (8*30+100)/9=37
	center := mustPixel(t, blurred, 1, 1)
	if center != (RGB{20, 28, 37}) {
		t.Errorf("center: got %+v, want (20,28,37)", center)
	}

	// All 8 border pixels pass through unchanged
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if c := mustPixel(t, blurred, x, y); c != (RGB{10, 20, 30}) {
				t.Errorf("border pixel (%d,%d): got %+v, want (10,20,30)", x, y, c)
			}
		}
	}
}

func TestBlur_Dimensions(t *testing.T) {
	p := makeNumbered(7, 5)

	b := p.Blur()
	if b.Width() != 7 || b.Height() != 5 {
		t.Errorf("blurred dimensions: got %dx%d, want 7x5", b.Width(), b.Height())
	}
}

func mustPixel(t *testing.T, p *Picture, x, y int) RGB {
	t.Helper()
	c, err := p.Pixel(x, y)
	if err != nil {
		t.Fatalf("Pixel(%d,%d) failed: %v", x, y, err)
	}
	return c
}
