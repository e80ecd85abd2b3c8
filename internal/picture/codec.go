package picture

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Decode reads and decodes the image file at path without converting it to a
// Picture. Info reporting uses it to inspect the native colour model; most
// callers want Load instead.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF, and WebP. Failures wrap
// ErrDecode and are terminal: a bad input is never retried.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// Load decodes the image file at path into a Picture.
//
// Any alpha channel in the source is discarded; see FromImage. Failures wrap
// ErrDecode.
func Load(path string) (*Picture, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Save encodes the picture as PNG to path, regardless of the format it was
// loaded from.
//
// The encode goes to a temporary file in the destination directory which is
// renamed into place, so a failed encode leaves no partial output behind.
// Failures wrap ErrEncode.
func (p *Picture) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pictool-*.png")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	if err := png.Encode(tmp, p.ToImage()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
