package analyze

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "bmp",
	// "tiff", "webp", or "unknown". Detection is based on file extension,
	// not file contents.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel of the decoded image:
	// "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source image carries an alpha channel.
	// Transforms discard alpha, but it is reported here for inspection.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info inspects a decoded image and the file it came from.
//
// Parameters:
//   - img: The decoded image, as returned by picture.Decode. The native
//     type is examined for alpha and color depth, so pass the decoder
//     output rather than a converted picture.
//   - path: The file the image was decoded from, used for the format
//     extension and on-disk size.
//
// Returns an error if the file cannot be stat'd.
func Info(img image.Image, path string) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlphaChannel(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// hasAlphaChannel reports whether the decoded image's native color model
// carries transparency. The picture core itself always discards alpha.
func hasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}
