// Package analyze provides read-only inspection of pictures: single-pixel
// color sampling in multiple representations, dominant color extraction,
// and file-level image metadata. Nothing here mutates a picture.
package analyze
