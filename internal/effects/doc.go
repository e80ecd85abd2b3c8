// Package effects implements the library-backed extras of pictool: crop,
// resize, sharpen, edge detection, and grid overlay.
//
// Unlike the hand-rolled transforms in the picture package, whose output is
// pixel-exact by contract, these operations delegate their resampling and
// convolution to github.com/disintegration/imaging and
// github.com/anthonynsimon/bild. Each function converts to the standard
// image model, applies the library operation, and converts back, so the
// result is always an independently-owned picture.
package effects
