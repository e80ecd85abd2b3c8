// Package picture implements the raster core of pictool: an owned 2D grid
// of RGB pixels with bounds-checked accessors, file codec entry points, and
// the per-pixel and neighborhood transforms the CLI exposes.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Ownership
//
// Every transform that produces a new Picture allocates a fresh backing
// buffer; no operation ever aliases pixel storage between Pictures. Invert
// and Grayscale are the only in-place operations and mutate their receiver.
// A Picture is exclusively owned by its caller and is not safe for
// concurrent mutation.
//
// # Arithmetic
//
// Channel values are 8-bit and all averaging (grayscale, blend, blur) uses
// truncating integer division. Results are exact and reproducible; there is
// no rounding anywhere in this package.
//
// # Error Handling
//
// Failures wrap one of four sentinel errors so callers can classify them
// with errors.Is:
//   - ErrDecode: input missing, unreadable, or not a supported format
//   - ErrEncode: output could not be written
//   - ErrOutOfBounds: accessor called outside the picture's dimensions
//   - ErrInvalidArgument: unsupported rotation angle, unknown flip
//     direction, or an empty blend sequence
//
// All errors are terminal for the invocation; nothing in this package
// retries.
package picture
