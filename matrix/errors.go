// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Context is attached at the
// call site with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// At and Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a vertex name absent from the matrix index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)
