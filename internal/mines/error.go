package mines

import (
	"errors"
	"fmt"
)

// ErrInvalidDims rejects empty dimension vectors and non-positive axis
// sizes at game construction.
var ErrInvalidDims = errors.New("dimensions must be a non-empty vector of positive integers")

// OutOfBoundsError flags a caller contract violation: a coordinate of
// the wrong rank, or with a component outside its axis.
type OutOfBoundsError struct {
	Coord Coord
	Dims  Dims
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %v is out of bounds for a board of shape %v", e.Coord, e.Dims)
}

// ShapeMismatchError flags a board or visibility buffer whose cell
// count disagrees with its dimension vector. Only decoded state can
// trip this; games built by NewGame cannot.
type ShapeMismatchError struct {
	Dims  Dims
	Cells int
}

func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("a buffer of %d cells cannot have shape %v", e.Cells, e.Dims)
}

type ParseError struct {
	Input string
	Kind  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Kind)
}
