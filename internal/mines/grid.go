package mines

import "slices"

// Grid is a flat row-major buffer addressed by coordinate tuples. Both
// fields are exported so grids survive a gob round trip.
type Grid[T any] struct {
	Dims  Dims
	Cells []T
}

func NewGrid[T any](dims Dims) Grid[T] {
	return Grid[T]{Dims: dims, Cells: make([]T, dims.Size())}
}

// At returns the value stored at c. The coordinate must be in bounds;
// this layer does not check.
func (g Grid[T]) At(c Coord) T {
	return g.Cells[g.Dims.flatIndex(c)]
}

// Set replaces the value stored at c in place.
func (g Grid[T]) Set(c Coord, v T) {
	g.Cells[g.Dims.flatIndex(c)] = v
}

func (g Grid[T]) shapedLike(dims Dims) bool {
	return slices.Equal(g.Dims, dims) && len(g.Cells) == dims.Size()
}

// Nested projects the grid onto rank-many levels of nested []any
// slices mirroring its shape, with T leaves. Handy for JSON output and
// display adapters that expect the nested form.
func (g Grid[T]) Nested() any {
	return g.nested(0, 0)
}

func (g Grid[T]) nested(axis, offset int) any {
	if axis == g.Dims.Rank() {
		return g.Cells[offset]
	}
	stride := 1
	for _, n := range g.Dims[axis+1:] {
		stride *= n
	}
	out := make([]any, g.Dims[axis])
	for i := range out {
		out[i] = g.nested(axis+1, offset+i*stride)
	}
	return out
}
