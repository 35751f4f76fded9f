package mines

import (
	"fmt"
	"math/rand/v2"
)

// RandomMines samples count distinct mine coordinates uniformly over
// the board. The exclude coordinate (the opening dig, usually) never
// receives a mine; pass nil to allow every cell. Deterministic for a
// seeded r.
//
// No solvability guarantee is made: the layout may require guessing.
func RandomMines(dims Dims, count int, exclude Coord, r *rand.Rand) ([]Coord, error) {
	if !dims.Valid() {
		return nil, ErrInvalidDims
	}
	size := dims.Size()
	free := size
	excludeIdx := -1
	if exclude != nil {
		if !dims.Contains(exclude) {
			return nil, OutOfBoundsError{Coord: exclude.Clone(), Dims: dims}
		}
		excludeIdx = dims.flatIndex(exclude)
		free--
	}
	if count < 0 || count > free {
		return nil, fmt.Errorf("cannot place %d mines on a board of %d free cells", count, free)
	}

	picked := make(map[int]struct{}, count)
	coords := make([]Coord, 0, count)
	for len(coords) < count {
		i := r.IntN(size)
		if i == excludeIdx {
			continue
		}
		if _, ok := picked[i]; ok {
			continue
		}
		picked[i] = struct{}{}
		coords = append(coords, dims.coordAt(i))
	}
	return coords, nil
}
