package mines

import "iter"

// Dims is the ordered per-axis size vector of a board. It is fixed for
// the lifetime of a game; every cell address is interpreted against it.
type Dims []int

// Coord addresses a single cell: one component per axis, each in
// [0, Dims[axis]).
type Coord []int

func (c Coord) Clone() Coord {
	return append(Coord(nil), c...)
}

func (d Dims) Rank() int {
	return len(d)
}

// Size returns the total cell count, the product of all axis sizes.
func (d Dims) Size() int {
	n := 1
	for _, axis := range d {
		n *= axis
	}
	return n
}

func (d Dims) Valid() bool {
	if len(d) == 0 {
		return false
	}
	for _, axis := range d {
		if axis <= 0 {
			return false
		}
	}
	return true
}

// Contains reports whether c has the right rank and every component in
// bounds.
func (d Dims) Contains(c Coord) bool {
	if len(c) != len(d) {
		return false
	}
	for axis, v := range c {
		if v < 0 || v >= d[axis] {
			return false
		}
	}
	return true
}

// flatIndex maps an in-bounds coordinate to its row-major position.
func (d Dims) flatIndex(c Coord) int {
	i := 0
	for axis, v := range c {
		i = i*d[axis] + v
	}
	return i
}

// coordAt is the inverse of flatIndex.
func (d Dims) coordAt(i int) Coord {
	c := make(Coord, len(d))
	for axis := len(d) - 1; axis >= 0; axis-- {
		c[axis] = i % d[axis]
		i /= d[axis]
	}
	return c
}

// Coordinates enumerates every valid coordinate in row-major order
// (last axis varies fastest). Each yielded Coord is a fresh slice.
func (d Dims) Coordinates() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		if !d.Valid() {
			return
		}
		c := make(Coord, len(d))
		for {
			if !yield(c.Clone()) {
				return
			}
			axis := len(d) - 1
			for ; axis >= 0; axis-- {
				c[axis]++
				if c[axis] < d[axis] {
					break
				}
				c[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// Neighbors returns the Chebyshev neighborhood of c: every in-bounds
// coordinate that differs from c by at most 1 on every axis, excluding
// c itself. There are at most 3^rank - 1 of them and the order is
// deterministic (deltas enumerated row-major from all -1).
func (d Dims) Neighbors(c Coord) []Coord {
	rank := len(d)
	deltas := make([]int, rank)
	for axis := range deltas {
		deltas[axis] = -1
	}
	neighbors := make([]Coord, 0)
	for {
		self := true
		inBounds := true
		n := make(Coord, rank)
		for axis, delta := range deltas {
			if delta != 0 {
				self = false
			}
			v := c[axis] + delta
			if v < 0 || v >= d[axis] {
				inBounds = false
				break
			}
			n[axis] = v
		}
		if !self && inBounds {
			neighbors = append(neighbors, n)
		}
		axis := rank - 1
		for ; axis >= 0; axis-- {
			deltas[axis]++
			if deltas[axis] <= 1 {
				break
			}
			deltas[axis] = -1
		}
		if axis < 0 {
			break
		}
	}
	return neighbors
}
