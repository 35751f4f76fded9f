package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimsSize(t *testing.T) {
	assert.Equal(t, 8, Dims{2, 4}.Size())
	assert.Equal(t, 16, Dims{2, 4, 2}.Size())
	assert.Equal(t, 5, Dims{5}.Size())
}

func TestDimsValid(t *testing.T) {
	assert.True(t, Dims{1}.Valid())
	assert.True(t, Dims{2, 4, 2}.Valid())
	assert.False(t, Dims{}.Valid())
	assert.False(t, Dims(nil).Valid())
	assert.False(t, Dims{2, 0}.Valid())
	assert.False(t, Dims{-1}.Valid())
}

func TestDimsContains(t *testing.T) {
	d := Dims{2, 4}
	assert.True(t, d.Contains(Coord{0, 0}))
	assert.True(t, d.Contains(Coord{1, 3}))
	assert.False(t, d.Contains(Coord{2, 0}))
	assert.False(t, d.Contains(Coord{0, 4}))
	assert.False(t, d.Contains(Coord{0, -1}))
	assert.False(t, d.Contains(Coord{0}))
	assert.False(t, d.Contains(Coord{0, 0, 0}))
}

func TestFlatIndexRoundTrip(t *testing.T) {
	d := Dims{2, 4, 3}
	i := 0
	for c := range d.Coordinates() {
		require.Equal(t, i, d.flatIndex(c))
		require.Equal(t, c, d.coordAt(i))
		i++
	}
	require.Equal(t, d.Size(), i)
}

func TestCoordinatesOrder(t *testing.T) {
	var got []Coord
	for c := range (Dims{2, 2}).Coordinates() {
		got = append(got, c)
	}
	want := []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	assert.Equal(t, want, got)
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		dims Dims
		at   Coord
		want int
	}{
		{"rank-1 interior", Dims{5}, Coord{2}, 2},
		{"rank-1 edge", Dims{5}, Coord{0}, 1},
		{"rank-2 interior", Dims{3, 3}, Coord{1, 1}, 8},
		{"rank-2 corner", Dims{3, 3}, Coord{0, 0}, 3},
		{"rank-3 interior", Dims{3, 3, 3}, Coord{1, 1, 1}, 26},
		{"rank-3 corner", Dims{3, 3, 3}, Coord{0, 0, 0}, 7},
		{"rank-4 interior", Dims{3, 3, 3, 3}, Coord{1, 1, 1, 1}, 80},
		{"single cell", Dims{1, 1}, Coord{0, 0}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.dims.Neighbors(test.at)
			assert.Len(t, got, test.want)
			for _, nb := range got {
				assert.True(t, test.dims.Contains(nb), "neighbor %v out of bounds", nb)
				assert.NotEqual(t, test.at, nb)
			}
		})
	}
}

func TestNeighborsDeterministicOrder(t *testing.T) {
	d := Dims{2, 4}
	want := []Coord{{0, 2}, {1, 2}, {1, 3}}
	assert.Equal(t, want, d.Neighbors(Coord{0, 3}))
}

func TestGridAddressing(t *testing.T) {
	g := NewGrid[int](Dims{2, 3})
	g.Set(Coord{0, 0}, 7)
	g.Set(Coord{1, 2}, 9)
	assert.Equal(t, 7, g.At(Coord{0, 0}))
	assert.Equal(t, 9, g.At(Coord{1, 2}))
	assert.Equal(t, 0, g.At(Coord{0, 1}))
}

func TestGridNested(t *testing.T) {
	g := NewGrid[int](Dims{2, 2})
	g.Set(Coord{0, 1}, 1)
	g.Set(Coord{1, 0}, 2)
	want := []any{
		[]any{0, 1},
		[]any{2, 0},
	}
	assert.Equal(t, want, g.Nested())
}
