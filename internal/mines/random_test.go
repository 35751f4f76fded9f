package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dims  Dims
		count int
	}{
		{"2x4(3)", Dims{2, 4}, 3},
		{"5(4)", Dims{5}, 4},
		{"2x4x2(10)", Dims{2, 4, 2}, 10},
		{"3x3x3x3(30)", Dims{3, 3, 3, 3}, 30},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			exclude := make(Coord, test.dims.Rank())

			coords, err := RandomMines(test.dims, test.count, exclude, r)
			require.NoError(t, err)
			require.Len(t, coords, test.count)

			seen := map[int]bool{}
			for _, c := range coords {
				require.True(t, test.dims.Contains(c))
				require.NotEqual(t, exclude, c)
				i := test.dims.flatIndex(c)
				require.False(t, seen[i], "duplicate mine at %v", c)
				seen[i] = true
			}

			game, err := NewGame(test.dims, coords)
			require.NoError(t, err)
			assert.Equal(t, test.count, game.MineCount())

			revealed, err := game.Dig(exclude)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, revealed, 1)
			assert.NotEqual(t, StatusDefeat, game.Status)
		})
	}
}

func TestRandomMinesDeterministic(t *testing.T) {
	first, err := RandomMines(Dims{4, 4}, 6, nil, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	second, err := RandomMines(Dims{4, 4}, 6, nil, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRandomMinesErrors(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	_, err := RandomMines(Dims{}, 1, nil, r)
	assert.ErrorIs(t, err, ErrInvalidDims)

	_, err = RandomMines(Dims{2, 2}, 4, Coord{0, 0}, r)
	assert.Error(t, err, "exclusion leaves only 3 free cells")

	_, err = RandomMines(Dims{2, 2}, -1, nil, r)
	assert.Error(t, err)

	var oob OutOfBoundsError
	_, err = RandomMines(Dims{2, 2}, 1, Coord{5, 5}, r)
	assert.ErrorAs(t, err, &oob)
}
