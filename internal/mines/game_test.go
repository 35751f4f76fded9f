package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the 2x4 board from the classic fixture:
//
//	. 3 1 0
//	. . 1 0
func newFixture2D(t *testing.T) *GameState {
	t.Helper()
	game, err := NewGame(
		Dims{2, 4},
		[]Coord{{0, 0}, {1, 0}, {1, 1}},
	)
	require.NoError(t, err)
	return game
}

// the 2x4x2 board from the rank-3 fixture:
//
//	[[3 .] [3 3] [1 1] [0 0]]
//	[[. 3] [3 .] [1 1] [0 0]]
func newFixture3D(t *testing.T) *GameState {
	t.Helper()
	game, err := NewGame(
		Dims{2, 4, 2},
		[]Coord{{0, 0, 1}, {1, 0, 0}, {1, 1, 1}},
	)
	require.NoError(t, err)
	return game
}

func TestNewGameBoard2D(t *testing.T) {
	game := newFixture2D(t)

	want := []Cell{
		Mine, 3, 1, 0,
		Mine, Mine, 1, 0,
	}
	assert.Equal(t, want, game.Board.Cells)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Equal(t, 3, game.MineCount())
	for _, visible := range game.Visible.Cells {
		assert.False(t, visible)
	}
}

func TestNewGameBoard3D(t *testing.T) {
	game := newFixture3D(t)

	want := []Cell{
		3, Mine, 3, 3, 1, 1, 0, 0,
		Mine, 3, 3, Mine, 1, 1, 0, 0,
	}
	assert.Equal(t, want, game.Board.Cells)
}

func TestNewGameDuplicateMines(t *testing.T) {
	game, err := NewGame(Dims{2, 2}, []Coord{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, game.MineCount())
	assert.Equal(t, Cell(1), game.Board.At(Coord{1, 1}))
}

func TestNewGameErrors(t *testing.T) {
	_, err := NewGame(Dims{}, nil)
	assert.ErrorIs(t, err, ErrInvalidDims)

	_, err = NewGame(Dims{2, 0}, nil)
	assert.ErrorIs(t, err, ErrInvalidDims)

	_, err = NewGame(Dims{2, 4}, []Coord{{0, 4}})
	var oob OutOfBoundsError
	assert.ErrorAs(t, err, &oob)

	_, err = NewGame(Dims{2, 4}, []Coord{{0}})
	assert.ErrorAs(t, err, &oob)
}

func TestDigFloodFillToVictory(t *testing.T) {
	game := newFixture2D(t)
	game.Visible.Set(Coord{0, 1}, true)

	revealed, err := game.Dig(Coord{0, 3})
	require.NoError(t, err)
	assert.Equal(t, 4, revealed)
	assert.Equal(t, StatusVictory, game.Status)

	wantVisible := []bool{
		false, true, true, true,
		false, false, true, true,
	}
	assert.Equal(t, wantVisible, game.Visible.Cells)
}

func TestDigMineIsDefeat(t *testing.T) {
	game := newFixture2D(t)

	revealed, err := game.Dig(Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, revealed)
	assert.Equal(t, StatusDefeat, game.Status)

	wantVisible := []bool{
		true, false, false, false,
		false, false, false, false,
	}
	assert.Equal(t, wantVisible, game.Visible.Cells)
}

func TestDigFloodFill3D(t *testing.T) {
	game := newFixture3D(t)

	revealed, err := game.Dig(Coord{0, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, 8, revealed)
	assert.Equal(t, StatusOngoing, game.Status)

	// the zero component spans the third axis, plus its 1-valued border
	for _, c := range []Coord{
		{0, 2, 0}, {0, 2, 1}, {0, 3, 0}, {0, 3, 1},
		{1, 2, 0}, {1, 2, 1}, {1, 3, 0}, {1, 3, 1},
	} {
		assert.True(t, game.Visible.At(c), "expected %v revealed", c)
	}
	assert.False(t, game.Visible.At(Coord{0, 1, 0}))
}

func TestDigNonZeroRevealsOnlyItself(t *testing.T) {
	game := newFixture2D(t)

	revealed, err := game.Dig(Coord{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, revealed)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.True(t, game.Visible.At(Coord{0, 1}))
	assert.False(t, game.Visible.At(Coord{0, 2}))
}

func TestDigIdempotent(t *testing.T) {
	game := newFixture2D(t)

	_, err := game.Dig(Coord{0, 1})
	require.NoError(t, err)

	before := append([]bool(nil), game.Visible.Cells...)
	revealed, err := game.Dig(Coord{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, revealed)
	assert.Equal(t, before, game.Visible.Cells)
	assert.Equal(t, StatusOngoing, game.Status)
}

func TestDigAfterTerminalIsNoop(t *testing.T) {
	game := newFixture2D(t)

	_, err := game.Dig(Coord{0, 0})
	require.NoError(t, err)
	require.Equal(t, StatusDefeat, game.Status)

	before := append([]bool(nil), game.Visible.Cells...)
	revealed, err := game.Dig(Coord{0, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, revealed)
	assert.Equal(t, StatusDefeat, game.Status)
	assert.Equal(t, before, game.Visible.Cells)
}

func TestDigOutOfBounds(t *testing.T) {
	game := newFixture2D(t)

	var oob OutOfBoundsError
	_, err := game.Dig(Coord{0, 4})
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, Coord{0, 4}, oob.Coord)

	_, err = game.Dig(Coord{0, 1, 0})
	assert.ErrorAs(t, err, &oob)

	for _, visible := range game.Visible.Cells {
		assert.False(t, visible)
	}
}

func TestDigNeverAutoRevealsMines(t *testing.T) {
	game := newFixture3D(t)

	_, err := game.Dig(Coord{0, 3, 0})
	require.NoError(t, err)

	for c := range game.Dims.Coordinates() {
		if game.Board.At(c).IsMine() {
			assert.False(t, game.Visible.At(c), "mine at %v was auto-revealed", c)
		}
	}
}

func TestVisibilityMonotonic(t *testing.T) {
	game := newFixture3D(t)

	countVisible := func() int {
		n := 0
		for _, v := range game.Visible.Cells {
			if v {
				n++
			}
		}
		return n
	}

	prev := 0
	for c := range game.Dims.Coordinates() {
		revealed, err := game.Dig(c)
		require.NoError(t, err)
		now := countVisible()
		assert.GreaterOrEqual(t, now, prev)
		assert.Equal(t, revealed, now-prev)
		prev = now
	}
}

func TestVictoryOnAllMinesBoard(t *testing.T) {
	// a board with no safe cells is won before the first dig
	game, err := NewGame(Dims{1, 2}, []Coord{{0, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, StatusVictory, game.RefreshStatus())

	revealed, err := game.Dig(Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, revealed)
	assert.Equal(t, StatusVictory, game.Status)
}

func TestRefreshStatusIdempotent(t *testing.T) {
	game := newFixture2D(t)

	_, err := game.Dig(Coord{0, 3})
	require.NoError(t, err)

	first := game.RefreshStatus()
	board := append([]Cell(nil), game.Board.Cells...)
	visible := append([]bool(nil), game.Visible.Cells...)

	assert.Equal(t, first, game.RefreshStatus())
	assert.Equal(t, board, game.Board.Cells)
	assert.Equal(t, visible, game.Visible.Cells)
}

func TestVictoryCriterion(t *testing.T) {
	game := newFixture2D(t)

	for c := range game.Dims.Coordinates() {
		if game.Board.At(c).IsMine() {
			continue
		}
		_, err := game.Dig(c)
		require.NoError(t, err)

		allSafeVisible := true
		for cc := range game.Dims.Coordinates() {
			if !game.Board.At(cc).IsMine() && !game.Visible.At(cc) {
				allSafeVisible = false
			}
		}
		assert.Equal(t, allSafeVisible, game.Status == StatusVictory)
	}
	assert.Equal(t, StatusVictory, game.Status)
}
