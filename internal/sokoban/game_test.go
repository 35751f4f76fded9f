package sokoban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallRow(n int) [][]string {
	row := make([][]string, n)
	for i := range row {
		row[i] = []string{FeatureWall}
	}
	return row
}

// a 3x5 corridor: player, then a box, then a target
//
//	#####
//	#@$.#
//	#####
func newCorridor(t *testing.T) *Game {
	t.Helper()
	level := [][][]string{
		wallRow(5),
		{
			{FeatureWall},
			{FeaturePlayer},
			{FeatureBox},
			{FeatureTarget},
			{FeatureWall},
		},
		wallRow(5),
	}
	g, err := NewGame(level)
	require.NoError(t, err)
	return g
}

func TestNewGameErrors(t *testing.T) {
	_, err := NewGame(nil)
	assert.Error(t, err)

	_, err = NewGame([][][]string{{{}}})
	assert.Error(t, err, "no player")

	_, err = NewGame([][][]string{{{FeaturePlayer}, {FeaturePlayer}}})
	assert.Error(t, err, "two players")

	_, err = NewGame([][][]string{{{FeaturePlayer}, {"lava"}}})
	assert.Error(t, err, "unknown feature")
}

func TestStepIntoWallIsNoop(t *testing.T) {
	g := newCorridor(t)
	moved := g.Step(Up)
	assert.Same(t, g, moved)
	moved = g.Step(Left)
	assert.Same(t, g, moved)
}

func TestStepPushesBox(t *testing.T) {
	g := newCorridor(t)
	moved := g.Step(Right)

	assert.NotSame(t, g, moved)
	assert.Equal(t, Position{1, 2}, moved.player)
	assert.True(t, moved.boxes[Position{1, 3}])
	assert.False(t, moved.boxes[Position{1, 2}])
	assert.True(t, moved.Victory())

	// original state is untouched
	assert.Equal(t, Position{1, 1}, g.player)
	assert.True(t, g.boxes[Position{1, 2}])
}

func TestBlockedPushIsNoop(t *testing.T) {
	g := newCorridor(t)
	won := g.Step(Right)
	// box now sits against the wall; pushing further changes nothing
	blocked := won.Step(Right)
	assert.Same(t, won, blocked)
}

func TestVictoryNeedsTargetsAndBoxes(t *testing.T) {
	g, err := NewGame([][][]string{{{FeaturePlayer}}})
	require.NoError(t, err)
	assert.False(t, g.Victory())
}

func TestDumpRoundTrip(t *testing.T) {
	g := newCorridor(t)
	rebuilt, err := NewGame(g.Dump())
	require.NoError(t, err)
	assert.Equal(t, g.key(), rebuilt.key())
	assert.Equal(t, g.walls, rebuilt.walls)
	assert.Equal(t, g.targets, rebuilt.targets)
}

func TestSolveCorridor(t *testing.T) {
	g := newCorridor(t)
	moves, ok := Solve(g)
	require.True(t, ok)
	assert.Equal(t, []Direction{Right}, moves)
}

func TestSolveAlreadyWon(t *testing.T) {
	g := newCorridor(t).Step(Right)
	moves, ok := Solve(g)
	require.True(t, ok)
	assert.Empty(t, moves)
}

func TestSolveTwoBoxes(t *testing.T) {
	//	######
	//	#@$ .#
	//	# $ .#
	//	######
	level := [][][]string{
		wallRow(6),
		{
			{FeatureWall},
			{FeaturePlayer},
			{FeatureBox},
			{},
			{FeatureTarget},
			{FeatureWall},
		},
		{
			{FeatureWall},
			{},
			{FeatureBox},
			{},
			{FeatureTarget},
			{FeatureWall},
		},
		wallRow(6),
	}
	g, err := NewGame(level)
	require.NoError(t, err)

	moves, ok := Solve(g)
	require.True(t, ok)

	state := g
	for _, dir := range moves {
		state = state.Step(dir)
	}
	assert.True(t, state.Victory())
}

func TestSolveUnsolvable(t *testing.T) {
	// box in a corner can never reach the target
	level := [][][]string{
		wallRow(4),
		{
			{FeatureWall},
			{FeatureBox},
			{FeaturePlayer},
			{FeatureWall},
		},
		{
			{FeatureWall},
			{},
			{FeatureTarget},
			{FeatureWall},
		},
		wallRow(4),
	}
	g, err := NewGame(level)
	require.NoError(t, err)

	_, ok := Solve(g)
	assert.False(t, ok)
}
