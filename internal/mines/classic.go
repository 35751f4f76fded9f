package mines

import (
	"fmt"
	"strings"
)

// Classic 2-D helpers. These are thin wrappers over the N-dimensional
// engine: rows map to axis 0, columns to axis 1.

func NewClassicGame(rows, cols int, mineCells [][2]int) (*GameState, error) {
	mineCoords := make([]Coord, len(mineCells))
	for i, rc := range mineCells {
		mineCoords[i] = Coord{rc[0], rc[1]}
	}
	return NewGame(Dims{rows, cols}, mineCoords)
}

func (s *GameState) DigRC(row, col int) (int, error) {
	return s.Dig(Coord{row, col})
}

// RenderText flattens a rank-2 render into newline-separated rows of
// glyphs.
func (s *GameState) RenderText(revealAll bool) (string, error) {
	if s.Dims.Rank() != 2 {
		return "", fmt.Errorf("text rendering needs a rank-2 board, got rank %d", s.Dims.Rank())
	}
	glyphs := s.Render(revealAll)
	var b strings.Builder
	for row := range s.Dims[0] {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range s.Dims[1] {
			b.WriteString(glyphs.At(Coord{row, col}))
		}
	}
	return b.String(), nil
}
