package mines

const hiddenGlyph = "_"

// Render projects the board into a same-shaped grid of display glyphs.
// Cells that are hidden render as "_" unless revealAll is set; revealed
// cells use their Cell glyph. Render never mutates the game.
func (s *GameState) Render(revealAll bool) Grid[string] {
	out := NewGrid[string](s.Dims)
	for c := range s.Dims.Coordinates() {
		if revealAll || s.Visible.At(c) {
			out.Set(c, s.Board.At(c).Glyph())
		} else {
			out.Set(c, hiddenGlyph)
		}
	}
	return out
}
