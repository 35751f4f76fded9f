package mines

import (
	"bytes"
	"encoding/gob"
)

// Bytes serializes the game state for persistence.
func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGameState is the inverse of Bytes. Decoded state is validated:
// a board or visibility buffer whose shape disagrees with the
// dimension vector is an invariant violation, not a playable game.
func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&game); err != nil {
		return nil, err
	}
	if !game.Dims.Valid() {
		return nil, ErrInvalidDims
	}
	if !game.Board.shapedLike(game.Dims) {
		return nil, ShapeMismatchError{Dims: game.Dims, Cells: len(game.Board.Cells)}
	}
	if !game.Visible.shapedLike(game.Dims) {
		return nil, ShapeMismatchError{Dims: game.Dims, Cells: len(game.Visible.Cells)}
	}
	return &game, nil
}
