package mines

import "strconv"

// Cell is a single board leaf: either the Mine sentinel or the count
// of adjacent mines. Counts can reach 3^rank - 1 on high-rank boards,
// well past what a byte holds.
type Cell int32

const Mine Cell = -1

func (c Cell) IsMine() bool {
	return c == Mine
}

// Glyph returns the display symbol for a revealed cell: "." for a
// mine, a blank for zero, the decimal count otherwise.
func (c Cell) Glyph() string {
	switch {
	case c == Mine:
		return "."
	case c == 0:
		return " "
	default:
		return strconv.Itoa(int(c))
	}
}

type Status uint8

const (
	StatusOngoing Status = iota
	StatusVictory
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "ongoing"
	}
}

// Terminal reports whether the game admits no further moves.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusDefeat
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "ongoing":
		return StatusOngoing, nil
	case "victory":
		return StatusVictory, nil
	case "defeat":
		return StatusDefeat, nil
	}
	return StatusOngoing, &ParseError{Input: s, Kind: "status"}
}
