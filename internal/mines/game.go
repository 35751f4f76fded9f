package mines

// GameState is the full state of one game: the dimension vector, the
// immutable board, the monotonically growing visibility mask and the
// status tag. Fields are exported for the gob codec; mutate only
// through Dig. A GameState is not safe for concurrent use.
type GameState struct {
	Dims    Dims
	Board   Grid[Cell]
	Visible Grid[bool]
	Status  Status
}

// NewGame builds a fresh board of the given shape. Mines are placed
// first and every remaining cell then gets the count of mines among
// its Chebyshev neighbors; the count pass must not start until every
// mine is down. Duplicate mine coordinates are tolerated.
func NewGame(dims Dims, mineCoords []Coord) (*GameState, error) {
	if !dims.Valid() {
		return nil, ErrInvalidDims
	}
	board := NewGrid[Cell](dims)
	visible := NewGrid[bool](dims)

	for _, mc := range mineCoords {
		if !dims.Contains(mc) {
			return nil, OutOfBoundsError{Coord: mc.Clone(), Dims: dims}
		}
		board.Set(mc, Mine)
	}

	for c := range dims.Coordinates() {
		if board.At(c).IsMine() {
			continue
		}
		var count Cell
		for _, nb := range dims.Neighbors(c) {
			if board.At(nb).IsMine() {
				count++
			}
		}
		board.Set(c, count)
	}

	return &GameState{
		Dims:    dims,
		Board:   board,
		Visible: visible,
		Status:  StatusOngoing,
	}, nil
}

// MineCount scans the board and returns the number of mine cells.
func (s *GameState) MineCount() int {
	count := 0
	for _, cell := range s.Board.Cells {
		if cell.IsMine() {
			count++
		}
	}
	return count
}

// RefreshStatus rescans the whole board and updates the status tag.
// Any revealed mine decides defeat immediately; victory holds once no
// cell is unrevealed or every safe cell is visible. Idempotent, and
// safe to call at any point.
func (s *GameState) RefreshStatus() Status {
	var unrevealed, safeTotal, safeRevealed int
	for c := range s.Dims.Coordinates() {
		visible := s.Visible.At(c)
		if s.Board.At(c).IsMine() {
			if visible {
				s.Status = StatusDefeat
				return s.Status
			}
			unrevealed++
			continue
		}
		safeTotal++
		if visible {
			safeRevealed++
		} else {
			unrevealed++
		}
	}
	if unrevealed == 0 || safeRevealed == safeTotal {
		s.Status = StatusVictory
	} else {
		s.Status = StatusOngoing
	}
	return s.Status
}

// Forfeit ends an ongoing game as a defeat. Terminal games are left
// alone.
func (s *GameState) Forfeit() {
	if !s.Status.Terminal() {
		s.Status = StatusDefeat
	}
}

// Dig reveals the cell at c and returns how many visibility flags
// flipped. A dig on a terminal game or an already visible cell is a
// defined no-op returning 0. Digging a mine reveals just that mine and
// ends the game. Digging a zero-count cell reveals its whole
// zero-connected component plus the component's non-mine border.
//
// An out-of-bounds or wrong-rank coordinate fails fast with an error
// and leaves the game untouched.
func (s *GameState) Dig(c Coord) (int, error) {
	if !s.Dims.Contains(c) {
		return 0, OutOfBoundsError{Coord: c.Clone(), Dims: s.Dims}
	}

	s.RefreshStatus()
	if s.Status.Terminal() {
		return 0, nil
	}
	if s.Visible.At(c) {
		return 0, nil
	}

	if s.Board.At(c).IsMine() {
		s.Visible.Set(c, true)
		s.Status = StatusDefeat
		return 1, nil
	}

	s.Visible.Set(c, true)
	revealed := 1

	if s.Board.At(c) == 0 {
		// Explicit worklist instead of recursion, so the depth is
		// independent of board size. Visibility doubles as the visited
		// set: a cell is marked before it is ever pushed, so each cell
		// is expanded at most once.
		stack := []Coord{c}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range s.Dims.Neighbors(cur) {
				if s.Visible.At(nb) || s.Board.At(nb).IsMine() {
					continue
				}
				s.Visible.Set(nb, true)
				revealed++
				if s.Board.At(nb) == 0 {
					stack = append(stack, nb)
				}
			}
		}
	}

	s.RefreshStatus()
	return revealed, nil
}
