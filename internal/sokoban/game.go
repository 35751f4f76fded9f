// Package sokoban implements the box-pushing puzzle: a player pushes
// boxes around a walled grid until every target square holds a box,
// plus a breadth-first solver for shortest move sequences.
package sokoban

import (
	"fmt"
	"slices"
	"strings"
)

// Cell feature names used by level descriptions and dumps.
const (
	FeaturePlayer = "player"
	FeatureWall   = "wall"
	FeatureTarget = "target"
	FeatureBox    = "computer"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("%q is not a direction", s)
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return +1, 0
	case Left:
		return 0, -1
	default:
		return 0, +1
	}
}

type Position struct {
	Row, Col int
}

func (p Position) shifted(d Direction) Position {
	dr, dc := d.delta()
	return Position{p.Row + dr, p.Col + dc}
}

// Game is one immutable puzzle state. Step returns fresh states; walls
// and targets are shared between them, boxes are copied on write.
type Game struct {
	rows, cols int
	player     Position
	walls      map[Position]bool
	targets    map[Position]bool
	boxes      map[Position]bool
}

// NewGame builds a game from a level description: a rectangular grid
// where each cell lists its features ("player", "wall", "target",
// "computer"). Exactly one cell must hold the player.
func NewGame(level [][][]string) (*Game, error) {
	if len(level) == 0 || len(level[0]) == 0 {
		return nil, fmt.Errorf("level must be a non-empty grid")
	}
	g := &Game{
		rows:    len(level),
		cols:    len(level[0]),
		player:  Position{-1, -1},
		walls:   map[Position]bool{},
		targets: map[Position]bool{},
		boxes:   map[Position]bool{},
	}
	players := 0
	for r, row := range level {
		for c, cell := range row {
			p := Position{r, c}
			for _, feature := range cell {
				switch feature {
				case FeaturePlayer:
					g.player = p
					players++
				case FeatureWall:
					g.walls[p] = true
				case FeatureTarget:
					g.targets[p] = true
				case FeatureBox:
					g.boxes[p] = true
				default:
					return nil, fmt.Errorf("unknown cell feature %q at (%d, %d)", feature, r, c)
				}
			}
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("level must contain exactly one player, found %d", players)
	}
	return g, nil
}

// Victory reports whether every target square holds a box. A level
// without targets or without boxes is never won.
func (g *Game) Victory() bool {
	if len(g.targets) == 0 || len(g.boxes) == 0 {
		return false
	}
	for p := range g.targets {
		if !g.boxes[p] {
			return false
		}
	}
	return true
}

// Step applies one move and returns the resulting state. A move into a
// wall, or a push into a wall or another box, changes nothing and
// returns the receiver unchanged.
func (g *Game) Step(dir Direction) *Game {
	next := g.player.shifted(dir)
	if g.walls[next] {
		return g
	}
	if !g.boxes[next] {
		moved := *g
		moved.player = next
		return &moved
	}

	pushed := next.shifted(dir)
	if g.walls[pushed] || g.boxes[pushed] {
		return g
	}
	boxes := make(map[Position]bool, len(g.boxes))
	for p := range g.boxes {
		boxes[p] = true
	}
	delete(boxes, next)
	boxes[pushed] = true

	moved := *g
	moved.player = next
	moved.boxes = boxes
	return &moved
}

// Dump projects the state back onto the nested level-description form.
func (g *Game) Dump() [][][]string {
	level := make([][][]string, g.rows)
	for r := range level {
		level[r] = make([][]string, g.cols)
		for c := range level[r] {
			cell := []string{}
			p := Position{r, c}
			if g.player == p {
				cell = append(cell, FeaturePlayer)
			}
			if g.boxes[p] {
				cell = append(cell, FeatureBox)
			}
			if g.targets[p] {
				cell = append(cell, FeatureTarget)
			}
			if g.walls[p] {
				cell = append(cell, FeatureWall)
			}
			level[r][c] = cell
		}
	}
	return level
}

// key canonicalizes the mutable part of the state (player position and
// box set) for visited-set lookups.
func (g *Game) key() string {
	positions := make([]Position, 0, len(g.boxes))
	for p := range g.boxes {
		positions = append(positions, p)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	var b strings.Builder
	fmt.Fprintf(&b, "%d,%d", g.player.Row, g.player.Col)
	for _, p := range positions {
		fmt.Fprintf(&b, "|%d,%d", p.Row, p.Col)
	}
	return b.String()
}
