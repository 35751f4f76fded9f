package sokoban

// Solve searches for a shortest move sequence that wins the game,
// breadth-first over (player, boxes) states. The second return is
// false when no sequence of moves can win.
func Solve(g *Game) ([]Direction, bool) {
	if g.Victory() {
		return []Direction{}, true
	}
	if len(g.targets) == 0 || len(g.boxes) == 0 {
		return nil, false
	}

	type node struct {
		game *Game
		path []Direction
	}

	queue := []node{{game: g}}
	visited := map[string]bool{g.key(): true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range []Direction{Up, Down, Left, Right} {
			next := cur.game.Step(dir)
			k := next.key()
			if visited[k] {
				continue
			}
			visited[k] = true

			path := make([]Direction, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, dir)

			if next.Victory() {
				return path, true
			}
			queue = append(queue, node{game: next, path: path})
		}
	}
	return nil, false
}
