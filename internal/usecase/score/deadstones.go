package score

import "baduk_core/internal/domain/game"

// SuggestDeadStones proposes a dead-stone set for Analyze: groups down
// to their last liberty with no eye. It is a deliberately conservative
// heuristic, not a life-and-death solver; callers wanting better
// answers supply their own set.
func (a *Analyzer) SuggestDeadStones(board game.Board) map[game.Coord]bool {
	dead := make(map[game.Coord]bool)
	seen := make(map[game.Coord]bool)

	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := game.Coord{Row: row, Col: col}
			if seen[c] || board.At(c) == game.Empty {
				continue
			}
			group, ok := board.GroupAt(c)
			if !ok {
				continue
			}
			for _, stone := range group.Stones {
				seen[stone] = true
			}
			if group.LibertyCount() <= 1 && countEyes(board, group) == 0 {
				for _, stone := range group.Stones {
					dead[stone] = true
				}
			}
		}
	}
	return dead
}

// countEyes counts the eye points of a group: empty points whose
// orthogonal neighbors all belong to the group's color, with enough
// diagonal support to rule out false eyes.
func countEyes(board game.Board, group game.Group) int {
	eyes := 0
	checked := make(map[game.Coord]bool)
	for _, stone := range group.Stones {
		for _, n := range board.Neighbors(stone) {
			if checked[n] {
				continue
			}
			checked[n] = true
			if board.At(n) == game.Empty && isEye(board, n, group.Color) {
				eyes++
			}
		}
	}
	return eyes
}

func isEye(board game.Board, c game.Coord, color game.Color) bool {
	for _, n := range board.Neighbors(c) {
		if board.At(n) != color {
			return false
		}
	}

	friendly, total := 0, 0
	for _, d := range [4]game.Coord{
		{Row: c.Row - 1, Col: c.Col - 1},
		{Row: c.Row - 1, Col: c.Col + 1},
		{Row: c.Row + 1, Col: c.Col - 1},
		{Row: c.Row + 1, Col: c.Col + 1},
	} {
		if !board.InBounds(d) {
			continue
		}
		total++
		if board.At(d) == color {
			friendly++
		}
	}

	// An eye needs three of four supporting diagonals in the interior,
	// all but one of those that exist on the edge.
	if total == 4 {
		return friendly >= 3
	}
	return friendly >= total-1
}
