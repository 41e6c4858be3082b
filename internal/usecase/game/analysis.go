package game

import (
	"sort"

	"baduk_core/internal/domain/game"
)

// GroupStatus is a cheap tactical summary of the group at a coordinate,
// for opponent plug-ins and interfaces that highlight groups in danger.
type GroupStatus struct {
	Color     game.Color
	Size      int
	Liberties int
	InAtari   bool
}

func (e *Engine) GroupStatus(s game.GameState, c game.Coord) (GroupStatus, bool) {
	group, ok := s.Board.GroupAt(c)
	if !ok {
		return GroupStatus{}, false
	}
	return GroupStatus{
		Color:     group.Color,
		Size:      group.Size(),
		Liberties: group.LibertyCount(),
		InAtari:   group.LibertyCount() == 1,
	}, true
}

// TacticalMove pairs a candidate placement with the number of stones it
// affects: stones captured for CapturingMoves, size of the group put in
// atari for AtariMoves.
type TacticalMove struct {
	Coord  game.Coord
	Stones int
}

// CapturingMoves finds every legal placement for the side to move that
// captures at least one opposing group, largest capture first.
func (e *Engine) CapturingMoves(s game.GameState) []TacticalMove {
	byCoord := make(map[game.Coord]int)
	for _, group := range e.opposingGroups(s, 1) {
		for lib := range group.Liberties {
			if e.IsLegal(s, game.PlaceMove(s.ToMove, lib)) == nil {
				byCoord[lib] += group.Size()
			}
		}
	}
	return sortTactical(byCoord)
}

// AtariMoves finds every legal placement for the side to move that
// reduces an opposing group to a single liberty, largest group first.
func (e *Engine) AtariMoves(s game.GameState) []TacticalMove {
	byCoord := make(map[game.Coord]int)
	for _, group := range e.opposingGroups(s, 2) {
		anchor := group.Stones[0]
		for lib := range group.Liberties {
			next, err := e.Apply(s, game.PlaceMove(s.ToMove, lib))
			if err != nil {
				continue
			}
			after, ok := next.Board.GroupAt(anchor)
			if ok && after.LibertyCount() == 1 && after.Size() >= byCoord[lib] {
				byCoord[lib] = after.Size()
			}
		}
	}
	return sortTactical(byCoord)
}

// opposingGroups collects the opponent's groups with exactly the given
// liberty count, each group once.
func (e *Engine) opposingGroups(s game.GameState, liberties int) []game.Group {
	opponent := s.ToMove.Opponent()
	var groups []game.Group
	seen := make(map[game.Coord]struct{})
	size := s.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := game.Coord{Row: row, Col: col}
			if _, done := seen[c]; done || s.Board.At(c) != opponent {
				continue
			}
			group, ok := s.Board.GroupAt(c)
			if !ok {
				continue
			}
			for _, stone := range group.Stones {
				seen[stone] = struct{}{}
			}
			if group.LibertyCount() == liberties {
				groups = append(groups, group)
			}
		}
	}
	return groups
}

func sortTactical(byCoord map[game.Coord]int) []TacticalMove {
	moves := make([]TacticalMove, 0, len(byCoord))
	for c, stones := range byCoord {
		moves = append(moves, TacticalMove{Coord: c, Stones: stones})
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Stones != moves[j].Stones {
			return moves[i].Stones > moves[j].Stones
		}
		if moves[i].Coord.Row != moves[j].Coord.Row {
			return moves[i].Coord.Row < moves[j].Coord.Row
		}
		return moves[i].Coord.Col < moves[j].Coord.Col
	})
	return moves
}
