package score

import (
	"go.uber.org/zap"

	"baduk_core/internal/domain/game"
)

// TerritoryResult is the outcome of territory analysis: per-color
// territory points, neutral (dame) points, the stones left on the
// board after dead-stone removal, and the dead stones lifted per color.
type TerritoryResult struct {
	BlackTerritory int
	WhiteTerritory int
	Neutral        int
	BlackStones    int
	WhiteStones    int
	DeadBlack      int
	DeadWhite      int
}

// Analyzer classifies the empty regions of a final board. It does not
// decide life and death: the dead-stone set comes from the caller (a
// human agreement, SuggestDeadStones, or an external solver).
type Analyzer struct {
	log *zap.SugaredLogger
}

func NewAnalyzer(log *zap.SugaredLogger) *Analyzer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Analyzer{log: log}
}

// Analyze removes the dead stones, then flood-fills every maximal empty
// region. A region bordered by stones of exactly one color belongs to
// that color; a region bordering both colors, or no stones at all, is
// neutral. The input board is not modified.
func (a *Analyzer) Analyze(board game.Board, dead map[game.Coord]bool) TerritoryResult {
	work := board.Clone()

	var result TerritoryResult
	for c, isDead := range dead {
		if !isDead {
			continue
		}
		switch work.At(c) {
		case game.Black:
			result.DeadBlack++
		case game.White:
			result.DeadWhite++
		default:
			continue
		}
		work.Remove(c)
	}

	result.BlackStones, result.WhiteStones = work.StoneCounts()

	size := work.Size()
	visited := make(map[game.Coord]bool)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := game.Coord{Row: row, Col: col}
			if visited[c] || work.At(c) != game.Empty {
				continue
			}
			region, owner := fillRegion(work, c, visited)
			switch owner {
			case game.Black:
				result.BlackTerritory += len(region)
			case game.White:
				result.WhiteTerritory += len(region)
			default:
				result.Neutral += len(region)
			}
		}
	}

	a.log.Debugw("territory analyzed",
		"black_territory", result.BlackTerritory,
		"white_territory", result.WhiteTerritory,
		"neutral", result.Neutral)
	return result
}

// fillRegion collects the maximal empty region containing start with a
// work-list and reports its owner: the single bordering color, or Empty
// when the region is neutral.
func fillRegion(board game.Board, start game.Coord, visited map[game.Coord]bool) ([]game.Coord, game.Color) {
	var region []game.Coord
	borders := make(map[game.Color]bool)

	visited[start] = true
	work := []game.Coord{start}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		region = append(region, cur)

		for _, n := range board.Neighbors(cur) {
			switch color := board.At(n); color {
			case game.Empty:
				if !visited[n] {
					visited[n] = true
					work = append(work, n)
				}
			default:
				borders[color] = true
			}
		}
	}

	if len(borders) == 1 {
		for color := range borders {
			return region, color
		}
	}
	return region, game.Empty
}
