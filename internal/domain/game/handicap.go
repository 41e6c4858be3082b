package game

import (
	"fmt"

	"baduk_core/internal/errors"
)

// Star points and handicap placements follow the traditional tables
// for the three standard board sizes. Other sizes play even games.

var starPoints = map[int][]Coord{
	19: {{3, 3}, {3, 9}, {3, 15}, {9, 3}, {9, 9}, {9, 15}, {15, 3}, {15, 9}, {15, 15}},
	13: {{3, 3}, {3, 9}, {9, 3}, {9, 9}, {6, 6}},
	9:  {{2, 2}, {2, 6}, {6, 2}, {6, 6}, {4, 4}},
}

var handicapPlacements = map[int]map[int][]Coord{
	19: {
		2: {{3, 15}, {15, 3}},
		3: {{3, 15}, {15, 3}, {3, 3}},
		4: {{3, 15}, {15, 3}, {3, 3}, {15, 15}},
		5: {{3, 15}, {15, 3}, {3, 3}, {15, 15}, {9, 9}},
		6: {{3, 15}, {15, 3}, {3, 3}, {15, 15}, {3, 9}, {15, 9}},
		7: {{3, 15}, {15, 3}, {3, 3}, {15, 15}, {3, 9}, {15, 9}, {9, 9}},
		8: {{3, 15}, {15, 3}, {3, 3}, {15, 15}, {3, 9}, {15, 9}, {9, 3}, {9, 15}},
		9: {{3, 15}, {15, 3}, {3, 3}, {15, 15}, {3, 9}, {15, 9}, {9, 3}, {9, 15}, {9, 9}},
	},
	13: {
		2: {{3, 9}, {9, 3}},
		3: {{3, 9}, {9, 3}, {3, 3}},
		4: {{3, 9}, {9, 3}, {3, 3}, {9, 9}},
		5: {{3, 9}, {9, 3}, {3, 3}, {9, 9}, {6, 6}},
		6: {{3, 9}, {9, 3}, {3, 3}, {9, 9}, {3, 6}, {9, 6}},
		7: {{3, 9}, {9, 3}, {3, 3}, {9, 9}, {3, 6}, {9, 6}, {6, 6}},
		8: {{3, 9}, {9, 3}, {3, 3}, {9, 9}, {3, 6}, {9, 6}, {6, 3}, {6, 9}},
		9: {{3, 9}, {9, 3}, {3, 3}, {9, 9}, {3, 6}, {9, 6}, {6, 3}, {6, 9}, {6, 6}},
	},
	9: {
		2: {{2, 6}, {6, 2}},
		3: {{2, 6}, {6, 2}, {2, 2}},
		4: {{2, 6}, {6, 2}, {2, 2}, {6, 6}},
		5: {{2, 6}, {6, 2}, {2, 2}, {6, 6}, {4, 4}},
	},
}

func StarPoints(size int) []Coord {
	points := starPoints[size]
	out := make([]Coord, len(points))
	copy(out, points)
	return out
}

// HandicapPlacement returns the pre-placed Black stones for the given
// handicap. Zero or one stone means no pre-placement (a one-stone
// handicap is just Black moving first).
func HandicapPlacement(size, stones int) ([]Coord, error) {
	if stones <= 1 {
		return nil, nil
	}
	table, ok := handicapPlacements[size]
	if !ok {
		return nil, fmt.Errorf("%w: no table for size %d", errors.ErrInvalidHandicap, size)
	}
	points, ok := table[stones]
	if !ok {
		return nil, fmt.Errorf("%w: %d stones on a %dx%d board", errors.ErrInvalidHandicap, stones, size, size)
	}
	out := make([]Coord, len(points))
	copy(out, points)
	return out, nil
}
