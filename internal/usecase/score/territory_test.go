package score

import (
	"testing"

	"baduk_core/internal/domain/game"
)

func buildBoard(t *testing.T, size int, stones map[game.Coord]game.Color) game.Board {
	t.Helper()
	board, err := game.NewBoard(size)
	if err != nil {
		t.Fatal(err)
	}
	for c, color := range stones {
		if err := board.Place(c, color); err != nil {
			t.Fatalf("placing %s: %v", c, err)
		}
	}
	return board
}

// wallBoard is a 5x5 board split by full columns of stones: black on
// column 1, white on column 3.
func wallBoard(t *testing.T) game.Board {
	t.Helper()
	stones := make(map[game.Coord]game.Color)
	for row := 0; row < 5; row++ {
		stones[game.Coord{Row: row, Col: 1}] = game.Black
		stones[game.Coord{Row: row, Col: 3}] = game.White
	}
	return buildBoard(t, 5, stones)
}

func TestAnalyzeEmptyBoardIsNeutral(t *testing.T) {
	a := NewAnalyzer(nil)
	board := buildBoard(t, 9, nil)

	result := a.Analyze(board, nil)
	if result.Neutral != 81 {
		t.Errorf("neutral: got %d, want 81", result.Neutral)
	}
	if result.BlackTerritory != 0 || result.WhiteTerritory != 0 {
		t.Errorf("territory on an empty board: %d/%d", result.BlackTerritory, result.WhiteTerritory)
	}
}

func TestAnalyzeSingleStoneOwnsTheBoard(t *testing.T) {
	a := NewAnalyzer(nil)
	board := buildBoard(t, 9, map[game.Coord]game.Color{{Row: 4, Col: 4}: game.Black})

	result := a.Analyze(board, nil)
	if result.BlackTerritory != 80 {
		t.Errorf("black territory: got %d, want 80", result.BlackTerritory)
	}
	if result.Neutral != 0 || result.WhiteTerritory != 0 {
		t.Errorf("unexpected neutral/white points: %d/%d", result.Neutral, result.WhiteTerritory)
	}
	if result.BlackStones != 1 {
		t.Errorf("black stones: got %d, want 1", result.BlackStones)
	}
}

func TestAnalyzeDividedBoard(t *testing.T) {
	a := NewAnalyzer(nil)
	result := a.Analyze(wallBoard(t), nil)

	// Column 0 belongs to black, column 4 to white, column 2 touches
	// both walls and stays neutral.
	if result.BlackTerritory != 5 || result.WhiteTerritory != 5 || result.Neutral != 5 {
		t.Errorf("territory: got %d/%d neutral %d, want 5/5 neutral 5",
			result.BlackTerritory, result.WhiteTerritory, result.Neutral)
	}
	if result.BlackStones != 5 || result.WhiteStones != 5 {
		t.Errorf("stones: got %d/%d, want 5/5", result.BlackStones, result.WhiteStones)
	}
}

func TestAnalyzeMixedRegionIsNeutral(t *testing.T) {
	a := NewAnalyzer(nil)
	board := buildBoard(t, 9, map[game.Coord]game.Color{
		{Row: 2, Col: 2}: game.Black,
		{Row: 6, Col: 6}: game.White,
	})

	result := a.Analyze(board, nil)
	if result.Neutral != 79 {
		t.Errorf("neutral: got %d, want 79", result.Neutral)
	}
}

func TestAnalyzeRemovesDeadStones(t *testing.T) {
	a := NewAnalyzer(nil)
	stones := make(map[game.Coord]game.Color)
	for row := 0; row < 5; row++ {
		stones[game.Coord{Row: row, Col: 1}] = game.Black
		stones[game.Coord{Row: row, Col: 3}] = game.White
	}
	// A black invader inside white's area, agreed dead.
	stones[game.Coord{Row: 2, Col: 4}] = game.Black
	board := buildBoard(t, 5, stones)

	dead := map[game.Coord]bool{{Row: 2, Col: 4}: true}
	result := a.Analyze(board, dead)
	if result.DeadBlack != 1 || result.DeadWhite != 0 {
		t.Fatalf("dead: got %d/%d, want 1/0", result.DeadBlack, result.DeadWhite)
	}
	if result.WhiteTerritory != 5 {
		t.Errorf("white territory after removal: got %d, want 5", result.WhiteTerritory)
	}
	if result.BlackStones != 5 {
		t.Errorf("black stones after removal: got %d, want 5", result.BlackStones)
	}

	// The caller's board is untouched.
	if board.At(game.Coord{Row: 2, Col: 4}) != game.Black {
		t.Error("Analyze modified the input board")
	}
}

func TestAnalyzeIgnoresFalseDeadEntries(t *testing.T) {
	a := NewAnalyzer(nil)
	board := buildBoard(t, 5, map[game.Coord]game.Color{{Row: 2, Col: 2}: game.Black})

	// Entries set to false or pointing at empty cells are no-ops.
	dead := map[game.Coord]bool{
		{Row: 2, Col: 2}: false,
		{Row: 0, Col: 0}: true,
	}
	result := a.Analyze(board, dead)
	if result.DeadBlack != 0 || result.DeadWhite != 0 {
		t.Errorf("dead: got %d/%d, want 0/0", result.DeadBlack, result.DeadWhite)
	}
	if result.BlackStones != 1 {
		t.Errorf("black stones: got %d, want 1", result.BlackStones)
	}
}

func TestSuggestDeadStones(t *testing.T) {
	a := NewAnalyzer(nil)
	// Black (0,0)-(0,1) is down to one outside liberty with no eye;
	// the surrounding white group is healthy.
	board := buildBoard(t, 9, map[game.Coord]game.Color{
		{Row: 0, Col: 0}: game.Black,
		{Row: 0, Col: 1}: game.Black,
		{Row: 1, Col: 0}: game.White,
		{Row: 1, Col: 1}: game.White,
		{Row: 1, Col: 2}: game.White,
	})

	dead := a.SuggestDeadStones(board)
	if !dead[game.Coord{Row: 0, Col: 0}] || !dead[game.Coord{Row: 0, Col: 1}] {
		t.Error("eyeless group in atari should be suggested dead")
	}
	for _, c := range []game.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}} {
		if dead[c] {
			t.Errorf("healthy white stone %s suggested dead", c)
		}
	}
}

func TestSuggestDeadStonesSparesEyedGroup(t *testing.T) {
	a := NewAnalyzer(nil)
	// The black corner group's single liberty at (0,0) is a real eye,
	// so it stays off the dead list even in atari.
	board := buildBoard(t, 9, map[game.Coord]game.Color{
		{Row: 0, Col: 1}: game.Black,
		{Row: 1, Col: 0}: game.Black,
		{Row: 1, Col: 1}: game.Black,
		{Row: 0, Col: 2}: game.White,
		{Row: 1, Col: 2}: game.White,
		{Row: 2, Col: 0}: game.White,
		{Row: 2, Col: 1}: game.White,
		{Row: 2, Col: 2}: game.White,
	})

	dead := a.SuggestDeadStones(board)
	for _, c := range []game.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		if dead[c] {
			t.Errorf("eyed group stone %s suggested dead", c)
		}
	}
}
