package game

import (
	"testing"

	"baduk_core/internal/domain/game"
)

func TestGroupStatus(t *testing.T) {
	e := NewEngine(nil)
	state := newTestState(t, 9, game.Black, map[game.Coord]game.Color{
		{Row: 1, Col: 1}: game.White,
		{Row: 0, Col: 1}: game.Black,
		{Row: 2, Col: 1}: game.Black,
		{Row: 1, Col: 0}: game.Black,
	})

	status, ok := e.GroupStatus(state, game.Coord{Row: 1, Col: 1})
	if !ok {
		t.Fatal("expected a group at (1,1)")
	}
	if status.Color != game.White || status.Size != 1 || status.Liberties != 1 || !status.InAtari {
		t.Errorf("status: %+v", status)
	}

	if _, ok := e.GroupStatus(state, game.Coord{Row: 5, Col: 5}); ok {
		t.Error("empty cell should report no group")
	}
}

func TestCapturingMoves(t *testing.T) {
	e := NewEngine(nil)
	// Two white groups in atari: a two-stone group dying at (0,3) and a
	// single stone dying at (5, 6).
	state := newTestState(t, 9, game.Black, map[game.Coord]game.Color{
		{Row: 0, Col: 1}: game.White,
		{Row: 0, Col: 2}: game.White,
		{Row: 0, Col: 0}: game.Black,
		{Row: 1, Col: 1}: game.Black,
		{Row: 1, Col: 2}: game.Black,
		{Row: 5, Col: 5}: game.White,
		{Row: 4, Col: 5}: game.Black,
		{Row: 6, Col: 5}: game.Black,
		{Row: 5, Col: 4}: game.Black,
	})

	moves := e.CapturingMoves(state)
	if len(moves) != 2 {
		t.Fatalf("capturing moves: got %v, want 2 entries", moves)
	}
	// Largest capture first.
	if moves[0].Coord != (game.Coord{Row: 0, Col: 3}) || moves[0].Stones != 2 {
		t.Errorf("first: got %+v, want capture of 2 at (0,3)", moves[0])
	}
	if moves[1].Coord != (game.Coord{Row: 5, Col: 6}) || moves[1].Stones != 1 {
		t.Errorf("second: got %+v, want capture of 1 at (5,6)", moves[1])
	}
}

func TestCapturingMovesEmptyWhenNothingInAtari(t *testing.T) {
	e := NewEngine(nil)
	state := newTestState(t, 9, game.Black, map[game.Coord]game.Color{
		{Row: 4, Col: 4}: game.White,
	})
	if moves := e.CapturingMoves(state); len(moves) != 0 {
		t.Errorf("got %v, want none", moves)
	}
}

func TestAtariMoves(t *testing.T) {
	e := NewEngine(nil)
	// White (4,4) has two liberties left, (3,4) and (5,4). Either fills
	// to an atari.
	state := newTestState(t, 9, game.Black, map[game.Coord]game.Color{
		{Row: 4, Col: 4}: game.White,
		{Row: 4, Col: 3}: game.Black,
		{Row: 4, Col: 5}: game.Black,
	})

	moves := e.AtariMoves(state)
	if len(moves) != 2 {
		t.Fatalf("atari moves: got %v, want 2 entries", moves)
	}
	for _, m := range moves {
		if m.Stones != 1 {
			t.Errorf("group size: got %d, want 1", m.Stones)
		}
		if m.Coord != (game.Coord{Row: 3, Col: 4}) && m.Coord != (game.Coord{Row: 5, Col: 4}) {
			t.Errorf("unexpected atari point %s", m.Coord)
		}
	}
}

func TestAtariMovesPreferLargerGroups(t *testing.T) {
	e := NewEngine(nil)
	// A three-stone white chain and a lone white stone, both on two
	// liberties. The chain outranks the stone.
	state := newTestState(t, 9, game.Black, map[game.Coord]game.Color{
		{Row: 2, Col: 2}: game.White,
		{Row: 2, Col: 3}: game.White,
		{Row: 2, Col: 4}: game.White,
		{Row: 1, Col: 2}: game.Black,
		{Row: 1, Col: 3}: game.Black,
		{Row: 1, Col: 4}: game.Black,
		{Row: 3, Col: 2}: game.Black,
		{Row: 3, Col: 3}: game.Black,
		{Row: 3, Col: 4}: game.Black,
		{Row: 7, Col: 7}: game.White,
		{Row: 6, Col: 7}: game.Black,
		{Row: 7, Col: 6}: game.Black,
	})

	moves := e.AtariMoves(state)
	if len(moves) == 0 {
		t.Fatal("expected atari candidates")
	}
	if moves[0].Stones != 3 {
		t.Errorf("first candidate should target the chain, got %+v", moves[0])
	}
}
