package game

import (
	"fmt"

	"go.uber.org/zap"

	"baduk_core/internal/domain/game"
	"baduk_core/internal/errors"
	"baduk_core/internal/statuses"
)

// Engine decides move legality and produces successor states. Apply is
// a pure function over (GameState, Move): it never mutates its inputs,
// so independent states can be advanced concurrently without locking.
type Engine struct {
	log *zap.SugaredLogger
}

func NewEngine(log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{log: log}
}

// MoveGenerator is the capability opponent plug-ins implement: given a
// state, produce a legal move. Implementations live outside this core
// and reach it only through Apply/LegalMoves.
type MoveGenerator interface {
	GenerateMove(state game.GameState) (game.Move, error)
}

// Apply validates the move against the state and returns the successor
// state. On any illegal move the input state is untouched and remains
// usable; the error identifies the violated rule via errors.Is.
func (e *Engine) Apply(s game.GameState, m game.Move) (game.GameState, error) {
	if !s.InProgress() {
		return game.GameState{}, fmt.Errorf("%w: ended by %s", errors.ErrGameOver, s.EndReason)
	}
	if !m.Color.Valid() {
		return game.GameState{}, fmt.Errorf("%w: got %s", errors.ErrWrongColor, m.Color)
	}

	// Resigning out of turn is allowed; playing or passing is not.
	if m.Type == game.MoveResign {
		return e.applyResign(s, m), nil
	}
	if m.Color != s.ToMove {
		return game.GameState{}, fmt.Errorf("%w: got %s, %s to move", errors.ErrWrongColor, m.Color, s.ToMove)
	}
	if m.Type == game.MovePass {
		return e.applyPass(s, m), nil
	}
	return e.applyPlacement(s, m)
}

// IsLegal probes a move without producing the successor state.
func (e *Engine) IsLegal(s game.GameState, m game.Move) error {
	_, err := e.Apply(s, m)
	return err
}

// LegalMoves enumerates every placement that Apply would accept for the
// side to move. Pass and resignation are always legal while the game is
// in progress and are not listed.
func (e *Engine) LegalMoves(s game.GameState) []game.Coord {
	if !s.InProgress() {
		return nil
	}
	var legal []game.Coord
	size := s.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := game.Coord{Row: row, Col: col}
			if s.Board.At(c) != game.Empty {
				continue
			}
			if e.IsLegal(s, game.PlaceMove(s.ToMove, c)) == nil {
				legal = append(legal, c)
			}
		}
	}
	return legal
}

func (e *Engine) IsGameOver(s game.GameState) bool {
	return !s.InProgress()
}

func (e *Engine) applyResign(s game.GameState, m game.Move) game.GameState {
	next := s.Clone()
	next.MoveNumber++
	m.Number = next.MoveNumber
	next.Moves = append(next.Moves, m)
	next.History = append(next.History, next.Board.Hash())
	next.HasKo = false
	next.KoPoint = game.Coord{}
	next.Status = statuses.StatusEnded
	next.EndReason = statuses.EndReasonResignation
	next.Winner = m.Color.Opponent()
	e.log.Debugw("game ended by resignation",
		"game_id", next.ID, "winner", next.Winner.String(), "move", next.MoveNumber)
	return next
}

func (e *Engine) applyPass(s game.GameState, m game.Move) game.GameState {
	prev, hadPrev := s.LastMove()

	next := s.Clone()
	next.MoveNumber++
	m.Number = next.MoveNumber
	if m.Color == game.Black {
		next.PassesBlack++
	} else {
		next.PassesWhite++
	}
	next.HasKo = false
	next.KoPoint = game.Coord{}
	next.Moves = append(next.Moves, m)
	next.History = append(next.History, next.Board.Hash())
	next.ToMove = m.Color.Opponent()

	if hadPrev && prev.Type == game.MovePass && prev.Color == m.Color.Opponent() {
		next.Status = statuses.StatusEnded
		next.EndReason = statuses.EndReasonTwoPasses
		e.log.Debugw("game ended by two passes", "game_id", next.ID, "move", next.MoveNumber)
	}
	return next
}

func (e *Engine) applyPlacement(s game.GameState, m game.Move) (game.GameState, error) {
	c := m.Coord
	size := s.Board.Size()
	if !s.Board.InBounds(c) {
		return game.GameState{}, fmt.Errorf("%w: %s on a %dx%d board", errors.ErrOutOfBounds, c, size, size)
	}
	if s.Board.At(c) != game.Empty {
		return game.GameState{}, fmt.Errorf("%w: %s", errors.ErrOccupied, c)
	}
	if s.HasKo && s.KoPoint == c {
		return game.GameState{}, fmt.Errorf("%w: %s", errors.ErrKoViolation, c)
	}

	next := s.Clone()
	if err := next.Board.Place(c, m.Color); err != nil {
		return game.GameState{}, err
	}

	// Capture every adjacent opposing group left without liberties.
	// Removal is a set operation: the final board does not depend on
	// the order the groups come back in.
	opponent := m.Color.Opponent()
	var captured []game.Coord
	for _, g := range next.Board.GroupsAdjacentTo(c) {
		if g.Color != opponent || g.LibertyCount() != 0 {
			continue
		}
		next.Board.RemoveGroup(g)
		captured = append(captured, g.Stones...)
	}

	own, ok := next.Board.GroupAt(c)
	if !ok || own.Color != m.Color {
		return game.GameState{}, fmt.Errorf("%w: placed stone at %s has no group", errors.ErrInternal, c)
	}
	if own.LibertyCount() == 0 {
		return game.GameState{}, fmt.Errorf("%w: %s", errors.ErrSuicide, c)
	}

	// Single-stone ko: one stone captured and the capturing group is
	// one stone with one liberty. Any other outcome clears the ko.
	if len(captured) == 1 && own.Size() == 1 && own.LibertyCount() == 1 {
		next.KoPoint = captured[0]
		next.HasKo = true
	} else {
		next.KoPoint = game.Coord{}
		next.HasKo = false
	}

	// Positional superko: the resulting position must not repeat any
	// earlier position of this game, whoever was to move then.
	hash := next.Board.Hash()
	for _, seen := range s.History {
		if seen == hash {
			return game.GameState{}, fmt.Errorf("%w: %s", errors.ErrSuperkoViolation, c)
		}
	}

	next.MoveNumber++
	m.Number = next.MoveNumber
	if m.Color == game.Black {
		next.CapturedByBlack += len(captured)
	} else {
		next.CapturedByWhite += len(captured)
	}
	next.Moves = append(next.Moves, m)
	next.History = append(next.History, hash)
	next.ToMove = opponent

	if len(captured) > 0 {
		e.log.Debugw("captured stones",
			"game_id", next.ID, "move", next.MoveNumber, "by", m.Color.String(), "count", len(captured))
	}
	return next, nil
}
