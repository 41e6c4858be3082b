package errors

import "errors"

var (
	ErrOutOfBounds      = errors.New("coordinate is outside the board")
	ErrOccupied         = errors.New("intersection is already occupied")
	ErrSuicide          = errors.New("move would leave its own group without liberties")
	ErrKoViolation      = errors.New("move recreates the position forbidden by ko")
	ErrSuperkoViolation = errors.New("move recreates an earlier board position")
	ErrGameOver         = errors.New("game has already ended")
	ErrWrongColor       = errors.New("move color does not match the side to move")
	ErrInvalidBoardSize = errors.New("board size must be at least 2")
	ErrInvalidRuleSet   = errors.New("unknown rule set")
	ErrInvalidHandicap  = errors.New("no handicap placement for this board size and stone count")
	ErrInternal         = errors.New("internal error")
)
