package game

import "fmt"

type MoveType int8

const (
	MovePlace MoveType = iota
	MovePass
	MoveResign
)

// Move is a placement, a pass, or a resignation by one color. Number is
// assigned by the rules engine when the move is applied; moves held by
// a GameState carry their final sequence number, which is enough for an
// external collaborator to rebuild a full game record.
type Move struct {
	Type   MoveType
	Color  Color
	Coord  Coord
	Number int
}

func PlaceMove(color Color, c Coord) Move {
	return Move{Type: MovePlace, Color: color, Coord: c}
}

func PassMove(color Color) Move {
	return Move{Type: MovePass, Color: color}
}

func ResignMove(color Color) Move {
	return Move{Type: MoveResign, Color: color}
}

func (m Move) String() string {
	switch m.Type {
	case MovePass:
		return fmt.Sprintf("%s pass", m.Color)
	case MoveResign:
		return fmt.Sprintf("%s resign", m.Color)
	default:
		return fmt.Sprintf("%s %s", m.Color, m.Coord)
	}
}
