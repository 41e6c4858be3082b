package game

import (
	"fmt"
	"strings"

	"baduk_core/internal/errors"
)

const MinBoardSize = 2

type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Group is a maximal set of connected same-colored stones together with
// the empty coordinates adjacent to any of them.
type Group struct {
	Color     Color
	Stones    []Coord
	Liberties map[Coord]struct{}
}

func (g Group) LibertyCount() int {
	return len(g.Liberties)
}

func (g Group) Size() int {
	return len(g.Stones)
}

// Board is a size*size grid of intersections. It knows adjacency and
// connectivity but nothing about move legality. The Zobrist hash of the
// current position is maintained incrementally on every mutation.
type Board struct {
	size  int
	cells []Color
	hash  uint64
}

func NewBoard(size int) (Board, error) {
	if size < MinBoardSize {
		return Board{}, fmt.Errorf("%w: got %d", errors.ErrInvalidBoardSize, size)
	}
	return Board{size: size, cells: make([]Color, size*size)}, nil
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Hash() uint64 {
	return b.hash
}

func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.size && c.Col < b.size
}

// At reports the color at c. Out-of-bounds coordinates read as Empty so
// scanning loops do not need their own bounds checks.
func (b Board) At(c Coord) Color {
	if !b.InBounds(c) {
		return Empty
	}
	return b.cells[b.index(c)]
}

func (b *Board) Place(c Coord, color Color) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s on a %dx%d board", errors.ErrOutOfBounds, c, b.size, b.size)
	}
	if b.cells[b.index(c)] != Empty {
		return fmt.Errorf("%w: %s", errors.ErrOccupied, c)
	}
	if !color.Valid() {
		return fmt.Errorf("%w: placing %v stone", errors.ErrInternal, color)
	}
	b.cells[b.index(c)] = color
	b.hash ^= zobristFor(b.size).stone(c, color)
	return nil
}

// Remove clears a single intersection. Used by the territory analyzer
// to lift dead stones off the board before counting.
func (b *Board) Remove(c Coord) {
	if !b.InBounds(c) {
		return
	}
	color := b.cells[b.index(c)]
	if color == Empty {
		return
	}
	b.cells[b.index(c)] = Empty
	b.hash ^= zobristFor(b.size).stone(c, color)
}

// RemoveGroup clears every stone of the group and returns how many were
// removed. Each cleared intersection becomes a liberty of any adjacent
// group still on the board.
func (b *Board) RemoveGroup(g Group) int {
	removed := 0
	for _, c := range g.Stones {
		if b.At(c) != Empty {
			b.Remove(c)
			removed++
		}
	}
	return removed
}

func (b Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, n := range [4]Coord{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	} {
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// GroupAt flood-fills the group containing c using an explicit
// work-list; a single group can span the whole board, so recursion is
// off the table. Returns false when c is empty or out of bounds.
func (b Board) GroupAt(c Coord) (Group, bool) {
	color := b.At(c)
	if color == Empty {
		return Group{}, false
	}

	group := Group{
		Color:     color,
		Liberties: make(map[Coord]struct{}),
	}
	seen := map[Coord]struct{}{c: {}}
	work := []Coord{c}

	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		group.Stones = append(group.Stones, cur)

		for _, n := range b.Neighbors(cur) {
			switch b.At(n) {
			case Empty:
				group.Liberties[n] = struct{}{}
			case color:
				if _, ok := seen[n]; !ok {
					seen[n] = struct{}{}
					work = append(work, n)
				}
			}
		}
	}

	return group, true
}

// GroupsAdjacentTo returns the groups of either color orthogonally
// touching c, each reported once.
func (b Board) GroupsAdjacentTo(c Coord) []Group {
	var groups []Group
	seen := make(map[Coord]struct{})
	for _, n := range b.Neighbors(c) {
		if _, ok := seen[n]; ok {
			continue
		}
		group, ok := b.GroupAt(n)
		if !ok {
			continue
		}
		for _, s := range group.Stones {
			seen[s] = struct{}{}
		}
		groups = append(groups, group)
	}
	return groups
}

func (b Board) StoneCounts() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

func (b Board) Clone() Board {
	clone := Board{size: b.size, hash: b.hash}
	clone.cells = make([]Color, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the position as a diagram for logs and test failures.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			switch b.At(Coord{row, col}) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			if col < b.size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) index(c Coord) int {
	return c.Row*b.size + c.Col
}
