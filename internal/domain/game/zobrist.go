package game

import "sync"

// Zobrist tables are shared per board size. The hash covers stone
// placement only: positional superko compares bare board positions, so
// neither the side to move nor capture counts participate.
type zobristTable struct {
	size  int
	cells []uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*zobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*zobristTable)}

func zobristFor(size int) *zobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(size)}
	table := &zobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	zobristTables.tables[size] = table
	return table
}

func (z *zobristTable) stone(c Coord, color Color) uint64 {
	idx := (c.Row*z.size + c.Col) * 2
	if color == White {
		idx++
	}
	return z.cells[idx]
}

// recomputeHash walks the whole board. Mutations keep the hash current
// incrementally; this exists for verification in tests.
func (b Board) recomputeHash() uint64 {
	z := zobristFor(b.size)
	var hash uint64
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Coord{row, col}
			if color := b.At(c); color != Empty {
				hash ^= z.stone(c, color)
			}
		}
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
