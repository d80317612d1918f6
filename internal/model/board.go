package model

// Board geometry. The board is a triangle of BoardRows rows where row r has
// r+1 holes.
const (
	BoardRows = 8
	HoleCount = BoardRows * (BoardRows + 1) / 2
)

// CenterHole is the hole left empty at the start and the only hole a final
// peg may finish on for a win.
var CenterHole = Position{Row: 4, Col: 2}

// Position identifies a hole on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from the apex
	Col int `json:"col"` // 0-indexed from the left edge, Col <= Row
}

// Add returns the position offset by the given delta
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the delta from other to p
func (p Position) Sub(other Position) Position {
	return Position{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// IsValid returns true if the position names a hole on the board
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardRows && p.Col >= 0 && p.Col <= p.Row
}

// HoleState is the content of a single hole
type HoleState string

const (
	HoleEmpty HoleState = "empty"
	HolePeg   HoleState = "peg"
)

// Board is the authoritative state of every hole
type Board struct {
	Holes [][]HoleState `json:"holes"` // Holes[row][col], len(Holes[row]) == row+1
}

// NewBoard creates a board in the starting configuration: every hole holds a
// peg except CenterHole
func NewBoard() *Board {
	b := NewEmptyBoard()
	for row := range b.Holes {
		for col := range b.Holes[row] {
			b.Holes[row][col] = HolePeg
		}
	}
	b.Holes[CenterHole.Row][CenterHole.Col] = HoleEmpty
	return b
}

// NewEmptyBoard creates a board with no pegs
func NewEmptyBoard() *Board {
	holes := make([][]HoleState, BoardRows)
	for row := range holes {
		holes[row] = make([]HoleState, row+1)
		for col := range holes[row] {
			holes[row][col] = HoleEmpty
		}
	}
	return &Board{Holes: holes}
}

// NewBoardWithPegs creates a board with pegs only at the given positions.
// Positions off the board are ignored.
func NewBoardWithPegs(pegs ...Position) *Board {
	b := NewEmptyBoard()
	for _, pos := range pegs {
		b.Set(pos, HolePeg)
	}
	return b
}

// Get returns the state of the hole at pos, or HoleEmpty if pos is off the board
func (b *Board) Get(pos Position) HoleState {
	if !b.IsValidPosition(pos) {
		return HoleEmpty
	}
	return b.Holes[pos.Row][pos.Col]
}

// Set changes the state of the hole at pos. Positions off the board are ignored.
func (b *Board) Set(pos Position, state HoleState) {
	if b.IsValidPosition(pos) {
		b.Holes[pos.Row][pos.Col] = state
	}
}

// IsValidPosition returns true if pos is a hole on this board
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.IsValid() && pos.Row < len(b.Holes) && pos.Col < len(b.Holes[pos.Row])
}

// HasPeg returns true if pos is on the board and holds a peg
func (b *Board) HasPeg(pos Position) bool {
	return b.IsValidPosition(pos) && b.Holes[pos.Row][pos.Col] == HolePeg
}

// IsEmpty returns true if pos is on the board and holds no peg
func (b *Board) IsEmpty(pos Position) bool {
	return b.IsValidPosition(pos) && b.Holes[pos.Row][pos.Col] == HoleEmpty
}

// PegCount returns the number of pegs on the board
func (b *Board) PegCount() int {
	count := 0
	for row := range b.Holes {
		for col := range b.Holes[row] {
			if b.Holes[row][col] == HolePeg {
				count++
			}
		}
	}
	return count
}

// Pegs returns the positions of all pegs in row-major order
func (b *Board) Pegs() []Position {
	var pegs []Position
	for row := range b.Holes {
		for col := range b.Holes[row] {
			if b.Holes[row][col] == HolePeg {
				pegs = append(pegs, Position{Row: row, Col: col})
			}
		}
	}
	return pegs
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	holes := make([][]HoleState, len(b.Holes))
	for row := range b.Holes {
		holes[row] = make([]HoleState, len(b.Holes[row]))
		copy(holes[row], b.Holes[row])
	}
	return &Board{Holes: holes}
}

// Equal returns true if both boards have identical holes
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.Holes) != len(other.Holes) {
		return false
	}
	for row := range b.Holes {
		if len(b.Holes[row]) != len(other.Holes[row]) {
			return false
		}
		for col := range b.Holes[row] {
			if b.Holes[row][col] != other.Holes[row][col] {
				return false
			}
		}
	}
	return true
}
