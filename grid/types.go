// Package grid defines the cell states, positions and sentinel errors
// shared by the grid, search and presentation layers of astarviz.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside [0, Size).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNonSquare indicates an ASCII layout whose rows differ in length
	// or whose row count differs from its column count.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrBadGlyph indicates an unknown character in an ASCII layout.
	ErrBadGlyph = errors.New("grid: unknown layout glyph")
	// ErrDuplicateEndpoint indicates more than one S or E in an ASCII layout.
	ErrDuplicateEndpoint = errors.New("grid: duplicate start or end in layout")
)

// State tags what a cell currently represents on the board.
type State uint8

const (
	// Empty is a free, unexplored cell.
	Empty State = iota
	// Open is a cell discovered by the search and waiting in the frontier.
	Open
	// Closed is a cell the search has already expanded.
	Closed
	// Barrier is impassable and never appears in adjacency lists.
	Barrier
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Path is a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Open:    "open",
	Closed:  "closed",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Path:    "path",
}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// glyphs maps each state to its ASCII layout character.
var glyphs = [...]byte{
	Empty:   '.',
	Open:    'o',
	Closed:  'x',
	Barrier: '#',
	Start:   'S',
	End:     'E',
	Path:    '*',
}

// Glyph returns the single-character layout symbol for s.
func (s State) Glyph() byte {
	if int(s) < len(glyphs) {
		return glyphs[s]
	}
	return '?'
}

// Position is a (row, col) coordinate inside a grid.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// neighborOffsets lists the four axis-aligned moves in the order adjacency
// lists are built: down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Offsets returns the four axis-aligned (row, col) moves in adjacency
// order: down, up, right, left. Every 4-way walk over a grid uses it so the
// visiting order stays the same everywhere.
func Offsets() [4][2]int { return neighborOffsets }
