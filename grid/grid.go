package grid

import (
	"fmt"
	"strings"
)

// Grid is an N×N ordered collection of cells. It owns its cells
// exclusively; identity is positional and cells are stored row-major.
type Grid struct {
	size  int
	cells []*Cell
}

// New constructs a size×size grid of Empty cells.
// Returns ErrInvalidSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	g := &Grid{
		size:  size,
		cells: make([]*Cell, size*size),
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.cells[g.index(r, c)] = &Cell{row: r, col: c}
		}
	}

	return g, nil
}

// Layout is a grid parsed from ASCII rows together with its endpoints.
// Start and End are nil when the layout has no S or E.
type Layout struct {
	Grid       *Grid
	Start, End *Cell
}

// FromRows builds a grid from an ASCII layout, one string per row:
//
//	'.' empty   '#' barrier   'S' start   'E' end
//	'o' open    'x' closed    '*' path
//
// The layout must be square and may hold at most one S and one E.
func FromRows(rows []string) (*Layout, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	g, _ := New(n)
	l := &Layout{Grid: g}
	for r, row := range rows {
		for c := 0; c < n; c++ {
			s, ok := stateFromGlyph(row[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, row[c], r, c)
			}
			cell := g.cells[g.index(r, c)]
			cell.state = s
			switch s {
			case Start:
				if l.Start != nil {
					return nil, fmt.Errorf("%w: second S at (%d,%d)", ErrDuplicateEndpoint, r, c)
				}
				l.Start = cell
			case End:
				if l.End != nil {
					return nil, fmt.Errorf("%w: second E at (%d,%d)", ErrDuplicateEndpoint, r, c)
				}
				l.End = cell
			}
		}
	}

	return l, nil
}

// MustFromRows is FromRows for fixtures known to be valid; it panics on error.
func MustFromRows(rows ...string) *Layout {
	l, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return l
}

func stateFromGlyph(b byte) (State, bool) {
	for s, gl := range glyphs {
		if gl == b {
			return State(s), true
		}
	}
	return Empty, false
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, N².
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Cell returns the cell at (row,col), or ErrOutOfBounds.
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.size, g.size)
	}
	return g.cells[g.index(row, col)], nil
}

// At returns the cell at p, or nil when p is outside the grid.
func (g *Grid) At(p Position) *Cell {
	if !g.InBounds(p.Row, p.Col) {
		return nil
	}
	return g.cells[g.index(p.Row, p.Col)]
}

// CellAt returns the cell with row-major index i. It panics if i is out of range.
func (g *Grid) CellAt(i int) *Cell { return g.cells[i] }

// Index maps p to its row-major index: Row*Size + Col.
func (g *Grid) Index(p Position) int { return g.index(p.Row, p.Col) }

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(i int) Position {
	return Position{Row: i / g.size, Col: i % g.size}
}

// Owns reports whether c is one of g's cells.
func (g *Grid) Owns(c *Cell) bool {
	if c == nil || !g.InBounds(c.row, c.col) {
		return false
	}
	return g.cells[g.index(c.row, c.col)] == c
}

// Cells returns the cells in row-major order. The slice is shared; callers
// must not reorder or replace its elements.
func (g *Grid) Cells() []*Cell { return g.cells }

// RecomputeNeighbors refreshes the adjacency list of every cell against
// the current barrier layout.
// Complexity: O(N²).
func (g *Grid) RecomputeNeighbors() {
	for _, c := range g.cells {
		c.RecomputeNeighbors(g)
	}
}

// String renders the grid as an ASCII layout, one line per row,
// using the same glyphs FromRows accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			sb.WriteByte(g.cells[g.index(r, c)].state.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (row,col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.size + col
}
