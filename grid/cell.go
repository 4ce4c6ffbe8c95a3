package grid

// Cell is a single grid unit: a fixed position, a mutable state tag and
// a cached list of passable neighbours.
//
// The neighbour list is only as fresh as the last RecomputeNeighbors call;
// it is never maintained incrementally.
type Cell struct {
	row, col  int
	state     State
	neighbors []*Cell
}

// Position returns the cell coordinate.
func (c *Cell) Position() Position { return Position{Row: c.row, Col: c.col} }

// Row returns the cell row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell column.
func (c *Cell) Col() int { return c.col }

// State returns the current state tag.
func (c *Cell) State() State { return c.state }

// Neighbors returns the cached adjacency list. Callers must not modify it.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// IsEmpty reports whether the cell is free and unexplored.
func (c *Cell) IsEmpty() bool { return c.state == Empty }

// IsOpen reports whether the cell is waiting in the search frontier.
func (c *Cell) IsOpen() bool { return c.state == Open }

// IsClosed reports whether the search has expanded the cell.
func (c *Cell) IsClosed() bool { return c.state == Closed }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsStart reports whether the cell is the search origin.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.state == End }

// IsPath reports whether the cell lies on the reconstructed path.
func (c *Cell) IsPath() bool { return c.state == Path }

// SetState overwrites the state tag.
func (c *Cell) SetState(s State) { c.state = s }

// Reset returns the cell to Empty. The neighbour list is left as is until
// the next RecomputeNeighbors.
func (c *Cell) Reset() { c.state = Empty }

// MarkOpen tags the cell as discovered by the search.
func (c *Cell) MarkOpen() { c.state = Open }

// MarkClosed tags the cell as expanded.
func (c *Cell) MarkClosed() { c.state = Closed }

// MarkBarrier makes the cell impassable from the next RecomputeNeighbors on.
func (c *Cell) MarkBarrier() { c.state = Barrier }

// MarkStart tags the cell as the search origin.
func (c *Cell) MarkStart() { c.state = Start }

// MarkEnd tags the cell as the search target.
func (c *Cell) MarkEnd() { c.state = End }

// MarkPath tags the cell as part of the shortest path.
func (c *Cell) MarkPath() { c.state = Path }

// RecomputeNeighbors rebuilds the adjacency list from the four
// axis-aligned cells of g (down, up, right, left), skipping coordinates
// outside the grid and cells currently in Barrier state.
//
// Only c's own list is written; neighbouring cells are read, never mutated.
// Complexity: O(1).
func (c *Cell) RecomputeNeighbors(g *Grid) {
	nbs := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, cl := c.row+d[0], c.col+d[1]
		if !g.InBounds(r, cl) {
			continue
		}
		nb := g.cells[g.index(r, cl)]
		if nb.IsBarrier() {
			continue
		}
		nbs = append(nbs, nb)
	}
	c.neighbors = nbs
}
