package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/astarviz/grid"
)

// inf stands for an unknown score.
const inf = math.MaxInt

// Search runs A* on g from start to end, animating as it goes: discovered
// cells are marked Open, expanded cells Closed, and on success the
// reconstructed path is marked Path with end restored to End.
//
// Preconditions: every cell's neighbour list has been recomputed against the
// current barrier layout (grid.Grid.RecomputeNeighbors), and the layout does
// not change until Search returns.
//
// Returns:
//
//   - Result with Found=true and the start→end path when end is reachable.
//   - Result with Found=false and a nil error when no path exists; explored
//     cells keep their Open/Closed marks.
//   - ErrNilGrid, ErrMissingEndpoint, ErrSameEndpoints, ErrForeignCell or
//     ErrOptionViolation for invalid input.
//   - An error wrapping ErrAborted and the cause when Poll, OnStep or the
//     context stops the search early.
//
// Complexity:
//
//   - Time:  O(V log V) for V = N² cells (a cell is pushed only while it is
//     not queued, so the heap never holds it twice).
//   - Space: O(V) for the score tables, predecessor table and heap.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if start == nil || end == nil {
		return Result{}, ErrMissingEndpoint
	}
	if start == end {
		return Result{}, fmt.Errorf("%w: both at %v", ErrSameEndpoints, start.Position())
	}
	if !g.Owns(start) || !g.Owns(end) {
		return Result{}, ErrForeignCell
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	n := g.Len()
	r := &runner{
		g:        g,
		opts:     o,
		start:    g.Index(start.Position()),
		end:      g.Index(end.Position()),
		endPos:   end.Position(),
		gScore:   make([]int, n),
		fScore:   make([]int, n),
		cameFrom: make([]int, n),
		queued:   make([]bool, n),
		open:     make(frontier, 0, n),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state of a single search. It is discarded when
// Search returns.
type runner struct {
	g      *grid.Grid
	opts   Options
	start  int
	end    int
	endPos grid.Position

	gScore   []int           // best known cost from start; inf if unknown
	fScore   []int           // gScore + heuristic to end; inf if unknown
	cameFrom []int           // predecessor on the best known path; -1 if none
	queued   []bool // cell currently in the frontier
	open     frontier
	seq      int

	res Result
}

// init resets the score tables and queues start with sequence number 0.
func (r *runner) init() {
	for i := range r.gScore {
		r.gScore[i] = inf
		r.fScore[i] = inf
		r.cameFrom[i] = -1
	}
	r.gScore[r.start] = 0
	r.fScore[r.start] = Manhattan(r.g.Coordinate(r.start), r.endPos)

	heap.Init(&r.open)
	heap.Push(&r.open, frontierItem{cell: r.start, f: r.fScore[r.start], seq: 0})
	r.queued[r.start] = true
}

// process pops the lowest (f, seq) cell until end is reached or the
// frontier is exhausted.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		if err := r.poll(); err != nil {
			return r.res, err
		}

		it := heap.Pop(&r.open).(frontierItem)
		r.queued[it.cell] = false
		r.res.Expanded++

		if it.cell == r.end {
			return r.reconstruct()
		}

		current := r.g.CellAt(it.cell)
		r.relax(it.cell, current)

		if err := r.step(); err != nil {
			return r.res, err
		}
		if it.cell != r.start {
			r.mark(current, grid.Closed)
		}
	}

	return r.res, nil
}

// relax tries every passable neighbour of u with a unit edge cost.
// An improved neighbour always takes the new cameFrom, g and f. If it is
// already queued its frontier entry is left as pushed; otherwise it is
// queued with the next sequence number and marked Open.
func (r *runner) relax(u int, current *grid.Cell) {
	tentative := r.gScore[u] + 1
	for _, nb := range current.Neighbors() {
		if nb.IsBarrier() {
			continue
		}
		v := r.g.Index(nb.Position())
		if tentative >= r.gScore[v] {
			continue
		}
		r.cameFrom[v] = u
		r.gScore[v] = tentative
		r.fScore[v] = tentative + Manhattan(nb.Position(), r.endPos)

		if r.queued[v] {
			continue
		}
		r.seq++
		heap.Push(&r.open, frontierItem{cell: v, f: r.fScore[v], seq: r.seq})
		r.queued[v] = true
		r.mark(nb, grid.Open)
	}
}

// reconstruct walks cameFrom from end back to start, marking every cell
// strictly between them as Path with one OnStep per marking, then restores
// end to End.
func (r *runner) reconstruct() (Result, error) {
	rev := []int{r.end}
	for cur := r.cameFrom[r.end]; cur >= 0 && cur != r.start; cur = r.cameFrom[cur] {
		r.mark(r.g.CellAt(cur), grid.Path)
		if err := r.step(); err != nil {
			return r.res, err
		}
		rev = append(rev, cur)
	}
	rev = append(rev, r.start)
	r.mark(r.g.CellAt(r.end), grid.End)

	path := make([]grid.Position, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = r.g.Coordinate(idx)
	}
	r.res.Found = true
	r.res.Path = path
	r.res.Length = len(path) - 1

	return r.res, nil
}

// poll checks the context and the Poll hook.
func (r *runner) poll() error {
	select {
	case <-r.opts.Ctx.Done():
		return fmt.Errorf("%w: %w", ErrAborted, r.opts.Ctx.Err())
	default:
	}
	if err := r.opts.Poll(); err != nil {
		return fmt.Errorf("%w: poll: %w", ErrAborted, err)
	}
	return nil
}

// step invokes the redraw callback.
func (r *runner) step() error {
	if err := r.opts.OnStep(); err != nil {
		return fmt.Errorf("%w: step: %w", ErrAborted, err)
	}
	return nil
}

func (r *runner) mark(c *grid.Cell, s grid.State) {
	c.SetState(s)
	r.opts.OnMark(c.Position(), s)
}
