package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/astarviz/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	g      *grid.Grid
	opts   BFSOptions
	ctx    context.Context
	queue  []int
	depth  []int // -1 = unseen
	parent []int // -1 = root or unseen
	res    *Result
}

// ShortestPath runs breadth-first search on g from `from` and stops as soon
// as `to` is dequeued. Barrier cells are impassable; the endpoints
// themselves are always entered regardless of their state.
//
// Returns ErrGridNil, ErrOutOfBounds or ErrOptionViolation for invalid
// input, and the wrapped hook or context error on abort. An unreachable
// target is not an error: Result.Dist is -1.
//
// Complexity: O(V) time and memory, V = N².
func ShortestPath(g *grid.Grid, from, to grid.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, p := range []grid.Position{from, to} {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	n := g.Len()
	w := &walker{
		g:      g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]int, 0, n),
		depth:  make([]int, n),
		parent: make([]int, n),
		res:    &Result{Dist: -1},
	}
	for i := range w.depth {
		w.depth[i] = -1
		w.parent[i] = -1
	}

	w.enqueue(g.Index(from), 0, -1)
	target := g.Index(to)

	return w.res, w.loop(target)
}

// enqueue marks i seen at depth d with the given parent.
func (w *walker) enqueue(i, d, parent int) {
	w.depth[i] = d
	w.parent[i] = parent
	w.queue = append(w.queue, i)
}

// loop processes the queue until the target is dequeued, the queue is
// empty, or an error occurs.
func (w *walker) loop(target int) error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		pos := w.g.Coordinate(u)
		w.res.Order = append(w.res.Order, pos)
		if err := w.opts.OnVisit(pos, w.depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", pos, err)
		}

		if u == target {
			w.finish(target)
			return nil
		}
		w.enqueueNeighbors(u, pos, target)
	}
	return nil
}

// enqueueNeighbors adds every unseen, passable 4-neighbour of u.
func (w *walker) enqueueNeighbors(u int, pos grid.Position, target int) {
	for _, d := range grid.Offsets() {
		r, c := pos.Row+d[0], pos.Col+d[1]
		if !w.g.InBounds(r, c) {
			continue
		}
		v := w.g.Index(grid.Position{Row: r, Col: c})
		if w.depth[v] >= 0 {
			continue
		}
		if v != target && w.g.CellAt(v).IsBarrier() {
			continue
		}
		w.enqueue(v, w.depth[u]+1, u)
	}
}

// finish records the distance and rebuilds the path to target.
func (w *walker) finish(target int) {
	w.res.Dist = w.depth[target]
	path := make([]grid.Position, w.depth[target]+1)
	for at, k := target, len(path)-1; at >= 0; at, k = w.parent[at], k-1 {
		path[k] = w.g.Coordinate(at)
	}
	w.res.Path = path
}
