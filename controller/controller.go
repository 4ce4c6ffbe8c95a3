package controller

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/bfs"
	"github.com/katalvlaran/astarviz/grid"
)

// HelpText is the status line shown on an idle board.
const HelpText = "left: start/end/wall  right: erase  %s: run  %s: clear  esc: quit"

// Controller is the application context: the board, the Start/End
// references and the collaborators that draw it and feed it input.
type Controller struct {
	src  EventSource
	out  Renderer
	opts Options
	log  logrus.FieldLogger

	grid       *grid.Grid
	start, end *grid.Cell
}

// New builds a controller with an empty board.
// Returns ErrNilSource, ErrNilRenderer or ErrOptionViolation.
func New(src EventSource, out Renderer, opts ...Option) (*Controller, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if out == nil {
		return nil, ErrNilRenderer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.RunKey == o.ClearKey {
		return nil, fmt.Errorf("%w: run and clear keys are both %q", ErrOptionViolation, o.RunKey)
	}

	c := &Controller{src: src, out: out, opts: o, log: o.Logger}
	if err := c.reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Grid returns the current board.
func (c *Controller) Grid() *grid.Grid { return c.grid }

// Start returns the Start cell, or nil.
func (c *Controller) Start() *grid.Cell { return c.start }

// End returns the End cell, or nil.
func (c *Controller) End() *grid.Cell { return c.end }

// Run is the main loop: draw, wait for an event, handle it. It returns nil
// once a quit is seen, including one drained in the middle of a search,
// and any other error from HandleEvent as is.
func (c *Controller) Run() error {
	c.out.Status(c.help())
	for {
		c.out.Render(c.grid)
		ev := c.src.PollEvent()
		if err := c.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				c.log.Info("quit")
				return nil
			}
			return err
		}
	}
}

// HandleEvent applies one input event to the board.
// It returns ErrQuit (possibly wrapped) when the program should stop.
func (c *Controller) HandleEvent(ev Event) error {
	switch ev.Kind {
	case EventQuit:
		return ErrQuit
	case EventLeftPress:
		if cell := c.cellAt(ev.X, ev.Y); cell != nil {
			c.place(cell)
		}
	case EventRightPress:
		if cell := c.cellAt(ev.X, ev.Y); cell != nil {
			c.erase(cell)
		}
	case EventKey:
		switch ev.Key {
		case c.opts.RunKey:
			if c.start != nil && c.end != nil {
				return c.search()
			}
		case c.opts.ClearKey:
			c.log.Debug("board cleared")
			if err := c.reset(); err != nil {
				return err
			}
			c.out.Status(c.help())
		}
	}
	return nil
}

// place applies a left press: Start first, then End, then Barrier.
// Start and End themselves are never overwritten.
func (c *Controller) place(cell *grid.Cell) {
	switch {
	case c.start == nil && cell != c.end:
		c.start = cell
		cell.MarkStart()
	case c.end == nil && cell != c.start:
		c.end = cell
		cell.MarkEnd()
	case cell != c.start && cell != c.end:
		cell.MarkBarrier()
	}
}

// erase applies a right press.
func (c *Controller) erase(cell *grid.Cell) {
	cell.Reset()
	switch cell {
	case c.start:
		c.start = nil
	case c.end:
		c.end = nil
	}
}

// search recomputes adjacency and runs A* with a redraw after each step
// and an input drain before each expansion.
func (c *Controller) search() error {
	entry := c.log.WithFields(logrus.Fields{
		"start": c.start.Position().String(),
		"end":   c.end.Position().String(),
		"size":  c.grid.Size(),
	})
	entry.Info("search started")

	c.grid.RecomputeNeighbors()
	res, err := astar.Search(c.grid, c.start, c.end,
		astar.WithPoll(c.drain),
		astar.WithOnStep(c.frame),
	)
	if err != nil {
		entry.WithError(err).WithField("expanded", res.Expanded).Warn("search aborted")
		return err
	}

	entry = entry.WithFields(logrus.Fields{
		"found":    res.Found,
		"length":   res.Length,
		"expanded": res.Expanded,
	})
	c.crossCheck(entry, res)
	if res.Found {
		entry.Info("path found")
		c.out.Status(fmt.Sprintf("path length %d, %d cells expanded", res.Length, res.Expanded))
	} else {
		entry.Info("no path")
		c.out.Status(fmt.Sprintf("no path, %d cells expanded", res.Expanded))
	}
	return nil
}

// crossCheck compares the search result with the breadth-first distance
// on the same layout and warns when they disagree.
func (c *Controller) crossCheck(entry logrus.FieldLogger, res astar.Result) {
	ref, err := bfs.ShortestPath(c.grid, c.start.Position(), c.end.Position())
	if err != nil {
		entry.WithError(err).Warn("breadth-first check failed")
		return
	}
	want := -1
	if res.Found {
		want = res.Length
	}
	if ref.Dist != want {
		entry.WithField("bfs_dist", ref.Dist).Warn("search length differs from breadth-first distance")
	}
}

// drain consumes every pending event. A quit among them is reported; the
// rest are discarded while the board belongs to the search.
func (c *Controller) drain() error {
	for c.src.HasPendingEvent() {
		if ev := c.src.PollEvent(); ev.Kind == EventQuit {
			return ErrQuit
		}
	}
	return nil
}

// frame draws one animation frame.
func (c *Controller) frame() error {
	c.out.Render(c.grid)
	if c.opts.StepDelay > 0 {
		c.opts.Sleep(c.opts.StepDelay)
	}
	return nil
}

// cellAt maps a pixel to its cell, or nil when it lies off the board.
func (c *Controller) cellAt(x, y int) *grid.Cell {
	if x < 0 || y < 0 {
		return nil
	}
	w, h := c.out.CellSize()
	return c.grid.At(grid.Position{Row: y / h, Col: x / w})
}

// reset drops Start/End and installs a fresh board.
func (c *Controller) reset() error {
	g, err := grid.New(c.opts.GridSize)
	if err != nil {
		return err
	}
	c.grid, c.start, c.end = g, nil, nil
	return nil
}

func (c *Controller) help() string {
	return fmt.Sprintf(HelpText, keyName(c.opts.RunKey), keyName(c.opts.ClearKey))
}

func keyName(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}
