package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/astarviz/grid"
)

// Sentinel errors for Search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrMissingEndpoint is returned when start or end is nil.
	ErrMissingEndpoint = errors.New("astar: start and end must both be set")

	// ErrSameEndpoints is returned when start and end are the same cell.
	ErrSameEndpoints = errors.New("astar: start and end must differ")

	// ErrForeignCell is returned when an endpoint does not belong to the grid.
	ErrForeignCell = errors.New("astar: endpoint is not a cell of the grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrAborted wraps any error returned by a hook or by the context;
	// the search stopped before reaching a verdict.
	ErrAborted = errors.New("astar: search aborted")
)

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds the hooks invoked during a search.
type Options struct {
	// Ctx is checked once per outer iteration, next to Poll.
	Ctx context.Context

	// Poll is called at the top of every outer iteration, before the
	// frontier is popped. A non-nil error aborts the search at once.
	Poll func() error

	// OnStep is the redraw callback: once per outer iteration after the
	// popped cell's neighbours are relaxed, and once per cell marked during
	// path reconstruction. A non-nil error aborts the search at once.
	OnStep func() error

	// OnMark observes every state change the search applies to a cell.
	OnMark func(pos grid.Position, s grid.State)

	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Poll:   func() error { return nil },
		OnStep: func() error { return nil },
		OnMark: func(grid.Position, grid.State) {},
	}
}

// WithContext sets a context whose cancellation aborts the search.
// A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithPoll registers the input-polling hook.
func WithPoll(fn func() error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Poll = fn
		}
	}
}

// WithOnStep registers the redraw callback.
func WithOnStep(fn func() error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnMark registers an observer for cell markings.
func WithOnMark(fn func(pos grid.Position, s grid.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMark = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Found: whether end was reached.
//   - Path: cells from start to end inclusive (nil when not found).
//   - Length: number of edges on Path.
//   - Expanded: number of cells popped from the frontier.
type Result struct {
	Found    bool
	Path     []grid.Position
	Length   int
	Expanded int
}
