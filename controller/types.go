package controller

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astarviz/grid"
)

// Sentinel errors.
var (
	// ErrQuit is returned by HandleEvent when a quit event is handled, and
	// surfaces (wrapped) from a search interrupted by a quit.
	ErrQuit = errors.New("controller: quit requested")

	// ErrNilSource is returned by New when no event source is given.
	ErrNilSource = errors.New("controller: event source is nil")

	// ErrNilRenderer is returned by New when no renderer is given.
	ErrNilRenderer = errors.New("controller: renderer is nil")

	// ErrOptionViolation is returned by New for an invalid Option.
	ErrOptionViolation = errors.New("controller: invalid option supplied")
)

// EventKind discriminates input events.
type EventKind uint8

const (
	// EventNone is an input the controller does not act on.
	EventNone EventKind = iota
	// EventQuit asks the program to terminate.
	EventQuit
	// EventLeftPress is a primary-button press or drag at (X, Y).
	EventLeftPress
	// EventRightPress is a secondary-button press or drag at (X, Y).
	EventRightPress
	// EventKey is a key press; Key holds the character.
	EventKey
	// EventResize reports a change of the drawing surface.
	EventResize
)

// Event is one discrete input. X and Y are pixel (terminal cell)
// coordinates of mouse events.
type Event struct {
	Kind EventKind
	X, Y int
	Key  rune
}

// Renderer is the render sink.
type Renderer interface {
	// Render clears the surface, draws every cell by state, draws the grid
	// lines and the status line, and presents the frame.
	Render(g *grid.Grid)
	// Status sets the message shown under the board from the next frame on.
	Status(msg string)
	// CellSize returns the on-screen size of one cell in pixels.
	CellSize() (w, h int)
}

// EventSource is the input source.
type EventSource interface {
	// PollEvent blocks until the next event is available.
	PollEvent() Event
	// HasPendingEvent reports whether PollEvent would return immediately.
	HasPendingEvent() bool
}

// Option configures a Controller via functional arguments.
type Option func(*Options)

// Options holds the controller settings.
type Options struct {
	GridSize  int
	RunKey    rune
	ClearKey  rune
	StepDelay time.Duration
	Logger    logrus.FieldLogger
	// Sleep waits between animation frames; replaced in tests.
	Sleep func(time.Duration)

	err error
}

// DefaultOptions returns a 50×50 board, space to run, 'c' to clear, a 5ms
// frame delay and a logger that discards everything.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return Options{
		GridSize:  50,
		RunKey:    ' ',
		ClearKey:  'c',
		StepDelay: 5 * time.Millisecond,
		Logger:    discard,
		Sleep:     time.Sleep,
	}
}

// WithGridSize sets the board dimension. n < 1 is an option violation.
func WithGridSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: grid size %d", ErrOptionViolation, n)
			return
		}
		o.GridSize = n
	}
}

// WithRunKey sets the key that starts a search.
func WithRunKey(r rune) Option {
	return func(o *Options) { o.RunKey = r }
}

// WithClearKey sets the key that wipes the board.
func WithClearKey(r rune) Option {
	return func(o *Options) { o.ClearKey = r }
}

// WithStepDelay sets the pause after each animation frame. Negative
// delays are an option violation.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: step delay %v", ErrOptionViolation, d)
			return
		}
		o.StepDelay = d
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSleep replaces the frame-delay function.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Sleep = fn
		}
	}
}
