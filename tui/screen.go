package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/astarviz/controller"
	"github.com/katalvlaran/astarviz/grid"
)

const (
	vline = '▏' // left edge of a cell
	hline = '▔' // top edge of a cell, only drawn when cells are taller than one row
)

// Screen renders boards to a tcell screen and reads its input.
// It implements controller.Renderer and controller.EventSource.
type Screen struct {
	s            tcell.Screen
	cellW, cellH int
	status       string
}

var (
	_ controller.Renderer    = (*Screen)(nil)
	_ controller.EventSource = (*Screen)(nil)
)

// New wraps an initialised tcell screen. Cell dimensions below one are
// raised to one.
func New(s tcell.Screen, cellW, cellH int) *Screen {
	return &Screen{s: s, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// CellSize returns the size of one board cell in terminal cells.
func (sc *Screen) CellSize() (int, int) { return sc.cellW, sc.cellH }

// Status sets the line drawn under the board on the next Render.
func (sc *Screen) Status(msg string) { sc.status = msg }

// DrawCell fills the block of the cell at p with the colour of state.
func (sc *Screen) DrawCell(p grid.Position, state grid.State) {
	style := cellStyle(state)
	x0, y0 := p.Col*sc.cellW, p.Row*sc.cellH
	for y := y0; y < y0+sc.cellH; y++ {
		for x := x0; x < x0+sc.cellW; x++ {
			sc.s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawGridLines draws the separators of an n×n board over the cells
// already drawn, keeping their background.
func (sc *Screen) DrawGridLines(n int) {
	for y := 0; y < n*sc.cellH; y++ {
		top := sc.cellH > 1 && y%sc.cellH == 0
		for x := 0; x < n*sc.cellW; x++ {
			var r rune
			switch {
			case x%sc.cellW == 0:
				r = vline
			case top:
				r = hline
			default:
				continue
			}
			_, _, st, _ := sc.s.GetContent(x, y)
			_, bg, _ := st.Decompose()
			sc.s.SetContent(x, y, r, nil, styleLine.Background(bg))
		}
	}
}

// Present makes everything drawn so far visible.
func (sc *Screen) Present() { sc.s.Show() }

// Render draws a full frame: every cell by state, the grid lines and the
// status line.
func (sc *Screen) Render(g *grid.Grid) {
	sc.s.Clear()
	for _, c := range g.Cells() {
		sc.DrawCell(c.Position(), c.State())
	}
	sc.DrawGridLines(g.Size())
	sc.drawText(0, g.Size()*sc.cellH, sc.status, styleStatus)
	sc.Present()
}

// PollEvent blocks for the next terminal event and translates it.
func (sc *Screen) PollEvent() controller.Event {
	ev := sc.s.PollEvent()
	if _, ok := ev.(*tcell.EventResize); ok {
		sc.s.Sync()
	}
	return Translate(ev)
}

// HasPendingEvent reports whether PollEvent would return without blocking.
func (sc *Screen) HasPendingEvent() bool { return sc.s.HasPendingEvent() }

// drawText writes text from (x, y) onward, advancing by display width.
func (sc *Screen) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		sc.s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
