package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/astarviz/grid"
)

// GridLineColor is the colour of the separators between cells.
const GridLineColor = tcell.ColorGray

// palette maps each cell state to its fill colour.
var palette = map[grid.State]tcell.Color{
	grid.Empty:   tcell.ColorWhite,
	grid.Open:    tcell.ColorLime,
	grid.Closed:  tcell.ColorRed,
	grid.Barrier: tcell.ColorBlack,
	grid.Start:   tcell.ColorOrange,
	grid.End:     tcell.ColorTurquoise,
	grid.Path:    tcell.ColorPurple,
}

// Color returns the fill colour of state s. Unknown states are drawn as
// Empty.
func Color(s grid.State) tcell.Color {
	if c, ok := palette[s]; ok {
		return c
	}
	return palette[grid.Empty]
}

var (
	styleStatus = tcell.StyleDefault
	styleLine   = tcell.StyleDefault.Foreground(GridLineColor)
)

// cellStyle is the style a cell of state s is filled with.
func cellStyle(s grid.State) tcell.Style {
	return tcell.StyleDefault.Background(Color(s))
}
