// Package tui draws the board in a terminal and reads mouse and keyboard
// input, using tcell.
//
// A Screen is both the controller's Renderer and its EventSource. Each
// cell occupies a block of cellW×cellH terminal cells filled with the
// colour of its state; thin grey lines separate the cells and a status
// line sits just under the board.
//
// Colours:
//
//	Empty   white       Start  orange
//	Open    lime        End    turquoise
//	Closed  red         Path   purple
//	Barrier black       lines  grey
package tui
