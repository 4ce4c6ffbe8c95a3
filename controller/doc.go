// Package controller turns input events into board edits and runs the
// animated A* search on demand.
//
// The controller owns the board between searches and hands it to
// astar.Search for the duration of one. Everything runs on the caller's
// goroutine: rendering and input draining happen synchronously inside the
// search's Poll and OnStep hooks.
//
// Mouse and keys:
//
//   - left press: place Start, then End, then Barriers
//   - right press: erase a cell (and forget Start/End if it was one)
//   - run key: search from Start to End (only when both are placed)
//   - clear key: fresh, empty board
//   - quit: leave Run, even in the middle of a search
package controller
