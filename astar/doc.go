// Package astar implements an animated A* shortest-path search over a
// grid.Grid with 4-directional unit-cost moves.
//
// What
//
//   - Search(g, start, end, opts...) expands cells in order of
//     f = g + Manhattan(cell, end), marking them on the grid as it goes:
//     discovered cells become Open, expanded cells become Closed, and the
//     reconstructed path becomes Path.
//   - The frontier is a binary heap keyed on (f, seq): seq is a counter
//     assigned when a cell is first queued, so equal-f cells are expanded in
//     discovery order and cells never need to be compared.
//   - Hooks let a caller interleave rendering and input with the search:
//   - Poll   (top of each iteration; may abort)
//   - OnStep (after each expansion and each path marking; may abort)
//   - OnMark (observer of every cell marking)
//
// Determinism
//
//	Neighbour lists are built in a fixed order (down, up, right, left) and
//	ties are broken by discovery sequence, so identical layouts produce
//	identical markings and an identical path.
//
// Optimality
//
//	Manhattan distance is admissible and consistent for unit-cost
//	4-directional moves. A cell is pushed only when it is not already
//	queued, and its entry keeps the key it was pushed with; an improved g
//	updates cameFrom and the score tables, so the reconstructed path
//	follows the best route found.
//
// Complexity (V = N² cells)
//
//   - Time:   O(V log V)
//   - Memory: O(V)
//
// Usage
//
//	g.RecomputeNeighbors()
//	res, err := astar.Search(g, start, end,
//	    astar.WithPoll(func() error { /* drain input */ return nil }),
//	    astar.WithOnStep(func() error { /* redraw */ return nil }),
//	)
//
// Errors
//
//   - ErrNilGrid, ErrMissingEndpoint, ErrSameEndpoints, ErrForeignCell
//     for invalid input.
//   - ErrOptionViolation for an invalid Option.
//   - ErrAborted wrapping the hook or context error on early exit.
//
// A search that finds no path is not an error: Result.Found is false.
package astar
