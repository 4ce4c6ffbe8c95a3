// Package bfs provides breadth-first search over a grid.Grid, returning the
// unweighted shortest distance, one shortest path and the visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from an origin,
//     moving down, up, right, left; Barrier cells are never entered.
//   - Stop as soon as the target is dequeued.
//   - Returns a Result containing:
//   - Dist: shortest distance, or -1 when unreachable
//   - Path: origin → target inclusive
//   - Order: visit sequence
//   - Supports an OnVisit hook (may abort with an error) and a Context.
//
// Why
//
//   - Reference oracle for A*: on a unit-cost grid BFS distances are exact,
//     so an A* path length can be checked against them.
//   - Cross-check of every animated search in the controller.
//
// Determinism
//
//	Neighbours are enqueued in a fixed order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = N² cells)
//
//   - Time:   O(V)   (each cell enqueued at most once, at most 4 moves each)
//   - Memory: O(V)   (queue, depth and parent tables)
//
// Usage
//
//	res, err := bfs.ShortestPath(g, from, to)
//	if err != nil {
//	    // ErrGridNil, ErrOutOfBounds, ErrOptionViolation, or a hook error
//	}
//	if res.Dist < 0 {
//	    // unreachable
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook.
//   - WithContext(ctx): set a custom context for cancellation.
//   - WithOnVisit(fn):  hook during visit; returning error aborts BFS.
package bfs
