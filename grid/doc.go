// Package grid models the square board of an A* demonstration: an N×N
// collection of cells, each carrying a state tag and a cached list of
// passable neighbours.
//
// What:
//
//   - Cell: position, state (Empty, Open, Closed, Barrier, Start, End, Path)
//     and a 4-directional adjacency list that excludes Barrier cells.
//   - Grid: owns every Cell, stores them row-major, maps between
//     Position and index, and recomputes adjacency for the whole board.
//   - FromRows / MustFromRows / String: ASCII layouts for fixtures and debugging.
//
// Adjacency is rebuilt explicitly by RecomputeNeighbors before each search,
// since barriers may change between searches.
//
// Complexity:
//
//   - New:                 O(N²) time and memory.
//   - Cell.RecomputeNeighbors: O(1).
//   - Grid.RecomputeNeighbors: O(N²).
//
// Errors:
//
//   - ErrInvalidSize:       dimension below 1.
//   - ErrOutOfBounds:       coordinate outside the grid.
//   - ErrNonSquare:         ragged or non-square ASCII layout.
//   - ErrBadGlyph:          unknown ASCII layout character.
//   - ErrDuplicateEndpoint: more than one S or E in a layout.
package grid
