// Package astarviz is an interactive A* pathfinding demonstrator: draw
// walls on a square board, place a start and an end cell, and watch the
// search spread, close cells and trace the shortest path.
//
// 🚀 What is inside?
//
//	grid/        N×N board of cells with a small state machine and 4-way adjacency
//	astar/       A* with Manhattan heuristic, FIFO tie-breaking and redraw/poll hooks
//	bfs/         breadth-first shortest path, used as the reference distance
//	controller/  input rules (place, erase, run, clear, quit) and the main loop
//	tui/         tcell rendering and mouse/keyboard translation
//	config/      defaults, YAML overrides and validation
//	cmd/astarviz  the terminal program
//
// Quick ASCII example (S start, E end, # wall, x closed, * path):
//
//	S x x
//	* # x
//	* * E
//
// Install:
//
//	go install github.com/katalvlaran/astarviz/cmd/astarviz@latest
package astarviz
