package astar

import "github.com/katalvlaran/astarviz/grid"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact unobstructed
// distance under 4-directional unit-cost moves. It never overestimates and
// is consistent, so A* expands cells in non-decreasing f.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
