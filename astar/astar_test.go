package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/bfs"
	"github.com/katalvlaran/astarviz/grid"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// mark is one observed cell marking.
type mark struct {
	Pos   grid.Position
	State grid.State
}

// run recomputes adjacency and searches the layout, recording every marking.
func run(t testing.TB, l *grid.Layout, opts ...astar.Option) (astar.Result, []mark, error) {
	t.Helper()
	var trace []mark
	l.Grid.RecomputeNeighbors()
	recorder := astar.WithOnMark(func(p grid.Position, s grid.State) {
		trace = append(trace, mark{p, s})
	})
	// caller options come last so a caller-supplied OnMark wins
	res, err := astar.Search(l.Grid, l.Start, l.End, append([]astar.Option{recorder}, opts...)...)
	return res, trace, err
}

// randomLayout builds an n×n layout with roughly density barriers and
// distinct start/end cells.
func randomLayout(rnd *rand.Rand, n int, density float64) *grid.Layout {
	g, _ := grid.New(n)
	for _, c := range g.Cells() {
		if rnd.Float64() < density {
			c.MarkBarrier()
		}
	}
	s := g.CellAt(rnd.Intn(g.Len()))
	e := g.CellAt(rnd.Intn(g.Len()))
	for e == s {
		e = g.CellAt(rnd.Intn(g.Len()))
	}
	s.MarkStart()
	e.MarkEnd()
	return &grid.Layout{Grid: g, Start: s, End: e}
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// SearchSuite groups the fixed-layout scenarios.
type SearchSuite struct {
	suite.Suite
}

// TestOpenGrid: 5×5 empty grid, (0,0)→(4,4) => found, length 8.
func (s *SearchSuite) TestOpenGrid() {
	g, _ := grid.New(5)
	start, end := g.At(pos(0, 0)), g.At(pos(4, 4))
	start.MarkStart()
	end.MarkEnd()

	res, _, err := run(s.T(), &grid.Layout{Grid: g, Start: start, End: end})
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 8, res.Length)
	require.Len(s.T(), res.Path, 9)
	require.Equal(s.T(), pos(0, 0), res.Path[0])
	require.Equal(s.T(), pos(4, 4), res.Path[8])

	// every interior path cell is Path, endpoints keep their tags
	for _, p := range res.Path[1:8] {
		require.True(s.T(), g.At(p).IsPath(), "cell %v not marked path", p)
	}
	require.True(s.T(), start.IsStart())
	require.True(s.T(), end.IsEnd())
}

// TestEnclosedEnd: 3×3, End=(1,1) walled on all four sides => not found.
func (s *SearchSuite) TestEnclosedEnd() {
	l := grid.MustFromRows(
		"S#.",
		"#E#",
		".#.",
	)
	res, _, err := run(s.T(), l)
	require.NoError(s.T(), err, "no path is not an error")
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Path)
	require.Equal(s.T(), 1, res.Expanded, "only start is reachable")
}

// TestEnclosedKeepsExploration: explored cells stay Open/Closed after a miss.
func (s *SearchSuite) TestEnclosedKeepsExploration() {
	l := grid.MustFromRows(
		"S...",
		"..##",
		"..#E",
		"..#.",
	)
	res, _, err := run(s.T(), l)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	require.Equal(s.T(),
		"Sxxx\n"+
			"xx##\n"+
			"xx#E\n"+
			"xx#.\n",
		l.Grid.String())
}

// TestAdjacent: start next to end => one edge, nothing marked Path.
func (s *SearchSuite) TestAdjacent() {
	l := grid.MustFromRows(
		"SE",
		"..",
	)
	res, trace, err := run(s.T(), l)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 1, res.Length)
	require.Equal(s.T(), []grid.Position{pos(0, 0), pos(0, 1)}, res.Path)
	for _, m := range trace {
		require.NotEqual(s.T(), grid.Path, m.State)
	}
}

// TestDetour: a wall forces the path around it.
func (s *SearchSuite) TestDetour() {
	l := grid.MustFromRows(
		"S.#..",
		"..#..",
		"..#.E",
		".....",
		".....",
	)
	res, _, err := run(s.T(), l)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 8, res.Length)
	for _, p := range res.Path {
		require.False(s.T(), l.Grid.At(p).IsBarrier(), "path crosses barrier at %v", p)
	}
}

// TestStepCount: one OnStep per non-final expansion plus one per path cell.
func (s *SearchSuite) TestStepCount() {
	l := grid.MustFromRows(
		"S....",
		".###.",
		"...#.",
		".#...",
		"...#E",
	)
	steps := 0
	res, _, err := run(s.T(), l, astar.WithOnStep(func() error {
		steps++
		return nil
	}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), (res.Expanded-1)+(res.Length-1), steps)
}

// TestPollOncePerIteration: Poll fires before every pop.
func (s *SearchSuite) TestPollOncePerIteration() {
	g, _ := grid.New(6)
	start, end := g.At(pos(0, 0)), g.At(pos(5, 3))
	polls := 0
	res, _, err := run(s.T(), &grid.Layout{Grid: g, Start: start, End: end},
		astar.WithPoll(func() error { polls++; return nil }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Expanded, polls)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

//----------------------------------------------------------------------------//
// Errors and aborts
//----------------------------------------------------------------------------//

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	g, _ := grid.New(3)
	other, _ := grid.New(3)
	a, b := g.At(pos(0, 0)), g.At(pos(2, 2))

	cases := []struct {
		name       string
		g          *grid.Grid
		start, end *grid.Cell
		opts       []astar.Option
		err        error
	}{
		{"NilGrid", nil, a, b, nil, astar.ErrNilGrid},
		{"NilStart", g, nil, b, nil, astar.ErrMissingEndpoint},
		{"NilEnd", g, a, nil, nil, astar.ErrMissingEndpoint},
		{"Same", g, a, a, nil, astar.ErrSameEndpoints},
		{"Foreign", g, a, other.At(pos(1, 1)), nil, astar.ErrForeignCell},
		{"NilContext", g, a, b, []astar.Option{astar.WithContext(nil)}, astar.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astar.Search(tc.g, tc.start, tc.end, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSearch_PollAbort(t *testing.T) {
	quit := errors.New("quit")
	l := grid.MustFromRows(
		"S...",
		"....",
		"....",
		"...E",
	)
	calls := 0
	res, _, err := run(t, l, astar.WithPoll(func() error {
		calls++
		if calls == 3 {
			return quit
		}
		return nil
	}))
	require.ErrorIs(t, err, astar.ErrAborted)
	require.ErrorIs(t, err, quit)
	require.False(t, res.Found)
	require.Equal(t, 2, res.Expanded, "abort happens before the third pop")
}

func TestSearch_StepAbortDuringTraceBack(t *testing.T) {
	stop := errors.New("stop")
	l := grid.MustFromRows(
		"S..",
		"...",
		"..E",
	)
	var (
		tracing bool
		res     astar.Result
		err     error
	)
	res, _, err = run(t, l,
		astar.WithOnMark(func(_ grid.Position, s grid.State) {
			if s == grid.Path {
				tracing = true
			}
		}),
		astar.WithOnStep(func() error {
			if tracing {
				return stop
			}
			return nil
		}))
	require.ErrorIs(t, err, astar.ErrAborted)
	require.ErrorIs(t, err, stop)
	require.False(t, res.Found)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := grid.MustFromRows(
		"S.",
		".E",
	)
	res, trace, err := run(t, l, astar.WithContext(ctx))
	require.ErrorIs(t, err, astar.ErrAborted)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, res.Expanded)
	require.Empty(t, trace)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestManhattan_Admissible: the estimate never exceeds the true distance
// and equals it on an open grid.
func TestManhattan_Admissible(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		l := randomLayout(rnd, 7, 0.3)
		a, b := l.Start.Position(), l.End.Position()
		res, err := bfs.ShortestPath(l.Grid, a, b)
		require.NoError(t, err)
		if res.Dist >= 0 {
			require.LessOrEqual(t, astar.Manhattan(a, b), res.Dist)
		}
	}

	open, _ := grid.New(7)
	for i := 0; i < open.Len(); i++ {
		for j := 0; j < open.Len(); j++ {
			a, b := open.Coordinate(i), open.Coordinate(j)
			res, err := bfs.ShortestPath(open, a, b)
			require.NoError(t, err)
			require.Equal(t, res.Dist, astar.Manhattan(a, b))
		}
	}
}

// TestSearch_MatchesBFS: on random layouts the A* path length equals the
// BFS distance, and "not found" coincides with BFS unreachability.
func TestSearch_MatchesBFS(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 300; trial++ {
		l := randomLayout(rnd, 3+rnd.Intn(10), 0.35)
		want, err := bfs.ShortestPath(l.Grid, l.Start.Position(), l.End.Position())
		require.NoError(t, err)

		res, _, err := run(t, l)
		require.NoError(t, err)
		if want.Dist < 0 {
			require.False(t, res.Found, "trial %d: found unreachable end", trial)
			continue
		}
		require.True(t, res.Found, "trial %d: missed reachable end", trial)
		require.Equal(t, want.Dist, res.Length, "trial %d", trial)

		// the path must be a chain of 4-adjacent passable cells
		for i := 1; i < len(res.Path); i++ {
			require.Equal(t, 1, astar.Manhattan(res.Path[i-1], res.Path[i]))
		}
	}
}

// TestSearch_Deterministic: identical layouts give identical markings and
// paths.
func TestSearch_Deterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		l := randomLayout(rnd, 12, 0.25)
		rows := splitRows(l.Grid.String())

		res1, trace1, err := run(t, grid.MustFromRows(rows...))
		require.NoError(t, err)
		res2, trace2, err := run(t, grid.MustFromRows(rows...))
		require.NoError(t, err)

		require.Equal(t, trace1, trace2)
		require.Equal(t, res1, res2)
	}
}

// expansionF returns, for each Closed marking in trace, the f-score the cell
// was expanded with: its true distance from start plus Manhattan to end.
func expansionF(t *testing.T, l *grid.Layout, trace []mark) (closed []grid.Position, f []int) {
	t.Helper()
	startPos, endPos := l.Start.Position(), l.End.Position()
	for _, m := range trace {
		if m.State != grid.Closed {
			continue
		}
		d, err := bfs.ShortestPath(l.Grid, startPos, m.Pos)
		require.NoError(t, err)
		closed = append(closed, m.Pos)
		f = append(f, d.Dist+astar.Manhattan(m.Pos, endPos))
	}
	return closed, f
}

// TestSearch_TieBreakByDiscovery: on an open grid cells are expanded in
// non-decreasing f, and cells with equal f in the order they were first
// opened.
func TestSearch_TieBreakByDiscovery(t *testing.T) {
	const n = 6
	for s := 0; s < n*n; s++ {
		for e := 0; e < n*n; e++ {
			if s == e {
				continue
			}
			g, _ := grid.New(n)
			l := &grid.Layout{Grid: g, Start: g.CellAt(s), End: g.CellAt(e)}
			_, trace, err := run(t, l)
			require.NoError(t, err)

			openedAt := map[grid.Position]int{}
			for i, m := range trace {
				if _, seen := openedAt[m.Pos]; !seen && m.State == grid.Open {
					openedAt[m.Pos] = i
				}
			}
			closed, f := expansionF(t, l, trace)
			for i := 1; i < len(closed); i++ {
				require.LessOrEqual(t, f[i-1], f[i], "%v→%v: f decreased at %v", g.Coordinate(s), g.Coordinate(e), closed[i])
				if f[i-1] == f[i] {
					require.Less(t, openedAt[closed[i-1]], openedAt[closed[i]],
						"%v→%v: %v expanded before earlier-opened %v", g.Coordinate(s), g.Coordinate(e), closed[i-1], closed[i])
				}
			}
		}
	}
}

// TestSearch_QueuedCellKeepsPushedKey: (2,1) is queued from (2,2) with
// g=5 and later reached from (1,1) with g=3. Its frontier entry keeps the
// key it was pushed with, so it is not expanded ahead of the cells queued
// before the improvement; only cameFrom and the scores change.
func TestSearch_QueuedCellKeepsPushedKey(t *testing.T) {
	l := grid.MustFromRows(
		"..S..#",
		"#.#..#",
		"#...#.",
		"....#E",
		"#.#...",
		".#...#",
	)
	res, trace, err := run(t, l)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 8, res.Length)
	require.Equal(t, 15, res.Expanded)
	require.Equal(t, []grid.Position{
		pos(0, 2), pos(0, 3), pos(1, 3), pos(2, 3), pos(3, 3),
		pos(4, 3), pos(4, 4), pos(4, 5), pos(3, 5),
	}, res.Path)

	require.Equal(t, []mark{
		{pos(0, 3), grid.Open}, {pos(0, 1), grid.Open}, {pos(1, 3), grid.Open},
		{pos(0, 4), grid.Open}, {pos(0, 3), grid.Closed}, {pos(2, 3), grid.Open},
		{pos(1, 4), grid.Open}, {pos(1, 3), grid.Closed}, {pos(0, 4), grid.Closed},
		{pos(3, 3), grid.Open}, {pos(2, 2), grid.Open}, {pos(2, 3), grid.Closed},
		{pos(1, 4), grid.Closed}, {pos(4, 3), grid.Open}, {pos(3, 2), grid.Open},
		{pos(3, 3), grid.Closed}, {pos(1, 1), grid.Open}, {pos(0, 0), grid.Open},
		{pos(0, 1), grid.Closed}, {pos(2, 1), grid.Open}, {pos(2, 2), grid.Closed},
		{pos(5, 3), grid.Open}, {pos(4, 4), grid.Open}, {pos(4, 3), grid.Closed},
		{pos(3, 1), grid.Open}, {pos(3, 2), grid.Closed}, {pos(1, 1), grid.Closed},
		{pos(5, 4), grid.Open}, {pos(4, 5), grid.Open}, {pos(4, 4), grid.Closed},
		{pos(3, 5), grid.Open}, {pos(4, 5), grid.Closed}, {pos(4, 5), grid.Path},
		{pos(4, 4), grid.Path}, {pos(4, 3), grid.Path}, {pos(3, 3), grid.Path},
		{pos(2, 3), grid.Path}, {pos(1, 3), grid.Path}, {pos(0, 3), grid.Path},
		{pos(3, 5), grid.End},
	}, trace)

	// (2,1) was never expanded: its stale key sorts behind End
	require.Equal(t,
		"oxS*x#\n"+
			"#x#*x#\n"+
			"#ox*#.\n"+
			".ox*#E\n"+
			"#.#***\n"+
			".#.oo#\n",
		l.Grid.String())
}

// TestSearch_NeverOpensBarrier: no marking ever lands on a barrier.
func TestSearch_NeverOpensBarrier(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		l := randomLayout(rnd, 9, 0.4)
		barriers := map[grid.Position]bool{}
		for _, c := range l.Grid.Cells() {
			if c.IsBarrier() {
				barriers[c.Position()] = true
			}
		}
		_, trace, err := run(t, l)
		require.NoError(t, err)
		for _, m := range trace {
			require.False(t, barriers[m.Pos], "trial %d: %v marked %v", trial, m.Pos, m.State)
		}
	}
}

func splitRows(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
