package astar

// frontierItem is a queued cell: its row-major index, the f-score it was
// queued with, and the sequence number it was discovered with. The key is
// fixed at push time.
type frontierItem struct {
	cell int
	f    int
	seq  int
}

// frontier is a min-heap of frontierItem keyed on (f, seq). Cells are
// carried by index only, so they never need to be comparable.
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }

// Less orders by f, then by discovery sequence (FIFO among equal f).
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x interface{}) { *q = append(*q, x.(frontierItem)) }

func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
