package nav

import "container/heap"

// node is an open-set entry. Index is maintained by the heap.
type node struct {
	point Point
	cost  int // steps from start
	f     int // cost + heuristic
	seq   int // insertion order, breaks f ties deterministically
	index int
}

// openSet is a min-heap on (f, seq).
type openSet []*node

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openSet) Pop() any {
	old := *o
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*o = old[:last]
	return n
}

// FindPath runs A* over 4-connected neighbors with unit edge cost and the
// Manhattan heuristic. It returns the cells from start to goal inclusive, or
// ok=false when no route exists. An unreachable goal is a normal outcome.
func FindPath(g *Grid, start, goal Point) (path []Point, ok bool) {
	if g.Blocked(goal) || !g.InBounds(start) {
		return nil, false
	}

	n := g.cols * g.rows
	best := make([]int, n) // best known cost+1; 0 means unseen
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	seq := 0
	open := &openSet{}
	heap.Push(open, &node{point: start, cost: 0, f: start.Manhattan(goal), seq: seq})
	best[g.index(start)] = 1

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		ci := g.index(cur.point)

		// Stale entry superseded by a cheaper route.
		if cur.cost+1 > best[ci] {
			continue
		}

		if cur.point == goal {
			return reconstruct(g, parent, ci), true
		}

		for _, off := range neighborOffsets {
			next := Point{Col: cur.point.Col + off.Col, Row: cur.point.Row + off.Row}
			if g.Blocked(next) {
				continue
			}
			ni := g.index(next)
			cost := cur.cost + 1
			if best[ni] != 0 && cost+1 >= best[ni] {
				continue
			}
			best[ni] = cost + 1
			parent[ni] = ci
			seq++
			heap.Push(open, &node{point: next, cost: cost, f: cost + next.Manhattan(goal), seq: seq})
		}
	}

	return nil, false
}

// reconstruct walks parent links from the goal index back to the start.
func reconstruct(g *Grid, parent []int, goal int) []Point {
	var rev []Point
	for i := goal; i != -1; i = parent[i] {
		rev = append(rev, Point{Col: i % g.cols, Row: i / g.cols})
	}

	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
