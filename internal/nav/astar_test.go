package nav

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bfsDistance returns the true 4-directional shortest path length in steps,
// or -1 when goal is unreachable.
func bfsDistance(g *Grid, start, goal Point) int {
	if g.Blocked(goal) || !g.InBounds(start) {
		return -1
	}
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, off := range neighborOffsets {
			next := Point{Col: cur.Col + off.Col, Row: cur.Row + off.Row}
			if g.Blocked(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func assertValidPath(t *testing.T, g *Grid, path []Point, start, goal Point) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d is not a unit move", i)
		assert.False(t, g.Blocked(path[i]), "step %d enters a blocked cell", i)
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	g := NewGrid(5, 5, 1, nil)

	path, ok := FindPath(g, Point{0, 0}, Point{4, 4})

	require.True(t, ok)
	assert.Len(t, path, 9)
	assertValidPath(t, g, path, Point{0, 0}, Point{4, 4})
	// Open grid: every step moves right or down.
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i].Col >= path[i-1].Col && path[i].Row >= path[i-1].Row)
	}
}

func TestFindPathBlockedGoal(t *testing.T) {
	g := NewGrid(5, 5, 1, []Point{{4, 4}})

	path, ok := FindPath(g, Point{0, 0}, Point{4, 4})

	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathWalledOff(t *testing.T) {
	// Column 2 fully blocked splits the grid.
	g := NewGrid(5, 3, 1, []Point{{2, 0}, {2, 1}, {2, 2}})

	_, ok := FindPath(g, Point{0, 1}, Point{4, 1})
	assert.False(t, ok)
}

func TestFindPathAroundWall(t *testing.T) {
	g := NewGrid(3, 3, 1, []Point{{1, 1}, {2, 1}})

	path, ok := FindPath(g, Point{0, 0}, Point{2, 2})

	require.True(t, ok)
	assertValidPath(t, g, path, Point{0, 0}, Point{2, 2})
	assert.Len(t, path, 5)
}

func TestFindPathStartIsGoal(t *testing.T) {
	g := NewGrid(3, 3, 1, nil)

	path, ok := FindPath(g, Point{1, 1}, Point{1, 1})

	require.True(t, ok)
	assert.Equal(t, []Point{{1, 1}}, path)
}

func TestFindPathOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, 1, nil)

	_, ok := FindPath(g, Point{-1, 0}, Point{2, 2})
	assert.False(t, ok)
	_, ok = FindPath(g, Point{0, 0}, Point{3, 2})
	assert.False(t, ok)
}

func TestFindPathMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for trial := 0; trial < 300; trial++ {
		cols, rows := 2+rng.Intn(7), 2+rng.Intn(7)
		var blocked []Point
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Float64() < 0.3 {
					blocked = append(blocked, Point{c, r})
				}
			}
		}
		g := NewGrid(cols, rows, 1, blocked)
		start := Point{rng.Intn(cols), rng.Intn(rows)}
		goal := Point{rng.Intn(cols), rng.Intn(rows)}

		want := bfsDistance(g, start, goal)
		path, ok := FindPath(g, start, goal)

		if want < 0 {
			assert.False(t, ok, "trial %d: expected no path %v -> %v", trial, start, goal)
			continue
		}
		require.True(t, ok, "trial %d: expected a path %v -> %v", trial, start, goal)
		assert.Len(t, path, want+1, "trial %d: path is not optimal", trial)
		assertValidPath(t, g, path, start, goal)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	g := NewGrid(8, 8, 1, []Point{{3, 3}, {3, 4}, {4, 3}})

	first, ok := FindPath(g, Point{0, 0}, Point{7, 7})
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, _ := FindPath(g, Point{0, 0}, Point{7, 7})
		assert.Equal(t, first, again)
	}
}

func TestNewGridPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 5, 1, nil) })
	assert.Panics(t, func() { NewGrid(5, 5, 0, nil) })
}
