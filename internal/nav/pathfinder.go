package nav

import "github.com/vovakirdan/ithaca/internal/core"

// pathKey identifies a cached search by its endpoint cells.
type pathKey struct {
	start, goal Point
}

// cachedPath remembers a search result, including a miss.
type cachedPath struct {
	waypoints []core.Vec2
	found     bool
}

// CacheStats reports path cache usage.
type CacheStats struct {
	Entries int
	Hits    int
	Misses  int
}

// Pathfinder answers world-space path queries against a fixed grid,
// memoizing every (start cell, goal cell) result for its lifetime.
//
// Entries are never evicted. That is only correct while the grid is
// static; a level whose geometry changes must call Invalidate.
// Pathfinder is not safe for concurrent use; the frame driver is its
// only caller.
type Pathfinder struct {
	grid   *Grid
	cache  map[pathKey]cachedPath
	hits   int
	misses int
}

// NewPathfinder creates a pathfinder over g.
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{
		grid:  g,
		cache: make(map[pathKey]cachedPath),
	}
}

// Grid returns the underlying occupancy grid.
func (pf *Pathfinder) Grid() *Grid {
	return pf.grid
}

// FindWorldPath returns waypoints from the cell containing start to the cell
// containing goal, as cell corners in world space, or nil when the goal is
// unreachable. Index 0 is the caller's current cell; steer towards index 1.
//
// The returned slice is shared with the cache and must not be modified.
func (pf *Pathfinder) FindWorldPath(start, goal core.Vec2) []core.Vec2 {
	key := pathKey{start: pf.grid.WorldToCell(start), goal: pf.grid.WorldToCell(goal)}

	if cached, ok := pf.cache[key]; ok {
		pf.hits++
		return cached.waypoints
	}
	pf.misses++

	cells, found := FindPath(pf.grid, key.start, key.goal)
	var waypoints []core.Vec2
	if found {
		waypoints = make([]core.Vec2, len(cells))
		for i, c := range cells {
			waypoints[i] = pf.grid.CellToWorld(c)
		}
	}

	pf.cache[key] = cachedPath{waypoints: waypoints, found: found}
	return waypoints
}

// Invalidate drops every cached path. Call it after level geometry changes.
func (pf *Pathfinder) Invalidate() {
	clear(pf.cache)
}

// Rebuild swaps in a new grid and drops every cached path.
func (pf *Pathfinder) Rebuild(g *Grid) {
	pf.grid = g
	pf.Invalidate()
}

// Stats returns cache usage counters.
func (pf *Pathfinder) Stats() CacheStats {
	return CacheStats{Entries: len(pf.cache), Hits: pf.hits, Misses: pf.misses}
}
