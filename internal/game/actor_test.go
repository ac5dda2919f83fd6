package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ithaca/internal/core"
)

func TestResolveWalls(t *testing.T) {
	right := core.NewRect(10, 0, 10, 10)
	below := core.NewRect(0, 10, 10, 10)

	tests := []struct {
		name     string
		walls    []core.Rect
		vel      core.Vec2
		wantRect core.Rect
		wantVel  core.Vec2
	}{
		{
			name:     "L corner stops both axes",
			walls:    []core.Rect{right, below},
			vel:      core.V(4, 4),
			wantRect: core.NewRect(5, 5, 5, 5),
			wantVel:  core.Vec2{},
		},
		{
			name:     "slides along a wall",
			walls:    []core.Rect{right},
			vel:      core.V(4, -2),
			wantRect: core.NewRect(5, 3, 5, 5),
			wantVel:  core.V(0, -2),
		},
		{
			name:     "free movement",
			walls:    []core.Rect{core.NewRect(100, 100, 10, 10)},
			vel:      core.V(4, 4),
			wantRect: core.NewRect(3, 3, 5, 5),
			wantVel:  core.V(4, 4),
		},
		{
			name:     "overlapping body is pushed out",
			walls:    []core.Rect{core.NewRect(0, 0, 5, 5)},
			vel:      core.V(-2, 0),
			wantRect: core.NewRect(5, 3, 5, 5),
			wantVel:  core.Vec2{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect := core.NewRect(3, 3, 5, 5)
			vel := tt.vel

			resolveWalls(&rect, &vel, tt.walls)

			assert.Equal(t, tt.wantRect, rect)
			assert.Equal(t, tt.wantVel, vel)
		})
	}
}

func TestResolveWallsCornerClip(t *testing.T) {
	pillar := core.NewRect(10, 10, 10, 10)
	rect := core.NewRect(3, 3, 5, 5)

	overlaps := 0
	for range 6 {
		vel := core.V(4, 4)
		resolveWalls(&rect, &vel, []core.Rect{pillar})
		rect.Translate(vel)

		if rect.Intersects(pillar) {
			overlaps++
		} else if rect.Bottom() > pillar.Y && rect.Y < pillar.Bottom() {
			assert.LessOrEqual(t, rect.X, 5.0, "held on the near side of the pillar")
		}
	}

	// The diagonal step onto the corner lands inside once; the next tick
	// pushes the body back out and it slides down the pillar's face.
	assert.Equal(t, 1, overlaps)
	assert.Equal(t, core.NewRect(9, 27, 5, 5), rect)
}

const pillarRoom = `
################
#..............#
#.P............#
#..............#
#.......#......#
#..............#
#..............#
#..............#
#..............#
#..............#
################
`

func TestPlayerCannotCrossPillarCorner(t *testing.T) {
	w := newTestWorld(t, pillarRoom, testConfig())
	p := w.Player()
	pillar := core.NewRect(72, 36, 9, 9)
	require.Contains(t, w.walls, pillar)

	// Bottom-right corner half a unit diagonal from the pillar's top-left.
	p.Rect = core.NewRect(62.5, 17.5, 9, 18)

	overlaps := 0
	in := hold(core.ActionDown, core.ActionRight)
	for range 60 {
		run(w, 1, in)
		if p.Rect.Intersects(pillar) {
			overlaps++
		}
	}

	assert.LessOrEqual(t, overlaps, 1)
	assert.False(t, p.Rect.Intersects(pillar))
	assert.Greater(t, p.Rect.X, 70.0, "kept moving right")
	assert.Greater(t, p.Rect.Y, pillar.Y, "kept moving down")
}

func TestStanceClips(t *testing.T) {
	assert.Equal(t, "idle", StanceBow.clip("idle"))
	assert.Equal(t, "pol_idle", StancePolearm.clip("idle"))
	assert.Equal(t, StancePolearm, StanceBow.other())
	assert.Equal(t, "polearm", StancePolearm.String())
}
