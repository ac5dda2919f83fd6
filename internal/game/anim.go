package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
)

// ClipSpec is the timing of one named clip.
type ClipSpec struct {
	Frames int
	Speed  float64 // frames per tick
	Loop   bool
}

// Clips is the lookup table of every playable clip, keyed by full name.
// Directional clips appear once per facing as "<base>_<direction>".
type Clips map[string]ClipSpec

// NewClips expands a config clip table.
func NewClips(src map[string]config.ClipConfig) Clips {
	clips := make(Clips, len(src)*core.NumDirections)
	for name, c := range src {
		spec := ClipSpec{Frames: c.Frames, Speed: c.Speed, Loop: c.Loop}
		if !c.Directional {
			clips[name] = spec
			continue
		}
		for _, d := range core.Directions {
			clips[dirClip(name, d)] = spec
		}
	}
	return clips
}

// Lookup returns the clip called name. An unknown name is a data bug and
// panics.
func (c Clips) Lookup(name string) ClipSpec {
	spec, ok := c[name]
	if !ok {
		panic(fmt.Sprintf("game: unknown animation clip %q", name))
	}
	return spec
}

func dirClip(base string, d core.Direction) string {
	return base + "_" + d.String()
}

// Anim is the playback state of one clip on one actor.
type Anim struct {
	Name  string
	spec  ClipSpec
	speed float64 // multiplier on spec.Speed
	pos   float64
	held  bool
	done  bool
}

// Frame returns the frame index currently shown.
func (a *Anim) Frame() int {
	return int(a.pos)
}

// Done reports whether a non-looping clip has played its last frame.
func (a *Anim) Done() bool {
	return a.done
}

// Hold freezes the clip on its current frame until Resume.
func (a *Anim) Hold() { a.held = true }

// Resume continues a held clip.
func (a *Anim) Resume() { a.held = false }

// Held reports whether the clip is frozen.
func (a *Anim) Held() bool { return a.held }

// step advances playback by dt ticks and reports whether the shown frame
// changed. Each frame is shown for 1/speed ticks; a non-looping clip
// completes once its last frame has been shown for that long.
func (a *Anim) step(dt float64) (frameChanged bool) {
	if a.held || a.done || a.spec.Frames == 0 {
		return false
	}

	before := a.Frame()
	a.pos += a.spec.Speed * a.speed * dt
	n := float64(a.spec.Frames)
	if a.pos >= n {
		if a.spec.Loop {
			a.pos = math.Mod(a.pos, n)
		} else {
			a.pos = n - 1
			a.done = true
		}
	}
	return a.Frame() != before
}

// Animator is told whenever an actor switches clips. The simulation keeps
// its own clip timing; an Animator only mirrors it for presentation.
type Animator interface {
	Play(id ActorID, clip string, loop bool)
}

// animState is embedded by actors that play clips.
type animState struct {
	anim Anim
}

// Clip returns the name of the clip currently playing.
func (s *animState) Clip() string {
	return s.anim.Name
}

// play switches to the named clip. Re-playing the current clip is a no-op
// unless restart is set.
func (s *animState) play(w *World, id ActorID, name string, restart bool) {
	if s.anim.Name == name && !restart {
		return
	}
	spec := w.clips.Lookup(name)
	s.anim = Anim{Name: name, spec: spec, speed: 1}
	if w.animator != nil {
		w.animator.Play(id, name, spec.Loop)
	}
}

// playFrom switches to name starting at frame with a speed multiplier. It
// always restarts.
func (s *animState) playFrom(w *World, id ActorID, name string, frame int, speed float64) {
	s.play(w, id, name, true)
	s.anim.pos = float64(frame)
	s.anim.speed = speed
}
