package radar

import (
	"math"
	"sync"
	"sync/atomic"
)

// DefaultRotationStep is the per-frame angular increment (one degree)
const DefaultRotationStep = math.Pi / 180

// Animator rotates a fixed set of placements at constant angular velocity.
// Each placement's jittered angle and radius are kept across frames; only the
// rotation increment is ever added. Hovering pauses every marker at once.
type Animator struct {
	step       float64
	running    atomic.Bool
	generation atomic.Uint64

	mu         sync.Mutex
	placements []Placement
	paused     bool
	frames     uint64
}

// NewAnimator creates a stopped animator over placements
func NewAnimator(placements []Placement, step float64) *Animator {
	if step == 0 {
		step = DefaultRotationStep
	}
	a := &Animator{step: step}
	a.Reset(placements)
	return a
}

// Reset replaces the animated placements, e.g. after the data set changed
func (a *Animator) Reset(placements []Placement) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.placements = append([]Placement(nil), placements...)
}

// Start turns animation on. It reports whether the animator was stopped,
// in which case the caller must schedule the first frame. Every start opens a
// new generation so frames still pending from an earlier loop are dropped.
func (a *Animator) Start() bool {
	if !a.running.CompareAndSwap(false, true) {
		return false
	}
	a.generation.Add(1)
	return true
}

// Generation identifies the current frame loop
func (a *Animator) Generation() uint64 {
	return a.generation.Load()
}

// Stop clears the running flag; the next Advance returns false and the
// frame loop ends.
func (a *Animator) Stop() {
	a.running.Store(false)
}

// Running reports the live animation flag
func (a *Animator) Running() bool {
	return a.running.Load()
}

// Pause freezes all rotation while a marker is hovered
func (a *Animator) Pause() {
	a.mu.Lock()
	a.paused = true
	a.mu.Unlock()
}

// Resume restarts rotation once the pointer leaves
func (a *Animator) Resume() {
	a.mu.Lock()
	a.paused = false
	a.mu.Unlock()
}

// Paused reports whether hover has frozen the rotation
func (a *Animator) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Advance runs one frame of loop gen. It returns false once the animator is
// stopped or gen belongs to an older loop, telling the caller not to schedule
// another frame.
func (a *Animator) Advance(gen uint64) bool {
	if !a.running.Load() || gen != a.generation.Load() {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.paused {
		return true
	}
	for i := range a.placements {
		a.placements[i].Angle = NormalizeAngle(a.placements[i].Angle + a.step)
	}
	a.frames++
	return true
}

// Frames is the number of frames that actually rotated the markers
func (a *Animator) Frames() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}

// Placements returns a snapshot of the current positions
func (a *Animator) Placements() []Placement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Placement(nil), a.placements...)
}
