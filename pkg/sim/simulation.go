// Package sim advances the world one frame at a time and drives rounds
// through the idle, running and game-over phases.
package sim

import (
	"fmt"
	"math"

	"github.com/golangdaddy/roadracer/pkg/input"
	"github.com/golangdaddy/roadracer/pkg/traffic"
	"github.com/golangdaddy/roadracer/pkg/world"
)

// FrameResult reports what one Update did.
type FrameResult struct {
	Passed  int  // enemies that left the screen this frame
	Crashed bool // the round ended this frame
}

// Simulation applies input and physics to a world.
type Simulation struct {
	world   *world.World
	spawner *traffic.Spawner
}

// New creates a simulation for w with a spawner built from w's configuration.
func New(w *world.World) (*Simulation, error) {
	cfg := w.Config()
	spawner, err := traffic.NewSpawner(cfg.Traffic, w.Road)
	if err != nil {
		return nil, fmt.Errorf("failed to create spawner: %w", err)
	}
	return &Simulation{world: w, spawner: spawner}, nil
}

// World returns the simulated world.
func (s *Simulation) World() *world.World {
	return s.world
}

// Reset prepares the world and the spawner for a new round.
func (s *Simulation) Reset() {
	s.world.Reset()
	s.spawner.Reset()
}

// Update advances the world by one frame. It does nothing unless the world
// is running. A collision clears the run flag before Update returns.
func (s *Simulation) Update(keys input.KeyState) FrameResult {
	w := s.world
	if !w.Running {
		return FrameResult{}
	}
	cfg := w.Config()

	w.RoadSpeed = w.PlayerSpeed

	if keys.Down(input.KeyLeft) {
		w.Player.X -= w.Player.LateralSpeed
	}
	if keys.Down(input.KeyRight) {
		w.Player.X += w.Player.LateralSpeed
	}

	if keys.Down(input.KeyUp) {
		w.PlayerSpeed = math.Min(w.PlayerSpeed+cfg.Player.Acceleration, cfg.Player.MaxSpeed)
	} else {
		w.PlayerSpeed = math.Max(w.PlayerSpeed-cfg.Player.Deceleration, 0)
	}

	w.Player.X = w.Road.ClampX(w.Player.X, w.Player.Width)

	w.Road.Scroll(w.RoadSpeed, w.Height)
	w.AdvanceScenery()
	w.Hills.Advance()

	var out traffic.Outcome
	w.Enemies, out = traffic.Advance(w.Enemies, w.RoadSpeed, w.Height, w.Player.Rect())
	w.Score += out.Passed
	if out.Collided {
		w.Running = false
	}

	w.Enemies = s.spawner.Tick(w.Enemies, w.Rand())

	return FrameResult{Passed: out.Passed, Crashed: out.Collided}
}
