// Package world owns the mutable state of a game: the player, the road,
// traffic, scenery, hills and the score.
package world

import (
	"math/rand"

	"github.com/golangdaddy/roadracer/pkg/background"
	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/models"
	"github.com/golangdaddy/roadracer/pkg/road"
	"github.com/golangdaddy/roadracer/pkg/traffic"
)

// World represents the complete simulation state.
type World struct {
	Width, Height float64

	Player  models.Player
	Road    road.Road
	Enemies []traffic.Car
	Scenery background.Scenery
	Hills   background.Hills

	Score       int
	PlayerSpeed float64 // forward speed, never negative
	RoadSpeed   float64 // scroll speed applied in the current frame
	Running     bool

	cfg    config.Config
	rng    *rand.Rand
	verges *background.Generator
}

// New creates a world and lays out a full scene so there is something to
// show before the first round starts. Every random decision draws from rng.
func New(cfg config.Config, rng *rand.Rand) *World {
	w := &World{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		Player: models.Player{
			Width:        cfg.Player.Width,
			Height:       cfg.Player.Height,
			LateralSpeed: cfg.Player.LateralSpeed,
		},
		Road:   road.New(cfg),
		Hills:  background.NewHills(cfg.Hills),
		cfg:    cfg,
		rng:    rng,
		verges: background.NewGenerator(cfg),
	}
	w.Reset()
	return w
}

// Reset prepares the world for a new round: score and speeds go to zero,
// traffic is cleared, the player is centered and the stripes and scenery
// are laid out afresh. The hills keep rolling and the run flag is left to
// the caller. Calling Reset repeatedly is safe.
func (w *World) Reset() {
	w.Score = 0
	w.PlayerSpeed = 0
	w.RoadSpeed = 0
	w.Enemies = w.Enemies[:0]
	w.Player.X = w.Width/2 - w.Player.Width/2
	w.Player.Y = w.Height - w.cfg.Player.BottomOffset
	w.Road.LayStripes(w.Width, w.Height)
	w.verges.Populate(&w.Scenery, w.rng)
}

// AdvanceScenery scrolls the roadside scenery at the current road speed.
func (w *World) AdvanceScenery() {
	w.verges.Advance(&w.Scenery, w.RoadSpeed, w.rng)
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.Config {
	return w.cfg
}
