package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/game"
	"github.com/golangdaddy/roadracer/pkg/render"
	"github.com/golangdaddy/roadracer/pkg/sim"
	"github.com/golangdaddy/roadracer/pkg/world"
)

var (
	flagScale     float64
	flagSkipTitle bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play.

Controls:
  Left/A, Right/D   - Steer
  Up/W              - Accelerate (release to coast)
  Enter/Space       - Start or restart a round, dismiss the game over box
  Esc               - Quit

Examples:
  roadracer play
  roadracer play --scale 2
  roadracer play --skip-title --config ./configs/roadracer.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
		c.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Go straight to the road")
	}
}

// newSimulation builds a fresh world, its simulation and a renderer.
func newSimulation(cfg config.Config, seed int64) (*sim.Simulation, *render.Renderer, error) {
	w := world.New(cfg, rand.New(rand.NewSource(seed)))
	s, err := sim.New(w)
	if err != nil {
		return nil, nil, err
	}
	r, err := render.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return s, r, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	if flagScale <= 0 {
		return fmt.Errorf("invalid scale %g: must be positive", flagScale)
	}

	cfg, seed, err := loadConfig(logger)
	if err != nil {
		return err
	}
	s, r, err := newSimulation(cfg, seed)
	if err != nil {
		return err
	}

	g := game.NewGame(s, r, logger, game.Options{SkipTitle: flagSkipTitle})
	width, height := g.Size()

	ebiten.SetWindowSize(int(float64(width)*flagScale), int(float64(height)*flagScale))
	ebiten.SetWindowTitle("Road Racer")
	// One Update per display refresh.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	logger.Info("opening window", "width", width, "height", height, "scale", flagScale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("bye")
	return nil
}
