// Package game hosts the road racer in an ebiten window.
package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/roadracer/pkg/render"
	"github.com/golangdaddy/roadracer/pkg/sim"
	"github.com/golangdaddy/roadracer/pkg/ui"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options tune the window host.
type Options struct {
	SkipTitle bool
}

// Game implements the ebiten.Game interface and switches between the title
// and gameplay screens.
type Game struct {
	width, height int
	currentScreen Screen
	logger        *log.Logger
}

// NewGame creates a new game around a simulation.
func NewGame(s *sim.Simulation, r *render.Renderer, logger *log.Logger, opts Options) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := s.World()
	g := &Game{
		width:  int(w.Width),
		height: int(w.Height) + ui.ControlBarHeight,
		logger: logger,
	}

	gameplay := NewGameplayScreen(s, r, logger)
	if opts.SkipTitle {
		g.currentScreen = gameplay
	} else {
		g.currentScreen = ui.NewTitleScreen(func() {
			logger.Debug("leaving title screen")
			g.currentScreen = gameplay
		})
	}
	return g
}

// Size returns the logical screen size: the playfield plus the control bar.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

// Update handles game logic updates
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
