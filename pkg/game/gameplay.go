package game

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/roadracer/pkg/render"
	"github.com/golangdaddy/roadracer/pkg/sim"
	"github.com/golangdaddy/roadracer/pkg/ui"
)

// GameplayScreen represents the playfield with the control bar beneath it.
// Update steps the loop and Draw renders it, so one ebiten tick is one frame.
type GameplayScreen struct {
	loop      *sim.Loop
	bar       *ui.ControlBar
	dialog    *ui.Dialog
	surface   *ui.Surface
	playfield image.Rectangle
	logger    *log.Logger
}

// NewGameplayScreen creates the gameplay screen and its loop driver.
func NewGameplayScreen(s *sim.Simulation, r *render.Renderer, logger *log.Logger) *GameplayScreen {
	w := s.World()
	width, height := int(w.Width), int(w.Height)
	playfield := image.Rect(0, 0, width, height)

	bar := ui.NewControlBar(height, width, w.Config().Player.MaxSpeed)
	dialog := ui.NewDialog(playfield)

	return &GameplayScreen{
		loop: sim.NewLoop(s, r, sim.Hooks{
			Score:    bar,
			Control:  bar,
			Notifier: dialog,
		}, logger),
		bar:       bar,
		dialog:    dialog,
		surface:   ui.NewSurface(nil),
		playfield: playfield,
		logger:    logger,
	}
}

// Update handles input and advances the round by one frame
func (gs *GameplayScreen) Update() error {
	if gs.dialog.Open() {
		if gs.dialog.Update() {
			gs.logger.Debug("round over acknowledged")
		}
		return nil
	}

	ui.PollKeys(gs.loop.Keys())
	pressed := gs.bar.Pressed()
	if _, started := gs.loop.Update(pressed); pressed && !started {
		gs.logger.Debug("start ignored while running")
	}

	gs.bar.SetSpeed(gs.loop.Simulation().World().PlayerSpeed)
	return nil
}

// Draw renders the playfield, the control bar and any open dialog
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.surface.SetTarget(screen.SubImage(gs.playfield).(*ebiten.Image))
	if err := gs.loop.Render(gs.surface); err != nil {
		gs.logger.Error("render failed", "err", err)
	}
	gs.bar.Draw(screen)
	gs.dialog.Draw(screen)
}
