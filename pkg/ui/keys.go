package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/roadracer/pkg/input"
)

var keyBindings = map[input.Key][]ebiten.Key{
	input.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
}

// PollKeys copies the held state of the driving keys into s.
func PollKeys(s *input.KeyState) {
	for k, bound := range keyBindings {
		pressed := false
		for _, ek := range bound {
			if ebiten.IsKeyPressed(ek) {
				pressed = true
				break
			}
		}
		s.Set(k, pressed)
	}
}
