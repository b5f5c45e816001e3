package background

import (
	"math"

	"github.com/golangdaddy/roadracer/pkg/config"
)

// Hills drives the sinusoidal silhouette of the mountains on the horizon.
// Position advances at a fixed rate regardless of the player's speed.
type Hills struct {
	Position  float64
	Speed     float64
	Amplitude float64
	Frequency float64
}

// NewHills creates hills from the configuration.
func NewHills(cfg config.HillsConfig) Hills {
	return Hills{
		Speed:     cfg.Speed,
		Amplitude: cfg.Amplitude,
		Frequency: cfg.Frequency,
	}
}

// Advance moves the hills by one frame.
func (h *Hills) Advance() {
	h.Position += h.Speed
}

// Displacement returns the vertical offset of the silhouette at x.
func (h Hills) Displacement(x float64) float64 {
	return math.Sin((x+h.Position)*h.Frequency) * h.Amplitude
}
