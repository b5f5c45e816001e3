// Package road models the road band: its edges, lanes and the scrolling
// center stripes.
package road

import (
	"math"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/models"
)

// Stripe is one dash of the center line.
type Stripe struct {
	X, Y float64
}

// Road represents the fixed road geometry and its stripes.
type Road struct {
	Width        float64
	LeftEdge     float64
	RightEdge    float64
	Lanes        int
	StripeWidth  float64
	StripeHeight float64
	StripeGap    float64
	EdgeWidth    float64
	Stripes      []Stripe
}

// New creates a road centered on the canvas with stripes already laid out.
func New(cfg config.Config) Road {
	r := Road{
		Width:        cfg.Road.Width,
		LeftEdge:     cfg.RoadLeftEdge(),
		RightEdge:    cfg.RoadRightEdge(),
		Lanes:        cfg.Road.Lanes,
		StripeWidth:  cfg.Road.StripeWidth,
		StripeHeight: cfg.Road.StripeHeight,
		StripeGap:    cfg.Road.StripeGap,
		EdgeWidth:    cfg.Road.EdgeWidth,
	}
	r.LayStripes(cfg.Canvas.Width, cfg.Canvas.Height)
	return r
}

// StripeCount returns how many stripes tile the given height plus one spare
// for the wrap.
func (r *Road) StripeCount(canvasHeight float64) int {
	return int(math.Ceil(canvasHeight/(r.StripeHeight+r.StripeGap))) + 1
}

// LayStripes regenerates the stripes from the top of the canvas downwards.
func (r *Road) LayStripes(canvasWidth, canvasHeight float64) {
	n := r.StripeCount(canvasHeight)
	r.Stripes = r.Stripes[:0]
	for i := 0; i < n; i++ {
		r.Stripes = append(r.Stripes, Stripe{
			X: canvasWidth/2 - r.StripeWidth/2,
			Y: float64(i) * (r.StripeHeight + r.StripeGap),
		})
	}
}

// Scroll moves every stripe down by speed. A stripe that leaves the bottom
// is put back just above the top.
func (r *Road) Scroll(speed, canvasHeight float64) {
	for i := range r.Stripes {
		r.Stripes[i].Y += speed
		if r.Stripes[i].Y > canvasHeight {
			r.Stripes[i].Y = -r.StripeHeight
		}
	}
}

// LaneWidth returns the width of a single lane.
func (r *Road) LaneWidth() float64 {
	return r.Width / float64(r.Lanes)
}

// LaneLeft returns the x coordinate at which an object of the given width
// sits centered in lane.
func (r *Road) LaneLeft(lane int, width float64) float64 {
	lw := r.LaneWidth()
	return r.LeftEdge + float64(lane)*lw + lw/2 - width/2
}

// ClampX keeps an object of the given width between the road edges.
func (r *Road) ClampX(x, width float64) float64 {
	return models.Clamp(x, r.LeftEdge, r.RightEdge-width)
}

// OnLeftVerge reports whether x lies left of the road.
func (r *Road) OnLeftVerge(x float64) bool {
	return x < r.LeftEdge
}
