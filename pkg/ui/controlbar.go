package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ControlBarHeight is the height of the strip below the playfield.
const ControlBarHeight = 60

// MPHPerPixelPerFrame converts the road speed to the speedometer reading.
const MPHPerPixelPerFrame = 12.5

var (
	barColor        = color.RGBA{25, 25, 35, 255}
	scoreColor      = color.RGBA{255, 200, 50, 255}
	gaugeBackground = color.RGBA{40, 40, 40, 255}
	gaugeBorder     = color.RGBA{150, 150, 150, 255}
)

// ControlBar shows the score, a speedometer and the start/restart button.
type ControlBar struct {
	top      int
	width    int
	score    int
	speed    float64
	maxSpeed float64
	button   Button
}

// NewControlBar creates a control bar spanning width pixels starting at y=top.
func NewControlBar(top, width int, maxSpeed float64) *ControlBar {
	const bw, bh = 180, 40
	x := width - bw - 20
	y := top + (ControlBarHeight-bh)/2
	return &ControlBar{
		top:      top,
		width:    width,
		maxSpeed: maxSpeed,
		button:   Button{Bounds: image.Rect(x, y, x+bw, y+bh)},
	}
}

// ShowScore updates the displayed score.
func (cb *ControlBar) ShowScore(score int) {
	cb.score = score
}

// SetLabel renames the start button.
func (cb *ControlBar) SetLabel(label string) {
	cb.button.Label = label
}

// Label returns the start button's current label.
func (cb *ControlBar) Label() string {
	return cb.button.Label
}

// SetSpeed updates the speedometer, in pixels per frame.
func (cb *ControlBar) SetSpeed(speed float64) {
	cb.speed = speed
}

// Pressed reports whether the start button was activated this tick, by a
// click on it or by Enter or Space.
func (cb *ControlBar) Pressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && cb.button.Hovered()
}

// Draw renders the bar.
func (cb *ControlBar) Draw(screen *ebiten.Image) {
	top := float32(cb.top)
	vector.FillRect(screen, 0, top, float32(cb.width), ControlBarHeight, barColor, false)

	mid := float64(cb.top) + ControlBarHeight/2
	drawTextAt(screen, fmt.Sprintf("Score: %d", cb.score), 20, mid-glyphHeight, 2, scoreColor)

	mph := cb.speed * MPHPerPixelPerFrame
	drawTextAt(screen, fmt.Sprintf("%3.0f MPH", mph), 240, mid-glyphHeight/2-8, 1, dimTextColor)
	cb.drawGauge(screen, 240, float32(mid)+2, 200, 12)

	cb.button.Draw(screen)
}

// drawGauge draws a horizontal bar that fills green to yellow to red as the
// car approaches its top speed.
func (cb *ControlBar) drawGauge(screen *ebiten.Image, x, y, w, h float32) {
	vector.FillRect(screen, x, y, w, h, gaugeBackground, false)

	ratio := 0.0
	if cb.maxSpeed > 0 {
		ratio = math.Min(cb.speed/cb.maxSpeed, 1)
	}
	if ratio > 0 {
		vector.FillRect(screen, x, y, w*float32(ratio), h, gaugeColor(ratio), false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, gaugeBorder, false)
}

func gaugeColor(ratio float64) color.RGBA {
	if ratio < 0.5 {
		t := ratio / 0.5
		return color.RGBA{uint8(100 + t*155), 255, 100, 255}
	}
	t := (ratio - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - t*155), uint8(100 - t*100), 255}
}
