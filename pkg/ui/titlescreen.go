package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	titleBackground = color.RGBA{15, 20, 35, 255}
	subtitleColor   = color.RGBA{180, 180, 200, 255}
	promptColor     = color.RGBA{150, 200, 255, 255}
	lineColor       = color.RGBA{50, 60, 80, 100}
	dashColor       = color.RGBA{255, 215, 0, 160}
)

// TitleScreen represents the screen shown before the first round
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update waits for Enter, Space or a click
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(titleBackground)

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	drawScrollingDashes(screen, width, height, elapsed)

	// Title pulses between 1.0 and 1.1 of its base size.
	titleText := "ROAD RACER"
	scale := 6.0 * (1.0 + 0.1*math.Sin(elapsed*2.0))
	brightness := math.Min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-text.Advance(titleText, face)*scale/2, centerY-8)
	op.ColorScale.ScaleWithColor(color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	text.Draw(screen, titleText, face, op)

	drawText(screen, "Dodge the traffic. Pass as many cars as you can.", centerX, centerY+110, 1.5, subtitleColor)
	drawText(screen, "Arrows or A/D/W to drive, ESC to quit", centerX, centerY+140, 1, dimTextColor)

	// Blink every half second.
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-90, 1.5, promptColor)
	}

	lineY1 := float32(height) / 6
	lineY2 := float32(height) * 5 / 6
	vector.FillRect(screen, 0, lineY1, float32(width), 2, lineColor, false)
	vector.FillRect(screen, 0, lineY2, float32(width), 2, lineColor, false)
}

// drawScrollingDashes draws a faint center line running down the screen.
func drawScrollingDashes(screen *ebiten.Image, width, height int, elapsed float64) {
	const dash, gap = 50.0, 40.0
	offset := math.Mod(elapsed*120, dash+gap)
	x := float32(width)/2 - 7
	for y := offset - dash - gap; y < float64(height); y += dash + gap {
		vector.FillRect(screen, x, float32(y), 15, dash, dashColor, false)
	}
}
