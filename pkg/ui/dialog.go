package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	shadeColor   = color.RGBA{0, 0, 0, 140}
	messageColor = color.RGBA{255, 200, 0, 255}
)

// Dialog is the end-of-round message box. While it is open it swallows all
// input until the player acknowledges it.
type Dialog struct {
	area    image.Rectangle
	message string
	open    bool
	ok      Button
}

// NewDialog creates a dialog centered over area.
func NewDialog(area image.Rectangle) *Dialog {
	cx, cy := (area.Min.X+area.Max.X)/2, (area.Min.Y+area.Max.Y)/2
	return &Dialog{
		area: area,
		ok:   Button{Bounds: image.Rect(cx-60, cy+20, cx+60, cy+56), Label: "OK"},
	}
}

// RoundOver opens the dialog with the final score.
func (d *Dialog) RoundOver(score int) {
	d.message = fmt.Sprintf("Game Over! You passed %d cars.", score)
	d.open = true
}

// Open reports whether the dialog is showing.
func (d *Dialog) Open() bool {
	return d.open
}

// Message returns the text of the dialog.
func (d *Dialog) Message() string {
	return d.message
}

// Update closes the dialog on Enter, Space or a click on OK. It
// reports whether the dialog was dismissed this tick.
func (d *Dialog) Update() bool {
	if !d.open {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && d.ok.Hovered()) {
		d.open = false
		return true
	}
	return false
}

// Draw shades the area and draws the message box on top.
func (d *Dialog) Draw(screen *ebiten.Image) {
	if !d.open {
		return
	}

	a := d.area
	vector.FillRect(screen, float32(a.Min.X), float32(a.Min.Y), float32(a.Dx()), float32(a.Dy()), shadeColor, false)

	cx, cy := (a.Min.X+a.Max.X)/2, (a.Min.Y+a.Max.Y)/2
	box := image.Rect(cx-220, cy-70, cx+220, cy+70)
	drawPanel(screen, box, panelColor, panelBorderColor)
	drawText(screen, d.message, float64(cx), float64(cy-30), 1.5, messageColor)

	d.ok.Draw(screen)
}
