package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Bitmap font glyphs are 16px tall at scale 1.
const glyphHeight = 16.0

var (
	face = text.NewGoXFace(bitmapfont.Face)

	buttonColor       = color.RGBA{40, 40, 60, 255}
	buttonHoverColor  = color.RGBA{60, 100, 140, 255}
	buttonBorderColor = color.RGBA{80, 80, 100, 255}
	buttonTextColor   = color.RGBA{255, 255, 255, 255}
	panelColor        = color.RGBA{20, 20, 30, 230}
	panelBorderColor  = color.RGBA{100, 100, 120, 255}
	dimTextColor      = color.RGBA{150, 150, 150, 255}
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	Bounds image.Rectangle
	Label  string
}

// Contains reports whether the logical screen point (x, y) is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Bounds)
}

// Hovered reports whether the mouse cursor is over the button.
func (b *Button) Hovered() bool {
	return b.Contains(ebiten.CursorPosition())
}

// Draw draws the button, highlighted while hovered.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonColor
	if b.Hovered() {
		bg = buttonHoverColor
	}
	drawPanel(screen, b.Bounds, bg, buttonBorderColor)

	cx := float64(b.Bounds.Min.X+b.Bounds.Max.X) / 2
	cy := float64(b.Bounds.Min.Y+b.Bounds.Max.Y) / 2
	drawText(screen, b.Label, cx, cy, 1, buttonTextColor)
}

// drawPanel fills r and outlines it with a 2px border.
func drawPanel(screen *ebiten.Image, r image.Rectangle, bg, border color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.FillRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x+1, y+1, w-2, h-2, 2, border, false)
}

// drawText draws str centered on (centerX, centerY) at the given scale.
func drawText(screen *ebiten.Image, str string, centerX, centerY, scale float64, clr color.Color) {
	width := text.Advance(str, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-width/2, centerY-glyphHeight*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws str with its top-left corner at (x, y).
func drawTextAt(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
