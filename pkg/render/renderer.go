package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/world"
)

// ErrNilSurface is returned when asked to draw onto nothing.
var ErrNilSurface = errors.New("render: nil surface")

var (
	trunkColor      = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	canopyColor     = color.RGBA{0x22, 0x8b, 0x22, 0xff}
	canopyDarkColor = color.RGBA{0x00, 0x64, 0x00, 0xff}
	bushColor       = color.RGBA{0x32, 0xcd, 0x32, 0xff}
	bushLeafColor   = color.RGBA{0x22, 0x8b, 0x22, 0xff}
	rockColor       = color.RGBA{0xa9, 0xa9, 0xa9, 0xff}
	rockShadeColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	asphaltColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	stripeColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	edgeColor       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	playerColor     = color.RGBA{0x33, 0x66, 0xff, 0xff}
	windowColor     = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	wheelColor      = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

type mountain struct {
	color  color.RGBA
	height float64
}

// Renderer draws a world back to front: backdrop, scenery, road, the
// player and then the traffic. It never modifies the world.
type Renderer struct {
	sky        color.RGBA
	ground     color.RGBA
	mountains  []mountain
	sampleStep float64
	polygon    []Point
}

// New creates a renderer, parsing the backdrop colors from cfg.
func New(cfg config.Config) (*Renderer, error) {
	sky, err := config.ParseColor(cfg.Backdrop.Sky)
	if err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	ground, err := config.ParseColor(cfg.Backdrop.Ground)
	if err != nil {
		return nil, fmt.Errorf("ground: %w", err)
	}

	r := &Renderer{
		sky:        sky,
		ground:     ground,
		sampleStep: cfg.Hills.SampleStep,
	}
	for i, m := range cfg.Backdrop.Mountains {
		c, err := config.ParseColor(m.Color)
		if err != nil {
			return nil, fmt.Errorf("mountain %d: %w", i, err)
		}
		r.mountains = append(r.mountains, mountain{color: c, height: m.Height})
	}
	return r, nil
}

// Draw clears dst and paints the whole scene.
func (r *Renderer) Draw(dst Surface, w *world.World) error {
	if dst == nil {
		return ErrNilSurface
	}

	dst.Clear()
	r.drawBackdrop(dst, w)
	r.drawScenery(dst, w)
	r.drawRoad(dst, w)
	drawCar(dst, w.Player.X, w.Player.Y, w.Player.Width, w.Player.Height, playerColor)
	for _, e := range w.Enemies {
		drawCar(dst, e.X, e.Y, e.Width, e.Height, e.Color)
	}
	return nil
}

// MountainOutline returns the polygon of one mountain layer. The ridge is
// sampled every step pixels and closed along the horizon.
func MountainOutline(dst []Point, w *world.World, height, step float64) []Point {
	horizon := w.Height / 2
	dst = append(dst[:0], Point{X: 0, Y: horizon})
	for x := 0.0; x < w.Width; x += step {
		dst = append(dst, Point{X: x, Y: horizon - (height + w.Hills.Displacement(x))})
	}
	return append(dst, Point{X: w.Width, Y: horizon})
}

func (r *Renderer) drawBackdrop(dst Surface, w *world.World) {
	half := w.Height / 2
	dst.FillRect(0, 0, w.Width, half, r.sky)
	for _, m := range r.mountains {
		r.polygon = MountainOutline(r.polygon, w, m.height, r.sampleStep)
		dst.FillPolygon(r.polygon, m.color)
	}
	dst.FillRect(0, half, w.Width, half, r.ground)
}

func (r *Renderer) drawScenery(dst Surface, w *world.World) {
	for _, t := range w.Scenery.Trees {
		dst.FillRect(t.X, t.Y, t.Width, t.Height, trunkColor)
		dst.FillCircle(t.X+t.Width/2, t.Y-10, t.Width*1.5, canopyColor)
		dst.FillCircle(t.X+t.Width/2, t.Y+10, t.Width, canopyDarkColor)
	}
	for _, b := range w.Scenery.Bushes {
		dst.FillCircle(b.X, b.Y, b.Radius, bushColor)
		dst.FillCircle(b.X-b.Radius/3, b.Y-b.Radius/3, b.Radius/2, bushLeafColor)
	}
	for _, rk := range w.Scenery.Rocks {
		dst.FillCircle(rk.X, rk.Y, rk.Radius, rockColor)
		dst.FillCircle(rk.X-rk.Radius/4, rk.Y-rk.Radius/4, rk.Radius/3, rockShadeColor)
	}
}

func (r *Renderer) drawRoad(dst Surface, w *world.World) {
	rd := &w.Road
	dst.FillRect(rd.LeftEdge, 0, rd.Width, w.Height, asphaltColor)
	for _, s := range rd.Stripes {
		dst.FillRect(s.X, s.Y, rd.StripeWidth, rd.StripeHeight, stripeColor)
	}
	dst.FillRect(rd.LeftEdge-rd.EdgeWidth, 0, rd.EdgeWidth, w.Height, edgeColor)
	dst.FillRect(rd.RightEdge, 0, rd.EdgeWidth, w.Height, edgeColor)
}

// drawCar draws a top-down car: body, windshield and four wheels that
// stick out past the body on both sides.
func drawCar(dst Surface, x, y, w, h float64, body color.Color) {
	dst.FillRect(x, y, w, h, body)
	dst.FillRect(x+5, y+5, w-10, 20, windowColor)

	const wheelW, wheelH = 10, 20
	dst.FillRect(x-5, y+15, wheelW, wheelH, wheelColor)
	dst.FillRect(x+w-5, y+15, wheelW, wheelH, wheelColor)
	dst.FillRect(x-5, y+h-35, wheelW, wheelH, wheelColor)
	dst.FillRect(x+w-5, y+h-35, wheelW, wheelH, wheelColor)
}
