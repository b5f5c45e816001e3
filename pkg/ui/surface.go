package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/roadracer/pkg/render"
)

var _ render.Surface = (*Surface)(nil)

// Surface draws render calls onto an ebiten image.
type Surface struct {
	dst  *ebiten.Image
	path vector.Path
}

// NewSurface creates a surface targeting dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// SetTarget points the surface at a new image, typically once per frame.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Clear() {
	s.dst.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// FillPolygon fills a closed outline.
func (s *Surface) FillPolygon(pts []render.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	s.path.Reset()
	s.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	s.path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(s.dst, &s.path, nil, op)
}
