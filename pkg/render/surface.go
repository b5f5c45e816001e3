// Package render draws the world onto an abstract drawing surface. The
// surface is implemented by the ebiten window and by in-memory recorders.
package render

import "image/color"

// Point is a vertex of a polygon.
type Point struct {
	X, Y float64
}

// Surface is a 2D canvas that can fill basic shapes.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillPolygon(pts []Point, c color.Color)
}

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpPolygon
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpPolygon:
		return "polygon"
	}
	return "unknown"
}

// Op is one recorded drawing call. Rects use X, Y, W, H; circles use X, Y
// as the center and R; polygons use Points.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	R          float64
	Points     []Point
	Color      color.Color
}

// Recorder is a Surface that remembers every call in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) FillPolygon(pts []Point, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: append([]Point(nil), pts...), Color: c})
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many recorded calls have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Discard is a Surface that draws nothing. Headless runs render into it.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                      {}
func (discard) FillRect(x, y, w, h float64, c color.Color)  {}
func (discard) FillCircle(cx, cy, r float64, c color.Color) {}
func (discard) FillPolygon(pts []Point, c color.Color)      {}
