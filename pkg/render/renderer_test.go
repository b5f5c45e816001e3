package render

import (
	"image/color"
	"math/rand"
	"reflect"
	"testing"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/traffic"
	"github.com/golangdaddy/roadracer/pkg/world"
)

func newTestScene(t *testing.T) (*Renderer, *world.World) {
	t.Helper()
	cfg := config.Default()
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	w := world.New(cfg, rand.New(rand.NewSource(5)))
	w.Enemies = append(w.Enemies,
		traffic.Car{X: 220, Y: 40, Width: 50, Height: 80, Color: color.RGBA{R: 0xff, A: 0xff}},
		traffic.Car{X: 520, Y: 240, Width: 50, Height: 80, Color: color.RGBA{G: 0xff, A: 0xff}},
	)
	return r, w
}

func TestNewRejectsBadBackdrop(t *testing.T) {
	cfg := config.Default()
	cfg.Backdrop.Mountains[1].Color = "green"
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject an unparsable mountain color")
	}
}

func TestDrawNilSurface(t *testing.T) {
	r, w := newTestScene(t)
	if err := r.Draw(nil, w); err != ErrNilSurface {
		t.Errorf("Draw(nil) = %v, expected ErrNilSurface", err)
	}
}

func TestDrawLayerOrder(t *testing.T) {
	r, w := newTestScene(t)
	var rec Recorder
	if err := r.Draw(&rec, w); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	trees, bushes, rocks := len(w.Scenery.Trees), len(w.Scenery.Bushes), len(w.Scenery.Rocks)
	backdrop := 1 + 3 + 1
	scenery := trees*3 + bushes*2 + rocks*2
	roadOps := 1 + len(w.Road.Stripes) + 2
	cars := 6 * (1 + len(w.Enemies))

	want := 1 + backdrop + scenery + roadOps + cars
	if len(rec.Ops) != want {
		t.Fatalf("recorded %d ops, expected %d", len(rec.Ops), want)
	}

	ops := rec.Ops
	if ops[0].Kind != OpClear {
		t.Fatalf("first op = %s, expected clear", ops[0].Kind)
	}
	if ops[1].Kind != OpRect || ops[1].H != 250 || ops[1].Color != (color.RGBA{0x87, 0xce, 0xeb, 0xff}) {
		t.Errorf("sky op = %+v", ops[1])
	}
	for i := 2; i < 5; i++ {
		if ops[i].Kind != OpPolygon {
			t.Errorf("op %d = %s, expected mountain polygon", i, ops[i].Kind)
		}
	}
	if ops[5].Kind != OpRect || ops[5].Y != 250 || ops[5].Color != (color.RGBA{0x8b, 0x45, 0x13, 0xff}) {
		t.Errorf("ground op = %+v", ops[5])
	}

	roadStart := 1 + backdrop + scenery
	road := ops[roadStart]
	if road.X != 200 || road.W != 400 || road.H != 500 || road.Color != asphaltColor {
		t.Errorf("road bed op = %+v", road)
	}
	edges := ops[roadStart+1+len(w.Road.Stripes):]
	if edges[0].X != 195 || edges[0].W != 5 || edges[1].X != 600 || edges[0].Color != edgeColor {
		t.Errorf("edge bands = %+v, %+v", edges[0], edges[1])
	}

	player := ops[roadStart+roadOps]
	if player.X != w.Player.X || player.Y != w.Player.Y || player.Color != playerColor {
		t.Errorf("player body op = %+v", player)
	}
	last := ops[len(ops)-6]
	if last.Color != w.Enemies[1].Color || last.X != 520 {
		t.Errorf("last enemy body op = %+v", last)
	}
}

func TestDrawCarSilhouette(t *testing.T) {
	var rec Recorder
	drawCar(&rec, 100, 100, 50, 80, playerColor)

	want := []Op{
		{Kind: OpRect, X: 100, Y: 100, W: 50, H: 80, Color: playerColor},
		{Kind: OpRect, X: 105, Y: 105, W: 40, H: 20, Color: windowColor},
		{Kind: OpRect, X: 95, Y: 115, W: 10, H: 20, Color: wheelColor},
		{Kind: OpRect, X: 145, Y: 115, W: 10, H: 20, Color: wheelColor},
		{Kind: OpRect, X: 95, Y: 145, W: 10, H: 20, Color: wheelColor},
		{Kind: OpRect, X: 145, Y: 145, W: 10, H: 20, Color: wheelColor},
	}
	if !reflect.DeepEqual(rec.Ops, want) {
		t.Errorf("car ops = %+v", rec.Ops)
	}
}

func TestMountainOutline(t *testing.T) {
	_, w := newTestScene(t)

	pts := MountainOutline(nil, w, 60, 20)

	// horizon start, 40 samples, horizon end
	if len(pts) != 42 {
		t.Fatalf("len(pts) = %d, expected 42", len(pts))
	}
	if pts[0] != (Point{0, 250}) || pts[41] != (Point{800, 250}) {
		t.Errorf("outline not closed on the horizon: %v ... %v", pts[0], pts[41])
	}
	if pts[1] != (Point{0, 190}) {
		t.Errorf("first sample = %v, expected {0 190}", pts[1])
	}
	if pts[40].X != 780 {
		t.Errorf("last sample x = %g, expected 780", pts[40].X)
	}

	w.Hills.Position = 100
	moved := MountainOutline(nil, w, 60, 20)
	if moved[1] == pts[1] {
		t.Error("hill offset should shift the ridge")
	}
}

func TestDrawDoesNotMutateWorld(t *testing.T) {
	r, w := newTestScene(t)
	before := *w
	before.Enemies = append([]traffic.Car(nil), w.Enemies...)
	trees := append(w.Scenery.Trees[:0:0], w.Scenery.Trees...)
	stripes := append(w.Road.Stripes[:0:0], w.Road.Stripes...)

	if err := r.Draw(Discard, w); err != nil {
		t.Fatal(err)
	}
	var rec Recorder
	if err := r.Draw(&rec, w); err != nil {
		t.Fatal(err)
	}

	if w.Player != before.Player || w.Score != before.Score || w.Hills != before.Hills {
		t.Error("Draw changed the player, score or hills")
	}
	if !reflect.DeepEqual(w.Enemies, before.Enemies) {
		t.Error("Draw changed the enemies")
	}
	if !reflect.DeepEqual(w.Scenery.Trees, trees) || !reflect.DeepEqual(w.Road.Stripes, stripes) {
		t.Error("Draw changed the scenery or stripes")
	}
}

func TestRecorderCount(t *testing.T) {
	var rec Recorder
	rec.Clear()
	rec.FillCircle(1, 1, 1, color.Black)
	rec.FillCircle(2, 2, 1, color.Black)
	if rec.Count(OpCircle) != 2 || rec.Count(OpRect) != 0 {
		t.Errorf("Count() = %d circles, %d rects", rec.Count(OpCircle), rec.Count(OpRect))
	}
	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Error("Reset() should drop the recorded ops")
	}
}
