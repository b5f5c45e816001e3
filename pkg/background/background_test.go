package background

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golangdaddy/roadracer/pkg/config"
)

func newTestGenerator() (*Generator, *rand.Rand) {
	return NewGenerator(config.Default()), rand.New(rand.NewSource(42))
}

func TestPopulateCounts(t *testing.T) {
	g, rng := newTestGenerator()
	var s Scenery
	g.Populate(&s, rng)

	if len(s.Trees) != 40 || len(s.Bushes) != 60 || len(s.Rocks) != 30 {
		t.Fatalf("counts = %d/%d/%d, expected 40/60/30", len(s.Trees), len(s.Bushes), len(s.Rocks))
	}

	// Populating again replaces rather than appends.
	g.Populate(&s, rng)
	if len(s.Trees) != 40 || len(s.Bushes) != 60 || len(s.Rocks) != 30 {
		t.Fatalf("counts after repopulate = %d/%d/%d", len(s.Trees), len(s.Bushes), len(s.Rocks))
	}
}

func TestPopulateStaysOffRoad(t *testing.T) {
	g, rng := newTestGenerator()
	var s Scenery
	g.Populate(&s, rng)

	for i, tr := range s.Trees {
		left := i%2 == 0
		checkVerge(t, "tree", tr.X, left, 30)
		if tr.Y < -150 || tr.Y >= 350 {
			t.Errorf("tree %d y = %g outside [-150, 350)", i, tr.Y)
		}
		if tr.Width < 20 || tr.Width >= 40 || tr.Height < 60 || tr.Height >= 100 {
			t.Errorf("tree %d size = %gx%g", i, tr.Width, tr.Height)
		}
		if tr.Speed < 1 || tr.Speed >= 1.5 {
			t.Errorf("tree %d speed = %g", i, tr.Speed)
		}
	}
	for i, b := range s.Bushes {
		checkVerge(t, "bush", b.X, i%2 == 0, 20)
		if b.Y < 0 || b.Y >= 500 {
			t.Errorf("bush %d y = %g outside [0, 500)", i, b.Y)
		}
		if b.Radius < 5 || b.Radius >= 20 {
			t.Errorf("bush %d radius = %g", i, b.Radius)
		}
	}
	for i, r := range s.Rocks {
		checkVerge(t, "rock", r.X, i%2 == 0, 15)
		if r.Radius < 3 || r.Radius >= 11 {
			t.Errorf("rock %d radius = %g", i, r.Radius)
		}
	}
}

func checkVerge(t *testing.T, kind string, x float64, left bool, margin float64) {
	t.Helper()
	if left {
		if x < 0 || x >= 200-margin {
			t.Errorf("left %s x = %g outside [0, %g)", kind, x, 200-margin)
		}
		return
	}
	if x < 600 || x >= 800-margin {
		t.Errorf("right %s x = %g outside [600, %g)", kind, x, 800-margin)
	}
}

func TestAdvanceAppliesDamping(t *testing.T) {
	g, rng := newTestGenerator()
	s := Scenery{
		Trees:  []Tree{{X: 10, Y: 0, Width: 20, Height: 60, Speed: 1}},
		Bushes: []Disc{{X: 10, Y: 0, Radius: 5, Speed: 1}},
		Rocks:  []Disc{{X: 10, Y: 0, Radius: 5, Speed: 1.2}},
	}

	g.Advance(&s, 5, rng)

	if got := s.Trees[0].Y; math.Abs(got-2) > 1e-9 {
		t.Errorf("tree y = %g, expected 2", got)
	}
	if got := s.Bushes[0].Y; math.Abs(got-3.5) > 1e-9 {
		t.Errorf("bush y = %g, expected 3.5", got)
	}
	if got := s.Rocks[0].Y; math.Abs(got-6) > 1e-9 {
		t.Errorf("rock y = %g, expected 6", got)
	}
}

func TestAdvanceAtRestMovesNothing(t *testing.T) {
	g, rng := newTestGenerator()
	var s Scenery
	g.Populate(&s, rng)
	trees := append([]Tree(nil), s.Trees...)

	g.Advance(&s, 0, rng)

	for i := range trees {
		if s.Trees[i] != trees[i] {
			t.Fatalf("tree %d moved at zero road speed", i)
		}
	}
}

func TestAdvanceRecyclesOnSameSide(t *testing.T) {
	g, rng := newTestGenerator()
	s := Scenery{
		Trees: []Tree{
			{X: 50, Y: 599, Width: 20, Height: 80, Speed: 1},
			{X: 700, Y: 599, Width: 20, Height: 80, Speed: 1},
		},
		Bushes: []Disc{
			{X: 50, Y: 549, Radius: 10, Speed: 1},
			{X: 700, Y: 549, Radius: 10, Speed: 1},
		},
		Rocks: []Disc{
			{X: 50, Y: 519, Radius: 5, Speed: 1},
			{X: 700, Y: 519, Radius: 5, Speed: 1},
		},
	}

	g.Advance(&s, 5, rng)

	for i, tr := range s.Trees {
		if tr.Y > -80 || tr.Y < -180 {
			t.Errorf("recycled tree %d y = %g outside [-180, -80]", i, tr.Y)
		}
		checkVerge(t, "tree", tr.X, i == 0, 30)
	}
	for i, b := range s.Bushes {
		if b.Y > -50 || b.Y < -100 {
			t.Errorf("recycled bush %d y = %g outside [-100, -50]", i, b.Y)
		}
		checkVerge(t, "bush", b.X, i == 0, 20)
	}
	for i, r := range s.Rocks {
		if r.Y > -20 || r.Y < -40 {
			t.Errorf("recycled rock %d y = %g outside [-40, -20]", i, r.Y)
		}
		checkVerge(t, "rock", r.X, i == 0, 15)
	}
	if len(s.Trees) != 2 || len(s.Bushes) != 2 || len(s.Rocks) != 2 {
		t.Error("recycling must keep the population constant")
	}
}

func TestHills(t *testing.T) {
	h := NewHills(config.Default().Hills)
	if h.Displacement(0) != 0 {
		t.Errorf("Displacement(0) = %g, expected 0", h.Displacement(0))
	}

	h.Advance()
	h.Advance()
	if h.Position != 1 {
		t.Errorf("Position = %g, expected 1", h.Position)
	}

	// sin(pi/2) peaks at the amplitude.
	h.Position = 0
	x := math.Pi / 2 / h.Frequency
	if got := h.Displacement(x); math.Abs(got-40) > 1e-9 {
		t.Errorf("Displacement(%g) = %g, expected 40", x, got)
	}
}
