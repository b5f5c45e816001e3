// Package background holds the roadside scenery and the rolling hills of
// the horizon.
package background

import (
	"math/rand"

	"github.com/golangdaddy/roadracer/pkg/config"
)

// Tree represents a roadside tree. Y is the top of the trunk.
type Tree struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // individual scroll multiplier
}

// Disc represents a round scenery element: a bush or a rock.
type Disc struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// Scenery is the full roadside population. Its size never changes during a
// round; elements that scroll away are recycled above the screen.
type Scenery struct {
	Trees  []Tree
	Bushes []Disc
	Rocks  []Disc
}

// Generator places and recycles scenery on the verges either side of the road.
type Generator struct {
	Width     float64
	Height    float64
	LeftEdge  float64
	RightEdge float64
	cfg       config.SceneryConfig
}

// NewGenerator creates a scenery generator for the configured canvas and road.
func NewGenerator(cfg config.Config) *Generator {
	return &Generator{
		Width:     cfg.Canvas.Width,
		Height:    cfg.Canvas.Height,
		LeftEdge:  cfg.RoadLeftEdge(),
		RightEdge: cfg.RoadRightEdge(),
		cfg:       cfg.Scenery,
	}
}

// Populate discards s's elements and scatters a fresh set. Each pair puts
// one element on the left verge and one on the right.
func (g *Generator) Populate(s *Scenery, rng *rand.Rand) {
	s.Trees = s.Trees[:0]
	s.Bushes = s.Bushes[:0]
	s.Rocks = s.Rocks[:0]

	trees := g.cfg.Trees
	for i := 0; i < trees.Pairs; i++ {
		for _, left := range []bool{true, false} {
			s.Trees = append(s.Trees, Tree{
				X:      g.vergeX(trees, left, rng),
				Y:      rng.Float64()*g.Height + trees.InitialYOffset,
				Width:  trees.Size.Min + rng.Float64()*trees.Size.Span(),
				Height: trees.Height.Min + rng.Float64()*trees.Height.Span(),
				Speed:  trees.Speed.Min + rng.Float64()*trees.Speed.Span(),
			})
		}
	}
	s.Bushes = g.scatter(s.Bushes, g.cfg.Bushes, rng)
	s.Rocks = g.scatter(s.Rocks, g.cfg.Rocks, rng)
}

func (g *Generator) scatter(dst []Disc, cat config.SceneryCategory, rng *rand.Rand) []Disc {
	for i := 0; i < cat.Pairs; i++ {
		for _, left := range []bool{true, false} {
			dst = append(dst, Disc{
				X:      g.vergeX(cat, left, rng),
				Y:      rng.Float64()*g.Height + cat.InitialYOffset,
				Radius: cat.Size.Min + rng.Float64()*cat.Size.Span(),
				Speed:  cat.Speed.Min + rng.Float64()*cat.Speed.Span(),
			})
		}
	}
	return dst
}

// Advance scrolls every element at roadSpeed scaled by its own multiplier and
// its category damping. Elements past the bottom margin are moved back above
// the top on the verge they currently occupy.
func (g *Generator) Advance(s *Scenery, roadSpeed float64, rng *rand.Rand) {
	trees := g.cfg.Trees
	for i := range s.Trees {
		t := &s.Trees[i]
		t.Y += roadSpeed * t.Speed * trees.Damping
		if t.Y > g.Height+trees.RecycleMargin {
			t.Y = -t.Height - rng.Float64()*trees.RecycleMargin
			t.X = g.vergeX(trees, t.X < g.LeftEdge, rng)
		}
	}
	g.advanceDiscs(s.Bushes, g.cfg.Bushes, roadSpeed, rng)
	g.advanceDiscs(s.Rocks, g.cfg.Rocks, roadSpeed, rng)
}

func (g *Generator) advanceDiscs(discs []Disc, cat config.SceneryCategory, roadSpeed float64, rng *rand.Rand) {
	for i := range discs {
		d := &discs[i]
		d.Y += roadSpeed * d.Speed * cat.Damping
		if d.Y > g.Height+cat.RecycleMargin {
			d.Y = -cat.RecycleMargin - rng.Float64()*cat.RecycleMargin
			d.X = g.vergeX(cat, d.X < g.LeftEdge, rng)
		}
	}
}

// vergeX picks a random x on one verge, keeping cat.EdgeMargin clear of the
// road on the left and of the canvas edge on the right.
func (g *Generator) vergeX(cat config.SceneryCategory, left bool, rng *rand.Rand) float64 {
	if left {
		return rng.Float64() * (g.LeftEdge - cat.EdgeMargin)
	}
	return g.RightEdge + rng.Float64()*(g.Width-g.RightEdge-cat.EdgeMargin)
}
