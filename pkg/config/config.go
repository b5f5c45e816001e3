// Package config provides YAML-based configuration for the road racer.
// Every tunable of the simulation lives here; the defaults reproduce the
// classic arcade feel.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Config contains all configuration for a game.
type Config struct {
	Seed     int64          `yaml:"seed"` // 0 = seeded from the clock
	Canvas   CanvasConfig   `yaml:"canvas"`
	Player   PlayerConfig   `yaml:"player"`
	Road     RoadConfig     `yaml:"road"`
	Traffic  TrafficConfig  `yaml:"traffic"`
	Scenery  SceneryConfig  `yaml:"scenery"`
	Hills    HillsConfig    `yaml:"hills"`
	Backdrop BackdropConfig `yaml:"backdrop"`
}

// CanvasConfig defines the logical playfield size in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's car and its handling.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // distance from the canvas bottom to the car's top edge
	LateralSpeed float64 `yaml:"lateral_speed"` // pixels per frame while steering
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
}

// RoadConfig defines the road band and its center stripes.
type RoadConfig struct {
	Width        float64 `yaml:"width"`
	Lanes        int     `yaml:"lanes"`
	StripeWidth  float64 `yaml:"stripe_width"`
	StripeHeight float64 `yaml:"stripe_height"`
	StripeGap    float64 `yaml:"stripe_gap"`
	EdgeWidth    float64 `yaml:"edge_width"`
}

// TrafficConfig defines enemy spawning.
type TrafficConfig struct {
	SpawnInterval int      `yaml:"spawn_interval"` // frames between spawn attempts
	SpawnChance   float64  `yaml:"spawn_chance"`
	MaxEnemies    int      `yaml:"max_enemies"`
	SpawnY        float64  `yaml:"spawn_y"`
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	MinSpeed      float64  `yaml:"min_speed"`
	MaxSpeed      float64  `yaml:"max_speed"`
	Palette       []string `yaml:"palette"`
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Span returns the width of the interval.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// SceneryCategory defines one kind of roadside scenery.
type SceneryCategory struct {
	Pairs          int     `yaml:"pairs"`            // elements per verge
	Size           Range   `yaml:"size"`             // width for trees, radius otherwise
	Height         Range   `yaml:"height,omitempty"` // trees only
	Speed          Range   `yaml:"speed"`            // individual scroll multiplier
	InitialYOffset float64 `yaml:"initial_y_offset"`
	EdgeMargin     float64 `yaml:"edge_margin"`
	RecycleMargin  float64 `yaml:"recycle_margin"`
	Damping        float64 `yaml:"damping"`
}

// SceneryConfig groups the scenery categories.
type SceneryConfig struct {
	Trees  SceneryCategory `yaml:"trees"`
	Bushes SceneryCategory `yaml:"bushes"`
	Rocks  SceneryCategory `yaml:"rocks"`
}

// HillsConfig defines the horizon silhouette.
type HillsConfig struct {
	Speed      float64 `yaml:"speed"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	SampleStep float64 `yaml:"sample_step"`
}

// MountainLayer is one band of the horizon, drawn back to front.
type MountainLayer struct {
	Color  string  `yaml:"color"`
	Height float64 `yaml:"height"`
}

// BackdropConfig defines sky, ground and mountain colors.
type BackdropConfig struct {
	Sky       string          `yaml:"sky"`
	Ground    string          `yaml:"ground"`
	Mountains []MountainLayer `yaml:"mountains"`
}

// ParseColor parses a "#rrggbb" string into an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParsePalette parses every color in the list.
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	palette := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// RoadLeftEdge returns the x coordinate of the road's left edge.
func (c Config) RoadLeftEdge() float64 {
	return (c.Canvas.Width - c.Road.Width) / 2
}

// RoadRightEdge returns the x coordinate of the road's right edge.
func (c Config) RoadRightEdge() float64 {
	return (c.Canvas.Width + c.Road.Width) / 2
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas: size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.Width <= c.Road.Width, "player: width %g wider than road %g", c.Player.Width, c.Road.Width)
	check(c.Player.BottomOffset >= c.Player.Height, "player: bottom_offset %g must leave room for height %g", c.Player.BottomOffset, c.Player.Height)
	check(c.Player.LateralSpeed >= 0, "player: lateral_speed must not be negative")
	check(c.Player.MaxSpeed > 0, "player: max_speed must be positive")
	check(c.Player.Acceleration > 0, "player: acceleration must be positive")
	check(c.Player.Deceleration > 0, "player: deceleration must be positive")

	check(c.Road.Width > 0 && c.Road.Width <= c.Canvas.Width, "road: width %g must fit canvas width %g", c.Road.Width, c.Canvas.Width)
	check(c.Road.Lanes >= 1, "road: need at least one lane, got %d", c.Road.Lanes)
	check(c.Road.StripeHeight > 0, "road: stripe_height must be positive")
	check(c.Road.StripeGap >= 0, "road: stripe_gap must not be negative")

	check(c.Traffic.SpawnInterval >= 0, "traffic: spawn_interval must not be negative")
	check(c.Traffic.SpawnChance >= 0 && c.Traffic.SpawnChance <= 1, "traffic: spawn_chance %g outside [0,1]", c.Traffic.SpawnChance)
	check(c.Traffic.MaxEnemies >= 0, "traffic: max_enemies must not be negative")
	check(c.Traffic.MinSpeed <= c.Traffic.MaxSpeed, "traffic: min_speed %g above max_speed %g", c.Traffic.MinSpeed, c.Traffic.MaxSpeed)
	check(c.Traffic.Width > 0 && c.Traffic.Height > 0, "traffic: enemy size must be positive")
	check(len(c.Traffic.Palette) > 0, "traffic: palette is empty")
	if _, err := ParsePalette(c.Traffic.Palette); err != nil {
		errs = append(errs, fmt.Errorf("traffic: %w", err))
	}
	if c.Road.Lanes >= 1 {
		check(c.Traffic.Width <= c.Road.Width/float64(c.Road.Lanes), "traffic: enemy width %g wider than a lane", c.Traffic.Width)
	}

	verge := c.RoadLeftEdge()
	categories := []struct {
		name string
		cat  SceneryCategory
	}{
		{"trees", c.Scenery.Trees},
		{"bushes", c.Scenery.Bushes},
		{"rocks", c.Scenery.Rocks},
	}
	for _, sc := range categories {
		name, cat := sc.name, sc.cat
		check(cat.Pairs >= 0, "scenery.%s: pairs must not be negative", name)
		check(cat.Size.Min <= cat.Size.Max, "scenery.%s: size range inverted", name)
		check(cat.Speed.Min <= cat.Speed.Max, "scenery.%s: speed range inverted", name)
		check(cat.EdgeMargin >= 0 && cat.EdgeMargin <= verge, "scenery.%s: edge_margin %g does not fit verge %g", name, cat.EdgeMargin, verge)
		check(cat.RecycleMargin >= 0, "scenery.%s: recycle_margin must not be negative", name)
		check(cat.Damping >= 0, "scenery.%s: damping must not be negative", name)
	}
	check(c.Scenery.Trees.Height.Min <= c.Scenery.Trees.Height.Max, "scenery.trees: height range inverted")

	check(c.Hills.SampleStep > 0, "hills: sample_step must be positive")

	for i, m := range c.Backdrop.Mountains {
		if _, err := ParseColor(m.Color); err != nil {
			errs = append(errs, fmt.Errorf("backdrop.mountains[%d]: %w", i, err))
		}
	}
	if _, err := ParseColor(c.Backdrop.Sky); err != nil {
		errs = append(errs, fmt.Errorf("backdrop.sky: %w", err))
	}
	if _, err := ParseColor(c.Backdrop.Ground); err != nil {
		errs = append(errs, fmt.Errorf("backdrop.ground: %w", err))
	}

	return errors.Join(errs...)
}
