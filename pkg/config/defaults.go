package config

import (
	_ "embed"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Parallax damping per scenery category. Farther-feeling elements scroll slower.
const (
	TreeDamping = 0.4
	BushDamping = 0.7
	RockDamping = 1.0
)

// Button labels for the start control.
const (
	LabelStart   = "Start Game"
	LabelRestart = "Restart Game"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: 0,
		Canvas: CanvasConfig{
			Width:  800,
			Height: 500,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       80,
			BottomOffset: 100,
			LateralSpeed: 10,
			MaxSpeed:     5,
			Acceleration: 0.1,
			Deceleration: 0.05,
		},
		Road: RoadConfig{
			Width:        400,
			Lanes:        3,
			StripeWidth:  15,
			StripeHeight: 50,
			StripeGap:    40,
			EdgeWidth:    5,
		},
		Traffic: TrafficConfig{
			SpawnInterval: 100,
			SpawnChance:   0.5,
			MaxEnemies:    10,
			SpawnY:        -100,
			Width:         50,
			Height:        80,
			MinSpeed:      1,
			MaxSpeed:      3,
			Palette:       []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff"},
		},
		Scenery: SceneryConfig{
			Trees: SceneryCategory{
				Pairs:          20,
				Size:           Range{Min: 20, Max: 40},
				Height:         Range{Min: 60, Max: 100},
				Speed:          Range{Min: 1, Max: 1.5},
				InitialYOffset: -150,
				EdgeMargin:     30,
				RecycleMargin:  100,
				Damping:        TreeDamping,
			},
			Bushes: SceneryCategory{
				Pairs:         30,
				Size:          Range{Min: 5, Max: 20},
				Speed:         Range{Min: 1, Max: 1.5},
				EdgeMargin:    20,
				RecycleMargin: 50,
				Damping:       BushDamping,
			},
			Rocks: SceneryCategory{
				Pairs:         15,
				Size:          Range{Min: 3, Max: 11},
				Speed:         Range{Min: 1, Max: 1.5},
				EdgeMargin:    15,
				RecycleMargin: 20,
				Damping:       RockDamping,
			},
		},
		Hills: HillsConfig{
			Speed:      0.5,
			Amplitude:  40,
			Frequency:  0.01,
			SampleStep: 20,
		},
		Backdrop: BackdropConfig{
			Sky:    "#87ceeb",
			Ground: "#8b4513",
			Mountains: []MountainLayer{
				{Color: "#6b8e23", Height: 60},
				{Color: "#556b2f", Height: 80},
				{Color: "#2f4f4f", Height: 100},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
