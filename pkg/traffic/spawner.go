package traffic

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/road"
)

// Spawner drops new cars into random lanes on a fixed timer.
type Spawner struct {
	cfg     config.TrafficConfig
	road    road.Road
	palette []color.RGBA
	timer   int
}

// NewSpawner creates a spawner for the given road.
func NewSpawner(cfg config.TrafficConfig, r road.Road) (*Spawner, error) {
	palette, err := config.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("traffic palette: %w", err)
	}
	if len(palette) == 0 {
		return nil, errors.New("traffic palette is empty")
	}
	return &Spawner{
		cfg:     cfg,
		road:    r,
		palette: palette,
	}, nil
}

// Tick advances the spawn timer by one frame. Once the timer passes the
// configured interval it makes one spawn attempt and starts over.
func (s *Spawner) Tick(cars []Car, rng *rand.Rand) []Car {
	s.timer++
	if s.timer > s.cfg.SpawnInterval {
		cars = s.TrySpawn(cars, rng)
		s.timer = 0
	}
	return cars
}

// TrySpawn adds a car with probability SpawnChance while fewer than
// MaxEnemies are on the road. The chance is drawn on every attempt.
func (s *Spawner) TrySpawn(cars []Car, rng *rand.Rand) []Car {
	if rng.Float64() >= s.cfg.SpawnChance || len(cars) >= s.cfg.MaxEnemies {
		return cars
	}

	lane := rng.Intn(s.road.Lanes)
	return append(cars, Car{
		X:      s.road.LaneLeft(lane, s.cfg.Width),
		Y:      s.cfg.SpawnY,
		Width:  s.cfg.Width,
		Height: s.cfg.Height,
		Speed:  s.cfg.MinSpeed + rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed),
		Lane:   lane,
		Color:  s.palette[rng.Intn(len(s.palette))],
	})
}

// Reset restarts the spawn timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the frames counted since the last attempt.
func (s *Spawner) Timer() int {
	return s.timer
}
