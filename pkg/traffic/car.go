// Package traffic spawns the oncoming cars and moves them down the road.
package traffic

import (
	"image/color"

	"github.com/golangdaddy/roadracer/pkg/models"
)

// Car represents an enemy vehicle in one of the lanes.
type Car struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // own forward speed in pixels per frame
	Lane          int
	Color         color.RGBA
}

// Rect returns the car's bounding box.
func (c Car) Rect() models.Rect {
	return models.NewRect(c.X, c.Y, c.Width, c.Height)
}

// Outcome summarizes what happened to the traffic during one frame.
type Outcome struct {
	Passed   int  // cars that left the bottom of the screen
	Collided bool // a car hit the player
}

// Advance moves every car down by its own speed plus roadSpeed. Cars that
// drop below canvasHeight are retired and counted as passed; the rest are
// tested against player. The first collision stops processing for the frame.
// Retired cars are removed after the pass so no neighbour is skipped.
func Advance(cars []Car, roadSpeed, canvasHeight float64, player models.Rect) ([]Car, Outcome) {
	var out Outcome
	var retired []int

	for i := range cars {
		c := &cars[i]
		c.Y += c.Speed + roadSpeed
		if c.Y > canvasHeight {
			retired = append(retired, i)
			out.Passed++
			continue
		}
		if player.Intersects(c.Rect()) {
			out.Collided = true
			break
		}
	}

	if len(retired) == 0 {
		return cars, out
	}

	survivors := cars[:0]
	next := 0
	for i := range cars {
		if next < len(retired) && retired[next] == i {
			next++
			continue
		}
		survivors = append(survivors, cars[i])
	}
	return survivors, out
}
