package sim

import (
	"math"

	"github.com/golangdaddy/roadracer/pkg/input"
	"github.com/golangdaddy/roadracer/pkg/world"
)

// Autopilot returns the keys a simple driver would hold: always on the
// throttle, steering into the lane whose nearest oncoming car is farthest
// away. Ties go to the lane closest to the player.
func Autopilot(w *world.World) input.KeyState {
	var keys input.KeyState
	keys.Set(input.KeyUp, true)

	p := w.Player
	rd := &w.Road

	best, bestGap, bestDist := 0, math.Inf(-1), math.Inf(1)
	for lane := 0; lane < rd.Lanes; lane++ {
		gap := math.Inf(1)
		for _, e := range w.Enemies {
			if e.Lane != lane || e.Y >= p.Y+p.Height {
				continue
			}
			gap = math.Min(gap, p.Y-(e.Y+e.Height))
		}
		dist := math.Abs(rd.LaneLeft(lane, p.Width) - p.X)
		if gap > bestGap || (gap == bestGap && dist < bestDist) {
			best, bestGap, bestDist = lane, gap, dist
		}
	}

	target := rd.LaneLeft(best, p.Width)
	switch {
	case p.X < target-p.LateralSpeed/2:
		keys.Set(input.KeyRight, true)
	case p.X > target+p.LateralSpeed/2:
		keys.Set(input.KeyLeft, true)
	}
	return keys
}
