package main

import (
	"strings"
	"testing"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/sim"
)

func newTestLoop(t *testing.T, seed int64) *sim.Loop {
	t.Helper()
	s, r, err := newSimulation(config.Default(), seed)
	if err != nil {
		t.Fatalf("newSimulation() failed: %v", err)
	}
	return sim.NewLoop(s, r, sim.Hooks{}, nil)
}

func TestDriveRoundRespectsFrameLimit(t *testing.T) {
	loop := newTestLoop(t, 42)

	rep, err := driveRound(loop, 50, true)
	if err != nil {
		t.Fatalf("driveRound() failed: %v", err)
	}

	// Nothing can spawn before frame 101, so the round runs to the limit.
	if rep.Frames != 50 || rep.Crashed {
		t.Errorf("report = %+v, expected 50 clean frames", rep)
	}
	if rep.TopSpeed <= 0 || rep.TopSpeed > 5 {
		t.Errorf("TopSpeed = %g", rep.TopSpeed)
	}
	if loop.Phase() != sim.PhaseIdle {
		t.Errorf("phase = %s after the round, expected idle", loop.Phase())
	}
}

func TestDriveRoundBackToBack(t *testing.T) {
	loop := newTestLoop(t, 7)

	for i := 0; i < 3; i++ {
		rep, err := driveRound(loop, 400, false)
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		if rep.Frames == 0 || rep.Frames > 400 {
			t.Errorf("round %d: frames = %d", i, rep.Frames)
		}
		if !rep.Crashed && rep.Frames != 400 {
			t.Errorf("round %d ended early without a crash: %+v", i, rep)
		}
		if rep.PeakTraffic > 10 {
			t.Errorf("round %d: peak traffic %d above the cap", i, rep.PeakTraffic)
		}
	}
}

func TestDriveRoundIsReproducible(t *testing.T) {
	a, err := driveRound(newTestLoop(t, 99), 2000, true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := driveRound(newTestLoop(t, 99), 2000, true)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("equal seeds diverged: %+v vs %+v", a, b)
	}
}

func TestFormatReport(t *testing.T) {
	out := formatReport([]roundReport{
		{Round: 1, Frames: 3600, Score: 12, TopSpeed: 5},
		{Round: 2, Frames: 811, Score: 3, Crashed: true, TopSpeed: 5, PeakTraffic: 4},
	}, 42, true)

	for _, want := range []string{"Road Racer simulation", "seed 42", "autopilot", "finished", "crashed", "cars passed: 15"} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := newLogger("chatty"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
	if _, err := newLogger("debug"); err != nil {
		t.Errorf("newLogger(debug) failed: %v", err)
	}
}
