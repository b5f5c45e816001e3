package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/golangdaddy/roadracer/pkg/config"
	"github.com/golangdaddy/roadracer/pkg/input"
	"github.com/golangdaddy/roadracer/pkg/render"
)

// Phase is the state of the loop driver.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// ScoreDisplay shows the current score.
type ScoreDisplay interface {
	ShowScore(score int)
}

// StartControl is the start/restart button.
type StartControl interface {
	SetLabel(label string)
}

// RoundNotifier is told when a round ends.
type RoundNotifier interface {
	RoundOver(score int)
}

// Hooks are the loop's outer collaborators. Nil hooks are skipped.
type Hooks struct {
	Score    ScoreDisplay
	Control  StartControl
	Notifier RoundNotifier
}

// Loop drives rounds once per host refresh. The host calls Render and Step
// every refresh (or Frame, which does both); a step only happens while a
// frame has been requested, and the next frame is requested only while the
// world is still running.
type Loop struct {
	sim       *Simulation
	renderer  *render.Renderer
	hooks     Hooks
	logger    *log.Logger
	keys      input.KeyState
	phase     Phase
	scheduled bool
	frames    int
}

// NewLoop creates a loop in the idle phase and labels the start control.
// A nil logger discards output.
func NewLoop(s *Simulation, r *render.Renderer, hooks Hooks, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loop{
		sim:      s,
		renderer: r,
		hooks:    hooks,
		logger:   logger,
	}
	if l.hooks.Control != nil {
		l.hooks.Control.SetLabel(config.LabelStart)
	}
	return l
}

// Keys returns the key table the host writes into between frames.
func (l *Loop) Keys() *input.KeyState {
	return &l.keys
}

// Simulation returns the driven simulation.
func (l *Loop) Simulation() *Simulation {
	return l.sim
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Scheduled reports whether a frame has been requested.
func (l *Loop) Scheduled() bool {
	return l.scheduled
}

// Frames returns the number of steps taken in the current round.
func (l *Loop) Frames() int {
	return l.frames
}

// Start begins a new round. It is ignored while a round is running and
// reports whether a round was started.
func (l *Loop) Start() bool {
	w := l.sim.World()
	if w.Running {
		return false
	}

	l.sim.Reset()
	w.Running = true
	l.phase = PhaseRunning
	l.frames = 0
	l.scheduled = true

	if l.hooks.Score != nil {
		l.hooks.Score.ShowScore(0)
	}
	if l.hooks.Control != nil {
		l.hooks.Control.SetLabel(config.LabelRestart)
	}
	l.logger.Info("round started")
	return true
}

// Stop abandons the running round without reporting it as lost.
func (l *Loop) Stop() {
	w := l.sim.World()
	if !w.Running {
		return
	}
	w.Running = false
	l.scheduled = false
	l.phase = PhaseIdle
	l.logger.Info("round stopped", "score", w.Score, "frames", l.frames)
}

// Render draws the current world. It may be called in any phase.
func (l *Loop) Render(dst render.Surface) error {
	return l.renderer.Draw(dst, l.sim.World())
}

// Step runs one requested frame of simulation. Without a pending request it
// does nothing.
func (l *Loop) Step() FrameResult {
	if !l.scheduled {
		return FrameResult{}
	}
	l.scheduled = false

	w := l.sim.World()
	res := l.sim.Update(l.keys)
	l.frames++

	if res.Passed > 0 {
		if l.hooks.Score != nil {
			l.hooks.Score.ShowScore(w.Score)
		}
		l.logger.Debug("cars passed", "count", res.Passed, "score", w.Score)
	}

	if w.Running {
		l.scheduled = true
		return res
	}

	l.phase = PhaseGameOver
	if l.hooks.Control != nil {
		l.hooks.Control.SetLabel(config.LabelRestart)
	}
	l.logger.Info("round over", "score", w.Score, "frames", l.frames)
	if l.hooks.Notifier != nil {
		l.hooks.Notifier.RoundOver(w.Score)
	}
	return res
}

// Update is the per-tick entry for hosts that draw after updating. A start
// request begins a round and holds back the first step, so the reset world
// is drawn before it is updated. It reports whether a round was started.
func (l *Loop) Update(startPressed bool) (FrameResult, bool) {
	if startPressed && l.Start() {
		return FrameResult{}, true
	}
	return l.Step(), false
}

// Frame renders and then steps, for hosts with a single refresh callback.
func (l *Loop) Frame(dst render.Surface) (FrameResult, error) {
	if err := l.Render(dst); err != nil {
		return FrameResult{}, err
	}
	return l.Step(), nil
}
