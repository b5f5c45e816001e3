package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/roadracer/pkg/input"
	"github.com/golangdaddy/roadracer/pkg/render"
	"github.com/golangdaddy/roadracer/pkg/sim"
)

var (
	flagFrames    int
	flagRounds    int
	flagAutopilot bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive rounds headless and print a report",
	Long: `Run the game loop without a window. Each round lasts until the car
crashes or the frame limit is reached. Without --autopilot the driver just
holds the throttle down.

Examples:
  roadracer simulate
  roadracer simulate --autopilot --rounds 5 --seed 7
  roadracer simulate --frames 10000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Frame limit per round")
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", 1, "Number of rounds to drive")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer around traffic instead of only holding up")
}

// roundReport summarizes one headless round.
type roundReport struct {
	Round       int
	Frames      int
	Score       int
	Crashed     bool
	TopSpeed    float64
	PeakTraffic int
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	if flagFrames <= 0 || flagRounds <= 0 {
		return fmt.Errorf("frames and rounds must be positive, got %d and %d", flagFrames, flagRounds)
	}

	cfg, seed, err := loadConfig(logger)
	if err != nil {
		return err
	}
	s, r, err := newSimulation(cfg, seed)
	if err != nil {
		return err
	}
	loop := sim.NewLoop(s, r, sim.Hooks{}, logger)

	reports := make([]roundReport, 0, flagRounds)
	for i := 1; i <= flagRounds; i++ {
		rep, err := driveRound(loop, flagFrames, flagAutopilot)
		if err != nil {
			return err
		}
		rep.Round = i
		reports = append(reports, rep)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatReport(reports, seed, flagAutopilot))
	return nil
}

// driveRound starts a round and steps it until it ends or maxFrames pass.
func driveRound(loop *sim.Loop, maxFrames int, autopilot bool) (roundReport, error) {
	if !loop.Start() {
		return roundReport{}, fmt.Errorf("a round is already running")
	}
	w := loop.Simulation().World()

	var rep roundReport
	for loop.Phase() == sim.PhaseRunning && loop.Frames() < maxFrames {
		if autopilot {
			*loop.Keys() = sim.Autopilot(w)
		} else {
			loop.Keys().Set(input.KeyUp, true)
		}
		res, err := loop.Frame(render.Discard)
		if err != nil {
			return rep, err
		}
		rep.Crashed = res.Crashed
		rep.TopSpeed = max(rep.TopSpeed, w.PlayerSpeed)
		rep.PeakTraffic = max(rep.PeakTraffic, len(w.Enemies))
	}
	rep.Frames = loop.Frames()
	rep.Score = w.Score

	loop.Stop()
	return rep, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	crashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cleanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// formatReport renders the round reports as a boxed table.
func formatReport(reports []roundReport, seed int64, autopilot bool) string {
	driver := "throttle only"
	if autopilot {
		driver = "autopilot"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Road Racer simulation"))
	fmt.Fprintf(&b, "\nseed %d, %s\n\n", seed, driver)
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %8s %6s %9s %8s  %s", "Round", "Frames", "Score", "TopSpeed", "Traffic", "Result")))

	total := 0
	for _, r := range reports {
		result := cleanStyle.Render("finished")
		if r.Crashed {
			result = crashStyle.Render("crashed")
		}
		fmt.Fprintf(&b, "\n%-6d %8d %6d %9.2f %8d  %s", r.Round, r.Frames, r.Score, r.TopSpeed, r.PeakTraffic, result)
		total += r.Score
	}
	fmt.Fprintf(&b, "\n\ncars passed: %d", total)

	return boxStyle.Render(b.String())
}
