package main

import (
	"github.com/spf13/cobra"

	"github.com/golangdaddy/roadracer/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after applying the search
order: --config, ~/.roadracer/config.yaml, ./configs/roadracer.yaml, then the
built-in defaults. The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
