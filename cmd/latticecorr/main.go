// Package main implements the latticecorr CLI for time-step correlation heatmaps.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/latticecorr/config"
	"github.com/sartorproj/latticecorr/logging"
)

var version = "dev"

// globalOptions holds the persistent flag values.
type globalOptions struct {
	configPath string
	file       string
	rowLabel   string
	colLabel   string
	maxTime    int
	capLength  int
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "latticecorr",
		Short: "Time-step correlation heatmaps for lattice QCD correlators",
		Long: `latticecorr parses a labeled .gpl correlator file, groups each label's
samples by time step, and correlates the time steps of two labels.

Examples:
  # Heatmap of the default 2pt/3pt pair
  latticecorr heatmap --file 2pt-3pt-qsqmax-scalar.gpl

  # Choose the pair and print to the terminal as well
  latticecorr heatmap --row 2pt_D_gold_msml5_fine.ll \
    --col localtempvec_pmax_3pt_T16_msml5_fine.ll --terminal`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.file, "file", "", "input .gpl file")
	pf.StringVar(&opts.rowLabel, "row", "", "label for the heatmap rows")
	pf.StringVar(&opts.colLabel, "col", "", "label for the heatmap columns")
	pf.IntVar(&opts.maxTime, "max-time", 0, "time steps per axis (0 infers from data)")
	pf.IntVar(&opts.capLength, "cap", 0, "samples used per time step")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format (json, console)")

	root.AddCommand(newHeatmapCmd(opts))
	root.AddCommand(newMatrixCmd(opts))
	root.AddCommand(newLabelsCmd(opts))
	root.AddCommand(newSummaryCmd(opts))

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, opts *globalOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Data.File = opts.file
	}
	if flags.Changed("row") {
		cfg.Analysis.RowLabel = opts.rowLabel
	}
	if flags.Changed("col") {
		cfg.Analysis.ColLabel = opts.colLabel
	}
	if flags.Changed("max-time") {
		cfg.Analysis.MaxTime = opts.maxTime
	}
	if flags.Changed("cap") {
		cfg.Analysis.CapLength = opts.capLength
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))

	return cfg, logger, nil
}
