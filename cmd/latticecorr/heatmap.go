package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/latticecorr/analysis"
	"github.com/sartorproj/latticecorr/heatmap"
	"github.com/sartorproj/latticecorr/logging"
)

func newHeatmapCmd(opts *globalOptions) *cobra.Command {
	var (
		output     string
		terminal   bool
		fixedScale bool
		cellSize   int
	)

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Correlate two labels and write a heatmap PNG",
		Long: `Correlate the time steps of the row and column labels, print the matrix,
and write it as a PNG heatmap.

Examples:
  latticecorr heatmap --file run.gpl --output corr.png
  latticecorr heatmap --terminal --fixed-scale`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			if cmd.Flags().Changed("output") {
				cfg.Output.Path = output
			}
			if cmd.Flags().Changed("terminal") {
				cfg.Output.Terminal = terminal
			}
			if cmd.Flags().Changed("fixed-scale") {
				cfg.Output.FixedScale = fixedScale
			}
			if cmd.Flags().Changed("cell-size") {
				cfg.Output.CellSize = cellSize
			}

			res, err := analysis.New(logger).Run(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Time-Step Correlation Matrix:")
			fmt.Fprintln(out, res.Matrix.Format())

			hopts := &heatmap.Options{CellSize: cfg.Output.CellSize, FixedScale: cfg.Output.FixedScale}
			if cfg.Output.Terminal {
				fmt.Fprintln(out)
				fmt.Fprint(out, heatmap.RenderTerminal(res.Matrix, hopts))
			}

			if cfg.Output.Path == "" {
				return nil
			}
			f, err := os.Create(cfg.Output.Path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", cfg.Output.Path, err)
			}
			if err := heatmap.RenderPNG(f, res.Matrix, hopts); err != nil {
				f.Close()
				return fmt.Errorf("failed to render heatmap: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfg.Output.Path, err)
			}

			logger.Info("heatmap written", zap.String("path", cfg.Output.Path))
			fmt.Fprintf(out, "Heatmap written to %s\n", cfg.Output.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG output path (empty disables)")
	cmd.Flags().BoolVar(&terminal, "terminal", false, "also print a terminal heatmap")
	cmd.Flags().BoolVar(&fixedScale, "fixed-scale", false, "colour scale over [-1, 1]")
	cmd.Flags().IntVar(&cellSize, "cell-size", 0, "PNG cell size in pixels")

	return cmd
}

func newMatrixCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the correlation matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			res, err := analysis.New(logger).Run(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, heatmap.Title(res.Matrix.RowLabel(), res.Matrix.ColLabel()))
			fmt.Fprintln(out, res.Matrix.Format())
			return nil
		},
	}
}
