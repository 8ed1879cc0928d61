package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sartorproj/latticecorr/analysis"
	"github.com/sartorproj/latticecorr/heatmap"
	"github.com/sartorproj/latticecorr/logging"
	"github.com/sartorproj/latticecorr/timeslice"
)

const (
	sparkWidth  = 32
	sparkHeight = 4
)

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <label>",
		Short: "Show per-time-step statistics for a label",
		Long: `Show sample count, mean, standard error and range at each time step of a
label, followed by a sparkline of the mean.

Max time defaults to the label's longest sample when --max-time is 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			coll, err := analysis.New(logger).Load(cfg)
			if err != nil {
				return err
			}

			label := args[0]
			maxTime := cfg.Analysis.MaxTime
			if maxTime == 0 {
				maxTime = coll.MaxLen(label)
			}
			ts, err := timeslice.Transpose(coll, label, maxTime)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d samples)\n\n", label, coll.Count(label))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "T\tN\tMEAN\tSTDERR\tMIN\tMAX")
			for _, s := range ts.Summaries() {
				fmt.Fprintf(w, "%d\t%d\t%.6g\t%.3g\t%.6g\t%.6g\n", s.T+1, s.N, s.Mean, s.StdErr, s.Min, s.Max)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, heatmap.Sparkline(ts.Means(), sparkWidth, sparkHeight))
			return nil
		},
	}
}
