package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sartorproj/latticecorr/analysis"
	"github.com/sartorproj/latticecorr/logging"
)

func newLabelsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List known labels with sample counts",
		Args:  cobra.NoArgs,
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

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tSAMPLES\tMIN LEN\tMAX LEN")
			for _, label := range coll.Labels() {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", label, coll.Count(label), coll.MinLen(label), coll.MaxLen(label))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			st := coll.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d tokens, %d occurrences, %d values, %d discarded\n",
				st.Tokens, st.Labels, st.Values, st.Discarded)
			return nil
		},
	}
}
