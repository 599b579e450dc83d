package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ivaPrime/pkg/nucleotide"
	"ivaPrime/pkg/tm"
)

var tmCmd = &cobra.Command{
	Use:   "tm <seq>...",
	Short: "Melting temperature of primers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, seq := range args {
			seq = nucleotide.Sanitize(seq)
			t, err := tm.MeltingTemperature(seq, cfg.Tm)
			if err != nil {
				return fmt.Errorf("%s: %w", seq, err)
			}
			fmt.Printf("%s\t%d\t%.2f\t%.1f\n", seq, len(seq), t, nucleotide.FractionGC(seq)*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tmCmd)
}
