package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ivaPrime/pkg/primer"
	"ivaPrime/pkg/tm"
)

var ext struct {
	anchor    int
	strand    string
	direction string
	targetTm  float64
	minLength int
	initial   string
}

var extendCmd = &cobra.Command{
	Use:   "extend <fasta|seq>",
	Short: "Grow a fragment from a cut position until it reaches a target Tm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, name, err := loadTemplate(args[0])
		if err != nil {
			return err
		}
		e := primer.Extension{
			Anchor:    ext.anchor,
			Strand:    primer.Strand(ext.strand),
			Direction: primer.Direction(ext.direction),
			TargetTm:  ext.targetTm,
			MinLength: ext.minLength,
			Initial:   ext.initial,
		}
		if !cmd.Flags().Changed("target") {
			e.TargetTm = cfg.TBRTm
		}
		if !cmd.Flags().Changed("min-length") {
			e.MinLength = cfg.TBRMinLength
		}
		switch e.Strand {
		case primer.Top, primer.Bottom:
		default:
			return fmt.Errorf("unknown strand %q", ext.strand)
		}
		switch e.Direction {
		case primer.Forward, primer.Reverse:
		default:
			return fmt.Errorf("unknown direction %q", ext.direction)
		}

		fragment, err := primer.Extend(t, e, cfg.Tm)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fragmentTm, err := tm.MeltingTemperature(fragment, cfg.Tm)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%d\t%.2f\n", name, fragment, len(fragment), fragmentTm)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extendCmd)

	f := extendCmd.Flags()
	f.IntVarP(&ext.anchor, "anchor", "a", 0, "0-based cut position on the top strand")
	f.StringVar(&ext.strand, "strand", string(primer.Top), "top or bottom")
	f.StringVar(&ext.direction, "direction", string(primer.Forward), "fwd or rev")
	f.Float64Var(&ext.targetTm, "target", 0, "target Tm, default tbr-tm")
	f.IntVar(&ext.minLength, "min-length", 0, "minimal length, default tbr-min-length")
	f.StringVar(&ext.initial, "initial", "", "sequence kept at the anchored end")
}
