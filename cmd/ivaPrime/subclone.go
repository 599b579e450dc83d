package main

import (
	"errors"

	"github.com/spf13/cobra"

	"ivaPrime/pkg/primer"
)

var sub struct {
	start, end int
	from, to   int
	seq5, seq3 string
	fragment   string
	name       string
}

var subcloneCmd = &cobra.Command{
	Use:   "subclone <vector> [origin]",
	Short: "Move a region of an origin plasmid, or a linear fragment, into a vector",
	Long: `Move a region of an origin plasmid into a vector.

The region --from..--to of the origin replaces --start..--end of the vector,
optionally flanked by --seq5 and --seq3. With --fragment no origin is read:
the vector primers are designed together with the fragment to order, which
carries both homologous overhangs.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vector, _, err := loadTemplate(args[0])
		if err != nil {
			return err
		}
		d, err := designer()
		if err != nil {
			return err
		}
		span := primer.ReplacementSpan(sub.start, sub.end)

		if sub.fragment != "" {
			set, err := d.InsertFromLinearFragment(vector, span, sub.fragment, sub.name)
			if err != nil {
				return err
			}
			return writeSets(set)
		}

		if len(args) < 2 {
			return errors.New("origin plasmid required without --fragment")
		}
		origin, _, err := loadTemplate(args[1])
		if err != nil {
			return err
		}
		target, err := primer.SubcloningTarget(origin, sub.from, sub.to)
		if err != nil {
			return err
		}
		set, err := d.GenerateSubcloningSet(vector, primer.Subclone{
			Span:      span,
			Target:    target,
			Seq5Prime: sub.seq5,
			Seq3Prime: sub.seq3,
		})
		if err != nil {
			return err
		}
		return writeSets(set)
	},
}

func init() {
	rootCmd.AddCommand(subcloneCmd)

	f := subcloneCmd.Flags()
	f.IntVarP(&sub.start, "start", "s", 0, "1-based first vector base replaced")
	f.IntVarP(&sub.end, "end", "e", 0, "1-based last vector base replaced, start-1 or unset for a pure insertion")
	f.IntVar(&sub.from, "from", 0, "1-based first origin base")
	f.IntVar(&sub.to, "to", 0, "1-based last origin base, before --from wraps around a circular origin")
	f.StringVar(&sub.seq5, "seq5", "", "extra sequence before the target")
	f.StringVar(&sub.seq3, "seq3", "", "extra sequence after the target")
	f.StringVar(&sub.fragment, "fragment", "", "linear fragment inserted instead of an origin region")
	f.StringVar(&sub.name, "name", "linear fragment", "linear fragment name")
}
