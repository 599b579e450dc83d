package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ivaPrime/pkg/simulate"
)

var (
	simulateFlags operationFlags
	pcrTm         float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate insertion|deletion|mutation <fasta|seq>",
	Short: "Design a primer pair, then check it by in-silico PCR",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, t, err := designSet(args[0], args[1], &simulateFlags)
		if err != nil {
			return err
		}
		if err := writeSets(set); err != nil {
			return err
		}
		report, err := simulate.Check(t, set, pcrTm)
		if err != nil {
			return err
		}
		for i, amplicon := range report.Amplicons {
			fmt.Printf("amplicon%d\t%d bp\t%v\n", i+1, len(amplicon), simulate.ConsistentWith(amplicon, set.Product))
		}
		slog.Info("Simulate", "bindingTm", report.BindingTm, "amplicons", len(report.Amplicons), "consistent", report.Consistent)
		if !report.Consistent {
			return fmt.Errorf("no amplicon recombines into the %d bp product", len(set.Product))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	addOperationFlags(simulateCmd, &simulateFlags)
	simulateCmd.Flags().Float64Var(&pcrTm, "pcr-tm", simulate.DefaultTargetTm, "minimal binding Tm of primer 3' ends")
}
