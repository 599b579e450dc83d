package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"ivaPrime/pkg/nucleotide"
)

var (
	strict   bool
	seed     uint64
	organism string
)

var translateCmd = &cobra.Command{
	Use:   "translate <seq>",
	Short: "Translate DNA or RNA into amino acids, X for unknown codons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !strict {
			fmt.Println(nucleotide.Translate(args[0]))
			return nil
		}
		aa, err := nucleotide.TranslateStrict(args[0])
		if err != nil {
			return err
		}
		fmt.Println(aa)
		return nil
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize <aa>",
	Short: "Codon optimized DNA of an amino acid sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		usage, err := codonUsage()
		if err != nil {
			return err
		}
		if organism == "" {
			organism = cfg.Organism
		}
		var rng nucleotide.RandomSource
		if seed != 0 {
			rng = rand.New(rand.NewPCG(seed, seed))
		}
		dna, err := nucleotide.OptimizeAA(args[0], organism, usage, rng)
		if err != nil {
			return err
		}
		fmt.Println(dna)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd, optimizeCmd)

	translateCmd.Flags().BoolVar(&strict, "strict", false, "fail on ambiguous bases")
	optimizeCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 for a random draw")
	optimizeCmd.Flags().StringVar(&organism, "codon-organism", "", "codon usage organism, default organism setting")
}
