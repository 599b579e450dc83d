package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"ivaPrime/pkg/primer"
)

type operationFlags struct {
	start, end int
	dna, aa    string
	organism   string
}

func addOperationFlags(cmd *cobra.Command, o *operationFlags) {
	f := cmd.Flags()
	f.IntVarP(&o.start, "start", "s", 0, "1-based first base of the span, insertions go before it")
	f.IntVarP(&o.end, "end", "e", 0, "1-based last base of the span, deletion and mutation only")
	f.StringVar(&o.dna, "dna", "", "DNA insert")
	f.StringVar(&o.aa, "aa", "", "amino acid insert, codon optimized, overrides --dna")
	f.StringVar(&o.organism, "codon-organism", "", "codon usage organism of --aa, default organism setting")
	simpleUtil.CheckErr(cmd.MarkFlagRequired("start"))
}

func (o *operationFlags) operation(opType primer.OperationType) primer.Operation {
	op := primer.Operation{
		Type:      opType,
		Span:      primer.RangeSpan(o.start, o.end),
		DNAInsert: o.dna,
		AAInsert:  o.aa,
		Organism:  o.organism,
	}
	if opType == primer.Insertion {
		op.Span = primer.PointSpan(o.start)
	}
	return op
}

var designFlags operationFlags

var designCmd = &cobra.Command{
	Use:       "design insertion|deletion|mutation <fasta|seq>",
	Short:     "Design the primer pair of one insertion, deletion or mutation",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"insertion", "deletion", "mutation"},
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _, err := designSet(args[0], args[1], &designFlags)
		if err != nil {
			return err
		}
		return writeSets(set)
	},
}

func designSet(opName, input string, o *operationFlags) (*primer.PrimerSet, primer.Template, error) {
	opType, ok := primer.ParseOperationType(opName)
	if !ok || opType == primer.Subcloning {
		return nil, primer.Template{}, fmt.Errorf("unknown operation %q", opName)
	}
	t, name, err := loadTemplate(input)
	if err != nil {
		return nil, t, err
	}
	d, err := designer()
	if err != nil {
		return nil, t, err
	}
	set, err := d.GenerateSet(t, o.operation(opType))
	if err != nil {
		return nil, t, fmt.Errorf("%s %s: %w", name, opType, err)
	}
	return set, t, nil
}

func init() {
	rootCmd.AddCommand(designCmd)
	addOperationFlags(designCmd, &designFlags)
}
