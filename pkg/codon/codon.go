// Package codon loads codon usage tables for back-translation
package codon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ivaPrime/pkg/nucleotide"
)

//go:embed data/codonWeights.json
var defaultWeights []byte

// Default embedded tables for Escherichia coli and Saccharomyces cerevisiae
func Default() nucleotide.CodonUsage {
	usage, err := Parse(defaultWeights)
	if err != nil {
		panic(err)
	}
	return usage
}

// Load organism -> amino acid -> codon -> weight JSON file
func Load(path string) (nucleotide.CodonUsage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	usage, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return usage, nil
}

func Parse(data []byte) (nucleotide.CodonUsage, error) {
	var usage nucleotide.CodonUsage
	if err := json.Unmarshal(data, &usage); err != nil {
		return nil, err
	}
	return usage, Validate(usage)
}

// Validate every codon translates to the amino acid it is listed under
func Validate(usage nucleotide.CodonUsage) error {
	for organism, table := range usage {
		for aa, weights := range table {
			for codon, w := range weights {
				got, ok := nucleotide.CodonTable[strings.ToUpper(codon)]
				if !ok || string(got) != aa {
					return fmt.Errorf("%s: codon %s listed under %s", organism, codon, aa)
				}
				if w < 0 {
					return fmt.Errorf("%s: negative weight %g for %s", organism, w, codon)
				}
			}
		}
	}
	return nil
}

// Merge tables of extra over base, organism by organism
func Merge(base, extra nucleotide.CodonUsage) nucleotide.CodonUsage {
	var merged = make(nucleotide.CodonUsage, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
