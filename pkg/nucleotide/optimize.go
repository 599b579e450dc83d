package nucleotide

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// CodonUsage organism -> amino acid -> codon -> weight
type CodonUsage map[string]map[string]map[string]float64

// Organisms sorted
func (u CodonUsage) Organisms() []string {
	var keys = lo.Keys(u)
	sort.Strings(keys)
	return keys
}

// Codons of aa for organism in codon order, with their weights
func (u CodonUsage) Codons(organism, aa string) ([]string, []float64, error) {
	table, ok := u[organism]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOrganism, organism)
	}
	weights, ok := table[aa]
	if !ok || len(weights) == 0 {
		return nil, nil, fmt.Errorf("%w: %q for %s", ErrUnknownAminoAcid, aa, organism)
	}
	var codons = lo.Keys(weights)
	sort.Strings(codons)
	return codons, lo.Map(codons, func(c string, _ int) float64 { return weights[c] }), nil
}

// RandomSource is satisfied by *rand.Rand
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// ScaleWeights raises each weight to sqrt(1/stddev) and renormalises, favouring common codons.
// Single codons and uniform weights are returned unchanged.
func ScaleWeights(weights []float64) []float64 {
	if len(weights) < 2 {
		return weights
	}
	mean := lo.Mean(weights)
	variance := lo.Mean(lo.Map(weights, func(w float64, _ int) float64 { return (w - mean) * (w - mean) }))
	if variance == 0 {
		return weights
	}
	power := math.Sqrt(1 / math.Sqrt(variance))
	scaled := lo.Map(weights, func(w float64, _ int) float64 { return math.Pow(w, power) })
	sum := lo.Sum(scaled)
	if sum == 0 {
		return weights
	}
	return lo.Map(scaled, func(w float64, _ int) float64 { return w / sum })
}

// OptimizeAA BackTranslate with scaled codon frequencies
func OptimizeAA(aaSeq, organism string, usage CodonUsage, rng RandomSource) (string, error) {
	return BackTranslate(aaSeq, organism, usage, rng, true)
}

// BackTranslate draws one codon per residue of aaSeq weighted by organism usage, scaled by ScaleWeights when scale is set.
// The last codon is the fallback when accumulated weights drift below the draw.
// A nil rng uses the global math/rand/v2 source.
func BackTranslate(aaSeq, organism string, usage CodonUsage, rng RandomSource, scale bool) (string, error) {
	if rng == nil {
		rng = globalRand{}
	}
	aaSeq = strings.ToUpper(strings.Join(strings.Fields(aaSeq), ""))
	var b strings.Builder
	b.Grow(3 * len(aaSeq))
	for _, aa := range aaSeq {
		codons, weights, err := usage.Codons(organism, string(aa))
		if err != nil {
			return "", err
		}
		if scale {
			weights = ScaleWeights(weights)
		}
		b.WriteString(pick(codons, weights, rng.Float64()*lo.Sum(weights)))
	}
	return b.String(), nil
}

func pick(codons []string, weights []float64, draw float64) string {
	for i, w := range weights {
		draw -= w
		if draw <= 0 {
			return codons[i]
		}
	}
	return codons[len(codons)-1]
}
