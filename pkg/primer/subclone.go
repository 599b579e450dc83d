package primer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"ivaPrime/pkg/nucleotide"
)

// Subclone request: move Target into the vector at Span, flanked by the optional Seq5Prime and Seq3Prime
type Subclone struct {
	Span      Span
	Target    string
	Seq5Prime string
	Seq3Prime string
}

func cleanDNA(name, seq string) (string, error) {
	seq = strings.ReplaceAll(nucleotide.Sanitize(seq), "U", "T")
	if err := nucleotide.ValidatePrimerSequence(seq); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return seq, nil
}

// halves designs the 5' set on a pseudo vector that already holds target,
// and the 3' set on the reverse complement of that pseudo vector
func (d *Designer) halves(vector Template, span Span, target, seq5, seq3 string) (set5, set3 *PrimerSet, err error) {
	if err = span.Validate(vector.Len()); err != nil {
		return nil, nil, err
	}
	pseudo5 := Template{Sequence: vector.Replace(span, target), Circular: vector.Circular}
	set5, err = d.generate(pseudo5, Insertion, PointSpan(span.Start), seq5, true)
	if err != nil {
		return nil, nil, fmt.Errorf("5' primers: %w", err)
	}
	pseudo3 := pseudo5.ReverseComplement()
	pos := pseudo3.Len() - span.Start - len(target) + 2
	set3, err = d.generate(pseudo3, Insertion, PointSpan(pos), nucleotide.ReverseComplement(seq3), true)
	if err != nil {
		return nil, nil, fmt.Errorf("3' primers: %w", err)
	}
	return set5, set3, nil
}

// GenerateSubcloningSet four primers: the insert pair amplifies target with both flanking sequences,
// the vector pair opens the vector at span
func (d *Designer) GenerateSubcloningSet(vector Template, req Subclone) (*PrimerSet, error) {
	target, err := cleanDNA("subcloning target", req.Target)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, fmt.Errorf("%w: empty subcloning target", ErrInvalidSpan)
	}
	seq5, err := cleanDNA("5' sequence", req.Seq5Prime)
	if err != nil {
		return nil, err
	}
	seq3, err := cleanDNA("3' sequence", req.Seq3Prime)
	if err != nil {
		return nil, err
	}
	set5, set3, err := d.halves(vector, req.Span, target, seq5, seq3)
	if err != nil {
		return nil, err
	}

	full := seq5 + target + seq3
	set := &PrimerSet{
		ID:        uuid.NewString(),
		Title:     string(Subcloning),
		Operation: Subcloning,
		Symmetry:  set5.Symmetry,
		Short:     set5.Short && set3.Short,
		Span:      req.Span,
		Insert:    full,
		Homology:  []Homology{set5.Homology[0], set3.Homology[0]},
		Product:   vector.Replace(req.Span, full),
		Primers: []*Primer{
			renamed(set5.Primers[0], ForwardPrimer, Forward),
			renamed(set3.Primers[0], ReversePrimer, Reverse),
			renamed(set3.Primers[1], VectorForwardPrimer, Forward),
			renamed(set5.Primers[1], VectorReversePrimer, Reverse),
		},
	}
	product := Template{Sequence: set.Product, Circular: vector.Circular}
	end3 := req.Span.Start + len(seq5) + len(target)
	set.Primers[0].locate(req.Span.Start, len(seq5), product)
	set.Primers[1].locate(end3, len(seq3), product)
	set.Primers[2].locate(end3, len(seq3), product)
	set.Primers[3].locate(req.Span.Start, len(seq5), product)
	for _, p := range set.Primers {
		p.compact()
	}
	slog.Debug("GenerateSubcloningSet", "span", req.Span, "target", len(target), "homology", set.Homology)
	return set, nil
}

// InsertFromLinearFragment two vector primers plus the fragment to order, which carries both homologous overhangs
func (d *Designer) InsertFromLinearFragment(vector Template, span Span, insert, name string) (*PrimerSet, error) {
	ins, err := cleanDNA("linear fragment", insert)
	if err != nil {
		return nil, err
	}
	if ins == "" {
		return nil, fmt.Errorf("%w: empty linear fragment", ErrInvalidSpan)
	}
	set5, set3, err := d.halves(vector, span, ins, "", "")
	if err != nil {
		return nil, err
	}

	overhang5 := set5.Primers[0].Region(HR)
	overhang3 := nucleotide.ReverseComplement(set3.Primers[0].Region(HR))
	set := &PrimerSet{
		ID:        uuid.NewString(),
		Title:     "Insertion from linear fragment",
		Operation: Subcloning,
		Symmetry:  set5.Symmetry,
		Short:     true,
		Span:      span,
		Insert:    ins,
		Homology:  []Homology{set5.Homology[0], set3.Homology[0]},
		Product:   vector.Replace(span, ins),
		Primers: []*Primer{
			renamed(set3.Primers[1], VectorForwardPrimer, Forward),
			renamed(set5.Primers[1], VectorReversePrimer, Reverse),
		},
		Fragment: &LinearFragment{
			Name:     name,
			Sequence: overhang5 + ins + overhang3,
			Insert:   Span{Start: len(overhang5) + 1, End: len(overhang5) + len(ins)},
		},
	}
	product := Template{Sequence: set.Product, Circular: vector.Circular}
	set.Primers[0].locate(span.Start+len(ins), 0, product)
	set.Primers[1].locate(span.Start, 0, product)
	for _, p := range set.Primers {
		p.compact()
	}
	slog.Debug("InsertFromLinearFragment", "span", span, "fragment", len(set.Fragment.Sequence), "homology", set.Homology)
	return set, nil
}

func renamed(p *Primer, name string, dir Direction) *Primer {
	return &Primer{Name: name, Direction: dir, Regions: p.Regions}
}
