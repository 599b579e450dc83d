package primer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"ivaPrime/pkg/nucleotide"
	"ivaPrime/pkg/tm"
)

// Region contiguous part of a primer, 5'->3'
type Region struct {
	Type     RegionType `json:"type"`
	Sequence string     `json:"sequence"`
	Color    Color      `json:"color"`
	// MaxLength upper bound when adjusting the region by hand, 0 means unbounded
	MaxLength int `json:"maxLength,omitempty"`
}

type Primer struct {
	Name string `json:"name"`
	// Direction Forward primers read the top strand of the product, Reverse ones the bottom strand
	Direction Direction `json:"direction"`
	Regions   []Region  `json:"regions"`
	// NextBases 1-based product positions of the next template base beyond the 5' and the 3' end, 0 past a linear end
	NextBases [2]int `json:"nextBases"`
}

// Sequence 5'->3'
func (p *Primer) Sequence() string {
	return strings.Join(lo.Map(p.Regions, func(r Region, _ int) string { return r.Sequence }), "")
}

func (p *Primer) Len() int {
	return lo.SumBy(p.Regions, func(r Region) int { return len(r.Sequence) })
}

// Region sequence of type t, empty when absent
func (p *Primer) Region(t RegionType) string {
	r, _ := lo.Find(p.Regions, func(r Region) bool { return r.Type == t })
	return r.Sequence
}

// Homology overlap between the two primers of an insertion
type Homology struct {
	Length int     `json:"length"`
	Tm     float64 `json:"tm"`
}

// LinearFragment insert carrying both homologous overhangs
type LinearFragment struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
	// Insert span of the insert inside Sequence
	Insert Span `json:"insert"`
}

// PrimerSet result of one cloning operation, immutable once returned
type PrimerSet struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Operation OperationType   `json:"operation"`
	Symmetry  Symmetry        `json:"symmetry"`
	Short     bool            `json:"short"`
	Span      Span            `json:"span"`
	Insert    string          `json:"insert"`
	Homology  []Homology      `json:"homology"`
	Product   string          `json:"product"`
	Primers   []*Primer       `json:"primers"`
	Fragment  *LinearFragment `json:"fragment,omitempty"`
}

// Operation requested on a template
type Operation struct {
	Type OperationType
	Span Span
	// DNAInsert used when AAInsert is empty
	DNAInsert string
	// AAInsert codon optimized for Organism
	AAInsert string
	// Organism overrides Settings.Organism
	Organism string
}

// Designer builds primer sets. It holds no mutable state, a shared Rand must itself be safe for concurrent use.
type Designer struct {
	Settings Settings
	Usage    nucleotide.CodonUsage
	// Rand codon draw source, nil for the global one
	Rand nucleotide.RandomSource
}

func NewDesigner(settings Settings, usage nucleotide.CodonUsage) *Designer {
	return &Designer{Settings: settings, Usage: usage}
}

// ResolveInsert codon optimizes the amino acid insert, or sanitizes the DNA insert
func (d *Designer) ResolveInsert(op Operation) (string, error) {
	var (
		ins string
		err error
	)
	if op.AAInsert != "" {
		organism := lo.CoalesceOrEmpty(op.Organism, d.Settings.Organism)
		ins, err = nucleotide.BackTranslate(op.AAInsert, organism, d.Usage, d.Rand, d.Settings.ScaleCodons)
		if err != nil {
			return "", fmt.Errorf("optimize insert: %w", err)
		}
	} else {
		ins = strings.ReplaceAll(nucleotide.Sanitize(op.DNAInsert), "U", "T")
	}
	if err = nucleotide.ValidatePrimerSequence(ins); err != nil {
		return "", fmt.Errorf("insert: %w", err)
	}
	return ins, nil
}

// GenerateSet designs the two primers of an insertion, deletion or mutation.
// Short inserts get homology from the flanking template, long ones from the insert itself.
func (d *Designer) GenerateSet(t Template, op Operation) (*PrimerSet, error) {
	ins, err := d.ResolveInsert(op)
	if err != nil {
		return nil, err
	}
	if op.Type == Deletion {
		ins = ""
	}
	set, err := d.generate(t, op.Type, op.Span, ins, op.Type == Subcloning)
	if err != nil {
		return nil, err
	}
	set.Product = t.Replace(op.Span, ins)
	product := Template{Sequence: set.Product, Circular: t.Circular}
	for _, p := range set.Primers {
		p.locate(op.Span.Start, len(ins), product)
		p.compact()
	}
	return set, nil
}

func (d *Designer) generate(t Template, opType OperationType, span Span, ins string, subcloning bool) (*PrimerSet, error) {
	if err := span.Validate(t.Len()); err != nil {
		return nil, err
	}
	var (
		s     = d.Settings
		start = span.Start
		end   = span.End
		hrTm  = s.HRTm
	)
	if subcloning {
		hrTm = s.HRSubcloningTm
	}

	tbrFwd, err := Extend(t, Extension{Anchor: end, Strand: Top, Direction: Forward, TargetTm: s.TBRTm, MinLength: s.TBRMinLength}, s.Tm)
	if err != nil {
		return nil, fmt.Errorf("forward template binding region: %w", err)
	}
	tbrRev, err := Extend(t, Extension{Anchor: start - 1, Strand: Bottom, Direction: Forward, TargetTm: s.TBRTm, MinLength: s.TBRMinLength}, s.Tm)
	if err != nil {
		return nil, fmt.Errorf("reverse template binding region: %w", err)
	}

	a := &assembly{
		t:          t,
		start:      start,
		end:        end,
		ins:        ins,
		hrTm:       hrTm,
		hrMin:      s.HRMinLength,
		hrCfg:      s.Tm.WithAlgorithm(tm.OligoCalc),
		tbrFwd:     tbrFwd,
		tbrRev:     tbrRev,
		subcloning: subcloning,
	}
	short := tm.OligoCalcTm(ins) < s.MaxTmShortInsertion

	var set *PrimerSet
	switch {
	case short && s.Symmetric:
		set, err = a.symmetricShort()
	case short:
		set, err = a.asymmetricShort()
	case s.Symmetric:
		set = a.symmetricLong()
	default:
		set = a.asymmetricLong()
	}
	if err != nil {
		return nil, err
	}

	set.ID = uuid.NewString()
	set.Operation = opType
	set.Short = short
	set.Span = span
	set.Insert = ins
	switch {
	case opType == Deletion:
		set.Title = string(Deletion)
	case short:
		set.Title = "Short " + string(opType)
	default:
		set.Title = "Long " + string(opType)
	}
	slog.Debug("GenerateSet", "operation", opType, "span", span, "short", short, "symmetry", set.Symmetry, "homology", set.Homology)
	return set, nil
}

type assembly struct {
	t          Template
	start, end int
	ins        string
	hrTm       float64
	hrMin      int
	hrCfg      tm.Config
	tbrFwd     string
	tbrRev     string
	subcloning bool
}

func (a *assembly) region(t RegionType, seq string, maxLength int) Region {
	return Region{Type: t, Sequence: seq, Color: RegionColor(t, a.subcloning), MaxLength: maxLength}
}

func (a *assembly) homologyUpstream() (string, error) {
	hr, err := Extend(a.t, Extension{Anchor: a.start - 1, Strand: Top, Direction: Reverse, TargetTm: a.hrTm, MinLength: a.hrMin}, a.hrCfg)
	if err != nil {
		return "", fmt.Errorf("upstream homologous region: %w", err)
	}
	return hr, nil
}

func (a *assembly) homologyDownstream() (string, error) {
	hr, err := Extend(a.t, Extension{Anchor: a.end, Strand: Top, Direction: Forward, TargetTm: a.hrTm, MinLength: a.hrMin}, a.hrCfg)
	if err != nil {
		return "", fmt.Errorf("downstream homologous region: %w", err)
	}
	return hr, nil
}

func homology(overlap string) Homology {
	return Homology{Length: len(overlap), Tm: tm.OligoCalcTm(overlap)}
}

// flanking homology on both sides of the insert, trimmed in turns
func (a *assembly) symmetricShort() (*PrimerSet, error) {
	up, err := a.homologyUpstream()
	if err != nil {
		return nil, err
	}
	down, err := a.homologyDownstream()
	if err != nil {
		return nil, err
	}
	left, right := TrimSymmetric(up+a.ins+down, a.hrTm, a.hrMin)
	up, down = trimFlanks(up, down, left, right)

	return &PrimerSet{
		Symmetry: Symmetric,
		Homology: []Homology{homology(up + a.ins + down)},
		Primers: []*Primer{
			{
				Name:      ForwardPrimer,
				Direction: Forward,
				Regions: []Region{
					a.region(HR, up, 0),
					a.region(INS, a.ins, 0),
					a.region(TBR, a.tbrFwd, 0),
				},
			},
			{
				Name:      ReversePrimer,
				Direction: Reverse,
				Regions: []Region{
					a.region(HR, nucleotide.ReverseComplement(down), 0),
					a.region(INS, nucleotide.ReverseComplement(a.ins), 0),
					a.region(TBR, a.tbrRev, 0),
				},
			},
		},
	}, nil
}

// trimFlanks cuts left bases from the outer end of up and right bases from the outer end of down.
// The insert is never cut, a side trimmed past its flank takes the rest from the other flank.
func trimFlanks(up, down string, left, right int) (string, string) {
	cutUp, cutDown := min(left, len(up)), min(right, len(down))
	cutDown = min(cutDown+left-cutUp, len(down))
	cutUp = min(cutUp+right-min(right, len(down)), len(up))
	return up[cutUp:], down[:len(down)-cutDown]
}

// upstream homology on the forward primer only
func (a *assembly) asymmetricShort() (*PrimerSet, error) {
	up, err := a.homologyUpstream()
	if err != nil {
		return nil, err
	}
	return &PrimerSet{
		Symmetry: Asymmetric,
		Homology: []Homology{homology(up)},
		Primers: []*Primer{
			{
				Name:      ForwardPrimer,
				Direction: Forward,
				Regions: []Region{
					a.region(HR, up, 0),
					a.region(INS, a.ins, 0),
					a.region(TBR, a.tbrFwd, 0),
				},
			},
			{
				Name:      ReversePrimer,
				Direction: Reverse,
				Regions: []Region{
					a.region(HR, "", 0),
					a.region(INS, "", 0),
					a.region(TBR, a.tbrRev, 0),
				},
			},
		},
	}, nil
}

// the insert is split between both primers, overlapping in its middle
func (a *assembly) symmetricLong() *PrimerSet {
	left, right := TrimSymmetric(a.ins, a.hrTm, a.hrMin)
	rc := nucleotide.ReverseComplement(a.ins)
	return &PrimerSet{
		Symmetry: Symmetric,
		Homology: []Homology{homology(a.ins[left : len(a.ins)-right])},
		Primers: []*Primer{
			{
				Name:      ForwardPrimer,
				Direction: Forward,
				Regions: []Region{
					a.region(HR, "", 0),
					a.region(INS, a.ins[left:], len(a.ins)),
					a.region(TBR, a.tbrFwd, 0),
				},
			},
			{
				Name:      ReversePrimer,
				Direction: Reverse,
				Regions: []Region{
					a.region(HR, "", 0),
					a.region(INS, rc[right:], len(a.ins)),
					a.region(TBR, a.tbrRev, 0),
				},
			},
		},
	}
}

// the forward primer carries the whole insert, the reverse primer overlaps its 5' part
func (a *assembly) asymmetricLong() *PrimerSet {
	rc := nucleotide.ReverseComplement(a.ins)
	removed := TrimAsymmetric(rc, a.hrTm, a.hrMin)
	return &PrimerSet{
		Symmetry: Asymmetric,
		Homology: []Homology{homology(rc[removed:])},
		Primers: []*Primer{
			{
				Name:      ForwardPrimer,
				Direction: Forward,
				Regions: []Region{
					a.region(HR, "", 0),
					a.region(INS, a.ins, len(a.ins)),
					a.region(TBR, a.tbrFwd, 0),
				},
			},
			{
				Name:      ReversePrimer,
				Direction: Reverse,
				Regions: []Region{
					a.region(HR, "", 0),
					a.region(INS, rc[removed:], len(a.ins)),
					a.region(TBR, a.tbrRev, 0),
				},
			},
		},
	}
}

// locate sets NextBases for a primer around an insert of insLen bases placed before product position point
func (p *Primer) locate(point, insLen int, product Template) {
	var (
		hr  = len(p.Region(HR))
		ins = len(p.Region(INS))
		tbr = len(p.Region(TBR))
		n   = product.Len()
	)
	if p.Direction == Forward {
		first := point + insLen - hr - ins
		last := point + insLen - 1 + tbr
		p.NextBases = [2]int{wrapPosition(first-1, n, product.Circular), wrapPosition(last+1, n, product.Circular)}
		return
	}
	first := point - tbr
	last := point - 1 + ins + hr
	p.NextBases = [2]int{wrapPosition(last+1, n, product.Circular), wrapPosition(first-1, n, product.Circular)}
}

func wrapPosition(pos, n int, circular bool) int {
	if n == 0 {
		return 0
	}
	if circular {
		return ((pos-1)%n+n)%n + 1
	}
	if pos < 1 || pos > n {
		return 0
	}
	return pos
}

// compact drops empty regions
func (p *Primer) compact() {
	p.Regions = lo.Filter(p.Regions, func(r Region, _ int) bool { return r.Sequence != "" })
}
