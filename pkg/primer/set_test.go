package primer

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"ivaPrime/pkg/nucleotide"
)

var testUsage = nucleotide.CodonUsage{
	DefaultOrganism: {
		"M": {"ATG": 1},
		"W": {"TGG": 1},
		"K": {"AAA": 0.76, "AAG": 0.24},
	},
}

func randomDNA(seed uint64, n int) string {
	r := rand.New(rand.NewPCG(seed, seed+1))
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[r.IntN(4)]
	}
	return string(b)
}

func newTestDesigner(symmetric bool) *Designer {
	s := DefaultSettings()
	s.Symmetric = symmetric
	return NewDesigner(s, testUsage)
}

// checkCoverage every primer must read the product at the positions given by NextBases
func checkCoverage(t *testing.T, set *PrimerSet, circular bool) {
	t.Helper()
	product := Template{Sequence: set.Product, Circular: circular}
	for _, p := range set.Primers {
		var (
			got string
			err error
		)
		if p.Direction == Forward {
			got, err = product.Slice(p.NextBases[0], p.NextBases[0]+p.Len())
		} else {
			got, err = product.Slice(p.NextBases[1], p.NextBases[1]+p.Len())
			got = nucleotide.ReverseComplement(got)
		}
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		if got != p.Sequence() {
			t.Errorf("%s: product reads %s at %v, primer is %s", p.Name, got, p.NextBases, p.Sequence())
		}
		for _, r := range p.Regions {
			if r.Sequence == "" {
				t.Errorf("%s: empty %s region", p.Name, r.Type)
			}
		}
	}
}

func checkColors(t *testing.T, set *PrimerSet, subcloning bool) {
	t.Helper()
	for _, p := range set.Primers {
		for _, r := range p.Regions {
			if r.Color != RegionColor(r.Type, subcloning) {
				t.Errorf("%s %s: color %s", p.Name, r.Type, r.Color)
			}
		}
	}
}

func regionTypes(p *Primer) string {
	var types []string
	for _, r := range p.Regions {
		types = append(types, string(r.Type))
	}
	return strings.Join(types, ",")
}

func TestGenerateSetShortInsertion(t *testing.T) {
	tpl := Template{Sequence: randomDNA(1, 400), Circular: true}
	for _, symmetric := range []bool{true, false} {
		d := newTestDesigner(symmetric)
		set, err := d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(200), DNAInsert: "ggatcc"})
		if err != nil {
			t.Fatal(err)
		}
		if set.Title != "Short Insertion" || !set.Short || set.Insert != "GGATCC" {
			t.Errorf("title %q short %v insert %q", set.Title, set.Short, set.Insert)
		}
		if want := tpl.Sequence[:199] + "GGATCC" + tpl.Sequence[199:]; set.Product != want {
			t.Errorf("product mismatch")
		}
		if len(set.Primers) != 2 || set.Primers[0].Name != ForwardPrimer || set.Primers[1].Name != ReversePrimer {
			t.Fatalf("unexpected primers %+v", set.Primers)
		}
		if got := regionTypes(set.Primers[0]); got != "HR,INS,TBR" {
			t.Errorf("forward regions %s", got)
		}
		if set.ID == "" {
			t.Error("empty set ID")
		}
		fwd, rev := set.Primers[0], set.Primers[1]
		if symmetric {
			if set.Symmetry != Symmetric || regionTypes(rev) != "HR,INS,TBR" {
				t.Errorf("symmetric reverse regions %s", regionTypes(rev))
			}
			if set.Homology[0].Length < d.Settings.HRMinLength {
				t.Errorf("homology %d shorter than %d", set.Homology[0].Length, d.Settings.HRMinLength)
			}
			if rev.Region(INS) != nucleotide.ReverseComplement("GGATCC") {
				t.Errorf("reverse insert %s", rev.Region(INS))
			}
		} else {
			if set.Symmetry != Asymmetric || regionTypes(rev) != "TBR" {
				t.Errorf("asymmetric reverse regions %s", regionTypes(rev))
			}
			if set.Homology[0].Length != len(fwd.Region(HR)) {
				t.Errorf("homology %d, forward HR %d", set.Homology[0].Length, len(fwd.Region(HR)))
			}
		}
		checkCoverage(t, set, true)
		checkColors(t, set, false)
	}
}

func TestGenerateSetDeletion(t *testing.T) {
	tpl := Template{Sequence: randomDNA(2, 400), Circular: true}
	d := newTestDesigner(true)
	set, err := d.GenerateSet(tpl, Operation{Type: Deletion, Span: RangeSpan(250, 240), DNAInsert: "ACGT"})
	if err != nil {
		t.Fatal(err)
	}
	if set.Title != "Deletion" || set.Insert != "" || set.Span != (Span{Start: 240, End: 250}) {
		t.Errorf("title %q insert %q span %v", set.Title, set.Insert, set.Span)
	}
	if len(set.Product) != 389 || set.Product != tpl.Sequence[:239]+tpl.Sequence[250:] {
		t.Errorf("product length %d", len(set.Product))
	}
	for _, p := range set.Primers {
		if p.Region(INS) != "" {
			t.Errorf("%s carries an insert", p.Name)
		}
	}
	checkCoverage(t, set, true)
}

func TestGenerateSetMutation(t *testing.T) {
	tpl := Template{Sequence: randomDNA(3, 400), Circular: true}
	d := newTestDesigner(true)
	set, err := d.GenerateSet(tpl, Operation{Type: Mutation, Span: RangeSpan(100, 102), DNAInsert: "TAA"})
	if err != nil {
		t.Fatal(err)
	}
	if set.Title != "Short Mutation" || set.Product != tpl.Sequence[:99]+"TAA"+tpl.Sequence[102:] {
		t.Errorf("title %q", set.Title)
	}
	checkCoverage(t, set, true)
}

func TestGenerateSetLongInsertion(t *testing.T) {
	tpl := Template{Sequence: randomDNA(4, 400), Circular: true}
	ins := randomDNA(5, 60)
	for _, symmetric := range []bool{true, false} {
		d := newTestDesigner(symmetric)
		set, err := d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(150), DNAInsert: ins})
		if err != nil {
			t.Fatal(err)
		}
		if set.Short || set.Title != "Long Insertion" {
			t.Errorf("title %q short %v", set.Title, set.Short)
		}
		fwd, rev := set.Primers[0], set.Primers[1]
		for _, p := range set.Primers {
			if got := regionTypes(p); got != "INS,TBR" {
				t.Errorf("%s regions %s", p.Name, got)
			}
			if p.Regions[0].MaxLength != len(ins) {
				t.Errorf("%s insert max length %d", p.Name, p.Regions[0].MaxLength)
			}
		}
		if symmetric {
			if !strings.HasSuffix(ins, fwd.Region(INS)) {
				t.Errorf("forward insert %s is not a suffix of the insert", fwd.Region(INS))
			}
		} else if fwd.Region(INS) != ins {
			t.Errorf("asymmetric forward carries %s", fwd.Region(INS))
		}
		if !strings.HasSuffix(nucleotide.ReverseComplement(ins), rev.Region(INS)) {
			t.Errorf("reverse insert %s", rev.Region(INS))
		}
		if h := set.Homology[0]; h.Length < d.Settings.HRMinLength || h.Length > len(ins) {
			t.Errorf("homology %+v", h)
		}
		checkCoverage(t, set, true)
	}
}

func TestGenerateSetAminoAcidInsert(t *testing.T) {
	tpl := Template{Sequence: randomDNA(6, 300), Circular: true}
	d := newTestDesigner(true)
	set, err := d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(100), AAInsert: "MW", DNAInsert: "GGGGGG"})
	if err != nil {
		t.Fatal(err)
	}
	if set.Insert != "ATGTGG" {
		t.Errorf("insert %s, want ATGTGG", set.Insert)
	}
	_, err = d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(100), AAInsert: "M", Organism: "Bos taurus"})
	if !errors.Is(err, nucleotide.ErrUnknownOrganism) {
		t.Errorf("want ErrUnknownOrganism, got %v", err)
	}
}

func TestGenerateSetErrors(t *testing.T) {
	tpl := Template{Sequence: randomDNA(7, 300), Circular: true}
	d := newTestDesigner(true)

	if _, err := d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(400), DNAInsert: "A"}); !errors.Is(err, ErrInvalidSpan) {
		t.Errorf("want ErrInvalidSpan, got %v", err)
	}
	var ise *nucleotide.InvalidSequenceError
	if _, err := d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(10), DNAInsert: "ACNGT"}); !errors.As(err, &ise) {
		t.Errorf("want InvalidSequenceError, got %v", err)
	}
	linear := Template{Sequence: tpl.Sequence}
	if _, err := d.GenerateSet(linear, Operation{Type: Insertion, Span: PointSpan(298), DNAInsert: "A"}); !errors.Is(err, ErrOutOfBases) {
		t.Errorf("want ErrOutOfBases, got %v", err)
	}
}

func TestGenerateSetNearOrigin(t *testing.T) {
	tpl := Template{Sequence: randomDNA(8, 300), Circular: true}
	d := newTestDesigner(true)
	set, err := d.GenerateSet(tpl, Operation{Type: Insertion, Span: PointSpan(3), DNAInsert: "CAT"})
	if err != nil {
		t.Fatal(err)
	}
	checkCoverage(t, set, true)
}

func TestGenerateSubcloningSet(t *testing.T) {
	vector := Template{Sequence: randomDNA(9, 400), Circular: true}
	origin := Template{Sequence: randomDNA(10, 500), Circular: true}
	target, err := SubcloningTarget(origin, 101, 250)
	if err != nil {
		t.Fatal(err)
	}
	for _, symmetric := range []bool{true, false} {
		d := newTestDesigner(symmetric)
		set, err := d.GenerateSubcloningSet(vector, Subclone{Span: RangeSpan(200, 210), Target: target, Seq5Prime: "GAATTC", Seq3Prime: "AAGCTT"})
		if err != nil {
			t.Fatal(err)
		}
		full := "GAATTC" + target + "AAGCTT"
		if set.Title != "Subcloning" || set.Insert != full || set.Product != vector.Sequence[:199]+full+vector.Sequence[210:] {
			t.Errorf("title %q", set.Title)
		}
		names := []string{ForwardPrimer, ReversePrimer, VectorForwardPrimer, VectorReversePrimer}
		if len(set.Primers) != 4 {
			t.Fatalf("%d primers", len(set.Primers))
		}
		for i, p := range set.Primers {
			if p.Name != names[i] {
				t.Errorf("primer %d named %q", i, p.Name)
			}
		}
		if set.Primers[0].Region(INS) != "GAATTC" || set.Primers[1].Region(INS) != "AAGCTT" && set.Primers[1].Region(INS) != nucleotide.ReverseComplement("AAGCTT") {
			t.Errorf("flank inserts %s %s", set.Primers[0].Region(INS), set.Primers[1].Region(INS))
		}
		if len(set.Homology) != 2 {
			t.Errorf("homology %+v", set.Homology)
		}
		checkCoverage(t, set, true)
		checkColors(t, set, true)
	}
}

func TestInsertFromLinearFragment(t *testing.T) {
	vector := Template{Sequence: randomDNA(11, 400), Circular: true}
	ins := randomDNA(12, 200)
	d := newTestDesigner(true)
	set, err := d.InsertFromLinearFragment(vector, PointSpan(120), ins, "gBlock1")
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Primers) != 2 || set.Primers[0].Name != VectorForwardPrimer || set.Primers[1].Name != VectorReversePrimer {
		t.Fatalf("unexpected primers")
	}
	frag := set.Fragment
	if frag == nil || frag.Name != "gBlock1" {
		t.Fatalf("fragment %+v", frag)
	}
	if frag.Sequence[frag.Insert.Start-1:frag.Insert.End] != ins {
		t.Errorf("insert not at %v in fragment", frag.Insert)
	}
	if frag.Insert.Start == 1 || frag.Insert.End == len(frag.Sequence) {
		t.Errorf("fragment without overhangs: %v of %d", frag.Insert, len(frag.Sequence))
	}
	if !strings.Contains(set.Product+set.Product, frag.Sequence) {
		t.Error("fragment is not part of the product")
	}
	checkCoverage(t, set, true)
	checkColors(t, set, true)
}

func TestSubcloningEmptyInsert(t *testing.T) {
	vector := Template{Sequence: randomDNA(13, 400), Circular: true}
	d := newTestDesigner(true)
	if _, err := d.InsertFromLinearFragment(vector, PointSpan(120), "", "gBlock1"); !errors.Is(err, ErrInvalidSpan) {
		t.Errorf("empty fragment: want ErrInvalidSpan, got %v", err)
	}
	if _, err := d.GenerateSubcloningSet(vector, Subclone{Span: PointSpan(120)}); !errors.Is(err, ErrInvalidSpan) {
		t.Errorf("empty target: want ErrInvalidSpan, got %v", err)
	}
}

func TestParseOperationType(t *testing.T) {
	if op, ok := ParseOperationType("deletion"); !ok || op != Deletion {
		t.Errorf("ParseOperationType(deletion) = %q, %v", op, ok)
	}
	if _, ok := ParseOperationType("inversion"); ok {
		t.Error("inversion should not parse")
	}
}
