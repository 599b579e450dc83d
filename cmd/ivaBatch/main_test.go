package main

import (
	"math/rand/v2"
	"testing"

	"github.com/xuri/excelize/v2"

	"ivaPrime/pkg/codon"
	"ivaPrime/pkg/primer"
)

func randomDNA(seed uint64, n int) string {
	r := rand.New(rand.NewPCG(seed, seed+1))
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[r.IntN(4)]
	}
	return string(b)
}

func testWorkbook(t *testing.T, plasmid string) *excelize.File {
	t.Helper()
	xlsx := excelize.NewFile()
	sheets := map[string][][]any{
		plasmidSheet: {
			{"Name", "Sequence", "Topology"},
			{"pA", plasmid, ""},
			{"pB", "acgtacgtacgt", "Linear"},
			{"", "ACGT", ""},
		},
		operationSheet: {
			{"ID", "Plasmid", "Type", "Start", "End", "DNA", "AA", "Organism"},
			{"ins1", "pA", "insertion", "100", "", "GGATCC", "", ""},
			{"", "pA", "del", "150", "170"},
			{"mut1", "pA", "Mutation", "200", "202", "", "W", "Escherichia coli"},
			{"bad", "pX", "Insertion", "10", "", "A", "", ""},
		},
	}
	for sheet, rows := range sheets {
		if _, err := xlsx.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
		for i, row := range rows {
			if err := xlsx.SetSheetRow(sheet, CoordinatesToCellName(1, i+1), &row); err != nil {
				t.Fatal(err)
			}
		}
	}
	return xlsx
}

func TestGetRows2MapArray(t *testing.T) {
	xlsx := testWorkbook(t, "ACGT")
	data := GetRows2MapArray(xlsx, operationSheet)
	if len(data) != 4 {
		t.Fatalf("got %d rows, want 4", len(data))
	}
	if data[1]["End"] != "170" || data[1]["DNA"] != "" || data[1]["Organism"] != "" {
		t.Errorf("short row not padded: %v", data[1])
	}
	if got := GetRows2MapArray(xlsx, "Sheet1"); len(got) != 0 {
		t.Errorf("empty sheet gave %v", got)
	}
}

func TestLoadPlasmids(t *testing.T) {
	plasmidMap, plasmidList := LoadPlasmids(testWorkbook(t, "ACGT"), plasmidSheet, true)
	if len(plasmidList) != 2 || plasmidList[0] != "pA" || plasmidList[1] != "pB" {
		t.Fatalf("plasmids %v", plasmidList)
	}
	if !plasmidMap["pA"].Template.Circular || plasmidMap["pB"].Template.Circular {
		t.Error("topology not applied")
	}
	if plasmidMap["pB"].Template.Sequence != "ACGTACGTACGT" {
		t.Errorf("sequence not sanitized: %s", plasmidMap["pB"].Template.Sequence)
	}
}

func TestLoadOperations(t *testing.T) {
	operations, err := LoadOperations(testWorkbook(t, "ACGT"), operationSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(operations) != 4 {
		t.Fatalf("got %d operations", len(operations))
	}
	ins, del := operations[0], operations[1]
	if ins.Type != string(primer.Insertion) || ins.Span() != primer.PointSpan(100) {
		t.Errorf("insertion %+v span %v", ins, ins.Span())
	}
	if del.ID != "deletion2" || del.Type != string(primer.Deletion) || del.Span() != primer.RangeSpan(150, 170) {
		t.Errorf("deletion %+v", del)
	}
}

func TestLoadOperationsBadNumber(t *testing.T) {
	xlsx := excelize.NewFile()
	if _, err := xlsx.NewSheet(operationSheet); err != nil {
		t.Fatal(err)
	}
	if err := xlsx.SetSheetRow(operationSheet, "A1", &[]string{"ID", "Plasmid", "Type", "Start"}); err != nil {
		t.Fatal(err)
	}
	if err := xlsx.SetSheetRow(operationSheet, "A2", &[]string{"x", "pA", "Insertion", "ten"}); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOperations(xlsx, operationSheet); err == nil {
		t.Error("non numeric Start should fail")
	}
}

func TestRunOperation(t *testing.T) {
	xlsx := testWorkbook(t, randomDNA(7, 600))
	plasmidMap, _ := LoadPlasmids(xlsx, plasmidSheet, true)
	operations, err := LoadOperations(xlsx, operationSheet)
	if err != nil {
		t.Fatal(err)
	}
	d := primer.NewDesigner(primer.DefaultSettings(), codon.Default())

	wantStatus := []string{statusPass, statusPass, statusPass, statusFail}
	for i, op := range operations {
		result := runOperation(d, op, plasmidMap)
		if result.Status != wantStatus[i] {
			t.Errorf("%s status %s, want %s: %s", op.ID, result.Status, wantStatus[i], result.Message)
		}
		if line := result.statusLine(); len(line) != len(StatusTitle) {
			t.Errorf("%s status line has %d cells, want %d", op.ID, len(line), len(StatusTitle))
		}
	}
}

func TestRunOperationRecover(t *testing.T) {
	xlsx := testWorkbook(t, randomDNA(7, 600))
	plasmidMap, _ := LoadPlasmids(xlsx, plasmidSheet, true)
	operations, err := LoadOperations(xlsx, operationSheet)
	if err != nil {
		t.Fatal(err)
	}
	result := runOperation(nil, operations[0], plasmidMap)
	if result.Status != statusFail || result.Set != nil || result.Message == "" {
		t.Errorf("panic not recovered into a failed status: %+v", result)
	}
}

func TestRunSubcloningInsertion(t *testing.T) {
	xlsx := excelize.NewFile()
	sheets := map[string][][]any{
		plasmidSheet: {
			{"Name", "Sequence", "Topology"},
			{"pVector", randomDNA(21, 600), "Circular"},
			{"pOrigin", randomDNA(22, 400), "Circular"},
		},
		operationSheet: {
			{"ID", "Plasmid", "Type", "Start", "End", "DNA", "AA", "Organism", "Origin", "From", "To"},
			{"sub1", "pVector", "Subcloning", "100", "", "", "", "", "pOrigin", "51", "150"},
			{"sub2", "pVector", "sub", "100", "99", "", "", "", "pOrigin", "51", "150"},
			{"frag1", "pVector", "Fragment", "300", "", randomDNA(23, 80)},
		},
	}
	for sheet, rows := range sheets {
		if _, err := xlsx.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
		for i, row := range rows {
			if err := xlsx.SetSheetRow(sheet, CoordinatesToCellName(1, i+1), &row); err != nil {
				t.Fatal(err)
			}
		}
	}
	plasmidMap, _ := LoadPlasmids(xlsx, plasmidSheet, true)
	operations, err := LoadOperations(xlsx, operationSheet)
	if err != nil {
		t.Fatal(err)
	}
	d := primer.NewDesigner(primer.DefaultSettings(), codon.Default())

	wantLen := []int{700, 700, 680}
	for i, op := range operations {
		if !op.Span().IsPoint() || op.Span().Start != op.Start {
			t.Errorf("%s span %v, want an insertion before %d", op.ID, op.Span(), op.Start)
		}
		result := runOperation(d, op, plasmidMap)
		if result.Status != statusPass {
			t.Fatalf("%s failed: %s", op.ID, result.Message)
		}
		if got := len(result.Set.Product); got != wantLen[i] {
			t.Errorf("%s product %d bp, want %d", op.ID, got, wantLen[i])
		}
	}
	vector := plasmidMap["pVector"].Template.Sequence
	target := plasmidMap["pOrigin"].Template.Sequence[50:150]
	if got := runOperation(d, operations[0], plasmidMap).Set.Product; got != vector[:99]+target+vector[99:] {
		t.Error("subcloning insertion dropped vector bases")
	}
}
