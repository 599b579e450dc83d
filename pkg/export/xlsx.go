package export

import (
	"fmt"

	"github.com/liserjrqlxue/DNA/pkg/util"
	"github.com/liserjrqlxue/PrimerDesigner/v2/pkg/batch"
	"github.com/xuri/excelize/v2"

	"ivaPrime/pkg/primer"
)

const (
	PrimerSheet = "Primers"
	RegionSheet = "Regions"

	OrderColOffset = 4
	OrderRowOffset = 17
)

// AddPrimerSheets Primers and Regions sheets of sets into xlsx
func AddPrimerSheets(xlsx *excelize.File, sets []*primer.PrimerSet) error {
	if _, err := xlsx.NewSheet(PrimerSheet); err != nil {
		return err
	}
	if _, err := xlsx.NewSheet(RegionSheet); err != nil {
		return err
	}
	if err := xlsx.SetSheetRow(PrimerSheet, "A1", &PrimerTitle); err != nil {
		return err
	}
	if err := xlsx.SetSheetRow(RegionSheet, "A1", &RegionTitle); err != nil {
		return err
	}

	row, regionRow := 2, 2
	for _, r := range Table(sets) {
		line := []any{r.Name, r.Sequence, r.Primer.Len(), gcPercent(r.Sequence), r.Set.ID, r.Set.Title}
		if err := xlsx.SetSheetRow(PrimerSheet, fmt.Sprintf("A%d", row), &line); err != nil {
			return err
		}
		row++
		for i, region := range r.Primer.Regions {
			line := []any{
				r.Name, i + 1, string(region.Type), region.Sequence, len(region.Sequence),
				string(region.Color), region.MaxLength, r.Primer.NextBases[0], r.Primer.NextBases[1],
			}
			if err := xlsx.SetSheetRow(RegionSheet, fmt.Sprintf("A%d", regionRow), &line); err != nil {
				return err
			}
			regionRow++
		}
	}
	return nil
}

// NewWorkbook with the primer sheets and without the default Sheet1
func NewWorkbook(sets []*primer.PrimerSet) (*excelize.File, error) {
	xlsx := excelize.NewFile()
	if err := AddPrimerSheets(xlsx, sets); err != nil {
		return nil, err
	}
	if err := xlsx.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return xlsx, nil
}

func WriteXlsx(path string, sets []*primer.PrimerSet) error {
	xlsx, err := NewWorkbook(sets)
	if err != nil {
		return err
	}
	return xlsx.SaveAs(path)
}

// OrderPrimers primer table as order form entries
func OrderPrimers(sets []*primer.PrimerSet) []*util.Primer {
	var primers []*util.Primer
	for _, r := range Table(sets) {
		primers = append(primers, util.NewSimplePrimer(r.Name, r.Sequence))
	}
	return primers
}

// WriteOrder fills sheet of the vendor template one primer per row from rowOffset
func WriteOrder(templatePath, sheet, outPath string, sets []*primer.PrimerSet, colOffset, rowOffset int) error {
	orderXlsx, err := excelize.OpenFile(templatePath)
	if err != nil {
		return fmt.Errorf("open order template %s: %w", templatePath, err)
	}
	defer orderXlsx.Close()
	for i, p := range OrderPrimers(sets) {
		batch.WritePrimerOrder(orderXlsx, sheet, colOffset, rowOffset+i, 1, p, false)
	}
	return orderXlsx.SaveAs(outPath)
}
