// Package export writes designed primer sets as tables, text, CSV, xlsx and vendor order forms
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/samber/lo"

	"ivaPrime/pkg/nucleotide"
	"ivaPrime/pkg/primer"
)

var (
	TableTitle  = []string{"name", "sequence"}
	PrimerTitle = []string{"name", "sequence", "length", "GC(%)", "set", "title"}
	RegionTitle = []string{"primer", "region", "type", "sequence", "length", "color", "maxLength", "nextBase5", "nextBase3"}
)

// Row of the primer table
type Row struct {
	Name     string
	Sequence string
	Primer   *primer.Primer
	Set      *primer.PrimerSet
}

// PrimerName <operation><index>[_vec]_<fwd|rev>, lowercase with spaces as underscores. index is 1-based.
func PrimerName(set *primer.PrimerSet, index int, p *primer.Primer) string {
	var name strings.Builder
	name.WriteString(strings.ReplaceAll(strings.ToLower(string(set.Operation)), " ", "_"))
	name.WriteString(strconv.Itoa(index))
	if strings.HasPrefix(p.Name, "Vector") {
		name.WriteString("_vec")
	}
	name.WriteString("_" + string(p.Direction))
	return name.String()
}

// Table one row per primer, sets numbered from 1
func Table(sets []*primer.PrimerSet) []Row {
	var rows []Row
	for i, set := range sets {
		for _, p := range set.Primers {
			rows = append(rows, Row{
				Name:     PrimerName(set, i+1, p),
				Sequence: p.Sequence(),
				Primer:   p,
				Set:      set,
			})
		}
	}
	return rows
}

// Annotation "HR 20 bp; INS 3 bp; TBR 19 bp"
func Annotation(p *primer.Primer) string {
	return strings.Join(
		lo.Map(p.Regions, func(r primer.Region, _ int) string {
			return fmt.Sprintf("%s %d bp", r.Type, len(r.Sequence))
		}),
		"; ",
	)
}

func WriteText(w io.Writer, sets []*primer.PrimerSet) {
	for i, set := range sets {
		fmtUtil.Fprintf(w, "#%d\t%s\t%s\t%s\n", i+1, set.Title, set.Span, set.ID)
		for _, h := range set.Homology {
			fmtUtil.Fprintf(w, "homology\t%d bp\t%.1f°C\n", h.Length, h.Tm)
		}
		for _, p := range set.Primers {
			fmtUtil.Fprintf(w, "%s: %s\n", PrimerName(set, i+1, p), p.Sequence())
			fmtUtil.Fprintf(w, "\t%s\t%s\n", p.Name, Annotation(p))
		}
		if f := set.Fragment; f != nil {
			fmtUtil.Fprintf(w, "%s: %s\n", f.Name, f.Sequence)
			fmtUtil.Fprintf(w, "\tinsert %s\n", f.Insert)
		}
	}
}

func WriteCSV(w io.Writer, sets []*primer.PrimerSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableTitle); err != nil {
		return err
	}
	for _, row := range Table(sets) {
		if err := cw.Write([]string{row.Name, row.Sequence}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// gcPercent rounded to 0.01
func gcPercent(seq string) float64 {
	return math.Round(nucleotide.FractionGC(seq)*10000) / 100
}
