package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"ivaPrime/pkg/primer"
)

type Plasmid struct {
	Name     string
	Template primer.Template
}

// Operation one row of the Operations sheet
type Operation struct {
	Index   int
	ID      string
	Plasmid string
	Type    string

	Start, End int
	DNA, AA    string
	Organism   string

	// subcloning
	Origin     string
	From, To   int
	Seq5, Seq3 string
}

func LoadPlasmids(xlsx *excelize.File, sheet string, defaultCircular bool) (plasmidMap map[string]*Plasmid, plasmidList []string) {
	plasmidMap = make(map[string]*Plasmid)
	for i, item := range GetRows2MapArray(xlsx, sheet) {
		name := item["Name"]
		if name == "" {
			slog.Error("Skip plasmid without Name", "sheet", sheet, "row", i+2)
			continue
		}
		circular := defaultCircular
		switch strings.ToLower(item["Topology"]) {
		case "linear":
			circular = false
		case "circular":
			circular = true
		}
		if _, ok := plasmidMap[name]; ok {
			slog.Warn("Duplicate plasmid, keep the last", "name", name)
		} else {
			plasmidList = append(plasmidList, name)
		}
		plasmidMap[name] = &Plasmid{
			Name:     name,
			Template: primer.NewTemplate(item["Sequence"], circular),
		}
	}
	return
}

func atoi(item map[string]string, key string) (int, error) {
	s := item[key]
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, s, err)
	}
	return n, nil
}

func LoadOperations(xlsx *excelize.File, sheet string) (operations []*Operation, err error) {
	for i, item := range GetRows2MapArray(xlsx, sheet) {
		op := &Operation{
			Index:    i,
			ID:       item["ID"],
			Plasmid:  item["Plasmid"],
			Type:     item["Type"],
			DNA:      item["DNA"],
			AA:       item["AA"],
			Organism: item["Organism"],
			Origin:   item["Origin"],
			Seq5:     item["Seq5"],
			Seq3:     item["Seq3"],
		}
		if alias, ok := TypeAlias[strings.ToLower(op.Type)]; ok {
			op.Type = alias
		}
		if t, ok := primer.ParseOperationType(op.Type); ok {
			op.Type = string(t)
		}
		if op.ID == "" {
			op.ID = fmt.Sprintf("%s%d", strings.ToLower(op.Type), i+1)
		}
		for key, p := range map[string]*int{"Start": &op.Start, "End": &op.End, "From": &op.From, "To": &op.To} {
			if *p, err = atoi(item, key); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", sheet, i+2, err)
			}
		}
		operations = append(operations, op)
	}
	return
}

// Span of the operation, a point before Start for insertions.
// Subcloning and fragment operations insert when End is blank or Start-1.
func (op *Operation) Span() primer.Span {
	switch op.Type {
	case string(primer.Insertion):
		return primer.PointSpan(op.Start)
	case string(primer.Subcloning), fragmentType:
		return primer.ReplacementSpan(op.Start, op.End)
	}
	return primer.RangeSpan(op.Start, op.End)
}
