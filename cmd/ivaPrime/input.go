package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/TimothyStiles/poly/io/fasta"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"

	"ivaPrime/pkg/nucleotide"
	"ivaPrime/pkg/primer"
)

var fastaExt = map[string]bool{".fa": true, ".fasta": true, ".fna": true, ".fas": true}

// loadTemplate FASTA file, raw sequence file or a literal sequence.
// A "(linear)" or "(circular)" FASTA name overrides the circular setting.
func loadTemplate(arg string) (primer.Template, string, error) {
	var (
		name     = arg
		seq      string
		circular = cfg.Circular
	)
	switch {
	case osUtil.FileExists(arg) && fastaExt[strings.ToLower(filepath.Ext(arg))]:
		records, err := fasta.Read(arg)
		if err != nil {
			return primer.Template{}, "", fmt.Errorf("read %s: %w", arg, err)
		}
		if len(records) == 0 {
			return primer.Template{}, "", fmt.Errorf("no FASTA record in %s", arg)
		}
		name, seq = records[0].Name, records[0].Sequence
		switch lower := strings.ToLower(name); {
		case strings.Contains(lower, "(linear)"):
			circular = false
		case strings.Contains(lower, "(circular)"):
			circular = true
		}
	case osUtil.FileExists(arg):
		for _, line := range textUtil.File2Array(arg) {
			if strings.HasPrefix(line, ">") {
				continue
			}
			seq += strings.TrimSpace(line)
		}
		name = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
	default:
		seq, name = arg, "sequence"
	}

	seq = strings.ToUpper(strings.Join(strings.Fields(seq), ""))
	if seq == "" {
		return primer.Template{}, name, fmt.Errorf("empty sequence %s", arg)
	}
	if !nucleotide.IsNucleotideSequence(seq) {
		return primer.Template{}, name, fmt.Errorf("%s is neither a sequence file nor a nucleotide sequence", arg)
	}
	return primer.NewTemplate(seq, circular), name, nil
}
