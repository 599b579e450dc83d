package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"ivaPrime/pkg/primer"
)

type designResult struct {
	Operation *Operation
	Set       *primer.PrimerSet
	Status    string
	Message   string
}

func (r *designResult) statusLine() []any {
	op := r.Operation
	line := []any{op.ID, op.Plasmid, op.Type, op.Span().String(), r.Status}
	if r.Set == nil {
		return append(line, "", 0, 0, "", r.Message)
	}
	return append(
		line,
		r.Set.Title,
		len(r.Set.Primers),
		lo.Mean(lo.Map(r.Set.Primers, func(p *primer.Primer, _ int) float64 { return float64(p.Len()) })),
		strings.Join(lo.Map(r.Set.Homology, func(h primer.Homology, _ int) string { return fmt.Sprintf("%.1f", h.Tm) }), ","),
		r.Message,
	)
}

// runOperation a panic or an error becomes a failed status
func runOperation(d *primer.Designer, op *Operation, plasmidMap map[string]*Plasmid) (result designResult) {
	result = designResult{Operation: op, Status: statusFail}
	defer func() {
		if e := recover(); e != nil {
			slog.Error("Design panic", "id", op.ID, "panic", e)
			result.Set = nil
			result.Status = statusFail
			result.Message = fmt.Sprint(e)
		}
	}()

	set, err := design(d, op, plasmidMap)
	if err != nil {
		slog.Error("Design fail", "id", op.ID, "type", op.Type, "err", err)
		result.Message = err.Error()
		return
	}
	slog.Info("Design", "id", op.ID, "title", set.Title, "primers", len(set.Primers))
	result.Set = set
	result.Status = statusPass
	return
}

func design(d *primer.Designer, op *Operation, plasmidMap map[string]*Plasmid) (*primer.PrimerSet, error) {
	plasmid, ok := plasmidMap[op.Plasmid]
	if !ok {
		return nil, fmt.Errorf("unknown plasmid %q", op.Plasmid)
	}
	switch op.Type {
	case string(primer.Insertion), string(primer.Deletion), string(primer.Mutation):
		return d.GenerateSet(plasmid.Template, primer.Operation{
			Type:      primer.OperationType(op.Type),
			Span:      op.Span(),
			DNAInsert: op.DNA,
			AAInsert:  op.AA,
			Organism:  op.Organism,
		})
	case string(primer.Subcloning):
		origin, ok := plasmidMap[op.Origin]
		if !ok {
			return nil, fmt.Errorf("unknown origin plasmid %q", op.Origin)
		}
		target, err := primer.SubcloningTarget(origin.Template, op.From, op.To)
		if err != nil {
			return nil, err
		}
		return d.GenerateSubcloningSet(plasmid.Template, primer.Subclone{
			Span:      op.Span(),
			Target:    target,
			Seq5Prime: op.Seq5,
			Seq3Prime: op.Seq3,
		})
	case fragmentType:
		return d.InsertFromLinearFragment(plasmid.Template, op.Span(), op.DNA, op.ID)
	default:
		return nil, fmt.Errorf("unknown operation type %q", op.Type)
	}
}
