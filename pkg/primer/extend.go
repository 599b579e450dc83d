package primer

import (
	"fmt"
	"log/slog"
	"math"

	"ivaPrime/pkg/nucleotide"
	"ivaPrime/pkg/tm"
)

// Extension parameters of a single fragment
type Extension struct {
	// Anchor 0-based cut position on the top strand, between bases Anchor and Anchor+1 (1-based)
	Anchor    int
	Strand    Strand
	Direction Direction
	TargetTm  float64
	MinLength int
	// Initial sequence kept at the anchored end of every candidate
	Initial string
}

// Extend grows a fragment base by base away from the anchor until its Tm reaches TargetTm at MinLength or more.
// Of the first passing candidate and the one before it, the one closer to TargetTm wins,
// ties and a too short predecessor keep the passing one.
func Extend(t Template, ext Extension, cfg tm.Config) (string, error) {
	var (
		work   = t
		anchor = ext.Anchor
	)
	if ext.Strand == Bottom {
		work = t.ReverseComplement()
		anchor = t.Len() - ext.Anchor
	}
	if anchor < 0 || anchor > work.Len() {
		return "", fmt.Errorf("anchor %d on %d bases: %w", ext.Anchor, t.Len(), ErrInvalidSpan)
	}

	candidate := func(length int) (string, float64, error) {
		var (
			s   string
			err error
		)
		if ext.Direction == Reverse {
			s, err = work.Slice(anchor-length, anchor)
			s += ext.Initial
		} else {
			s, err = work.Slice(anchor, anchor+length)
			s = ext.Initial + s
		}
		if err != nil {
			return "", 0, err
		}
		if err = nucleotide.ValidatePrimerSequence(s); err != nil {
			return "", 0, err
		}
		v, err := tm.MeltingTemperature(s, cfg)
		return s, v, err
	}

	length := max(0, ext.MinLength-len(ext.Initial))
	cur, curTm, err := candidate(length)
	if err != nil {
		return "", err
	}
	var (
		prev   string
		prevTm float64
	)
	for i := 0; i < MaxExtensionIterations; i++ {
		if curTm >= ext.TargetTm && len(cur) >= ext.MinLength {
			result := cur
			if i > 0 && len(prev) >= ext.MinLength && math.Abs(prevTm-ext.TargetTm) < math.Abs(curTm-ext.TargetTm) {
				result = prev
			}
			slog.Debug("Extend", "strand", ext.Strand, "direction", ext.Direction, "anchor", ext.Anchor, "length", len(result), "iterations", i)
			return result, nil
		}
		prev, prevTm = cur, curTm
		length++
		cur, curTm, err = candidate(length)
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: target %.2f °C from anchor %d (%s, %s), last %.2f °C at %d bases",
		ErrExtensionNotConverged, ext.TargetTm, ext.Anchor, ext.Strand, ext.Direction, curTm, len(cur))
}
