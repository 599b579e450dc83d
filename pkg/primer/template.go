package primer

import (
	"fmt"
	"strings"

	"ivaPrime/pkg/nucleotide"
)

// Template plasmid or linear sequence that primers are designed against
type Template struct {
	Sequence string
	Circular bool
}

// NewTemplate sanitizes seq
func NewTemplate(seq string, circular bool) Template {
	return Template{Sequence: nucleotide.Sanitize(seq), Circular: circular}
}

func (t Template) Len() int {
	return len(t.Sequence)
}

// ReverseComplement template of the bottom strand, same topology
func (t Template) ReverseComplement() Template {
	return Template{Sequence: nucleotide.ReverseComplement(t.Sequence), Circular: t.Circular}
}

// Slice half-open [from, to) in 0-based positions.
// Circular templates wrap modulo length, linear ones fail with ErrOutOfBases outside [0, Len].
func (t Template) Slice(from, to int) (string, error) {
	n := t.Len()
	if to < from {
		return "", fmt.Errorf("slice [%d,%d): %w", from, to, ErrInvalidSpan)
	}
	if !t.Circular {
		if from < 0 || to > n {
			return "", fmt.Errorf("slice [%d,%d) of %d bases: %w", from, to, n, ErrOutOfBases)
		}
		return t.Sequence[from:to], nil
	}
	if n == 0 {
		if to == from {
			return "", nil
		}
		return "", fmt.Errorf("slice [%d,%d) of empty template: %w", from, to, ErrOutOfBases)
	}
	var (
		b strings.Builder
		i = ((from % n) + n) % n
	)
	b.Grow(to - from)
	for k := from; k < to; k++ {
		b.WriteByte(t.Sequence[i])
		i++
		if i == n {
			i = 0
		}
	}
	return b.String(), nil
}

// Span 1-based inclusive operation site, End == Start-1 marks a pure insertion point before Start
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PointSpan insertion point before base pos
func PointSpan(pos int) Span {
	return Span{Start: pos, End: pos - 1}
}

// RangeSpan normalizes an unordered pair
func RangeSpan(a, b int) Span {
	return Span{Start: min(a, b), End: max(a, b)}
}

// ReplacementSpan start..end replaced, or an insertion point before start when end is start-1 or unset
func ReplacementSpan(start, end int) Span {
	if end == 0 || end == start-1 {
		return PointSpan(start)
	}
	return RangeSpan(start, end)
}

func (s Span) IsPoint() bool {
	return s.End == s.Start-1
}

// Len bases replaced by the operation
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Validate against a template of n bases
func (s Span) Validate(n int) error {
	if s.Start < 1 || s.End < s.Start-1 || s.End > n || s.Start > n+1 {
		return fmt.Errorf("%w: [%d,%d] on %d bases", ErrInvalidSpan, s.Start, s.End, n)
	}
	return nil
}

func (s Span) String() string {
	if s.IsPoint() {
		return fmt.Sprintf("^%d", s.Start)
	}
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Replace sequence of the template once span is replaced by insert
func (t Template) Replace(s Span, insert string) string {
	return t.Sequence[:s.Start-1] + insert + t.Sequence[s.End:]
}

// SubcloningTarget 1-based inclusive [from, to] of origin, wrapping across the origin of a circular template when from > to
func SubcloningTarget(origin Template, from, to int) (string, error) {
	n := origin.Len()
	if from < 1 || to < 1 || from > n || to > n {
		return "", fmt.Errorf("%w: [%d,%d] on %d bases", ErrInvalidSpan, from, to, n)
	}
	if from <= to {
		return origin.Sequence[from-1 : to], nil
	}
	if !origin.Circular {
		return "", fmt.Errorf("[%d,%d] across the ends of a linear template: %w", from, to, ErrOutOfBases)
	}
	return origin.Slice(from-1, to+n)
}
