package nucleotide

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOrganism  = errors.New("unknown organism")
	ErrUnknownAminoAcid = errors.New("unknown amino acid")
)

// InvalidSequenceError reports the first character that is not valid for the requested operation.
// Position is 1-based.
type InvalidSequenceError struct {
	Sequence string
	Position int
	Char     byte
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid base %q at %d", e.Char, e.Position)
}
