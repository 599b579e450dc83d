package tm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAlgorithm      = errors.New("unknown melting temperature algorithm")
	ErrUnknownSaltCorrection = errors.New("unknown salt correction")
	ErrUnknownSymmetry       = errors.New("unknown symmetry check")
	ErrInvalidConcentration  = errors.New("invalid concentration")
)

// DegenerateMeltingTemperatureError nearest-neighbor denominator ΔS + R·ln(C/x) is zero or not finite
type DegenerateMeltingTemperatureError struct {
	Sequence    string
	DeltaH      float64
	DeltaS      float64
	Denominator float64
}

func (e *DegenerateMeltingTemperatureError) Error() string {
	return fmt.Sprintf("degenerate melting temperature for %q: ΔH=%g ΔS=%g denominator=%g", e.Sequence, e.DeltaH, e.DeltaS, e.Denominator)
}
