package tm

import "fmt"

// Config of the Tm engine, every value is supplied by the caller
type Config struct {
	Algorithm             Algorithm      `mapstructure:"algorithm" json:"algorithm"`
	PrimerConcentrationNM float64        `mapstructure:"primer-concentration-nm" json:"primerConcentrationNM"`
	SaltConcentrationM    float64        `mapstructure:"salt-concentration-m" json:"saltConcentrationM"`
	SaltCorrection        SaltCorrection `mapstructure:"salt-correction" json:"saltCorrection"`
	DMSOPercent           float64        `mapstructure:"dmso-percent" json:"dmsoPercent"`
	Symmetry              Symmetry       `mapstructure:"symmetry" json:"symmetry"`
}

// DefaultConfig oligoCalc, 100 nM primer, no salt or DMSO correction
func DefaultConfig() Config {
	return Config{
		Algorithm:             OligoCalc,
		PrimerConcentrationNM: 100,
		SaltCorrection:        SchildkrautLifson,
		Symmetry:              ReverseComplementSymmetry,
	}
}

// WithAlgorithm copy of c using a
func (c Config) WithAlgorithm(a Algorithm) Config {
	c.Algorithm = a
	return c
}

// Validate checks names and concentrations. Empty names fall back to the defaults.
func (c Config) Validate() error {
	switch c.Algorithm {
	case "", OligoCalc:
	case NNSantaLucia:
		if !(c.PrimerConcentrationNM > 0) {
			return fmt.Errorf("%w: primer concentration %g nM", ErrInvalidConcentration, c.PrimerConcentrationNM)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm)
	}
	switch c.SaltCorrection {
	case "", SchildkrautLifson, Owczarzy, OwczarzyKelvin:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSaltCorrection, c.SaltCorrection)
	}
	switch c.Symmetry {
	case "", ReverseComplementSymmetry, ComplementSymmetry:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSymmetry, c.Symmetry)
	}
	if c.SaltConcentrationM < 0 {
		return fmt.Errorf("%w: salt concentration %g M", ErrInvalidConcentration, c.SaltConcentrationM)
	}
	return nil
}
