package tm

import (
	"math"
	"strings"

	"ivaPrime/pkg/nucleotide"
)

// MeltingTemperature of seq in °C under cfg, never below AbsoluteZero.
// Salt and DMSO corrections apply only to nearest-neighbor results and only when nonzero.
func MeltingTemperature(seq string, cfg Config) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if seq == "" {
		return AbsoluteZero, nil
	}

	if cfg.Algorithm == "" || cfg.Algorithm == OligoCalc {
		return math.Max(OligoCalcTm(seq), AbsoluteZero), nil
	}

	tm, err := NearestNeighborTm(seq, cfg.PrimerConcentrationNM*1e-9, cfg.Symmetry)
	if err != nil {
		return 0, err
	}
	if salt := cfg.SaltConcentrationM; salt != 0 && !math.IsNaN(salt) {
		switch cfg.SaltCorrection {
		case Owczarzy:
			tm = OwczarzyCorrection(tm, seq, salt)
		case OwczarzyKelvin:
			tm = OwczarzyKelvinCorrection(tm, seq, salt)
		default:
			tm = SchildkrautLifsonCorrection(tm, salt)
		}
	}
	if dmso := cfg.DMSOPercent; dmso != 0 && !math.IsNaN(dmso) {
		tm = DMSOCorrection(tm, dmso)
	}
	return math.Max(tm, AbsoluteZero), nil
}

// OligoCalcTm 64.9 + 41*(GC-16.4)/len, AbsoluteZero for empty seq
func OligoCalcTm(seq string) float64 {
	if len(seq) == 0 {
		return AbsoluteZero
	}
	return 64.9 + 41*((float64(nucleotide.CountGC(seq))-16.4)/float64(len(seq)))
}

// Thermodynamics sums nearest-neighbor ΔH and ΔS with the initiation term, symmetry excluded
func Thermodynamics(seq string) (dH, dS float64, err error) {
	if strings.ContainsAny(seq, "GC") {
		dH, dS = initGCDeltaH, initGCDeltaS
	} else {
		dH, dS = initATDeltaH, initATDeltaS
	}
	for i := 0; i+1 < len(seq); i++ {
		pair := seq[i : i+2]
		h, ok := deltaH[pair]
		if !ok {
			j := i
			if strings.IndexByte("ACGT", seq[i]) >= 0 {
				j = i + 1
			}
			return 0, 0, &nucleotide.InvalidSequenceError{Sequence: seq, Position: j + 1, Char: seq[j]}
		}
		dH += h
		dS += deltaS[pair]
	}
	if len(seq) == 1 {
		if err = nucleotide.ValidatePrimerSequence(seq); err != nil {
			return 0, 0, err
		}
	}
	return dH, dS, nil
}

// SelfComplementary under the given symmetry check
func SelfComplementary(seq string, symmetry Symmetry) bool {
	if symmetry == ComplementSymmetry {
		return seq == nucleotide.Complement(seq)
	}
	return seq == nucleotide.ReverseComplement(seq)
}

// NearestNeighborTm SantaLucia 1998, concentrationM total strand concentration in M
func NearestNeighborTm(seq string, concentrationM float64, symmetry Symmetry) (float64, error) {
	dH, dS, err := Thermodynamics(seq)
	if err != nil {
		return 0, err
	}
	var x = 4.0
	if SelfComplementary(seq, symmetry) {
		dS += symmetryDeltaS
		x = 1
	}
	denominator := dS + R*math.Log(concentrationM/x)
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return 0, &DegenerateMeltingTemperatureError{Sequence: seq, DeltaH: dH, DeltaS: dS, Denominator: denominator}
	}
	return dH/denominator + AbsoluteZero, nil
}

// SchildkrautLifsonCorrection tm + 16.6·ln(salt)
func SchildkrautLifsonCorrection(tm, salt float64) float64 {
	return tm + 16.6*math.Log(salt)
}

// OwczarzyCorrection 1/T2 = 1/T1 + (4.29·fGC - 3.95)e-5·ln(salt) + 9.4e-6·ln²(salt), T in °C
func OwczarzyCorrection(tm float64, seq string, salt float64) float64 {
	return 1 / (1/tm + owczarzyTerm(seq, salt))
}

// OwczarzyKelvinCorrection same formula evaluated in Kelvin, as published
func OwczarzyKelvinCorrection(tm float64, seq string, salt float64) float64 {
	return 1/(1/(tm-AbsoluteZero)+owczarzyTerm(seq, salt)) + AbsoluteZero
}

func owczarzyTerm(seq string, salt float64) float64 {
	lnSalt := math.Log(salt)
	return (4.29*nucleotide.FractionGC(seq)-3.95)*1e-5*lnSalt + 9.4e-6*lnSalt*lnSalt
}

// DMSOCorrection tm - 0.6·percent
func DMSOCorrection(tm, percent float64) float64 {
	return tm - DMSOFactor*percent
}
