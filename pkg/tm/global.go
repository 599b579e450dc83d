package tm

// Algorithm names a base melting temperature model
type Algorithm string

const (
	OligoCalc    Algorithm = "oligoCalc"
	NNSantaLucia Algorithm = "nnSantaLucia"
)

// SaltCorrection names a salt correction formula, applied to nearest-neighbor results only
type SaltCorrection string

const (
	SchildkrautLifson SaltCorrection = "SchildkrautLifson"
	Owczarzy          SaltCorrection = "Owczarzy"
	// OwczarzyKelvin Owczarzy evaluated on absolute temperatures
	OwczarzyKelvin SaltCorrection = "OwczarzyKelvin"
)

// Symmetry selects the self-complementarity test of the nearest-neighbor model
type Symmetry string

const (
	// ReverseComplementSymmetry seq == reverseComplement(seq), a self-complementary duplex
	ReverseComplementSymmetry Symmetry = "reverseComplement"
	// ComplementSymmetry seq == complement(seq), kept for comparison with older designs
	ComplementSymmetry Symmetry = "complement"
)

const (
	AbsoluteZero = -273.15
	// R gas constant, cal K-1 mol-1
	R = 1.987
	// DMSOFactor °C per percent DMSO
	DMSOFactor = 0.6
)

// SantaLucia 1998 unified parameters, ΔH cal mol-1
var deltaH = map[string]float64{
	"AA": -7.9e3, "TT": -7.9e3,
	"AT": -7.2e3,
	"TA": -7.2e3,
	"CA": -8.5e3, "TG": -8.5e3,
	"GT": -8.4e3, "AC": -8.4e3,
	"CT": -7.8e3, "AG": -7.8e3,
	"GA": -8.2e3, "TC": -8.2e3,
	"CG": -10.6e3,
	"GC": -9.8e3,
	"GG": -8.0e3, "CC": -8.0e3,
}

// ΔS cal K-1 mol-1
var deltaS = map[string]float64{
	"AA": -22.2, "TT": -22.2,
	"AT": -20.4,
	"TA": -21.3,
	"CA": -22.7, "TG": -22.7,
	"GT": -22.4, "AC": -22.4,
	"CT": -21.0, "AG": -21.0,
	"GA": -22.2, "TC": -22.2,
	"CG": -27.2,
	"GC": -24.4,
	"GG": -19.9, "CC": -19.9,
}

// initiation terms
const (
	initGCDeltaH = 0.1e3
	initGCDeltaS = -2.8
	initATDeltaH = 2.3e3
	initATDeltaS = 4.1

	symmetryDeltaS = -1.4
)
