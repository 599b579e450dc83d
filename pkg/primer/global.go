package primer

import (
	"strings"

	"ivaPrime/pkg/tm"
)

// MaxExtensionIterations bounds every extension loop
const MaxExtensionIterations = 100

type Strand string

const (
	Top    Strand = "top"
	Bottom Strand = "bottom"
)

// Direction 5'->3' growth along the selected strand
type Direction string

const (
	Forward Direction = "fwd"
	Reverse Direction = "rev"
)

type OperationType string

const (
	Insertion  OperationType = "Insertion"
	Deletion   OperationType = "Deletion"
	Mutation   OperationType = "Mutation"
	Subcloning OperationType = "Subcloning"
)

// ParseOperationType case-insensitive
func ParseOperationType(s string) (OperationType, bool) {
	for _, op := range []OperationType{Insertion, Deletion, Mutation, Subcloning} {
		if strings.EqualFold(string(op), s) {
			return op, true
		}
	}
	return "", false
}

type Symmetry string

const (
	Symmetric  Symmetry = "symmetric"
	Asymmetric Symmetry = "asymmetric"
)

type RegionType string

const (
	// HR homologous region
	HR RegionType = "HR"
	// INS inserted bases
	INS RegionType = "INS"
	// TBR template-binding region
	TBR RegionType = "TBR"
)

type Color string

const (
	Red    Color = "red"
	Orange Color = "orange"
	Cyan   Color = "cyan"
	Green  Color = "green"
	Purple Color = "purple"
)

// RegionColor display tag of a region, subcloning primers use their own HR/TBR colors
func RegionColor(t RegionType, subcloning bool) Color {
	switch t {
	case INS:
		return Red
	case HR:
		if subcloning {
			return Cyan
		}
		return Orange
	default:
		if subcloning {
			return Purple
		}
		return Green
	}
}

// primer names
const (
	ForwardPrimer       = "Forward primer"
	ReversePrimer       = "Reverse primer"
	VectorForwardPrimer = "Vector forward primer"
	VectorReversePrimer = "Vector reverse primer"
)

const DefaultOrganism = "Escherichia coli"

// Settings of the primer designer
type Settings struct {
	Symmetric           bool      `mapstructure:"symmetric-primers" json:"symmetricPrimers"`
	HRMinLength         int       `mapstructure:"hr-min-length" json:"hrMinLength"`
	HRTm                float64   `mapstructure:"hr-tm" json:"hrTm"`
	HRSubcloningTm      float64   `mapstructure:"hr-subcloning-tm" json:"hrSubcloningTm"`
	TBRTm               float64   `mapstructure:"tbr-tm" json:"tbrTm"`
	TBRMinLength        int       `mapstructure:"tbr-min-length" json:"tbrMinLength"`
	MaxTmShortInsertion float64   `mapstructure:"max-tm-short-insertion" json:"maxTmShortInsertion"`
	Organism            string    `mapstructure:"organism" json:"organism"`
	// ScaleCodons sharpens codon usage toward common codons before each draw
	ScaleCodons         bool      `mapstructure:"scale-codon-frequencies" json:"scaleCodonFrequencies"`
	Tm                  tm.Config `mapstructure:"tm" json:"tm"`
}

func DefaultSettings() Settings {
	return Settings{
		Symmetric:           true,
		HRMinLength:         18,
		HRTm:                50,
		HRSubcloningTm:      55,
		TBRTm:               60,
		TBRMinLength:        7,
		MaxTmShortInsertion: 49.5,
		Organism:            DefaultOrganism,
		ScaleCodons:         true,
		Tm:                  tm.DefaultConfig(),
	}
}
