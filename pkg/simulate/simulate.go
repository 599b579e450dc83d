// Package simulate checks a primer set by in-silico PCR on its template
package simulate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/TimothyStiles/poly/primers"
	"github.com/TimothyStiles/poly/primers/pcr"
	"github.com/samber/lo"

	"ivaPrime/pkg/primer"
)

const (
	// DefaultTargetTm minimal binding Tm of a primer 3' end
	DefaultTargetTm = 45.0

	// MinimalBindingLength shortest 3' end pcr.SimulateSimple tries as a binding site
	MinimalBindingLength = 15

	// bindingTmStep margin above a 3' end that already reaches the target
	bindingTmStep = 0.5
)

type Report struct {
	// BindingTm target actually handed to the PCR simulation
	BindingTm float64  `json:"bindingTm"`
	Amplicons []string `json:"amplicons"`
	// Consistent some amplicon recombines into the set product
	Consistent bool `json:"consistent"`
}

// Primers of set, forward ones first
func Primers(set *primer.PrimerSet) []string {
	fwd := lo.Filter(set.Primers, func(p *primer.Primer, _ int) bool { return p.Direction == primer.Forward })
	rev := lo.Filter(set.Primers, func(p *primer.Primer, _ int) bool { return p.Direction == primer.Reverse })
	return lo.Map(append(fwd, rev...), func(p *primer.Primer, _ int) string { return p.Sequence() })
}

// BindingTm targetTm raised until every primer's MinimalBindingLength 3' end melts below it.
// pcr.SimulateSimple keeps no binding site at all for a primer whose shortest 3' end already reaches the target.
func BindingTm(primerList []string, targetTm float64) float64 {
	bindingTm := targetTm
	for _, p := range primerList {
		if len(p) < MinimalBindingLength {
			continue
		}
		if tail := primers.MeltingTemp(p[len(p)-MinimalBindingLength:]); tail >= bindingTm {
			bindingTm = tail + bindingTmStep
		}
	}
	return bindingTm
}

// Amplify runs PCR of the set primers on template, returns the target used too
func Amplify(template primer.Template, set *primer.PrimerSet, targetTm float64) ([]string, float64, error) {
	primerList := Primers(set)
	for _, p := range primerList {
		if len(p) < MinimalBindingLength {
			return nil, 0, fmt.Errorf("primer %s shorter than %d bases", p, MinimalBindingLength)
		}
	}
	bindingTm := BindingTm(primerList, targetTm)
	amplicons := pcr.SimulateSimple([]string{template.Sequence}, bindingTm, template.Circular, primerList)
	slog.Debug("Amplify", "set", set.ID, "targetTm", targetTm, "bindingTm", bindingTm, "amplicons", len(amplicons))
	return amplicons, bindingTm, nil
}

// ConsistentWith amplicon covers the circular product once its homologous ends recombine
func ConsistentWith(amplicon, product string) bool {
	if product == "" || len(amplicon) < len(product) || len(amplicon) > 2*len(product) {
		return false
	}
	amplicon, product = strings.ToUpper(amplicon), strings.ToUpper(product)
	return strings.Contains(product+product, amplicon)
}

func Check(template primer.Template, set *primer.PrimerSet, targetTm float64) (Report, error) {
	amplicons, bindingTm, err := Amplify(template, set, targetTm)
	if err != nil {
		return Report{}, err
	}
	return Report{
		BindingTm: bindingTm,
		Amplicons: amplicons,
		Consistent: lo.SomeBy(amplicons, func(a string) bool {
			return ConsistentWith(a, set.Product)
		}),
	}, nil
}
