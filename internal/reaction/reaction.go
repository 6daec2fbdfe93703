// Package reaction models one elementary chemical reaction: its
// stoichiometry, rate constant, and the derived quantities the engine's
// Monte Carlo loop needs at runtime.
package reaction

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/IPAMS/reactorsim/internal/substance"
)

// Term is one stoichiometric term: a substance and its integer coefficient.
type Term struct {
	Substance *substance.Substance
	Factor    int
}

// Reaction is one elementary reaction, constructed once from parser output
// and immutable thereafter.
type Reaction struct {
	Educts           []Term
	Products         []Term
	RateConstant     float64
	ActivationEnergy *float64 // nil if not specified

	discreteEducts          []Term
	discreteProductMultiset []*substance.Substance
	staticProbability       float64
	independent             bool
}

// New builds a Reaction from educts and products (each a set of
// substance/coefficient terms), a rate constant already converted into the
// engine's time-unit basis, and an optional activation energy.
//
// The constructor trusts that products are semantically Discrete; the
// config parser is responsible for warning about non-Discrete products
// before reactions are ever constructed (spec §4.1 "Validation").
func New(educts, products []Term, rateConstant float64, activationEnergy *float64) *Reaction {
	r := &Reaction{
		Educts:           educts,
		Products:         products,
		RateConstant:     rateConstant,
		ActivationEnergy: activationEnergy,
	}
	r.build()
	return r
}

func (r *Reaction) build() {
	var isotropicFactors []float64
	var isotropicConcentrations []float64
	for _, t := range r.Educts {
		switch t.Substance.Kind() {
		case substance.Discrete:
			r.discreteEducts = append(r.discreteEducts, t)
		case substance.Isotropic:
			isotropicFactors = append(isotropicFactors, float64(t.Factor))
			isotropicConcentrations = append(isotropicConcentrations, t.Substance.StaticConcentration())
		}
	}

	for _, t := range r.Products {
		if t.Substance.Kind() != substance.Discrete {
			continue
		}
		for i := 0; i < t.Factor; i++ {
			r.discreteProductMultiset = append(r.discreteProductMultiset, t.Substance)
		}
	}

	prob := r.RateConstant
	for i := range isotropicConcentrations {
		prob *= math.Pow(isotropicConcentrations[i], isotropicFactors[i])
	}
	r.staticProbability = prob
	// floats.Sum is used here (rather than a hand rolled accumulator) to
	// total the discrete educt coefficients, matching the style of the
	// pack's gonum-based numeric helpers.
	coeffs := make([]float64, len(r.discreteEducts))
	for i, t := range r.discreteEducts {
		coeffs[i] = float64(t.Factor)
	}
	r.independent = floats.Sum(coeffs) == 1
}

// DiscreteEducts returns the subset of educts whose substance is Discrete.
func (r *Reaction) DiscreteEducts() []Term { return r.discreteEducts }

// DiscreteProductMultiset returns a flat ordered sequence containing each
// Discrete product repeated by its stoichiometric coefficient.
func (r *Reaction) DiscreteProductMultiset() []*substance.Substance {
	return r.discreteProductMultiset
}

// StaticProbability returns rate_constant * product(c_i^f_i) over all
// Isotropic educts.
func (r *Reaction) StaticProbability() float64 { return r.staticProbability }

// Independent reports whether the sum of discrete educt coefficients is 1.
func (r *Reaction) Independent() bool { return r.independent }

// SoleDiscreteEduct returns the single discrete educt substance for an
// independent reaction. It panics if called on a non-independent reaction.
func (r *Reaction) SoleDiscreteEduct() *substance.Substance {
	if !r.independent {
		panic("reaction: SoleDiscreteEduct called on a non-independent reaction")
	}
	return r.discreteEducts[0].Substance
}
