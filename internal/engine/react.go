package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/IPAMS/reactorsim/internal/particle"
)

// React runs the Monte Carlo inner loop for the particle currently
// registered under index (spec §4.9). KE is accepted and ignored — no
// activation-energy term is computed or applied (spec §9 open
// question). Exactly one PRNG draw is consumed per candidate reaction
// examined, including the one that fires, for bit-identical reproducibility
// under a fixed seed.
//
// React does not process dependent (multi-discrete-educt) reactions; after
// a fire it stops, since the original particle no longer exists. index must
// already be registered via AddParticle — reacting an unknown index is a
// programming error by the embedding and panics, per spec §7.
func (s *Simulation) React(index int, ke, dt float64) {
	p, ok := s.ionMap[index]
	if !ok {
		panic("engine: React called with an index that is not in ion_map")
	}
	_ = ke // activation energy / kinetic energy handling is a future extension

	subst := p.Substance
	reactions := s.ri[subst]
	probs := s.riStaticProbs[subst]

	for i, r := range reactions {
		u := s.random.Float64()
		prob := probs[i] * dt
		if u >= prob {
			continue
		}

		if prob >= 1 {
			s.illEvents++
			if s.logIllEvents {
				s.log.WithFields(logrus.Fields{
					"run_id":      s.runID,
					"step":        s.nSteps,
					"reaction":    i,
					"substance":   subst.Name(),
					"probability": prob,
				}).Warn("engine: ill reaction event (static_probability * dt >= 1)")
			}
		}

		s.DestroyParticle(p)

		products := r.DiscreteProductMultiset()
		if len(products) == 0 {
			// A pure destruction reaction: no product to spawn.
			s.RemoveP(index)
			return
		}
		qSubstance := products[0]
		q := particle.NewParticle(qSubstance, p.X, p.Y, p.Z)
		s.AddParticle(q, index)

		if s.callbacks != nil {
			s.callbacks.UpdateIonMass(qSubstance.Mass())
			s.callbacks.UpdateIonCharge(qSubstance.Charge())
			s.callbacks.UpdateIonColor(s.substances.IndexOf(qSubstance))
		}
		return
	}
}
