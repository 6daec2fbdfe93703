package engine

import (
	"math"

	"github.com/IPAMS/reactorsim/internal/particle"
)

const randomWalkScale = 0.01

// RandomWalk offsets every live particle's x and y by an independent draw
// uniform in [-scale/2, +scale/2), wrapping into the unit square by
// toroidal modulo; z is left unmodified. It is an auxiliary for standalone
// operation (spec §4.11) and is not invoked by the embedded driver.
//
// Whether leaving z unwrapped is deliberate (a 2D toy) or a latent bug in
// the system this was modeled on is unresolved (spec §9); this
// implementation preserves the asymmetry rather than "fixing" it.
func (s *Simulation) RandomWalk() {
	s.particles.Iter(func(p *particle.Particle) {
		p.X = wrapUnit(p.X + (s.random.Float64()-0.5)*randomWalkScale)
		p.Y = wrapUnit(p.Y + (s.random.Float64()-0.5)*randomWalkScale)
	})
}

// wrapUnit wraps x into [0,1) using toroidal (always-positive) modulo.
func wrapUnit(x float64) float64 {
	m := math.Mod(x, 1.0)
	if m < 0 {
		m += 1.0
	}
	return m
}
