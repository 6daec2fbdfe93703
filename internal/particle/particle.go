// Package particle implements the live-particle population: a discrete
// particle type and the intrusive doubly-linked list that owns them.
package particle

import "github.com/IPAMS/reactorsim/internal/substance"

// Particle is one simulated instance of a Discrete substance at a position.
// The substance field is a non-owning reference into the substance.Table;
// ownership of the Substance lies with the table.
type Particle struct {
	Substance *substance.Substance
	X, Y, Z   float64

	next, prev *Particle
}

// NewParticle constructs a particle of the given substance at position
// (x, y, z). It is not yet linked into any List.
func NewParticle(s *substance.Substance, x, y, z float64) *Particle {
	return &Particle{Substance: s, X: x, Y: y, Z: z}
}
