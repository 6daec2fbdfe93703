// Package engine implements the Monte Carlo reaction engine: the
// Simulation type owning the particle population, the precomputed
// per-species reaction index, the concentration counters, and the
// per-time-step react loop (spec §4.5-§4.11).
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/IPAMS/reactorsim/internal/parser"
	"github.com/IPAMS/reactorsim/internal/particle"
	"github.com/IPAMS/reactorsim/internal/randsrc"
	"github.com/IPAMS/reactorsim/internal/reaction"
	"github.com/IPAMS/reactorsim/internal/substance"
)

// Simulation owns the population, the per-species reaction index, the
// concentration counters, and executes the Monte Carlo step.
type Simulation struct {
	substances *substance.Table
	reactions  []*reaction.Reaction

	// ri[s] holds, for each Discrete substance s, the independent reactions
	// whose unique discrete educt is s, in configuration-file order.
	ri map[*substance.Substance][]*reaction.Reaction
	// riStaticProbs[s][i] == ri[s][i].StaticProbability(), kept aligned by
	// construction; the two slices must never be sorted independently.
	riStaticProbs map[*substance.Substance][]float64
	// rd[s] holds dependent reactions with a discrete educt s. Populated but
	// not consulted by React (spec §4.9, §9 open question).
	rd map[*substance.Substance][]*reaction.Reaction

	particles *particle.List
	ionMap    map[int]*particle.Particle

	concentrations map[*substance.Substance]int

	nSteps      int
	sumTimestep float64
	illEvents   int

	random       randsrc.Source
	callbacks    Callbacks
	logIllEvents bool
	log          logrus.FieldLogger
	runID        uuid.UUID
}

// New parses cfg.ConfigReader and constructs a Simulation, building the
// per-species independent/dependent reaction tables and static-probability
// cache (spec §4.5).
func New(cfg Config) (*Simulation, error) {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	random := cfg.Random
	if random == nil {
		random = randsrc.NewMathRand(time.Now().UnixNano())
	}

	result, err := parser.Parse(cfg.ConfigReader, cfg.RateConstantConversionFactor, log)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		substances:     result.Substances,
		reactions:      result.Reactions,
		ri:             make(map[*substance.Substance][]*reaction.Reaction),
		riStaticProbs:  make(map[*substance.Substance][]float64),
		rd:             make(map[*substance.Substance][]*reaction.Reaction),
		particles:      particle.NewList(),
		ionMap:         make(map[int]*particle.Particle),
		concentrations: make(map[*substance.Substance]int),
		random:         random,
		callbacks:      cfg.Callbacks,
		logIllEvents:   cfg.LogIllEvents,
		log:            log,
		runID:          uuid.New(),
	}

	result.Substances.Discrete(func(s *substance.Substance) {
		sim.concentrations[s] = 0
	})

	for _, r := range result.Reactions {
		if r.Independent() {
			s := r.SoleDiscreteEduct()
			sim.ri[s] = append(sim.ri[s], r)
			sim.riStaticProbs[s] = append(sim.riStaticProbs[s], r.StaticProbability())
			continue
		}
		seen := make(map[*substance.Substance]bool)
		for _, t := range r.DiscreteEducts() {
			if seen[t.Substance] {
				continue
			}
			seen[t.Substance] = true
			sim.rd[t.Substance] = append(sim.rd[t.Substance], r)
		}
	}

	return sim, nil
}

// Substances returns the simulation's substance registry.
func (s *Simulation) Substances() *substance.Table { return s.substances }

// Concentration returns the live particle count for a Discrete substance.
func (s *Simulation) Concentration(subst *substance.Substance) int {
	return s.concentrations[subst]
}

// ParticleCount returns the total number of live particles.
func (s *Simulation) ParticleCount() int { return s.particles.Len() }

// IllEvents returns the cumulative count of firings whose probability was
// >= 1 (spec glossary: "Ill event").
func (s *Simulation) IllEvents() int { return s.illEvents }

// Steps returns the number of completed AdvanceTimestep calls.
func (s *Simulation) Steps() int { return s.nSteps }

// SumTimestep returns the cumulative dt passed to AdvanceTimestep.
func (s *Simulation) SumTimestep() float64 { return s.sumTimestep }

// RunID returns the UUID stamped onto this Simulation's ill-event log
// lines. The standalone driver also logs it when a run starts and ends; it
// is not written into the output file.
func (s *Simulation) RunID() uuid.UUID { return s.runID }

// DependentReactions returns the dependent (multi-discrete-educt) reactions
// indexed against subst. React never fires these; the index exists so a
// future caller can enumerate them (spec §9 open question).
func (s *Simulation) DependentReactions(subst *substance.Substance) []*reaction.Reaction {
	return s.rd[subst]
}

// Particle returns the live particle currently registered under index, or
// nil if index has no live entry.
func (s *Simulation) Particle(index int) *particle.Particle {
	return s.ionMap[index]
}

// AddParticle inserts p into the population under the external index,
// incrementing the owning substance's concentration counter. If index
// already has a live entry, it is silently overwritten — this is the
// mechanism React uses to replace a reacted particle with its product in
// place (spec §4.6).
func (s *Simulation) AddParticle(p *particle.Particle, index int) {
	s.particles.Insert(p)
	s.concentrations[p.Substance]++
	s.ionMap[index] = p
}

// DestroyParticle removes p from the population and decrements its
// substance's concentration counter. It does not clear any ion_map entry
// that pointed at p; callers that fully retire an external index must call
// RemoveP (spec §4.7).
func (s *Simulation) DestroyParticle(p *particle.Particle) {
	s.particles.Remove(p)
	s.concentrations[p.Substance]--
}

// RemoveP clears the ion_map entry for index, if any.
func (s *Simulation) RemoveP(index int) {
	delete(s.ionMap, index)
}

// UpdatePosition writes new coordinates onto the particle referenced by
// index. index must be live (spec §4.8).
func (s *Simulation) UpdatePosition(index int, x, y, z float64) {
	p := s.ionMap[index]
	p.X, p.Y, p.Z = x, y, z
}

// AdvanceTimestep increments the step counter and accumulates dt. It must
// be called exactly once per simulation time step (spec §4.10).
func (s *Simulation) AdvanceTimestep(dt float64) {
	s.nSteps++
	s.sumTimestep += dt
}
