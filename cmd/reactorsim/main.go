// Command reactorsim is the standalone one-pot driver for the reaction
// engine (spec §6). It is a thin collaborator around internal/engine: it
// owns no simulation logic of its own, only argument parsing, particle
// seeding, the per-step drive loop, and CSV/log output.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ireactorconfig "github.com/IPAMS/reactorsim/internal/config"
	"github.com/IPAMS/reactorsim/internal/engine"
	"github.com/IPAMS/reactorsim/internal/particle"
	"github.com/IPAMS/reactorsim/internal/randsrc"
	"github.com/IPAMS/reactorsim/internal/stats"
	"github.com/IPAMS/reactorsim/internal/substance"
)

const version = "1.0.0"

// rateConstantConversionFactor converts a configuration file's rate
// constants, specified in reciprocal seconds, into the engine's reciprocal
// microsecond basis (spec §4.1).
const rateConstantConversionFactor = 1e6

func main() {
	cfg := ireactorconfig.New()

	root := &cobra.Command{
		Use:     "reactorsim nSteps maxDt nParticles outFile",
		Short:   "Monte Carlo chemical reaction kinetics simulator",
		Version: version,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}
	root.Flags().AddFlagSet(cfg.Root)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *ireactorconfig.Cfg, args []string) error {
	nSteps, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("reactorsim: invalid nSteps %q: %w", args[0], err)
	}
	maxDt, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("reactorsim: invalid maxDt %q: %w", args[1], err)
	}
	nParticles, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("reactorsim: invalid nParticles %q: %w", args[2], err)
	}
	outFile := args[3]

	if err := cfg.LoadRunOptionsFile(); err != nil {
		return fmt.Errorf("reactorsim: loading run options: %w", err)
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Viper.GetString(ireactorconfig.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	reactionFile := cfg.Viper.GetString(ireactorconfig.ReactionFile)
	if reactionFile == "" {
		return fmt.Errorf("reactorsim: %s is required", ireactorconfig.ReactionFile)
	}
	f, err := os.Open(reactionFile)
	if err != nil {
		return fmt.Errorf("reactorsim: opening reaction file: %w", err)
	}

	var random randsrc.Source
	seed := cfg.Int64(ireactorconfig.Seed)
	switch cfg.Viper.GetString(ireactorconfig.RandomBackend) {
	case "xexprand":
		random = randsrc.NewXExpRand(uint64(seed))
	default:
		random = randsrc.NewMathRand(seed)
	}

	sim, err := engine.New(engine.Config{
		ConfigReader:                 f,
		RateConstantConversionFactor: rateConstantConversionFactor,
		Random:                       random,
		LogIllEvents:                 cfg.Viper.GetBool(ireactorconfig.LogIllEvents),
		Logger:                       logger,
	})
	if err != nil {
		return fmt.Errorf("reactorsim: building simulation: %w", err)
	}
	f.Close()

	logger.WithField("run_id", sim.RunID()).Info("reactorsim: simulation initialized")

	seedParticles(sim, nParticles)

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("reactorsim: creating output file: %w", err)
	}
	defer out.Close()

	discreteSubstances := make([]*substance.Substance, 0, sim.Substances().DiscreteLen())
	sim.Substances().Discrete(func(s *substance.Substance) {
		discreteSubstances = append(discreteSubstances, s)
	})

	summary := stats.NewSummary()
	for step := 0; step < nSteps; step++ {
		sim.RandomWalk()
		sim.AdvanceTimestep(maxDt)
		summary.Observe(maxDt)

		for idx := 0; idx < nParticles; idx++ {
			if sim.Particle(idx) == nil {
				continue
			}
			sim.React(idx, 0, maxDt)
		}

		fmt.Fprintf(out, "%g", sim.SumTimestep())
		for _, s := range discreteSubstances {
			fmt.Fprintf(out, "; %d", sim.Concentration(s))
		}
		fmt.Fprint(out, "; \n")
	}
	summary.SetIllEvents(sim.IllEvents())
	fmt.Fprint(out, summary.TrailerLine())

	logger.WithFields(logrus.Fields{
		"run_id":     sim.RunID(),
		"steps":      sim.Steps(),
		"ill_events": sim.IllEvents(),
	}).Info("reactorsim: simulation completed")

	return nil
}

// seedParticles creates nParticles particles at the origin, distributed
// round-robin across the configuration's discrete substances, and
// registers them under consecutive external indices starting at 0.
func seedParticles(sim *engine.Simulation, nParticles int) {
	n := sim.Substances().DiscreteLen()
	if n == 0 {
		return
	}
	for i := 0; i < nParticles; i++ {
		s := sim.Substances().ByDiscreteIndex((i % n) + 1)
		sim.AddParticle(particle.NewParticle(s, 0, 0, 0), i)
	}
}
