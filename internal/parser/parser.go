// Package parser reads the reaction-network configuration text format
// (spec §4.1, §6) and yields a substance.Table plus a set of reactions.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/IPAMS/reactorsim/internal/reaction"
	"github.com/IPAMS/reactorsim/internal/substance"
)

const (
	headerSubstances = "[substances]"
	headerReactions  = "[reactions]"
)

type section int

const (
	sectionPrologue section = iota
	sectionSubstances
	sectionReactions
)

// Result is the parsed configuration: the registered substances and the
// reactions that react over them.
type Result struct {
	Substances *substance.Table
	Reactions  []*reaction.Reaction
}

// Parse reads a configuration file in the `[substances]`/`[reactions]`
// text format from r. rateConversionFactor divides every parsed rate
// constant (e.g. 1e6 to convert s⁻¹ into the engine's µs⁻¹ basis, per
// spec §4.1). If log is nil, logrus.StandardLogger() is used for
// warning-only diagnostics (spec §7: IsotropicProductWarning and an
// absent-concentration default are warnings, not fatal errors).
func Parse(r io.Reader, rateConversionFactor float64, log logrus.FieldLogger) (*Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	substances := substance.NewTable()
	var pendingReactions []rawReaction

	sc := bufio.NewScanner(r)
	sect := sectionPrologue
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case headerSubstances:
			sect = sectionSubstances
			continue
		case headerReactions:
			sect = sectionReactions
			continue
		}
		switch sect {
		case sectionPrologue:
			// Everything before the first header is comment.
			continue
		case sectionSubstances:
			if err := parseSubstanceLine(line, lineno, substances, log); err != nil {
				return nil, err
			}
		case sectionReactions:
			raw, err := parseReactionLine(line, lineno, substances)
			if err != nil {
				return nil, err
			}
			pendingReactions = append(pendingReactions, raw)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ConfigError{Kind: FileUnreadable, Message: errors.Wrap(err, "parser: reading configuration").Error()}
	}

	reactions := make([]*reaction.Reaction, 0, len(pendingReactions))
	for i, raw := range pendingReactions {
		for _, t := range raw.products {
			if t.Substance.Kind() != substance.Discrete {
				log.WithFields(logrus.Fields{
					"reaction_index": i,
					"substance":      t.Substance.Name(),
				}).Warn("parser: non-discrete substance on reaction product side; treated as static")
			}
		}
		rateConstant := raw.rate / rateConversionFactor
		reactions = append(reactions, reaction.New(raw.educts, raw.products, rateConstant, raw.activationEnergy))
	}

	return &Result{Substances: substances, Reactions: reactions}, nil
}

type rawReaction struct {
	educts, products []reaction.Term
	rate             float64
	activationEnergy *float64
}

func parseSubstanceLine(line string, lineno int, table *substance.Table, log logrus.FieldLogger) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return &ConfigError{Kind: BadReactionLine, Line: lineno, Message: "substance line needs at least a name and a kind"}
	}
	name, kindWord := fields[0], fields[1]
	kind, ok := substance.ParseKind(kindWord)
	if !ok {
		return &ConfigError{Kind: UnknownKind, Line: lineno, Name: kindWord, Message: "unrecognized substance kind"}
	}

	s := substance.New(name, kind)
	switch kind {
	case substance.Isotropic:
		if len(fields) >= 3 {
			c, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return &ConfigError{Kind: BadReactionLine, Line: lineno, Name: name, Message: "invalid static concentration: " + err.Error()}
			}
			s.SetStaticConcentration(c)
		} else {
			log.WithFields(logrus.Fields{"substance": name, "line": lineno}).
				Warn("parser: isotropic substance has no static concentration; defaulting to 0")
			s.SetStaticConcentration(0)
		}
	case substance.Discrete:
		if len(fields) < 4 {
			return &ConfigError{Kind: DiscreteMissingPhysics, Line: lineno, Name: name, Message: "discrete substances require mass and charge"}
		}
		mass, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return &ConfigError{Kind: DiscreteMissingPhysics, Line: lineno, Name: name, Message: "invalid mass: " + err.Error()}
		}
		charge, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return &ConfigError{Kind: DiscreteMissingPhysics, Line: lineno, Name: name, Message: "invalid charge: " + err.Error()}
		}
		s.SetMass(mass)
		s.SetCharge(charge)
	case substance.Field:
		// no extra numbers
	}
	table.Add(name, s)
	return nil
}

func parseReactionLine(line string, lineno int, table *substance.Table) (rawReaction, error) {
	stripped := strings.Join(strings.Fields(line), "")
	parts := strings.Split(stripped, ";")
	if len(parts) != 2 && len(parts) != 3 {
		return rawReaction{}, &ConfigError{Kind: BadReactionLine, Line: lineno, Message: fmt.Sprintf("expected 2 or 3 `;`-separated fields, found %d", len(parts))}
	}

	sides := strings.SplitN(parts[0], "=>", 2)
	if len(sides) != 2 {
		return rawReaction{}, &ConfigError{Kind: BadReactionLine, Line: lineno, Message: "missing `=>` between educts and products"}
	}

	educts, err := parsePartnerExpr(sides[0], lineno, table)
	if err != nil {
		return rawReaction{}, err
	}
	products, err := parsePartnerExpr(sides[1], lineno, table)
	if err != nil {
		return rawReaction{}, err
	}

	rate, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return rawReaction{}, &ConfigError{Kind: BadReactionLine, Line: lineno, Message: "invalid rate constant: " + err.Error()}
	}

	var activationEnergy *float64
	if len(parts) == 3 {
		ea, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return rawReaction{}, &ConfigError{Kind: BadReactionLine, Line: lineno, Message: "invalid activation energy: " + err.Error()}
		}
		activationEnergy = &ea
	}

	return rawReaction{educts: educts, products: products, rate: rate, activationEnergy: activationEnergy}, nil
}

// parsePartnerExpr parses a `+`-separated list of `[multiplier]name`
// partner terms, accumulating the coefficient of any substance named more
// than once.
func parsePartnerExpr(expr string, lineno int, table *substance.Table) ([]reaction.Term, error) {
	var terms []reaction.Term
	index := make(map[*substance.Substance]int) // substance -> position in terms

	for _, partner := range strings.Split(expr, "+") {
		if partner == "" {
			continue
		}
		factor, name := splitMultiplier(partner)
		s := table.ByName(name)
		if s == nil {
			return nil, &ConfigError{Kind: UnknownSpecies, Line: lineno, Name: name, Message: "species not declared in [substances]"}
		}
		if i, ok := index[s]; ok {
			terms[i].Factor += factor
		} else {
			index[s] = len(terms)
			terms = append(terms, reaction.Term{Substance: s, Factor: factor})
		}
	}
	return terms, nil
}

// splitMultiplier splits "3A" into (3, "A") and "A" into (1, "A").
func splitMultiplier(partner string) (int, string) {
	i := 0
	for i < len(partner) && partner[i] >= '0' && partner[i] <= '9' {
		i++
	}
	if i == 0 {
		return 1, partner
	}
	n, err := strconv.Atoi(partner[:i])
	if err != nil {
		return 1, partner
	}
	return n, partner[i:]
}
