// Package substance defines chemical species and the registry that owns
// them.
package substance

import "fmt"

// Kind identifies how a Substance is represented in the simulation.
type Kind int

const (
	// Isotropic substances have no explicit particles; they contribute a
	// constant background concentration to reaction probabilities.
	Isotropic Kind = iota
	// Discrete substances are represented by explicit particles.
	Discrete
	// Field substances are neither tracked as particles nor as a reacting
	// background concentration; they exist only for bookkeeping.
	Field
)

// String renders the kind the way it appears in a configuration file.
func (k Kind) String() string {
	switch k {
	case Isotropic:
		return "isotropic"
	case Discrete:
		return "discrete"
	case Field:
		return "field"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a configuration-file kind word. The bool result is
// false for any word other than the three recognised kinds.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "isotropic":
		return Isotropic, true
	case "discrete":
		return Discrete, true
	case "field":
		return Field, true
	default:
		return 0, false
	}
}

// Substance is the identity and physical attributes of one chemical
// species. Substances are immutable after construction except for the
// setters below, which are used only during parsing.
type Substance struct {
	name                string
	kind                Kind
	staticConcentration float64 // defined for Isotropic; unused otherwise
	mass                float64 // > 0 for Discrete
	charge              float64 // for Discrete
}

// New constructs a Substance. Physical attributes that don't apply to kind
// are left at their zero value.
func New(name string, kind Kind) *Substance {
	return &Substance{name: name, kind: kind}
}

// Name returns the substance's unique, case-sensitive identifier.
func (s *Substance) Name() string { return s.name }

// Kind returns the substance's kind.
func (s *Substance) Kind() Kind { return s.kind }

// StaticConcentration returns the substance's background concentration.
// Only meaningful for Isotropic substances.
func (s *Substance) StaticConcentration() float64 { return s.staticConcentration }

// SetStaticConcentration sets the background concentration. Used by the
// config parser while building an Isotropic substance.
func (s *Substance) SetStaticConcentration(c float64) { s.staticConcentration = c }

// Mass returns the particle mass. Only meaningful for Discrete substances.
func (s *Substance) Mass() float64 { return s.mass }

// SetMass sets the particle mass. Used by the config parser while building
// a Discrete substance.
func (s *Substance) SetMass(m float64) { s.mass = m }

// Charge returns the particle charge. Only meaningful for Discrete
// substances.
func (s *Substance) Charge() float64 { return s.charge }

// SetCharge sets the particle charge. Used by the config parser while
// building a Discrete substance.
func (s *Substance) SetCharge(q float64) { s.charge = q }
