package parser

import "fmt"

// ErrorKind identifies the kind of configuration error that aborted
// parsing.
type ErrorKind int

const (
	// FileUnreadable means the configuration source could not be read.
	FileUnreadable ErrorKind = iota
	// BadReactionLine means a line was malformed: a reaction line without 2
	// or 3 `;`-separated fields, without `=>`, or with an unparseable rate or
	// activation energy. A substance line with fewer than two fields or an
	// unparseable static concentration is reported under this kind too.
	BadReactionLine
	// DiscreteMissingPhysics means a discrete substance line was missing its
	// mass or charge.
	DiscreteMissingPhysics
	// UnknownKind means a substance line named a kind other than isotropic,
	// discrete, or field.
	UnknownKind
	// UnknownSpecies means a reaction line referenced a substance name not
	// present in the substance table.
	UnknownSpecies
)

func (k ErrorKind) String() string {
	switch k {
	case FileUnreadable:
		return "file unreadable"
	case BadReactionLine:
		return "bad reaction line"
	case DiscreteMissingPhysics:
		return "discrete substance missing mass/charge"
	case UnknownKind:
		return "unknown substance kind"
	case UnknownSpecies:
		return "unknown species"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ConfigError is a fatal error encountered while parsing a configuration
// file. It identifies the offending line number (1-based, 0 if not
// applicable) and name (empty if not applicable) alongside the error kind.
type ConfigError struct {
	Kind    ErrorKind
	Line    int
	Name    string
	Message string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Line > 0 && e.Name != "":
		return fmt.Sprintf("config: %s at line %d (%q): %s", e.Kind, e.Line, e.Name, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("config: %s at line %d: %s", e.Kind, e.Line, e.Message)
	case e.Name != "":
		return fmt.Sprintf("config: %s (%q): %s", e.Kind, e.Name, e.Message)
	default:
		return fmt.Sprintf("config: %s: %s", e.Kind, e.Message)
	}
}
