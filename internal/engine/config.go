package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/IPAMS/reactorsim/internal/randsrc"
)

// Config carries everything New needs to parse a configuration
// and stand up a reaction engine (spec §4.5 Simulation::new).
type Config struct {
	// ConfigReader supplies the `[substances]`/`[reactions]` configuration
	// text. The caller retains ownership and closes it if needed; per spec
	// §5, the constructor itself never holds the handle open past return.
	ConfigReader io.Reader

	// RateConstantConversionFactor divides every parsed rate constant
	// (e.g. 1e6 to convert s⁻¹ into µs⁻¹).
	RateConstantConversionFactor float64

	// Random is the injected PRNG source. If nil, a math/rand-backed
	// source seeded from the current time is used.
	Random randsrc.Source

	// Callbacks is the optional embedding adapter. Nil means no callbacks.
	Callbacks Callbacks

	// LogIllEvents governs per-event ill logging (spec §4.9).
	LogIllEvents bool

	// Logger receives structured diagnostics. If nil, logrus.StandardLogger()
	// is used.
	Logger logrus.FieldLogger
}
