package reaction

import (
	"math"
	"testing"

	"github.com/IPAMS/reactorsim/internal/substance"
)

func TestStaticProbabilityDiscreteOnly(t *testing.T) {
	a := substance.New("A", substance.Discrete)
	b := substance.New("B", substance.Discrete)

	r := New(
		[]Term{{Substance: a, Factor: 1}},
		[]Term{{Substance: b, Factor: 1}},
		1.0, nil,
	)
	if r.StaticProbability() != 1.0 {
		t.Errorf("StaticProbability() = %g, want 1.0", r.StaticProbability())
	}
	if !r.Independent() {
		t.Errorf("Independent() = false, want true")
	}
}

// TestStaticProbabilityComposesIsotropicPowers exercises spec scenario S4:
// A + 2M => B ; 0.5, with M isotropic at concentration 2, should yield
// static_probability = 0.5 * 2^2 = 2.0.
func TestStaticProbabilityComposesIsotropicPowers(t *testing.T) {
	m := substance.New("M", substance.Isotropic)
	m.SetStaticConcentration(2)
	a := substance.New("A", substance.Discrete)
	b := substance.New("B", substance.Discrete)

	r := New(
		[]Term{{Substance: a, Factor: 1}, {Substance: m, Factor: 2}},
		[]Term{{Substance: b, Factor: 1}},
		0.5, nil,
	)
	want := 2.0
	if math.Abs(r.StaticProbability()-want) > 1e-12 {
		t.Errorf("StaticProbability() = %g, want %g", r.StaticProbability(), want)
	}
	if !r.Independent() {
		t.Errorf("Independent() = false, want true (single discrete educt A)")
	}
}

func TestIndependenceRequiresUnitDiscreteCoefficientSum(t *testing.T) {
	a := substance.New("A", substance.Discrete)
	b := substance.New("B", substance.Discrete)
	c := substance.New("C", substance.Discrete)

	r := New(
		[]Term{{Substance: a, Factor: 1}, {Substance: b, Factor: 1}},
		[]Term{{Substance: c, Factor: 1}},
		1.0, nil,
	)
	if r.Independent() {
		t.Errorf("Independent() = true, want false (two discrete educts)")
	}
}

func TestDiscreteProductMultisetExpandsByCoefficient(t *testing.T) {
	a := substance.New("A", substance.Discrete)
	b := substance.New("B", substance.Discrete)

	r := New(
		[]Term{{Substance: a, Factor: 1}},
		[]Term{{Substance: b, Factor: 3}},
		1.0, nil,
	)
	got := r.DiscreteProductMultiset()
	if len(got) != 3 {
		t.Fatalf("len(DiscreteProductMultiset()) = %d, want 3", len(got))
	}
	for _, s := range got {
		if s != b {
			t.Errorf("product multiset contains %v, want %v", s, b)
		}
	}
}

func TestDiscreteProductMultisetSkipsNonDiscrete(t *testing.T) {
	a := substance.New("A", substance.Discrete)
	field := substance.New("F", substance.Field)

	r := New(
		[]Term{{Substance: a, Factor: 1}},
		[]Term{{Substance: field, Factor: 1}},
		1.0, nil,
	)
	if len(r.DiscreteProductMultiset()) != 0 {
		t.Errorf("DiscreteProductMultiset() = %v, want empty (pure destruction)", r.DiscreteProductMultiset())
	}
}
