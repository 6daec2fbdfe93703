package substance

import "testing"

func TestTableAddAndLookup(t *testing.T) {
	tbl := NewTable()
	a := New("A", Discrete)
	a.SetMass(1)
	a.SetCharge(1)
	tbl.Add("A", a)

	if tbl.ByName("A") != a {
		t.Errorf("ByName(A) = %v, want %v", tbl.ByName("A"), a)
	}
	if got := tbl.IndexOf(a); got != 1 {
		t.Errorf("IndexOf(a) = %d, want 1", got)
	}
	if got := tbl.ByIndex(1); got != a {
		t.Errorf("ByIndex(1) = %v, want %v", got, a)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
	if tbl.DiscreteLen() != 1 {
		t.Errorf("DiscreteLen() = %d, want 1", tbl.DiscreteLen())
	}
}

func TestTableDiscreteViewOnlyHoldsDiscrete(t *testing.T) {
	tbl := NewTable()
	tbl.Add("M", New("M", Isotropic))
	tbl.Add("A", New("A", Discrete))

	var kinds []Kind
	tbl.Discrete(func(s *Substance) { kinds = append(kinds, s.Kind()) })
	if len(kinds) != 1 || kinds[0] != Discrete {
		t.Errorf("Discrete() yielded %v, want exactly one Discrete substance", kinds)
	}
}

// TestTableReplaceInPlace exercises spec scenario S5: adding X isotropic
// then X discrete under the same name replaces in place, preserving the
// primary position and moving X into the discrete view.
func TestTableReplaceInPlace(t *testing.T) {
	tbl := NewTable()
	tbl.Add("X", New("X", Isotropic))
	pos := tbl.IndexOf(tbl.ByName("X"))

	discreteX := New("X", Discrete)
	discreteX.SetMass(10)
	discreteX.SetCharge(1)
	tbl.Add("X", discreteX)

	if tbl.ByName("X") != discreteX {
		t.Errorf("ByName(X) after replace = %v, want %v", tbl.ByName("X"), discreteX)
	}
	if got := tbl.IndexOf(discreteX); got != pos {
		t.Errorf("IndexOf(X) after replace = %d, want preserved position %d", got, pos)
	}
	if tbl.DiscreteLen() != 1 {
		t.Errorf("DiscreteLen() after replace = %d, want 1", tbl.DiscreteLen())
	}
	found := false
	tbl.Discrete(func(s *Substance) {
		if s == discreteX {
			found = true
		}
	})
	if !found {
		t.Errorf("discrete view does not contain the replaced substance")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{"isotropic": Isotropic, "discrete": Discrete, "field": Field}
	for word, want := range cases {
		got, ok := ParseKind(word)
		if !ok || got != want {
			t.Errorf("ParseKind(%q) = (%v, %v), want (%v, true)", word, got, ok, want)
		}
	}
	if _, ok := ParseKind("plasma"); ok {
		t.Errorf("ParseKind(plasma) should not be recognized")
	}
}
