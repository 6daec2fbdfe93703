package substance

import "fmt"

// Table is a named and indexed registry of substances. It keeps three
// simultaneous views over the same underlying substances: an ordered
// sequence addressable by 1-based position, a name-to-position map, and a
// second ordered sequence enumerating only the Discrete substances and
// recording their position in the primary sequence.
//
// Adding a substance whose name already exists replaces the prior entry in
// place: the primary position is preserved and the discrete view is
// reconciled.
type Table struct {
	byPosition []*Substance   // 1-based: byPosition[i-1] is position i
	byName     map[string]int // name -> 1-based position
	discrete   []int          // 1-based positions of Discrete substances, in insertion order
}

// NewTable returns an empty substance registry.
func NewTable() *Table {
	return &Table{byName: make(map[string]int)}
}

// Add inserts subst under name, or replaces the prior substance registered
// under name in place if one already exists. The discrete view is
// reconciled to reflect the new substance's kind.
func (t *Table) Add(name string, subst *Substance) {
	if pos, ok := t.byName[name]; ok {
		t.byPosition[pos-1] = subst
		t.reconcileDiscrete(pos, subst.Kind() == Discrete)
		return
	}
	t.byPosition = append(t.byPosition, subst)
	pos := len(t.byPosition)
	t.byName[name] = pos
	if subst.Kind() == Discrete {
		t.discrete = append(t.discrete, pos)
	}
}

// reconcileDiscrete adds or removes pos from the discrete view depending on
// isDiscrete, leaving the rest of the discrete view's order untouched.
func (t *Table) reconcileDiscrete(pos int, isDiscrete bool) {
	idx := -1
	for i, p := range t.discrete {
		if p == pos {
			idx = i
			break
		}
	}
	switch {
	case isDiscrete && idx == -1:
		t.discrete = append(t.discrete, pos)
	case !isDiscrete && idx != -1:
		t.discrete = append(t.discrete[:idx], t.discrete[idx+1:]...)
	}
}

// ByName returns the substance registered under name, or nil if none is.
func (t *Table) ByName(name string) *Substance {
	pos, ok := t.byName[name]
	if !ok {
		return nil
	}
	return t.byPosition[pos-1]
}

// ByIndex returns the substance at 1-based primary position i. It panics if
// i is out of range, matching the teacher's index-backed collection style.
func (t *Table) ByIndex(i int) *Substance {
	if i < 1 || i > len(t.byPosition) {
		panic(fmt.Sprintf("substance: index %d out of range [1,%d]", i, len(t.byPosition)))
	}
	return t.byPosition[i-1]
}

// ByDiscreteIndex returns the jth (1-based) Discrete substance in
// insertion order.
func (t *Table) ByDiscreteIndex(j int) *Substance {
	if j < 1 || j > len(t.discrete) {
		panic(fmt.Sprintf("substance: discrete index %d out of range [1,%d]", j, len(t.discrete)))
	}
	return t.byPosition[t.discrete[j-1]-1]
}

// IndexOf returns the 1-based primary position of subst, or 0 if subst is
// not registered under its own name (i.e. it has been replaced).
func (t *Table) IndexOf(subst *Substance) int {
	pos, ok := t.byName[subst.Name()]
	if !ok || t.byPosition[pos-1] != subst {
		return 0
	}
	return pos
}

// Len returns the number of substances in the primary sequence.
func (t *Table) Len() int { return len(t.byPosition) }

// DiscreteLen returns the number of Discrete substances.
func (t *Table) DiscreteLen() int { return len(t.discrete) }

// Iter calls f for every substance in primary-sequence order.
func (t *Table) Iter(f func(*Substance)) {
	for _, s := range t.byPosition {
		f(s)
	}
}

// Names returns every registered name, in primary-sequence order.
func (t *Table) Names() []string {
	names := make([]string, len(t.byPosition))
	for name, pos := range t.byName {
		names[pos-1] = name
	}
	return names
}

// Discrete calls f for every Discrete substance, in insertion order.
func (t *Table) Discrete(f func(*Substance)) {
	for _, pos := range t.discrete {
		f(t.byPosition[pos-1])
	}
}
