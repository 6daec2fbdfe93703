package particle

// List is a doubly-linked collection of live particles. It owns the
// particle nodes (not the substances they reference). Insertion prepends
// at the head; removal unlinks in O(1) given the node, following the
// teacher's cellList/cellRef arrangement (list.go in the reference pack),
// generalized from an external index map to raw node pointers since
// particles, unlike grid cells, aren't addressed by a dense array index.
type List struct {
	head *Particle
	size int
}

// NewList returns an empty particle list.
func NewList() *List {
	return &List{}
}

// Insert prepends p to the list in O(1).
func (l *List) Insert(p *Particle) {
	p.prev = nil
	p.next = l.head
	if l.head != nil {
		l.head.prev = p
	}
	l.head = p
	l.size++
}

// Remove unlinks p from the list in O(1) using p's own links. p must
// currently be linked into this list.
func (l *List) Remove(p *Particle) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		l.head = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	}
	p.next = nil
	p.prev = nil
	l.size--
}

// Len returns the number of live particles.
func (l *List) Len() int { return l.size }

// Iter calls f for every particle in the list, starting from the head.
func (l *List) Iter(f func(*Particle)) {
	for p := l.head; p != nil; {
		next := p.next
		f(p)
		p = next
	}
}

// Head returns the first particle in the list, or nil if the list is empty.
func (l *List) Head() *Particle { return l.head }
