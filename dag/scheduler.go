package dag

import (
	"fmt"
	"iter"
)

// Scheduler tracks labelled computations and the order they can run in.
// The zero value is not usable; call New.
type Scheduler[L comparable] struct {
	index map[L]int  // label → arena slot
	nodes []*node[L] // insertion-ordered arena
}

// New returns a Scheduler whose precomputed labels are already Done.
func New[L comparable](precomputed ...L) *Scheduler[L] {
	s := &Scheduler[L]{
		index: make(map[L]int, len(precomputed)),
		nodes: make([]*node[L], 0, len(precomputed)),
	}
	for _, l := range precomputed {
		s.ensure(l).status = Done
	}

	return s
}

// ensure returns the node for l, creating it Pending when missing.
func (s *Scheduler[L]) ensure(l L) *node[L] {
	if i, ok := s.index[l]; ok {
		return s.nodes[i]
	}
	s.index[l] = len(s.nodes)
	n := newNode(l, Pending)
	s.nodes = append(s.nodes, n)

	return n
}

// AddNode registers label, depending on dependsOn.
// Without dependencies the node becomes Ready; otherwise it stays Pending
// and every dependency is created (Pending) when missing.
// Re-adding a Done or Active node returns a *NodeStatusError.
func (s *Scheduler[L]) AddNode(label L, dependsOn ...L) error {
	// 1. Refuse nodes that are computed or being computed
	if i, ok := s.index[label]; ok {
		if st := s.nodes[i].status; st == Done || st == Active {
			return &NodeStatusError{Label: label, Status: st}
		}
	}
	n := s.ensure(label)
	// 2. No inputs: computable right away
	if len(dependsOn) == 0 {
		n.status = Ready
		return nil
	}
	// 3. Link both directions
	self := s.index[label]
	for _, dep := range dependsOn {
		d := s.ensure(dep)
		di := s.index[dep]
		n.ancestors[di] = struct{}{}
		d.linkDescendant(self)
	}

	return nil
}

// Done marks label as computed.
func (s *Scheduler[L]) Done(label L) error {
	i, ok := s.index[label]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, label)
	}
	s.nodes[i].status = Done

	return nil
}

// Status returns the status of label and whether it is registered.
func (s *Scheduler[L]) Status(label L) (Status, bool) {
	i, ok := s.index[label]
	if !ok {
		return Pending, false
	}

	return s.nodes[i].status, true
}

// Len returns the number of registered labels.
func (s *Scheduler[L]) Len() int { return len(s.nodes) }

// UndoneCount returns the number of nodes that are not Done.
func (s *Scheduler[L]) UndoneCount() int {
	count := 0
	for _, n := range s.nodes {
		if n.status != Done {
			count++
		}
	}

	return count
}

// IterComputable yields the labels that can be computed now, dependencies
// first. A cycle among the reachable nodes is yielded once as a
// *CycleError with the zero label, and iteration stops.
//
// The walk is planned when iteration starts. Calling Done for yielded
// labels while iterating is expected; calling AddNode is not.
// Nodes left Active when iteration ends, including an early break,
// return to Pending.
func (s *Scheduler[L]) IterComputable() iter.Seq2[L, error] {
	return func(yield func(L, error) bool) {
		defer s.resetActive()

		order, err := s.plan()
		if err != nil {
			var zero L
			yield(zero, err)
			return
		}
		// reverse post-order puts dependencies first
		for i := len(order) - 1; i >= 0; i-- {
			if !yield(s.nodes[order[i]].label, nil) {
				return
			}
		}
	}
}

// plan marks Active nodes and returns the post-order of computable slots.
func (s *Scheduler[L]) plan() ([]int, error) {
	// 1. Everything downstream of an orphan Pending node is uncomputable
	blocked := s.uncomputable()
	// 2. Promote the rest of Pending to Active, collect roots
	roots := make([]int, 0, len(s.nodes))
	for i, n := range s.nodes {
		switch {
		case n.status == Done || n.status == Ready:
			roots = append(roots, i)
		case n.status == Pending && !blocked[i]:
			n.status = Active
		}
	}
	// 3. Depth-first walk from every root
	w := &walker[L]{
		s:     s,
		state: make([]int, len(s.nodes)),
		order: make([]int, 0, len(s.nodes)),
	}
	for _, r := range roots {
		if w.state[r] == white {
			if err := w.visit(r); err != nil {
				return nil, err
			}
		}
	}

	return w.order, nil
}

// uncomputable flood-fills from Pending nodes that have no ancestors.
func (s *Scheduler[L]) uncomputable() []bool {
	blocked := make([]bool, len(s.nodes))
	stack := make([]int, 0)
	for i, n := range s.nodes {
		if n.status == Pending && len(n.ancestors) == 0 {
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if blocked[i] {
			continue
		}
		blocked[i] = true
		stack = append(stack, s.nodes[i].descendants...)
	}

	return blocked
}

// resetActive returns nodes left Active to Pending.
func (s *Scheduler[L]) resetActive() {
	for _, n := range s.nodes {
		if n.status == Active {
			n.status = Pending
		}
	}
}

// walker holds the state of one depth-first pass.
type walker[L comparable] struct {
	s     *Scheduler[L]
	state []int // white, gray or black per slot
	order []int // post-order of Active and Ready slots
}

// visit explores the non-Pending descendants of slot i.
func (w *walker[L]) visit(i int) error {
	// 1. Back edge onto the recursion stack
	if w.state[i] == gray {
		return &CycleError{Label: w.s.nodes[i].label}
	}
	// 2. Already explored through another path
	if w.state[i] == black {
		return nil
	}
	// 3. Explore
	w.state[i] = gray
	n := w.s.nodes[i]
	for _, d := range n.descendants {
		if w.s.nodes[d].status == Pending {
			continue
		}
		if err := w.visit(d); err != nil {
			return err
		}
	}
	// 4. Finish and record computable nodes
	w.state[i] = black
	if n.status == Active || n.status == Ready {
		w.order = append(w.order, i)
	}

	return nil
}
