package dag

import "fmt"

// Status is the lifecycle state of a node.
type Status int

const (
	// Pending nodes wait for at least one dependency.
	Pending Status = iota
	// Ready nodes have no dependencies and can be computed at once.
	Ready
	// Active marks a Pending node considered computable during one
	// IterComputable pass.
	Active
	// Done nodes hold a computed value.
	Done
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Active:
		return "active"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DFS colours.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// node is one arena slot. Edges are arena indices; the sets guard against
// duplicate edges while the slices keep insertion order.
type node[L comparable] struct {
	label       L
	status      Status
	ancestors   map[int]struct{}
	descendants []int
	descSet     map[int]struct{}
}

func newNode[L comparable](label L, status Status) *node[L] {
	return &node[L]{
		label:     label,
		status:    status,
		ancestors: make(map[int]struct{}),
		descSet:   make(map[int]struct{}),
	}
}

// linkDescendant records that child depends on n.
func (n *node[L]) linkDescendant(child int) {
	if _, ok := n.descSet[child]; ok {
		return
	}
	n.descSet[child] = struct{}{}
	n.descendants = append(n.descendants, child)
}
