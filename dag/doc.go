// Package dag schedules computations whose inputs are other computations.
//
// What:
//
//	A Scheduler[L] keeps one node per label. Each node has a Status
//	(Pending, Ready, Active or Done) and mutual edges to the labels it
//	depends on and the labels depending on it. IterComputable yields, in
//	dependency order, every node that can currently be computed; the caller
//	evaluates it and reports back with Done.
//
// Why:
//
//   - Nodes are added incrementally, so computability has to be re-derived
//     after every batch of additions rather than fixed once.
//   - Labels referenced only as dependencies are created Pending. A Pending
//     node with no dependencies of its own can never be computed, and
//     neither can anything downstream of it.
//
// Algorithm (IterComputable):
//
//  1. Flood fill descendants of every Pending node without ancestors: these
//     are uncomputable.
//  2. Every other Pending node becomes Active; Done and Ready nodes are the
//     roots of the walk.
//  3. Depth-first search over descendant edges, skipping Pending nodes,
//     with the classic three-colour marking. Reaching a Gray node again is
//     a cycle and is reported as *CycleError.
//  4. Active and Ready nodes are yielded in reverse post-order.
//  5. When iteration ends, for any reason, nodes still Active go back to
//     Pending.
//
// Complexity:
//
//   - Time:   O(V + E) per IterComputable call
//   - Memory: O(V)     (recursion stack, colour marks and the order)
//
// A Scheduler is not safe for concurrent use.
package dag
