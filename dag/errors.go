package dag

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeStatus indicates that a node cannot be (re)added in its
	// current status.
	ErrNodeStatus = errors.New("dag: node status forbids the operation")

	// ErrCycleDetected indicates that the walk revisited a node on its own
	// recursion stack.
	ErrCycleDetected = errors.New("dag: cycle detected")

	// ErrUnknownNode indicates that a label is not registered.
	ErrUnknownNode = errors.New("dag: unknown node")
)

// NodeStatusError reports a label whose Status forbids AddNode.
// It unwraps to ErrNodeStatus.
type NodeStatusError struct {
	Label  any
	Status Status
}

func (e *NodeStatusError) Error() string {
	return fmt.Sprintf("dag: node %v already has status %s", e.Label, e.Status)
}

func (e *NodeStatusError) Unwrap() error { return ErrNodeStatus }

// CycleError reports the label at which a cycle was closed.
// It unwraps to ErrCycleDetected.
type CycleError struct {
	Label any
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dag: cycle detected at node %v", e.Label)
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }
