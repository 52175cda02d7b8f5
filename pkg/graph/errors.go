package graph

import (
	"errors"
	"fmt"
)

// ErrNotCorrected indicates that corrected abundances were requested
// before Correct ran successfully.
var ErrNotCorrected = errors.New("graph: abundances have not been corrected")

// ErrZeroTotal indicates that corrected abundances sum to zero, so no
// normalization factor exists.
var ErrZeroTotal = errors.New("graph: corrected abundances sum to zero")

// ErrCycle indicates a cycle in the glycation graph. Edges always point
// toward compositions with more units, so this only occurs if the graph
// was built from a malformed rate table.
var ErrCycle = errors.New("graph: cycle detected")

// InconsistentModelError indicates a node whose summed outgoing
// conversion rates reach or exceed 1, which would mean more than the
// node's entire population converts away.
type InconsistentModelError struct {
	Node  string
	Total float64
}

func (e *InconsistentModelError) Error() string {
	return fmt.Sprintf("inconsistent model: outgoing conversion rates of %q sum to %.4f (must be < 1)",
		e.Node, e.Total)
}
