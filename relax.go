package fringe

// VisitKind tells what happened to the fringe node under the scan cursor.
type VisitKind int

const (
	// VisitDeferred means f exceeded the current limit; the node stays in the
	// fringe for a later pass.
	VisitDeferred VisitKind = iota
	// VisitExpanded means the node's children were relaxed and the node left
	// the fringe.
	VisitExpanded
	// VisitMatched means the node is the target and the search succeeded.
	VisitMatched
)

func (k VisitKind) String() string {
	switch k {
	case VisitDeferred:
		return "deferred"
	case VisitExpanded:
		return "expanded"
	case VisitMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Relaxation records a child whose cost improved while expanding a node.
type Relaxation struct {
	Edge EdgeID
	From NodeID
	To   NodeID
	// G is the child's new cost from the start node.
	G float64
	// Requeued is true when the child was already in the fringe and got
	// moved to its tail.
	Requeued bool
}

// Visit describes one step of the scan loop.
type Visit struct {
	Node    NodeID
	Kind    VisitKind
	F       float64
	Limit   float64
	Relaxed []Relaxation
}
