package internal

// ReconstructPath walks predecessor links back from current to start and
// returns the visited nodes in travel order, excluding start and including
// current. It returns an empty, non-nil slice when current is start.
//
// A chain that ends before reaching start yields the nodes after its root;
// the root itself has no predecessor and is left out like start would be.
func ReconstructPath[NodeType comparable](
	previous func(NodeType) (NodeType, bool),
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{}
	for current != start {
		previousNode, exists := previous(current)
		if !exists {
			break
		}
		path = append(path, current)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
