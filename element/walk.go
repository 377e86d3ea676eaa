package element

// Action is called for every node visited by Walk. depth is 0 for top-level
// elements. Returning false stops descending into the node's children.
type Action func(n *Node, depth int) bool

// Walk traverses a tree depth-first, pre-order. A root marker itself is not
// visited, only its children.
func Walk(n *Node, action Action) {
	for _, top := range Tops(n) {
		walk(top, 0, action)
	}
}

func walk(n *Node, depth int, action Action) {
	if n == nil || !action(n, depth) {
		return
	}
	for _, ch := range n.Children {
		walk(ch, depth+1, action)
	}
}

// ClassNames collects the distinct class names used in a tree, in order of
// first appearance.
func ClassNames(n *Node) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(n, func(n *Node, _ int) bool {
		for _, c := range n.Classes {
			if !seen[c] {
				seen[c] = true
				names = append(names, c)
			}
		}
		return true
	})
	return names
}

// Count returns the number of elements in a tree, excluding a root marker.
func Count(n *Node) int {
	cnt := 0
	Walk(n, func(*Node, int) bool {
		cnt++
		return true
	})
	return cnt
}
