package element

import (
	"fmt"

	tp "github.com/xlab/treeprint"
	yaml "gopkg.in/yaml.v3"
)

// Print returns an ASCII drawing of a tree, suitable for debugging output.
func Print(n *Node) string {
	if n == nil {
		return "<nil>\n"
	}
	p := tp.NewWithRoot(n.String())
	for _, ch := range n.Children {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, n *Node) {
	if !n.HasChildren() {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range n.Children {
		ppt(branch, ch)
	}
}

// YAML serializes a tree.
func YAML(n *Node) ([]byte, error) {
	data, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal element tree to yaml: %w", err)
	}
	return data, nil
}
