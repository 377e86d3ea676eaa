package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// RootTag is the tag of the root marker. It can never be a valid user tag,
// as user tags have to start with a letter.
const RootTag = "__root__"

// Node is the building block of element trees.
type Node struct {
	Tag      string   `yaml:"tag"`                // tag name, or RootTag for the root marker
	ID       string   `yaml:"id,omitempty"`       // empty if absent
	Classes  []string `yaml:"classes,omitempty"`  // nil if absent; order and duplicates preserved
	Text     *string  `yaml:"text,omitempty"`     // nil if absent
	Children []*Node  `yaml:"children,omitempty"` // nil for leafs
}

// New creates a leaf node for a tag.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// NewRoot creates a root marker without children.
func NewRoot() *Node {
	return &Node{Tag: RootTag}
}

// IsRoot is a predicate: is n the root marker?
func (n *Node) IsRoot() bool {
	return n != nil && n.Tag == RootTag
}

// HasChildren is a predicate: does n have at least one child?
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// HasText is true if n carries a text which is not empty.
func (n *Node) HasText() bool {
	return n != nil && n.Text != nil && *n.Text != ""
}

// TextContent returns the text of n, or "" if absent.
func (n *Node) TextContent() string {
	if n == nil || n.Text == nil {
		return ""
	}
	return *n.Text
}

// AddChild appends a child to n and returns n to allow for chaining.
// nil-children are ignored.
func (n *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		n.Children = append(n.Children, ch)
	}
	return n
}

// String returns n (without its children) in shorthand notation,
// e.g. "div#main.a.b{text}".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsRoot() {
		return "(root)"
	}
	var b strings.Builder
	b.WriteString(n.Tag)
	if n.ID != "" {
		b.WriteByte('#')
		b.WriteString(n.ID)
	}
	for _, c := range n.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if n.Text != nil {
		b.WriteByte('{')
		b.WriteString(*n.Text)
		b.WriteByte('}')
	}
	return b.String()
}

// Tops returns the top-level elements of a tree: the children of a root
// marker, or the node itself otherwise.
func Tops(n *Node) []*Node {
	if n == nil {
		return nil
	}
	if n.IsRoot() {
		return n.Children
	}
	return []*Node{n}
}
