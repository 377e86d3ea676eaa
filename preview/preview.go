/*
Package preview renders element trees as plain HTML.

The JSX produced by package jsx refers to class names through a style-module
object and is therefore not suitable for showing a preview of an expansion.
This package converts an element tree into an x/net/html node tree instead,
with class names written verbatim. The node tree may be rendered as HTML or
be matched against style sheet selectors (see package stylemodule).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package preview

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shorthand/element"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'shorthand.preview'.
func tracer() tracing.Trace {
	return tracing.Select("shorthand.preview")
}

// Document converts an element tree into an HTML node tree. The top-level
// elements become children of a node of type html.DocumentNode.
func Document(tree *element.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	for _, top := range element.Tops(tree) {
		doc.AppendChild(htmlNode(top))
	}
	return doc
}

func htmlNode(n *element.Node) *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if h.DataAtom == 0 {
		tracer().Debugf("<%s> is not a known HTML element", n.Tag)
	}
	if n.ID != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "id", Val: n.ID})
	}
	if len(n.Classes) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Classes, " ")})
	}
	if n.HasChildren() {
		for _, ch := range n.Children {
			h.AppendChild(htmlNode(ch))
		}
	} else if n.HasText() {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.TextContent()})
	}
	return h
}

// HTML renders an element tree as HTML, one line per top-level element.
// Rendering fails for trees x/net/html refuses to render, e.g. void
// elements with children.
func HTML(tree *element.Node) (string, error) {
	var b strings.Builder
	for top := Document(tree).FirstChild; top != nil; top = top.NextSibling {
		if top.PrevSibling != nil {
			b.WriteByte('\n')
		}
		if err := html.Render(&b, top); err != nil {
			return "", fmt.Errorf("cannot render preview: %w", err)
		}
	}
	return b.String(), nil
}
