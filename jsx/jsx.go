/*
Package jsx renders element trees as indented JSX markup.

Class names are rendered as property accesses into a CSS-module object,
imported under an alias (the "prefix", by default "css"):

    <div className={css.card}>
      <h2 className={`${css.title} ${css.big}`}>Hello</h2>
    </div>

Output is meant to be inserted into a text buffer at a position which
already carries indentation. Therefore the very first line of the output is
not indented, whereas all following lines are prefixed with a base
indentation plus two spaces per nesting level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jsx

import (
	"strings"

	"github.com/npillmayer/shorthand/element"
)

// DefaultPrefix is the style-module alias used if clients pass an empty prefix.
const DefaultPrefix = "css"

// indentUnit is the indentation per nesting level.
const indentUnit = "  "

var textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Render renders a tree starting at the cursor position of a line indented
// by baseIndent.
func Render(n *element.Node, prefix string, baseIndent string) string {
	return Generate(n, prefix, 0, baseIndent, true)
}

// Generate renders node n at nesting level indent. If firstLine is set, the
// output is assumed to continue a line which already carries its
// indentation: the opening line is not indented and the closing tag is
// aligned to baseIndent.
//
// Rendering is deterministic and never fails on trees produced by package
// shorthand.
func Generate(n *element.Node, prefix string, indent int, baseIndent string, firstLine bool) string {
	if n == nil {
		return ""
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	var b strings.Builder
	generate(&b, n, prefix, indent, baseIndent, firstLine)
	return b.String()
}

func generate(b *strings.Builder, n *element.Node, prefix string, indent int, base string, first bool) {
	if n.IsRoot() {
		for i, ch := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
			}
			generate(b, ch, prefix, indent, base, first && i == 0)
		}
		return
	}
	lead, closing := "", base
	if !first {
		lead = base + strings.Repeat(indentUnit, indent)
		closing = lead
	}
	b.WriteString(lead)
	openTag(b, n, prefix)
	switch {
	case n.HasChildren():
		for _, ch := range n.Children {
			b.WriteByte('\n')
			generate(b, ch, prefix, indent+1, base, false)
		}
		b.WriteByte('\n')
		b.WriteString(closing)
	case n.HasText():
		b.WriteString(EscapeText(*n.Text))
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func openTag(b *strings.Builder, n *element.Node, prefix string) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, attr := range Attributes(n, prefix) {
		b.WriteByte(' ')
		b.WriteString(attr)
	}
	b.WriteByte('>')
}

// Attributes returns the rendered attributes of a node, in order id, className.
func Attributes(n *element.Node, prefix string) []string {
	var attrs []string
	if n.ID != "" {
		attrs = append(attrs, `id="`+n.ID+`"`)
	}
	if len(n.Classes) > 0 {
		attrs = append(attrs, "className={"+ClassExpression(prefix, n.Classes)+"}")
	}
	return attrs
}

// ClassExpression returns the expression for a className attribute: a
// property access for a single class, a template string for multiple
// classes.
func ClassExpression(prefix string, classes []string) string {
	if len(classes) == 1 {
		return prefix + "." + classes[0]
	}
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = "${" + prefix + "." + c + "}"
	}
	return "`" + strings.Join(parts, " ") + "`"
}

// EscapeText replaces '<' and '>' with entities. Nothing else is escaped.
func EscapeText(t string) string {
	return textEscaper.Replace(t)
}
