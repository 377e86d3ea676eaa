package shorthand

import (
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shorthand/element"
	"github.com/npillmayer/shorthand/maybe"
)

var (
	textSuffix = regexp.MustCompile(`\{([^}]*)\}$`)
	tagPrefix  = regexp.MustCompile(`^[a-zA-Z][\w-]*`)
)

// Parse parses a shorthand string into an element tree.
//
// If the input describes exactly one top-level element, this element is
// returned. Otherwise a root marker (see element.RootTag) holding the
// top-level siblings is returned. Parse returns Nothing if not a single
// element could be extracted from input.
func Parse(input string) maybe.Maybe[*element.Node] {
	b := newBuilder()
	braced := false
	var buf strings.Builder
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch ch {
		case '{':
			braced = true
		case '}':
			braced = false
		}
		if braced || (ch != '>' && ch != '+') {
			buf.WriteByte(ch)
			continue
		}
		el := b.flush(buf.String())
		buf.Reset()
		if el != nil && ch == '>' {
			b.descend(el)
		}
	}
	b.flush(buf.String())
	return b.tree()
}

// ParseShorthand is a convenience wrapper around Parse for clients which
// prefer nil-checks. It returns nil if Parse returns Nothing.
func ParseShorthand(token string) *element.Node {
	return Parse(token).WithDefault(nil)
}

// ParseElement parses a single segment, e.g. "div.a#id{text}", into an
// element node without children. It returns Nothing if seg does not start
// with a tag name.
func ParseElement(seg string) maybe.Maybe[*element.Node] {
	var text *string
	if loc := textSuffix.FindStringSubmatchIndex(seg); loc != nil {
		t := seg[loc[2]:loc[3]]
		text = &t
		seg = seg[:loc[0]]
	}
	tag := tagPrefix.FindString(seg)
	if tag == "" {
		return maybe.Nothing[*element.Node]()
	}
	el := element.New(tag)
	el.Text = text
	rest := seg[len(tag):]
	for i := 0; i < len(rest); {
		switch rest[i] {
		case '.':
			var name string
			name, i = decoration(rest, i+1)
			if name != "" {
				el.Classes = append(el.Classes, name)
			}
		case '#':
			var name string
			name, i = decoration(rest, i+1)
			if name != "" {
				el.ID = name
			}
		default:
			i++
		}
	}
	return maybe.Just(el)
}

// decoration collects a class or id name starting at position start. It
// returns the name and the position after it.
func decoration(s string, start int) (string, int) {
	end := start
	for end < len(s) && s[end] != '.' && s[end] != '#' && s[end] != '{' {
		end++
	}
	return s[start:end], end
}

// --- Tree builder ----------------------------------------------------------

// builder keeps a stack of parent nodes. The top of stack is the node new
// elements get appended to.
type builder struct {
	root  *element.Node
	stack []*element.Node
}

func newBuilder() *builder {
	root := element.NewRoot()
	return &builder{root: root, stack: []*element.Node{root}}
}

func (b *builder) top() *element.Node {
	return b.stack[len(b.stack)-1]
}

// flush parses a segment and appends the resulting element to the current
// parent. It returns nil if the segment did not yield an element.
func (b *builder) flush(segment string) *element.Node {
	segment = strings.TrimSpace(segment)
	el, ok := ParseElement(segment).Get()
	if !ok {
		if segment != "" {
			tracer().Debugf("dropping segment %q", segment)
		}
		return nil
	}
	b.top().AddChild(el)
	return el
}

// descend makes el the parent for subsequent elements.
func (b *builder) descend(el *element.Node) {
	b.stack = append(b.stack, el)
}

func (b *builder) tree() maybe.Maybe[*element.Node] {
	switch len(b.root.Children) {
	case 0:
		return maybe.Nothing[*element.Node]()
	case 1:
		return maybe.Just(b.root.Children[0])
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracer().Debugf("parsed %d top-level elements:\n%s", len(b.root.Children), element.Print(b.root))
	}
	return maybe.Just(b.root)
}
