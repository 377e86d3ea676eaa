package shorthand

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shorthand/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElementTagOnly(t *testing.T) {
	el, ok := ParseElement("div").Get()
	if !ok {
		t.Fatal("expected div to parse, didn't")
	}
	if el.Tag != "div" || el.ID != "" || el.Classes != nil || el.Text != nil || el.Children != nil {
		t.Errorf("expected bare leaf element div, is %#v", el)
	}
}

func TestParseElementDecorations(t *testing.T) {
	var tests = []struct {
		seg     string
		tag     string
		id      string
		classes []string
		text    string
	}{
		{"div.a.b", "div", "", []string{"a", "b"}, ""},
		{"div#x.a", "div", "x", []string{"a"}, ""},
		{"div.a#x", "div", "x", []string{"a"}, ""},
		{"p#one#two", "p", "two", nil, ""},
		{"li.a.a", "li", "", []string{"a", "a"}, ""},
		{"my-widget_2.x", "my-widget_2", "", []string{"x"}, ""},
		{"span..a.#", "span", "", []string{"a"}, ""},
		{"div{hello}", "div", "", nil, "hello"},
		{"h1.title{Hi there}", "h1", "", []string{"title"}, "Hi there"},
		{"div{a}.b", "div", "", []string{"b"}, ""},
	}
	for _, test := range tests {
		el, ok := ParseElement(test.seg).Get()
		if !ok {
			t.Errorf("expected %q to parse, didn't", test.seg)
			continue
		}
		if el.Tag != test.tag {
			t.Errorf("%q: expected tag %q, is %q", test.seg, test.tag, el.Tag)
		}
		if el.ID != test.id {
			t.Errorf("%q: expected id %q, is %q", test.seg, test.id, el.ID)
		}
		assert.Equal(t, test.classes, el.Classes, "classes of %q", test.seg)
		if el.TextContent() != test.text {
			t.Errorf("%q: expected text %q, is %q", test.seg, test.text, el.TextContent())
		}
	}
}

func TestParseElementFails(t *testing.T) {
	for _, seg := range []string{"", "123", ".a", "#x", "{text}", "-div"} {
		if !ParseElement(seg).IsNothing() {
			t.Errorf("expected segment %q to fail, didn't", seg)
		}
	}
}

func TestParseEmptyText(t *testing.T) {
	el := ParseShorthand("div{}")
	require.NotNil(t, el)
	if el.Text == nil || *el.Text != "" {
		t.Errorf("expected empty but present text, is %v", el.Text)
	}
	if el.HasText() {
		t.Error("expected empty text not to count as text, does")
	}
}

func TestParseNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shorthand.parser")
	defer teardown()
	//
	for _, input := range []string{"", "123", ">>>", "+", " ", "1>2+3"} {
		var n *element.Node
		switch m := Parse(input).Match(); m {
		case m.Just(&n):
			t.Errorf("expected %q to yield Nothing, is\n%s", input, element.Print(n))
		case m.Nothing():
		}
		if ParseShorthand(input) != nil {
			t.Errorf("expected ParseShorthand(%q) to be nil, isn't", input)
		}
	}
}

func TestParseSingle(t *testing.T) {
	n := ParseShorthand("div")
	require.NotNil(t, n)
	if n.IsRoot() {
		t.Error("expected single element not to be wrapped in root marker, is")
	}
	if n.Tag != "div" || n.HasChildren() {
		t.Errorf("expected leaf div, is %s", element.Print(n))
	}
}

func TestParseDescend(t *testing.T) {
	n := ParseShorthand("div>span")
	require.NotNil(t, n)
	t.Logf("tree =\n%s", element.Print(n))
	if n.Tag != "div" || len(n.Children) != 1 || n.Children[0].Tag != "span" {
		t.Errorf("expected div with child span, is\n%s", element.Print(n))
	}
}

func TestParseSiblingAfterDescend(t *testing.T) {
	n := ParseShorthand("div>span+b")
	require.NotNil(t, n)
	t.Logf("tree =\n%s", element.Print(n))
	if n.Tag != "div" || len(n.Children) != 2 {
		t.Fatalf("expected div with 2 children, is\n%s", element.Print(n))
	}
	if n.Children[0].Tag != "span" || n.Children[1].Tag != "b" {
		t.Errorf("expected children span and b, is\n%s", element.Print(n))
	}
}

func TestParseTopLevelSiblings(t *testing.T) {
	n := ParseShorthand("a+b")
	require.NotNil(t, n)
	if !n.IsRoot() {
		t.Fatalf("expected root marker, is %s", n)
	}
	if len(n.Children) != 2 || n.Children[0].Tag != "a" || n.Children[1].Tag != "b" {
		t.Errorf("expected root with children a, b, is\n%s", element.Print(n))
	}
	for _, ch := range n.Children {
		if ch.HasChildren() {
			t.Errorf("expected %s to be a leaf, isn't", ch)
		}
	}
}

func TestParseMixedChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shorthand.parser")
	defer teardown()
	//
	n := ParseShorthand("a>b>c+d>e+f")
	require.NotNil(t, n)
	t.Logf("tree =\n%s", element.Print(n))
	// a>(b>(c, d>(e, f)))
	require.Equal(t, "a", n.Tag)
	require.Len(t, n.Children, 1)
	b := n.Children[0]
	require.Equal(t, "b", b.Tag)
	require.Len(t, b.Children, 2)
	assert.Equal(t, "c", b.Children[0].Tag)
	d := b.Children[1]
	assert.Equal(t, "d", d.Tag)
	require.Len(t, d.Children, 2)
	assert.Equal(t, "e", d.Children[0].Tag)
	assert.Equal(t, "f", d.Children[1].Tag)
}

func TestParseSiblingChain(t *testing.T) {
	n := ParseShorthand("div.a>div.b+div.c>div.d")
	require.NotNil(t, n)
	t.Logf("tree =\n%s", element.Print(n))
	assert.Equal(t, []string{"a"}, n.Classes)
	require.Len(t, n.Children, 2)
	assert.Equal(t, []string{"b"}, n.Children[0].Classes)
	c := n.Children[1]
	assert.Equal(t, []string{"c"}, c.Classes)
	require.Len(t, c.Children, 1)
	assert.Equal(t, []string{"d"}, c.Children[0].Classes)
}

func TestParseOperatorsInsideText(t *testing.T) {
	n := ParseShorthand("p{a>b+c}+span")
	require.NotNil(t, n)
	if !n.IsRoot() || len(n.Children) != 2 {
		t.Fatalf("expected two top-level elements, is\n%s", element.Print(n))
	}
	if n.Children[0].TextContent() != "a>b+c" {
		t.Errorf("expected text 'a>b+c', is %q", n.Children[0].TextContent())
	}
	if n.Children[1].Tag != "span" {
		t.Errorf("expected second element span, is %s", n.Children[1])
	}
}

func TestParseDropsBadSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shorthand.parser")
	defer teardown()
	//
	n := ParseShorthand("div+123+p")
	require.NotNil(t, n)
	if !n.IsRoot() || len(n.Children) != 2 {
		t.Fatalf("expected 2 top-level elements, is\n%s", element.Print(n))
	}
	// a failed descent does not push a parent
	n = ParseShorthand("99>span")
	require.NotNil(t, n)
	if n.IsRoot() || n.Tag != "span" {
		t.Errorf("expected bare span, is\n%s", element.Print(n))
	}
	// an empty operand after '>' leaves the new parent in place
	n = ParseShorthand("ul>+li")
	require.NotNil(t, n)
	if n.Tag != "ul" || len(n.Children) != 1 || n.Children[0].Tag != "li" {
		t.Errorf("expected ul>li, is\n%s", element.Print(n))
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	n := ParseShorthand(" div > span ")
	require.NotNil(t, n)
	if n.Tag != "div" || len(n.Children) != 1 || n.Children[0].Tag != "span" {
		t.Errorf("expected div>span, is\n%s", element.Print(n))
	}
}
