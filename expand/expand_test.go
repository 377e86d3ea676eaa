package expand

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	var tests = []struct {
		before string
		token  string
		start  int
	}{
		{"div", "div", 0},
		{"  return div.a>span", "div.a>span", 9},
		{"x = \tul>li.item+li", "ul>li.item+li", 5},
		{"a:hover", "a:hover", 0},
		{"\u00a0p#x", "p#x", 2},
	}
	for _, test := range tests {
		tok, ok := ExtractToken(test.before, 200).Get()
		if !ok {
			t.Errorf("expected token in %q, found none", test.before)
			continue
		}
		if tok.Text != test.token || tok.Start != test.start {
			t.Errorf("expected token %q at %d, is %q at %d", test.token, test.start, tok.Text, tok.Start)
		}
	}
}

func TestExtractTokenFails(t *testing.T) {
	for _, before := range []string{"", "   ", "div ", "a=b", "x(div)", "täg"} {
		if !ExtractToken(before, 200).IsNothing() {
			t.Errorf("expected no token for %q, got one", before)
		}
	}
}

func TestExtractTokenLookback(t *testing.T) {
	before := "const x = " + strings.Repeat("ü", 5) + "div.abc"
	tok, ok := ExtractToken(before, 5).Get()
	require.True(t, ok)
	if tok.Text != "v.abc" {
		t.Errorf("expected token to be cut to 'v.abc', is %q", tok.Text)
	}
	if before[tok.Start:] != tok.Text {
		t.Errorf("expected token start to address the token, is %d", tok.Start)
	}
	// the window starts within the run of non-ASCII letters
	if !ExtractToken(before, 9).IsNothing() {
		t.Error("expected token with non-ASCII letters to be rejected, isn't")
	}
}

func TestIndentation(t *testing.T) {
	assert.Equal(t, "", Indentation("div"))
	assert.Equal(t, "    ", Indentation("    div"))
	assert.Equal(t, "\t ", Indentation("\t x"))
	assert.Equal(t, "  ", Indentation("  "))
}

func TestExpandSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shorthand.expand")
	defer teardown()
	//
	line := "div.a"
	x, err := Expand(line, len(line), DefaultSettings()).Get()
	require.NoError(t, err)
	assert.Equal(t, 0, x.Start)
	assert.Equal(t, len(line), x.End)
	assert.Equal(t, "<div className={css.a}></div>", x.Text)
	assert.Equal(t, len("<div className={css.a}>"), x.Cursor)
	out, cur := x.Apply(line)
	assert.Equal(t, "<div className={css.a}></div>", out)
	assert.Equal(t, "</div>", out[cur:])
}

func TestExpandIndented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shorthand.expand")
	defer teardown()
	//
	line := "    ul>li{a}+li{b} // rest"
	cursor := strings.Index(line, " //")
	s := DefaultSettings()
	s.Prefix = "styles"
	x, err := Expand(line, cursor, s).Get()
	require.NoError(t, err)
	out, cur := x.Apply(line)
	t.Logf("expanded =\n%s", out)
	expected := strings.Join([]string{
		"    <ul>",
		"      <li>a</li>",
		"      <li>b</li>",
		"    </ul> // rest",
	}, "\n")
	assert.Equal(t, expected, out)
	assert.Equal(t, "\n      <li>a</li>", out[cur:cur+17])
}

func TestExpandMidLine(t *testing.T) {
	line := "return (p.x.y"
	x, err := Expand(line, len(line), DefaultSettings()).Get()
	require.Error(t, err, "'(p.x.y' is not a valid token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
	line = "return ( p.x.y"
	x, err = Expand(line, len(line), DefaultSettings()).Get()
	require.NoError(t, err)
	out, _ := x.Apply(line)
	assert.Equal(t, "return ( <p className={`${css.x} ${css.y}`}></p>", out)
}

func TestExpandErrors(t *testing.T) {
	var tests = []struct {
		line   string
		cursor int
		err    error
	}{
		{"div", 4, ErrCursorRange},
		{"div", -1, ErrCursorRange},
		{"ädiv", 1, ErrCursorRange},
		{"div ", 4, ErrNoToken},
		{"", 0, ErrNoToken},
		{"x=y", 3, ErrInvalidToken},
		{"123", 3, ErrNoShorthand},
		{">>>", 3, ErrNoShorthand},
	}
	for _, test := range tests {
		var x Expansion
		var err error
		switch m := Expand(test.line, test.cursor, DefaultSettings()).Match(); m {
		case m.Ok(&x):
			t.Errorf("expected %q@%d to fail, expanded to %q", test.line, test.cursor, x.Text)
		case m.Err(&err):
			if !errors.Is(err, test.err) {
				t.Errorf("expected %q@%d to fail with %v, is %v", test.line, test.cursor, test.err, err)
			}
		}
	}
}

func TestExpandCursorAfterOpeningTag(t *testing.T) {
	// text containing '>' is escaped, so the first '>' closes the opening tag
	x, err := Expand("b{a>b}", 6, DefaultSettings()).Get()
	require.NoError(t, err)
	assert.Equal(t, "<b>", x.Text[:x.Cursor])
}

func TestFallback(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "  ", Fallback(s))
	s.TabSize = 4
	assert.Equal(t, "    ", Fallback(s))
	s.InsertSpaces = false
	assert.Equal(t, "\t", Fallback(s))
	assert.Equal(t, "  ", Fallback(Settings{InsertSpaces: true}))
}

func TestExpandOrIndent(t *testing.T) {
	s := DefaultSettings()
	out, cur := ExpandOrIndent("a = b", 3, s)
	assert.Equal(t, "a =   b", out)
	assert.Equal(t, 5, cur)

	out, cur = ExpandOrIndent("  i", 3, s)
	assert.Equal(t, "  <i></i>", out)
	assert.Equal(t, 5, cur)

	s.InsertSpaces = false
	out, cur = ExpandOrIndent("x", 9, s)
	assert.Equal(t, "x\t", out)
	assert.Equal(t, 2, cur)
}
