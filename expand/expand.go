package expand

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/shorthand/element"
	"github.com/npillmayer/shorthand/jsx"
	"github.com/npillmayer/shorthand/maybe"
	"github.com/npillmayer/shorthand/result"
	"github.com/npillmayer/shorthand/shorthand"
)

// Errors returned (wrapped) by Expand.
var (
	ErrCursorRange  = errors.New("cursor out of range")
	ErrNoToken      = errors.New("no token before cursor")
	ErrInvalidToken = errors.New("token contains characters not allowed in shorthand")
	ErrNoShorthand  = errors.New("token does not describe any element")
)

// Default values for Settings.
const (
	DefaultLookback = 200
	DefaultTabSize  = 2
)

// Settings control expansion and the fallback action.
type Settings struct {
	Prefix       string // style-module alias, "css" if empty
	Lookback     int    // max. number of runes before the cursor to consider
	TabSize      int    // number of spaces inserted by Fallback
	InsertSpaces bool   // Fallback inserts spaces instead of a tab
}

// DefaultSettings returns the settings used if no configuration is present.
func DefaultSettings() Settings {
	return Settings{
		Prefix:       jsx.DefaultPrefix,
		Lookback:     DefaultLookback,
		TabSize:      DefaultTabSize,
		InsertSpaces: true,
	}
}

var tokenChars = regexp.MustCompile(`^[a-zA-Z0-9.#>{}_+\-:]+$`)

// Token is a candidate for expansion. Start is the byte offset of the token
// within the text it was extracted from.
type Token struct {
	Text  string
	Start int
}

// ExtractToken finds the token at the end of before, which is the part of a
// line left of the cursor. Only the last lookback runes are considered; a
// lookback ≤ 0 means DefaultLookback. The token is the trailing run of
// non-space characters. ExtractToken returns Nothing if there is no such run,
// or if it contains characters which cannot be part of a shorthand.
func ExtractToken(before string, lookback int) maybe.Maybe[Token] {
	tok, err := extractToken(before, lookback)
	return maybe.From(tok, err == nil)
}

func extractToken(before string, lookback int) (Token, error) {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	window := before
	if n := utf8.RuneCountInString(before); n > lookback {
		skip := n - lookback
		for i := range before {
			if skip == 0 {
				window = before[i:]
				break
			}
			skip--
		}
	}
	start := 0
	if i := strings.LastIndexFunc(window, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(window[i:])
		start = i + size
	}
	text := window[start:]
	if text == "" {
		return Token{}, ErrNoToken
	}
	if !tokenChars.MatchString(text) {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, text)
	}
	return Token{Text: text, Start: len(before) - len(text)}, nil
}

// Indentation returns the leading whitespace of a line.
func Indentation(line string) string {
	end := strings.IndexFunc(line, func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if end < 0 {
		return line
	}
	return line[:end]
}

// Expansion describes an edit of a line: line[Start:End] is to be replaced
// by Text. Cursor is the byte offset within Text where the cursor should go.
type Expansion struct {
	Start, End int
	Text       string
	Cursor     int
}

// Apply performs the edit on line and returns the new text together with the
// absolute cursor offset in it.
func (x Expansion) Apply(line string) (string, int) {
	return line[:x.Start] + x.Text + line[x.End:], x.Start + x.Cursor
}

// Expand tries to expand the shorthand token left of byte offset cursor in
// line.
func Expand(line string, cursor int, s Settings) result.Result[Expansion] {
	if cursor < 0 || cursor > len(line) || !utf8.RuneStart(runeAt(line, cursor)) {
		return result.Err[Expansion](fmt.Errorf("%w: %d of %d", ErrCursorRange, cursor, len(line)))
	}
	before := line[:cursor]
	tok, err := extractToken(before, s.Lookback)
	if err != nil {
		return result.Err[Expansion](err)
	}
	tracer().Debugf("expanding token %q at column %d", tok.Text, tok.Start)
	return result.AndThen(func(tree *element.Node) result.Result[Expansion] {
		text := jsx.Render(tree, s.Prefix, Indentation(before))
		cur := strings.IndexByte(text, '>') + 1
		if cur == 0 {
			cur = len(text)
		}
		return result.Ok(Expansion{
			Start:  tok.Start,
			End:    cursor,
			Text:   text,
			Cursor: cur,
		})
	}, result.FromMaybe(shorthand.Parse(tok.Text),
		fmt.Errorf("%w: %q", ErrNoShorthand, tok.Text)))
}

func runeAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// Fallback is the text to insert if expansion is not possible: a tab, or
// TabSize spaces.
func Fallback(s Settings) string {
	if !s.InsertSpaces {
		return "\t"
	}
	n := s.TabSize
	if n <= 0 {
		n = DefaultTabSize
	}
	return strings.Repeat(" ", n)
}

// ExpandOrIndent expands the token left of cursor. If this is not possible,
// it inserts the fallback indentation at the cursor instead. It returns the
// new line and the new cursor offset. A cursor out of range is clamped to the
// end of the line.
func ExpandOrIndent(line string, cursor int, s Settings) (string, int) {
	var x Expansion
	var err error
	switch m := Expand(line, cursor, s).Match(); m {
	case m.Ok(&x):
		return x.Apply(line)
	case m.Err(&err):
		tracer().Debugf("no expansion: %v", err)
		if errors.Is(err, ErrCursorRange) {
			cursor = len(line)
		}
	}
	tab := Fallback(s)
	return line[:cursor] + tab + line[cursor:], cursor + len(tab)
}
