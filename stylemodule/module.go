package stylemodule

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/shorthand/element"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// ErrUnknownClass is reported by Check for every class not defined by a module.
var ErrUnknownClass = errors.New("class not defined in style module")

// Module is a parsed CSS module.
type Module struct {
	sheet     *css.Stylesheet
	selectors []string        // distinct selectors of qualified rules, in order of appearance
	classes   map[string]bool // class names used in any selector
}

// Load reads and parses a CSS module file.
func Load(path string) (*Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read style module: %w", err)
	}
	m, err := Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses the source of a CSS module.
func Parse(src string) (*Module, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style module: %w", err)
	}
	m := &Module{
		sheet:   sheet,
		classes: make(map[string]bool),
	}
	seen := make(map[string]bool)
	collect(sheet.Rules, func(sel string) {
		if seen[sel] {
			return
		}
		seen[sel] = true
		m.selectors = append(m.selectors, sel)
		for _, c := range classesOf(sel) {
			m.classes[c] = true
		}
	})
	tracer().Debugf("style module with %d rules, %d selectors, %d classes",
		len(sheet.Rules), len(m.selectors), len(m.classes))
	return m, nil
}

// collect calls f for every selector of a qualified rule, descending into
// at-rules with nested rules, e.g. @media. Keyframe selectors are skipped.
func collect(rules []*css.Rule, f func(string)) {
	for _, r := range rules {
		switch r.Kind {
		case css.QualifiedRule:
			for _, sel := range r.Selectors {
				f(sel)
			}
		case css.AtRule:
			if r.Name == "@keyframes" || !r.EmbedsRules() {
				continue
			}
			collect(r.Rules, f)
		}
	}
}

// classesOf extracts the class names of a selector: every identifier
// directly following a '.' character.
func classesOf(selector string) []string {
	var classes []string
	s := scanner.New(selector)
	dot := false
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			return classes
		case scanner.TokenError:
			tracer().Infof("cannot scan selector %q: %s", selector, token.Value)
			return classes
		case scanner.TokenIdent:
			if dot {
				classes = append(classes, token.Value)
			}
		}
		dot = token.Type == scanner.TokenChar && token.Value == "."
	}
}

// Classes returns the class names defined by the module, sorted.
func (m *Module) Classes() []string {
	classes := make([]string, 0, len(m.classes))
	for c := range m.classes {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// Has is a predicate: does the module define class name?
func (m *Module) Has(name string) bool {
	return m.classes[name]
}

// Selectors returns the distinct selectors of the module's rules, in order
// of appearance.
func (m *Module) Selectors() []string {
	return m.selectors
}

// Stylesheet returns the underlying douceur style sheet.
func (m *Module) Stylesheet() *css.Stylesheet {
	return m.sheet
}

// Check returns an error wrapping ErrUnknownClass for every class used in
// tree which the module does not define. Errors are combined with multierr
// and may be split using multierr.Errors. Check returns nil if all classes
// are defined.
func (m *Module) Check(tree *element.Node) error {
	var err error
	for _, c := range element.ClassNames(tree) {
		if !m.Has(c) {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownClass, c))
		}
	}
	return err
}

// Matching returns the module's selectors which match at least one element
// of an HTML document. Selectors which cascadia cannot handle, e.g. ones
// with pseudo-elements, are skipped.
func (m *Module) Matching(doc *html.Node) []string {
	if doc == nil {
		return nil
	}
	var matching []string
	for _, sel := range m.selectors {
		compiled, err := cascadia.Parse(sel)
		if err != nil {
			tracer().Infof("skipping selector %q: %v", sel, err)
			continue
		}
		if cascadia.Query(doc, compiled) != nil {
			matching = append(matching, sel)
		}
	}
	return matching
}
