/*
Package expand expands shorthand notation in a line of text.

Given a line and a cursor column, Expand looks for a shorthand token
immediately before the cursor, e.g.

    return (div.card>h2{Title}+p.body|

with '|' denoting the cursor. The token is parsed and rendered as JSX, using
the leading whitespace of the line as base indentation for all but the first
line of markup. The result describes which part of the line to replace, the
replacement text, and where to put the cursor afterwards: right after the
first opening tag.

If no token can be expanded, clients usually want to do what the tab key
does. ExpandOrIndent wraps this decision.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expand

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shorthand.expand'.
func tracer() tracing.Trace {
	return tracing.Select("shorthand.expand")
}
