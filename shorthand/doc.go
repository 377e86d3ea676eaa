/*
Package shorthand parses compact element shorthand into element trees.

Shorthand Notation

Shorthand strings describe small trees of markup elements, similar to
Emmet abbreviations:

    div.card>h2.title{Hello}+p#intro.text

A segment names an element: a tag, followed by any number of decorations.
".name" adds a class, "#name" sets the id (the last one wins), and a
trailing "{text}" sets a literal text. Two operators chain segments:
">" descends (the following segments become children of the previous one),
and "+" appends a sibling at the current level. Operators occurring inside
braces are part of the text.

Parsing is tolerant: a segment which does not start with a tag name is
dropped silently, without affecting the rest of the input. Only if no
segment at all yields an element, the parser reports Nothing.

The parser holds no state between calls and may be used concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shorthand

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shorthand.parser'.
func tracer() tracing.Trace {
	return tracing.Select("shorthand.parser")
}
