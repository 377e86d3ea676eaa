/*
Package stylemodule reads CSS modules, i.e. style sheets whose class names
are imported into a component as properties of an object:

    import css from './card.module.css'

Shorthand expansion renders class names as property accesses into such an
object without knowing whether the classes exist. This package closes the
gap: it lists the classes a module defines, checks element trees for classes
the module does not define, and tells which of the module's rules would
apply to an element tree (see package preview).

Style sheets are parsed with douceur, class names are extracted from rule
selectors with the gorilla CSS scanner, and selectors are matched with
cascadia.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylemodule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shorthand.stylemodule'.
func tracer() tracing.Trace {
	return tracing.Select("shorthand.stylemodule")
}
