/*
Package config holds the settings of the shorthand tools.

Settings are read from a YAML file and layered on top of defaults. Only known
keys are accepted:

    prefix: css          # style-module alias used in className expressions
    lookback: 200        # number of runes before the cursor searched for a token
    tab_size: 2          # fallback indentation
    insert_spaces: true  # fallback inserts spaces instead of a tab
    style_module: ""     # CSS module to check class names against
    tracing:
      adapter: go        # go | logrus | nop
      destination: ""    # Stdout, Stderr or a file URI
      levels:
        root: Error
        shorthand.parser: Debug

A *Config doubles as a schuko.Configuration, which lets it configure
tracing. Trace levels are available under keys "tracelevel.<tracer>".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shorthand.config'.
func tracer() tracing.Trace {
	return tracing.Select("shorthand.config")
}
