/*
Package config reads scale configurations from YAML files.

A configuration file overrides the defaults of scale.Default() key by key.
Keys are snake_case, ratios may be given as numbers or by name:

    base_size: 18
    ratio: perfect-fourth
    positive_steps: 6
    negative_steps: 2
    fluid:
      min_base_size: 16
      max_base_size: 20
      min_ratio: major third
      max_ratio: 1.414
    line_height:
      min: 24
      max: 30
    elements:
      h1: 6
      h2: 4
      p: 0
      small: -1

The elements mapping replaces the preset assignments as a whole, and its
document order is the order of the rules in the generated stylesheet.
A fluid section switches on fluid mode unless it says "enabled: false".

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typoscale.config'.
func tracer() tracing.Trace {
	return tracing.Select("typoscale.config")
}
