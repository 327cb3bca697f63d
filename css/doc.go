/*
Package css provides CSS length values and expression builders for
typographic scales.

Scale generation deals with a small subset of CSS only: absolute pixel
lengths, root-relative rem lengths, viewport-relative vw lengths, and the
functional notations clamp() and calc() combining them. Values are plain
float64 numbers during computation and get formatted with a fixed number of
decimal places per unit when rendered, so identical input always renders
to identical text.

Status

The API is still young and may change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typoscale.css'.
func tracer() tracing.Trace {
	return tracing.Select("typoscale.css")
}
