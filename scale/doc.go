/*
Package scale generates modular typographic scales.

A modular scale starts from a base font size (step 0) and derives larger
and smaller sizes by repeatedly applying a ratio, e.g. 1.333 (a perfect
fourth). Given a Config, Generate computes an ordered sequence of steps
from -NegativeSteps to +PositiveSteps, each carrying a CSS size expression
and, optionally, a line height expression.

Sizes are either fixed, rendered as a clamp() around the target size, or
fluid, interpolating between a scale for a minimum viewport width and a
scale for a maximum viewport width. Fluid sizes are rendered either as a
clamped interpolation or as an unclamped linear function of the viewport
width (a "CSS lock").

Generation is a pure computation: identical configurations always yield
identical scales, down to the formatted text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scale

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typoscale.scale'.
func tracer() tracing.Trace {
	return tracing.Select("typoscale.scale")
}
