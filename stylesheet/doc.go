/*
Package stylesheet renders generated type scales as stylesheet text.

The output consists of a :root block declaring one custom property per
step (and one per step for line heights, if configured), an optional
@media block redefining the properties for a mobile scale, one rule per
assigned element binding its font-size to a step, and an optional block of
SASS variables. The text is derived from a scale and is regenerated in
full whenever the scale changes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stylesheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typoscale.stylesheet'.
func tracer() tracing.Trace {
	return tracing.Select("typoscale.stylesheet")
}
