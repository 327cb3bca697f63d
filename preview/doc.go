/*
Package preview renders generated type scales for inspection.

Document builds an HTML page showing every assigned element at its step's
size, with the serialized stylesheet embedded. The font family of the page
is taken from the configuration as an opaque name; loading the font is left
to whoever displays the page. ResolveSizes reads the embedded stylesheet
back and reports which size expression each selector resolves to.

Outline and ToGraphViz print a scale as a tree and as a GraphViz diagram,
respectively.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typoscale.preview'.
func tracer() tracing.Trace {
	return tracing.Select("typoscale.preview")
}
