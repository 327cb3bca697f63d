/*
Package cssom provides a read-only object model for stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Generated
type scales are plain text; consumers which want to look into a stylesheet,
e.g. to find out which size an element will get, use the interfaces of this
package instead of re-parsing text themselves.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

Resolving a property value follows custom property references through
var() to the declarations of the :root scope, which is all the cascade
a generated type scale needs.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'typoscale.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("typoscale.cssom")
}
