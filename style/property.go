/*
Package style holds raw CSS property values as read back from stylesheets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'typoscale.style'
func tracer() tracing.Trace {
	return tracing.Select("typoscale.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     font-size: var(--step-7)
//
// a property value of "var(--step-7)" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsCustom checks wether a property key names a custom property,
// e.g. "--step-1".
func IsCustom(key string) bool {
	return strings.HasPrefix(key, "--")
}

// VarName returns the name of the custom property a value references,
// if the value is of the form var(--name). Fallback values, as in
// var(--name, 16px), are ignored.
//
//     Property("var(--step-7)").VarName() => "--step-7", true
//
func (p Property) VarName() (string, bool) {
	v := strings.TrimSpace(string(p))
	if !strings.HasPrefix(v, "var(") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	name := strings.TrimSpace(v[4 : len(v)-1])
	if i := strings.IndexByte(name, ','); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	if !IsCustom(name) {
		tracer().Debugf("style: %q does not reference a custom property", p)
		return "", false
	}
	return name, true
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}
