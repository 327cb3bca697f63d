package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	unitNone   uint32 = 0
	unitPx     uint32 = 0x0001
	unitRem    uint32 = 0x0002
	unitVw     uint32 = 0x0003
	unitMask   uint32 = 0x000f
)

// Decimal places used when rendering values of a unit.
const (
	PxPrecision  = 2
	RemPrecision = 4
	VwPrecision  = 4
)

// DefaultRemBase is the number of pixels per rem browsers use by default.
const DefaultRemBase = 16.0

// CSS pixels are 1/96 inch, typesetter points are 1/72.27 inch.
const pxPerPoint = 96.0 / 72.27

// Length is an option type for the CSS lengths a type scale uses.
type Length struct {
	value float64
	flags uint32
}

/*
type Length
	= None
	| Px value
	| Rem value
	| Vw value
*/

// Px creates an absolute length of x pixels.
func Px(x float64) Length {
	return Length{value: x, flags: unitPx}
}

// Rem creates a length of x root em.
func Rem(x float64) Length {
	return Length{value: x, flags: unitRem}
}

// Vw creates a length of x percent of the viewport width.
func Vw(x float64) Length {
	return Length{value: x, flags: unitVw}
}

// FromPx expresses a pixel size in the configured unit: rem (relative to
// remBase pixels) if useRem is set, pixels otherwise.
func FromPx(px, remBase float64, useRem bool) Length {
	if useRem {
		return Rem(px / remBase)
	}
	return Px(px)
}

// Value returns the numeric value of a length, without unit.
func (l Length) Value() float64 {
	return l.value
}

// Scale returns a length of the same unit, multiplied by f.
func (l Length) Scale(f float64) Length {
	return Length{value: l.value * f, flags: l.flags}
}

// String renders a length with the fixed precision of its unit,
// e.g. "21.33px" or "1.3330rem".
func (l Length) String() string {
	switch l.flags & unitMask {
	case unitPx:
		return Format(l.value, PxPrecision) + "px"
	case unitRem:
		return Format(l.value, RemPrecision) + "rem"
	case unitVw:
		return Format(l.value, VwPrecision) + "vw"
	}
	return "none"
}

// Points converts an absolute or root-relative length to typesetter points.
// Viewport-relative lengths have no absolute size and convert to zero.
func (l Length) Points(remBase float64) dimen.DU {
	var x float64
	switch m := l.Match(); m {
	case m.Px(&x):
	case m.Rem(&x):
		x *= remBase
	default:
		tracer().Debugf("css: cannot convert %s to points", l)
		return 0
	}
	return dimen.DU(math.Round(x / pxPerPoint * float64(dimen.PT)))
}

// --- Matching --------------------------------------------------------------

// Match starts a match expression on a length:
//
//     var x float64
//     switch m := l.Match(); m {
//     case m.Px(&x):
//        ...
//     case m.Rem(&x):
//        ...
//     }
//
func (l Length) Match() *Matcher {
	return &Matcher{length: l}
}

// Matcher is the subject of a match expression on a length.
type Matcher struct {
	length Length
}

// Px matches pixel lengths and extracts the value into x, if x is non-nil.
func (m *Matcher) Px(x *float64) *Matcher {
	return m.unit(unitPx, x)
}

// Rem matches rem lengths and extracts the value into x, if x is non-nil.
func (m *Matcher) Rem(x *float64) *Matcher {
	return m.unit(unitRem, x)
}

func (m *Matcher) unit(u uint32, x *float64) *Matcher {
	if m.length.flags&unitMask != u {
		return nil
	}
	if x != nil {
		*x = m.length.value
	}
	return m
}

// --- Number formatting -----------------------------------------------------

// Format renders x with exactly prec decimal places. Negative zero, which
// may result from rounding small negative values, is rendered as zero.
func Format(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}

// Compact renders x with the minimal number of digits needed to represent
// it, e.g. "16" or "14.5". It is used for literal values the caller
// provided, which must be reproduced unmodified.
func Compact(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
