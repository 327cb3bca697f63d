package css

import "strings"

// Clamp renders the CSS functional notation clamp(min, preferred, max).
func Clamp(min, preferred, max string) string {
	return "clamp(" + min + ", " + preferred + ", " + max + ")"
}

// Calc wraps an expression into calc().
func Calc(expr string) string {
	return "calc(" + expr + ")"
}

// Lock renders a linear function of the viewport width,
//
//     calc(intercept + slope)
//
// where slope is a vw length. Negative slopes are rendered as the addition
// of a negative vw value, which is valid within calc().
func Lock(intercept, slope Length) string {
	return Calc(intercept.String() + " + " + slope.String())
}

// Interpolate renders the preferred value of a fluid size, which grows from
// lo pixels at a viewport width of minWidth pixels to hi pixels at maxWidth:
//
//     calc(base + (hi - lo) * ((100vw - minWidth) / (maxWidth - minWidth)))
//
// base is the start size expressed in the output unit. The difference
// (hi - lo) is a unitless pixel count, as the fraction of viewport widths
// carries the px unit.
func Interpolate(base Length, lo, hi, minWidth, maxWidth float64) string {
	var b strings.Builder
	b.WriteString(base.String())
	b.WriteString(" + (")
	b.WriteString(Format(hi, PxPrecision))
	b.WriteString(" - ")
	b.WriteString(Format(lo, PxPrecision))
	b.WriteString(") * ((100vw - ")
	b.WriteString(Compact(minWidth))
	b.WriteString("px) / (")
	b.WriteString(Compact(maxWidth))
	b.WriteString(" - ")
	b.WriteString(Compact(minWidth))
	b.WriteString("))")
	return Calc(b.String())
}

// Var renders a reference to a custom property, e.g. var(--step-1).
func Var(name string) string {
	return "var(" + name + ")"
}
