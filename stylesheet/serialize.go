package stylesheet

import (
	"strconv"
	"strings"

	"github.com/npillmayer/typoscale/css"
	"github.com/npillmayer/typoscale/scale"
	"github.com/npillmayer/typoscale/style/cssom"
)

const indent = "  "

// PropertyName returns the custom property name of a step,
// e.g. "--step-1" or "--step--2".
func PropertyName(prefix string, step int) string {
	return "--" + prefix + "-" + strconv.Itoa(step)
}

// LineHeightName returns the custom property name of a step's line height,
// e.g. "--step-lh-1".
func LineHeightName(prefix string, step int) string {
	return "--" + prefix + "-lh-" + strconv.Itoa(step)
}

// SassName returns the SASS variable name of a step, e.g. "$step-1".
func SassName(prefix string, step int) string {
	return "$" + prefix + "-" + strconv.Itoa(step)
}

// SassLineHeightName returns the SASS variable name of a step's line height.
func SassLineHeightName(prefix string, step int) string {
	return "$" + prefix + "-lh-" + strconv.Itoa(step)
}

// Serialize renders a scale into stylesheet text.
//
// Custom properties are declared in ascending step order. Element rules
// follow the order of cfg.Elements; elements assigned to a step outside of
// the scale are omitted. If cfg.Sass is set, SASS variables mirroring the
// custom properties are appended.
func Serialize(s scale.Scale, cfg scale.Config) string {
	prefix := cfg.VarPrefix()
	var b strings.Builder
	b.WriteString(cssom.RootSelector)
	b.WriteString(" {\n")
	writeProperties(&b, s.Steps, prefix, indent)
	b.WriteString("}\n\n")
	if s.HasMobile() {
		b.WriteString("@media (max-width: ")
		b.WriteString(css.Compact(s.Breakpoint))
		b.WriteString("px) {\n")
		b.WriteString(indent + cssom.RootSelector + " {\n")
		writeProperties(&b, s.Mobile, prefix, indent+indent)
		b.WriteString(indent + "}\n}\n\n")
	}
	for _, a := range cfg.Elements {
		st, ok := s.Lookup(a.Step)
		if !ok {
			tracer().Debugf("stylesheet: step %d of element %s is out of range, skipped", a.Step, a.Element)
			continue
		}
		b.WriteString(Selector(a.Element))
		b.WriteString(" {\n")
		writeDeclaration(&b, indent, "font-size", css.Var(PropertyName(prefix, st.Index)))
		if st.HasLineHeight() {
			writeDeclaration(&b, indent, "line-height", css.Var(LineHeightName(prefix, st.Index)))
		}
		b.WriteString("}\n\n")
	}
	if cfg.Sass {
		b.WriteString("/* SASS variables */\n")
		b.WriteString(Sass(s, cfg))
	}
	return b.String()
}

// Sass renders the SASS variables of a scale as a flat list, one per step,
// followed by one per line height.
func Sass(s scale.Scale, cfg scale.Config) string {
	prefix := cfg.VarPrefix()
	var b strings.Builder
	for _, st := range s.Steps {
		writeDeclaration(&b, "", SassName(prefix, st.Index), st.Expr)
	}
	for _, st := range s.Steps {
		if st.HasLineHeight() {
			writeDeclaration(&b, "", SassLineHeightName(prefix, st.Index), st.LineHeight)
		}
	}
	return b.String()
}

func writeProperties(b *strings.Builder, steps []scale.Step, prefix, ind string) {
	for _, st := range steps {
		writeDeclaration(b, ind, PropertyName(prefix, st.Index), st.Expr)
	}
	for _, st := range steps {
		if st.HasLineHeight() {
			writeDeclaration(b, ind, LineHeightName(prefix, st.Index), st.LineHeight)
		}
	}
}

func writeDeclaration(b *strings.Builder, ind, key, value string) {
	b.WriteString(ind)
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(";\n")
}
