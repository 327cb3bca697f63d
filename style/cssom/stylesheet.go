package cssom

import "github.com/npillmayer/typoscale/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "font-size"
	Value(string) style.Property // property value for key, e.g. "var(--step-1)"
	IsImportant(string) bool     // is property key marked as important?
	Nested() []Rule              // rules embedded in an at-rule, e.g. @media
}

// RootSelector is the selector of the scope custom properties are
// declared in.
const RootSelector = ":root"

// FindRule returns the last top-level rule with a given selector, which
// is the one taking precedence.
func FindRule(sheet StyleSheet, selector string) (Rule, bool) {
	var found Rule
	for _, r := range sheet.Rules() {
		if r.Selector() == selector {
			found = r
		}
	}
	return found, found != nil
}

// Lookup returns the value of a property for a selector. Later rules take
// precedence over earlier ones. Values referencing custom properties with
// var() are resolved against the :root scope.
func Lookup(sheet StyleSheet, selector, key string) (style.Property, bool) {
	p, ok := lookup(sheet, selector, key)
	if !ok {
		return style.NullStyle, false
	}
	return Resolve(sheet, p), true
}

func lookup(sheet StyleSheet, selector, key string) (style.Property, bool) {
	var p style.Property
	for _, r := range sheet.Rules() {
		if r.Selector() != selector {
			continue
		}
		if v := r.Value(key); !v.IsEmpty() {
			p = v
		}
	}
	return p, !p.IsEmpty()
}

// Resolve follows var() references of a property value to the custom
// property declarations of the :root scope. References to undeclared
// custom properties are returned unresolved.
func Resolve(sheet StyleSheet, p style.Property) style.Property {
	seen := make(map[string]bool)
	for {
		name, ok := p.VarName()
		if !ok || seen[name] {
			return p
		}
		seen[name] = true
		v, found := lookup(sheet, RootSelector, name)
		if !found {
			tracer().Debugf("cssom: custom property %s is not declared", name)
			return p
		}
		p = v
	}
}

// CustomProperties lists the custom properties declared in the :root scope,
// in order of declaration.
func CustomProperties(sheet StyleSheet) []style.KeyValue {
	var kv []style.KeyValue
	for _, r := range sheet.Rules() {
		if r.Selector() != RootSelector {
			continue
		}
		for _, key := range r.Properties() {
			if style.IsCustom(key) {
				kv = append(kv, style.KeyValue{Key: key, Value: r.Value(key)})
			}
		}
	}
	return kv
}
