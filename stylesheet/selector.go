package stylesheet

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Elements which are never rendered in a document body. Type selectors for
// them make no sense in a type scale, e.g. "title" denotes a style class.
var notRendered = map[atom.Atom]bool{
	atom.Base:   true,
	atom.Head:   true,
	atom.Html:   true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Script: true,
	atom.Style:  true,
	atom.Title:  true,
}

// Selector returns the CSS selector for an element name of an assignment.
// Names of HTML elements become type selectors ("h1"), all other names
// become class selectors (".display"). Names which already are class or
// id selectors are returned unchanged.
func Selector(element string) string {
	if strings.HasPrefix(element, ".") || strings.HasPrefix(element, "#") {
		return element
	}
	if IsElement(element) {
		return strings.ToLower(element)
	}
	return "." + element
}

// IsElement checks if a name denotes an HTML element rendered in the body
// of a document.
func IsElement(name string) bool {
	a := atom.Lookup([]byte(strings.ToLower(name)))
	return a != 0 && !notRendered[a]
}
