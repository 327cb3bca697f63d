package preview

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/typoscale/scale"
	"github.com/npillmayer/typoscale/style/cssom"
	"github.com/npillmayer/typoscale/style/cssom/douceuradapter"
	"github.com/npillmayer/typoscale/stylesheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultText is the sample text elements are previewed with.
const DefaultText = "The quick brown fox jumps over the lazy dog"

// ErrNoStylesheet is returned if a document has no embedded stylesheet.
var ErrNoStylesheet = errors.New("preview: document contains no stylesheet")

// Document creates an HTML page previewing a scale. Every element of
// cfg.Elements is shown with the sample text, sized by an inline font-size
// from its step, or "inherit" if the step is not part of the scale. With a
// mobile scale, a second column shows the mobile sizes.
//
// The page embeds the serialized stylesheet, without SASS variables.
func Document(s scale.Scale, cfg scale.Config, text string) *html.Node {
	if text == "" {
		text = DefaultText
	}
	plain := cfg
	plain.Sass = false
	sheet := stylesheet.Serialize(s, plain)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(element(atom.Title), "Type scale preview"))
	head.AppendChild(withText(element(atom.Style), sheet))
	root.AppendChild(head)

	body := element(atom.Body)
	wrapper := element(atom.Div, attr("class", "preview"), attr("style", "font-family: "+fontFamily(cfg.Font)))
	wrapper.AppendChild(withText(element(atom.H2), "Font Preview: "+cfg.Font))
	wrapper.AppendChild(column("Desktop", s.Lookup, cfg, text))
	if s.HasMobile() {
		wrapper.AppendChild(column("Mobile", s.LookupMobile, cfg, text))
	}
	body.AppendChild(wrapper)
	root.AppendChild(body)
	tracer().Debugf("preview: document with %d elements, mobile=%v", len(cfg.Elements), s.HasMobile())
	return doc
}

// Render writes a document as HTML.
func Render(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

// ResolveSizes extracts the stylesheets embedded in a document and reports
// the font-size every rule resolves to, keyed by selector. References to
// custom properties are followed to their declarations.
func ResolveSizes(doc *html.Node) (map[string]string, error) {
	sheets := douceuradapter.ExtractStyleElements(doc)
	if len(sheets) == 0 {
		return nil, ErrNoStylesheet
	}
	sheet := sheets[0]
	for _, other := range sheets[1:] {
		sheet.AppendRules(other)
	}
	sizes := make(map[string]string)
	for _, r := range sheet.Rules() {
		if len(r.Nested()) > 0 {
			continue // @media
		}
		if v, ok := cssom.Lookup(sheet, r.Selector(), "font-size"); ok {
			sizes[r.Selector()] = v.String()
		}
	}
	return sizes, nil
}

type lookupFunc func(int) (scale.Step, bool)

func column(heading string, lookup lookupFunc, cfg scale.Config, text string) *html.Node {
	col := element(atom.Section, attr("class", strings.ToLower(heading)))
	col.AppendChild(withText(element(atom.H3), heading))
	for _, a := range cfg.Elements {
		decl := "font-size: inherit"
		if st, ok := lookup(a.Step); ok {
			decl = "font-size: " + st.Expr
			if st.HasLineHeight() {
				decl += "; line-height: " + st.LineHeight
			}
		}
		var n *html.Node
		if stylesheet.IsElement(a.Element) {
			n = element(atom.Lookup([]byte(strings.ToLower(a.Element))), attr("style", decl))
		} else {
			class := strings.TrimLeft(a.Element, ".#")
			n = element(atom.Div, attr("class", class), attr("style", decl))
		}
		col.AppendChild(withText(n, a.Element+": "+text))
	}
	return col
}

func fontFamily(font string) string {
	if font == "" {
		return "inherit"
	}
	return "'" + strings.ReplaceAll(font, "'", "") + "'"
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
