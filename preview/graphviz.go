package preview

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/typoscale/css"
	"github.com/npillmayer/typoscale/scale"
	"github.com/npillmayer/typoscale/stylesheet"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Title    string
	StepTmpl *template.Template
	ElemTmpl *template.Template
	EdgeTmpl *template.Template
}

type stepNode struct {
	Name     string
	Property string
	Size     string
	Expr     string
	Base     bool
}

type elemNode struct {
	Name     string
	Selector string
}

type edge struct {
	From, To string
	Style    string
}

// ToGraphViz outputs a diagram for a scale. The diagram is in
// GraphViz (DOT) format. Steps are chained in ascending order, and every
// element of cfg.Elements points to the step it is assigned to. Elements
// assigned to a step outside of the scale are drawn without an edge.
func ToGraphViz(s scale.Scale, cfg scale.Config, w io.Writer) error {
	tmpl, err := template.New("scale").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{
		Fontname: "Helvetica",
		Title:    scaleLabel(cfg),
	}
	gparams.StepTmpl = template.Must(template.New("step").Parse(stepNodeTmpl))
	gparams.ElemTmpl = template.Must(template.New("elem").Parse(elemNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	prefix := cfg.VarPrefix()
	for i, st := range s.Steps {
		n := stepNode{
			Name:     stepNodeName(i),
			Property: stylesheet.PropertyName(prefix, st.Index),
			Size:     css.Format(st.Size, css.PxPrecision) + "px",
			Expr:     st.Expr,
			Base:     st.Index == 0,
		}
		if err = gparams.StepTmpl.Execute(w, n); err != nil {
			return err
		}
		if i > 0 {
			e := edge{From: stepNodeName(i - 1), To: n.Name, Style: "solid"}
			if err = gparams.EdgeTmpl.Execute(w, e); err != nil {
				return err
			}
		}
	}
	from, _ := s.Range()
	for i, a := range cfg.Elements {
		n := elemNode{Name: fmt.Sprintf("elem%03d", i), Selector: stylesheet.Selector(a.Element)}
		if err = gparams.ElemTmpl.Execute(w, n); err != nil {
			return err
		}
		if !s.Contains(a.Step) {
			tracer().Debugf("graphviz: element %s has no step %d", a.Element, a.Step)
			continue
		}
		e := edge{From: n.Name, To: stepNodeName(a.Step - from), Style: "dashed"}
		if err = gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// scaleLabel describes the parameters a scale has been generated from.
func scaleLabel(cfg scale.Config) string {
	if cfg.Fluid {
		return fmt.Sprintf("fluid %spx × %s at %spx to %spx × %s at %spx",
			css.Compact(cfg.MinBaseSize), ratioLabel(cfg.MinRatio), css.Compact(cfg.MinScreenWidth),
			css.Compact(cfg.MaxBaseSize), ratioLabel(cfg.MaxRatio), css.Compact(cfg.MaxScreenWidth))
	}
	return fmt.Sprintf("%spx × %s", css.Compact(cfg.BaseSize), ratioLabel(cfg.Ratio))
}

func ratioLabel(r float64) string {
	if name := scale.RatioName(r); name != "" {
		return name
	}
	return css.Compact(r)
}

// Step nodes are named by their position in the scale, as DOT identifiers
// must not contain a minus sign.
func stepNodeName(i int) string {
	return fmt.Sprintf("step%03d", i)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label={{ printf "%q" .Title }} splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const stepNodeTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor={{ if .Base }}"lightblue3"{{ else }}"ivory3"{{ end }} shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Property }}</font></td></tr>
      <tr><td align="right">size:</td><td>{{ .Size }}</td></tr>
      <tr><td align="right">css:</td><td>{{ .Expr }}</td></tr>
    </table>> ] ;
`

const elemNodeTmpl = `{{ .Name }} [ label={{ printf "%q" .Selector }} shape=ellipse style=filled fillcolor=grey95 ] ;
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1 style="{{ .Style }}"] ;
`
