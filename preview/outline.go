package preview

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/typoscale/css"
	"github.com/npillmayer/typoscale/scale"
	"github.com/npillmayer/typoscale/stylesheet"
	tp "github.com/xlab/treeprint"
)

// Outline prints a scale as a tree. Every step is a branch labelled with its
// custom property, size in px and size in typesetter points. The elements
// assigned to a step are its leaves. A mobile scale is printed as a second
// subtree.
func Outline(s scale.Scale, cfg scale.Config) string {
	printer := tp.New()
	printer.SetValue("scale " + scaleLabel(cfg))
	outlineSteps(printer.AddBranch("desktop"), s.Steps, cfg)
	if s.HasMobile() {
		label := fmt.Sprintf("mobile ≤ %spx", css.Compact(s.Breakpoint))
		outlineSteps(printer.AddBranch(label), s.Mobile, cfg)
	}
	return printer.String()
}

func outlineSteps(branch tp.Tree, steps []scale.Step, cfg scale.Config) {
	prefix := cfg.VarPrefix()
	for i := len(steps) - 1; i >= 0; i-- { // largest first
		st := steps[i]
		label := fmt.Sprintf("%s  %s  %s", stylesheet.PropertyName(prefix, st.Index),
			sizeLabel(st), points(st.Size, cfg))
		elements := elementsOf(st.Index, cfg)
		if len(elements) == 0 {
			branch.AddNode(label)
			continue
		}
		b := branch.AddBranch(label)
		for _, e := range elements {
			b.AddNode(stylesheet.Selector(e))
		}
	}
}

func sizeLabel(st scale.Step) string {
	if st.MinSize != st.MaxSize {
		return css.Format(st.MinSize, css.PxPrecision) + "…" + css.Format(st.MaxSize, css.PxPrecision) + "px"
	}
	return css.Format(st.Size, css.PxPrecision) + "px"
}

func points(px float64, cfg scale.Config) string {
	remBase := cfg.RemBase
	if remBase <= 0 {
		remBase = css.DefaultRemBase
	}
	du := css.Px(px).Points(remBase)
	return strings.TrimSuffix(fmt.Sprintf("%.2f", float64(du)/float64(dimen.PT)), ".00") + "pt"
}

func elementsOf(step int, cfg scale.Config) []string {
	var elements []string
	for _, a := range cfg.Elements {
		if a.Step == step {
			elements = append(elements, a.Element)
		}
	}
	return elements
}
