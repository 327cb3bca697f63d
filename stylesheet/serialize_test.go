package stylesheet_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typoscale/scale"
	"github.com/npillmayer/typoscale/stylesheet"
)

func generate(t *testing.T, cfg scale.Config) scale.Scale {
	t.Helper()
	s, err := scale.Generate(cfg)
	if err != nil {
		t.Fatalf("cannot generate scale: %v", err)
	}
	return s
}

func TestSerializeSmallScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typoscale.stylesheet")
	defer teardown()
	//
	cfg := scale.Default()
	cfg.UseRem = false
	cfg.PositiveSteps, cfg.NegativeSteps = 1, 1
	cfg.Elements = []scale.Assignment{{Element: "p", Step: 0}, {Element: "h1", Step: 1}, {Element: "small", Step: -1}, {Element: "micro", Step: -2}}
	out := stylesheet.Serialize(generate(t, cfg), cfg)
	want := `:root {
  --step--1: clamp(9.00px, 12.00px, 15.00px);
  --step-0: 16px;
  --step-1: clamp(16.00px, 21.33px, 26.66px);
}

p {
  font-size: var(--step-0);
}

h1 {
  font-size: var(--step-1);
}

small {
  font-size: var(--step--1);
}

`
	if out != want {
		t.Errorf("unexpected stylesheet:\n%s\nexpected:\n%s", out, want)
	}
}

func TestSerializeElementOrder(t *testing.T) {
	cfg := scale.Default()
	out := stylesheet.Serialize(generate(t, cfg), cfg)
	last := -1
	for _, a := range cfg.Elements {
		rule := stylesheet.Selector(a.Element) + " {\n  font-size: var(" +
			stylesheet.PropertyName("step", a.Step) + ");\n}"
		i := strings.Index(out, rule)
		if i < 0 {
			t.Fatalf("expected a rule for %s, have none:\n%s", a.Element, out)
		}
		if i < last {
			t.Errorf("expected rule for %s to follow the previous element's rule", a.Element)
		}
		last = i
	}
	// custom properties in ascending step order
	prev := -1
	for step := -3; step <= 9; step++ {
		i := strings.Index(out, stylesheet.PropertyName("step", step)+": ")
		if i <= prev {
			t.Errorf("expected declaration of step %d after step %d", step, step-1)
		}
		prev = i
	}
}

func TestSerializeOmitsOutOfRange(t *testing.T) {
	cfg := scale.Default()
	cfg.PositiveSteps, cfg.NegativeSteps = 3, 1
	cfg.Elements = []scale.Assignment{{Element: "h1", Step: 7}, {Element: "h2", Step: 3}, {Element: "small", Step: -2}, {Element: "p", Step: 0}}
	out := stylesheet.Serialize(generate(t, cfg), cfg)
	for _, sel := range []string{"h1 {", "small {"} {
		if strings.Contains(out, sel) {
			t.Errorf("expected no rule %q for an out-of-range step:\n%s", sel, out)
		}
	}
	for _, sel := range []string{"h2 {", "p {"} {
		if !strings.Contains(out, sel) {
			t.Errorf("expected rule %q:\n%s", sel, out)
		}
	}
}

func TestSerializeLineHeights(t *testing.T) {
	cfg := scale.Default()
	cfg.PositiveSteps, cfg.NegativeSteps = 1, 0
	cfg.Elements = []scale.Assignment{{Element: "h1", Step: 1}}
	cfg.LineHeight = &scale.LineHeightRange{Min: 22, Max: 28}
	s := generate(t, cfg)
	out := stylesheet.Serialize(s, cfg)
	st, _ := s.Lookup(1)
	if !strings.Contains(out, "  --step-lh-1: "+st.LineHeight+";\n") {
		t.Errorf("expected line height property for step 1:\n%s", out)
	}
	if !strings.Contains(out, "h1 {\n  font-size: var(--step-1);\n  line-height: var(--step-lh-1);\n}") {
		t.Errorf("expected h1 to bind its line height:\n%s", out)
	}
	if strings.Index(out, "--step-lh-0:") < strings.Index(out, "--step-1:") {
		t.Error("expected line heights to be declared after all sizes")
	}
}

func TestSerializeMobile(t *testing.T) {
	cfg := scale.Default()
	cfg.UseRem = false
	cfg.PositiveSteps, cfg.NegativeSteps = 1, 0
	cfg.Elements = nil
	cfg.Mobile = &scale.MobileScale{BaseSize: 14, Ratio: scale.MajorThird, Breakpoint: 768}
	out := stylesheet.Serialize(generate(t, cfg), cfg)
	want := `@media (max-width: 768px) {
  :root {
    --step-0: 14px;
    --step-1: clamp(13.12px, 17.50px, 21.88px);
  }
}
`
	if !strings.Contains(out, want) {
		t.Errorf("expected mobile block\n%s\nin\n%s", want, out)
	}
}

func TestSerializeSass(t *testing.T) {
	cfg := scale.Default()
	cfg.UseRem = false
	cfg.PositiveSteps, cfg.NegativeSteps = 1, 1
	cfg.Prefix = "fs"
	cfg.Sass = true
	s := generate(t, cfg)
	sass := stylesheet.Sass(s, cfg)
	want := `$fs--1: clamp(9.00px, 12.00px, 15.00px);
$fs-0: 16px;
$fs-1: clamp(16.00px, 21.33px, 26.66px);
`
	if sass != want {
		t.Errorf("unexpected SASS variables:\n%s", sass)
	}
	out := stylesheet.Serialize(s, cfg)
	if !strings.HasSuffix(out, "/* SASS variables */\n"+want) {
		t.Errorf("expected stylesheet to end with SASS variables:\n%s", out)
	}
	if !strings.Contains(out, "p {\n  font-size: var(--fs-0);\n}") {
		t.Errorf("expected rules to use prefix fs:\n%s", out)
	}
}

func TestSerializeSassFluidLineHeights(t *testing.T) {
	cfg := scale.Default()
	cfg.Fluid, cfg.CSSLocks = true, true
	cfg.PositiveSteps, cfg.NegativeSteps = 0, 0
	cfg.LineHeight = &scale.LineHeightRange{Min: 24, Max: 32}
	cfg.Prefix = "fs"
	cfg.Sass = true
	s := generate(t, cfg)
	sass := stylesheet.Sass(s, cfg)
	want := "$fs-0: calc(0.8250rem + 0.2500vw);\n$fs-lh-0: calc(1.4000rem + 0.5000vw);\n"
	if sass != want {
		t.Errorf("unexpected SASS variables:\n%s\nexpected:\n%s", sass, want)
	}
	out := stylesheet.Serialize(s, cfg)
	if !strings.HasSuffix(out, "/* SASS variables */\n"+want) {
		t.Errorf("expected stylesheet to end with SASS variables:\n%s", out)
	}
}

func TestSerializeDeterminism(t *testing.T) {
	cfg := scale.Default()
	cfg.Fluid = true
	cfg.Sass = true
	cfg.LineHeight = &scale.LineHeightRange{Min: 20, Max: 26}
	a := stylesheet.Serialize(generate(t, cfg), cfg)
	b := stylesheet.Serialize(generate(t, cfg), cfg)
	if a != b {
		t.Error("expected identical configurations to serialize identically")
	}
}

func TestSelector(t *testing.T) {
	tests := map[string]string{
		"h1":         "h1",
		"P":          "p",
		"blockquote": "blockquote",
		"small":      "small",
		"caption":    "caption",
		"display":    ".display",
		"title":      ".title",
		"micro":      ".micro",
		".lead":      ".lead",
		"#hero":      "#hero",
	}
	for element, want := range tests {
		if sel := stylesheet.Selector(element); sel != want {
			t.Errorf("expected selector for %q to be %q, is %q", element, want, sel)
		}
	}
}
