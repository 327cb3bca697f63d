package preview_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typoscale/preview"
	"github.com/npillmayer/typoscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallScale(t *testing.T) (scale.Scale, scale.Config) {
	t.Helper()
	cfg := scale.Default()
	cfg.UseRem = false
	cfg.PositiveSteps, cfg.NegativeSteps = 2, 1
	cfg.Font = "Inter"
	cfg.Elements = []scale.Assignment{{Element: "h1", Step: 2}, {Element: "p", Step: 0}, {Element: "small", Step: -1}, {Element: "display", Step: 9}}
	s, err := scale.Generate(cfg)
	require.NoError(t, err)
	return s, cfg
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestDocumentRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typoscale.preview")
	defer teardown()
	//
	s, cfg := smallScale(t)
	var out bytes.Buffer
	require.NoError(t, preview.Render(&out, preview.Document(s, cfg, "")))
	page := out.String()
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"), "expected a doctype")
	assert.Contains(t, page, "<style>:root {")
	assert.Contains(t, page, "Font Preview: Inter")
	assert.Contains(t, page, `font-family: &#39;Inter&#39;`)
	assert.Contains(t, page, `<h1 style="font-size: clamp(21.32px, 28.43px, 35.54px)">h1: `+preview.DefaultText+`</h1>`)
	assert.Contains(t, page, `<p style="font-size: 16px">`)
	assert.Contains(t, page, `<div class="display" style="font-size: inherit">`)
	assert.NotContains(t, page, `class="mobile"`)
}

func TestDocumentMobileColumn(t *testing.T) {
	s, cfg := smallScale(t)
	cfg.Mobile = &scale.MobileScale{BaseSize: 14, Ratio: scale.MajorThird, Breakpoint: 768}
	s, err := scale.Generate(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, preview.Render(&out, preview.Document(s, cfg, "Sample")))
	page := out.String()
	assert.Contains(t, page, `<section class="mobile">`)
	assert.Contains(t, page, `<p style="font-size: 14px">p: Sample</p>`)
	assert.Contains(t, page, "@media (max-width: 768px)")
}

func TestResolveSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typoscale.preview")
	defer teardown()
	//
	s, cfg := smallScale(t)
	sizes, err := preview.ResolveSizes(preview.Document(s, cfg, ""))
	require.NoError(t, err)
	for _, a := range cfg.Elements {
		st, ok := s.Lookup(a.Step)
		v, found := sizes[a.Element]
		if !ok {
			assert.False(t, found, "expected no rule for %s", a.Element)
			continue
		}
		if assert.True(t, found, "expected a size for %s", a.Element) {
			assert.Equal(t, stripSpace(st.Expr), stripSpace(v))
		}
	}
}

func TestResolveSizesWithoutStylesheet(t *testing.T) {
	_, err := preview.ResolveSizes(nil)
	assert.ErrorIs(t, err, preview.ErrNoStylesheet)
}

func TestOutline(t *testing.T) {
	s, cfg := smallScale(t)
	out := preview.Outline(s, cfg)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "scale 16px × Perfect Fourth")
	assert.Contains(t, out, "--step-0  16.00px  12.04pt")
	assert.Contains(t, out, "h1")
	assert.NotContains(t, out, "mobile")
	assert.Less(t, strings.Index(out, "--step-2"), strings.Index(out, "--step--1"),
		"expected larger steps first")
}

func TestFluidScaleLabel(t *testing.T) {
	cfg := scale.Default()
	cfg.Fluid = true
	cfg.PositiveSteps, cfg.NegativeSteps = 1, 1
	s, err := scale.Generate(cfg)
	require.NoError(t, err)
	const label = "fluid 14px × Major Third at 320px to 18px × Perfect Fourth at 1920px"
	out := preview.Outline(s, cfg)
	assert.Contains(t, out, "scale "+label)
	assert.NotContains(t, out, "16px × Perfect Fourth")
	var dot bytes.Buffer
	require.NoError(t, preview.ToGraphViz(s, cfg, &dot))
	assert.Contains(t, dot.String(), `label="`+label+`"`)
	assert.NotContains(t, dot.String(), "16px × Perfect Fourth")
}

func TestToGraphViz(t *testing.T) {
	s, cfg := smallScale(t)
	var out bytes.Buffer
	require.NoError(t, preview.ToGraphViz(s, cfg, &out))
	dot := out.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "step000 -> step001")
	assert.Contains(t, dot, `elem000 [ label="h1"`)
	assert.Contains(t, dot, "elem000 -> step003")
	assert.Contains(t, dot, `elem003 [ label=".display"`)
	assert.NotContains(t, dot, "elem003 ->")
	assert.NotContains(t, dot, "--step--1 ->")
}
