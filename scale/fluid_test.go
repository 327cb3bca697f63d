package scale_test

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typoscale/css"
	"github.com/npillmayer/typoscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fluid(locks bool) scale.Config {
	cfg := scale.Default()
	cfg.Fluid = true
	cfg.CSSLocks = locks
	return cfg
}

var lockPattern = regexp.MustCompile(`^calc\((-?[0-9.]+)(px|rem) \+ (-?[0-9.]+)vw\)$`)

// evalLock evaluates a rendered lock for a viewport width of w px.
func evalLock(t *testing.T, expr string, w, remBase float64) float64 {
	t.Helper()
	m := lockPattern.FindStringSubmatch(expr)
	require.NotNil(t, m, "expected a lock expression, have %q", expr)
	intercept, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	if m[2] == "rem" {
		intercept *= remBase
	}
	slope, err := strconv.ParseFloat(m[3], 64)
	require.NoError(t, err)
	return intercept + slope*w/100
}

func TestFluidLockScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typoscale.scale")
	defer teardown()
	//
	cfg := fluid(true)
	cfg.UseRem = false
	cfg.MinBaseSize, cfg.MaxBaseSize = 14, 18
	cfg.MinRatio, cfg.MaxRatio = 1.25, 1.25
	cfg.MinScreenWidth, cfg.MaxScreenWidth = 320, 1920
	s, err := scale.Generate(cfg)
	require.NoError(t, err)
	st, ok := s.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "calc(13.20px + 0.2500vw)", st.Expr)
	assert.Equal(t, 14.0, st.MinSize)
	assert.Equal(t, 18.0, st.MaxSize)
}

func TestFluidLockLinearity(t *testing.T) {
	for _, rem := range []bool{false, true} {
		cfg := fluid(true)
		cfg.UseRem = rem
		s, err := scale.Generate(cfg)
		require.NoError(t, err)
		for _, st := range s.Steps {
			lo := evalLock(t, st.Expr, cfg.MinScreenWidth, cfg.RemBase)
			hi := evalLock(t, st.Expr, cfg.MaxScreenWidth, cfg.RemBase)
			assert.InDelta(t, st.MinSize, lo, 0.01, "step %d at min viewport: %s", st.Index, st.Expr)
			assert.InDelta(t, st.MaxSize, hi, 0.01, "step %d at max viewport: %s", st.Index, st.Expr)
		}
	}
}

func TestFluidClampContainment(t *testing.T) {
	for _, rem := range []bool{false, true} {
		cfg := fluid(false)
		cfg.UseRem = rem
		s, err := scale.Generate(cfg)
		require.NoError(t, err)
		for _, st := range s.Steps {
			args := clampArgs(t, st.Expr)
			assert.Equal(t, css.FromPx(st.MinSize, cfg.RemBase, rem).String(), args[0],
				"lower bound of step %d", st.Index)
			assert.Equal(t, css.FromPx(st.MaxSize, cfg.RemBase, rem).String(), args[2],
				"upper bound of step %d", st.Index)
			assert.True(t, strings.HasPrefix(args[1], "calc("+args[0]+" + ("),
				"preferred value of step %d starts at the lower bound: %s", st.Index, args[1])
			assert.Contains(t, args[1], "((100vw - 320px) / (1920 - 320))")
		}
	}
}

func TestFluidIgnoresAdvancedMode(t *testing.T) {
	cfg := fluid(true)
	a, err := scale.Generate(cfg)
	require.NoError(t, err)
	cfg.Advanced = true
	b, err := scale.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	st, _ := b.Lookup(2)
	assert.InDelta(t, 14*math.Pow(1.25, 2), st.MinSize, 1e-9)
}

func TestLineHeights(t *testing.T) {
	for _, isFluid := range []bool{false, true} {
		for _, rem := range []bool{false, true} {
			cfg := fluid(false)
			cfg.Fluid = isFluid
			cfg.UseRem = rem
			cfg.LineHeight = &scale.LineHeightRange{Min: 24, Max: 32}
			s, err := scale.Generate(cfg)
			require.NoError(t, err)
			for _, st := range s.Steps {
				require.True(t, st.HasLineHeight(), "step %d has no line height", st.Index)
				lo := evalLock(t, st.LineHeight, cfg.MinScreenWidth, cfg.RemBase)
				hi := evalLock(t, st.LineHeight, cfg.MaxScreenWidth, cfg.RemBase)
				assert.InDelta(t, 24, lo, 0.01, "line height of step %d at min viewport", st.Index)
				assert.InDelta(t, 32, hi, 0.01, "line height of step %d at max viewport", st.Index)
				assert.Equal(t, s.Steps[0].LineHeight, st.LineHeight, "line height of step %d", st.Index)
			}
		}
	}
	cfg := fluid(true)
	cfg.UseRem = false
	cfg.LineHeight = &scale.LineHeightRange{Min: 24, Max: 32}
	s, err := scale.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "calc(22.40px + 0.5000vw)", s.Steps[0].LineHeight)
}
