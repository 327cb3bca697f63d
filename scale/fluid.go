package scale

import (
	"github.com/npillmayer/typoscale/css"
)

// fluidSteps renders a scale interpolating between a scale for the minimum
// viewport and a scale for the maximum viewport. Both scales use direct
// exponentiation, advanced spacing does not apply to fluid scales.
func fluidSteps(cfg Config) []Step {
	neg, pos := cfg.NegativeSteps, cfg.PositiveSteps
	mins := sizes(cfg.MinBaseSize, cfg.MinRatio, neg, pos, false)
	maxs := sizes(cfg.MaxBaseSize, cfg.MaxRatio, neg, pos, false)
	steps := make([]Step, cfg.TotalSteps())
	for i := range mins {
		st := Step{Index: i - neg, Size: maxs[i], MinSize: mins[i], MaxSize: maxs[i]}
		if cfg.CSSLocks {
			st.Expr = newLock(mins[i], maxs[i], cfg).render(cfg)
		} else {
			from := css.FromPx(mins[i], cfg.RemBase, cfg.UseRem)
			to := css.FromPx(maxs[i], cfg.RemBase, cfg.UseRem)
			st.Expr = css.Clamp(
				from.String(),
				css.Interpolate(from, mins[i], maxs[i], cfg.MinScreenWidth, cfg.MaxScreenWidth),
				to.String(),
			)
		}
		st.LineHeight = lineHeight(cfg)
		steps[i] = st
	}
	return steps
}

// lock is a linear function of the viewport width w (in px),
// intercept + slope·w, running through (minScreenWidth, lo) and
// (maxScreenWidth, hi). It is not bounded outside of the viewport range.
type lock struct {
	slope     float64 // px per px of viewport width
	intercept float64 // px
}

func newLock(lo, hi float64, cfg Config) lock {
	slope := (hi - lo) / (cfg.MaxScreenWidth - cfg.MinScreenWidth)
	return lock{
		slope:     slope,
		intercept: lo - slope*cfg.MinScreenWidth,
	}
}

// at evaluates the lock for a viewport width of w px.
func (l lock) at(w float64) float64 {
	return l.intercept + l.slope*w
}

// render returns calc(intercept + slope·100vw). 1vw is 1/100 of the
// viewport width, therefore the slope per vw is 100 times the slope per px.
func (l lock) render(cfg Config) string {
	return css.Lock(css.FromPx(l.intercept, cfg.RemBase, cfg.UseRem), css.Vw(l.slope*100))
}

// lineHeight renders the line height of a step, if line heights are
// configured. The line height grows linearly from LineHeight.Min at the
// minimum viewport to LineHeight.Max at the maximum viewport, identically
// for every step. The lock formula is used regardless of CSSLocks.
func lineHeight(cfg Config) string {
	if cfg.LineHeight == nil {
		return ""
	}
	return newLock(cfg.LineHeight.Min, cfg.LineHeight.Max, cfg).render(cfg)
}
