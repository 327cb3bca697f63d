package scale

import (
	"math"

	"github.com/npillmayer/typoscale/css"
)

// Bounds of the clamp() around fixed sizes, relative to the target size.
const (
	lowerBound = 0.75
	upperBound = 1.25
)

// Generate computes the scale for a configuration.
//
// The configuration is validated first; an invalid configuration results
// in an error wrapping ErrInvalidConfig and an empty scale.
func Generate(cfg Config) (Scale, error) {
	if err := cfg.Validate(); err != nil {
		tracer().Errorf("scale: %v", err)
		return Scale{}, err
	}
	var s Scale
	if cfg.Fluid {
		s.Steps = fluidSteps(cfg)
	} else {
		s.Steps = fixedSteps(cfg.BaseSize, cfg.Ratio, cfg)
	}
	if cfg.Mobile != nil {
		s.Mobile = fixedSteps(cfg.Mobile.BaseSize, cfg.Mobile.Ratio, cfg)
		s.Breakpoint = cfg.Mobile.Breakpoint
	}
	tracer().Debugf("scale: generated %d steps, fluid=%v, advanced=%v, mobile=%v",
		len(s.Steps), cfg.Fluid, cfg.Advanced, s.HasMobile())
	return s, nil
}

// sizes returns the target sizes for steps -neg … pos, in ascending order.
//
// In direct mode, step i has size base·ratio^i. In advanced mode, steps are
// spaced by the (neg+pos+1)-th root of ratio: starting from the base,
// every step away from the base multiplies (upwards) or divides
// (downwards) the size of its neighbour by that root.
func sizes(base, ratio float64, neg, pos int, advanced bool) []float64 {
	sz := make([]float64, neg+pos+1)
	if !advanced {
		for i := range sz {
			sz[i] = base * math.Pow(ratio, float64(i-neg))
		}
		return sz
	}
	r := math.Pow(ratio, 1/float64(len(sz)))
	sz[neg] = base
	for i := neg + 1; i < len(sz); i++ {
		sz[i] = sz[i-1] * r
	}
	for i := neg - 1; i >= 0; i-- {
		sz[i] = sz[i+1] / r
	}
	return sz
}

// fixedSteps renders a single-base scale. Every size is wrapped into a
// clamp() between 75% and 125% of the target. In direct mode, the base
// step is the literal base size.
func fixedSteps(base, ratio float64, cfg Config) []Step {
	neg := cfg.NegativeSteps
	sz := sizes(base, ratio, neg, cfg.PositiveSteps, cfg.Advanced)
	steps := make([]Step, cfg.TotalSteps())
	for i, size := range sz {
		st := Step{Index: i - neg, Size: size, MinSize: size, MaxSize: size}
		if st.Index == 0 && !cfg.Advanced {
			st.Expr = css.Compact(base) + "px"
		} else {
			target := css.Px(size)
			st.Expr = css.Clamp(
				target.Scale(lowerBound).String(),
				css.FromPx(size, cfg.RemBase, cfg.UseRem).String(),
				target.Scale(upperBound).String(),
			)
		}
		st.LineHeight = lineHeight(cfg)
		steps[i] = st
	}
	return steps
}
