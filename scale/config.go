package scale

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/npillmayer/typoscale/css"
)

// Config is the input of a scale computation. It is treated as immutable;
// callers supply a fresh value for every computation.
//
// In single-base mode (Fluid unset), BaseSize and Ratio determine the
// scale. In fluid mode, two scales are computed from (MinBaseSize,
// MinRatio) and (MaxBaseSize, MaxRatio), and sizes interpolate between them
// for viewport widths from MinScreenWidth to MaxScreenWidth.
type Config struct {
	BaseSize      float64 // base size in px, single-base mode
	Ratio         float64 // modular ratio, single-base mode
	PositiveSteps int     // number of steps above the base
	NegativeSteps int     // number of steps below the base
	Advanced      bool    // space steps by the step-normalized root of Ratio

	Fluid          bool
	MinBaseSize    float64
	MaxBaseSize    float64
	MinRatio       float64
	MaxRatio       float64
	MinScreenWidth float64 // px
	MaxScreenWidth float64 // px
	CSSLocks       bool    // render fluid sizes as unclamped linear functions

	RemBase float64 // px per rem
	UseRem  bool

	LineHeight *LineHeightRange // nil disables line heights
	Mobile     *MobileScale     // nil disables the mobile scale

	Prefix   string       // custom property prefix, "step" if empty
	Sass     bool         // emit SASS variables
	Elements []Assignment // element to step assignment, in output order
	Font     string       // font family, used for display only
}

// LineHeightRange holds the line heights in px at the minimum and at the
// maximum viewport width. They are rendered in the configured unit.
type LineHeightRange struct {
	Min float64 // px
	Max float64 // px
}

// MobileScale is a second single-base scale, applied below a breakpoint.
type MobileScale struct {
	BaseSize   float64
	Ratio      float64
	Breakpoint float64 // px
}

// Assignment binds an element name to a step. Element names are HTML
// element names (h1, p, …) or class names (display, micro, …).
type Assignment struct {
	Element string
	Step    int
}

// DefaultPrefix is the custom property prefix used if none is configured.
const DefaultPrefix = "step"

// Default returns the configuration the calculator starts with.
func Default() Config {
	return Config{
		BaseSize:       16,
		Ratio:          PerfectFourth,
		PositiveSteps:  9,
		NegativeSteps:  3,
		MinBaseSize:    14,
		MaxBaseSize:    18,
		MinRatio:       MajorThird,
		MaxRatio:       PerfectFourth,
		MinScreenWidth: 320,
		MaxScreenWidth: 1920,
		RemBase:        css.DefaultRemBase,
		UseRem:         true,
		Prefix:         DefaultPrefix,
		Elements:       PresetElements(),
	}
}

// PresetElements returns the default element assignment, in output order.
func PresetElements() []Assignment {
	return []Assignment{
		{"display", 9},
		{"title", 8},
		{"h1", 7},
		{"h2", 6},
		{"h3", 5},
		{"h4", 4},
		{"h5", 3},
		{"h6", 2},
		{"blockquote", 1},
		{"p", 0},
		{"caption", -2},
		{"small", -1},
		{"micro", -3},
	}
}

// MaxSteps returns the largest sensible number of positive and negative
// steps. Advanced mode compresses step spacing and therefore allows for
// more steps. Validate rejects configurations exceeding them.
func MaxSteps(advanced bool) (positive, negative int) {
	if advanced {
		return 36, 12
	}
	return 10, 5
}

// VarPrefix returns the custom property prefix, falling back to
// DefaultPrefix.
func (c Config) VarPrefix() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}

// TotalSteps is the number of steps a scale for c will have.
func (c Config) TotalSteps() int {
	return c.PositiveSteps + c.NegativeSteps + 1
}

// --- Validation ------------------------------------------------------------

// ErrInvalidConfig is the error all configuration errors wrap.
var ErrInvalidConfig = errors.New("invalid scale configuration")

// ConfigError reports a configuration field with an unusable value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scale: %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold for every ConfigError.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configError(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate checks a configuration. It is the single place where invalid
// input is rejected: negative step counts or counts beyond MaxSteps, sizes
// and ratios which are not finite and positive, viewport bounds with
// MaxScreenWidth not exceeding MinScreenWidth, and prefixes which are not
// identifiers. Degenerate but
// well-defined input, like zero steps or a ratio of 1, is valid.
func (c Config) Validate() error {
	if c.PositiveSteps < 0 {
		return configError("PositiveSteps", "must not be negative, is %d", c.PositiveSteps)
	}
	if c.NegativeSteps < 0 {
		return configError("NegativeSteps", "must not be negative, is %d", c.NegativeSteps)
	}
	pos, neg := MaxSteps(c.Advanced)
	if c.PositiveSteps > pos {
		return configError("PositiveSteps", "at most %d steps allowed, is %d", pos, c.PositiveSteps)
	}
	if c.NegativeSteps > neg {
		return configError("NegativeSteps", "at most %d steps allowed, is %d", neg, c.NegativeSteps)
	}
	if c.Fluid {
		if err := positive(
			field{"MinBaseSize", c.MinBaseSize},
			field{"MaxBaseSize", c.MaxBaseSize},
			field{"MinRatio", c.MinRatio},
			field{"MaxRatio", c.MaxRatio},
		); err != nil {
			return err
		}
	} else {
		if err := positive(field{"BaseSize", c.BaseSize}, field{"Ratio", c.Ratio}); err != nil {
			return err
		}
	}
	if c.Fluid || c.LineHeight != nil {
		if err := positive(
			field{"MinScreenWidth", c.MinScreenWidth},
			field{"MaxScreenWidth", c.MaxScreenWidth},
		); err != nil {
			return err
		}
		if c.MaxScreenWidth <= c.MinScreenWidth {
			return configError("MaxScreenWidth", "must exceed MinScreenWidth (%g), is %g",
				c.MinScreenWidth, c.MaxScreenWidth)
		}
	}
	if c.UseRem {
		if err := positive(field{"RemBase", c.RemBase}); err != nil {
			return err
		}
	}
	if c.LineHeight != nil {
		if err := positive(
			field{"LineHeight.Min", c.LineHeight.Min},
			field{"LineHeight.Max", c.LineHeight.Max},
		); err != nil {
			return err
		}
	}
	if c.Mobile != nil {
		if err := positive(
			field{"Mobile.BaseSize", c.Mobile.BaseSize},
			field{"Mobile.Ratio", c.Mobile.Ratio},
			field{"Mobile.Breakpoint", c.Mobile.Breakpoint},
		); err != nil {
			return err
		}
	}
	if c.Prefix != "" && !identifier.MatchString(c.Prefix) {
		return configError("Prefix", "%q is not an identifier", c.Prefix)
	}
	return nil
}

type field struct {
	name  string
	value float64
}

func positive(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return configError(f.name, "must be finite, is %g", f.value)
		}
		if f.value <= 0 {
			return configError(f.name, "must be positive, is %g", f.value)
		}
	}
	return nil
}
