package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/typoscale/scale"
	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a scale configuration. Unset fields
// keep their default.
type File struct {
	BaseSize      *float64    `yaml:"base_size,omitempty"`
	Ratio         *Ratio      `yaml:"ratio,omitempty"`
	PositiveSteps *int        `yaml:"positive_steps,omitempty"`
	NegativeSteps *int        `yaml:"negative_steps,omitempty"`
	Advanced      *bool       `yaml:"advanced,omitempty"`
	Fluid         *Fluid      `yaml:"fluid,omitempty"`
	RemBase       *float64    `yaml:"rem_base,omitempty"`
	UseRem        *bool       `yaml:"use_rem,omitempty"`
	LineHeight    *LineHeight `yaml:"line_height,omitempty"`
	Mobile        *Mobile     `yaml:"mobile,omitempty"`
	Prefix        *string     `yaml:"prefix,omitempty"`
	Sass          *bool       `yaml:"sass,omitempty"`
	Font          *string     `yaml:"font,omitempty"`
	Elements      *Elements   `yaml:"elements,omitempty"`
}

// Fluid is the fluid section of a configuration file.
type Fluid struct {
	Enabled        *bool    `yaml:"enabled,omitempty"`
	MinBaseSize    *float64 `yaml:"min_base_size,omitempty"`
	MaxBaseSize    *float64 `yaml:"max_base_size,omitempty"`
	MinRatio       *Ratio   `yaml:"min_ratio,omitempty"`
	MaxRatio       *Ratio   `yaml:"max_ratio,omitempty"`
	MinScreenWidth *float64 `yaml:"min_screen_width,omitempty"`
	MaxScreenWidth *float64 `yaml:"max_screen_width,omitempty"`
	CSSLocks       *bool    `yaml:"css_locks,omitempty"`
}

// LineHeight is the line_height section of a configuration file, with line
// heights in px.
type LineHeight struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Mobile is the mobile section of a configuration file.
type Mobile struct {
	BaseSize   float64 `yaml:"base_size"`
	Ratio      Ratio   `yaml:"ratio"`
	Breakpoint float64 `yaml:"breakpoint"`
}

// ErrSyntax is wrapped by errors for malformed configuration files.
var ErrSyntax = errors.New("malformed configuration")

// Load reads a configuration file. See Parse.
func Load(path string) (scale.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scale.Config{}, err
	}
	tracer().Debugf("config: loading %s", path)
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration data, applies it to scale.Default() and
// validates the result. Unknown keys are errors.
func Parse(data []byte) (scale.Config, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		tracer().Errorf("config: %v", err)
		return scale.Config{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	cfg := f.Apply(scale.Default())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Apply overrides the fields of cfg which are set in f.
func (f File) Apply(cfg scale.Config) scale.Config {
	setFloat(&cfg.BaseSize, f.BaseSize)
	if f.Ratio != nil {
		cfg.Ratio = float64(*f.Ratio)
	}
	setInt(&cfg.PositiveSteps, f.PositiveSteps)
	setInt(&cfg.NegativeSteps, f.NegativeSteps)
	setBool(&cfg.Advanced, f.Advanced)
	if fl := f.Fluid; fl != nil {
		cfg.Fluid = true
		setBool(&cfg.Fluid, fl.Enabled)
		setFloat(&cfg.MinBaseSize, fl.MinBaseSize)
		setFloat(&cfg.MaxBaseSize, fl.MaxBaseSize)
		if fl.MinRatio != nil {
			cfg.MinRatio = float64(*fl.MinRatio)
		}
		if fl.MaxRatio != nil {
			cfg.MaxRatio = float64(*fl.MaxRatio)
		}
		setFloat(&cfg.MinScreenWidth, fl.MinScreenWidth)
		setFloat(&cfg.MaxScreenWidth, fl.MaxScreenWidth)
		setBool(&cfg.CSSLocks, fl.CSSLocks)
	}
	setFloat(&cfg.RemBase, f.RemBase)
	setBool(&cfg.UseRem, f.UseRem)
	if f.LineHeight != nil {
		cfg.LineHeight = &scale.LineHeightRange{Min: f.LineHeight.Min, Max: f.LineHeight.Max}
	}
	if f.Mobile != nil {
		cfg.Mobile = &scale.MobileScale{
			BaseSize:   f.Mobile.BaseSize,
			Ratio:      float64(f.Mobile.Ratio),
			Breakpoint: f.Mobile.Breakpoint,
		}
	}
	if f.Prefix != nil {
		cfg.Prefix = *f.Prefix
	}
	setBool(&cfg.Sass, f.Sass)
	if f.Font != nil {
		cfg.Font = *f.Font
	}
	if f.Elements != nil {
		cfg.Elements = []scale.Assignment(*f.Elements)
	}
	return cfg
}

// Encode renders a configuration as YAML, in the format Parse reads.
// All fields are written, including defaults.
func Encode(cfg scale.Config) ([]byte, error) {
	ratio := func(x float64) *Ratio { r := Ratio(x); return &r }
	elements := Elements(cfg.Elements)
	f := File{
		BaseSize:      &cfg.BaseSize,
		Ratio:         ratio(cfg.Ratio),
		PositiveSteps: &cfg.PositiveSteps,
		NegativeSteps: &cfg.NegativeSteps,
		Advanced:      &cfg.Advanced,
		Fluid: &Fluid{
			Enabled:        &cfg.Fluid,
			MinBaseSize:    &cfg.MinBaseSize,
			MaxBaseSize:    &cfg.MaxBaseSize,
			MinRatio:       ratio(cfg.MinRatio),
			MaxRatio:       ratio(cfg.MaxRatio),
			MinScreenWidth: &cfg.MinScreenWidth,
			MaxScreenWidth: &cfg.MaxScreenWidth,
			CSSLocks:       &cfg.CSSLocks,
		},
		RemBase:  &cfg.RemBase,
		UseRem:   &cfg.UseRem,
		Prefix:   &cfg.Prefix,
		Sass:     &cfg.Sass,
		Font:     &cfg.Font,
		Elements: &elements,
	}
	if lh := cfg.LineHeight; lh != nil {
		f.LineHeight = &LineHeight{Min: lh.Min, Max: lh.Max}
	}
	if m := cfg.Mobile; m != nil {
		f.Mobile = &Mobile{BaseSize: m.BaseSize, Ratio: Ratio(m.Ratio), Breakpoint: m.Breakpoint}
	}
	return yaml.Marshal(f)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// --- Ratios ----------------------------------------------------------------

// Ratio is a modular ratio, written either as a number or as the name of
// one of scale.Ratios ("perfect-fourth", "Golden Ratio", …).
type Ratio float64

// UnmarshalYAML decodes a ratio from a scalar node.
func (r *Ratio) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ratio must be a number or a name", value.Line)
	}
	if x, err := strconv.ParseFloat(value.Value, 64); err == nil {
		*r = Ratio(x)
		return nil
	}
	x, ok := scale.RatioByName(value.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown ratio %q", value.Line, value.Value)
	}
	*r = Ratio(x)
	return nil
}

// MarshalYAML encodes named ratios by their key.
func (r Ratio) MarshalYAML() (interface{}, error) {
	if name := scale.RatioName(float64(r)); name != "" {
		return scale.NamedRatio{Name: name}.Key(), nil
	}
	return float64(r), nil
}

// --- Elements --------------------------------------------------------------

// Elements is an ordered element to step assignment. In YAML it is a
// mapping from element names to steps; the document order of the keys is
// kept.
type Elements []scale.Assignment

// UnmarshalYAML decodes a mapping node, keeping its key order.
func (e *Elements) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*e = Elements{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: elements must be a mapping of names to steps", value.Line)
	}
	seen := make(map[string]bool, len(value.Content)/2)
	elements := make(Elements, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("line %d: element %q assigned twice", key.Line, key.Value)
		}
		seen[key.Value] = true
		var step int
		if err := val.Decode(&step); err != nil {
			return fmt.Errorf("line %d: step of element %q: %v", val.Line, key.Value, err)
		}
		elements = append(elements, scale.Assignment{Element: key.Value, Step: step})
	}
	*e = elements
	return nil
}

// MarshalYAML encodes the assignments as a mapping in order.
func (e Elements) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range e {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Element},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(a.Step)},
		)
	}
	return n, nil
}
