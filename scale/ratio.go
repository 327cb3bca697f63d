package scale

import (
	"strings"
)

// Named modular ratios, after musical intervals.
const (
	MinorSecond     = 1.067
	MajorSecond     = 1.125
	MinorThird      = 1.2
	MajorThird      = 1.25
	PerfectFourth   = 1.333
	AugmentedFourth = 1.414
	PerfectFifth    = 1.5
	GoldenRatio     = 1.618
)

// NamedRatio is a modular ratio with a display name.
type NamedRatio struct {
	Name  string
	Value float64
}

// Key returns the kebab-case key of a ratio name, e.g. "perfect-fourth".
func (r NamedRatio) Key() string {
	return ratioKey(r.Name)
}

// Ratios lists the named ratios in ascending order.
var Ratios = []NamedRatio{
	{"Minor Second", MinorSecond},
	{"Major Second", MajorSecond},
	{"Minor Third", MinorThird},
	{"Major Third", MajorThird},
	{"Perfect Fourth", PerfectFourth},
	{"Augmented Fourth", AugmentedFourth},
	{"Perfect Fifth", PerfectFifth},
	{"Golden Ratio", GoldenRatio},
}

// RatioByName looks up a named ratio. Names are matched case-insensitively,
// either as display name ("Perfect Fourth") or as key ("perfect-fourth").
func RatioByName(name string) (float64, bool) {
	key := ratioKey(name)
	for _, r := range Ratios {
		if r.Key() == key {
			return r.Value, true
		}
	}
	return 0, false
}

// RatioName returns the display name of a ratio value, or the empty string
// for ratios without a name.
func RatioName(value float64) string {
	for _, r := range Ratios {
		if r.Value == value {
			return r.Name
		}
	}
	return ""
}

func ratioKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.Join(strings.Fields(name), "-")
}
