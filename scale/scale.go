package scale

// Step is a single entry of a generated scale.
type Step struct {
	Index      int     // signed step, 0 is the base
	Size       float64 // target size in px; in fluid mode the size at the maximum viewport
	MinSize    float64 // size at the minimum viewport, equal to Size for fixed scales
	MaxSize    float64 // size at the maximum viewport, equal to Size for fixed scales
	Expr       string  // CSS size expression
	LineHeight string  // CSS line height expression, empty if line heights are disabled
}

// HasLineHeight is true if a line height expression has been generated.
func (st Step) HasLineHeight() bool {
	return st.LineHeight != ""
}

// Scale is a generated scale. Steps are ordered by ascending index, form a
// contiguous range and contain exactly one step with index 0.
type Scale struct {
	Steps      []Step
	Mobile     []Step  // mobile variant, nil if not configured
	Breakpoint float64 // px; the mobile variant applies up to this viewport width
}

// Len returns the number of steps.
func (s Scale) Len() int {
	return len(s.Steps)
}

// Range returns the lowest and the highest step index.
// For an empty scale, lo > hi.
func (s Scale) Range() (lo, hi int) {
	if len(s.Steps) == 0 {
		return 0, -1
	}
	return s.Steps[0].Index, s.Steps[len(s.Steps)-1].Index
}

// Contains checks if a step index lies within the scale.
func (s Scale) Contains(step int) bool {
	lo, hi := s.Range()
	return step >= lo && step <= hi
}

// Lookup finds the step with a given index.
func (s Scale) Lookup(step int) (Step, bool) {
	return lookup(s.Steps, step)
}

// LookupMobile finds the step with a given index in the mobile variant.
func (s Scale) LookupMobile(step int) (Step, bool) {
	return lookup(s.Mobile, step)
}

// HasMobile is true if the scale has a mobile variant.
func (s Scale) HasMobile() bool {
	return len(s.Mobile) > 0
}

func lookup(steps []Step, step int) (Step, bool) {
	if len(steps) == 0 {
		return Step{}, false
	}
	i := step - steps[0].Index
	if i < 0 || i >= len(steps) {
		return Step{}, false
	}
	return steps[i], true
}
