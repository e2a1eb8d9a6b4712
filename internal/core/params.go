package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeChoice denotes a parameter picked from a fixed list of names.
	ParamTypeChoice ParamType = "choice"
)

// Parameter is the current value of one tunable, rendered as a string.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter shown on the options
// panel. Step and bounds apply to numeric types; Choices to ParamTypeChoice.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step    float64
	Min     float64
	Max     float64
	Choices []string
}

// Adjust moves value by direction steps and clamps it to the control bounds.
func (c ParameterControl) Adjust(value float64, direction int) float64 {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := value + float64(direction)*step
	if c.Type == ParamTypeInt {
		target = math.Round(target)
	}
	return math.Min(math.Max(target, c.Min), c.Max)
}

// Cycle returns the choice direction entries away from current, wrapping.
func (c ParameterControl) Cycle(current string, direction int) string {
	n := len(c.Choices)
	if n == 0 {
		return current
	}
	idx := 0
	for i, name := range c.Choices {
		if name == current {
			idx = i
			break
		}
	}
	idx = ((idx+direction)%n + n) % n
	return c.Choices[idx]
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// ParameterProvider exposes the current parameter values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows panel interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows panel interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ChoiceParameterSetter allows panel interactions to update named choices.
type ChoiceParameterSetter interface {
	SetChoiceParameter(key string, value string) bool
}
