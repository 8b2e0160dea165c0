package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter is one tunable value of the running view, formatted for display.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
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

// IntParam formats an integer parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// FloatParam formats a floating-point parameter.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// ParameterControl describes an adjustable parameter exposed on the HUD.
// Steps and bounds are optional and interpreted based on the parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// step returns the increment for one button press.
func (c ParameterControl) step() float64 {
	switch c.Type {
	case ParamTypeInt:
		s := math.Round(c.Step)
		if s <= 0 {
			s = 1
		}
		return s
	default:
		if c.Step <= 0 {
			return 0.05
		}
		return c.Step
	}
}

// Adjust moves value one step in direction (negative or positive) and clamps
// the result to the control's bounds. changed is false when the value would
// stay where it is.
func (c ParameterControl) Adjust(value float64, direction int) (next float64, changed bool) {
	if direction == 0 {
		return value, false
	}
	next = value + float64(direction)*c.step()
	if c.Type == ParamTypeInt {
		next = math.Round(next)
	}
	if c.HasMin && next < c.Min {
		next = c.Min
	}
	if c.HasMax && next > c.Max {
		next = c.Max
	}
	return next, math.Abs(next-value) >= 1e-9
}

// CanAdjust reports whether a step in direction would change value.
func (c ParameterControl) CanAdjust(value float64, direction int) bool {
	_, ok := c.Adjust(value, direction)
	return ok
}

// Precision returns the number of decimals worth showing for the control.
func (c ParameterControl) Precision() int {
	if c.Type == ParamTypeInt {
		return 0
	}
	step := c.step()
	switch {
	case step < 0.001:
		return 4
	case step < 0.01:
		return 3
	case step < 0.1:
		return 2
	default:
		return 1
	}
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
