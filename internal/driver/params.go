package driver

import (
	"errors"
	"fmt"
	"strconv"

	"dotlife/internal/core"
	"dotlife/internal/life"
	"dotlife/internal/render"
)

// ErrUnknownParameter is returned by SetParameter for unrecognised keys.
var ErrUnknownParameter = errors.New("unknown parameter")

// ParameterControls lists the settings adjustable from the options panel.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "initializer", Label: "Pattern", Type: core.ParamTypeChoice, Choices: life.InitializerNames()},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Step: 5, Min: MinSpeed, Max: MaxSpeed},
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: MinRadius, Max: MaxRadius},
		{Key: "margin", Label: "Margin", Type: core.ParamTypeFloat, Step: MarginStep, Min: MinMargin, Max: MaxMargin},
	}
}

// Parameters returns the current settings grouped for display.
func (d *Driver) Parameters() core.ParameterSnapshot {
	o := d.opts
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "initializer", Label: "Pattern", Type: core.ParamTypeChoice, Value: o.Initializer.String()},
				{Key: "neighborhood", Label: "Neighborhood", Type: core.ParamTypeChoice, Value: o.Neighborhood.String()},
				{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(o.Speed)},
			},
		},
		{
			Name: "Appearance",
			Params: []core.Parameter{
				{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Value: strconv.Itoa(o.Radius)},
				{Key: "margin", Label: "Margin", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(o.Margin, 'f', 1, 64)},
				{Key: "background", Label: "Background", Type: core.ParamTypeChoice, Value: render.FormatColor(o.Background)},
				{Key: "alive", Label: "Alive", Type: core.ParamTypeChoice, Value: render.FormatColor(o.Alive)},
				{Key: "dead", Label: "Dead", Type: core.ParamTypeChoice, Value: render.FormatColor(o.Dead)},
			},
		},
	}}
}

// SetParameter applies a key=value setting using the same keys as FromMap.
func (d *Driver) SetParameter(key, value string) error {
	switch key {
	case "initializer":
		d.SetInitializer(value)
	case "neighborhood":
		n, _ := life.ParseNeighborhood(value)
		d.SetNeighborhood(n)
	case "speed", "radius":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "speed" {
			d.SetSpeed(v)
		} else {
			d.SetRadius(v)
		}
	case "margin":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		d.SetMargin(v)
	case "background":
		return d.SetBackgroundColor(value)
	case "alive":
		return d.SetAliveColor(value)
	case "dead":
		return d.SetDeadColor(value)
	default:
		return fmt.Errorf("%w %q", ErrUnknownParameter, key)
	}
	return nil
}

// SetIntParameter implements core.IntParameterSetter.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if key != "speed" && key != "radius" {
		return false
	}
	return d.SetParameter(key, strconv.Itoa(value)) == nil
}

// SetFloatParameter implements core.FloatParameterSetter.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	if key != "margin" {
		return false
	}
	d.SetMargin(value)
	return true
}

// SetChoiceParameter implements core.ChoiceParameterSetter.
func (d *Driver) SetChoiceParameter(key string, value string) bool {
	if key != "initializer" && key != "neighborhood" {
		return false
	}
	return d.SetParameter(key, value) == nil
}

var (
	_ core.ParameterControlsProvider = (*Driver)(nil)
	_ core.ParameterProvider         = (*Driver)(nil)
	_ core.IntParameterSetter        = (*Driver)(nil)
	_ core.FloatParameterSetter      = (*Driver)(nil)
	_ core.ChoiceParameterSetter     = (*Driver)(nil)
)
