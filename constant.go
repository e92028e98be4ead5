package waveform

import (
	"fmt"
	"time"
)

// Constant emits the same value, or vector of values, on every tick. Its
// lifetime is part of its identity: the duration is set at construction
// and cannot be changed.
type Constant struct {
	Base

	values []float64
}

// ConstantParams are the construction parameters for a constant waveform.
type ConstantParams struct {
	Value    float64       `yaml:"Value"`    // the value emitted on every tick, clamped to [0,1]
	Values   []float64     `yaml:"Values"`   // multi-channel values, taking precedence over Value when non-empty
	Duration time.Duration `yaml:"Duration"` // how long the waveform runs once started, zero or negative for forever
}

// NewConstant returns a constant waveform with the requested parameters.
func NewConstant(params ConstantParams) (*Constant, error) {
	c := &Constant{}
	c.Init(c)
	if len(params.Values) > 0 {
		c.SetValues(params.Values...)
	} else {
		c.SetValues(params.Value)
	}

	duration := params.Duration
	if duration <= 0 {
		duration = DurationInfinite
	}
	if err := c.Base.SetDuration(duration); err != nil {
		return nil, err
	}

	return c, nil
}

// Evaluate returns the constant values regardless of elapsed time.
func (c *Constant) Evaluate(time.Duration) []float64 {
	return append([]float64(nil), c.values...)
}

// SetDuration reports ErrUnsupportedOperation: a constant waveform's
// lifetime is fixed at construction. Callers that want a silent no-op
// simply discard the error.
func (c *Constant) SetDuration(time.Duration) error {
	return fmt.Errorf("%w: constant waveforms have a fixed duration", ErrUnsupportedOperation)
}

// Setters

// SetValues sets the emitted values, each clamped to [0, 1]. The default
// values follow the emitted values. An empty call changes nothing.
func (c *Constant) SetValues(values ...float64) {
	if len(values) == 0 {
		return
	}
	clamped := make([]float64, len(values))
	for i, value := range values {
		clamped[i] = clamp01(value)
	}
	c.values = clamped
	c.SetDefaultValues(clamped...)
}

// SetValue sets a single emitted value, clamped to [0, 1].
func (c *Constant) SetValue(value float64) {
	c.SetValues(value)
}

// Getters

// Returns the first emitted value.
func (c *Constant) Value() float64 {
	return c.values[0]
}

// Returns a copy of the emitted values.
func (c *Constant) Values() []float64 {
	return append([]float64(nil), c.values...)
}
