package waveform

import (
	"fmt"
	"time"
)

// Ramp sweeps linearly from one level to another over its duration, then
// holds the end level until it expires. A ramp is always finite; the sweep
// needs a fixed length to aim at.
type Ramp struct {
	Base

	from float64
	to   float64
}

// RampParams are the construction parameters for a ramp waveform.
type RampParams struct {
	From     float64       `yaml:"From"`     // level at the start of the sweep, clamped to [0,1]
	To       float64       `yaml:"To"`       // level at the end of the sweep, clamped to [0,1]
	Duration time.Duration `yaml:"Duration"` // length of the sweep, must be positive
}

// NewRamp returns a ramp waveform with the requested parameters, checking
// for invalid values.
func NewRamp(params RampParams) (*Ramp, error) {
	r := &Ramp{}
	r.Init(r)
	if err := r.SetDuration(params.Duration); err != nil {
		return nil, err
	}
	r.SetFrom(params.From)
	r.SetTo(params.To)
	return r, nil
}

// Evaluate returns the level reached after sweeping for the given elapsed
// time, holding the end level once the duration has passed.
func (r *Ramp) Evaluate(elapsed time.Duration) []float64 {
	progress := clamp01(float64(elapsed) / float64(r.Duration()))
	return []float64{clamp01(r.from + (r.to-r.from)*progress)}
}

// Setters

// SetDuration sets the length of the sweep. Ramps must stay finite, so
// zero and negative durations are rejected.
func (r *Ramp) SetDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("%w: ramp duration must be positive, got %v", ErrInvalidArgument, duration)
	}
	return r.Base.SetDuration(duration)
}

// SetFrom sets the starting level, clamped to [0, 1]. The default values
// follow the starting level.
func (r *Ramp) SetFrom(from float64) {
	r.from = clamp01(from)
	r.SetDefaultValues(r.from)
}

// SetTo sets the end level, clamped to [0, 1].
func (r *Ramp) SetTo(to float64) {
	r.to = clamp01(to)
}

// Getters

func (r *Ramp) From() float64 {
	return r.from
}

func (r *Ramp) To() float64 {
	return r.to
}
