package waveform

import (
	"time"

	"github.com/synaptecltd/waveform/wavefuncs"
)

// Sine oscillates smoothly between the offset and offset+amplitude,
// starting mid-range and rising.
type Sine struct {
	Periodic
}

// NewSine returns a sine waveform with the requested parameters, checking
// for invalid values.
func NewSine(params PeriodicParams) (*Sine, error) {
	s := &Sine{}
	if err := s.init(s, params); err != nil {
		return nil, err
	}
	s.SetDefaultValues(s.Evaluate(0)...)
	return s, nil
}

// Evaluate returns the sine value at the given elapsed time, folding the
// time into the current cycle.
func (s *Sine) Evaluate(elapsed time.Duration) []float64 {
	value := s.offset + wavefuncs.Sine(elapsed.Seconds(), s.amplitude, s.Period().Seconds())
	return []float64{clamp01(value)}
}

// Cosine is the sine wave shifted a quarter cycle, so it starts at its
// peak instead of mid-range.
type Cosine struct {
	Periodic
}

// NewCosine returns a cosine waveform with the requested parameters,
// checking for invalid values.
func NewCosine(params PeriodicParams) (*Cosine, error) {
	c := &Cosine{}
	if err := c.init(c, params); err != nil {
		return nil, err
	}
	c.SetDefaultValues(c.Evaluate(0)...)
	return c, nil
}

// Evaluate returns the cosine value at the given elapsed time, folding the
// time into the current cycle.
func (c *Cosine) Evaluate(elapsed time.Duration) []float64 {
	value := c.offset + wavefuncs.Cosine(elapsed.Seconds(), c.amplitude, c.Period().Seconds())
	return []float64{clamp01(value)}
}
