package waveform

import (
	"time"

	"github.com/synaptecltd/waveform/wavefuncs"
)

// Sawtooth rises linearly from the offset to offset+amplitude and snaps
// back at the end of each cycle. The inverse variant starts high and falls
// instead.
type Sawtooth struct {
	Periodic

	inverse   bool
	shapeFunc wavefuncs.ShapeFunc
}

// SawtoothParams are the construction parameters for a sawtooth waveform.
type SawtoothParams struct {
	Frequency float64       `yaml:"Frequency"` // repetition rate in Hz, must be positive
	Amplitude float64       `yaml:"Amplitude"` // peak swing above the offset, clamped to [0,1]
	Offset    float64       `yaml:"Offset"`    // floor of the oscillation, clamped so amplitude+offset <= 1
	Duration  time.Duration `yaml:"Duration"`  // how long the waveform runs once started, zero or negative for forever
	Inverse   bool          `yaml:"Inverse"`   // true falls over each cycle instead of rising
}

// NewSawtooth returns a sawtooth waveform with the requested parameters,
// checking for invalid values.
func NewSawtooth(params SawtoothParams) (*Sawtooth, error) {
	s := &Sawtooth{}
	err := s.init(s, PeriodicParams{
		Frequency: params.Frequency,
		Amplitude: params.Amplitude,
		Offset:    params.Offset,
		Duration:  params.Duration,
	})
	if err != nil {
		return nil, err
	}
	if err := s.SetInverse(params.Inverse); err != nil {
		return nil, err
	}
	s.SetDefaultValues(s.Evaluate(0)...)
	return s, nil
}

// Evaluate returns the sawtooth value at the given elapsed time, folding
// the time into the current cycle.
func (s *Sawtooth) Evaluate(elapsed time.Duration) []float64 {
	value := s.offset + s.shapeFunc(elapsed.Seconds(), s.amplitude, s.Period().Seconds())
	return []float64{clamp01(value)}
}

// Setters

// SetInverse selects between the rising and falling variants and rebinds
// the shape function accordingly.
func (s *Sawtooth) SetInverse(inverse bool) error {
	name := "sawtooth"
	if inverse {
		name = "sawtooth_reverse"
	}
	shapeFunc, err := wavefuncs.GetShapeFunctionFromName(name)
	if err != nil {
		return err
	}
	s.inverse = inverse
	s.shapeFunc = shapeFunc
	return nil
}

// Getters

func (s *Sawtooth) Inverse() bool {
	return s.inverse
}
