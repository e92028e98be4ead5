package waveform

import "time"

// Square holds at offset+amplitude for the high part of each cycle and at
// the offset for the rest. The fill factor is the high fraction of the
// cycle, the duty cycle.
type Square struct {
	Periodic

	fillFactor float64
}

// SquareParams are the construction parameters for a square waveform.
type SquareParams struct {
	Frequency  float64       `yaml:"Frequency"`  // repetition rate in Hz, must be positive
	Amplitude  float64       `yaml:"Amplitude"`  // peak swing above the offset, clamped to [0,1]
	Offset     float64       `yaml:"Offset"`     // floor of the oscillation, clamped so amplitude+offset <= 1
	Duration   time.Duration `yaml:"Duration"`   // how long the waveform runs once started, zero or negative for forever
	FillFactor float64       `yaml:"FillFactor"` // high fraction of the cycle, zero selects the even 0.5
}

// NewSquare returns a square waveform with the requested parameters,
// checking for invalid values.
func NewSquare(params SquareParams) (*Square, error) {
	s := &Square{}
	err := s.init(s, PeriodicParams{
		Frequency: params.Frequency,
		Amplitude: params.Amplitude,
		Offset:    params.Offset,
		Duration:  params.Duration,
	})
	if err != nil {
		return nil, err
	}

	fillFactor := params.FillFactor
	if fillFactor == 0 {
		fillFactor = 0.5
	}
	s.SetFillFactor(fillFactor)

	s.SetDefaultValues(s.Evaluate(0)...)
	return s, nil
}

// Evaluate returns the square value at the given elapsed time, folding the
// time into the current cycle.
func (s *Square) Evaluate(elapsed time.Duration) []float64 {
	value := s.offset
	if s.CycleFraction(elapsed) < s.fillFactor {
		value += s.amplitude
	}
	return []float64{clamp01(value)}
}

// Setters

// SetFillFactor sets the high fraction of each cycle, clamped to [0, 1].
func (s *Square) SetFillFactor(fillFactor float64) {
	s.fillFactor = clamp01(fillFactor)
}

// Getters

func (s *Square) FillFactor() float64 {
	return s.fillFactor
}
