package waveform

import "time"

// Triangle rises linearly from the offset to offset+amplitude and falls
// back within each cycle. The fill factor is the fraction of the cycle
// spent rising: 0.5 is symmetric, 1 rises the whole cycle and snaps back,
// 0 snaps up and falls the whole cycle.
type Triangle struct {
	Periodic

	fillFactor float64
}

// TriangleParams are the construction parameters for a triangle waveform.
type TriangleParams struct {
	Frequency  float64       `yaml:"Frequency"`  // repetition rate in Hz, must be positive
	Amplitude  float64       `yaml:"Amplitude"`  // peak swing above the offset, clamped to [0,1]
	Offset     float64       `yaml:"Offset"`     // floor of the oscillation, clamped so amplitude+offset <= 1
	Duration   time.Duration `yaml:"Duration"`   // how long the waveform runs once started, zero or negative for forever
	FillFactor float64       `yaml:"FillFactor"` // fraction of the cycle spent rising, zero selects the symmetric 0.5
}

// NewTriangle returns a triangle waveform with the requested parameters,
// checking for invalid values.
func NewTriangle(params TriangleParams) (*Triangle, error) {
	t := &Triangle{}
	err := t.init(t, PeriodicParams{
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
	t.SetFillFactor(fillFactor)

	t.SetDefaultValues(t.Evaluate(0)...)
	return t, nil
}

// Evaluate returns the triangle value at the given elapsed time, folding
// the time into the current cycle.
func (t *Triangle) Evaluate(elapsed time.Duration) []float64 {
	frac := t.CycleFraction(elapsed)
	var swing float64
	switch {
	case t.fillFactor <= 0:
		swing = t.amplitude * (1 - frac)
	case frac < t.fillFactor:
		swing = t.amplitude * frac / t.fillFactor
	default:
		swing = t.amplitude * (1 - frac) / (1 - t.fillFactor)
	}
	return []float64{clamp01(t.offset + swing)}
}

// Setters

// SetFillFactor sets the fraction of each cycle spent rising, clamped to
// [0, 1].
func (t *Triangle) SetFillFactor(fillFactor float64) {
	t.fillFactor = clamp01(fillFactor)
}

// Getters

func (t *Triangle) FillFactor() float64 {
	return t.fillFactor
}
