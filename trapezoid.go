package waveform

import (
	"fmt"
	"time"
)

// Trapezoid cycles through four linear segments: rise from the offset to
// offset+amplitude, hold high, fall back and hold low. The segments are
// set independently, so asymmetric pulses and plateaus are possible; the
// cycle length is their sum.
type Trapezoid struct {
	Base

	amplitude float64
	offset    float64
	rise      time.Duration
	high      time.Duration
	fall      time.Duration
	low       time.Duration
}

// TrapezoidParams are the construction parameters for a trapezoid
// waveform.
type TrapezoidParams struct {
	Amplitude float64       `yaml:"Amplitude"` // peak swing above the offset, clamped to [0,1]
	Offset    float64       `yaml:"Offset"`    // floor of the cycle, clamped so amplitude+offset <= 1
	Rise      time.Duration `yaml:"Rise"`      // time spent rising
	High      time.Duration `yaml:"High"`      // time held at the top
	Fall      time.Duration `yaml:"Fall"`      // time spent falling
	Low       time.Duration `yaml:"Low"`       // time held at the bottom
	Duration  time.Duration `yaml:"Duration"`  // how long the waveform runs once started, zero or negative for forever
}

// NewTrapezoid returns a trapezoid waveform with the requested parameters,
// checking for invalid values.
func NewTrapezoid(params TrapezoidParams) (*Trapezoid, error) {
	t := &Trapezoid{}
	t.Init(t)
	if err := t.SetSegments(params.Rise, params.High, params.Fall, params.Low); err != nil {
		return nil, err
	}
	t.SetAmplitude(params.Amplitude)
	t.SetOffset(params.Offset)

	duration := params.Duration
	if duration <= 0 {
		duration = DurationInfinite
	}
	if err := t.SetDuration(duration); err != nil {
		return nil, err
	}

	t.SetDefaultValues(t.Evaluate(0)...)
	return t, nil
}

// Evaluate returns the trapezoid value at the given elapsed time, walking
// the segment of the cycle the time lands in.
func (t *Trapezoid) Evaluate(elapsed time.Duration) []float64 {
	tc := TimeInCycle(elapsed, t.Period())
	var swing float64
	switch {
	case tc < t.rise:
		swing = t.amplitude * float64(tc) / float64(t.rise)
	case tc < t.rise+t.high:
		swing = t.amplitude
	case tc < t.rise+t.high+t.fall:
		swing = t.amplitude * (1 - float64(tc-t.rise-t.high)/float64(t.fall))
	default:
		swing = 0
	}
	return []float64{clamp01(t.offset + swing)}
}

// Setters

// SetSegments sets all four segment lengths at once. No segment may be
// negative and at least one must be positive.
func (t *Trapezoid) SetSegments(rise, high, fall, low time.Duration) error {
	if rise < 0 || high < 0 || fall < 0 || low < 0 {
		return fmt.Errorf("%w: trapezoid segments must not be negative", ErrInvalidArgument)
	}
	if rise+high+fall+low <= 0 {
		return fmt.Errorf("%w: trapezoid needs at least one positive segment", ErrInvalidArgument)
	}
	t.rise, t.high, t.fall, t.low = rise, high, fall, low
	return nil
}

// SetFrequency rescales the four segments proportionally so that one full
// cycle matches the requested frequency. Frequencies above MaxFrequency
// are clamped to it; zero and negative frequencies are rejected.
func (t *Trapezoid) SetFrequency(frequency float64) error {
	if frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidArgument, frequency)
	}
	scale := float64(FrequencyToPeriod(frequency)) / float64(t.Period())
	t.rise = time.Duration(float64(t.rise) * scale)
	t.high = time.Duration(float64(t.high) * scale)
	t.fall = time.Duration(float64(t.fall) * scale)
	t.low = time.Duration(float64(t.low) * scale)
	return nil
}

// SetAmplitude sets the peak swing above the offset, clamped to [0, 1].
// The offset yields downward if the pair would sum past 1.
func (t *Trapezoid) SetAmplitude(amplitude float64) {
	t.amplitude, t.offset = NormalizeAmplitudeOffset(amplitude, t.offset)
}

// SetOffset sets the floor of the cycle, clamped so that amplitude plus
// offset stays within 1. The amplitude is never altered by an offset
// change.
func (t *Trapezoid) SetOffset(offset float64) {
	_, t.offset = NormalizeAmplitudeOffset(t.amplitude, offset)
}

// Getters

func (t *Trapezoid) Amplitude() float64 {
	return t.amplitude
}

func (t *Trapezoid) Offset() float64 {
	return t.offset
}

// Returns the four segment lengths in cycle order.
func (t *Trapezoid) Segments() (rise, high, fall, low time.Duration) {
	return t.rise, t.high, t.fall, t.low
}

// Returns the cycle length, the sum of the four segments.
func (t *Trapezoid) Period() time.Duration {
	return t.rise + t.high + t.fall + t.low
}

// Returns the frequency equivalent to the current cycle length.
func (t *Trapezoid) Frequency() float64 {
	return PeriodToFrequency(t.Period())
}
