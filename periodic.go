package waveform

import (
	"fmt"
	"time"
)

// Periodic carries the frequency, amplitude and offset parameters shared
// by the mathematically defined waveform shapes, along with the joint
// invariant between them: amplitude and offset each lie in [0, 1] and
// their sum never exceeds 1, so offset + amplitude*f(t) stays in [0, 1]
// for any shape function f with range [0, 1].
type Periodic struct {
	Base

	frequency float64 // repetition rate in Hz, positive, at most MaxFrequency
	amplitude float64 // peak swing above the offset
	offset    float64 // floor the waveform oscillates above
}

// PeriodicParams are the construction parameters shared by the periodic
// waveform types.
type PeriodicParams struct {
	Frequency float64       `yaml:"Frequency"` // repetition rate in Hz, must be positive
	Amplitude float64       `yaml:"Amplitude"` // peak swing above the offset, clamped to [0,1]
	Offset    float64       `yaml:"Offset"`    // floor of the oscillation, clamped so amplitude+offset <= 1
	Duration  time.Duration `yaml:"Duration"`  // how long the waveform runs once started, zero or negative for forever
}

// Initialises the embedded base and applies the shared parameters,
// checking for invalid values. A zero or negative params duration means
// the waveform never expires.
func (p *Periodic) init(owner Waveform, params PeriodicParams) error {
	p.Base.Init(owner)

	if err := p.SetFrequency(params.Frequency); err != nil {
		return err
	}
	p.SetAmplitude(params.Amplitude)
	p.SetOffset(params.Offset)

	duration := params.Duration
	if duration <= 0 {
		duration = DurationInfinite
	}
	return p.SetDuration(duration)
}

// Setters

// SetFrequency sets the repetition rate in Hz. Frequencies above
// MaxFrequency are clamped to it; zero and negative frequencies are
// rejected.
func (p *Periodic) SetFrequency(frequency float64) error {
	if frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidArgument, frequency)
	}
	if frequency > MaxFrequency {
		frequency = MaxFrequency
	}
	p.frequency = frequency
	return nil
}

// SetAmplitude sets the peak swing above the offset, clamped to [0, 1].
// The offset yields downward if the pair would sum past 1.
func (p *Periodic) SetAmplitude(amplitude float64) {
	p.amplitude, p.offset = NormalizeAmplitudeOffset(amplitude, p.offset)
}

// SetOffset sets the floor the waveform oscillates above, clamped so that
// amplitude plus offset stays within 1. The amplitude is never altered by
// an offset change.
func (p *Periodic) SetOffset(offset float64) {
	_, p.offset = NormalizeAmplitudeOffset(p.amplitude, offset)
}

// Getters

func (p *Periodic) Frequency() float64 {
	return p.frequency
}

func (p *Periodic) Amplitude() float64 {
	return p.amplitude
}

func (p *Periodic) Offset() float64 {
	return p.offset
}

// Returns the cycle length equivalent to the current frequency.
func (p *Periodic) Period() time.Duration {
	return FrequencyToPeriod(p.frequency)
}

// Returns the fraction of the current cycle completed at the given elapsed
// time, in [0, 1).
func (p *Periodic) CycleFraction(elapsed time.Duration) float64 {
	period := p.Period()
	if period <= 0 {
		return 0
	}
	return float64(TimeInCycle(elapsed, period)) / float64(period)
}

// NormalizeAmplitudeOffset clamps amplitude and offset to [0, 1] and then
// shrinks offset until amplitude+offset <= 1. The offset always yields and
// the amplitude is preserved exactly as clamped, so the result does not
// depend on the order the two were last set in.
func NormalizeAmplitudeOffset(amplitude, offset float64) (float64, float64) {
	amplitude = clamp01(amplitude)
	offset = clamp01(offset)
	if amplitude+offset > 1 {
		offset = 1 - amplitude
	}
	return amplitude, offset
}

// FrequencyToPeriod converts a frequency in Hz to a cycle length, floored
// at MinPeriod. Zero and negative frequencies convert to a zero period.
func FrequencyToPeriod(frequency float64) time.Duration {
	if frequency <= 0 {
		return 0
	}
	if frequency > MaxFrequency {
		return MinPeriod
	}
	return time.Duration(float64(time.Second) / frequency)
}

// PeriodToFrequency converts a cycle length to a frequency in Hz, capped
// at MaxFrequency for periods below MinPeriod. Zero and negative periods
// convert to a zero frequency.
func PeriodToFrequency(period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	if period < MinPeriod {
		return MaxFrequency
	}
	return float64(time.Second) / float64(period)
}

// TimeInCycle reduces an elapsed time to a position within one cycle of
// the given period, in [0, period). A non-positive period is returned
// unchanged as a degenerate guard, and a non-positive elapsed time reduces
// to zero.
func TimeInCycle(elapsed, period time.Duration) time.Duration {
	if period <= 0 {
		return period
	}
	if elapsed <= 0 {
		return 0
	}
	return elapsed % period
}
