package waveform

import (
	"fmt"
	"math"
	"time"

	"github.com/teknico/sigourney/fast"
)

// Chirp oscillates like a sine between the offset and offset+amplitude
// while sweeping its frequency linearly from a start to an end value over
// its duration. A chirp is always finite; the sweep needs a fixed length
// to aim at.
type Chirp struct {
	Base

	startFrequency float64
	endFrequency   float64
	amplitude      float64
	offset         float64
}

// ChirpParams are the construction parameters for a chirp waveform.
type ChirpParams struct {
	StartFrequency float64       `yaml:"StartFrequency"` // frequency in Hz at the start of the sweep, must be positive
	EndFrequency   float64       `yaml:"EndFrequency"`   // frequency in Hz at the end of the sweep, must be positive
	Amplitude      float64       `yaml:"Amplitude"`      // peak swing above the offset, clamped to [0,1]
	Offset         float64       `yaml:"Offset"`         // floor of the oscillation, clamped so amplitude+offset <= 1
	Duration       time.Duration `yaml:"Duration"`       // length of the sweep, must be positive
}

// NewChirp returns a chirp waveform with the requested parameters,
// checking for invalid values.
func NewChirp(params ChirpParams) (*Chirp, error) {
	c := &Chirp{}
	c.Init(c)
	if err := c.SetStartFrequency(params.StartFrequency); err != nil {
		return nil, err
	}
	if err := c.SetEndFrequency(params.EndFrequency); err != nil {
		return nil, err
	}
	c.SetAmplitude(params.Amplitude)
	c.SetOffset(params.Offset)
	if err := c.SetDuration(params.Duration); err != nil {
		return nil, err
	}
	c.SetDefaultValues(c.Evaluate(0)...)
	return c, nil
}

// Evaluate returns the chirp value at the given elapsed time. The
// instantaneous frequency at time t is f0+(f1-f0)*t/D, which integrates
// to a phase of f0*t+(f1-f0)*t*t/(2*D) cycles.
func (c *Chirp) Evaluate(elapsed time.Duration) []float64 {
	t := elapsed.Seconds()
	if t < 0 {
		t = 0
	}
	d := c.Duration().Seconds()
	cycles := c.startFrequency*t + (c.endFrequency-c.startFrequency)*t*t/(2*d)
	theta := 2*math.Pi*math.Mod(cycles, 1) - math.Pi
	value := c.offset + c.amplitude*(1-fast.Sin(theta))/2
	return []float64{clamp01(value)}
}

// Setters

// SetStartFrequency sets the frequency at the start of the sweep.
// Frequencies above MaxFrequency are clamped to it; zero and negative
// frequencies are rejected.
func (c *Chirp) SetStartFrequency(frequency float64) error {
	if frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidArgument, frequency)
	}
	c.startFrequency = math.Min(frequency, MaxFrequency)
	return nil
}

// SetEndFrequency sets the frequency at the end of the sweep. Frequencies
// above MaxFrequency are clamped to it; zero and negative frequencies are
// rejected.
func (c *Chirp) SetEndFrequency(frequency float64) error {
	if frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidArgument, frequency)
	}
	c.endFrequency = math.Min(frequency, MaxFrequency)
	return nil
}

// SetDuration sets the length of the sweep. Chirps must stay finite, so
// zero and negative durations are rejected.
func (c *Chirp) SetDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("%w: chirp duration must be positive, got %v", ErrInvalidArgument, duration)
	}
	return c.Base.SetDuration(duration)
}

// SetAmplitude sets the peak swing above the offset, clamped to [0, 1].
// The offset yields downward if the pair would sum past 1.
func (c *Chirp) SetAmplitude(amplitude float64) {
	c.amplitude, c.offset = NormalizeAmplitudeOffset(amplitude, c.offset)
}

// SetOffset sets the floor of the oscillation, clamped so that amplitude
// plus offset stays within 1. The amplitude is never altered by an offset
// change.
func (c *Chirp) SetOffset(offset float64) {
	_, c.offset = NormalizeAmplitudeOffset(c.amplitude, offset)
}

// Getters

func (c *Chirp) StartFrequency() float64 {
	return c.startFrequency
}

func (c *Chirp) EndFrequency() float64 {
	return c.endFrequency
}

func (c *Chirp) Amplitude() float64 {
	return c.amplitude
}

func (c *Chirp) Offset() float64 {
	return c.offset
}
