package waveform

import (
	"math/rand/v2"
	"time"
)

// Noise emits random samples between the offset and offset+amplitude,
// redrawn on every evaluation. Samples are uniform by default; the
// Gaussian variant concentrates them mid-band with the tails clamped.
// Each instance owns its generator, so two waveforms built with the same
// seed emit the same stream.
type Noise struct {
	Base

	amplitude float64
	offset    float64
	gaussian  bool
	rng       *rand.Rand
}

// NoiseParams are the construction parameters for a noise waveform.
type NoiseParams struct {
	Amplitude float64       `yaml:"Amplitude"` // width of the band above the offset, clamped to [0,1]
	Offset    float64       `yaml:"Offset"`    // floor of the band, clamped so amplitude+offset <= 1
	Gaussian  bool          `yaml:"Gaussian"`  // true draws mid-weighted samples instead of uniform
	Seed      uint64        `yaml:"Seed"`      // seeds the generator, equal seeds replay the same stream
	Duration  time.Duration `yaml:"Duration"`  // how long the waveform runs once started, zero or negative for forever
}

// NewNoise returns a noise waveform with the requested parameters.
func NewNoise(params NoiseParams) (*Noise, error) {
	n := &Noise{}
	n.Init(n)
	n.rng = rand.New(rand.NewPCG(params.Seed, 0))
	n.gaussian = params.Gaussian
	n.SetAmplitude(params.Amplitude)
	n.SetOffset(params.Offset)

	duration := params.Duration
	if duration <= 0 {
		duration = DurationInfinite
	}
	if err := n.SetDuration(duration); err != nil {
		return nil, err
	}

	// The middle of the band, not Evaluate(0): resting values should not
	// consume, or depend on, the random stream.
	n.SetDefaultValues(n.offset + n.amplitude/2)
	return n, nil
}

// Evaluate draws a fresh sample from the band. The elapsed time only
// matters to the lifecycle, not to the values, and two calls at the same
// time differ.
func (n *Noise) Evaluate(time.Duration) []float64 {
	var swing float64
	if n.gaussian {
		swing = n.amplitude/2 + n.rng.NormFloat64()*n.amplitude/6
	} else {
		swing = n.amplitude * n.rng.Float64()
	}
	return []float64{clamp01(n.offset + swing)}
}

// Setters

// SetAmplitude sets the width of the band above the offset, clamped to
// [0, 1]. The offset yields downward if the pair would sum past 1.
func (n *Noise) SetAmplitude(amplitude float64) {
	n.amplitude, n.offset = NormalizeAmplitudeOffset(amplitude, n.offset)
}

// SetOffset sets the floor of the band, clamped so that amplitude plus
// offset stays within 1. The amplitude is never altered by an offset
// change.
func (n *Noise) SetOffset(offset float64) {
	_, n.offset = NormalizeAmplitudeOffset(n.amplitude, offset)
}

// Getters

func (n *Noise) Amplitude() float64 {
	return n.amplitude
}

func (n *Noise) Offset() float64 {
	return n.offset
}

func (n *Noise) Gaussian() bool {
	return n.gaussian
}
