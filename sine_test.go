package waveform_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/waveform"
)

func TestSineQuarterPoints(t *testing.T) {
	s, err := waveform.NewSine(waveform.PeriodicParams{Frequency: 1, Amplitude: 1})
	assert.NoError(t, err)
	assert.Equal(t, time.Second, s.Period())

	testCases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0.5}, // starts mid-range
		{250 * time.Millisecond, 1.0},
		{500 * time.Millisecond, 0.5},
		{750 * time.Millisecond, 0.0},
		{time.Second, 0.5},
		{1250 * time.Millisecond, 1.0}, // second cycle
	}

	for _, tc := range testCases {
		assert.InDelta(t, tc.want, s.Evaluate(tc.elapsed)[0], 1e-6, "at %v", tc.elapsed)
	}

	// the default values match the resting point
	assert.InDelta(t, 0.5, s.DefaultValues()[0], 1e-6)
}

func TestCosineQuarterPoints(t *testing.T) {
	c, err := waveform.NewCosine(waveform.PeriodicParams{Frequency: 1, Amplitude: 1})
	assert.NoError(t, err)

	testCases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 1.0}, // starts at the peak
		{250 * time.Millisecond, 0.5},
		{500 * time.Millisecond, 0.0},
		{750 * time.Millisecond, 0.5},
		{time.Second, 1.0},
	}

	for _, tc := range testCases {
		assert.InDelta(t, tc.want, c.Evaluate(tc.elapsed)[0], 1e-6, "at %v", tc.elapsed)
	}

	assert.InDelta(t, 1.0, c.DefaultValues()[0], 1e-6)
}

func TestSineAmplitudeOffset(t *testing.T) {
	s, err := waveform.NewSine(waveform.PeriodicParams{Frequency: 1, Amplitude: 0.5, Offset: 0.25})
	assert.NoError(t, err)

	assert.InDelta(t, 0.5, s.Evaluate(0)[0], 1e-6)
	assert.InDelta(t, 0.75, s.Evaluate(250*time.Millisecond)[0], 1e-6)
	assert.InDelta(t, 0.25, s.Evaluate(750*time.Millisecond)[0], 1e-6)
}

// Tests that evaluation repeats every period and stays inside the band
// set by the amplitude and offset.
func TestSinePeriodicityAndBounds(t *testing.T) {
	s, err := waveform.NewSine(waveform.PeriodicParams{Frequency: 2, Amplitude: 0.6, Offset: 0.2})
	assert.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, s.Period())

	for elapsed := time.Duration(0); elapsed < time.Second; elapsed += 17 * time.Millisecond {
		value := s.Evaluate(elapsed)[0]
		shifted := s.Evaluate(elapsed + s.Period())[0]
		assert.InDelta(t, value, shifted, 1e-6, "at %v", elapsed)
		assert.GreaterOrEqual(t, value, 0.2-1e-9)
		assert.LessOrEqual(t, value, 0.8+1e-9)
	}
}
