package waveform_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/waveform"
)

func TestRampEvaluate(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: time.Second})
	assert.NoError(t, err)

	testCases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0.0},
		{250 * time.Millisecond, 0.25},
		{500 * time.Millisecond, 0.5},
		{750 * time.Millisecond, 0.75},
		{time.Second, 1.0},
		{1500 * time.Millisecond, 1.0}, // holds the end level past the duration
		{-100 * time.Millisecond, 0.0},
	}

	for _, tc := range testCases {
		assert.InDelta(t, tc.want, r.Evaluate(tc.elapsed)[0], 1e-9, "at %v", tc.elapsed)
	}
}

func TestRampDownward(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0.8, To: 0.2, Duration: time.Second})
	assert.NoError(t, err)

	assert.InDelta(t, 0.8, r.Evaluate(0)[0], 1e-9)
	assert.InDelta(t, 0.5, r.Evaluate(500*time.Millisecond)[0], 1e-9)
	assert.InDelta(t, 0.2, r.Evaluate(time.Second)[0], 1e-9)
	// the default values follow the starting level
	assert.InDelta(t, 0.8, r.DefaultValues()[0], 1e-9)
}

// Tests that ramps cannot be built or reconfigured without a positive
// duration.
func TestRampDurationValidation(t *testing.T) {
	_, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1})
	assert.ErrorIs(t, err, waveform.ErrInvalidArgument)

	_, err = waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: -time.Second})
	assert.ErrorIs(t, err, waveform.ErrInvalidArgument)

	r, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: time.Second})
	assert.NoError(t, err)

	err = r.SetDuration(0)
	assert.ErrorIs(t, err, waveform.ErrInvalidArgument)
	assert.Equal(t, time.Second, r.Duration())

	assert.NoError(t, r.SetDuration(2*time.Second))
	assert.Equal(t, 2*time.Second, r.Duration())
	assert.InDelta(t, 0.5, r.Evaluate(time.Second)[0], 1e-9) // sweep rescales with the duration
}

func TestRampSetters(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0.3, To: 0.7, Duration: time.Second})
	assert.NoError(t, err)
	assert.InDelta(t, 0.3, r.From(), 1e-9)
	assert.InDelta(t, 0.7, r.To(), 1e-9)

	r.SetFrom(1.5)
	assert.InDelta(t, 1.0, r.From(), 1e-9)
	assert.InDelta(t, 1.0, r.DefaultValues()[0], 1e-9)

	r.SetTo(-0.5)
	assert.InDelta(t, 0.0, r.To(), 1e-9)
	assert.InDelta(t, 0.5, r.Evaluate(500*time.Millisecond)[0], 1e-9)
}
