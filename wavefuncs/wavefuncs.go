// Package wavefuncs provides the named, pure shape functions that concrete
// waveform types are built from. Every function maps an elapsed time to a
// value in [0, A] (noise functions may stray outside and are clamped by the
// caller), so shapes compose as value = offset + f(t, amplitude, period).
package wavefuncs

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/teknico/sigourney/fast"
)

// A shape function y=f(t,A,T). Takes amplitude, A, and period, T, as inputs
// and returns the value of the function at time, t. Time inputs of arbitrary
// size are folded into the cycle internally; callers never pre-wrap.
type ShapeFunc func(t, A, T float64) float64

// A map between string name and shape function pairs
var shapeFunctions = map[string]ShapeFunc{
	"sine":             Sine,
	"cosine":           Cosine,
	"triangle":         triangleWave,
	"sawtooth":         sawtoothWave,
	"sawtooth_reverse": sawtoothReverseWave,
	"square":           squareWave,
	"step":             stepFunction,
	"random_noise":     randomNoise,
	"gaussian_noise":   gaussianNoise,
	"random_walk":      randomWalk,
	"flat":             flat,
}

func GetShapeFunctionNames() []string {
	names := make([]string, 0, len(shapeFunctions))
	for name := range shapeFunctions {
		names = append(names, name)
	}
	return names
}

// Returns the named shape function, or an error if the name is unknown.
func GetShapeFunctionFromName(name string) (ShapeFunc, error) {
	shapeFunc, ok := shapeFunctions[name]
	if !ok {
		return nil, errors.New("shape function not found")
	}

	return shapeFunc, nil
}

// Reduces an elapsed time to a fraction of the cycle in [0, 1). Non-positive
// times and periods reduce to the start of the cycle.
func cycleFraction(t, T float64) float64 {
	if T <= 0 || t <= 0 {
		return 0
	}
	return math.Mod(t, T) / T
}

// Folds an angle into [-pi, pi], the valid input range of the parabolic
// trig approximations in sigourney/fast.
func wrapAngle(a float64) float64 {
	if a > math.Pi {
		return a - 2*math.Pi
	}
	if a < -math.Pi {
		return a + 2*math.Pi
	}
	return a
}

// Returns a sine wave y=A*(1+sin(2*pi*t/T))/2 where A is the amplitude, T is
// the period, and t is elapsed time. The wave starts mid-range at A/2 and
// peaks at t=T/4. Uses the fast parabolic approximation, which is exact at
// the quarter-cycle points.
func Sine(t, A, T float64) float64 {
	theta := 2*math.Pi*cycleFraction(t, T) - math.Pi
	return A * (1 - fast.Sin(theta)) / 2
}

// Returns a cosine wave y=A*(1+cos(2*pi*t/T))/2 where A is the amplitude,
// T is the period, and t is elapsed time. The wave starts at its peak A.
func Cosine(t, A, T float64) float64 {
	theta := 2*math.Pi*cycleFraction(t, T) - math.Pi
	return A * (1 - fast.Sin(wrapAngle(theta+math.Pi/2))) / 2
}

// Returns a symmetric triangle wave rising from 0 to A over the first half
// of the period and falling back over the second half.
func triangleWave(t, A, T float64) float64 {
	f := cycleFraction(t, T)
	if f < 0.5 {
		return A * 2 * f
	}
	return A * 2 * (1 - f)
}

// Returns a sawtooth wave y=A*(t/T mod 1) rising over each period and
// snapping back to zero.
func sawtoothWave(t, A, T float64) float64 {
	return A * cycleFraction(t, T)
}

// Returns a falling sawtooth wave y=A*(1 - (t/T mod 1)).
func sawtoothReverseWave(t, A, T float64) float64 {
	return A * (1 - cycleFraction(t, T))
}

// Returns a square wave y=A for the first half of each period, else 0.
func squareWave(t, A, T float64) float64 {
	if cycleFraction(t, T) < 0.5 {
		return A
	}
	return 0
}

// Returns a step function of amplitude A every period T: zero for the first
// half of the cycle, A for the second.
func stepFunction(t, A, T float64) float64 {
	if cycleFraction(t, T) < 0.5 {
		return 0
	}
	return A
}

// Returns random (uniform) noise in [0, A].
func randomNoise(_, A, _ float64) float64 {
	return A * rand.Float64()
}

// Returns Gaussian noise with mean A/2 and standard deviation A/6, so that
// almost all samples land in [0, A]. Callers clamp the tails.
func gaussianNoise(_, A, _ float64) float64 {
	return A/2 + rand.NormFloat64()*A/6
}

// Returns a random walk bounded to [0, A] starting at A/2, with steps of
// maximum size A/20. The returned function is stateful, it remembers the
// previous value, and that state is shared between all callers of the
// registry entry.
var randomWalk = func() ShapeFunc {
	stepFactor := 20.0
	started := false
	var previousValue float64
	return func(t, A, T float64) float64 {
		if !started {
			started = true
			previousValue = A / 2
			return previousValue
		}
		step := A / stepFactor * (rand.Float64()*2 - 1)
		previousValue = math.Min(math.Max(previousValue+step, 0), A)
		return previousValue
	}
}()

// flat returns a constant value equal to A (amplitude), independent of
// time t or period T.
func flat(t, A, T float64) float64 {
	return A
}
