// Package waveform generates time-varying scalar signals (sine, triangle,
// sawtooth, trapezoid, noise, ramps and composites of these) that client
// code samples or subscribes to in order to drive an external variable,
// such as brightness or volume, through a repeating or one-shot temporal
// pattern.
//
// Concrete waveform types embed Base, which provides the start/stop/tick
// lifecycle and the observer channels, and are advanced on a fixed cadence
// by a Scheduler. Published values lie in [0, 1] by convention.
package waveform

import (
	"errors"
	"log"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultResolution is the cadence at which a Scheduler advances its
	// running waveforms.
	DefaultResolution = 4 * time.Millisecond

	// MinPeriod is the shortest cycle a periodic waveform can resolve at
	// the default cadence.
	MinPeriod = 2 * DefaultResolution

	// MaxFrequency is the frequency in Hz equivalent to MinPeriod. Setting
	// a higher frequency clamps to this value.
	MaxFrequency = 125.0

	// DurationInfinite marks a waveform that runs until explicitly stopped.
	// Any negative duration is treated the same way.
	DurationInfinite = time.Duration(-1)
)

var (
	// ErrInvalidArgument reports a structural precondition violated at
	// construction time, such as an infinite child inside a sequence.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation reports a mutation the waveform variant does
	// not permit, such as changing the duration of a sequence.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Waveform is the interface satisfied by every waveform type. Concrete
// shapes embed Base, which provides everything except Evaluate, and clients
// drive instances through Start, Stop and a Scheduler.
type Waveform interface {
	// Evaluation contract. Evaluate reports the values at an elapsed time
	// since start; periodic shapes fold the elapsed time into their cycle
	// internally, so callers never pre-wrap it. A negative duration never
	// expires, and fixed-lifetime variants reject SetDuration with
	// ErrUnsupportedOperation. DefaultValues are emitted while stopped.
	Evaluate(elapsed time.Duration) []float64
	Duration() time.Duration
	SetDuration(duration time.Duration) error
	Infinite() bool
	DefaultValues() []float64

	// Lifecycle. Start on a running instance and Stop on a stopped one
	// are no-ops. StartSynchronizedWith anchors the phase to another
	// running waveform. Tick advances the internal clock and is normally
	// called by a Scheduler. ShiftTime jumps the waveform along its own
	// timeline and re-ticks immediately. StartTime is the zero time while
	// stopped.
	Start()
	StartSynchronizedWith(other Waveform, shift time.Duration)
	Stop()
	Tick(now time.Time)
	ShiftTime(delta time.Duration)
	Running() bool
	StartTime() time.Time
	ID() uuid.UUID

	// Observers, notified synchronously in registration order.
	OnStart(fn func()) uuid.UUID
	OnValue(fn func(values []float64)) uuid.UUID
	OnEnd(fn func()) uuid.UUID
	RemoveObserver(id uuid.UUID) bool

	// Attaches the scheduler that start and stop register with, reporting
	// the scheduler attached before the call.
	bind(scheduler *Scheduler) (previous *Scheduler)
}

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger replaces the logger used for tick and observer fault reports.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Clamps a value to [0, 1], the conventional range of published values.
func clamp01(value float64) float64 {
	return math.Min(math.Max(value, 0.0), 1.0)
}
