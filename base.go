package waveform

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the lifecycle state shared by every waveform type: the
// running flag, the start and tick timestamps, the duration limit, the
// default values and the observer lists. Concrete shapes embed Base and
// implement Evaluate; Base supplies the rest of the Waveform interface.
//
// A Base is not safe for concurrent mutation. The scheduler ticks on its
// own goroutine, and callers are expected to serialize their own lifecycle
// and setter calls per instance.
type Base struct {
	owner         Waveform   // the concrete waveform this base drives
	id            uuid.UUID  // assigned once by Init
	scheduler     *Scheduler // set by Scheduler.Add, nil until then
	clock         func() time.Time
	duration      time.Duration // negative means never expires
	defaultValues []float64

	running   bool
	startTime time.Time // zero while stopped
	prevTick  time.Time
	lastTick  time.Time

	onStart []startObserver
	onValue []valueObserver
	onEnd   []endObserver
}

// Init wires the base to the concrete waveform embedding it and assigns a
// fresh instance ID. Constructors call this once before applying their
// parameters; the owner is the value whose Evaluate drives each tick.
func (b *Base) Init(owner Waveform) {
	b.owner = owner
	b.id = uuid.New()
	b.clock = time.Now
	b.duration = DurationInfinite
}

// Start transitions the waveform to running, anchored at the current clock
// time. No-op if already running. Emits a start event followed by a value
// event carrying the default values, then registers with the scheduler, if
// one is attached.
func (b *Base) Start() {
	if b.running {
		return
	}
	now := b.now()
	b.begin(now, now)
}

// StartSynchronizedWith behaves like Start but anchors the timeline to
// other's start time plus shift, so both waveforms share a phase
// reference. No-op if this waveform is already running or other is nil or
// not running.
func (b *Base) StartSynchronizedWith(other Waveform, shift time.Duration) {
	if b.running || other == nil || !other.Running() {
		return
	}
	b.begin(other.StartTime().Add(shift), b.now())
}

func (b *Base) begin(startTime, now time.Time) {
	b.startTime = startTime
	b.prevTick = now
	b.lastTick = now
	b.running = true
	b.notifyStart()
	b.notifyValue(b.owner.DefaultValues())
	// A start observer may have stopped the waveform again; only a still
	// running instance joins the scheduler.
	if b.running && b.scheduler != nil {
		b.scheduler.register(b.owner)
	}
}

// Stop transitions the waveform to stopped and resets its timestamps.
// No-op if already stopped. Deregisters from the scheduler first, then
// emits a value event carrying the default values and an end event, so an
// end observer restarting the waveform leaves it registered.
func (b *Base) Stop() {
	if !b.running {
		return
	}
	b.startTime = time.Time{}
	b.prevTick = time.Time{}
	b.lastTick = time.Time{}
	b.running = false
	if b.scheduler != nil {
		b.scheduler.deregister(b.id)
	}
	b.notifyValue(b.owner.DefaultValues())
	b.notifyEnd()
}

// Tick advances the waveform to now. No-op if stopped. A finite waveform
// whose elapsed time has passed its duration stops instead of emitting a
// value for the new tick; otherwise observers receive the freshly
// evaluated values.
func (b *Base) Tick(now time.Time) {
	if !b.running {
		return
	}
	b.prevTick = b.lastTick
	b.lastTick = now
	elapsed := b.TimeSinceStart()
	if !b.owner.Infinite() && elapsed > b.owner.Duration() {
		b.Stop()
		return
	}
	b.notifyValue(b.owner.Evaluate(elapsed))
}

// ShiftTime moves the waveform by delta along its own timeline, so the
// next evaluation sees an elapsed time delta larger (or smaller, for a
// negative delta). The shift is followed immediately by one tick at the
// current clock time, so observers see the jumped value without waiting
// for the next cadence cycle. No-op if stopped.
func (b *Base) ShiftTime(delta time.Duration) {
	if !b.running {
		return
	}
	b.startTime = b.startTime.Add(-delta)
	b.Tick(b.now())
}

// TimeSinceStart reports the elapsed time between the waveform's start and
// its last tick, never less than zero. Zero while stopped.
func (b *Base) TimeSinceStart() time.Duration {
	if !b.running {
		return 0
	}
	elapsed := b.lastTick.Sub(b.startTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// TickInterval reports the time between the two most recent ticks.
func (b *Base) TickInterval() time.Duration {
	if !b.running {
		return 0
	}
	return b.lastTick.Sub(b.prevTick)
}

func (b *Base) bind(scheduler *Scheduler) (previous *Scheduler) {
	previous = b.scheduler
	b.scheduler = scheduler
	return previous
}

func (b *Base) now() time.Time {
	if b.clock != nil {
		return b.clock()
	}
	return time.Now()
}

// Setters

// SetDuration sets the elapsed-time limit after which the waveform stops
// itself. A negative duration never expires. Fixed-lifetime variants
// shadow this method to reject changes.
func (b *Base) SetDuration(duration time.Duration) error {
	b.duration = duration
	return nil
}

// SetDefaultValues sets the values emitted while the waveform is at rest,
// each clamped to [0, 1].
func (b *Base) SetDefaultValues(values ...float64) {
	clamped := make([]float64, len(values))
	for i, value := range values {
		clamped[i] = clamp01(value)
	}
	b.defaultValues = clamped
}

// SetClock replaces the time source used by Start and ShiftTime. Passing
// nil restores the wall clock. Intended for tests driving simulated time.
func (b *Base) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	b.clock = clock
}

// Getters

func (b *Base) ID() uuid.UUID {
	return b.id
}

func (b *Base) Running() bool {
	return b.running
}

// Returns the time the waveform was started, or the zero time if stopped.
func (b *Base) StartTime() time.Time {
	return b.startTime
}

// Returns the time of the most recent tick, or the zero time if stopped.
func (b *Base) LastTickTime() time.Time {
	return b.lastTick
}

// Returns the time of the tick before the most recent one, or the zero
// time if stopped.
func (b *Base) PreviousTickTime() time.Time {
	return b.prevTick
}

// Returns the elapsed-time limit, negative for infinite.
func (b *Base) Duration() time.Duration {
	return b.duration
}

// Returns whether the waveform runs until explicitly stopped.
func (b *Base) Infinite() bool {
	return b.duration < 0
}

// Returns a copy of the values emitted while the waveform is at rest.
func (b *Base) DefaultValues() []float64 {
	return append([]float64(nil), b.defaultValues...)
}
