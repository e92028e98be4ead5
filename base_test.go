package waveform_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/waveform"
)

// Collects the events a waveform emits so tests can assert on exact
// sequences and counts.
type eventLog struct {
	starts int
	ends   int
	values [][]float64
}

func (l *eventLog) attach(w waveform.Waveform) {
	w.OnStart(func() { l.starts++ })
	w.OnValue(func(values []float64) { l.values = append(l.values, values) })
	w.OnEnd(func() { l.ends++ })
}

func (l *eventLog) lastValue() float64 {
	return l.values[len(l.values)-1][0]
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Tests the full event sequence around an explicit start, tick and stop.
func TestLifecycleEvents(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: time.Second})
	assert.NoError(t, err)

	log := &eventLog{}
	log.attach(r)

	clock := testEpoch
	r.SetClock(func() time.Time { return clock })

	r.Start()
	assert.True(t, r.Running())
	assert.Equal(t, testEpoch, r.StartTime())
	assert.Equal(t, 1, log.starts)
	// the start is followed immediately by the default values
	assert.Len(t, log.values, 1)
	assert.InDelta(t, 0.0, log.lastValue(), 1e-9)

	r.Tick(clock.Add(500 * time.Millisecond))
	assert.Len(t, log.values, 2)
	assert.InDelta(t, 0.5, log.lastValue(), 1e-9)
	assert.Equal(t, 500*time.Millisecond, r.TimeSinceStart())

	r.Stop()
	assert.False(t, r.Running())
	assert.True(t, r.StartTime().IsZero())
	// stopping emits the default values and then the end event
	assert.Len(t, log.values, 3)
	assert.InDelta(t, 0.0, log.lastValue(), 1e-9)
	assert.Equal(t, 1, log.ends)
}

// Tests that starting a running waveform and stopping a stopped one are
// no-ops with no duplicate events.
func TestLifecycleNoOps(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.5})
	assert.NoError(t, err)

	log := &eventLog{}
	log.attach(c)

	c.Stop() // stopped already
	assert.Equal(t, 0, log.ends)
	assert.Empty(t, log.values)

	c.Start()
	startTime := c.StartTime()
	c.Start() // running already
	assert.Equal(t, 1, log.starts)
	assert.Len(t, log.values, 1)
	assert.Equal(t, startTime, c.StartTime())

	c.Stop()
	c.Stop()
	assert.Equal(t, 1, log.ends)
	assert.Len(t, log.values, 2)
}

// Tests that a finite waveform stops itself exactly once, the first tick
// past its duration, and emits nothing further.
func TestAutoStop(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.8, Duration: 100 * time.Millisecond})
	assert.NoError(t, err)
	assert.False(t, c.Infinite())

	log := &eventLog{}
	log.attach(c)

	clock := testEpoch
	c.SetClock(func() time.Time { return clock })
	c.Start()

	c.Tick(clock.Add(50 * time.Millisecond))
	assert.True(t, c.Running())
	assert.Len(t, log.values, 2)

	// elapsed == duration is still inside the lifetime
	c.Tick(clock.Add(100 * time.Millisecond))
	assert.True(t, c.Running())
	assert.Len(t, log.values, 3)

	// the first tick past the duration stops instead of emitting a value
	c.Tick(clock.Add(101 * time.Millisecond))
	assert.False(t, c.Running())
	assert.Equal(t, 1, log.ends)
	assert.Len(t, log.values, 4) // the stop sequence's default values

	// stopped waveforms ignore further ticks
	c.Tick(clock.Add(200 * time.Millisecond))
	assert.Equal(t, 1, log.ends)
	assert.Len(t, log.values, 4)
}

// Tests that shifting a running waveform jumps its elapsed time and emits
// the jumped value immediately.
func TestShiftTime(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: time.Second})
	assert.NoError(t, err)

	log := &eventLog{}
	log.attach(r)

	clock := testEpoch
	r.SetClock(func() time.Time { return clock })
	r.Start()

	clock = clock.Add(200 * time.Millisecond)
	r.Tick(clock)
	assert.InDelta(t, 0.2, log.lastValue(), 1e-9)

	valuesBefore := len(log.values)
	r.ShiftTime(300 * time.Millisecond)
	// one immediate tick at the current clock time, no cadence involved
	assert.Len(t, log.values, valuesBefore+1)
	assert.InDelta(t, 0.5, log.lastValue(), 1e-9)
	assert.Equal(t, 500*time.Millisecond, r.TimeSinceStart())

	// a negative delta rewinds
	r.ShiftTime(-400 * time.Millisecond)
	assert.InDelta(t, 0.1, log.lastValue(), 1e-9)
}

// Tests that shifting a stopped waveform does nothing.
func TestShiftTimeStopped(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: time.Second})
	assert.NoError(t, err)

	log := &eventLog{}
	log.attach(r)

	r.ShiftTime(300 * time.Millisecond)
	assert.Empty(t, log.values)
	assert.False(t, r.Running())
}

// Tests that a shift past the duration expires the waveform.
func TestShiftTimePastDuration(t *testing.T) {
	r, err := waveform.NewRamp(waveform.RampParams{From: 0, To: 1, Duration: time.Second})
	assert.NoError(t, err)

	clock := testEpoch
	r.SetClock(func() time.Time { return clock })
	r.Start()

	r.ShiftTime(2 * time.Second)
	assert.False(t, r.Running())
}

// Tests anchoring one waveform's phase to another's start time.
func TestStartSynchronizedWith(t *testing.T) {
	a, err := waveform.NewSine(waveform.PeriodicParams{Frequency: 1, Amplitude: 1})
	assert.NoError(t, err)
	b, err := waveform.NewSine(waveform.PeriodicParams{Frequency: 1, Amplitude: 1})
	assert.NoError(t, err)

	clock := testEpoch
	a.SetClock(func() time.Time { return clock })
	b.SetClock(func() time.Time { return clock })

	// no-op while the reference is not running
	b.StartSynchronizedWith(a, 0)
	assert.False(t, b.Running())

	a.Start()
	clock = clock.Add(100 * time.Millisecond)
	b.StartSynchronizedWith(a, 250*time.Millisecond)
	assert.True(t, b.Running())
	assert.Equal(t, testEpoch.Add(250*time.Millisecond), b.StartTime())

	// the anchor can lie in the future; elapsed time clamps at zero
	assert.Equal(t, time.Duration(0), b.TimeSinceStart())

	clock = clock.Add(300 * time.Millisecond)
	b.Tick(clock)
	assert.Equal(t, 150*time.Millisecond, b.TimeSinceStart())

	// starting a running waveform again is still a no-op
	startTime := b.StartTime()
	b.StartSynchronizedWith(a, time.Hour)
	assert.Equal(t, startTime, b.StartTime())
}

// Tests observer registration order, removal and the nil guard.
func TestObservers(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.5})
	assert.NoError(t, err)

	var order []int
	c.OnValue(func([]float64) { order = append(order, 1) })
	second := c.OnValue(func([]float64) { order = append(order, 2) })
	c.OnValue(func([]float64) { order = append(order, 3) })

	c.Start()
	assert.Equal(t, []int{1, 2, 3}, order)

	order = nil
	assert.True(t, c.RemoveObserver(second))
	c.Tick(time.Now())
	assert.Equal(t, []int{1, 3}, order)

	assert.False(t, c.RemoveObserver(second))
	assert.False(t, c.RemoveObserver(uuid.New()))
	assert.Equal(t, uuid.Nil, c.OnValue(nil))
	assert.Equal(t, uuid.Nil, c.OnStart(nil))
	assert.Equal(t, uuid.Nil, c.OnEnd(nil))
}

// Tests that an observer removing itself does not disturb the dispatch in
// progress.
func TestObserverSelfRemoval(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.5})
	assert.NoError(t, err)

	var calls []int
	var self uuid.UUID
	c.OnValue(func([]float64) { calls = append(calls, 1) })
	self = c.OnValue(func([]float64) {
		calls = append(calls, 2)
		c.RemoveObserver(self)
	})
	c.OnValue(func([]float64) { calls = append(calls, 3) })

	c.Start()
	assert.Equal(t, []int{1, 2, 3}, calls)

	calls = nil
	c.Tick(time.Now())
	assert.Equal(t, []int{1, 3}, calls)
}

// Tests that a panicking observer is contained at the dispatch site: the
// observers after it still run and the lifecycle is undisturbed.
func TestObserverFaultIsolation(t *testing.T) {
	waveform.SetLogger(log.New(io.Discard, "", 0))
	defer waveform.SetLogger(log.New(os.Stderr, "", log.LstdFlags))

	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.5})
	assert.NoError(t, err)
	c.SetClock(func() time.Time { return testEpoch })

	var calls []int
	c.OnValue(func([]float64) { calls = append(calls, 1) })
	c.OnValue(func([]float64) {
		calls = append(calls, 2)
		panic("handler failure")
	})
	c.OnValue(func([]float64) { calls = append(calls, 3) })

	c.Start()
	assert.True(t, c.Running())
	assert.Equal(t, []int{1, 2, 3}, calls)

	calls = nil
	c.Tick(testEpoch.Add(waveform.DefaultResolution))
	assert.True(t, c.Running())
	assert.Equal(t, []int{1, 2, 3}, calls)
}

// Tests that an end observer can restart the waveform within the stop
// sequence.
func TestRestartInEndObserver(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.5})
	assert.NoError(t, err)

	starts := 0
	c.OnStart(func() { starts++ })
	c.OnEnd(func() { c.Start() })

	c.Start()
	c.Stop()
	assert.True(t, c.Running())
	assert.Equal(t, 2, starts)
}

// Tests the interval between the two most recent ticks.
func TestTickInterval(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 0.5})
	assert.NoError(t, err)

	clock := testEpoch
	c.SetClock(func() time.Time { return clock })

	assert.Equal(t, time.Duration(0), c.TickInterval())
	c.Start()
	assert.Equal(t, time.Duration(0), c.TickInterval())

	c.Tick(clock.Add(4 * time.Millisecond))
	assert.Equal(t, 4*time.Millisecond, c.TickInterval())
	c.Tick(clock.Add(10 * time.Millisecond))
	assert.Equal(t, 6*time.Millisecond, c.TickInterval())
}

// Tests that default values are clamped and copied out.
func TestDefaultValues(t *testing.T) {
	c, err := waveform.NewConstant(waveform.ConstantParams{Value: 2.0})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1.0}, c.DefaultValues())

	values := c.DefaultValues()
	values[0] = -5
	assert.Equal(t, []float64{1.0}, c.DefaultValues())
}
