package waveform

import "github.com/google/uuid"

// Observer records for the three notification channels. Each registration
// is keyed by a UUID handle so it can be removed later.
type startObserver struct {
	id uuid.UUID
	fn func()
}

type valueObserver struct {
	id uuid.UUID
	fn func(values []float64)
}

type endObserver struct {
	id uuid.UUID
	fn func()
}

// OnStart registers fn to run every time the waveform starts. Returns a
// handle for RemoveObserver, or uuid.Nil if fn is nil. Observers run
// synchronously, in registration order, on whichever goroutine triggered
// the event.
func (b *Base) OnStart(fn func()) uuid.UUID {
	if fn == nil {
		return uuid.Nil
	}
	id := uuid.New()
	b.onStart = append(b.onStart, startObserver{id: id, fn: fn})
	return id
}

// OnValue registers fn to receive the values computed on every tick, the
// default values emitted around start and stop included. Returns a handle
// for RemoveObserver, or uuid.Nil if fn is nil.
func (b *Base) OnValue(fn func(values []float64)) uuid.UUID {
	if fn == nil {
		return uuid.Nil
	}
	id := uuid.New()
	b.onValue = append(b.onValue, valueObserver{id: id, fn: fn})
	return id
}

// OnEnd registers fn to run every time the waveform stops, whether
// explicitly or by expiring. Returns a handle for RemoveObserver, or
// uuid.Nil if fn is nil.
func (b *Base) OnEnd(fn func()) uuid.UUID {
	if fn == nil {
		return uuid.Nil
	}
	id := uuid.New()
	b.onEnd = append(b.onEnd, endObserver{id: id, fn: fn})
	return id
}

// RemoveObserver deregisters the observer behind the handle returned by
// OnStart, OnValue or OnEnd. Returns false if the handle is unknown.
func (b *Base) RemoveObserver(id uuid.UUID) bool {
	for i, observer := range b.onStart {
		if observer.id == id {
			b.onStart = append(b.onStart[:i:i], b.onStart[i+1:]...)
			return true
		}
	}
	for i, observer := range b.onValue {
		if observer.id == id {
			b.onValue = append(b.onValue[:i:i], b.onValue[i+1:]...)
			return true
		}
	}
	for i, observer := range b.onEnd {
		if observer.id == id {
			b.onEnd = append(b.onEnd[:i:i], b.onEnd[i+1:]...)
			return true
		}
	}
	return false
}

// The notify helpers iterate over a snapshot so that an observer removing
// itself, or registering another observer, does not disturb the dispatch
// in progress. Each observer runs guarded, so one panicking handler is
// logged and the remaining observers still run.

func (b *Base) notifyStart() {
	for _, observer := range append([]startObserver(nil), b.onStart...) {
		b.dispatch(observer.fn)
	}
}

func (b *Base) notifyValue(values []float64) {
	for _, observer := range append([]valueObserver(nil), b.onValue...) {
		fn := observer.fn
		b.dispatch(func() { fn(values) })
	}
}

func (b *Base) notifyEnd() {
	for _, observer := range append([]endObserver(nil), b.onEnd...) {
		b.dispatch(observer.fn)
	}
}

func (b *Base) dispatch(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("waveform %s: observer fault: %v", b.id, r)
		}
	}()
	fn()
}
