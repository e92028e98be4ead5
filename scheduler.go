package waveform

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler owns the registry of running waveform instances and advances
// them on a fixed cadence. The registry is the only state shared between
// the cadence goroutine and callers, so it is the only state guarded by a
// lock; each waveform's own state stays single-threaded per the Base
// contract.
//
// A scheduler must be started explicitly with Start; there is no implicit
// process-wide instance.
type Scheduler struct {
	resolution time.Duration

	mu        sync.Mutex
	clock     func() time.Time
	instances map[uuid.UUID]Waveform
	quit      chan chan struct{}
}

// NewScheduler returns a scheduler ticking at the given resolution. A zero
// or negative resolution selects DefaultResolution.
func NewScheduler(resolution time.Duration) *Scheduler {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Scheduler{
		resolution: resolution,
		clock:      time.Now,
		instances:  make(map[uuid.UUID]Waveform),
	}
}

// Add attaches a waveform to this scheduler, so that starting the waveform
// registers it with the cadence loop and stopping deregisters it. A
// waveform already running joins the registry immediately. A waveform
// attached to another scheduler moves: the previous scheduler drops its
// registration, so the instance is only ever ticked by one cadence loop.
// Returns the waveform's ID for later Remove calls.
func (s *Scheduler) Add(w Waveform) (uuid.UUID, error) {
	if w == nil {
		return uuid.Nil, fmt.Errorf("%w: nil waveform", ErrInvalidArgument)
	}
	if previous := w.bind(s); previous != nil && previous != s {
		previous.deregister(w.ID())
	}
	if w.Running() {
		s.register(w)
	}
	return w.ID(), nil
}

// Remove detaches the identified waveform from the scheduler without
// stopping it. Returns false if no running waveform has that ID.
func (s *Scheduler) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	w, ok := s.instances[id]
	if ok {
		delete(s.instances, id)
	}
	s.mu.Unlock()

	if ok {
		w.bind(nil)
	}
	return ok
}

func (s *Scheduler) register(w Waveform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances[w.ID()] = w
}

func (s *Scheduler) deregister(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.instances, id)
}

// Step runs one update cycle: every waveform registered at the start of
// the cycle is ticked exactly once with the same now timestamp. Waveforms
// registered by an observer during the cycle wait for the next one;
// waveforms stopped during the cycle no-op their remaining tick. A panic
// inside one waveform's tick is logged and does not disturb the others.
//
// Step is called by the cadence loop, but may also be called directly to
// drive simulated time.
func (s *Scheduler) Step(now time.Time) {
	s.mu.Lock()
	batch := make([]Waveform, 0, len(s.instances))
	for _, w := range s.instances {
		batch = append(batch, w)
	}
	s.mu.Unlock()

	for _, w := range batch {
		tickGuarded(w, now)
	}
}

func tickGuarded(w Waveform, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("waveform %s: tick fault: %v", w.ID(), r)
		}
	}()
	w.Tick(now)
}

// Start launches the cadence loop on its own goroutine. No-op if the loop
// is already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit != nil {
		return
	}
	s.quit = make(chan chan struct{})
	go s.loop(s.quit)
}

// Stop halts the cadence loop and waits for it to acknowledge. Registered
// waveforms are left running and resume ticking if the loop is started
// again. No-op if the loop is not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	quit := s.quit
	s.quit = nil
	s.mu.Unlock()
	if quit == nil {
		return
	}

	ack := make(chan struct{})
	quit <- ack
	<-ack
}

func (s *Scheduler) loop(quit chan chan struct{}) {
	ticker := time.NewTicker(s.resolution)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Step(s.now())
		case ack := <-quit:
			close(ack)
			return
		}
	}
}

func (s *Scheduler) now() time.Time {
	s.mu.Lock()
	clock := s.clock
	s.mu.Unlock()
	return clock()
}

// Setters

// SetClock replaces the time source the cadence loop stamps each cycle
// with. Passing nil restores the wall clock. Intended for tests.
func (s *Scheduler) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	s.mu.Lock()
	s.clock = clock
	s.mu.Unlock()
}

// Getters

// Returns the number of waveforms currently registered, which is exactly
// the set of attached instances between their Start and Stop.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.instances)
}

// Returns whether the cadence loop is running.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit != nil
}

// Returns the cadence the scheduler ticks at.
func (s *Scheduler) Resolution() time.Duration {
	return s.resolution
}
