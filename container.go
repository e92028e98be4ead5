package waveform

import (
	"fmt"

	"github.com/google/uuid"
)

// Container is a keyed collection of waveforms, typically unmarshalled
// from a YAML document. Entries are keyed by each waveform's instance ID.
type Container map[uuid.UUID]Waveform

// Add stores the waveform under its own ID and returns that ID.
func (c Container) Add(w Waveform) (uuid.UUID, error) {
	if w == nil {
		return uuid.Nil, fmt.Errorf("%w: nil waveform", ErrInvalidArgument)
	}
	c[w.ID()] = w
	return w.ID(), nil
}

// AttachAll binds every contained waveform to the scheduler, so starting
// and stopping them registers and deregisters with its cadence loop.
func (c Container) AttachAll(s *Scheduler) error {
	for _, w := range c {
		if _, err := s.Add(w); err != nil {
			return err
		}
	}
	return nil
}

// StartAll starts every contained waveform.
func (c Container) StartAll() {
	for _, w := range c {
		w.Start()
	}
}

// StopAll stops every contained waveform.
func (c Container) StopAll() {
	for _, w := range c {
		w.Stop()
	}
}
