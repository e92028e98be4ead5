package waveform

import (
	"fmt"
	"time"
)

// Sequence plays an ordered list of finite child waveforms back to back,
// optionally looping the whole run. The children act purely as value
// functions; their own lifecycles are never started.
type Sequence struct {
	Base

	children []Waveform
	loop     bool
}

// NewSequence returns a sequence over the given children. Every child must
// be finite: an infinite child would leave the playback position of the
// children after it undefined, so construction fails eagerly with
// ErrInvalidArgument. A looping sequence never expires on its own;
// otherwise its duration is the sum of the child durations.
func NewSequence(loop bool, children ...Waveform) (*Sequence, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: sequence needs at least one child", ErrInvalidArgument)
	}

	s := &Sequence{}
	s.Init(s)
	s.loop = loop
	s.children = make([]Waveform, len(children))
	copy(s.children, children)

	var total time.Duration
	for i, child := range s.children {
		if child == nil {
			return nil, fmt.Errorf("%w: sequence child %d is nil", ErrInvalidArgument, i)
		}
		if child.Infinite() {
			return nil, fmt.Errorf("%w: sequence child %d is infinite", ErrInvalidArgument, i)
		}
		total += child.Duration()
	}

	duration := total
	if loop {
		duration = DurationInfinite
	}
	if err := s.Base.SetDuration(duration); err != nil {
		return nil, err
	}

	s.SetDefaultValues(s.Evaluate(0)...)
	return s, nil
}

// Evaluate finds the child the elapsed time lands in and delegates to it
// with the residual time. Elapsed times beyond one full run fold back into
// the cycle, so even a non-looping sequence evaluates cleanly past its
// end. Child durations are re-measured on every call, so mutating a child
// after construction cannot leave the walk running against a stale run
// length; zero-length children count as already exhausted and are skipped.
func (s *Sequence) Evaluate(elapsed time.Duration) []float64 {
	var total time.Duration
	for _, child := range s.children {
		if d := child.Duration(); d > 0 {
			total += d
		}
	}
	if total <= 0 {
		// every child is zero-length, nothing can play
		return s.children[0].Evaluate(0)
	}

	remainder := elapsed
	if remainder > total {
		// fold whole runs while keeping the cycle end at the end, so the
		// remainder stays in (0, total]
		remainder = (remainder-1)%total + 1
	}

	i := 0
	for remainder > s.children[i].Duration() {
		if d := s.children[i].Duration(); d > 0 {
			remainder -= d
		}
		i++
		if i == len(s.children) {
			i = 0
		}
	}
	return s.children[i].Evaluate(remainder)
}

// SetDuration reports ErrUnsupportedOperation: a sequence's duration is
// the sum of its children's. Callers that want a silent no-op simply
// discard the error.
func (s *Sequence) SetDuration(time.Duration) error {
	return fmt.Errorf("%w: sequence duration is defined by its children", ErrUnsupportedOperation)
}

// Getters

// Returns whether the sequence loops instead of expiring.
func (s *Sequence) Loop() bool {
	return s.loop
}

// Returns a copy of the child list in playback order.
func (s *Sequence) Children() []Waveform {
	return append([]Waveform(nil), s.children...)
}
