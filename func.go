package waveform

import (
	"fmt"
	"time"

	"github.com/synaptecltd/waveform/wavefuncs"
)

// Func evaluates a shape function chosen by name from the wavefuncs
// registry, giving config-driven access to every registered shape through
// a single waveform type.
type Func struct {
	Periodic

	funcName  string
	shapeFunc wavefuncs.ShapeFunc
}

// FuncParams are the construction parameters for a named-function
// waveform.
type FuncParams struct {
	Func      string        `yaml:"Func"`      // name of the shape function, empty defaults to "sine"
	Frequency float64       `yaml:"Frequency"` // repetition rate in Hz, must be positive
	Amplitude float64       `yaml:"Amplitude"` // peak swing above the offset, clamped to [0,1]
	Offset    float64       `yaml:"Offset"`    // floor of the oscillation, clamped so amplitude+offset <= 1
	Duration  time.Duration `yaml:"Duration"`  // how long the waveform runs once started, zero or negative for forever
}

// NewFunc returns a waveform backed by the named shape function, checking
// for invalid values.
func NewFunc(params FuncParams) (*Func, error) {
	f := &Func{}
	err := f.init(f, PeriodicParams{
		Frequency: params.Frequency,
		Amplitude: params.Amplitude,
		Offset:    params.Offset,
		Duration:  params.Duration,
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetFunctionByName(params.Func); err != nil {
		return nil, err
	}
	f.SetDefaultValues(f.Evaluate(0)...)
	return f, nil
}

// Evaluate returns the value of the bound shape function at the given
// elapsed time.
func (f *Func) Evaluate(elapsed time.Duration) []float64 {
	value := f.offset + f.shapeFunc(elapsed.Seconds(), f.amplitude, f.Period().Seconds())
	return []float64{clamp01(value)}
}

// Setters

// SetFunctionByName rebinds the waveform to the named shape function. An
// empty name defaults to "sine".
func (f *Func) SetFunctionByName(name string) error {
	if name == "" {
		name = "sine"
	}
	shapeFunc, err := wavefuncs.GetShapeFunctionFromName(name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, name)
	}
	f.funcName = name
	f.shapeFunc = shapeFunc
	return nil
}

// Getters

func (f *Func) FuncName() string {
	return f.funcName
}

// Returns the shape function the waveform is bound to.
func (f *Func) Function() wavefuncs.ShapeFunc {
	return f.shapeFunc
}
