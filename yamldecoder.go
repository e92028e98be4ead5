package waveform

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshals a YAML list of waveform entries into the container.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Temporary structure to unmarshal the yaml file
	var unmarshaledYaml []map[string]interface{}
	if err := unmarshal(&unmarshaledYaml); err != nil {
		return err
	}

	if *c == nil {
		*c = make(Container, len(unmarshaledYaml))
	}
	for _, yamlEntry := range unmarshaledYaml {
		w, err := createWaveformFromYamlEntry(yamlEntry)
		if err != nil {
			return err
		}
		(*c)[w.ID()] = w
	}

	return nil
}

// Returns a decodeHook function that can be used to unmarshal waveforms
// from a yaml file using mapstructure. This supports configuration
// solutions like spf13/viper that use mapstructure to unmarshal yaml
// files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*Waveform)(nil)).Elem() {
			// If the target type is Waveform, create the correct waveform
			// type from the yaml entry
			return createWaveformFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a waveform from a yaml entry based on the entry's "type" (or
// "Type") field.
func createWaveformFromYamlEntry(yamlEntry interface{}) (Waveform, error) {
	m, ok := stringKeyedMap(yamlEntry)
	if !ok {
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}

	// must check both m["type"] and m["Type"] because some yaml parsers
	// convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("waveform type field is missing or not a string")
		}
	}

	switch typeStr {
	case "constant":
		params, err := decodeWaveformParams[ConstantParams](m)
		if err != nil {
			return nil, err
		}
		return NewConstant(params)
	case "ramp":
		params, err := decodeWaveformParams[RampParams](m)
		if err != nil {
			return nil, err
		}
		return NewRamp(params)
	case "sine":
		params, err := decodeWaveformParams[PeriodicParams](m)
		if err != nil {
			return nil, err
		}
		return NewSine(params)
	case "cosine":
		params, err := decodeWaveformParams[PeriodicParams](m)
		if err != nil {
			return nil, err
		}
		return NewCosine(params)
	case "triangle":
		params, err := decodeWaveformParams[TriangleParams](m)
		if err != nil {
			return nil, err
		}
		return NewTriangle(params)
	case "sawtooth":
		params, err := decodeWaveformParams[SawtoothParams](m)
		if err != nil {
			return nil, err
		}
		return NewSawtooth(params)
	case "square":
		params, err := decodeWaveformParams[SquareParams](m)
		if err != nil {
			return nil, err
		}
		return NewSquare(params)
	case "trapezoid":
		params, err := decodeWaveformParams[TrapezoidParams](m)
		if err != nil {
			return nil, err
		}
		return NewTrapezoid(params)
	case "noise":
		params, err := decodeWaveformParams[NoiseParams](m)
		if err != nil {
			return nil, err
		}
		return NewNoise(params)
	case "chirp":
		params, err := decodeWaveformParams[ChirpParams](m)
		if err != nil {
			return nil, err
		}
		return NewChirp(params)
	case "func":
		params, err := decodeWaveformParams[FuncParams](m)
		if err != nil {
			return nil, err
		}
		return NewFunc(params)
	case "sequence":
		return createSequenceFromYamlEntry(m)
	default:
		return nil, fmt.Errorf("unknown waveform type: %s", typeStr)
	}
}

// Builds a sequence from a yaml entry by recursing into its child entries.
func createSequenceFromYamlEntry(m map[string]interface{}) (Waveform, error) {
	loop, _ := m["Loop"].(bool)
	if l, ok := m["loop"].(bool); ok {
		loop = l
	}

	rawChildren, ok := m["Children"].([]interface{})
	if !ok {
		rawChildren, ok = m["children"].([]interface{})
		if !ok {
			return nil, errors.New("sequence children field is missing or not a list")
		}
	}

	children := make([]Waveform, 0, len(rawChildren))
	for _, rawChild := range rawChildren {
		child, err := createWaveformFromYamlEntry(rawChild)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return NewSequence(loop, children...)
}

// Use mapstructure to unmarshal a yaml entry into waveform params.
func decodeWaveformParams[T any](m map[string]interface{}) (T, error) {
	var params T
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(), // parses durations like "250ms"
			mapstructure.TextUnmarshallerHookFunc(),     // parses uuids
		),
		Result: &params,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return params, err
	}
	if err := decoder.Decode(m); err != nil {
		return params, err
	}
	return params, nil
}

// yaml.v2 decodes nested mappings with interface{} keys, so both key
// flavours must be accepted.
func stringKeyedMap(entry interface{}) (map[string]interface{}, bool) {
	switch m := entry.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(m))
		for key, value := range m {
			keyStr, ok := key.(string)
			if !ok {
				return nil, false
			}
			converted[keyStr] = value
		}
		return converted, true
	}
	return nil, false
}
