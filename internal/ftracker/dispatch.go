package ftracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedTraining is returned by ReadPackage for an unknown
	// activity code.
	ErrUnsupportedTraining = errors.New("неизвестный тип тренировки")

	// ErrMalformedPackage is returned by ReadPackage when the number of
	// readings does not match the activity code.
	ErrMalformedPackage = errors.New("некорректный пакет данных")
)

// packageReader decodes the positional readings of one activity code.
type packageReader struct {
	arity int
	build func(data []float64) Training
}

var workoutTypes = map[string]packageReader{
	"SWM": {arity: 5, build: func(d []float64) Training { return NewSwimming(d[0], d[1], d[2], d[3], d[4]) }},
	"RUN": {arity: 3, build: func(d []float64) Training { return NewRunning(d[0], d[1], d[2]) }},
	"WLK": {arity: 4, build: func(d []float64) Training { return NewSportsWalking(d[0], d[1], d[2], d[3]) }},
}

// ReadPackage decodes one sensor package into the matching workout variant.
// The readings are positional; their meaning depends on the activity code.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	reader, ok := workoutTypes[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTraining, workoutType)
	}
	if len(data) != reader.arity {
		return nil, fmt.Errorf("%w: %q содержит %d показаний вместо %d", ErrMalformedPackage, workoutType, len(data), reader.arity)
	}
	return reader.build(data), nil
}
