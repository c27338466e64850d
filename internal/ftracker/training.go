// Package ftracker обрабатывает данные для трех видов тренировок:
// для бега, спортивной ходьбы и плавания.
package ftracker

import "errors"

const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// errCaloriesNotImplemented reports a defect: the calories formula is
// defined only on the concrete workout variants.
var errCaloriesNotImplemented = errors.New("ftracker: spent calories is not implemented for the base training")

// Training is one completed workout. The set of implementations is closed:
// Running, SportsWalking and Swimming, produced by their constructors or by
// ReadPackage.
type Training interface {
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the mean speed over the whole workout in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned calories in kcal.
	SpentCalories() float64
	// TrainingInfo returns the workout summary.
	TrainingInfo() InfoMessage

	sealed()
}

// training holds the raw sensor fields shared by every workout variant.
// Fields are not validated: readings are taken as the sensors sent them.
type training struct {
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg
}

func newTraining(action, duration, weight float64) training {
	return training{
		action:   int(action),
		duration: duration,
		weight:   weight,
	}
}

func (t training) Distance() float64 {
	return float64(t.action) * lenStep / mInKm
}

func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

func (t training) durationInMinutes() float64 {
	return t.duration * minInH
}

// SpentCalories on the bare base must never be reached: every variant
// carries its own formula.
func (t training) SpentCalories() float64 {
	panic(errCaloriesNotImplemented)
}

func (t training) sealed() {}
