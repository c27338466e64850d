package ftracker

// Swimming is a swimming workout.
type Swimming struct {
	training
	lengthPool float64 // meters
	countPool  float64
}

// NewSwimming builds a swimming workout from raw sensor readings:
// strokes taken, duration in hours, athlete weight in kg, pool length
// in meters and the number of pool lengths swum.
func NewSwimming(action, duration, weight, lengthPool, countPool float64) Swimming {
	return Swimming{
		training:   newTraining(action, duration, weight),
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Distance counts one stroke as a full pool length.
func (s Swimming) Distance() float64 {
	return float64(s.action) * swimmingLenStep / mInKm
}

// MeanSpeed is derived from the pool size rather than the stroke count.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight
}

func (s Swimming) TrainingInfo() InfoMessage {
	return InfoMessage{
		TrainingType: "Swimming",
		Duration:     s.duration,
		Distance:     s.Distance(),
		Speed:        s.MeanSpeed(),
		Calories:     s.SpentCalories(),
	}
}
