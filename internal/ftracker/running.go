package ftracker

// Running is a running workout.
type Running struct {
	training
}

// NewRunning builds a running workout from raw sensor readings:
// steps taken, duration in hours and athlete weight in kg.
func NewRunning(action, duration, weight float64) Running {
	return Running{training: newTraining(action, duration, weight)}
}

func (r Running) SpentCalories() float64 {
	speedTerm := runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift
	return speedTerm * r.weight / mInKm * r.durationInMinutes()
}

func (r Running) TrainingInfo() InfoMessage {
	return InfoMessage{
		TrainingType: "Running",
		Duration:     r.duration,
		Distance:     r.Distance(),
		Speed:        r.MeanSpeed(),
		Calories:     r.SpentCalories(),
	}
}
