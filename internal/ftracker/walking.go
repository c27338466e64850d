package ftracker

import "math"

// SportsWalking is a race walking workout.
type SportsWalking struct {
	training
	height float64 // cm
}

// NewSportsWalking builds a race walking workout from raw sensor readings:
// steps taken, duration in hours, athlete weight in kg and height in cm.
func NewSportsWalking(action, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: newTraining(action, duration, weight),
		height:   height,
	}
}

func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	// the squared speed is floor-divided by height, not divided
	heightTerm := math.Floor(speed * speed / w.height)
	return (walkingCaloriesWeightMultiplier*w.weight + heightTerm*walkingSpeedHeightMultiplier) * w.durationInMinutes()
}

func (w SportsWalking) TrainingInfo() InfoMessage {
	return InfoMessage{
		TrainingType: "SportsWalking",
		Duration:     w.duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}
