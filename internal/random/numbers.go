package random

// IntBetween generates a random int in [min, max)
func IntBetween(min, max int) int {
	return rnd.Intn(max-min) + min
}

// FloatBetween generates a random float64 in [min, max)
func FloatBetween(min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}
