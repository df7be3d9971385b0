package utils

import (
	"math"
	"math/rand"
)

// Clamp bounds value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// RandomInclusive returns a uniformly distributed integer in [min, max].
func RandomInclusive(rng *rand.Rand, min, max int) int {
	if max < min {
		panic("max must be greater or equal than min")
	}
	return min + rng.Intn(max-min+1)
}

func CheckPointWithinBounds(x, y float64, topSide, bottomOppositeSide [2]float64) bool {
	return x >= topSide[0] && x <= bottomOppositeSide[0] && y >= topSide[1] && y <= bottomOppositeSide[1]
}

func Distance(x1, y1, x2, y2 float64) float64 {
	deltaX := x2 - x1
	deltaY := y2 - y1

	return math.Sqrt(deltaX*deltaX + deltaY*deltaY)
}
