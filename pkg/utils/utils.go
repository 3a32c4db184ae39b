package utils

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

// GenerateUUID returns a new random identifier string.
func GenerateUUID() string {
	return uuid.NewString()
}

// RoundTotal rounds an order total to a whole currency unit.
func RoundTotal(amount float64) float64 {
	return math.Round(amount)
}

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}
