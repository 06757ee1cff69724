package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundTo rounds f half away from zero to the given number of decimals.
func RoundTo(f float64, decimals int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(f*pow) / pow
}

// FormatFixed renders f with exactly decimals digits after the point.
func FormatFixed(f float64, decimals int) string {
	return strconv.FormatFloat(RoundTo(f, decimals), 'f', decimals, 64)
}

func StringPtr(s string) *string {
	return &s
}

// NonEmptyPtr returns nil for blank strings.
func NonEmptyPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
