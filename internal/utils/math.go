// internal/utils/math.go
package utils

import "math"

// Radians переводит градусы в радианы
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees приводит угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// -1e-15 + 360 округляется до 360
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// Clamp01 ограничивает значение отрезком [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MaxInt возвращает большее из двух целых
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
