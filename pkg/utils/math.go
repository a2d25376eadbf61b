// pkg/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает x отрезком [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapIndex приводит i к диапазону [0, n) с заворотом, как индекс линии.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
