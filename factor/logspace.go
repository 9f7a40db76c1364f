package factor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogWeight converts a non-negative weight to log space, mapping 0 to floor.
func LogWeight(w, floor float64) float64 {
	if w == 0 {
		return floor
	}

	return math.Log(w)
}

// LogAddExp returns log(exp(a) + exp(b)) without leaving log space.
// -Inf is the identity element.
func LogAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}

// Normalize writes logv minus its log-sum-exp into dst, so that exp(dst)
// sums to 1. dst may alias logv; it is grown when too short.
func Normalize(dst, logv []float64) []float64 {
	if cap(dst) < len(logv) {
		dst = make([]float64, len(logv))
	}
	dst = dst[:len(logv)]
	z := floats.LogSumExp(logv)
	copy(dst, logv)
	floats.AddConst(-z, dst)

	return dst
}

// Probabilities normalizes logv and exponentiates it into dst.
func Probabilities(dst, logv []float64) []float64 {
	dst = Normalize(dst, logv)
	for i, x := range dst {
		dst[i] = math.Exp(x)
	}

	return dst
}
