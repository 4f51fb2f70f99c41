package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Midpoints returns the N-1 averages of adjacent entries of x
func Midpoints(x []float64) (m []float64) {
	if len(x) < 2 {
		return nil
	}
	m = make([]float64, len(x)-1)
	for i := range m {
		m[i] = 0.5 * (x[i+1] + x[i])
	}
	return
}

// Shift subtracts s from every entry of x in place
func Shift(x []float64, s float64) []float64 {
	for i := range x {
		x[i] -= s
	}
	return x
}

func AllFinite(x []float64) bool {
	for _, f := range x {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
