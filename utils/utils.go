package utils

import (
	"gonum.org/v1/gonum/floats"
)

// Arange returns min to max inclusive in fixed steps.
func Arange(min float64, max float64, step float64) []float64 {
	a := make([]float64, int((max-min)/step+0.5)+1)
	for i := range a {
		a[i] = min + float64(i)*step
	}
	return a
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start float64, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}
