package models

// EvaluationGrid is the result of evaluating one measure over a maturity x
// underlying price cross product. Values[i][j] was computed at
// (Taus[i], Underlyings[j]); there are no missing cells.
type EvaluationGrid struct {
	Taus        []float64
	Underlyings []float64
	Values      [][]float64
}

// Dims returns (number of maturities, number of underlying prices).
func (g *EvaluationGrid) Dims() (int, int) {
	return len(g.Taus), len(g.Underlyings)
}
