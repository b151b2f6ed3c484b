package surface

import (
	"errors"
	"fmt"

	"github.com/fatih/structs"

	"github.com/tantralabs/greekgrid/logger"
	"github.com/tantralabs/greekgrid/models"
	"github.com/tantralabs/greekgrid/pricing"
)

// Measure selects what gets evaluated at each grid cell.
type Measure string

const (
	MeasurePrice Measure = "price"
	MeasureDelta Measure = "delta"
	MeasureGamma Measure = "gamma"
	MeasureVega  Measure = "vega"
	MeasureTheta Measure = "theta"
)

var (
	ErrEmptyAxis      = errors.New("surface axes must be non-empty")
	ErrUnknownMeasure = errors.New("unknown measure")
)

// Request carries everything one surface evaluation needs. Taus and
// Underlyings are the grid axes; all other parameters are held fixed across
// the grid.
type Request struct {
	Contract      models.OptionContract
	Volatility    float64
	RiskFreeRate  float64
	DividendYield float64
	Taus          []float64
	Underlyings   []float64
	Measure       Measure
	Step          float64 // finite difference bump, 0 selects the per-measure default
}

// NewRequest builds a price surface request with the default risk free rate
// and no dividend yield. Adjust fields before calling Evaluate as needed.
func NewRequest(contract models.OptionContract, vol float64, taus []float64, underlyings []float64) Request {
	return Request{
		Contract:     contract,
		Volatility:   vol,
		RiskFreeRate: models.DefaultRiskFreeRate,
		Taus:         taus,
		Underlyings:  underlyings,
		Measure:      MeasurePrice,
	}
}

// Evaluate computes the requested measure over the full maturity x underlying
// price cross product. Row i of the result corresponds to Taus[i] and column
// j to Underlyings[j], in the order given. The first failing cell aborts the
// whole grid; no partial grid is ever returned.
func Evaluate(req Request) (*models.EvaluationGrid, error) {
	if len(req.Taus) == 0 || len(req.Underlyings) == 0 {
		return nil, ErrEmptyAxis
	}
	logger.Debugf("Evaluating %v surface with params %v\n", req.Measure, structs.Map(req))
	values := make([][]float64, len(req.Taus))
	for i, tau := range req.Taus {
		row, err := evaluateRow(req, tau)
		if err != nil {
			return nil, fmt.Errorf("%v surface row %v (tau %v): %w", req.Measure, i, tau, err)
		}
		values[i] = row
	}
	return &models.EvaluationGrid{
		Taus:        append([]float64(nil), req.Taus...),
		Underlyings: append([]float64(nil), req.Underlyings...),
		Values:      values,
	}, nil
}

func evaluateRow(req Request, tau float64) ([]float64, error) {
	strike := req.Contract.Strike
	vol := req.Volatility
	r := req.RiskFreeRate
	d := req.DividendYield
	optionType := req.Contract.OptionType
	switch req.Measure {
	case MeasurePrice:
		return pricing.PriceSlice(req.Underlyings, strike, tau, vol, r, d, optionType)
	case MeasureDelta:
		return pricing.DeltaSlice(req.Underlyings, strike, tau, vol, r, d, optionType, req.Step)
	case MeasureGamma:
		return pricing.GammaSlice(req.Underlyings, strike, tau, vol, r, d, optionType, req.Step)
	case MeasureVega:
		return pricing.VegaSlice(req.Underlyings, strike, tau, vol, r, d, optionType, req.Step)
	case MeasureTheta:
		return pricing.ThetaSlice(req.Underlyings, strike, tau, vol, r, d, optionType, req.Step)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMeasure, req.Measure)
}
