// Package greekgrid computes European option value and greek surfaces over a
// grid of underlying prices and times to maturity, in the long form a
// plotting layer consumes.
package greekgrid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tantralabs/greekgrid/logger"
	"github.com/tantralabs/greekgrid/models"
	"github.com/tantralabs/greekgrid/surface"
	"github.com/tantralabs/greekgrid/utils"
)

// Measures evaluated by BuildSurfaceSet, in evaluation order.
var Measures = []surface.Measure{
	surface.MeasurePrice,
	surface.MeasureDelta,
	surface.MeasureGamma,
	surface.MeasureVega,
	surface.MeasureTheta,
}

// SurfaceSet holds the value surface and all four greek surfaces for one
// contract over shared axes, each already reshaped to a tidy table.
type SurfaceSet struct {
	Contract    models.OptionContract
	Taus        []float64
	Underlyings []float64
	Tables      map[surface.Measure][]models.TidyRecord
}

// BuildSurfaceSet evaluates every measure in Measures for one contract. A nil
// or empty underlyings axis defaults to a band of 201 prices from half to one
// and a half times the current underlying price; a nil or empty taus axis
// defaults to maturities every three weeks out to twelve weeks.
func BuildSurfaceSet(contract models.OptionContract, market models.MarketState, taus []float64, underlyings []float64) (*SurfaceSet, error) {
	if len(underlyings) == 0 {
		if market.UnderlyingPrice <= 0 {
			return nil, fmt.Errorf("cannot default the underlying axis without a positive underlying price, got %v", market.UnderlyingPrice)
		}
		underlyings = utils.Linspace(market.UnderlyingPrice*0.5, market.UnderlyingPrice*1.5, 201)
	}
	if len(taus) == 0 {
		taus = utils.Arange(3.0/52.0, 12.0/52.0, 3.0/52.0)
	}
	set := &SurfaceSet{
		Contract:    contract,
		Taus:        taus,
		Underlyings: underlyings,
		Tables:      make(map[surface.Measure][]models.TidyRecord),
	}
	for _, measure := range Measures {
		req := surface.NewRequest(contract, market.Volatility, taus, underlyings)
		req.RiskFreeRate = market.RiskFreeRate
		req.DividendYield = market.DividendYield
		req.Measure = measure
		grid, err := surface.Evaluate(req)
		if err != nil {
			return nil, fmt.Errorf("%v surface: %w", measure, err)
		}
		records, err := surface.ToTidy(grid)
		if err != nil {
			return nil, fmt.Errorf("%v surface: %w", measure, err)
		}
		set.Tables[measure] = records
	}
	logger.Infof("Built %v surfaces over %v maturities x %v underlying prices\n", len(set.Tables), len(taus), len(underlyings))
	return set, nil
}

// Range returns the min and max value of one surface, for the plotting
// layer's color scale setup.
func (s *SurfaceSet) Range(measure surface.Measure) (float64, float64, error) {
	records, ok := s.Tables[measure]
	if !ok || len(records) == 0 {
		return 0, 0, fmt.Errorf("no %v surface in set", measure)
	}
	values := make([]float64, len(records))
	for i, record := range records {
		values[i] = record.Value
	}
	return floats.Min(values), floats.Max(values), nil
}
