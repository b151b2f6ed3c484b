package models

// MarketState holds the market inputs to a valuation: the current underlying
// price, a flat volatility across strikes, the risk free rate and the
// dividend yield.
type MarketState struct {
	UnderlyingPrice float64
	Volatility      float64
	RiskFreeRate    float64
	DividendYield   float64
}

// NewMarketState applies the documented defaults: the 4.6% long run average
// risk free rate and no dividend yield.
func NewMarketState(underlyingPrice float64, volatility float64) MarketState {
	return MarketState{
		UnderlyingPrice: underlyingPrice,
		Volatility:      volatility,
		RiskFreeRate:    DefaultRiskFreeRate,
		DividendYield:   0,
	}
}
