package pricing

// Finite difference greek estimators. Every greek is built by re-pricing with
// one bumped input and differencing, never from a closed form derivative, so
// the estimates can be checked against the known analytic shapes
// independently. Passing h <= 0 selects the documented default step for that
// greek (models.DefaultDeltaStep and friends).

import (
	"github.com/tantralabs/greekgrid/models"
)

// Delta estimates the change in option value per unit move in the underlying,
// as a forward difference over [s, s+h].
func Delta(s float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) (float64, error) {
	if h <= 0 {
		h = models.DefaultDeltaStep
	}
	base, err := Price(s, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	bumped, err := Price(s+h, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	return (bumped - base) / h, nil
}

// Gamma estimates the curvature of the value in the underlying, as a forward
// second difference over [s, s+h, s+2h].
func Gamma(s float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) (float64, error) {
	if h <= 0 {
		h = models.DefaultGammaStep
	}
	base, err := Price(s, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	bumpedOnce, err := Price(s+h, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	bumpedTwice, err := Price(s+2*h, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	return (bumpedTwice - 2*bumpedOnce + base) / (h * h), nil
}

// Vega estimates the change in option value per unit move in volatility.
func Vega(s float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) (float64, error) {
	if h <= 0 {
		h = models.DefaultVegaStep
	}
	base, err := Price(s, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	bumped, err := Price(s, strike, tau, vol+h, r, d, optionType)
	if err != nil {
		return 0, err
	}
	return (bumped - base) / h, nil
}

// Theta estimates the value lost per year as maturity approaches, computed as
// the decrease in value when time to maturity grows by h (decay convention,
// so the sign is flipped relative to a plain forward difference in tau). At
// tau = 0 the base leg prices off the intrinsic payoff while the bumped leg
// uses the closed form; the discontinuity at that boundary is intentional.
func Theta(s float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) (float64, error) {
	if h <= 0 {
		h = models.DefaultThetaStep
	}
	base, err := Price(s, strike, tau, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	bumped, err := Price(s, strike, tau+h, vol, r, d, optionType)
	if err != nil {
		return 0, err
	}
	return (base - bumped) / h, nil
}

// DeltaSlice applies Delta pointwise over a slice of underlying prices.
func DeltaSlice(s []float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) ([]float64, error) {
	deltas := make([]float64, len(s))
	for i, underlying := range s {
		delta, err := Delta(underlying, strike, tau, vol, r, d, optionType, h)
		if err != nil {
			return nil, err
		}
		deltas[i] = delta
	}
	return deltas, nil
}

// GammaSlice applies Gamma pointwise over a slice of underlying prices.
func GammaSlice(s []float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) ([]float64, error) {
	gammas := make([]float64, len(s))
	for i, underlying := range s {
		gamma, err := Gamma(underlying, strike, tau, vol, r, d, optionType, h)
		if err != nil {
			return nil, err
		}
		gammas[i] = gamma
	}
	return gammas, nil
}

// VegaSlice applies Vega pointwise over a slice of underlying prices.
func VegaSlice(s []float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) ([]float64, error) {
	vegas := make([]float64, len(s))
	for i, underlying := range s {
		vega, err := Vega(underlying, strike, tau, vol, r, d, optionType, h)
		if err != nil {
			return nil, err
		}
		vegas[i] = vega
	}
	return vegas, nil
}

// ThetaSlice applies Theta pointwise over a slice of underlying prices.
func ThetaSlice(s []float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string, h float64) ([]float64, error) {
	thetas := make([]float64, len(s))
	for i, underlying := range s {
		theta, err := Theta(underlying, strike, tau, vol, r, d, optionType, h)
		if err != nil {
			return nil, err
		}
		thetas[i] = theta
	}
	return thetas, nil
}
