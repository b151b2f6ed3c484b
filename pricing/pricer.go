package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/chobie/go-gaussian"

	"github.com/tantralabs/greekgrid/models"
)

// Input validation errors. Wrapped with the offending value at each call
// site; match with errors.Is.
var (
	ErrInvalidStrike     = errors.New("strike must be positive")
	ErrInvalidVolatility = errors.New("volatility must be non-negative")
	ErrInvalidMaturity   = errors.New("time to maturity must be non-negative")
	ErrInvalidUnderlying = errors.New("underlying price must be non-negative")
	ErrUnknownOptionType = errors.New("unknown option type")
)

func validate(s float64, strike float64, tau float64, vol float64, optionType string) error {
	if strike <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStrike, strike)
	}
	if vol < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidVolatility, vol)
	}
	if tau < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMaturity, tau)
	}
	if s < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidUnderlying, s)
	}
	if optionType != models.Call && optionType != models.Put {
		return fmt.Errorf("%w: %v", ErrUnknownOptionType, optionType)
	}
	return nil
}

// Price returns the Black-Scholes-Merton value of a European option at
// underlying price s, with time to maturity tau in years, flat volatility
// vol, risk free rate r and dividend yield d.
//
// At tau = 0 the intrinsic payoff is returned directly; the closed form
// divides by zero there. Zero volatility with tau > 0 is not rejected: d1
// degenerates to a non-finite value and the result propagates as-is.
func Price(s float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string) (float64, error) {
	if err := validate(s, strike, tau, vol, optionType); err != nil {
		return 0, err
	}
	if tau == 0 {
		return intrinsicValue(s, strike, optionType), nil
	}
	norm := gaussian.NewGaussian(0, 1)
	sqrtTau := math.Sqrt(tau)
	d1 := (math.Log(s/strike) + (r-d+0.5*vol*vol)*tau) / (vol * sqrtTau)
	d2 := d1 - vol*sqrtTau
	if optionType == models.Call {
		return s*math.Exp(-d*tau)*norm.Cdf(d1) - strike*math.Exp(-r*tau)*norm.Cdf(d2), nil
	}
	return -s*math.Exp(-d*tau)*norm.Cdf(-d1) + strike*math.Exp(-r*tau)*norm.Cdf(-d2), nil
}

// PriceSlice applies Price pointwise over a slice of underlying prices,
// preserving order. The first invalid element aborts the whole slice.
func PriceSlice(s []float64, strike float64, tau float64, vol float64, r float64, d float64, optionType string) ([]float64, error) {
	prices := make([]float64, len(s))
	for i, underlying := range s {
		price, err := Price(underlying, strike, tau, vol, r, d, optionType)
		if err != nil {
			return nil, err
		}
		prices[i] = price
	}
	return prices, nil
}

// Value of the option if exercised immediately.
func intrinsicValue(s float64, strike float64, optionType string) float64 {
	if optionType == models.Call {
		return math.Max(s-strike, 0)
	}
	return math.Max(strike-s, 0)
}
