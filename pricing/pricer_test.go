package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/tantralabs/greekgrid/models"
)

func checkApprox(t *testing.T, name string, got float64, expected float64, tolerance float64) {
	t.Helper()
	if math.Abs(got-expected) > tolerance {
		t.Errorf("Bad %v: %v, expected %v (tolerance %v)", name, got, expected, tolerance)
	}
}

// S=100, K=100, tau=12/52, vol=0.25, r=0.046, d=0. Reference values computed
// from the closed form and pinned by put-call parity.
func TestTwelveWeekATMScenario(t *testing.T) {
	tau := 12.0 / 52.0
	call, err := Price(100, 100, tau, 0.25, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	put, err := Price(100, 100, tau, 0.25, 0.046, 0, models.Put)
	if err != nil {
		t.Fatalf("put price: %v", err)
	}
	checkApprox(t, "call price", call, 5.3099, 5e-3)
	checkApprox(t, "put price", put, 4.2540, 5e-3)
}

func TestAtMaturityPayoff(t *testing.T) {
	call, err := Price(110, 100, 0, 0.25, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	if call != 10.0 {
		t.Errorf("Bad at-maturity call: %v, expected exactly 10", call)
	}
	put, err := Price(110, 100, 0, 0.25, 0.046, 0, models.Put)
	if err != nil {
		t.Fatalf("put price: %v", err)
	}
	if put != 0.0 {
		t.Errorf("Bad at-maturity put: %v, expected exactly 0", put)
	}
	// Volatility is irrelevant at the boundary
	call, err = Price(90, 100, 0, 3.0, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	if call != 0.0 {
		t.Errorf("Bad at-maturity OTM call: %v, expected exactly 0", call)
	}
	put, err = Price(90, 100, 0, 3.0, 0.046, 0, models.Put)
	if err != nil {
		t.Fatalf("put price: %v", err)
	}
	if put != 10.0 {
		t.Errorf("Bad at-maturity ITM put: %v, expected exactly 10", put)
	}
}

func TestPutCallParity(t *testing.T) {
	strike := 100.0
	r := 0.046
	d := 0.02
	for _, s := range []float64{60, 80, 100, 120, 140} {
		for _, tau := range []float64{0.1, 0.5, 1, 2} {
			for _, vol := range []float64{0.1, 0.3} {
				call, err := Price(s, strike, tau, vol, r, d, models.Call)
				if err != nil {
					t.Fatalf("call price at S=%v tau=%v vol=%v: %v", s, tau, vol, err)
				}
				put, err := Price(s, strike, tau, vol, r, d, models.Put)
				if err != nil {
					t.Fatalf("put price at S=%v tau=%v vol=%v: %v", s, tau, vol, err)
				}
				forward := s*math.Exp(-d*tau) - strike*math.Exp(-r*tau)
				if math.Abs(call-put-forward) > 1e-9 {
					t.Errorf("Parity violated at S=%v tau=%v vol=%v: call-put=%v, forward=%v", s, tau, vol, call-put, forward)
				}
			}
		}
	}
}

func TestZeroUnderlyingBoundary(t *testing.T) {
	call, err := Price(0, 100, 0.5, 0.25, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	if call != 0 {
		t.Errorf("Bad worthless call at S=0: %v", call)
	}
	put, err := Price(0, 100, 0.5, 0.25, 0.046, 0, models.Put)
	if err != nil {
		t.Fatalf("put price: %v", err)
	}
	checkApprox(t, "put at S=0", put, 100*math.Exp(-0.046*0.5), 1e-9)
}

// Zero volatility with tau > 0 is accepted, not rejected: d1 degenerates to
// an infinity and the price collapses through the CDF to the discounted
// intrinsic limit. With r = d and S = K the division is 0/0 and NaN
// propagates; that too is inherited formula behavior, not an error.
func TestZeroVolatilityDegrades(t *testing.T) {
	call, err := Price(120, 100, 1, 0, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	checkApprox(t, "zero-vol ITM call", call, 120-100*math.Exp(-0.046), 1e-9)
	atStrike, err := Price(100, 100, 1, 0, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	checkApprox(t, "zero-vol ATM call with positive drift", atStrike, 100-100*math.Exp(-0.046), 1e-9)
	degenerate, err := Price(100, 100, 1, 0, 0, 0, models.Call)
	if err != nil {
		t.Fatalf("call price: %v", err)
	}
	if !math.IsNaN(degenerate) {
		t.Errorf("Expected NaN from the 0/0 d1, got %v", degenerate)
	}
}

func TestInvalidInputsRejected(t *testing.T) {
	cases := []struct {
		name       string
		s          float64
		strike     float64
		tau        float64
		vol        float64
		optionType string
		expected   error
	}{
		{"negative strike", 100, -1, 0.5, 0.25, models.Call, ErrInvalidStrike},
		{"zero strike", 100, 0, 0.5, 0.25, models.Call, ErrInvalidStrike},
		{"negative vol", 100, 100, 0.5, -0.1, models.Call, ErrInvalidVolatility},
		{"negative tau", 100, 100, -0.1, 0.25, models.Put, ErrInvalidMaturity},
		{"negative underlying", -5, 100, 0.5, 0.25, models.Put, ErrInvalidUnderlying},
		{"bad option type", 100, 100, 0.5, 0.25, "straddle", ErrUnknownOptionType},
	}
	for _, c := range cases {
		_, err := Price(c.s, c.strike, c.tau, c.vol, 0.046, 0, c.optionType)
		if !errors.Is(err, c.expected) {
			t.Errorf("%v: got error %v, expected %v", c.name, err, c.expected)
		}
	}
}

func TestPriceSliceMatchesScalar(t *testing.T) {
	underlyings := []float64{80, 90, 100, 110, 120}
	prices, err := PriceSlice(underlyings, 100, 0.5, 0.25, 0.046, 0, models.Call)
	if err != nil {
		t.Fatalf("price slice: %v", err)
	}
	if len(prices) != len(underlyings) {
		t.Fatalf("Got %v prices for %v underlyings", len(prices), len(underlyings))
	}
	for i, s := range underlyings {
		scalar, err := Price(s, 100, 0.5, 0.25, 0.046, 0, models.Call)
		if err != nil {
			t.Fatalf("price at S=%v: %v", s, err)
		}
		if prices[i] != scalar {
			t.Errorf("Slice price at S=%v: %v, scalar gave %v", s, prices[i], scalar)
		}
	}
	for i := 1; i < len(prices); i++ {
		if prices[i] <= prices[i-1] {
			t.Errorf("Call prices not increasing in S: %v", prices)
		}
	}
}

func TestPriceSliceRejectsInvalidElement(t *testing.T) {
	_, err := PriceSlice([]float64{100, -1, 110}, 100, 0.5, 0.25, 0.046, 0, models.Call)
	if !errors.Is(err, ErrInvalidUnderlying) {
		t.Errorf("Got error %v, expected %v", err, ErrInvalidUnderlying)
	}
}
