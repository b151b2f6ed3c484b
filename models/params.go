package models

// Documented defaults. Step sizes are the finite difference bumps used by the
// greek estimators when the caller does not supply one.
const (
	DefaultRiskFreeRate = 0.046
	DefaultDeltaStep    = 0.01
	DefaultGammaStep    = 0.005
	DefaultVegaStep     = 0.001
	DefaultThetaStep    = 1.0 / 365.0
)
