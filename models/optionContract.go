package models

// Option types accepted by the pricer.
const (
	Call = "call"
	Put  = "put"
)

// OptionContract describes a European option. Immutable once constructed.
type OptionContract struct {
	Strike     float64
	OptionType string // "call" or "put"
}
