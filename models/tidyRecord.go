package models

// TidyRecord is one grid cell in long form, one row per (maturity,
// underlying) point. The plotting layer groups and sorts these as needed.
type TidyRecord struct {
	Maturity   float64 `csv:"maturity"`
	Underlying float64 `csv:"underlying"`
	Value      float64 `csv:"value"`
}
