package epi

import "errors"

var (
	// ErrParameterBounds indicates a model parameter outside its valid range.
	ErrParameterBounds = errors.New("epi: parameter out of valid bounds")

	// ErrSubcritical indicates a reproduction number at or below one, for
	// which the geometric recovered-pool estimate has no finite value.
	ErrSubcritical = errors.New("epi: reproduction number must exceed 1")
)
