// errors.go defines public error types for the boundset package.

package boundset

import (
	"errors"

	"github.com/synthcore/boundset/internal/bseval"
)

// Public error types for split-search operations.
var (
	// ErrTooManyVariables indicates the variable count is outside 1..24:
	// more variables than this package's scratch buffers are sized for, or
	// none at all.
	ErrTooManyVariables = errors.New("boundset: too many variables (max 24)")

	// ErrInvalidControlVars indicates nCVars is out of range for nVars.
	ErrInvalidControlVars = errors.New("boundset: invalid control-variable count")

	// ErrInvalidLutSize indicates the requested bound-set size does not
	// fit between the control-variable count and the total variable count.
	ErrInvalidLutSize = errors.New("boundset: invalid bound-set size")

	// ErrInvalidRails indicates a negative rail budget was requested.
	ErrInvalidRails = errors.New("boundset: rail budget must be non-negative")

	// ErrInvalidSampling indicates nSubsets or nBest is non-positive for a
	// sampled search.
	ErrInvalidSampling = errors.New("boundset: nSubsets and nBest must be positive")
)

// validateDims checks the dimension arguments shared by FindBVarsSVars and
// FindBVarsSVars2, matching spec.md §7's nVars <= 24, nCVars in [0,nVars),
// and lutSize in (nCVars,nVars) assertions.
func validateDims(nVars, nCVars, lutSize, nRails int) error {
	switch {
	case nVars <= 0 || nVars > bseval.MaxVars:
		return ErrTooManyVariables
	case nCVars < 0 || nCVars >= nVars:
		return ErrInvalidControlVars
	case lutSize <= nCVars || lutSize >= nVars:
		return ErrInvalidLutSize
	case nRails < 0:
		return ErrInvalidRails
	}
	return nil
}
