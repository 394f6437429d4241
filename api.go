// api.go wraps internal/bseval's search engine in the package's public
// entry points, the way decoder.go wraps the teacher's internal codec
// state behind NewDecoder/DecodeFrame.

package boundset

import (
	"github.com/pkg/errors"

	"github.com/synthcore/boundset/internal/bseval"
	"github.com/synthcore/boundset/internal/ttable"
)

// FindBVarsSVars searches for a bound-set/free-set split of an n-variable
// function, of bound-set size lutSize, that fits within nRails output
// rails. It runs the exact Chase-walk search once without sharing, then,
// only if that result still needs more rails than the budget allows,
// retries allowing a subset of the bound-set variables (smallest subsets
// first) to be shared back into the free set for each rail count from 1
// up to nRails, stopping at the first fit
// (Abc_TtFindBVarsSVars). tt is a packed truth table of n variables and is
// left unmodified on return. seed drives the deterministic tie-breaking
// PRNG; jRatio, if non-zero, is the 1-in-jRatio chance of jumping to a
// second-best candidate sampled elsewhere in the walk, for diversifying
// repeated runs.
//
// The returned Result is the zero value (Found() == false) if no split
// meets the rail budget.
func FindBVarsSVars(tt []uint64, n, nCVars, nRails, lutSize int, seed uint32, jRatio int) (Result, error) {
	if err := validateDims(n, nCVars, lutSize, nRails); err != nil {
		return 0, errors.Wrap(err, "FindBVarsSVars")
	}
	nWords := ttable.WordNum(n)
	if len(tt) < nWords {
		return 0, errors.Errorf("FindBVarsSVars: tt has %d words, need %d for %d variables", len(tt), nWords, n)
	}

	work := make([]uint64, nWords)
	ttable.Copy(work, tt, nWords)

	e := bseval.NewEvaluator()
	split := e.FindBVarsSVars(work, n, nCVars, nRails, lutSize, bseval.NewRNG(seed), jRatio)
	if !split.Found {
		return 0, nil
	}
	return PackResult(split.Myu, split.SharedMask, split.BoundMask), nil
}

// FindBVarsSVars2 falls back to a randomly sampled, iteratively refined
// bound-set search for function sizes where the exact Chase walk over
// every permutation would be too large (Abc_TtFindBVarsSVars2): it
// explores nSubsets candidate bound sets per refinement round, keeps the
// nBest best by column multiplicity, and returns every split tied for the
// best result found (smallest column multiplicity, then smallest shared
// set) if it fits the nRails budget, or an empty slice if it does not. nMyuIncrease widens the window of near-best column
// multiplicities considered for the shared-variable improvement pass.
func FindBVarsSVars2(tt []uint64, n, nCVars, nRails, lutSize, nMyuIncrease, nSubsets, nBest int, seed uint32) ([]Result, error) {
	if err := validateDims(n, nCVars, lutSize, nRails); err != nil {
		return nil, errors.Wrap(err, "FindBVarsSVars2")
	}
	if nSubsets <= 0 || nBest <= 0 {
		return nil, errors.Wrap(ErrInvalidSampling, "FindBVarsSVars2")
	}
	nWords := ttable.WordNum(n)
	if len(tt) < nWords {
		return nil, errors.Errorf("FindBVarsSVars2: tt has %d words, need %d for %d variables", len(tt), nWords, n)
	}

	work := make([]uint64, nWords)
	ttable.Copy(work, tt, nWords)

	e := bseval.NewEvaluator()
	splits := e.SampledSearch(work, n, nCVars, nRails, lutSize, nMyuIncrease, nSubsets, nBest, bseval.NewRNG(seed))
	if len(splits) == 0 {
		return nil, nil
	}

	results := make([]Result, len(splits))
	for i, s := range splits {
		boundMask, sharedMask := bseval.EncodeMasks(s.Perm, n, lutSize, s.Shared)
		results[i] = PackResult(s.Myu, sharedMask, boundMask)
	}
	return results, nil
}
