package bseval

import "github.com/synthcore/boundset/internal/ttable"

// splitResult is the outcome of a Chase-walk bound-set search: the best
// cost found, the permutation (in terms of the caller's original variable
// labels) that places the bound set in the table's top variables, and an
// independent copy of the truth table already permuted to realize it.
type splitResult struct {
	cost int
	perm []int
	tt   []uint64
}

// bestSplit follows the Chase walk over the nVars-nCVars permutable
// variables, which visits every choice of nVars-nFVars of them as the
// bound set by one variable swap per step, evaluating cost at each
// point and tracking the best (and, for diversification, a second
// candidate sampled near a random point in the walk). tt is mutated during
// the search and restored to its original variable order before
// returning; shared selects whether cost is plain column multiplicity or
// the rail count after the best single shared-variable collapse. Ported
// from Abc_BSEvalBest.
func (e *Evaluator) bestSplit(tt []uint64, nVars, nCVars, nFVars int, shared bool, rnd *rng, jRatio int) splitResult {
	nPermVars := nVars - nCVars
	pairs := e.chasePairsFor(nPermVars, nVars-nFVars)

	plaToVar := make([]int, nVars)
	varToPla := make([]int, nVars)
	for i := range plaToVar {
		plaToVar[i] = i
		varToPla[i] = i
	}
	permBest := make([]int, nVars)
	copy(permBest, plaToVar)
	permBest2 := make([]int, nVars)
	copy(permBest2, plaToVar)

	nWords := len(tt)
	costBest := 1 << uint(nVars)
	costBest2 := 1 << uint(nVars)
	bestTT := make([]uint64, nWords)
	best2TT := make([]uint64, nWords)

	iSave := -1
	if jRatio != 0 {
		iSave = rnd.intn(len(pairs))
	}

	count := 0
	for i, pr := range pairs {
		var costThis int
		if shared {
			costThis = e.costWithBestSharing(tt, nVars, nFVars)
		} else {
			costThis = e.countDistinctCofactors(tt, nVars, nFVars)
		}

		if iSave == i {
			costBest2 = costThis
			ttable.Copy(best2TT, tt, nWords)
			copy(permBest2, plaToVar)
		}
		if costThis < costBest {
			costBest = costThis
			ttable.Copy(bestTT, tt, nWords)
			copy(permBest, plaToVar)
			count = 1
		} else if costThis == costBest {
			count++
			if rnd.intn(count) == 0 {
				ttable.Copy(bestTT, tt, nWords)
				copy(permBest, plaToVar)
			}
		}

		place0 := varToPla[pr.From]
		place1 := varToPla[pr.To]
		if place0 == place1 {
			continue
		}
		ttable.SwapVars(tt, nVars, place0, place1)
		varToPla[plaToVar[place0]] = place1
		varToPla[plaToVar[place1]] = place0
		plaToVar[place0], plaToVar[place1] = plaToVar[place1], plaToVar[place0]
	}

	for i := 0; i < nPermVars; i++ {
		place0, place1 := i, varToPla[i]
		if place0 == place1 {
			continue
		}
		ttable.SwapVars(tt, nVars, place0, place1)
		varToPla[plaToVar[place0]] = place1
		varToPla[plaToVar[place1]] = place0
		plaToVar[place0], plaToVar[place1] = plaToVar[place1], plaToVar[place0]
	}

	if jRatio != 0 && rnd.intn(jRatio) == 0 {
		costBest = costBest2
		bestTT = best2TT
		permBest = permBest2
	}

	return splitResult{cost: costBest, perm: permBest, tt: bestTT}
}

// TopSplit is the outcome of FindBVarsSVars: the minimal column
// multiplicity found (or, when a shared set was needed to meet the rail
// budget, the rail capacity 1<<rails that sharing reached), the bound-set
// mask over original variable indices, and the shared-set mask over
// *position* indices — bit nVars-lutSize+v of SharedMask means the bound
// set's v-th-from-bottom slot in the final permutation is shared back to
// the free side. Found is false if
// nothing within the rail budget exists, matching the reserved all-zero
// encoding of Abc_TtFindBVarsSVars.
type TopSplit struct {
	Myu        int
	BoundMask  uint32
	SharedMask uint32
	Found      bool
}

// EncodeMasks computes the bound-set and shared-set masks
// (Abc_BSEvalEncode) for a permutation perm (place -> original variable
// index) whose top lutSize positions hold the chosen bound set, and
// sharedThis, a bitmask over the bound set's own local slot numbering
// (bit v names the slot at position nVars-lutSize+v).
func EncodeMasks(perm []int, nVars, lutSize, sharedThis int) (boundMask, sharedMask uint32) {
	for v := 0; v < lutSize; v++ {
		boundMask |= 1 << uint(perm[nVars-lutSize+v])
	}
	for v := 0; v < lutSize; v++ {
		if (sharedThis>>uint(v))&1 != 0 {
			sharedMask |= 1 << uint(nVars-lutSize+v)
		}
	}
	return boundMask, sharedMask
}

// FindBVarsSVars is the package's top-level single-split entry point
// (Abc_TtFindBVarsSVars): it runs the plain best-split Chase walk once
// (no sharing), then, only while the column multiplicity it found still
// needs more rails than nRails allows, retries the shared-variable
// evaluator against that same best-found table for r = 1..nRails,
// stopping at the first rail count that fits. tt is mutated during the
// search and restored to its original order before returning.
func (e *Evaluator) FindBVarsSVars(tt []uint64, nVars, nCVars, nRails, lutSize int, rnd *rng, jRatio int) TopSplit {
	nFVars := nVars - lutSize
	best := e.bestSplit(tt, nVars, nCVars, nFVars, false, rnd, jRatio)

	nRailsMin := ttable.Base2Log(best.cost)
	var shared int
	for r := 1; r <= nRails && nRailsMin > nRails; r++ {
		railsNew, sh, _ := e.sharedEvalBest(best.tt, nVars, nFVars, best.cost, r, lutSize)
		shared = sh
		if railsNew < 100 {
			nRailsMin = railsNew
		}
	}
	if nRailsMin > nRails {
		return TopSplit{}
	}

	myu := best.cost
	if nRailsMin < ttable.Base2Log(best.cost) {
		myu = 1 << uint(nRailsMin)
	}
	boundMask, sharedMask := EncodeMasks(best.perm, nVars, lutSize, shared)
	return TopSplit{Myu: myu, BoundMask: boundMask, SharedMask: sharedMask, Found: true}
}

// costWithBestSharing returns the rail capacity (a power of two) of tt's
// current arrangement after allowing one shared variable, i.e. the column
// multiplicity rounded up to the smallest power of two a one-variable
// share can reach (Abc_TtGetCMPat's non-nil path). Every variable that
// qualifies saves the same single rail, so the first one checkOneShared
// finds is as good as any other.
func (e *Evaluator) costWithBestSharing(tt []uint64, nVars, nFVars int) int {
	myu, pat, _ := e.getCMPattern(tt, nVars, nFVars)
	if myu <= 2 {
		return myu
	}
	return 1 << uint(checkOneShared(pat, nVars, nFVars, myu))
}
