package bseval

import (
	"sort"

	"github.com/synthcore/boundset/internal/ttable"
)

// boundCandidate is one sampled subset of variables considered as a bound
// set, together with the column multiplicity it achieves once its
// variables are moved into bound-set position.
type boundCandidate struct {
	vars []int
	myu  int
}

// SampledResult is one candidate split found by the sampled search: the
// permutation (place -> original variable index) that realizes it, the
// column multiplicity (already collapsed to a rail-count power of two if
// a shared variable helped), and the shared-variable subset if any.
type SampledResult struct {
	Perm    []int
	Myu     int
	Shared  int
	SetSize int
}

// naturalRange returns [0, 1, ..., n-1].
func naturalRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// sampleSubsets draws nSubsets random subsetSize-element subsets of vars,
// each built by repeatedly picking a uniformly random entry of vars until
// subsetSize distinct ones are collected (Abc_BSFind).
func sampleSubsets(vars []int, subsetSize, nSubsets int, rnd *rng) [][]int {
	if len(vars) <= subsetSize {
		panic("bseval: sampleSubsets requires more candidate variables than the subset size")
	}
	out := make([][]int, nSubsets)
	for s := 0; s < nSubsets; s++ {
		seen := make(map[int]bool, subsetSize)
		subset := make([]int, 0, subsetSize)
		for len(subset) < subsetSize {
			v := vars[rnd.intn(len(vars))]
			if seen[v] {
				continue
			}
			seen[v] = true
			subset = append(subset, v)
		}
		out[s] = subset
	}
	return out
}

// nextCandidateVars collects the distinct variables used by the best
// nBest (already myu-sorted) candidates, refining the pool the next
// sampling round draws from (Abc_BSFindNextVars).
func nextCandidateVars(sorted []boundCandidate, nBest int) []int {
	if nBest > len(sorted) {
		nBest = len(sorted)
	}
	seen := make(map[int]bool)
	var out []int
	for _, c := range sorted[:nBest] {
		for _, v := range c.vars {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// evalBoundCandidates moves each candidate's variables into bound-set
// position, one candidate after another without ever resetting the
// running permutation in between, and records the column multiplicity
// each reaches. tt is restored to its original variable order once every
// candidate has been evaluated (Abc_BSEvalSet).
func (e *Evaluator) evalBoundCandidates(tt []uint64, nVars, nFVars int, candidates [][]int) []boundCandidate {
	plaToVar := make([]int, nVars)
	varToPla := make([]int, nVars)
	for i := range plaToVar {
		plaToVar[i] = i
		varToPla[i] = i
	}
	out := make([]boundCandidate, len(candidates))
	for i, subset := range candidates {
		for k := len(subset) - 1; k >= 0; k-- {
			ttable.MoveVar(tt, nVars, plaToVar, varToPla, subset[k], nFVars+k)
		}
		myu := e.countDistinctCofactors(tt, nVars, nFVars)
		out[i] = boundCandidate{vars: append([]int{}, subset...), myu: myu}
	}
	for i := 0; i < nVars; i++ {
		ttable.MoveVar(tt, nVars, plaToVar, varToPla, i, i)
	}
	return out
}

// refineSampledCandidates runs the three-round sampled bound-set search:
// the first round samples subsets from every non-control variable (the
// variables at indices below nVars-nCVars); every later round narrows the
// candidate pool down to the variables used by the previous round's
// nBest-best subsets, stopping early once that pool can no longer supply
// a fresh subset (Abc_TtFindBVars3).
func (e *Evaluator) refineSampledCandidates(tt []uint64, nVars, nCVars, lutSize, nSubsets, nBest int, rnd *rng) []boundCandidate {
	nFVars := nVars - lutSize
	subsetSize := lutSize - nCVars
	vars := naturalRange(nVars - nCVars)

	var all []boundCandidate
	for iter := 0; iter < 3; iter++ {
		if len(vars) <= subsetSize {
			break
		}
		subsets := sampleSubsets(vars, subsetSize, nSubsets, rnd)
		round := e.evalBoundCandidates(tt, nVars, nFVars, subsets)
		sort.Slice(round, func(i, j int) bool { return round[i].myu < round[j].myu })
		all = append(all, round...)
		vars = nextCandidateVars(round, nBest)
	}
	return all
}

// SampledSearch falls back to randomly sampled, iteratively refined
// bound-set candidates when a full Chase walk over every permutation of
// nVars-nCVars variables is too large to enumerate: it draws nSubsets
// candidate bound sets per round over three refinement rounds, then walks
// the best nBest of everything found (by column multiplicity) evaluating
// the shared-set improvement at each, and returns every split tied with
// the best one reached (smallest column multiplicity, then smallest
// shared set). It returns nil if nothing found
// meets the nRails budget. nMyuIncrease widens the window of "near-best"
// column multiplicities considered for the shared-set pass, matching
// marginal candidates a strict best-only cutoff would discard
// (Abc_TtFindBVarsSVars2).
func (e *Evaluator) SampledSearch(tt []uint64, nVars, nCVars, nRails, lutSize, nMyuIncrease, nSubsets, nBest int, rnd *rng) []SampledResult {
	nFVars := nVars - lutSize
	candidates := e.refineSampledCandidates(tt, nVars, nCVars, lutSize, nSubsets, nBest, rnd)
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].myu < candidates[j].myu })
	if nBest < len(candidates) {
		candidates = candidates[:nBest]
	}

	plaToVar := make([]int, nVars)
	varToPla := make([]int, nVars)
	for i := range plaToVar {
		plaToVar[i] = i
		varToPla[i] = i
	}

	myuOrigBest := 1 << uint(nVars)
	myuBest := 1 << uint(nVars)
	setSizeBest := nVars
	var results []SampledResult

	for _, cand := range candidates {
		for k := len(cand.vars) - 1; k >= 0; k-- {
			ttable.MoveVar(tt, nVars, plaToVar, varToPla, cand.vars[k], nFVars+k)
		}
		myuThis := cand.myu
		if myuThis < myuOrigBest {
			myuOrigBest = myuThis
		}
		if myuThis > myuOrigBest+nMyuIncrease {
			continue
		}

		shared, setSize := 0, 0
		if myuThis > 2 {
			railsMin := 100
			for r := 1; r <= nRails && railsMin > r; r++ {
				rails, sh, sz := e.sharedEvalBest(tt, nVars, nFVars, myuThis, r, lutSize)
				if rails < 100 {
					railsMin = rails
					shared, setSize = sh, sz
				}
			}
			if railsMin <= nRails {
				myuThis = 1 << uint(railsMin)
			} else {
				shared, setSize = 0, 0
			}
		}

		if myuBest > myuThis || (myuBest == myuThis && setSizeBest >= setSize) {
			tie := myuBest == myuThis && setSizeBest == setSize
			myuBest = myuThis
			setSizeBest = setSize
			perm := append([]int{}, plaToVar...)
			res := SampledResult{Perm: perm, Myu: myuBest, Shared: shared, SetSize: setSize}
			if tie {
				results = append(results, res)
			} else {
				results = []SampledResult{res}
			}
		}
	}

	for i := 0; i < nVars-nCVars; i++ {
		ttable.MoveVar(tt, nVars, plaToVar, varToPla, i, i)
	}

	if myuBest > 1<<uint(nRails) {
		return nil
	}
	return results
}
