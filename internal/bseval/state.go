// Package bseval implements the bound-set column-multiplicity evaluator:
// given a Boolean function's truth table, it searches variable
// permutations for a split into a bound set and a free set that minimizes
// the number of distinct cofactors (the column multiplicity), optionally
// allowing bound-set variables to be shared with the free set to save
// rails.
package bseval

const maxVars = 24

// MaxVars is the largest function size (in variables) this package's
// scratch buffers are sized for (spec.md §7's nVars <= 24 assertion).
const MaxVars = maxVars

// Evaluator holds the reusable scratch state behind every search in this
// package (Abc_BSEval_t in the source this was ported from): Chase-pair
// walks, the cofactor-counting hash table, and cofactor-set tables are all
// built lazily and cached across calls instead of being allocated fresh
// each time, the same way the teacher's internal/celt.Decoder carries
// scratch buffers across DecodeFrame calls.
type Evaluator struct {
	nVars, nLVars, nBVars int

	pairs map[[2]int][]chasePair

	counts      []int // shared scratch for the nFVars in {3,4} digitiser path
	usedScratch []int

	table *hashTable
	pat   []uint64

	cofSets map[int]*cofactorSets
}

// NewEvaluator allocates an Evaluator with its scratch buffers sized for
// truth tables of up to maxVars variables.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		pairs:   make(map[[2]int][]chasePair),
		counts:  newFullIntSlice(1 << 16),
		cofSets: make(map[int]*cofactorSets),
	}
}

func newFullIntSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = -1
	}
	return s
}

// chasePairsFor returns, building and caching on first use, the Chase walk
// over T-subsets of an N-element ground set.
func (e *Evaluator) chasePairsFor(n, t int) []chasePair {
	key := [2]int{n, t}
	if p, ok := e.pairs[key]; ok {
		return p
	}
	p := chasePairs(n, t)
	e.pairs[key] = p
	return p
}

// ensureTable returns a hash table sized for minEntries insertions of
// nWords-limb entries, recreating it only when its shape no longer fits
// and otherwise resetting it for reuse.
func (e *Evaluator) ensureTable(nWords, minEntries int) *hashTable {
	size := nextPrime(2 * minEntries)
	if e.table == nil || e.table.nWords != nWords || len(e.table.slots) < size {
		e.table = newHashTable(size, nWords)
		return e.table
	}
	e.table.reset()
	return e.table
}

// ensurePat returns the pattern scratch buffer grown to at least n words
// and zeroed.
func (e *Evaluator) ensurePat(n int) []uint64 {
	if cap(e.pat) < n {
		e.pat = make([]uint64, n)
	} else {
		e.pat = e.pat[:n]
		for i := range e.pat {
			e.pat[i] = 0
		}
	}
	return e.pat
}

// cofactorSetsFor returns, building and caching on first use, the
// cofactor-set tables for a bound set of the given size.
func (e *Evaluator) cofactorSetsFor(boundSize int) *cofactorSets {
	if cs, ok := e.cofSets[boundSize]; ok {
		return cs
	}
	cs := buildCofactorSets(boundSize)
	e.cofSets[boundSize] = cs
	return cs
}
