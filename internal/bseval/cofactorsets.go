package bseval

import (
	"math/bits"

	"github.com/synthcore/boundset/internal/ttable"
)

// cofactorSet is one candidate shared-variable subset: mask names which of
// the bound set's nVars local variables it covers, start is the offset (in
// units of nWords entries) of its 2^popcount(mask) minterm patterns inside
// the owning cofactorSets.cofs table.
type cofactorSet struct {
	mask, start int
}

// cofactorSets holds, for a bound set of nVars local variables, the
// minterm pattern of every subset of those variables under every
// assignment, grouped by subset size. It is the table
// Abc_BSEvalCreateCofactorSets builds: for each subset iSet of the bound
// set's variables and each of its 2^|iSet| possible assignments, the
// indicator bitmask (over the bound set's own 2^nVars-point domain) of the
// minterms matching that assignment. The shared-variable search
// (shared.go) uses these to test whether moving iSet out of the bound set
// keeps every cofactor cluster small.
type cofactorSets struct {
	nVars  int
	nWords int
	cofs   []uint64
	byOnes [][]cofactorSet
}

// buildCofactorSets builds the full table for a bound set of nVars local
// variables (Abc_BSEvalCreateCofactorSets / Abc_BSEvalCreateCofs).
func buildCofactorSets(nVars int) *cofactorSets {
	nWords := ttable.WordNum(nVars)
	elems := ttable.Elem(nVars)
	cs := &cofactorSets{nVars: nVars, nWords: nWords, byOnes: make([][]cofactorSet, nVars+1)}
	nMints := 1 << uint(nVars)
	for m := 0; m < nMints; m++ {
		nOnes := bits.OnesCount(uint(m))
		start := len(cs.cofs) / nWords
		cs.byOnes[nOnes] = append(cs.byOnes[nOnes], cofactorSet{mask: m, start: start})
		cs.appendCofs(m, elems)
	}
	return cs
}

// appendCofs appends the 2^popcount(iSet) minterm patterns for subset iSet
// to cs.cofs: for each assignment m to the variables named by iSet, the
// AND of each variable's elementary truth table (complemented where m's
// corresponding bit is 0).
func (cs *cofactorSets) appendCofs(iSet int, elems [][]uint64) {
	var used []int
	for i := 0; i < cs.nVars; i++ {
		if (iSet>>uint(i))&1 != 0 {
			used = append(used, i)
		}
	}
	count := 1 << uint(len(used))
	base := len(cs.cofs)
	for i := 0; i < count*cs.nWords; i++ {
		cs.cofs = append(cs.cofs, ^uint64(0))
	}
	for m := 0; m < count; m++ {
		entry := cs.cofs[base+m*cs.nWords : base+(m+1)*cs.nWords]
		for i, v := range used {
			compl := (m>>uint(i))&1 == 0
			ttable.AndSharp(entry, entry, elems[v], cs.nWords, compl)
		}
	}
}

// countUnique counts how many of the nISets cluster patterns (each
// nWords words, starting at pISets) intersect the single minterm pattern
// pCof (Abc_BSEvalCountUnique).
func countUnique(pISets []uint64, nISets, nWords int, pCof []uint64) int {
	count := 0
	for i := 0; i < nISets; i++ {
		if ttable.Intersect(pISets[i*nWords:(i+1)*nWords], pCof, nWords, false) {
			count++
		}
	}
	return count
}

// countUniqueMax returns the largest, over every assignment of a
// popcount-nOnes shared-variable candidate, of how many of the nISets
// clusters that assignment's minterm pattern touches, or 0 as soon as any
// assignment would exceed the nISetsMaxHave cap (Abc_BSEvalCountUniqueMax):
// a cap violation means this candidate cannot deliver the target rail
// count, so the caller should move on without finishing the scan.
func countUniqueMax(pISets []uint64, nISets, nWords int, pCofs []uint64, nOnes, nISetsMaxHave int) int {
	nMints := 1 << uint(nOnes)
	countMax := 0
	for m := 0; m < nMints; m++ {
		count := countUnique(pISets, nISets, nWords, pCofs[m*nWords:(m+1)*nWords])
		if count > nISetsMaxHave {
			return 0
		}
		if count > countMax {
			countMax = count
		}
	}
	return countMax
}
