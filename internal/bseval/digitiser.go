package bseval

import "github.com/synthcore/boundset/internal/ttable"

// countDistinctCofactors returns the column multiplicity of tt (an
// nVars-variable truth table): the number of distinct cofactors obtained
// by holding the lowest nFVars variables as the free set and ranging the
// remaining (upper) nVars-nFVars variables over every bound assignment. nFVars
// selects the digit-width strategy exactly as the
// Abc_TtGetCM1/2/3/4/5/6 family did: small fixed arrays for 2- and 4-bit
// digits, a reset-by-used-list counts array for 8- and 16-bit digits, and
// a hash table once a digit no longer fits a directly addressed array.
// CountDistinctCofactors is the exported form of countDistinctCofactors,
// for callers (such as internal/report) that need a one-shot column
// multiplicity without running a permutation search.
func (e *Evaluator) CountDistinctCofactors(tt []uint64, nVars, nFVars int) int {
	return e.countDistinctCofactors(tt, nVars, nFVars)
}

func (e *Evaluator) countDistinctCofactors(tt []uint64, nVars, nFVars int) int {
	if nFVars < 1 || nFVars >= nVars {
		panic("bseval: countDistinctCofactors requires 1 <= nFVars < nVars")
	}
	switch {
	case nFVars == 1:
		return countSmallDigits(tt, nVars, 1)
	case nFVars == 2:
		return countSmallDigits(tt, nVars, 2)
	case nFVars == 3, nFVars == 4:
		return e.countMediumDigits(tt, nVars, nFVars)
	case nFVars == 5:
		return e.countHashedDigits32(tt, nVars)
	default:
		return e.countHashedBlocks(tt, nVars, nFVars)
	}
}

// countSmallDigits handles nFVars in {1,2}: digit values fit in 2 or 4
// bits, so a fixed 4- or 16-entry seen-array is cheaper than a hash table.
func countSmallDigits(tt []uint64, nVars, widthLog2 int) int {
	var seen [16]bool
	nDigits := 1 << uint(nVars-widthLog2)
	res := 0
	for i := 0; i < nDigits; i++ {
		d := ttable.GetDigit(tt, i, widthLog2)
		if !seen[d] {
			seen[d] = true
			res++
		}
	}
	return res
}

// countMediumDigits handles nFVars in {3,4}: digit values span 256 or
// 65536 possibilities, too many to re-zero a seen-array on every call, so
// it reuses e.counts with reset-by-used-list (only the touched entries are
// restored to the -1 sentinel afterward).
func (e *Evaluator) countMediumDigits(tt []uint64, nVars, nFVars int) int {
	nDigits := 1 << uint(nVars-nFVars)
	used := e.usedScratch[:0]
	for i := 0; i < nDigits; i++ {
		d := int(ttable.GetDigit(tt, i, nFVars))
		if e.counts[d] == 1 {
			continue
		}
		e.counts[d] = 1
		used = append(used, d)
	}
	for _, d := range used {
		e.counts[d] = -1
	}
	e.usedScratch = used
	return len(used)
}

// countHashedDigits32 handles nFVars == 5: digits are full 32-bit values,
// addressed via the Jenkins-hashed open addressing table.
func (e *Evaluator) countHashedDigits32(tt []uint64, nVars int) int {
	nDigits := 1 << uint(nVars-5)
	table := e.ensureTable(1, nDigits)
	for i := 0; i < nDigits; i++ {
		d := ttable.GetDigit(tt, i, 5)
		table.lookup([]uint64{uint64(d)}, 4)
	}
	return len(table.used)
}

// countHashedBlocks handles nFVars >= 6: digits are nWords-word blocks of
// the truth table, hashed and deduplicated the same way.
func (e *Evaluator) countHashedBlocks(tt []uint64, nVars, nFVars int) int {
	nDigits := 1 << uint(nVars-nFVars)
	nWords := 1 << uint(nFVars-6)
	table := e.ensureTable(nWords, nDigits)
	for i := 0; i < nDigits; i++ {
		block := tt[i*nWords : (i+1)*nWords]
		table.lookup(block, 8*nWords)
	}
	return len(table.used)
}

// getCMPattern computes the column multiplicity like countDistinctCofactors
// but additionally records, for each distinct cofactor cluster, the set of
// bound-assignment indices that produced it as a bitmask over the
// nVars-nFVars-bit bound-assignment domain. This is what the
// shared-variable search needs (Abc_TtGetCMInt's pPat output) to test
// whether a single extra shared variable keeps every cluster small. The
// returned pat slice is owned by e and invalidated by the next call into
// e.
func (e *Evaluator) getCMPattern(tt []uint64, nVars, nFVars int) (myu int, pat []uint64, nWordsBS int) {
	if nFVars < 1 || nFVars >= nVars {
		panic("bseval: getCMPattern requires 1 <= nFVars < nVars")
	}
	nDigits := 1 << uint(nVars-nFVars)
	nWordsBS = ttable.WordNum(nVars - nFVars)
	pat = e.ensurePat(nDigits * nWordsBS)

	if nFVars < 6 {
		table := e.ensureTable(1, nDigits)
		for i := 0; i < nDigits; i++ {
			d := uint64(ttable.GetDigit(tt, i, nFVars))
			cluster := table.lookup([]uint64{d}, 4)
			ttable.SetBit(pat[cluster*nWordsBS:(cluster+1)*nWordsBS], i)
		}
		return len(table.used), pat, nWordsBS
	}

	nWords := 1 << uint(nFVars-6)
	table := e.ensureTable(nWords, nDigits)
	for i := 0; i < nDigits; i++ {
		block := tt[i*nWords : (i+1)*nWords]
		cluster := table.lookup(block, 8*nWords)
		ttable.SetBit(pat[cluster*nWordsBS:(cluster+1)*nWordsBS], i)
	}
	return len(table.used), pat, nWordsBS
}
