package bseval

import "github.com/synthcore/boundset/internal/ttable"

// checkOneShared tests whether any single variable of a bound set can be
// pulled into the shared set and still keep every one of nMyu cofactor
// clusters within half the current rail capacity, in which case the real
// rail requirement drops by one (Abc_TtCheck1Shared). pat holds nMyu
// single-word cluster patterns over a domain of nVars-nFVars variables;
// every call site keeps that domain small enough to fit one 64-bit word.
// A bound-set variable only qualifies when BOTH its polarities stay
// within the cap — checking one polarity alone would let a variable
// "pass" by only ever observing clusters from its other half.
func checkOneShared(pat []uint64, nVars, nFVars, nMyu int) int {
	if nMyu <= 2 {
		panic("bseval: checkOneShared requires nMyu > 2")
	}
	domain := nVars - nFVars
	if ttable.WordNum(domain) != 1 {
		panic("bseval: checkOneShared requires a single-word domain")
	}
	nRails := ttable.Base2Log(nMyu)
	myuMax := 1 << uint(nRails-1)
	elems := ttable.Elem(domain)
	for v := 0; v < domain; v++ {
		qualifies := true
		for polarity := 0; polarity < 2; polarity++ {
			lit := elems[v][0]
			if polarity == 0 {
				lit = ^lit
			}
			count := 0
			within := true
			for m := 0; m < nMyu; m++ {
				if lit&pat[m] != 0 {
					count++
					if count > myuMax {
						within = false
						break
					}
				}
			}
			if !within {
				qualifies = false
				break
			}
		}
		if qualifies {
			return nRails - 1
		}
	}
	return nRails
}

// sharedEvalBest searches the candidate shared-variable subsets of a
// bound set of boundSize local variables, smallest first, for the one
// that collapses tt's cofactor clusters into at most 1<<targetRails
// distinct patterns, returning the best rail count achieved along with
// the winning subset mask and its size (Abc_SharedEvalBest). 100 is
// returned, with setShared/setSize left at zero, if no subset reaches
// targetRails.
func (e *Evaluator) sharedEvalBest(tt []uint64, nVars, nFVars, myuMin, targetRails, boundSize int) (railsMin, setShared, setSize int) {
	domain := nVars - nFVars
	myu, pat, nWordsBS := e.getCMPattern(tt, nVars, nFVars)
	if myu != myuMin {
		panic("bseval: sharedEvalBest called with a stale myuMin")
	}
	cs := e.cofactorSetsFor(boundSize)
	nSharedMax := domain - targetRails
	railsMin = 100
	capMax := 1 << uint(targetRails)
	for nOnes := 1; nOnes <= nSharedMax; nOnes++ {
		for _, set := range cs.byOnes[nOnes] {
			myuCur := countUniqueMax(pat, myu, nWordsBS, cs.cofs[set.start*cs.nWords:], nOnes, capMax)
			if myuCur == 0 || myuCur > capMax {
				continue
			}
			railsCur := ttable.Base2Log(myuCur)
			if railsCur > targetRails {
				continue
			}
			if railsMin > railsCur {
				railsMin = railsCur
				setShared = set.mask
				setSize = nOnes
			}
		}
		if railsMin <= targetRails {
			break
		}
	}
	return railsMin, setShared, setSize
}
