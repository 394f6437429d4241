// Package report implements the verbose, human-readable diagnostics the
// original evaluator's test entry points print: the truth table in hex,
// the bound-set and shared-set masks of the split a search settled on, and
// column-multiplicity /
// rail-count distribution histograms over a batch of random functions.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/synthcore/boundset/internal/bseval"
	"github.com/synthcore/boundset/internal/ttable"
)

// hex renders a packed truth table of nVars variables as a hex string,
// most-significant nibble first (Extra_PrintHex).
func hex(tt []uint64, nVars int) string {
	nBits := 1 << uint(nVars)
	nHex := (nBits + 3) / 4
	if nHex == 0 {
		nHex = 1
	}
	digits := make([]byte, nHex)
	for d := 0; d < nHex; d++ {
		lo := d * 4
		var nibble uint64
		for b := 0; b < 4 && lo+b < nBits; b++ {
			if ttable.GetBit(tt, lo+b) != 0 {
				nibble |= 1 << uint(b)
			}
		}
		digits[nHex-1-d] = "0123456789abcdef"[nibble]
	}
	return string(digits)
}

// OneTest prints the column multiplicity a single function achieves for a
// bound-set size of nVars-nFVars, without any search over permutations:
// the function as given is cofactored exactly as laid out (Abc_BSEvalOneTest).
func OneTest(w io.Writer, e *bseval.Evaluator, tt []uint64, nVars, nFVars int) {
	work := make([]uint64, len(tt))
	ttable.Copy(work, tt, len(tt))
	myu := e.CountDistinctCofactors(work, nVars, nFVars)
	fmt.Fprintf(w, "Function: %s\n", hex(tt, nVars))
	fmt.Fprintf(w, "The column multiplicity of the %d-var function with bound-set size %d is %d.\n",
		nVars, nVars-nFVars, myu)
}

// BestTest runs the best-split search over a function and prints the
// minimum it found, the original table, and the bound-set and shared-set
// masks of the split that realizes it (Abc_BSEvalBestTest). With shared
// set, the minimum is printed as a rail count (ceil(log2) of the column
// multiplicity) instead of the multiplicity itself.
func BestTest(w io.Writer, e *bseval.Evaluator, tt []uint64, nVars, lutSize int, shared bool, seed uint32) {
	work := make([]uint64, len(tt))
	ttable.Copy(work, tt, len(tt))

	split := e.FindBVarsSVars(work, nVars, 0, nVars, lutSize, bseval.NewRNG(seed), 0)

	label := "column multiplicity"
	value := split.Myu
	if shared {
		label = "number of rails"
		value = ttable.Base2Log(split.Myu)
	}
	fmt.Fprintf(w, "The minimum %s of the %d-var function with bound-set size %d is %d.\n",
		label, nVars, lutSize, value)
	fmt.Fprintf(w, "Original: %s\n", hex(tt, nVars))
	fmt.Fprintf(w, "Bound mask: %0*b  Shared mask: %0*b\n", nVars, split.BoundMask, nVars, split.SharedMask)
}

// BestGen generates nFuncs random nVars-variable functions, runs the
// best-split search at bound-set size lutSize against each, and prints a
// histogram of the column multiplicities (and, derived from them, the
// rail counts) found across the batch (Abc_BSEvalBestGen).
func BestGen(w io.Writer, e *bseval.Evaluator, nVars, lutSize, nFuncs int, seed uint32, verbose bool) {
	rnd := bseval.NewRNG(seed)
	myuCounts := make(map[int]int)
	railCounts := make(map[int]int)

	for i := 0; i < nFuncs; i++ {
		fn := bseval.RandomTT(rnd, nVars)
		split := e.FindBVarsSVars(fn, nVars, 0, nVars, lutSize, rnd, 0)
		myu := split.Myu
		if verbose {
			fmt.Fprintf(w, "Function %5d has truth table: %s  Myu = %d\n", i, hex(fn, nVars), myu)
		}
		myuCounts[myu]++
		railCounts[ttable.Base2Log(myu)]++
	}

	fmt.Fprintf(w, "Generated %d random %d-var functions.\n", nFuncs, nVars)
	fmt.Fprintf(w, "Distribution of the minimum column multiplicity for bound-set size %d:\n", lutSize)
	printHistogram(w, myuCounts, nFuncs)
	fmt.Fprintf(w, "Distribution of the minimum number of rails for bound-set size %d:\n", lutSize)
	printHistogram(w, railCounts, nFuncs)
}

func printHistogram(w io.Writer, counts map[int]int, total int) {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		c := counts[k]
		fmt.Fprintf(w, "%d=%d (%.2f %%)  ", k, c, 100*float64(c)/float64(total))
	}
	fmt.Fprintln(w)
}
