package bseval

// Chase's sequence pair generator (also known as Chase's twiddle algorithm,
// TAOCP 7.2.1.3 Algorithm C). It walks every T-subset of an N-element
// ground set by replacing one element at a time; each step is reported
// as a (from, to) pair whose two elements are one or two apart. Ported from
// Abc_GenChaseNext/Abc_GenChasePairs; see
// https://stackoverflow.com/questions/22650522/how-to-generate-chases-sequence
// for the derivation the original cites.

// chasePair is one step of the walk: element From leaves the current
// subset and element To joins it. Chase's sequence moves an element by
// one or two, so |From-To| is 1 or 2. bestSplit treats both as variable
// indices and swaps the places they currently occupy.
type chasePair struct {
	From, To int
}

// chaseNext advances the combination held in a (with auxiliary flag array w)
// by one step, updating the restart index r. a and w must have length at
// least r_max+2 as set up by chasePairs; this is a direct translation of
// the C twiddle step and is not meant to be called outside that context.
func chaseNext(a, w []int, r *int) {
	foundR := false
	j := *r
	for w[j] == 0 {
		b := a[j] + 1
		n := a[j+1]
		limit := n
		if w[j+1] != 0 {
			limit = n - (2 - (n & 1))
		}
		if b < limit {
			if b&1 == 0 && b+1 < n {
				b++
			}
			a[j] = b
			if !foundR {
				if j > 1 {
					*r = j - 1
				} else {
					*r = 0
				}
			}
			return
		}
		if a[j]-1 >= j {
			w[j] = 1
		} else {
			w[j] = 0
		}
		if w[j] != 0 && !foundR {
			*r = j
			foundR = true
		}
		j++
	}
	b := a[j] - 1
	if b&1 != 0 && b-1 >= j {
		b--
	}
	a[j] = b
	if b-1 >= j {
		w[j] = 1
	} else {
		w[j] = 0
	}
	if !foundR {
		*r = j
	}
}

// chasePairs enumerates the full Chase walk over T-subsets of an N-element
// ground set, returning the sequence of adjacent-transposition steps that
// carries the walk from its starting combination back through every other
// T-subset, terminated by a {0,0} sentinel pair (matching the original's
// encoding, which the caller must skip when replaying the walk).
func chasePairs(n, t int) []chasePair {
	if t < 0 || t >= n {
		panic("bseval: chasePairs requires 0 <= t < n")
	}
	size := t + 2
	a := make([]int, size)
	w := make([]int, size)
	b := make([]int, size)
	for j := 0; j <= t; j++ {
		a[j] = n - (t - j)
		w[j] = 1
	}
	r := 0
	var pairs []chasePair
	for {
		copy(b[:t+1], a[:t+1])
		chaseNext(a, w, &r)
		for z := 0; z < t; z++ {
			if a[z] == b[z] {
				continue
			}
			pairs = append(pairs, chasePair{From: b[z], To: a[z]})
			break
		}
		if a[t] != n {
			break
		}
	}
	pairs = append(pairs, chasePair{0, 0})
	return pairs
}
