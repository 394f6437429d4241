package bseval

import (
	"math/bits"
	"testing"

	"github.com/synthcore/boundset/internal/ttable"
)

func TestBuildCofactorSetsByOnesGrouping(t *testing.T) {
	nVars := 4
	cs := buildCofactorSets(nVars)
	total := 1 << uint(nVars)
	for k, level := range cs.byOnes {
		for _, set := range level {
			if bits.OnesCount(uint(set.mask)) != k {
				t.Fatalf("set %v filed under level %d but has popcount %d", set, k, bits.OnesCount(uint(set.mask)))
			}
		}
	}
	count := 0
	for _, level := range cs.byOnes {
		count += len(level)
	}
	if count != total {
		t.Fatalf("expected %d total subsets across all levels, got %d", total, count)
	}
}

func TestCofactorSetSingleVariablePartitionsDomain(t *testing.T) {
	nVars := 5
	cs := buildCofactorSets(nVars)
	// find the subset {variable 0} i.e. mask = 1
	var target cofactorSet
	found := false
	for _, set := range cs.byOnes[1] {
		if set.mask == 1 {
			target = set
			found = true
			break
		}
	}
	if !found {
		t.Fatal("mask=1 not found at level 1")
	}
	neg := cs.cofs[target.start*cs.nWords : (target.start+1)*cs.nWords]
	pos := cs.cofs[(target.start+1)*cs.nWords : (target.start+2)*cs.nWords]

	total := 1 << uint(nVars)
	for i := 0; i < total; i++ {
		bit0 := i & 1
		if bit0 == 0 {
			if ttable.GetBit(neg, i) != 1 || ttable.GetBit(pos, i) != 0 {
				t.Fatalf("minterm %d: expected only the complemented pattern set", i)
			}
		} else {
			if ttable.GetBit(pos, i) != 1 || ttable.GetBit(neg, i) != 0 {
				t.Fatalf("minterm %d: expected only the uncomplemented pattern set", i)
			}
		}
	}
}

func TestCountUniqueMaxRejectsOverCap(t *testing.T) {
	nVars := 4
	cs := buildCofactorSets(nVars)
	// Two cluster patterns covering disjoint halves of the domain.
	total := 1 << uint(nVars)
	a := ttable.New(nVars)
	b := ttable.New(nVars)
	for i := 0; i < total; i++ {
		if i%2 == 0 {
			ttable.SetBit(a, i)
		} else {
			ttable.SetBit(b, i)
		}
	}
	pISets := append(append([]uint64{}, a...), b...)

	// mask = 0 (empty subset): its single minterm pattern is all-ones, so
	// both clusters intersect it -> countUnique = 2.
	var empty cofactorSet
	for _, set := range cs.byOnes[0] {
		if set.mask == 0 {
			empty = set
		}
	}
	got := countUniqueMax(pISets, 2, cs.nWords, cs.cofs[empty.start*cs.nWords:(empty.start+1)*cs.nWords], 0, 1)
	if got != 0 {
		t.Fatalf("expected 0 (cap exceeded) when both clusters intersect, got %d", got)
	}
	gotOK := countUniqueMax(pISets, 2, cs.nWords, cs.cofs[empty.start*cs.nWords:(empty.start+1)*cs.nWords], 0, 2)
	if gotOK != 2 {
		t.Fatalf("expected 2 when cap allows it, got %d", gotOK)
	}
}
