package bseval

import "testing"

func binom(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}
	return res
}

// replaySubsets walks chasePairs(n, t) starting from the initial combination
// {n-t, ..., n-1} and returns every combination visited, as sorted-key
// strings, by applying each (from, to) step as "replace from with to".
func replaySubsets(n, t int) []string {
	combo := make(map[int]bool, t)
	for v := n - t; v < n; v++ {
		combo[v] = true
	}
	key := func(c map[int]bool) string {
		bits := make([]byte, n)
		for v := 0; v < n; v++ {
			if c[v] {
				bits[v] = '1'
			} else {
				bits[v] = '0'
			}
		}
		return string(bits)
	}
	seen := []string{key(combo)}
	for _, pr := range chasePairs(n, t) {
		if pr.From == 0 && pr.To == 0 {
			break
		}
		delete(combo, pr.From)
		combo[pr.To] = true
		seen = append(seen, key(combo))
	}
	return seen
}

func TestChasePairsCoverage(t *testing.T) {
	cases := []struct{ n, k int }{
		{4, 1}, {4, 2}, {5, 2}, {6, 3}, {7, 2}, {8, 4},
	}
	for _, c := range cases {
		subsets := replaySubsets(c.n, c.k)
		want := binom(c.n, c.k)
		if len(subsets) != want {
			t.Errorf("n=%d k=%d: visited %d combinations, want C(%d,%d)=%d",
				c.n, c.k, len(subsets), c.n, c.k, want)
			continue
		}
		uniq := make(map[string]bool, len(subsets))
		for _, s := range subsets {
			uniq[s] = true
		}
		if len(uniq) != want {
			t.Errorf("n=%d k=%d: only %d distinct combinations out of %d visits",
				c.n, c.k, len(uniq), len(subsets))
		}
	}
}

func TestChasePairsHasNoNoOpSteps(t *testing.T) {
	n, k := 6, 3
	pairs := chasePairs(n, k)
	for i, pr := range pairs {
		if pr.From == 0 && pr.To == 0 && i == len(pairs)-1 {
			break
		}
		if pr.From == pr.To {
			t.Fatalf("step %d is a no-op pair %v", i, pr)
		}
	}
}

func TestChasePairsTerminatesWithSentinel(t *testing.T) {
	pairs := chasePairs(5, 2)
	last := pairs[len(pairs)-1]
	if last.From != 0 || last.To != 0 {
		t.Fatalf("expected trailing sentinel {0,0}, got %v", last)
	}
}
