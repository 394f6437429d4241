package bseval

// hashTable is the open-addressed, linear-probe table the column digitiser
// uses once a cofactor no longer fits a direct array index (nFVars >= 5).
// Ported from Abc_TtHashLookup5/Abc_TtHashLookup6: entries are hashed with
// the Jenkins one-at-a-time hash (https://en.wikipedia.org/wiki/Jenkins_hash_function)
// and reset between calls by replaying vUsed rather than zeroing the whole
// table, so reset cost is proportional to how many slots were actually
// touched, not to the table size.
type hashTable struct {
	slots  []int
	used   []int
	store  []uint64
	nWords int
}

// newHashTable allocates an empty table of the given slot count, storing
// entries of nWords 64-bit limbs each.
func newHashTable(size, nWords int) *hashTable {
	slots := make([]int, size)
	for i := range slots {
		slots[i] = -1
	}
	return &hashTable{slots: slots, nWords: nWords}
}

// reset clears every slot touched since the last reset and empties the
// entry store, in O(len(used)) rather than O(len(slots)).
func (h *hashTable) reset() {
	for _, s := range h.used {
		h.slots[s] = -1
	}
	h.used = h.used[:0]
	h.store = h.store[:0]
}

// jenkinsKey hashes the first nBytes bytes of entry (read little-endian,
// word by word) into a slot index in [0, tableSize).
func jenkinsKey(entry []uint64, nBytes, tableSize int) int {
	var hash uint32
	remaining := nBytes
	for _, w := range entry {
		n := remaining
		if n > 8 {
			n = 8
		}
		for b := 0; b < n; b++ {
			hash += uint32(byte(w >> (uint(b) * 8)))
			hash += hash << 10
			hash ^= hash >> 6
		}
		remaining -= n
		if remaining <= 0 {
			break
		}
	}
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return int(hash % uint32(tableSize))
}

func entriesEqual(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// lookup returns the index of entry (its first nBytes bytes being
// significant) within the store, inserting it on first sight. Distinct
// entries probe linearly past collisions until an empty slot or a matching
// stored entry is found.
func (h *hashTable) lookup(entry []uint64, nBytes int) int {
	key := jenkinsKeyImpl(entry, nBytes, len(h.slots))
	nWords := h.nWords
	for h.slots[key] >= 0 {
		idx := h.slots[key]
		if entriesEqual(h.store[idx*nWords:idx*nWords+nWords], entry[:nWords]) {
			return idx
		}
		key = (key + 1) % len(h.slots)
	}
	idx := len(h.store) / nWords
	h.store = append(h.store, entry[:nWords]...)
	h.slots[key] = idx
	h.used = append(h.used, key)
	return idx
}

// nextPrime returns the smallest prime >= n (n >= 2), used to size hash
// tables without hard-coding a single fixed capacity (spec.md section 9's
// open question on table sizing: scale with the digitiser's actual
// cofactor-count ceiling instead of the original's fixed 997 slots).
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
