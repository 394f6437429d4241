package bseval

import "golang.org/x/sys/cpu"

// jenkinsKeyImpl is the active Jenkins-hash key function for nFVars>=6
// block entries (Abc_TtGetCM6/Abc_TtHashLookup6's hot path). It is
// dispatched once at init time based on detected CPU features, the same
// shape as the teacher's internal/celt/imdct_amd64.go assigning
// imdctPreRotateF32Impl/imdctPostRotateF32Impl from an AVX2 check: a
// package-level function variable, not a build-tag-separated assembly file,
// since no asm kernel is being ported here.
var jenkinsKeyImpl = jenkinsKey

func init() {
	if cpu.X86.HasAVX2 {
		jenkinsKeyImpl = jenkinsKeyUnrolled4
	}
}

// jenkinsKeyUnrolled4 computes the same Jenkins one-at-a-time hash as
// jenkinsKey but walks entry four bytes at a time per inner step, the
// pure-Go analogue of the teacher's AVX2-widened accumulation loop: wider
// strides through the same data, identical arithmetic and result.
func jenkinsKeyUnrolled4(entry []uint64, nBytes, tableSize int) int {
	var hash uint32
	remaining := nBytes
	for _, w := range entry {
		n := remaining
		if n > 8 {
			n = 8
		}
		b := 0
		for ; b+4 <= n; b += 4 {
			chunk := uint32(w >> uint(b*8))
			hash += chunk & 0xFF
			hash += hash << 10
			hash ^= hash >> 6
			hash += (chunk >> 8) & 0xFF
			hash += hash << 10
			hash ^= hash >> 6
			hash += (chunk >> 16) & 0xFF
			hash += hash << 10
			hash ^= hash >> 6
			hash += (chunk >> 24) & 0xFF
			hash += hash << 10
			hash ^= hash >> 6
		}
		for ; b < n; b++ {
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
