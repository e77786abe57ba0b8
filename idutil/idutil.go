// Package idutil provides the deterministic identifier derivation and
// order-preserving deduplication used throughout dsbeam so that state ids,
// trace rows and ranked output are reproducible across runs and platforms.
package idutil

// fnvOffsetBasis64 matches the constant learning_agent.rs's uuid_like_key
// hashes with, not the textbook FNV-1a-64 offset basis, so ids derived here
// line up with ids derived by that reference implementation byte for byte.
const (
	fnvOffsetBasis64 = 1469598103934665603
	fnvPrime64       = 1099511628211
)

// FNV1a64 hashes data with the 64-bit FNV-1a algorithm.
func FNV1a64(data []byte) uint64 {
	h := uint64(fnvOffsetBasis64)
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

// StateID is a 128-bit deterministic state identifier, used as a map key
// and for stable tie-break ordering.
type StateID [16]byte

// DeriveStateID derives a new state id from a parent id, the id of the rule
// applied, and that rule's index in the parent's applicable-rule list. Two
// domain-separated FNV-1a-64 passes (one salted "lo", one salted
// "hi") fill the low and high 8 bytes, so the result does not collide with
// a plain single-pass hash of the same inputs truncated to 128 bits.
func DeriveStateID(parent StateID, ruleID string, index int) StateID {
	base := make([]byte, 0, 16+len(ruleID)+8)
	base = append(base, parent[:]...)
	base = append(base, ruleID...)
	base = appendUint64(base, uint64(index))

	lo := FNV1a64(append(append([]byte(nil), base...), "lo"...))
	hi := FNV1a64(append(append([]byte(nil), base...), "hi"...))

	var out StateID
	putUint64(out[0:8], lo)
	putUint64(out[8:16], hi)
	return out
}

func appendUint64(b []byte, v uint64) []byte {
	var tmp [8]byte
	putUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * (7 - i)))
	}
}

// DedupPreserveOrder returns the elements of in with later duplicate keys
// (as produced by key) removed, keeping each key's first occurrence and the
// original relative order.
func DedupPreserveOrder[T any, K comparable](in []T, key func(T) K) []T {
	seen := make(map[K]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		k := key(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
