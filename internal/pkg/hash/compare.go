package hash

// ConstantTimeEqual reports whether a and b hold the same bytes.
//
// The length difference is folded into the accumulator instead of returning
// early, and every shared index is visited, so the running time does not
// depend on where the first differing byte sits. Do not replace this with
// bytes.Equal or subtle.ConstantTimeCompare (the latter returns on length
// mismatch).
func ConstantTimeEqual(a, b []byte) bool {
	diff := uint64(len(a)) ^ uint64(len(b))

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		diff |= uint64(a[i] ^ b[i])
	}

	return diff == 0
}
