package digest

// OneAtATime returns Bob Jenkins' one-at-a-time hash of data.
//
// It is a fast, well-distributed 32-bit hash for lookups and
// bucketing. It is not a cryptographic digest.
func OneAtATime(data []byte) uint32 {
	var h uint32
	for _, c := range data {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// OneAtATimeString returns the one-at-a-time hash of s.
func OneAtATimeString(s string) uint32 {
	return OneAtATime([]byte(s))
}
