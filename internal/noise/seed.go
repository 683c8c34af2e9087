package noise

import (
	"math"
	"strconv"
)

const (
	fnvBasis uint32 = 2166136261
	fnvPrime uint32 = 16777619

	// DefaultSeedText is used when no seed is supplied.
	DefaultSeedText = "default"
)

// Fnv1a hashes data with 32-bit FNV-1a.
func Fnv1a(data []byte) uint32 {
	h := fnvBasis
	for _, b := range data {
		h ^= uint32(b)
		h *= fnvPrime
	}
	return h
}

// NormalizeSeed maps an arbitrary seed string to its canonical 32-bit form.
// Strings that parse as finite numbers are truncated toward zero and reduced
// modulo 2^32; everything else is hashed with FNV-1a. Every input has a
// defined output; an empty string falls back to DefaultSeedText.
func NormalizeSeed(raw string) uint32 {
	if raw == "" {
		raw = DefaultSeedText
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return truncUint32(v)
	}
	return Fnv1a([]byte(raw))
}

// truncUint32 reduces a finite float to its unsigned 32-bit representation,
// wrapping negatives two's-complement style.
func truncUint32(v float64) uint32 {
	t := math.Trunc(v)
	m := math.Mod(t, 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}
