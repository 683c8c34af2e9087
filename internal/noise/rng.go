package noise

// Rng is a Mulberry32 counter-based generator. Two instances built from the
// same seed produce identical sequences call-for-call, on every platform.
type Rng struct {
	state uint32
}

// NewRng creates a deterministic generator from a 32-bit seed.
func NewRng(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Float returns the next value in [0, 1).
func (r *Rng) Float() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}
