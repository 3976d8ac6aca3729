package valuation

// Seed turns an ordered set of string identifiers into a stable numeric seed.
// Logic: sum the Unicode code points of the concatenation of all parts.
// Order-sensitive ("AB" and "BA" differ only when the parts differ), always
// non-negative, and identical across processes: no hashing library, no
// randomness, no state.
func Seed(parts ...string) int {
	sum := 0
	for _, part := range parts {
		for _, r := range part {
			sum += int(r)
		}
	}
	return sum
}

// Derive maps a seed onto a bounded pseudo-value:
//
//	offset + ((seed * multiplier) mod modulus)
//
// The result lies in [offset, offset+modulus) for any non-negative seed and
// positive modulus. Distinct multipliers decorrelate the values derived from
// one seed.
func Derive(seed, multiplier, modulus, offset int) int {
	return offset + (seed*multiplier)%modulus
}
