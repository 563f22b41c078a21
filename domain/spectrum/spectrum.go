package spectrum

// Counts holds per-bin event counts of an observed or unfolded histogram.
// The slice index is the bin index.
type Counts []float64

// FromInts converts raw integer event counts per bin.
func FromInts(raw []int) Counts {
	c := make(Counts, len(raw))
	for i, v := range raw {
		c[i] = float64(v)
	}
	return c
}

// Total returns the summed event count over all bins.
func (c Counts) Total() float64 {
	total := 0.0
	for _, v := range c {
		total += v
	}
	return total
}

// NonNegative reports whether every bin holds a physical (>= 0) count.
func (c Counts) NonNegative() bool {
	for _, v := range c {
		if v < 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	copy(out, c)
	return out
}
