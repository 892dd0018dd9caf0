package bigint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int from an external source. The
// magnitude is exactly words 32-bit words long; its top word is never zero.
func RandInt(source RandSource, words int) Int {
	if words <= 0 {
		return zeroInt
	}
	m := make(nat, words)
	for i := 0; i < words; i += 2 {
		v := source.Uint64()
		m[i] = uint32(v)
		if i+1 < words {
			m[i+1] = uint32(v >> 32)
		}
	}
	if m[words-1] == 0 {
		m[words-1] = 1
	}
	return fromNat(m, false)
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
