package bigint

// Mul returns the product x * y.
func (x Int) Mul(y Int) Int {
	neg := x.neg() != y.neg()
	return fromNat(karatsuba(x.abs(), y.abs()), neg)
}

func karatsubaThreshold() int {
	// Below 4 words the (hi+lo) sums can be as long as the operands and the
	// recursion would not terminate.
	if KaratsubaThreshold < 4 {
		return 4
	}
	return KaratsubaThreshold
}

// karatsuba returns x * y. Operands shorter than KaratsubaThreshold are
// multiplied using schoolbook multiplication; for longer operands each side
// is split into high and low halves at k = max(len(x), len(y))/2 words and:
//
//	x * y = p1 * B^2k + (p3 - p1 - p2) * B^k + p2
//
// where B = 2^32, p1 = xh*yh, p2 = xl*yl and p3 = (xh+xl)*(yh+yl).
func karatsuba(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) == 1 {
		return mulWord(y, x[0])
	}
	if len(y) == 1 {
		return mulWord(x, y[0])
	}
	if t := karatsubaThreshold(); len(x) < t || len(y) < t {
		return mulBasic(x, y)
	}

	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	k := n / 2

	xh, xl := split(x, k)
	yh, yl := split(y, k)

	p1 := karatsuba(xh, yh)
	p2 := karatsuba(xl, yl)
	p3 := karatsuba(natAdd(xh, xl), natAdd(yh, yl))
	mid := natSub(natSub(p3, p1), p2)

	z := make(nat, len(x)+len(y))
	addAt(z, p2, 0)
	addAt(z, mid, k)
	addAt(z, p1, 2*k)
	return z.norm()
}

// split returns the digits of x above and below word k. Both halves share
// memory with x.
func split(x nat, k int) (hi, lo nat) {
	if len(x) <= k {
		return nil, x
	}
	return nat(x[k:]).norm(), nat(x[:k]).norm()
}

// mulBasic is schoolbook multiplication: each digit of y multiplies the whole
// of x, and the row is accumulated into the result at that digit's offset.
func mulBasic(x, y nat) nat {
	z := make(nat, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		addAt(z, mulWord(x, yi), i)
	}
	return z.norm()
}
