package bigint

// Quo returns the quotient x/y for y != 0. If y == 0, it panics with
// ErrDivisionByZero. Quo implements truncated division (like Go); see QuoRem
// for more details.
func (x Int) Quo(y Int) Int {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}

	neg := x.neg() != y.neg()
	u, v := x.abs(), y.abs()
	if natCmp(v, u) > 0 {
		return zeroInt
	}

	var q nat
	if len(v) == 1 {
		q, _ = divWord(u, v[0])
	} else {
		q = divKnuth(u, v)
	}
	return fromNat(q, neg)
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, it
// panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r always takes the sign of x. Int does not support big.Int.DivMod()-style
// Euclidean division.
func (x Int) QuoRem(y Int) (q, r Int) {
	q = x.Quo(y)
	r = x.Sub(q.Mul(y))
	return q, r
}

// Rem returns the remainder of x%y for y != 0. If y == 0, it panics with
// ErrDivisionByZero. Rem implements truncated modulus (like Go); see QuoRem
// for more details.
func (x Int) Rem(y Int) Int {
	_, r := x.QuoRem(y)
	return r
}

func (x nat) at(i int) uint32 {
	if i < len(x) {
		return x[i]
	}
	return 0
}

// shiftWords returns x * B^k.
func shiftWords(x nat, k int) nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+k)
	copy(z[k:], x)
	return z
}

// divKnuth returns u / v using Knuth's Algorithm D (TAOCP 4.3.1). v must have
// at least two digits and u must not be less than v.
//
// Both operands are scaled by f = B / (v[n-1] + 1), which leaves v with the
// same number of digits but a top digit of at least B/2. Each quotient digit
// is then estimated by dividing the top three digits of the running
// remainder by the top two digits of the scaled divisor. With the divisor
// normalised this estimate is never too small and at most one too large, so
// a single correction step is enough.
func divKnuth(u, v nat) nat {
	n, m := len(v), len(u)

	f := uint32(base / (uint64(v[n-1]) + 1))
	r := mulWord(u, f)
	d := mulWord(v, f)

	dTop := uint64(d[n-1])<<wordBits | uint64(d[n-2])

	q := make(nat, m-n+1)
	for k := m - n; k >= 0; k-- {
		// The top word is below B and dTop is at least B^2/2, so the 128-bit
		// division cannot overflow:
		hi := uint64(r.at(n + k))
		lo := uint64(r.at(n+k-1))<<wordBits | uint64(r.at(n+k-2))

		qt := quo128by64(hi, lo, dTop)
		if qt > maxWord {
			qt = maxWord
		}

		dq := shiftWords(mulWord(d, uint32(qt)), k)
		if natCmp(r, dq) < 0 {
			qt--
			dq = shiftWords(mulWord(d, uint32(qt)), k)
		}

		q[k] = uint32(qt)
		r = natSub(r, dq)
	}

	return q.norm()
}
