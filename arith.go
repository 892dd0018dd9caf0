package bigint

import (
	"math/bits"
)

// nat is an unsigned magnitude: little-endian base-2^32 digits with no
// trailing zero digits. None of the functions in this file modify their
// arguments except addAt, which accumulates into its first argument.
type nat []uint32

func (x nat) norm() nat {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return x[:n]
}

func natCmp(x, y nat) int {
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// mulWord returns x * w.
func mulWord(x nat, w uint32) nat {
	return mulAddWord(x, w, 0)
}

// mulAddWord returns x * w + a.
func mulAddWord(x nat, w, a uint32) nat {
	z := make(nat, len(x)+1)
	carry := uint64(a)
	for i, xi := range x {
		// (2^32-1)^2 + (2^32-1) < 2^64, so the accumulator cannot overflow:
		carry += uint64(xi) * uint64(w)
		z[i] = uint32(carry)
		carry >>= wordBits
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// divWord returns the quotient and remainder of x / w. If w == 0, it panics
// with ErrDivisionByZero.
func divWord(x nat, w uint32) (q nat, r uint32) {
	if w == 0 {
		panic(ErrDivisionByZero)
	}
	if len(x) == 0 {
		return nil, 0
	}

	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		rem = rem<<wordBits | uint64(x[i])
		q[i] = uint32(rem / uint64(w))
		rem %= uint64(w)
	}
	return q.norm(), uint32(rem)
}

func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], carry = bits.Add32(x[i], yi, carry)
	}
	z[len(x)] = carry
	return z.norm()
}

// natSub returns x - y. x must be >= y.
func natSub(x, y nat) nat {
	z := make(nat, len(x))
	var borrow uint32
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub32(x[i], yi, borrow)
	}
	if borrow != 0 {
		panic("bigint: nat underflow")
	}
	return z.norm()
}

// addAt adds x, shifted left by k whole words, into z. z must be long enough
// to hold the sum.
func addAt(z, x nat, k int) {
	var carry uint64
	i := 0
	for ; i < len(x); i++ {
		carry += uint64(z[k+i]) + uint64(x[i])
		z[k+i] = uint32(carry)
		carry >>= wordBits
	}
	for ; carry != 0; i++ {
		carry += uint64(z[k+i])
		z[k+i] = uint32(carry)
		carry >>= wordBits
	}
}

// quo128by64 returns (u1:u0) / v, truncated to 64 bits. u1 must be less than
// v. Hacker's delight 9-4, divlu.
func quo128by64(u1, u0, v uint64) (q uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, vs, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	vs = v << s

	vn1 = vs >> 32
	vn0 = vs & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) | un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * vs))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0
}
