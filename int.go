package bigint

import (
	"math/big"
	"math/bits"
)

// Int is an arbitrary-precision signed integer.
//
// The digits are stored little-endian in base 2^32 using two's complement.
// Every digit past the end of the stored slice is implicitly the "fill word":
// 0xFFFFFFFF if the value is negative, 0 otherwise. The sign is the top bit of
// the last stored digit and is never stored separately.
//
// The zero value is 0. Int is a value type; all operations return new values
// and never modify their receiver or arguments, so an Int can be copied and
// shared freely.
type Int struct {
	d []uint32
}

// norm trims trailing fill words from d, stopping before any removal that
// would change the top bit of the last remaining digit (and therefore the
// sign). It returns nil for zero.
func norm(d []uint32) []uint32 {
	n := len(d)
	for n > 0 {
		top := d[n-1]
		if top == 0 {
			if n > 1 && d[n-2]&signBit != 0 {
				break
			}
		} else if top == maxWord {
			if n == 1 || d[n-2]&signBit == 0 {
				break
			}
		} else {
			break
		}
		n--
	}
	if n == 0 {
		return nil
	}
	return d[:n]
}

func IntFrom64(v int64) Int {
	return Int{d: norm([]uint32{uint32(v), uint32(v >> 32)})}
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) Int {
	return Int{d: norm([]uint32{uint32(v), uint32(v >> 32), 0})}
}

// IntFromDigits creates an Int from little-endian two's complement digits.
// The top bit of the last digit is the sign. It is the complement to
// Int.Digits(); the slice is copied.
func IntFromDigits(d []uint32) Int {
	c := make([]uint32, len(d))
	copy(c, d)
	return Int{d: norm(c)}
}

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()

	var m nat
	switch intSize {
	case 64:
		m = make(nat, 0, len(words)*2)
		for _, w := range words {
			m = append(m, uint32(w), uint32(uint64(w)>>32))
		}
	case 32:
		m = make(nat, 0, len(words))
		for _, w := range words {
			m = append(m, uint32(w))
		}
	default:
		panic("bigint: unsupported bit size")
	}

	return fromNat(m.norm(), v.Sign() < 0)
}

// fromNat creates an Int from an unsigned magnitude. m is not retained.
func fromNat(m nat, neg bool) Int {
	if len(m) == 0 {
		return zeroInt
	}
	d := make([]uint32, len(m), len(m)+1)
	copy(d, m)
	if d[len(d)-1]&signBit != 0 {
		d = append(d, 0)
	}
	x := Int{d: d}
	if neg {
		return x.Neg()
	}
	return x
}

// abs returns the magnitude of x. The result may share memory with x.
func (x Int) abs() nat {
	if x.neg() {
		return nat(x.Neg().d).norm()
	}
	return nat(x.d).norm()
}

func (x Int) neg() bool {
	n := len(x.d)
	return n > 0 && x.d[n-1]&signBit != 0
}

// fill returns the word that extends x's digits infinitely to the left.
func (x Int) fill() uint32 {
	if x.neg() {
		return maxWord
	}
	return 0
}

// digit returns the i'th digit of x, or the fill word if i is past the end of
// the stored digits.
func (x Int) digit(i int) uint32 {
	if i < len(x.d) {
		return x.d[i]
	}
	return x.fill()
}

// Digits returns a copy of the little-endian two's complement digits of x,
// in canonical (shortest) form. Zero has no digits.
func (x Int) Digits() []uint32 {
	if len(x.d) == 0 {
		return nil
	}
	return append([]uint32(nil), x.d...)
}

func (x Int) IsZero() bool { return len(x.d) == 0 }

func (x Int) Sign() int {
	if len(x.d) == 0 {
		return 0
	} else if x.neg() {
		return -1
	}
	return 1
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	m := x.abs()

	var words []big.Word
	switch intSize {
	case 64:
		words = make([]big.Word, (len(m)+1)/2)
		for i, w := range m {
			words[i/2] |= big.Word(w) << (32 * uint(i%2))
		}
	case 32:
		words = make([]big.Word, len(m))
		for i, w := range m {
			words[i] = big.Word(w)
		}
	default:
		panic("bigint: unsupported bit size")
	}

	b.SetBits(words)
	if x.neg() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x Int) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range will
// wrap. See IsInt64() if you want to check before you convert.
func (x Int) AsInt64() int64 {
	return int64(uint64(x.digit(0)) | uint64(x.digit(1))<<32)
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	return len(x.d) <= 2
}

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x Int) BitLen() int {
	m := x.abs()
	if len(m) == 0 {
		return 0
	}
	return (len(m)-1)*wordBits + bits.Len32(m[len(m)-1])
}

// Bit returns the value of the i'th bit of the two's complement
// representation of x, so negative values have an infinite run of 1 bits.
func (x Int) Bit(i uint) uint {
	return uint(x.digit(int(i/wordBits))>>(i%wordBits)) & 1
}

// Pos returns x unchanged. It exists as the unary plus counterpart to Neg.
func (x Int) Pos() Int { return x }

func (x Int) Add(y Int) Int {
	n := len(x.d)
	if len(y.d) > n {
		n = len(y.d)
	}
	n++

	z := make([]uint32, n)
	var carry uint64
	for i := 0; i < n; i++ {
		carry += uint64(x.digit(i)) + uint64(y.digit(i))
		z[i] = uint32(carry)
		carry >>= wordBits
	}
	return Int{d: norm(z)}
}

func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Neg returns -x: every digit, including the fill word, is complemented and
// one is added.
func (x Int) Neg() Int {
	n := len(x.d) + 1
	z := make([]uint32, n)
	carry := uint64(1)
	for i := 0; i < n; i++ {
		carry += uint64(^x.digit(i))
		z[i] = uint32(carry)
		carry >>= wordBits
	}
	return Int{d: norm(z)}
}

func (x Int) Abs() Int {
	if x.neg() {
		return x.Neg()
	}
	return x
}

func (x Int) Inc() Int { return x.Add(oneInt) }
func (x Int) Dec() Int { return x.Add(minusOneInt) }

// Not returns ^x, which is equal to -x - 1.
func (x Int) Not() Int {
	if len(x.d) == 0 {
		return minusOneInt
	}
	z := make([]uint32, len(x.d))
	for i, v := range x.d {
		z[i] = ^v
	}
	return Int{d: norm(z)}
}

// bitwise applies op to each pair of digits of x and y, using the fill word
// for whichever operand is shorter. Past the longest operand both inputs are
// fill words, so the top bit of the result's last digit always agrees with
// op(x.fill(), y.fill()).
func (x Int) bitwise(y Int, op func(a, b uint32) uint32) Int {
	n := len(x.d)
	if len(y.d) > n {
		n = len(y.d)
	}
	z := make([]uint32, n)
	for i := range z {
		z[i] = op(x.digit(i), y.digit(i))
	}
	return Int{d: norm(z)}
}

func (x Int) And(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a & b })
}

func (x Int) AndNot(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a &^ b })
}

func (x Int) Or(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a | b })
}

func (x Int) Xor(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a ^ b })
}

// Lsh returns x << n.
func (x Int) Lsh(n uint) Int {
	if n == 0 || len(x.d) == 0 {
		return x
	}
	words, shift := int(n/wordBits), n%wordBits

	z := make([]uint32, len(x.d)+words+1)
	for i := words; i < len(z); i++ {
		j := i - words
		z[i] = x.digit(j) << shift
		if shift > 0 && j > 0 {
			z[i] |= x.d[j-1] >> (wordBits - shift)
		}
	}
	return Int{d: norm(z)}
}

// Rsh returns x >> n. The shift is arithmetic: negative values are rounded
// towards negative infinity, like Go's >> on signed integers.
func (x Int) Rsh(n uint) Int {
	if n == 0 || len(x.d) == 0 {
		return x
	}
	words, shift := n/wordBits, n%wordBits
	if words >= uint(len(x.d)) {
		if x.neg() {
			return minusOneInt
		}
		return zeroInt
	}

	w := int(words)
	z := make([]uint32, len(x.d)-w)
	for i := range z {
		z[i] = x.d[i+w] >> shift
		if shift > 0 {
			z[i] |= x.digit(i+w+1) << (wordBits - shift)
		}
	}
	return Int{d: norm(z)}
}

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int {
	xn, yn := x.neg(), y.neg()
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}

	n := len(x.d)
	if len(y.d) > n {
		n = len(y.d)
	}
	for i := n - 1; i >= 0; i-- {
		a, b := x.digit(i), y.digit(i)
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (x Int) Equal(y Int) bool {
	if len(x.d) != len(y.d) {
		return false
	}
	for i, v := range x.d {
		if y.d[i] != v {
			return false
		}
	}
	return true
}

func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }
