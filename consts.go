package bigint

import (
	"errors"
)

const (
	wordBits = 32
	maxWord  = 1<<wordBits - 1
	signBit  = 1 << (wordBits - 1)

	// base is the radix of a single digit, 1 << 32.
	base = 1 << wordBits

	// decimalChunk is the largest power of ten that fits in a digit, used to
	// convert to and from base 10 nine characters at a time.
	decimalChunk       = 1000000000
	decimalChunkDigits = 9

	intSize = 32 << (^uint(0) >> 63)
)

// KaratsubaThreshold is the operand length, in 32-bit words, below which Mul
// uses schoolbook multiplication. Either operand being shorter than this
// selects the schoolbook path.
//
// It exists for tuning (see misc/karatune) and must not be changed while
// multiplications are in progress. Values below 4 are treated as 4.
var KaratsubaThreshold = 16

var (
	// ErrDivisionByZero is the panic value used by Quo, Rem and QuoRem when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrInvalidFormat is wrapped by errors returned when a decimal string
	// cannot be parsed.
	ErrInvalidFormat = errors.New("bigint: invalid format")
)

var (
	zeroInt     Int
	oneInt      = Int{d: []uint32{1}}
	minusOneInt = Int{d: []uint32{maxWord}}
)
