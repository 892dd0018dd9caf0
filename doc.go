/*
Package bigint provides an arbitrary-precision signed integer type (Int),
implementing most of the big.Int API with value semantics.

Int is a value type; all operations return new values. Values are stored as
little-endian base 2^32 digits in two's complement, so the bitwise operators
(And, Or, Xor, AndNot, Not) and the arithmetic shift Rsh behave the same as
Go's operators on signed integers, for any combination of signs.

Simple example:

	a, _ := IntFromString("123456789012345678901234567890")
	fmt.Println(a.Mul(IntFrom64(2)))
	// Output: 246913578024691357802469135780

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFromDigits(d []uint32) Int

Multiplication uses schoolbook multiplication for small operands and
Karatsuba above KaratsubaThreshold words. Division uses Knuth's Algorithm D.
Division by zero panics with ErrDivisionByZero, as it does for Go's integers.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Only base 10 is supported for text.
*/
package bigint
