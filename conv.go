package bigint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IntFromString creates an Int from a base 10 string with an optional leading
// '+' or '-'. Any other character, an empty string or a sign on its own
// returns an error wrapping ErrInvalidFormat.
func IntFromString(s string) (out Int, err error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return out, fmt.Errorf("bigint: string %q invalid: %w", s, ErrInvalidFormat)
	}

	// Digits are consumed nine at a time: m = m * 10^len(chunk) + chunk.
	var m nat
	for i := 0; i < len(digits); {
		end := i + decimalChunkDigits
		if end > len(digits) {
			end = len(digits)
		}

		var chunk, scale uint32 = 0, 1
		for j := i; j < end; j++ {
			c := digits[j]
			if c < '0' || c > '9' {
				return out, fmt.Errorf("bigint: string %q invalid at offset %d: %w", s, len(s)-len(digits)+j, ErrInvalidFormat)
			}
			chunk = chunk*10 + uint32(c-'0')
			scale *= 10
		}
		m = mulAddWord(m, scale, chunk)
		i = end
	}

	return fromNat(m, neg), nil
}

func (x Int) String() string {
	if len(x.d) == 0 {
		return "0"
	}

	// Remainders of repeated division by 10^9 give the digits nine at a time,
	// least significant first.
	var chunks []uint32
	for m := x.abs(); len(m) > 0; {
		var r uint32
		m, r = divWord(m, decimalChunk)
		chunks = append(chunks, r)
	}

	buf := make([]byte, 0, len(chunks)*decimalChunkDigits+1)
	if x.neg() {
		buf = append(buf, '-')
	}
	last := len(chunks) - 1
	buf = strconv.AppendUint(buf, uint64(chunks[last]), 10)

	var scratch [decimalChunkDigits]byte
	for i := last - 1; i >= 0; i-- {
		s := strconv.AppendUint(scratch[:0], uint64(chunks[i]), 10)
		for j := len(s); j < decimalChunkDigits; j++ {
			buf = append(buf, '0')
		}
		buf = append(buf, s...)
	}
	return string(buf)
}

// Format implements fmt.Formatter. Only base 10 verbs are supported: 'd', 's'
// and 'v', with the '+', ' ', '-' and '0' flags and a width.
func (x Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", c, x.String())
		return
	}

	str := x.String()
	sign := ""
	if x.neg() {
		sign, str = "-", str[1:]
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	if w, ok := s.Width(); ok && len(sign)+len(str) < w {
		pad := w - len(sign) - len(str)
		switch {
		case s.Flag('-'):
			str = sign + str + strings.Repeat(" ", pad)
		case s.Flag('0'):
			str = sign + strings.Repeat("0", pad) + str
		default:
			str = strings.Repeat(" ", pad) + sign + str
		}
	} else {
		str = sign + str
	}

	_, _ = io.WriteString(s, str)
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number, which
// must be an integer.
func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bigint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
