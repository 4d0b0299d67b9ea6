// Package modulate implements the bit-string wire codec: Encode turns a
// value.Value into the "01100001"-style digit string the aliens speak,
// Decode reverses it. The bit layout is sign tag, unary nibble-count,
// then the magnitude.
package modulate

import (
	"strings"

	"github.com/galaxypad/galaxy/internal/galerrors"
	"github.com/galaxypad/galaxy/internal/value"
)

// Encode modulates v into its bit-string representation.
//
// A Pair's cdr is walked in a loop rather than by recursing once per
// list element, so a long list does not grow the Go call stack with
// its length; only a value's structural nesting (a pair-of-pairs as a
// car, say) recurses, which is bounded by the program, not by data
// length.
func Encode(v value.Value) string {
	var sb strings.Builder
	current := v
	for {
		switch t := current.(type) {
		case value.Nil:
			sb.WriteString("00")
			return sb.String()
		case value.Pair:
			sb.WriteString("11")
			sb.WriteString(Encode(t.Car))
			current = t.Cdr
		case value.Int:
			sb.WriteString(encodeInt(t.N))
			return sb.String()
		default:
			return sb.String()
		}
	}
}

func encodeInt(n int64) string {
	neg := n < 0
	mag := n
	if neg {
		mag = -n
	}

	var bits strings.Builder // magnitude bits, least-significant first
	for mag > 0 {
		if mag&1 != 0 {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
		mag >>= 1
	}
	s := bits.String()
	for len(s)%4 != 0 {
		s += "0"
	}
	nibbles := len(s) / 4
	s += "0" + strings.Repeat("1", nibbles)

	sign := "01"
	if neg {
		sign = "10"
	}
	return sign + reverse(s)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// reader is a cursor over a bit string.
type reader struct {
	bits string
	pos  int
}

func (r *reader) next() (byte, bool) {
	if r.pos >= len(r.bits) {
		return 0, false
	}
	b := r.bits[r.pos]
	r.pos++
	return b, true
}

func isBit(b byte) bool { return b == '0' || b == '1' }

// Decode demodulates a complete bit string into a Value. It is an
// error for the string to end before a token is complete, or for
// unconsumed bits to remain after one (COD001/COD002/COD003).
func Decode(s string) (value.Value, error) {
	r := &reader{bits: s}
	a, aok := r.next()
	b, bok := r.next()
	if !aok || !bok {
		return nil, galerrors.New(galerrors.COD001, "codec", "unexpected end of input")
	}
	if !isBit(a) || !isBit(b) {
		return nil, galerrors.New(galerrors.COD003, "codec", "invalid tag bits")
	}
	v, err := loadTokenFromSig(r, a, b)
	if err != nil {
		return nil, err
	}
	if r.pos != len(r.bits) {
		return nil, galerrors.New(galerrors.COD002, "codec", "trailing data after top-level token")
	}
	return v, nil
}

func loadToken(r *reader) (value.Value, error) {
	a, aok := r.next()
	b, bok := r.next()
	if !aok || !bok {
		return nil, galerrors.New(galerrors.COD001, "codec", "unexpected end of input")
	}
	if !isBit(a) || !isBit(b) {
		return nil, galerrors.New(galerrors.COD003, "codec", "invalid tag bits")
	}
	return loadTokenFromSig(r, a, b)
}

func loadTokenFromSig(r *reader, a, b byte) (value.Value, error) {
	switch {
	case a == '0' && b == '0':
		return value.Nil{}, nil
	case a == '1' && b == '1':
		return loadCons(r)
	case a == '0' && b == '1':
		n, err := loadNumber(r)
		if err != nil {
			return nil, err
		}
		return value.Int{N: n}, nil
	default: // a == '1' && b == '0'
		n, err := loadNumber(r)
		if err != nil {
			return nil, err
		}
		return value.Int{N: -n}, nil
	}
}

func loadNumber(r *reader) (int64, error) {
	count := 0
	for {
		bit, ok := r.next()
		if !ok {
			return 0, galerrors.New(galerrors.COD001, "codec", "unexpected end of input reading number length")
		}
		if !isBit(bit) {
			return 0, galerrors.New(galerrors.COD003, "codec", "invalid length-prefix bit")
		}
		if bit == '0' {
			break
		}
		count++
	}
	length := count * 4
	var n int64
	for i := 0; i < length; i++ {
		bit, ok := r.next()
		if !ok {
			return 0, galerrors.New(galerrors.COD001, "codec", "unexpected end of input reading magnitude")
		}
		if !isBit(bit) {
			return 0, galerrors.New(galerrors.COD003, "codec", "invalid magnitude bit")
		}
		n <<= 1
		if bit == '1' {
			n |= 1
		}
	}
	return n, nil
}

// loadCons decodes the body of a "11"-tagged pair. The chain of cdrs is
// walked in a loop instead of recursing once per cons cell — see
// Encode's doc comment for why that matters — folding the pending cars
// back into nested Pairs once the tail bottoms out.
func loadCons(r *reader) (value.Value, error) {
	var cars []value.Value
	for {
		car, err := loadToken(r)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)

		a, aok := r.next()
		b, bok := r.next()
		if !aok || !bok {
			return nil, galerrors.New(galerrors.COD001, "codec", "unexpected end of input")
		}
		if !isBit(a) || !isBit(b) {
			return nil, galerrors.New(galerrors.COD003, "codec", "invalid tag bits")
		}
		if a == '1' && b == '1' {
			continue
		}

		tail, err := loadTokenFromSig(r, a, b)
		if err != nil {
			return nil, err
		}
		var result value.Value = tail
		for i := len(cars) - 1; i >= 0; i-- {
			result = value.Pair{Car: cars[i], Cdr: result}
		}
		return result, nil
	}
}
