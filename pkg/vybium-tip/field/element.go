// Package field provides finite field arithmetic over the Goldilocks prime
// field (p = 2^64 - 2^32 + 1) using Montgomery representation.
//
// Values are stored in Montgomery form (x * 2^64 mod P) so that modular
// multiplication needs no division. The byte-level view of the Montgomery
// word is part of the public contract: the split-and-lookup S-box of the Tip
// hash family substitutes the raw Montgomery bytes directly.
package field

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// P is the prime modulus: 2^64 - 2^32 + 1
const P uint64 = 0xFFFFFFFF00000001

// R2 is 2^128 mod P, used for conversion into Montgomery representation
const R2 uint64 = 0xFFFFFFFE00000001

// Element represents a field element in F_p where p = 2^64 - 2^32 + 1.
// The zero value is the field's zero. All arithmetic operations work
// directly on Montgomery-form values.
type Element struct {
	// value in Montgomery form (value * 2^64 mod P)
	value uint64
}

var (
	Zero = Element{0}
	One  = New(1)
)

// New creates a field element from a canonical uint64 value,
// converting it to Montgomery form.
func New(value uint64) Element {
	hi, lo := bits.Mul64(value, R2)
	return Element{value: montyred(hi, lo)}
}

// NewFromRaw creates an element directly from a Montgomery-form word.
// Used by the split-and-lookup S-box and by deserialization.
func NewFromRaw(raw uint64) Element {
	return Element{value: raw}
}

// Value returns the canonical uint64 value of the element.
func (e Element) Value() uint64 {
	return montyred(0, e.value)
}

// RawValue returns the raw Montgomery-form word.
func (e Element) RawValue() uint64 {
	return e.value
}

// String returns the canonical (non-Montgomery) value for readability.
func (e Element) String() string {
	return fmt.Sprintf("%d", e.Value())
}

// Hex returns the lowercase hexadecimal representation of the canonical value.
func (e Element) Hex() string {
	return fmt.Sprintf("%x", e.Value())
}

// IsZero returns true if the element is zero.
func (e Element) IsZero() bool {
	return e.value == 0
}

// IsOne returns true if the element is one.
func (e Element) IsOne() bool {
	return e.Equal(One)
}

// Add performs field addition: (a + b) mod P.
func (e Element) Add(other Element) Element {
	// a + b = a - (p - b); a borrow means the sum stayed below p
	x1, c1 := bits.Sub64(e.value, P-other.value, 0)
	if c1 != 0 {
		return Element{value: x1 + P}
	}
	return Element{value: x1}
}

// Sub performs field subtraction: (a - b) mod P.
func (e Element) Sub(other Element) Element {
	x1, c1 := bits.Sub64(e.value, other.value, 0)
	// on borrow, add P back; (1 + ^P) == -P in two's complement
	return Element{value: x1 - ((1 + ^P) * c1)}
}

// Mul performs Montgomery multiplication: (a * b) mod P.
func (e Element) Mul(other Element) Element {
	hi, lo := bits.Mul64(e.value, other.value)
	return Element{value: montyred(hi, lo)}
}

// Square computes e^2 mod P.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Exp7 computes e^7 mod P, the power map used on the non-lookup lanes of
// the Tip round function.
func (e Element) Exp7() Element {
	sq := e.Square()     // x^2
	qu := sq.Square()    // x^4
	return e.Mul(sq).Mul(qu)
}

// Neg returns the additive inverse: -a mod P.
func (e Element) Neg() Element {
	if e.IsZero() {
		return Zero
	}
	return Element{value: P - e.value}
}

// Equal returns true if two elements are equal.
func (e Element) Equal(other Element) bool {
	return e.value == other.value
}

// Inverse computes the multiplicative inverse a^(P-2) mod P using the
// addition chain from twenty-first. Panics on zero.
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("attempted to find the multiplicative inverse of zero")
	}

	exp := func(base Element, exponent uint64) Element {
		result := base
		for i := uint64(0); i < exponent; i++ {
			result = result.Square()
		}
		return result
	}

	x := e
	bin2Ones := x.Square().Mul(x)                  // a^3
	bin3Ones := bin2Ones.Square().Mul(x)           // a^7
	bin6Ones := exp(bin3Ones, 3).Mul(bin3Ones)     // a^63
	bin12Ones := exp(bin6Ones, 6).Mul(bin6Ones)    // a^(2^12 - 1)
	bin24Ones := exp(bin12Ones, 12).Mul(bin12Ones) // a^(2^24 - 1)
	bin30Ones := exp(bin24Ones, 6).Mul(bin6Ones)   // a^(2^30 - 1)
	bin31Ones := bin30Ones.Square().Mul(x)         // a^(2^31 - 1)
	bin31Ones1Zero := bin31Ones.Square()           // a^(2^32 - 2)
	bin32Ones := bin31Ones.Square().Mul(x)         // a^(2^32 - 1)

	return exp(bin31Ones1Zero, 32).Mul(bin32Ones)
}

// ModPow computes modular exponentiation a^exp mod P by binary
// exponentiation in Montgomery form.
func (e Element) ModPow(exp uint64) Element {
	if exp == 0 {
		return One
	}

	acc := One
	bitLength := bits.Len64(exp)
	for i := 0; i < bitLength; i++ {
		acc = acc.Square()
		if exp&(1<<(bitLength-1-i)) != 0 {
			acc = acc.Mul(e)
		}
	}
	return acc
}

// ToBytes returns the little-endian bytes of the Montgomery-form word.
func (e Element) ToBytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], e.value)
	return b
}

// FromBytes creates an element from little-endian Montgomery-form bytes.
// Words at or above the modulus are normalized into the canonical range;
// the represented value is unchanged.
func FromBytes(b [8]byte) Element {
	raw := binary.LittleEndian.Uint64(b[:])
	if raw >= P {
		raw -= P
	}
	return NewFromRaw(raw)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e Element) MarshalBinary() ([]byte, error) {
	b := e.ToBytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Element) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("invalid data length: expected 8 bytes, got %d", len(data))
	}
	var b [8]byte
	copy(b[:], data)
	*e = FromBytes(b)
	return nil
}

// Generator returns a generator of the multiplicative group, which is 7.
func Generator() Element {
	return New(7)
}

// MontyRed reduces the 128-bit value hi*2^64 + lo modulo P, dividing out
// one Montgomery radix. Exported for the MDS kernel, which lifts raw
// Montgomery words into 128 bits, shifts, and reduces back.
func MontyRed(hi, lo uint64) uint64 {
	return montyred(hi, lo)
}

// montyred performs Montgomery reduction of a 128-bit value.
func montyred(xh, xl uint64) uint64 {
	// a = xl + (xl << 32), with overflow flag
	a, e := bits.Add64(xl, xl<<32, 0)

	b := a - (a >> 32) - e

	r, c := bits.Sub64(xh, b, 0)

	// on borrow, add P back
	return r - ((1 + ^P) * c)
}
