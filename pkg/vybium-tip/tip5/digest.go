package tip5

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

// Digest is the Tip5_320 output: DigestSize field elements drawn from the first
// state lanes. A digest is a value object and is never mutated once
// produced.
type Digest [DigestSize]field.Element

// NewDigest creates a digest from an array of field elements.
func NewDigest(elements [DigestSize]field.Element) Digest {
	return Digest(elements)
}

// Elements returns the underlying field elements.
func (d Digest) Elements() [DigestSize]field.Element {
	return [DigestSize]field.Element(d)
}

// Equal returns true if two digests are equal.
func (d Digest) Equal(other Digest) bool {
	for i := 0; i < DigestSize; i++ {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IsZero returns true if the digest is all zeros.
func (d Digest) IsZero() bool {
	for i := 0; i < DigestSize; i++ {
		if !d[i].IsZero() {
			return false
		}
	}
	return true
}

// String returns the comma-separated canonical values.
func (d Digest) String() string {
	values := make([]string, DigestSize)
	for i := 0; i < DigestSize; i++ {
		values[i] = d[i].String()
	}
	return strings.Join(values, ",")
}

// ToBytes serializes the digest as DigestSize little-endian canonical
// words.
func (d Digest) ToBytes() [DigestSize * 8]byte {
	var out [DigestSize * 8]byte
	for i := 0; i < DigestSize; i++ {
		binary.LittleEndian.PutUint64(out[i*8:(i+1)*8], d[i].Value())
	}
	return out
}

// FromBytes deserializes a digest written by ToBytes. Words are reduced
// into the field.
func FromBytes(data [DigestSize * 8]byte) Digest {
	var d Digest
	for i := 0; i < DigestSize; i++ {
		d[i] = field.New(binary.LittleEndian.Uint64(data[i*8 : (i+1)*8]))
	}
	return d
}

// Hex returns the hexadecimal form of ToBytes.
func (d Digest) Hex() string {
	b := d.ToBytes()
	return hex.EncodeToString(b[:])
}
