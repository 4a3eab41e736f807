package tip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

func TestLookupTableIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range LookupTable {
		assert.False(t, seen[v], "value %d appears twice", v)
		seen[v] = true
	}
}

func TestLookupTableCubeMap(t *testing.T) {
	// The table is x -> ((x+1)^3 - 1) mod 257 on {0..255}.
	for x := 0; x < 256; x++ {
		cube := (x + 1) * (x + 1) * (x + 1) % 257
		want := (cube + 256) % 257 // cube - 1 mod 257, kept nonnegative
		assert.Equal(t, uint8(want), LookupTable[x], "input %d", x)
	}
}

func TestSplitAndLookupFixedPoints(t *testing.T) {
	// A Montgomery word of all-zero bytes maps to itself.
	zero := field.Zero
	SplitAndLookup(&zero)
	assert.True(t, zero.IsZero())
}

func TestSplitAndLookupPermutesBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := field.New(rapid.Uint64().Draw(t, "e"))

		mapped := e
		SplitAndLookup(&mapped)

		// applying the table byte-wise by hand must agree
		b := e.ToBytes()
		for i := range b {
			b[i] = LookupTable[b[i]]
		}
		assert.True(t, mapped.Equal(field.FromBytes(b)))
	})
}
