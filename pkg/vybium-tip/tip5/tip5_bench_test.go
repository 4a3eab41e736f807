package tip5

import (
	"testing"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

// BenchmarkApplyPermutation benchmarks one application of the permutation.
func BenchmarkApplyPermutation(b *testing.B) {
	var state [StateWidth]field.Element
	for i := range state {
		state[i] = field.New(uint64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyPermutation(&state)
	}
}

// BenchmarkHash benchmarks hashing 100 bytes.
func BenchmarkHash(b *testing.B) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Hash(data)
	}
}

// BenchmarkHashElements benchmarks hashing one rate's worth of elements.
func BenchmarkHashElements(b *testing.B) {
	elements := make([]field.Element, RateWidth)
	for i := range elements {
		elements[i] = field.New(uint64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashElements(elements)
	}
}

// BenchmarkMerge benchmarks the two-to-one digest compression.
func BenchmarkMerge(b *testing.B) {
	left := HashElements([]field.Element{field.New(1)})
	right := HashElements([]field.Element{field.New(2)})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Merge([2]Digest{left, right})
	}
}
