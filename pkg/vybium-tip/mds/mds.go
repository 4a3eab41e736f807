// Package mds implements the fixed MDS diffusion layers of the Tip hash
// family over the Goldilocks field.
//
// The 16-lane layer multiplies the state by a fixed 16x16 circulant matrix
// in O(n log n) time: a no-swap radix-2 NTT moves the state into the
// frequency domain, where the matrix acts as a pure power-of-two scaling per
// lane, and a no-swap inverse NTT moves it back. The scaling is done on the
// 128-bit lift of the raw Montgomery word followed by a single Montgomery
// reduction, so each frequency lane costs one shift and one reduction.
//
// The 12-lane layer multiplies by a fixed 12x12 circulant with small
// entries; it is computed as a direct circulant product.
package mds

import (
	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

// shifts holds the per-lane shift amounts of the frequency-domain scaling.
// The raw Montgomery word of lane i of the forward transform is shifted
// left by shifts[i] before reduction; together with the common factor
// described at inttNoSwap, the realized circulant has spectrum
// 2^(shifts[i]+132) in the field.
var shifts = [16]uint{4, 1, 4, 3, 3, 7, 0, 5, 1, 5, 0, 2, 6, 2, 4, 1}

// omegasBitRev holds the eight bit-reversed powers of the primitive 16th
// root of unity consumed by the forward no-swap NTT.
var omegasBitRev = [8]field.Element{
	field.New(1),
	field.New(281474976710656),
	field.New(18446744069397807105),
	field.New(18446742969902956801),
	field.New(17293822564807737345),
	field.New(4096),
	field.New(4503599626321920),
	field.New(18446744000695107585),
}

// omegasInverse holds the inverse-root powers consumed by the inverse
// no-swap NTT.
var omegasInverse = [8]field.Element{
	field.New(1),
	field.New(68719476736),
	field.New(1099511627520),
	field.New(18446744069414580225),
	field.New(18446462594437873665),
	field.New(18442240469788262401),
	field.New(16777216),
	field.New(1152921504606846976),
}

// firstRow16 is the first row of the 16x16 circulant realized by Apply16,
// in canonical form. Row i is the right rotation of row 0 by i positions.
var firstRow16 = [16]uint64{
	18446742626305572865, 12103477672291081763,
	2060678330275253760, 2379906257383880660,
	13229869363167232, 12103947580051285184,
	3631871650260640512, 18375880622847003104,
	18446743700047396865, 7491684177549991903,
	16328081945490043393, 11603770461046470701,
	18433515290973110273, 5185371269165997376,
	14872856315882446081, 4542937756286289441,
}

// firstRow12 is the first row of the 12x12 circulant realized by Apply12.
var firstRow12 = [12]uint64{7, 23, 8, 26, 13, 10, 9, 7, 6, 22, 21, 8}

// Apply16 multiplies the 16-element state in place by the fixed 16x16
// circulant MDS matrix, using the frequency-domain shortcut.
func Apply16(state *[16]field.Element) {
	nttNoSwap(state)

	// Scale each frequency lane by 2^shift on the 128-bit lift of the raw
	// Montgomery word, then reduce back to a single word.
	for i := 0; i < 16; i++ {
		raw := state[i].RawValue()
		s := shifts[i]
		hi := raw >> (64 - s)
		lo := raw << s
		state[i] = field.NewFromRaw(field.MontyRed(hi, lo))
	}

	inttNoSwap(state)
}

// nttNoSwap applies the forward radix-2 NTT without the usual bit-reversal
// reordering. Stages run from stride 8 down to stride 1; block b of a stage
// uses omegasBitRev[b].
func nttNoSwap(x *[16]field.Element) {
	for m := 8; m >= 1; m /= 2 {
		numBlocks := 16 / (2 * m)
		for b := 0; b < numBlocks; b++ {
			zeta := omegasBitRev[b]
			start := 2 * m * b
			for j := start; j < start+m; j++ {
				u := x[j]
				v := x[j+m].Mul(zeta)
				x[j] = u.Add(v)
				x[j+m] = u.Sub(v)
			}
		}
	}
}

// inttNoSwap applies the inverse transform matching nttNoSwap. Stages run
// from stride 1 up to stride 8; lane j within a block uses
// omegasInverse[j * (8/m)]. The transform carries no 1/n factor, so the
// round trip scales by 16; with the 2^-64 of the Montgomery reduction in
// Apply16 this leaves a common factor 16 * 2^-64 = 2^132 in the matrix
// realized by Apply16, which firstRow16 includes.
func inttNoSwap(x *[16]field.Element) {
	for m := 1; m <= 8; m *= 2 {
		numBlocks := 16 / (2 * m)
		stride := 8 / m
		for b := 0; b < numBlocks; b++ {
			start := 2 * m * b
			for j := 0; j < m; j++ {
				zeta := omegasInverse[j*stride]
				u := x[start+j]
				v := x[start+j+m].Mul(zeta)
				x[start+j] = u.Add(v)
				x[start+j+m] = u.Sub(v)
			}
		}
	}
}

// row12 caches the Montgomery form of firstRow12.
var row12 = func() [12]field.Element {
	var r [12]field.Element
	for i, v := range firstRow12 {
		r[i] = field.New(v)
	}
	return r
}()

// Apply12 multiplies the 12-element state in place by the fixed 12x12
// circulant MDS matrix. The entries are small, so the direct product is
// used rather than a 12-point transform.
func Apply12(state *[12]field.Element) {
	var result [12]field.Element
	for i := 0; i < 12; i++ {
		acc := field.Zero
		for j := 0; j < 12; j++ {
			acc = acc.Add(row12[(j-i+12)%12].Mul(state[j]))
		}
		result[i] = acc
	}
	*state = result
}

// Circulant16 expands the fixed 16x16 MDS matrix: row i is the right
// rotation of the first row by i positions.
func Circulant16() [16][16]field.Element {
	var m [16][16]field.Element
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			m[i][j] = field.New(firstRow16[(j-i+16)%16])
		}
	}
	return m
}

// Circulant12 expands the fixed 12x12 MDS matrix the same way.
func Circulant12() [12][12]field.Element {
	var m [12][12]field.Element
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			m[i][j] = field.New(firstRow12[(j-i+12)%12])
		}
	}
	return m
}
