// Package tip4p implements the Tip4p_256 arithmetization-oriented hash
// function over the Goldilocks field.
//
// Tip4p_256 is the narrow variant of the Tip family: a sponge over a
// 12-lane state split into an 8-lane rate and a 4-lane capacity, producing
// 4-element digests at a 128-bit collision resistance level. Its diffusion
// layer is a 12x12 circulant with small entries rather than the 16x16
// matrix shared by Tip4_256 and Tip5_320.
package tip4p

import (
	"encoding/binary"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/mds"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/tip"
)

// Tip4p_256 parameters.
const (
	StateWidth    = 12
	RateWidth     = 8
	CapacityWidth = 4
	DigestSize    = 4
	NumRounds     = 5

	// The capacity occupies lanes [RateWidth, StateWidth); digests are
	// drawn from lanes [0, DigestSize).

	// CollisionResistance is the declared security level in bits.
	CollisionResistance = 128
)

// MDS is the 12x12 circulant diffusion matrix of the permutation.
var MDS = mds.Circulant12()

// ARK holds the round constants, NumRounds rows of StateWidth elements.
// Round r injects ARK[r*StateWidth : (r+1)*StateWidth] after the MDS layer.
var ARK = [NumRounds * StateWidth]field.Element{
	field.New(14882478309599230554),
	field.New(8142991044570997292),
	field.New(9577743615884346110),
	field.New(9066640532110855217),
	field.New(5666276736197029942),
	field.New(234723323891743522),
	field.New(2265604761897631244),
	field.New(16447030166857176410),
	field.New(859918971169536743),
	field.New(10476007512131027954),
	field.New(16713320138819364249),
	field.New(7999273742305397399),
	field.New(18272244539764912572),
	field.New(2828075224028135706),
	field.New(7463969905306642922),
	field.New(627802073273762926),
	field.New(13123831397515038595),
	field.New(4723143199931969269),
	field.New(15061742248016047539),
	field.New(17392111480364021908),
	field.New(16843883235680251179),
	field.New(11747452190713949324),
	field.New(12878270845096524712),
	field.New(17969719448743486174),
	field.New(6119515644999549422),
	field.New(6370792641735978976),
	field.New(427476810819837687),
	field.New(12380342187014832208),
	field.New(17904046549164776495),
	field.New(2464825116118792820),
	field.New(15002057816962579543),
	field.New(3870370106196219525),
	field.New(13443479921259298527),
	field.New(18360486195247517434),
	field.New(16462761944853084319),
	field.New(4454905980683235172),
	field.New(12063840553236847986),
	field.New(7617887702153030630),
	field.New(8708790388479545436),
	field.New(8811791021873539299),
	field.New(6886745645943559344),
	field.New(9246340963621100102),
	field.New(3273703020256689922),
	field.New(5543635461401096095),
	field.New(13509359499342131951),
	field.New(17241627171892695601),
	field.New(1401769680349869384),
	field.New(1708646630137223762),
	field.New(16376434954541121829),
	field.New(6913033038045506149),
	field.New(11789786814142940635),
	field.New(5868273863701779742),
	field.New(7554838080797356064),
	field.New(9561322414146186353),
	field.New(10163137847795049149),
	field.New(17031345881731143604),
	field.New(3999976294807494785),
	field.New(16298206486405990652),
	field.New(10991059545008167541),
	field.New(12304071601029911593),
}

// ApplyPermutation applies the five-round Tip4p permutation to the state in
// place.
func ApplyPermutation(state *[StateWidth]field.Element) {
	for r := 0; r < NumRounds; r++ {
		round(state, r)
	}
}

// round applies one round: S-box layer, MDS layer, round constants.
func round(state *[StateWidth]field.Element, r int) {
	sboxLayer(state)
	mds.Apply12(state)
	for i := 0; i < StateWidth; i++ {
		state[i] = state[i].Add(ARK[r*StateWidth+i])
	}
}

// sboxLayer applies split-and-lookup to the first four lanes and the x^7
// power map to the remaining lanes.
func sboxLayer(state *[StateWidth]field.Element) {
	for i := 0; i < tip.NumSplitAndLookup; i++ {
		tip.SplitAndLookup(&state[i])
	}
	for i := tip.NumSplitAndLookup; i < StateWidth; i++ {
		state[i] = state[i].Exp7()
	}
}

// Hash absorbs a byte string and returns its digest.
//
// The input is consumed in 7-byte little-endian chunks, each of which is
// below the field modulus. The final chunk is padded with a single 0x01
// byte directly after its last input byte, and the first capacity lane is
// seeded with the chunk count before absorption starts. An empty input
// absorbs nothing, permutes nothing, and therefore hashes to the all-zero
// digest.
func Hash(data []byte) Digest {
	var state [StateWidth]field.Element

	numChunks := (len(data) + 6) / 7
	state[RateWidth] = field.New(uint64(numChunks))

	cursor := 0
	for i := 0; i < numChunks; i++ {
		var buf [8]byte
		chunk := data[7*i : min(7*i+7, len(data))]
		copy(buf[:], chunk)
		if i == numChunks-1 {
			// the pad byte lands at offset 7 when the final chunk is full
			buf[len(chunk)] = 1
		}

		value := field.New(binary.LittleEndian.Uint64(buf[:]))
		state[cursor] = state[cursor].Add(value)
		cursor++
		if cursor == RateWidth {
			ApplyPermutation(&state)
			cursor = 0
		}
	}
	if cursor > 0 {
		ApplyPermutation(&state)
	}

	return digestFromState(&state)
}

// HashElements absorbs a sequence of field elements and returns its
// digest. Absorption adds elements into the rate lanes directly; the first
// capacity lane is seeded with the element count.
func HashElements(elements []field.Element) Digest {
	var state [StateWidth]field.Element
	state[RateWidth] = field.New(uint64(len(elements)))

	cursor := 0
	for _, e := range elements {
		state[cursor] = state[cursor].Add(e)
		cursor++
		if cursor == RateWidth {
			ApplyPermutation(&state)
			cursor = 0
		}
	}
	if cursor > 0 {
		ApplyPermutation(&state)
	}

	return digestFromState(&state)
}

// Merge compresses two digests into one. The two digests fill the rate
// exactly; the first capacity lane carries the rate width as a domain tag.
func Merge(digests [2]Digest) Digest {
	var state [StateWidth]field.Element
	copy(state[:DigestSize], digests[0][:])
	copy(state[DigestSize:2*DigestSize], digests[1][:])
	state[RateWidth] = field.New(RateWidth)

	ApplyPermutation(&state)
	return digestFromState(&state)
}

// MergeWithInt compresses a digest together with a uint64. The value is
// reduced modulo the field order into the lane after the digest; when the
// value is at or above the modulus the quotient, which is always one, goes into
// the next lane and the domain tag grows accordingly.
func MergeWithInt(seed Digest, value uint64) Digest {
	var state [StateWidth]field.Element
	copy(state[:DigestSize], seed[:])

	if value < field.P {
		state[DigestSize] = field.New(value)
		state[RateWidth] = field.New(DigestSize + 1)
	} else {
		state[DigestSize] = field.New(value - field.P)
		state[DigestSize+1] = field.One
		state[RateWidth] = field.New(DigestSize + 2)
	}

	ApplyPermutation(&state)
	return digestFromState(&state)
}

func digestFromState(state *[StateWidth]field.Element) Digest {
	var d Digest
	copy(d[:], state[:DigestSize])
	return d
}
