// Package tip5 implements the Tip5_320 arithmetization-oriented hash
// function over the Goldilocks field.
//
// Tip5_320 is a sponge construction over a 16-lane state split into a
// 10-lane rate and a 6-lane capacity, producing 5-element digests at a
// 160-bit collision resistance level. Its permutation runs five rounds of
// a hybrid S-box layer (split-and-lookup on the first four lanes, x^7 on
// the rest), the fixed 16x16 circulant MDS layer, and a round-constant
// injection.
// Reference: https://eprint.iacr.org/2023/107.pdf
package tip5

import (
	"encoding/binary"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/mds"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/tip"
)

// Tip5_320 parameters.
const (
	StateWidth    = 16
	RateWidth     = 10
	CapacityWidth = 6
	DigestSize    = 5
	NumRounds     = 5

	// The capacity occupies lanes [RateWidth, StateWidth); digests are
	// drawn from lanes [0, DigestSize).

	// CollisionResistance is the declared security level in bits.
	CollisionResistance = 160
)

// MDS is the 16x16 circulant diffusion matrix of the permutation. The
// permutation itself multiplies by it through the frequency-domain kernel
// in the mds package; the expanded matrix is exposed for consumers that
// need the coefficients, such as AIR constraint builders.
var MDS = mds.Circulant16()

// ARK holds the round constants, NumRounds rows of StateWidth elements.
// Round r injects ARK[r*StateWidth : (r+1)*StateWidth] after the MDS layer.
var ARK = [NumRounds * StateWidth]field.Element{
	field.New(13630775303355457758),
	field.New(16896927574093233874),
	field.New(10379449653650130495),
	field.New(1965408364413093495),
	field.New(15232538947090185111),
	field.New(15892634398091747074),
	field.New(3989134140024871768),
	field.New(2851411912127730865),
	field.New(8709136439293758776),
	field.New(3694858669662939734),
	field.New(12692440244315327141),
	field.New(10722316166358076749),
	field.New(12745429320441639448),
	field.New(17932424223723990421),
	field.New(7558102534867937463),
	field.New(15551047435855531404),
	field.New(17532528648579384106),
	field.New(5216785850422679555),
	field.New(15418071332095031847),
	field.New(11921929762955146258),
	field.New(9738718993677019874),
	field.New(3464580399432997147),
	field.New(13408434769117164050),
	field.New(264428218649616431),
	field.New(4436247869008081381),
	field.New(4063129435850804221),
	field.New(2865073155741120117),
	field.New(5749834437609765994),
	field.New(6804196764189408435),
	field.New(17060469201292988508),
	field.New(9475383556737206708),
	field.New(12876344085611465020),
	field.New(13835756199368269249),
	field.New(1648753455944344172),
	field.New(9836124473569258483),
	field.New(12867641597107932229),
	field.New(11254152636692960595),
	field.New(16550832737139861108),
	field.New(11861573970480733262),
	field.New(1256660473588673495),
	field.New(13879506000676455136),
	field.New(10564103842682358721),
	field.New(16142842524796397521),
	field.New(3287098591948630584),
	field.New(685911471061284805),
	field.New(5285298776918878023),
	field.New(18310953571768047354),
	field.New(3142266350630002035),
	field.New(549990724933663297),
	field.New(4901984846118077401),
	field.New(11458643033696775769),
	field.New(8706785264119212710),
	field.New(12521758138015724072),
	field.New(11877914062416978196),
	field.New(11333318251134523752),
	field.New(3933899631278608623),
	field.New(16635128972021157924),
	field.New(10291337173108950450),
	field.New(4142107155024199350),
	field.New(16973934533787743537),
	field.New(11068111539125175221),
	field.New(17546769694830203606),
	field.New(5315217744825068993),
	field.New(4609594252909613081),
	field.New(3350107164315270407),
	field.New(17715942834299349177),
	field.New(9600609149219873996),
	field.New(12894357635820003949),
	field.New(4597649658040514631),
	field.New(7735563950920491847),
	field.New(1663379455870887181),
	field.New(13889298103638829706),
	field.New(7375530351220884434),
	field.New(3502022433285269151),
	field.New(9231805330431056952),
	field.New(9252272755288523725),
	field.New(10014268662326746219),
	field.New(15565031632950843234),
	field.New(1209725273521819323),
	field.New(6024642864597845108),
}

// ApplyPermutation applies the five-round Tip5 permutation to the state in
// place.
func ApplyPermutation(state *[StateWidth]field.Element) {
	for r := 0; r < NumRounds; r++ {
		round(state, r)
	}
}

// round applies one round: S-box layer, MDS layer, round constants.
func round(state *[StateWidth]field.Element, r int) {
	sboxLayer(state)
	mds.Apply16(state)
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
