// Package tip4 implements the Tip4_256 arithmetization-oriented hash
// function over the Goldilocks field.
//
// Tip4_256 is a sponge construction over a 16-lane state split into a
// 12-lane rate and a 4-lane capacity, producing 4-element digests at a
// 128-bit collision resistance level. It shares its permutation structure
// and MDS matrix with Tip5_320 and differs in the rate/capacity split, the
// digest size and the round constants. Tip4_256 additionally offers a
// Jive-style four-to-one digest compression built on the permutation.
package tip4

import (
	"encoding/binary"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/mds"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/tip"
)

// Tip4_256 parameters.
const (
	StateWidth    = 16
	RateWidth     = 12
	CapacityWidth = 4
	DigestSize    = 4
	NumRounds     = 5

	// The capacity occupies lanes [RateWidth, StateWidth); digests are
	// drawn from lanes [0, DigestSize).

	// CollisionResistance is the declared security level in bits.
	CollisionResistance = 128
)

// MDS is the 16x16 circulant diffusion matrix of the permutation, shared
// with Tip5_320. The permutation multiplies by it through the
// frequency-domain kernel in the mds package.
var MDS = mds.Circulant16()

// ARK holds the round constants, NumRounds rows of StateWidth elements.
// Round r injects ARK[r*StateWidth : (r+1)*StateWidth] after the MDS layer.
var ARK = [NumRounds * StateWidth]field.Element{
	field.New(9622186031910044683),
	field.New(17867972258790825550),
	field.New(354274081688010307),
	field.New(468725235366290897),
	field.New(13360302541748643832),
	field.New(12399492251284876919),
	field.New(12909986160335075322),
	field.New(1815640861487527620),
	field.New(11104124056460127097),
	field.New(11143792926665714066),
	field.New(739769375752685238),
	field.New(8638196641864906807),
	field.New(1626267948808764941),
	field.New(14559803767622257430),
	field.New(8608771324886936395),
	field.New(17376817156579547474),
	field.New(6900242263364955626),
	field.New(5128298508949063069),
	field.New(2439197188964391658),
	field.New(18025868113165729689),
	field.New(13271095112317326148),
	field.New(14539508710680462815),
	field.New(1814619555406523124),
	field.New(2305260290057316178),
	field.New(17948118643325885148),
	field.New(15378738315319086896),
	field.New(9482994224779967591),
	field.New(14063747891385647974),
	field.New(8575847578570043835),
	field.New(17771699652625747221),
	field.New(15069624307703670769),
	field.New(1067710001372530530),
	field.New(14288536894698711007),
	field.New(4850676673430068066),
	field.New(18400877489291028762),
	field.New(10005554576677996320),
	field.New(6182715711988183),
	field.New(15953130941431775018),
	field.New(8984971295013423611),
	field.New(15327878944229354971),
	field.New(3570069795041281812),
	field.New(13341617400081194025),
	field.New(918116901729389618),
	field.New(14234982998534480262),
	field.New(5701069417929640641),
	field.New(5831675206898297401),
	field.New(5592615769323447792),
	field.New(17123637692387963547),
	field.New(7037887618025588017),
	field.New(18307907907416092161),
	field.New(3953725888417495368),
	field.New(12269701699634033637),
	field.New(5271338444584828244),
	field.New(6889363626823681756),
	field.New(12923160299272597600),
	field.New(2410580464102554935),
	field.New(14649351315729084568),
	field.New(5135021742928630705),
	field.New(3851771900658518347),
	field.New(2225032988102716321),
	field.New(18239251072085702960),
	field.New(16944903630085031800),
	field.New(173105783482960536),
	field.New(10575340090756989391),
	field.New(5500806066104048171),
	field.New(4723369135876256629),
	field.New(5742194585870827212),
	field.New(18133894379027877237),
	field.New(15670175920792266344),
	field.New(16286693063214949301),
	field.New(14091663506995489871),
	field.New(6165520283754391917),
	field.New(17087273890355688559),
	field.New(16616743491016495008),
	field.New(8349595373551128665),
	field.New(14902304793207268324),
	field.New(15082155344477466990),
	field.New(17844150648175152146),
	field.New(8805425319329711997),
	field.New(15891792586378666322),
}

// ApplyPermutation applies the five-round Tip4 permutation to the state in
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

// Merge compresses two digests into one. The eight digest elements occupy
// the first eight rate lanes, the remaining four rate lanes stay zero, and
// the first capacity lane carries the rate width as a domain tag.
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

// ApplyJive4Summation compresses a full state into a digest: the state is
// copied, permuted, and each output lane is the sum of the four stripes of
// the initial state plus the four stripes of the permuted state.
func ApplyJive4Summation(state [StateWidth]field.Element) Digest {
	permuted := state
	ApplyPermutation(&permuted)

	var d Digest
	for j := 0; j < DigestSize; j++ {
		d[j] = state[j].
			Add(state[j+DigestSize]).
			Add(state[j+2*DigestSize]).
			Add(state[j+3*DigestSize]).
			Add(permuted[j]).
			Add(permuted[j+DigestSize]).
			Add(permuted[j+2*DigestSize]).
			Add(permuted[j+3*DigestSize])
	}
	return d
}

// Merge4Digests compresses four digests into one using the Jive summation.
// The sixteen digest elements form the initial permutation state.
func Merge4Digests(digests [4]Digest) Digest {
	var state [StateWidth]field.Element
	for i, d := range digests {
		copy(state[i*DigestSize:(i+1)*DigestSize], d[:])
	}
	return ApplyJive4Summation(state)
}
