package tip4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

func rangeElements(n int) []field.Element {
	elements := make([]field.Element, n)
	for i := range elements {
		elements[i] = field.New(uint64(i))
	}
	return elements
}

func rangeBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestApplyPermutation(t *testing.T) {
	var state [StateWidth]field.Element
	for i := range state {
		state[i] = field.New(uint64(i))
	}

	ApplyPermutation(&state)

	expected := [StateWidth]uint64{
		1405704068530768491, 14254955191687300246, 12784991771303222425, 6155014142684916830,
		13040597188746811760, 5332284506715875013, 3432881961113763228, 11417172106187474650,
		932759766073231754, 8310958696272505631, 10507769917654291547, 1611948864111127631,
		2534981257908346405, 16129865582751157190, 1805330405933890074, 16172207121551561443,
	}
	for i, want := range expected {
		assert.Equal(t, want, state[i].Value(), "state lane %d", i)
	}
}

func TestApplyPermutationDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s1, s2 [StateWidth]field.Element
		for i := range s1 {
			v := rapid.Uint64().Draw(t, "lane")
			s1[i] = field.New(v)
			s2[i] = field.New(v)
		}
		ApplyPermutation(&s1)
		ApplyPermutation(&s2)
		assert.Equal(t, s1, s2)
	})
}

func TestHashElements(t *testing.T) {
	digest := HashElements(rangeElements(16))

	expected := [DigestSize]uint64{
		17401223873660012682, 7182553131333346132, 6890342342895555820, 11540886033570406229,
	}
	for i, want := range expected {
		assert.Equal(t, want, digest[i].Value(), "digest lane %d", i)
	}
}

func TestHashKnownAnswers(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want [DigestSize]uint64
	}{
		{"abc", []byte("abc"), [DigestSize]uint64{
			2857402337422201725, 1557911827561901126, 12830648489647291956, 6258286542423400228,
		}},
		{"seven bytes", rangeBytes(7), [DigestSize]uint64{
			14684621878925778100, 13571859768804756183, 7309429241075278330, 335479697648724141,
		}},
		{"fourteen bytes", rangeBytes(14), [DigestSize]uint64{
			12945170080980460551, 8323224888774792155, 14804016520495319025, 18325066547109610196,
		}},
		{"hundred bytes", rangeBytes(100), [DigestSize]uint64{
			17873963684322957839, 14106967760916539839, 14549653158545629569, 8720145008494007904,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			digest := Hash(tc.data)
			for i, want := range tc.want {
				assert.Equal(t, want, digest[i].Value(), "digest lane %d", i)
			}
		})
	}
}

func TestHashEmptyInput(t *testing.T) {
	// No chunks means no absorption and no permutation: the digest is the
	// all-zero prefix of the untouched state.
	assert.True(t, Hash(nil).IsZero())
	assert.True(t, Hash([]byte{}).IsZero())
	assert.True(t, HashElements(nil).IsZero())
}

func TestHashElementsLengthTag(t *testing.T) {
	// Trailing zero elements change the element count and with it the
	// capacity tag, so the digests must differ.
	short := HashElements([]field.Element{field.New(1), field.New(2)})
	padded := HashElements([]field.Element{field.New(1), field.New(2), field.Zero})
	assert.False(t, short.Equal(padded))
}

func TestHashTrailingZeroByteChangesDigest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		padded := append(append([]byte{}, data...), 0x00)
		assert.False(t, Hash(data).Equal(Hash(padded)))
	})
}

func TestHashMatchesElementAbsorption(t *testing.T) {
	// Hashing bytes must agree with hashing the element sequence obtained
	// from the documented 7-byte chunk-and-pad rule.
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "data")

		numChunks := (len(data) + 6) / 7
		elements := make([]field.Element, numChunks)
		for i := 0; i < numChunks; i++ {
			var buf [8]byte
			chunk := data[7*i : min(7*i+7, len(data))]
			copy(buf[:], chunk)
			if i == numChunks-1 {
				buf[len(chunk)] = 1
			}
			var value uint64
			for j := 7; j >= 0; j-- {
				value = value<<8 | uint64(buf[j])
			}
			elements[i] = field.New(value)
		}

		assert.True(t, Hash(data).Equal(HashElements(elements)))
	})
}

func TestMerge(t *testing.T) {
	left := digestOfRange(1)
	right := digestOfRange(1 + DigestSize)

	digest := Merge([2]Digest{left, right})

	expected := [DigestSize]uint64{
		4163598771611725914, 14025749201540622839, 10032769257204353811, 13413188242903243996,
	}
	for i, want := range expected {
		assert.Equal(t, want, digest[i].Value(), "digest lane %d", i)
	}
}

func TestMergeWithInt(t *testing.T) {
	seed := digestOfRange(1)

	small := MergeWithInt(seed, 7)
	expectedSmall := [DigestSize]uint64{
		4630662590772821332, 3213351021157783834, 2383737062268527977, 13721695875785732316,
	}
	for i, want := range expectedSmall {
		assert.Equal(t, want, small[i].Value(), "digest lane %d", i)
	}

	// 2^64 - 1 exceeds the modulus, so the quotient lane and the longer
	// domain tag come into play.
	large := MergeWithInt(seed, ^uint64(0))
	expectedLarge := [DigestSize]uint64{
		4277170215959381979, 3159786424344666742, 11409051501640998727, 13716878459863158144,
	}
	for i, want := range expectedLarge {
		assert.Equal(t, want, large[i].Value(), "digest lane %d", i)
	}
}

// digestOfRange builds a digest whose elements are start, start+1, ...
func digestOfRange(start int) Digest {
	var d Digest
	for i := 0; i < DigestSize; i++ {
		d[i] = field.New(uint64(start + i))
	}
	return d
}

func TestDigestRoundTrip(t *testing.T) {
	digest := HashElements(rangeElements(3))

	recovered := FromBytes(digest.ToBytes())
	require.True(t, digest.Equal(recovered))
	assert.Equal(t, DigestSize*16, len(digest.Hex()))
}

func TestMerge4Digests(t *testing.T) {
	digests := [4]Digest{
		digestOfRange(1),
		digestOfRange(5),
		digestOfRange(9),
		digestOfRange(13),
	}

	digest := Merge4Digests(digests)

	expected := [DigestSize]uint64{
		2629919731344848195, 11320534225967620450, 9105957284004244546, 5689754513964386530,
	}
	for i, want := range expected {
		assert.Equal(t, want, digest[i].Value(), "digest lane %d", i)
	}
}

func TestJiveSummationMatchesMerge4(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var digests [4]Digest
		var state [StateWidth]field.Element
		for i := 0; i < 4; i++ {
			for j := 0; j < DigestSize; j++ {
				v := field.New(rapid.Uint64().Draw(t, "element"))
				digests[i][j] = v
				state[i*DigestSize+j] = v
			}
		}
		assert.True(t, Merge4Digests(digests).Equal(ApplyJive4Summation(state)))
	})
}
