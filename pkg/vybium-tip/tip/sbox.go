// Package tip holds the S-box material shared by the Tip4, Tip4p and Tip5
// permutations: the fixed 256-entry byte substitution table and the
// split-and-lookup map built on it.
//
// Split-and-lookup substitutes each byte of an element's raw Montgomery
// word through the table and reassembles the result as a Montgomery word.
// Over the integers the map has low degree per byte, yet over the field it
// has high algebraic degree, while remaining cheap to arithmetize as a
// lookup argument. The permutations apply it to their first four lanes
// only; the remaining lanes use the x^7 power map.
package tip

import (
	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

// NumSplitAndLookup is the number of state lanes processed by
// split-and-lookup in every Tip round; the remaining lanes use Exp7.
const NumSplitAndLookup = 4

// LookupTable is the byte substitution table shared by all Tip
// instantiations. It is the permutation x -> ((x+1)^3 - 1) mod 257
// restricted to {0..255}.
var LookupTable = [256]uint8{
	0, 7, 26, 63, 124, 215, 85, 254, 214, 228, 45, 185, 140, 173, 33, 240,
	29, 177, 176, 32, 8, 110, 87, 202, 204, 99, 150, 106, 230, 14, 235, 128,
	213, 239, 212, 138, 23, 130, 208, 6, 44, 71, 93, 116, 146, 189, 251, 81,
	199, 97, 38, 28, 73, 179, 95, 84, 152, 48, 35, 119, 49, 88, 242, 3,
	148, 169, 72, 120, 62, 161, 166, 83, 175, 191, 137, 19, 100, 129, 112, 55,
	221, 102, 218, 61, 151, 237, 68, 164, 17, 147, 46, 234, 203, 216, 22, 141,
	65, 57, 123, 12, 244, 54, 219, 231, 96, 77, 180, 154, 5, 253, 133, 165,
	98, 195, 205, 134, 245, 30, 9, 188, 59, 142, 186, 197, 181, 144, 92, 31,
	224, 163, 111, 74, 58, 69, 113, 196, 67, 246, 225, 10, 121, 50, 60, 157,
	90, 122, 2, 250, 101, 75, 178, 159, 24, 36, 201, 11, 243, 132, 198, 190,
	114, 233, 39, 52, 21, 209, 108, 238, 91, 187, 18, 104, 194, 37, 153, 34,
	200, 143, 126, 155, 236, 118, 64, 80, 172, 89, 94, 193, 135, 183, 86, 107,
	252, 13, 167, 206, 136, 220, 207, 103, 171, 160, 76, 182, 227, 217, 158, 56,
	174, 4, 66, 109, 139, 162, 184, 211, 249, 47, 125, 232, 117, 43, 16, 42,
	127, 20, 241, 25, 149, 105, 156, 51, 53, 168, 145, 247, 223, 79, 78, 226,
	15, 222, 82, 115, 70, 210, 27, 41, 1, 170, 40, 131, 192, 229, 248, 255,
}

// SplitAndLookup substitutes each byte of the element's Montgomery-form
// word through LookupTable, in place.
func SplitAndLookup(element *field.Element) {
	b := element.ToBytes()
	for i := 0; i < 8; i++ {
		b[i] = LookupTable[b[i]]
	}
	*element = field.FromBytes(b)
}
