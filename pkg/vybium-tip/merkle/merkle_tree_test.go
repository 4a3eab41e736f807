package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
	"github.com/vybium/vybium-tip/pkg/vybium-tip/tip5"
)

func leafDigests(n int) []tip5.Digest {
	leaves := make([]tip5.Digest, n)
	for i := range leaves {
		leaves[i] = tip5.HashElements([]field.Element{field.New(uint64(i))})
	}
	return leaves
}

func TestNewRejectsBadLeafCounts(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(leafDigests(3))
	assert.Error(t, err)
}

func TestSingleLeafTree(t *testing.T) {
	leaves := leafDigests(1)
	tree, err := New(leaves)
	require.NoError(t, err)

	assert.Equal(t, 1, tree.NumLeaves())
	assert.Equal(t, 0, tree.Height())
	assert.True(t, tree.Root().Equal(leaves[0]))
}

func TestRootMatchesManualMerge(t *testing.T) {
	leaves := leafDigests(4)
	tree, err := New(leaves)
	require.NoError(t, err)

	left := tip5.Merge([2]tip5.Digest{leaves[0], leaves[1]})
	right := tip5.Merge([2]tip5.Digest{leaves[2], leaves[3]})
	want := tip5.Merge([2]tip5.Digest{left, right})

	assert.True(t, tree.Root().Equal(want))
	assert.Equal(t, 2, tree.Height())
}

func TestLeaf(t *testing.T) {
	leaves := leafDigests(8)
	tree, err := New(leaves)
	require.NoError(t, err)

	for i, want := range leaves {
		got, err := tree.Leaf(i)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "leaf %d", i)
	}

	_, err = tree.Leaf(8)
	assert.Error(t, err)
	_, err = tree.Leaf(-1)
	assert.Error(t, err)
}

func TestAuthenticationPathVerifies(t *testing.T) {
	leaves := leafDigests(16)
	tree, err := New(leaves)
	require.NoError(t, err)

	for i := range leaves {
		path, err := tree.AuthenticationPath(i)
		require.NoError(t, err)
		require.Len(t, path, tree.Height())

		assert.True(t, VerifyInclusionProof(tree.Root(), i, leaves[i], path), "leaf %d", i)
	}
}

func TestVerifyRejectsTamperedProofs(t *testing.T) {
	leaves := leafDigests(8)
	tree, err := New(leaves)
	require.NoError(t, err)

	path, err := tree.AuthenticationPath(3)
	require.NoError(t, err)

	// wrong leaf
	assert.False(t, VerifyInclusionProof(tree.Root(), 3, leaves[4], path))
	// wrong index
	assert.False(t, VerifyInclusionProof(tree.Root(), 2, leaves[3], path))
	// index outside the tree
	assert.False(t, VerifyInclusionProof(tree.Root(), 8, leaves[3], path))
	// tampered sibling
	tampered := append([]tip5.Digest{}, path...)
	tampered[0] = tip5.HashElements([]field.Element{field.New(999)})
	assert.False(t, VerifyInclusionProof(tree.Root(), 3, leaves[3], tampered))
}
