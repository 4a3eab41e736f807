// Package merkle provides a binary Merkle tree over Tip5_320 digests.
//
// Leaves and internal nodes are Tip5 digests; parents are computed with the
// two-to-one Merge compression. The tree is stored as a flat array using
// the classic heap layout:
//   - nothing lives at index 0
//   - index 1 is the root
//   - the children of node i are nodes 2i and 2i+1
//   - the leaves occupy the second half of the array
package merkle

import (
	"fmt"
	"math/bits"

	"github.com/vybium/vybium-tip/pkg/vybium-tip/tip5"
)

// RootIndex is the node index of the root.
const RootIndex = 1

// Tree is a binary tree of Tip5 digests used to prove the inclusion of
// items in a committed set.
type Tree struct {
	nodes []tip5.Digest
}

// New builds a tree over the given leaves. The number of leaves must be a
// nonzero power of two.
func New(leaves []tip5.Digest) (*Tree, error) {
	numLeaves := len(leaves)
	if numLeaves == 0 {
		return nil, fmt.Errorf("cannot build a Merkle tree with zero leaves")
	}
	if numLeaves&(numLeaves-1) != 0 {
		return nil, fmt.Errorf("number of leaves must be a power of two, got %d", numLeaves)
	}

	nodes := make([]tip5.Digest, 2*numLeaves)
	copy(nodes[numLeaves:], leaves)

	// fill parents bottom-up
	for i := numLeaves - 1; i >= 1; i-- {
		nodes[i] = tip5.Merge([2]tip5.Digest{nodes[2*i], nodes[2*i+1]})
	}

	return &Tree{nodes: nodes}, nil
}

// Root returns the root digest.
func (t *Tree) Root() tip5.Digest {
	return t.nodes[RootIndex]
}

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int {
	return len(t.nodes) / 2
}

// Height returns the number of layers below the root.
func (t *Tree) Height() int {
	return bits.Len(uint(t.NumLeaves())) - 1
}

// Leaf returns the leaf at the given index, counted left to right from
// zero.
func (t *Tree) Leaf(index int) (tip5.Digest, error) {
	if index < 0 || index >= t.NumLeaves() {
		return tip5.Digest{}, fmt.Errorf("leaf index %d out of range [0, %d)", index, t.NumLeaves())
	}
	return t.nodes[t.NumLeaves()+index], nil
}

// AuthenticationPath returns the sibling digests needed to recompute the
// root from the leaf at the given index, ordered from the leaf layer
// upward.
func (t *Tree) AuthenticationPath(index int) ([]tip5.Digest, error) {
	if index < 0 || index >= t.NumLeaves() {
		return nil, fmt.Errorf("leaf index %d out of range [0, %d)", index, t.NumLeaves())
	}

	path := make([]tip5.Digest, 0, t.Height())
	node := t.NumLeaves() + index
	for node > RootIndex {
		path = append(path, t.nodes[node^1])
		node /= 2
	}
	return path, nil
}

// VerifyInclusionProof checks an authentication path against a root. The
// path must have been produced for the given leaf index.
func VerifyInclusionProof(root tip5.Digest, index int, leaf tip5.Digest, path []tip5.Digest) bool {
	if index < 0 || index >= 1<<len(path) {
		return false
	}

	node := (1 << len(path)) + index
	current := leaf
	for _, sibling := range path {
		if node&1 == 0 {
			current = tip5.Merge([2]tip5.Digest{current, sibling})
		} else {
			current = tip5.Merge([2]tip5.Digest{sibling, current})
		}
		node /= 2
	}
	return current.Equal(root)
}
