// Package merkletree builds the fixed-shape binary Merkle tree the state
// commitment chain commits to: leaf i is keccak256(stateRoots[i]), padded
// up to the next power of two with keccak256 of 32 zero bytes, and every
// internal node is keccak256(left||right). This shape has to match the L1
// verifier bit-for-bit, so it is implemented directly rather than through a
// general-purpose tree library.
package merkletree

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/types"
)

// ErrIndexOutOfRange is returned by Prove when the requested leaf index is
// not one of the original, unpadded leaves.
var ErrIndexOutOfRange = errors.New("merkletree: index out of range")

// zeroHash is the raw 32-byte-zero value hashed to produce the padding leaf.
var zeroHash = common.Hash{}

// Tree is a complete binary tree over a padded leaf set. levels[0] is the
// leaf row; levels[len(levels)-1] holds the single root node.
type Tree struct {
	numLeaves int // number of real, unpadded leaves
	levels    [][]common.Hash
}

// hashNode computes the parent of two sibling nodes.
func hashNode(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left[:], right[:])
}

// hashLeaf derives a tree leaf from a raw 32-byte state root:
// keccak256(raw). Padding slots hash the zero value the same way, since
// keccak256(zeroHash[:]) is exactly keccak256 of 32 zero bytes.
func hashLeaf(raw common.Hash) common.Hash {
	return crypto.Keccak256Hash(raw[:])
}

// nextPowerOfTwo returns the smallest power of two >= n, or 1 if n == 0.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// New builds a tree over leaves, hashing each raw state root into its leaf
// value and padding with hashLeaf(zeroHash) up to the next power of two. An
// empty leaf set produces a single-node tree whose root is hashLeaf(zeroHash).
func New(leaves []common.Hash) *Tree {
	size := nextPowerOfTwo(len(leaves))
	base := make([]common.Hash, size)
	for i := range base {
		if i < len(leaves) {
			base[i] = hashLeaf(leaves[i])
		} else {
			base[i] = hashLeaf(zeroHash)
		}
	}

	levels := [][]common.Hash{base}
	for len(levels[len(levels)-1]) > 1 {
		prev := levels[len(levels)-1]
		next := make([]common.Hash, len(prev)/2)
		for i := range next {
			next[i] = hashNode(prev[2*i], prev[2*i+1])
		}
		levels = append(levels, next)
	}
	return &Tree{numLeaves: len(leaves), levels: levels}
}

// Root returns the tree's root hash.
func (t *Tree) Root() common.Hash {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Prove returns the sibling path for leaf index, bottom level first. index
// must be one of the original, unpadded leaves.
func (t *Tree) Prove(index uint64) (*types.StateRootProof, error) {
	if index >= uint64(t.numLeaves) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, numLeaves %d", index, t.numLeaves)
	}
	siblings := make([]common.Hash, 0, len(t.levels)-1)
	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		row := t.levels[level]
		var sibling common.Hash
		if idx%2 == 0 {
			sibling = row[idx+1]
		} else {
			sibling = row[idx-1]
		}
		siblings = append(siblings, sibling)
		idx /= 2
	}
	return &types.StateRootProof{Index: index, Siblings: siblings}, nil
}

// Verify recomputes the root from leaf (a raw, unhashed state root — the
// same value passed to New) and proof, and reports whether it matches root.
// It is the inverse of Prove, used by tests and by anything that wants to
// sanity-check a proof before submitting it.
func Verify(root common.Hash, leaf common.Hash, proof *types.StateRootProof) bool {
	node := hashLeaf(leaf)
	idx := proof.Index
	for _, sibling := range proof.Siblings {
		if idx%2 == 0 {
			node = hashNode(node, sibling)
		} else {
			node = hashNode(sibling, node)
		}
		idx /= 2
	}
	return node == root
}
