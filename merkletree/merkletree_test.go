package merkletree

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func hashOf(b byte) common.Hash {
	var h common.Hash
	h[31] = b
	return h
}

func TestNewPadsToPowerOfTwo(t *testing.T) {
	tree := New([]common.Hash{hashOf(1), hashOf(2), hashOf(3)})
	if len(tree.levels[0]) != 4 {
		t.Fatalf("expected padded leaf row of length 4, got %d", len(tree.levels[0]))
	}
	if tree.levels[0][0] != hashLeaf(hashOf(1)) {
		t.Fatalf("expected leaf 0 to be keccak256 of the raw state root")
	}
	if tree.levels[0][3] != hashLeaf(zeroHash) {
		t.Fatalf("expected padding leaf to be keccak256 of 32 zero bytes")
	}
}

func TestNewEmptyTreeRootIsHashOfZero(t *testing.T) {
	tree := New(nil)
	if tree.Root() != hashLeaf(zeroHash) {
		t.Fatalf("expected root of empty tree to be keccak256 of 32 zero bytes, got %s", tree.Root())
	}
}

func TestProveAndVerifyRoundTrip(t *testing.T) {
	leaves := []common.Hash{hashOf(1), hashOf(2), hashOf(3), hashOf(4), hashOf(5)}
	tree := New(leaves)
	for i, leaf := range leaves {
		proof, err := tree.Prove(uint64(i))
		if err != nil {
			t.Fatalf("Prove(%d): %v", i, err)
		}
		if !Verify(tree.Root(), leaf, proof) {
			t.Fatalf("Verify failed for leaf index %d", i)
		}
	}
}

func TestProveRejectsOutOfRangeIndex(t *testing.T) {
	tree := New([]common.Hash{hashOf(1), hashOf(2)})
	if _, err := tree.Prove(2); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestVerifyRejectsWrongLeaf(t *testing.T) {
	leaves := []common.Hash{hashOf(1), hashOf(2), hashOf(3)}
	tree := New(leaves)
	proof, err := tree.Prove(0)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify(tree.Root(), hashOf(99), proof) {
		t.Fatalf("expected Verify to reject a mismatched leaf")
	}
}

func TestSingleLeafTree(t *testing.T) {
	leaf := hashOf(7)
	tree := New([]common.Hash{leaf})
	if tree.Root() != hashLeaf(leaf) {
		t.Fatalf("single-leaf tree root should equal keccak256 of the leaf")
	}
	proof, err := tree.Prove(0)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(proof.Siblings) != 0 {
		t.Fatalf("single-leaf tree should have an empty sibling path")
	}
}
