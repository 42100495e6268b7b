// Package proof builds the two-level inclusion proof a relayed message
// needs: a Merkle proof that a state root sits inside its committed batch,
// and an account/storage trie witness that the message was recorded by the
// L2-to-L1 message passer at that state root.
package proof

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/batchindex"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/merkletree"
	"github.com/xdmrelay/relayer/types"
)

// Builder assembles MessageProof values for sent messages.
type Builder struct {
	batches            *batchindex.BatchIndex
	l2                 *l2client.Client
	messagePasser      common.Address
	l2MessengerAddress common.Address
	blockOffset        uint64
}

// New creates a Builder over the given batch index and L2 client.
// messagePasser is the L2ToL1MessagePasser contract address whose storage
// records which messages have been sent; l2MessengerAddress is the L2
// cross-domain messenger address folded into the storage slot derivation;
// blockOffset is the same L2 genesis offset the scanner applies, needed to
// translate a message's height back into a raw L2 block number for
// eth_getProof.
func New(batches *batchindex.BatchIndex, l2 *l2client.Client, messagePasser, l2MessengerAddress common.Address, blockOffset uint64) *Builder {
	return &Builder{batches: batches, l2: l2, messagePasser: messagePasser, l2MessengerAddress: l2MessengerAddress, blockOffset: blockOffset}
}

// storageKey computes the message storage slot:
// keccak256(keccak256(calldata || l2CrossDomainMessengerAddress) || 0x00...00),
// the slot 0 of the messenger's sent-message status map.
func storageKey(calldata []byte, l2MessengerAddress common.Address) common.Hash {
	inner := crypto.Keccak256Hash(calldata, l2MessengerAddress.Bytes())
	var zeros common.Hash
	return crypto.Keccak256Hash(inner.Bytes(), zeros.Bytes())
}

// BuildProof assembles the inclusion proof for msg, whose covering batch is
// header (the caller is expected to have already checked the batch has
// exited its fraud-proof window).
func (b *Builder) BuildProof(ctx context.Context, msg *types.SentMessage, header *types.StateBatchHeader) (*types.MessageProof, error) {
	if !header.Contains(msg.Height) {
		return nil, errors.Errorf("proof: batch %d does not cover height %d", header.BatchIndex, msg.Height)
	}
	index := header.IndexOf(msg.Height)
	stateRoot := header.StateRoots[index]

	tree := merkletree.New(header.StateRoots)
	if tree.Root() != header.BatchRoot {
		return nil, errors.Errorf("proof: rebuilt batch root %s does not match committed root %s", tree.Root(), header.BatchRoot)
	}
	stateRootProof, err := tree.Prove(index)
	if err != nil {
		return nil, errors.Wrap(err, "proof: building state root inclusion proof")
	}

	key := storageKey(msg.Calldata, b.l2MessengerAddress)
	trieProof, err := b.l2.GetProof(ctx, b.messagePasser, key, msg.Height+b.blockOffset)
	if err != nil {
		return nil, errors.Wrap(err, "proof: fetching account/storage proof")
	}
	stateTrieWitness, err := rlp.EncodeToBytes(trieProof.AccountProof)
	if err != nil {
		return nil, errors.Wrap(err, "proof: RLP-encoding account trie witness")
	}
	storageTrieWitness, err := rlp.EncodeToBytes(trieProof.StorageProof)
	if err != nil {
		return nil, errors.Wrap(err, "proof: RLP-encoding storage trie witness")
	}

	return &types.MessageProof{
		StateRoot:            stateRoot,
		StateRootBatchHeader: *header,
		StateRootProof:       *stateRootProof,
		StateTrieWitness:     stateTrieWitness,
		StorageTrieWitness:   storageTrieWitness,
	}, nil
}
