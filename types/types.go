// Package types defines the value objects exchanged between the relayer's
// components: batch headers read from the state commitment chain, messages
// scanned off the L2 cross-domain messenger, and the inclusion proof
// assembled for each message before it is relayed to L1.
package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/xdmrelay/relayer/contracts"
)

// StateBatchHeader describes one state batch appended to the L1 state
// commitment chain. prevTotalElements is the L2 height of stateRoots[0];
// stateRoots[i] is the committed root for L2 height prevTotalElements+i.
type StateBatchHeader struct {
	BatchIndex        uint64
	BatchRoot         common.Hash
	BatchSize         uint64
	PrevTotalElements uint64
	ExtraData         []byte
	StateRoots        []common.Hash
}

// Contains reports whether the batch covers the given L2 height.
func (h *StateBatchHeader) Contains(height uint64) bool {
	return height >= h.PrevTotalElements && height < h.PrevTotalElements+h.BatchSize
}

// IndexOf returns the position of height within the batch's state-root list.
// The caller must have already verified Contains(height).
func (h *StateBatchHeader) IndexOf(height uint64) uint64 {
	return height - h.PrevTotalElements
}

// SentMessage is one message emitted by the L2 cross-domain messenger's
// SentMessage(bytes) event, decoded into its relayMessage(...) fields.
type SentMessage struct {
	Target common.Address
	Sender common.Address
	Data   []byte
	Nonce  *big.Int

	// Calldata is the ABI-encoded relayMessage(target, sender, data, nonce)
	// payload exactly as emitted by the event.
	Calldata []byte

	// Hash is keccak256(Calldata); it is the key used to look up
	// successfulMessages on L1.
	Hash common.Hash

	// Height is the L2 block number where the event occurred, with
	// blockOffset already subtracted back out.
	Height uint64

	// LogIndex disambiguates ordering for multiple messages in one block.
	LogIndex uint
}

// StateRootProof is the position and sibling path within the padded
// state-root Merkle tree for one batch element.
type StateRootProof struct {
	Index     uint64
	Siblings  []common.Hash
}

// MessageProof is everything the L1 cross-domain messenger needs to verify
// and execute a relayed message.
type MessageProof struct {
	StateRoot            common.Hash
	StateRootBatchHeader StateBatchHeader
	StateRootProof       StateRootProof
	StateTrieWitness     []byte
	StorageTrieWitness   []byte
}

// ToABI converts a MessageProof into the tuple relayMessage expects. Only
// the on-chain fields of the batch header are carried across; StateRoots is
// local bookkeeping used to build the proof and is never submitted.
func (p *MessageProof) ToABI() contracts.L1CrossDomainMessengerMessageProof {
	siblings := make([][32]byte, len(p.StateRootProof.Siblings))
	for i, s := range p.StateRootProof.Siblings {
		siblings[i] = s
	}
	return contracts.L1CrossDomainMessengerMessageProof{
		StateRoot: p.StateRoot,
		StateRootBatchHeader: contracts.StateCommitmentChainBatchHeader{
			BatchIndex:        p.StateRootBatchHeader.BatchIndex,
			BatchRoot:         p.StateRootBatchHeader.BatchRoot,
			BatchSize:         p.StateRootBatchHeader.BatchSize,
			PrevTotalElements: p.StateRootBatchHeader.PrevTotalElements,
			ExtraData:         p.StateRootBatchHeader.ExtraData,
		},
		StateRootProof: contracts.L1CrossDomainMessengerStateRootProof{
			Index:    p.StateRootProof.Index,
			Siblings: siblings,
		},
		StateTrieWitness:   p.StateTrieWitness,
		StorageTrieWitness: p.StorageTrieWitness,
	}
}

// ToABI converts a StateBatchHeader into the on-chain tuple
// insideFraudProofWindow expects.
func (h *StateBatchHeader) ToABI() contracts.StateCommitmentChainBatchHeader {
	return contracts.StateCommitmentChainBatchHeader{
		BatchIndex:        h.BatchIndex,
		BatchRoot:         h.BatchRoot,
		BatchSize:         h.BatchSize,
		PrevTotalElements: h.PrevTotalElements,
		ExtraData:         h.ExtraData,
	}
}

// Cursor is the relay loop's advancing position over L2 heights. It is
// never persisted; every process restart recomputes it from
// l2ChainStartingHeight and chain state.
type Cursor struct {
	LastFinalizedTxHeight   uint64
	NextUnfinalizedTxHeight uint64
}
