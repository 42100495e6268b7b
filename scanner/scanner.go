// Package scanner turns raw SentMessage event logs from L2 into decoded,
// ordered types.SentMessage values ready for proof construction.
package scanner

import (
	"context"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/types"
)

// Scanner decodes and orders messages sent from L2 within a height range.
type Scanner struct {
	l2           *l2client.Client
	blockOffset  uint64
}

// New creates a Scanner over l2. blockOffset is the constant difference
// between L2 block numbers and the element indices the state commitment
// chain tracks (it accounts for any pre-rollup L2 genesis history).
func New(l2 *l2client.Client, blockOffset uint64) *Scanner {
	return &Scanner{l2: l2, blockOffset: blockOffset}
}

// GetSentMessages returns every SentMessage emitted in [fromHeight,
// toHeight] (inclusive, in L2 height terms), decoded and ordered by
// (height, logIndex).
func (s *Scanner) GetSentMessages(ctx context.Context, fromHeight, toHeight uint64) ([]*types.SentMessage, error) {
	logs, err := s.l2.FilterSentMessages(ctx, fromHeight+s.blockOffset, toHeight+s.blockOffset)
	if err != nil {
		return nil, errors.Wrap(err, "scanner: filtering SentMessage logs")
	}
	messages := make([]*types.SentMessage, 0, len(logs))
	for _, l := range logs {
		target, sender, data, nonce, err := contracts.DecodeRelayMessagePayload(l.Message)
		if err != nil {
			return nil, errors.Wrap(err, "scanner: decoding SentMessage payload")
		}
		calldata, err := contracts.EncodeRelayMessagePayload(target, sender, data, nonce)
		if err != nil {
			return nil, errors.Wrap(err, "scanner: re-encoding relayMessage calldata")
		}
		messages = append(messages, &types.SentMessage{
			Target:   target,
			Sender:   sender,
			Data:     data,
			Nonce:    new(big.Int).SetUint64(nonce),
			Calldata: calldata,
			Hash:     crypto.Keccak256Hash(calldata),
			Height:   l.BlockNumber - s.blockOffset,
			LogIndex: l.LogIndex,
		})
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Height != messages[j].Height {
			return messages[i].Height < messages[j].Height
		}
		return messages[i].LogIndex < messages[j].LogIndex
	})
	return messages, nil
}
