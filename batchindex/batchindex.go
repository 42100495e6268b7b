// Package batchindex maintains the mapping from L2 heights to the L1 state
// batch that committed them, backed by an in-process LRU cache so repeated
// lookups for nearby heights don't re-scan L1 log history.
package batchindex

import (
	"context"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/l1client"
	"github.com/xdmrelay/relayer/types"
)

// ErrNoBatchForHeight is returned when no cached or on-chain batch covers a
// requested L2 height yet.
var ErrNoBatchForHeight = errors.New("batchindex: no state batch covers this height")

const defaultCacheSize = 4096

// BatchIndex answers "which state batch committed L2 height h" by scanning
// StateBatchAppended logs on demand and caching the decoded headers.
type BatchIndex struct {
	l1 *l1client.Client

	mu              sync.Mutex
	cache           *lru.Cache[uint64, *types.StateBatchHeader]
	byPrevElements  []*types.StateBatchHeader // sorted by PrevTotalElements, mirrors cache contents
	lastScannedL1   uint64
}

// New creates a BatchIndex with an empty cache; the first lookup scans from
// L2 genesis.
func New(l1 *l1client.Client) (*BatchIndex, error) {
	cache, err := lru.New[uint64, *types.StateBatchHeader](defaultCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "batchindex: creating LRU cache")
	}
	return &BatchIndex{l1: l1, cache: cache}, nil
}

// GetStateBatchHeader returns the batch header covering height, scanning
// forward from the last cached L1 block if the cache doesn't already cover
// it.
func (b *BatchIndex) GetStateBatchHeader(ctx context.Context, height uint64) (*types.StateBatchHeader, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if header := b.find(height); header != nil {
		return header, nil
	}

	if err := b.scanForward(ctx); err != nil {
		return nil, err
	}

	if header := b.find(height); header != nil {
		return header, nil
	}
	return nil, errors.Wrapf(ErrNoBatchForHeight, "height %d", height)
}

// find performs a binary search for the batch covering height among the
// already-cached headers. Returns nil if none is cached yet.
func (b *BatchIndex) find(height uint64) *types.StateBatchHeader {
	i := sort.Search(len(b.byPrevElements), func(i int) bool {
		return b.byPrevElements[i].PrevTotalElements > height
	})
	if i == 0 {
		return nil
	}
	candidate := b.byPrevElements[i-1]
	if candidate.Contains(height) {
		return candidate
	}
	return nil
}

// scanForward replays StateBatchAppended logs since the last scanned L1
// block up to the current L1 head, decoding and caching each one.
func (b *BatchIndex) scanForward(ctx context.Context) error {
	head, err := b.l1.BlockNumber(ctx)
	if err != nil {
		return errors.Wrap(err, "batchindex: fetching L1 head")
	}
	if head < b.lastScannedL1 {
		return nil
	}
	events, err := b.l1.FilterStateBatchAppended(ctx, b.lastScannedL1, head)
	if err != nil {
		return err
	}
	for _, event := range events {
		header, err := b.decodeHeader(ctx, event)
		if err != nil {
			return err
		}
		b.cache.Add(header.BatchIndex, header)
		b.insertSorted(header)
	}
	b.lastScannedL1 = head + 1
	return nil
}

func (b *BatchIndex) insertSorted(header *types.StateBatchHeader) {
	i := sort.Search(len(b.byPrevElements), func(i int) bool {
		return b.byPrevElements[i].PrevTotalElements >= header.PrevTotalElements
	})
	if i < len(b.byPrevElements) && b.byPrevElements[i].BatchIndex == header.BatchIndex {
		b.byPrevElements[i] = header
		return
	}
	b.byPrevElements = append(b.byPrevElements, nil)
	copy(b.byPrevElements[i+1:], b.byPrevElements[i:])
	b.byPrevElements[i] = header
}

// decodeHeader turns a StateBatchAppended event into a full StateBatchHeader
// by fetching the emitting transaction and decoding its calldata for the
// full state-root list.
func (b *BatchIndex) decodeHeader(ctx context.Context, event contracts.StateCommitmentChainStateBatchAppended) (*types.StateBatchHeader, error) {
	batch, shouldStartAtElement, err := b.l1.AppendStateBatchCalldata(ctx, event.Raw.TxHash)
	if err != nil {
		return nil, err
	}
	if shouldStartAtElement != event.PrevTotalElements {
		return nil, errors.Errorf("batchindex: calldata prevTotalElements %d does not match event %d", shouldStartAtElement, event.PrevTotalElements)
	}
	return &types.StateBatchHeader{
		BatchIndex:        event.BatchIndex,
		BatchRoot:         event.BatchRoot,
		BatchSize:         event.BatchSize,
		PrevTotalElements: event.PrevTotalElements,
		ExtraData:         event.ExtraData,
		StateRoots:        batch,
	}, nil
}
