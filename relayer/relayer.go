// Package relayer drives the relay loop: scan L2 for sent messages, wait
// for their covering L1 batch to exit its fraud-proof window, build an
// inclusion proof, and submit it to the L1 cross-domain messenger.
package relayer

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/batchindex"
	"github.com/xdmrelay/relayer/config"
	"github.com/xdmrelay/relayer/l1client"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/proof"
	"github.com/xdmrelay/relayer/scanner"
	"github.com/xdmrelay/relayer/stopwaiter"
	"github.com/xdmrelay/relayer/types"
)

// Observer is a metrics/logging seam the relay loop calls into on every
// tick. The default implementation only logs; operators that want counters
// exported can supply their own without the loop depending on a specific
// metrics backend.
type Observer interface {
	OnTick(cursor types.Cursor)
	OnRelay(msg *types.SentMessage)
	OnSkip(msg *types.SentMessage, reason string)
}

// loggingObserver is the default Observer: it just logs at Info/Debug.
type loggingObserver struct {
	log log.Logger
}

func (o *loggingObserver) OnTick(cursor types.Cursor) {
	o.log.Debug("tick", "nextUnfinalizedTxHeight", cursor.NextUnfinalizedTxHeight, "lastFinalizedTxHeight", cursor.LastFinalizedTxHeight)
}

func (o *loggingObserver) OnRelay(msg *types.SentMessage) {
	o.log.Info("relayed message", "height", msg.Height, "hash", msg.Hash)
}

func (o *loggingObserver) OnSkip(msg *types.SentMessage, reason string) {
	o.log.Debug("skipped message", "height", msg.Height, "hash", msg.Hash, "reason", reason)
}

// Relayer runs the poll/relay loop described above. The zero value is not
// usable; construct one with New.
type Relayer struct {
	stopwaiter.StopWaiter

	l1      *l1client.Client
	l2      *l2client.Client
	batches *batchindex.BatchIndex
	scan    *scanner.Scanner
	proofs  *proof.Builder
	signer  l1client.Signer

	pollingInterval time.Duration
	observer        Observer

	cursor types.Cursor
	log    log.Logger
}

// New builds a Relayer. startingHeight seeds the cursor when the process
// has no prior state to resume from; the cursor is never persisted, so every
// restart recomputes forward progress from here.
func New(
	l1 *l1client.Client,
	l2 *l2client.Client,
	batches *batchindex.BatchIndex,
	scan *scanner.Scanner,
	proofs *proof.Builder,
	signer l1client.Signer,
	cfg *config.Config,
) *Relayer {
	logger := log.New("component", "relayer")
	return &Relayer{
		l1:              l1,
		l2:              l2,
		batches:         batches,
		scan:            scan,
		proofs:          proofs,
		signer:          signer,
		pollingInterval: cfg.PollingInterval,
		observer:        &loggingObserver{log: logger},
		cursor: types.Cursor{
			LastFinalizedTxHeight:   cfg.L2ChainStartingHeight,
			NextUnfinalizedTxHeight: cfg.L2ChainStartingHeight,
		},
		log: logger,
	}
}

// SetObserver overrides the default logging-only Observer.
func (r *Relayer) SetObserver(o Observer) {
	r.observer = o
}

// Launch starts the background relay loop.
func (r *Relayer) Launch(ctx context.Context) {
	r.StopWaiter.Start(ctx, r)
	r.CallIteratively(r.tick)
}

// tick is one iteration of the relay loop: scan newly visible messages,
// relay whatever has finalized, and report how long to wait before the
// next iteration.
func (r *Relayer) tick(ctx context.Context) time.Duration {
	r.observer.OnTick(r.cursor)

	head, err := r.l2.BlockNumber(ctx)
	if err != nil {
		r.log.Error("fetching L2 head", "err", err)
		return r.pollingInterval
	}
	if head < r.cursor.NextUnfinalizedTxHeight {
		return r.pollingInterval
	}

	messages, err := r.scan.GetSentMessages(ctx, r.cursor.NextUnfinalizedTxHeight, head)
	if err != nil {
		r.log.Error("scanning sent messages", "err", err)
		return r.pollingInterval
	}

	for _, msg := range messages {
		done, err := r.processMessage(ctx, msg)
		if err != nil {
			r.log.Error("processing message", "height", msg.Height, "err", err)
			return r.pollingInterval
		}
		if !done {
			// Either the covering batch doesn't exist yet or it hasn't
			// exited its fraud-proof window. Messages must finalize in
			// order, so stop here and retry the same height next tick.
			r.cursor.NextUnfinalizedTxHeight = msg.Height
			return r.pollingInterval
		}
		r.cursor.LastFinalizedTxHeight = msg.Height
		r.cursor.NextUnfinalizedTxHeight = msg.Height + 1
	}

	if len(messages) == 0 {
		r.cursor.NextUnfinalizedTxHeight = head + 1
	}
	return r.pollingInterval
}

// processMessage relays msg if it is ready, and reports whether it is fully
// resolved (relayed now, already relayed earlier, or genuinely skippable).
// A false return with a nil error means "not ready yet, try again later".
func (r *Relayer) processMessage(ctx context.Context, msg *types.SentMessage) (bool, error) {
	header, err := r.batches.GetStateBatchHeader(ctx, msg.Height)
	if err != nil {
		if errors.Is(err, batchindex.ErrNoBatchForHeight) {
			r.observer.OnSkip(msg, "no covering batch yet")
			return false, nil
		}
		return false, err
	}

	inside, err := r.l1.InsideFraudProofWindow(ctx, header)
	if err != nil {
		return false, err
	}
	if inside {
		r.observer.OnSkip(msg, "inside fraud proof window")
		return false, nil
	}

	alreadyRelayed, err := r.l1.SuccessfulMessages(ctx, msg.Hash)
	if err != nil {
		return false, err
	}
	if alreadyRelayed {
		r.observer.OnSkip(msg, "already relayed")
		return true, nil
	}

	messageProof, err := r.proofs.BuildProof(ctx, msg, header)
	if err != nil {
		return false, errors.Wrap(err, "building message proof")
	}

	_, err = r.l1.RelayMessage(ctx, r.signer, msg.Target, msg.Sender, msg.Data, msg.Nonce.Uint64(), messageProof)
	if err != nil {
		return false, errors.Wrap(err, "relaying message")
	}
	r.observer.OnRelay(msg)
	return true, nil
}

// Cursor returns the relay loop's current position, for diagnostics.
func (r *Relayer) Cursor() types.Cursor {
	return r.cursor
}
