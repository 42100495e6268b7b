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
)

const (
	minRecommendedPollingInterval = 15 * time.Second
	maxRecommendedPollingInterval = time.Hour
)

// RunInitChecks performs the relay loop's startup sanity checks: both RPC
// providers must answer detectNetwork, and the rest are warnings that don't
// block startup (a misconfigured but workable pollingInterval, or an L1
// that hasn't committed any state batches yet).
func RunInitChecks(ctx context.Context, l1 *l1client.Client, l2 *l2client.Client, batches *batchindex.BatchIndex, cfg *config.Config) error {
	logger := log.New("component", "relayer")

	if _, err := l1.ChainID(ctx); err != nil {
		return errors.Wrap(err, "relayer: L1 provider did not answer detectNetwork")
	}
	if _, err := l2.ChainID(ctx); err != nil {
		return errors.Wrap(err, "relayer: L2 provider did not answer detectNetwork")
	}

	if cfg.PollingInterval < minRecommendedPollingInterval || cfg.PollingInterval > maxRecommendedPollingInterval {
		logger.Warn("pollingInterval is outside the recommended range",
			"pollingInterval", cfg.PollingInterval, "min", minRecommendedPollingInterval, "max", maxRecommendedPollingInterval)
	}

	if _, err := batches.GetStateBatchHeader(ctx, cfg.L2ChainStartingHeight); err != nil {
		if errors.Is(err, batchindex.ErrNoBatchForHeight) {
			logger.Warn("no state batch covers l2ChainStartingHeight yet", "height", cfg.L2ChainStartingHeight)
		} else {
			return errors.Wrap(err, "relayer: checking for existing state batches")
		}
	}

	return nil
}
