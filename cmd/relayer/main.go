// Command relayer runs the standalone L2->L1 message relay process: dial
// both chains, scan the L2 cross-domain messenger for sent messages, build
// inclusion proofs against finalized L1 state batches, and submit relay
// transactions for whatever has cleared its fraud-proof window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"

	"github.com/xdmrelay/relayer/batchindex"
	"github.com/xdmrelay/relayer/config"
	"github.com/xdmrelay/relayer/genericconf"
	"github.com/xdmrelay/relayer/l1client"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/proof"
	"github.com/xdmrelay/relayer/relayer"
	"github.com/xdmrelay/relayer/rpcclient"
	"github.com/xdmrelay/relayer/scanner"
	"github.com/xdmrelay/relayer/signer"
)

func main() {
	os.Exit(mainImpl())
}

func mainImpl() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing configuration: %v\n", err)
		return 1
	}

	identityPathResolver := func(name string) string { return name }
	if err := genericconf.InitLog(cfg.LogType, cfg.LogLevel, &cfg.FileLogging, identityPathResolver); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}

	log.Info("starting relayer", "l1", cfg.L1RpcURL, "l2", cfg.L2RpcURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrs := cfg.Addresses()

	l1, err := l1client.Dial(ctx, cfg.L1RpcURL, addrs.StateCommitmentChain, addrs.L1CrossDomainMessenger)
	if err != nil {
		log.Error("dialing L1", "err", err)
		return 1
	}

	l2, err := l2client.Dial(ctx, cfg.L2RpcURL, addrs.L2CrossDomainMessenger, rpcclient.DefaultClientConfig)
	if err != nil {
		log.Error("dialing L2", "err", err)
		return 1
	}

	batches, err := batchindex.New(l1)
	if err != nil {
		log.Error("building batch index", "err", err)
		return 1
	}
	scan := scanner.New(l2, cfg.BlockOffset)
	proofs := proof.New(batches, l2, addrs.L2ToL1MessagePasser, addrs.L2CrossDomainMessenger, cfg.BlockOffset)

	if err := relayer.RunInitChecks(ctx, l1, l2, batches, cfg); err != nil {
		log.Error("startup sanity checks failed", "err", err)
		return 1
	}

	chainID, err := l1.ChainID(ctx)
	if err != nil {
		log.Error("fetching L1 chain ID", "err", err)
		return 1
	}
	sgnr, err := signer.New(cfg.Wallet, chainID)
	if err != nil {
		log.Error("building relay signer", "err", err)
		return 1
	}

	r := relayer.New(l1, l2, batches, scan, proofs, sgnr, cfg)
	r.Launch(ctx)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint
	log.Info("shutting down")

	r.StopAndWait()
	return 0
}
