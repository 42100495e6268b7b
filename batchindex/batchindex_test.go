package batchindex_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/batchindex"
	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/l1client"
	"github.com/xdmrelay/relayer/testing/fakebackend"
)

var sccAddress = common.HexToAddress("0xCCCC000000000000000000000000000000CCCC")

// addStateBatch simulates one appendStateBatch submission: it adds both the
// StateBatchAppended log BatchIndex observes and the transaction carrying
// the full state-root list the log only references by hash.
func addStateBatch(t *testing.T, chain *fakebackend.Chain, batchIndex, blockNumber uint64, stateRoots []common.Hash, prevTotalElements uint64) common.Hash {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(contracts.StateCommitmentChainABI))
	if err != nil {
		t.Fatalf("parsing ABI: %v", err)
	}
	method := parsed.Methods["appendStateBatch"]
	rawRoots := make([][32]byte, len(stateRoots))
	for i, r := range stateRoots {
		rawRoots[i] = r
	}
	packedArgs, err := method.Inputs.Pack(rawRoots, prevTotalElements)
	if err != nil {
		t.Fatalf("packing appendStateBatch args: %v", err)
	}
	calldata := append(append([]byte{}, contracts.AppendStateBatchMethodID[:]...), packedArgs...)
	tx := types.NewTx(&types.LegacyTx{Nonce: batchIndex, Data: calldata})
	chain.AddTransaction(tx)

	var root common.Hash
	root[0] = byte(batchIndex + 1)

	log, err := fakebackend.PackLog(
		contracts.StateCommitmentChainABI, "StateBatchAppended", sccAddress, blockNumber, 0,
		[]interface{}{batchIndex},
		[]interface{}{[32]byte(root), uint64(len(stateRoots)), prevTotalElements, []byte{}},
	)
	if err != nil {
		t.Fatalf("PackLog: %v", err)
	}
	log.TxHash = tx.Hash()
	chain.AddLog(log)
	return root
}

func TestGetStateBatchHeaderScansAndCaches(t *testing.T) {
	chain := fakebackend.New()
	if _, err := chain.RegisterContract(sccAddress, contracts.StateCommitmentChainABI); err != nil {
		t.Fatalf("RegisterContract: %v", err)
	}

	roots := []common.Hash{{1}, {2}, {3}}
	root := addStateBatch(t, chain, 0, 5, roots, 0)
	chain.SetHead(5)

	l1, err := l1client.NewWithBackend(chain, sccAddress, common.Address{})
	if err != nil {
		t.Fatalf("NewWithBackend: %v", err)
	}
	index, err := batchindex.New(l1)
	if err != nil {
		t.Fatalf("batchindex.New: %v", err)
	}

	header, err := index.GetStateBatchHeader(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetStateBatchHeader: %v", err)
	}
	if header.BatchRoot != root {
		t.Fatalf("expected batch root %s, got %s", root, header.BatchRoot)
	}
	if !header.Contains(1) || header.Contains(3) {
		t.Fatalf("Contains disagrees with batch bounds: %+v", header)
	}
	if len(header.StateRoots) != 3 {
		t.Fatalf("expected 3 state roots, got %d", len(header.StateRoots))
	}

	// Second lookup for a height in the same batch must not rescan.
	head1, _ := chain.BlockNumber(context.Background())
	_, err = index.GetStateBatchHeader(context.Background(), 2)
	if err != nil {
		t.Fatalf("second GetStateBatchHeader: %v", err)
	}
	head2, _ := chain.BlockNumber(context.Background())
	if head1 != head2 {
		t.Fatalf("chain head should not change between lookups")
	}
}

func TestGetStateBatchHeaderNoBatchYet(t *testing.T) {
	chain := fakebackend.New()
	if _, err := chain.RegisterContract(sccAddress, contracts.StateCommitmentChainABI); err != nil {
		t.Fatalf("RegisterContract: %v", err)
	}
	chain.SetHead(10)

	l1, err := l1client.NewWithBackend(chain, sccAddress, common.Address{})
	if err != nil {
		t.Fatalf("NewWithBackend: %v", err)
	}
	index, err := batchindex.New(l1)
	if err != nil {
		t.Fatalf("batchindex.New: %v", err)
	}

	_, err = index.GetStateBatchHeader(context.Background(), 100)
	if !errors.Is(err, batchindex.ErrNoBatchForHeight) {
		t.Fatalf("expected ErrNoBatchForHeight, got %v", err)
	}
}
