package proof_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/xdmrelay/relayer/batchindex"
	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/l1client"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/merkletree"
	"github.com/xdmrelay/relayer/proof"
	"github.com/xdmrelay/relayer/rpcclient"
	rtypes "github.com/xdmrelay/relayer/types"
	"github.com/xdmrelay/relayer/testing/fakebackend"
)

var (
	sccAddress          = common.HexToAddress("0xCCCC000000000000000000000000000000CCCC")
	xdmAddress          = common.HexToAddress("0xBBbB000000000000000000000000000000bBBb")
	messagePasserAddr   = common.HexToAddress("0xDDDD000000000000000000000000000000DDDD")
)

func TestBuildProofRoundTripsThroughMerkleVerify(t *testing.T) {
	chain := fakebackend.New()
	if _, err := chain.RegisterContract(sccAddress, contracts.StateCommitmentChainABI); err != nil {
		t.Fatalf("RegisterContract: %v", err)
	}

	stateRoots := []common.Hash{{1}, {2}, {3}}
	tree := merkletree.New(stateRoots)

	parsed, err := abi.JSON(strings.NewReader(contracts.StateCommitmentChainABI))
	if err != nil {
		t.Fatalf("parsing ABI: %v", err)
	}
	method := parsed.Methods["appendStateBatch"]
	rawRoots := make([][32]byte, len(stateRoots))
	for i, r := range stateRoots {
		rawRoots[i] = r
	}
	packedArgs, err := method.Inputs.Pack(rawRoots, uint64(0))
	if err != nil {
		t.Fatalf("packing appendStateBatch args: %v", err)
	}
	calldata := append(append([]byte{}, contracts.AppendStateBatchMethodID[:]...), packedArgs...)
	tx := types.NewTx(&types.LegacyTx{Data: calldata})
	chain.AddTransaction(tx)

	root := tree.Root()
	logEntry, err := fakebackend.PackLog(
		contracts.StateCommitmentChainABI, "StateBatchAppended", sccAddress, 5, 0,
		[]interface{}{uint64(0)},
		[]interface{}{[32]byte(root), uint64(len(stateRoots)), uint64(0), []byte{}},
	)
	if err != nil {
		t.Fatalf("PackLog: %v", err)
	}
	logEntry.TxHash = tx.Hash()
	chain.AddLog(logEntry)
	chain.SetHead(5)

	l1, err := l1client.NewWithBackend(chain, sccAddress, common.Address{})
	if err != nil {
		t.Fatalf("l1client.NewWithBackend: %v", err)
	}
	batches, err := batchindex.New(l1)
	if err != nil {
		t.Fatalf("batchindex.New: %v", err)
	}
	header, err := batches.GetStateBatchHeader(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetStateBatchHeader: %v", err)
	}

	// The account/storage proof nodes are arbitrary from this test's point
	// of view; BuildProof only needs to RLP-encode whatever eth_getProof
	// returns, not validate it against a real trie.
	wantAccountNode := []byte("account-node")
	wantStorageNode := []byte("storage-node")
	proofClient, stop, err := fakebackend.NewProofRPCClient(func(address common.Address, keys []common.Hash, block string) (*fakebackend.ProofResult, error) {
		if address != messagePasserAddr {
			t.Fatalf("unexpected eth_getProof address %s", address)
		}
		return &fakebackend.ProofResult{
			AccountProof: []string{hexutil.Encode(wantAccountNode)},
			StorageProof: []fakebackend.ProofStorageEntry{{
				Key:   keys[0].Hex(),
				Value: "0x1",
				Proof: []string{hexutil.Encode(wantStorageNode)},
			}},
		}, nil
	})
	if err != nil {
		t.Fatalf("NewProofRPCClient: %v", err)
	}
	defer stop()

	l2, err := l2client.NewWithBackend(chain, rpcclient.NewWithClient(proofClient, rpcclient.DefaultClientConfig), xdmAddress)
	if err != nil {
		t.Fatalf("l2client.NewWithBackend: %v", err)
	}

	builder := proof.New(batches, l2, messagePasserAddr, xdmAddress, 0)
	msg := &rtypes.SentMessage{Height: 1, Hash: common.HexToHash("0xabc")}

	messageProof, err := builder.BuildProof(context.Background(), msg, header)
	if err != nil {
		t.Fatalf("BuildProof: %v", err)
	}
	if messageProof.StateRoot != stateRoots[1] {
		t.Fatalf("expected state root %s, got %s", stateRoots[1], messageProof.StateRoot)
	}
	if !merkletree.Verify(header.BatchRoot, messageProof.StateRoot, &messageProof.StateRootProof) {
		t.Fatalf("Merkle inclusion proof does not verify against the batch root")
	}
}

func TestBuildProofRejectsHeightOutsideBatch(t *testing.T) {
	header := &rtypes.StateBatchHeader{BatchIndex: 0, PrevTotalElements: 0, BatchSize: 2, StateRoots: []common.Hash{{1}, {2}}}
	builder := proof.New(nil, nil, messagePasserAddr, xdmAddress, 0)
	msg := &rtypes.SentMessage{Height: 5}
	if _, err := builder.BuildProof(context.Background(), msg, header); err == nil {
		t.Fatalf("expected an error for a height outside the batch")
	}
}
