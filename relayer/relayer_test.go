package relayer

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/xdmrelay/relayer/batchindex"
	"github.com/xdmrelay/relayer/config"
	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/l1client"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/merkletree"
	"github.com/xdmrelay/relayer/proof"
	"github.com/xdmrelay/relayer/rpcclient"
	"github.com/xdmrelay/relayer/scanner"
	rtypes "github.com/xdmrelay/relayer/types"
	"github.com/xdmrelay/relayer/testing/fakebackend"
)

var (
	testSCCAddress      = common.HexToAddress("0xCCCC000000000000000000000000000000CCCC")
	testXDMAddress      = common.HexToAddress("0xBBbB000000000000000000000000000000bBBb")
	testL2XDMAddress    = common.HexToAddress("0xE1E1000000000000000000000000000000E1E1")
	testMessagePasser   = common.HexToAddress("0xDDDD000000000000000000000000000000DDDD")
)

// testSigner implements l1client.Signer over a freshly generated test key.
type testSigner struct {
	opts *bind.TransactOpts
}

func newTestSigner(t *testing.T) *testSigner {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generating test key: %v", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1))
	if err != nil {
		t.Fatalf("building transact opts: %v", err)
	}
	return &testSigner{opts: opts}
}

func (s *testSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	o := *s.opts
	o.Context = ctx
	return &o, nil
}

func (s *testSigner) From() common.Address { return s.opts.From }

// harness wires a full relayer against a fakebackend.Chain: one state batch
// covering L2 heights [0, 4) and a single SentMessage at height 2.
type harness struct {
	chain    *fakebackend.Chain
	r        *Relayer
	sentCh   chan *rtypes.SentMessage
	skippedC chan string
}

func newHarness(t *testing.T, insideWindow, alreadyRelayed bool) *harness {
	t.Helper()
	chain := fakebackend.New()

	sccStub, err := chain.RegisterContract(testSCCAddress, contracts.StateCommitmentChainABI)
	if err != nil {
		t.Fatalf("registering SCC: %v", err)
	}
	sccStub.On("insideFraudProofWindow", func(args []interface{}) ([]interface{}, error) {
		return []interface{}{insideWindow}, nil
	})

	xdmStub, err := chain.RegisterContract(testXDMAddress, contracts.L1CrossDomainMessengerABI)
	if err != nil {
		t.Fatalf("registering L1XDM: %v", err)
	}
	xdmStub.On("successfulMessages", func(args []interface{}) ([]interface{}, error) {
		return []interface{}{alreadyRelayed}, nil
	})

	stateRoots := []common.Hash{{1}, {2}, {3}, {4}}
	tree := merkletree.New(stateRoots)
	root := tree.Root()

	parsed, err := abi.JSON(strings.NewReader(contracts.StateCommitmentChainABI))
	if err != nil {
		t.Fatalf("parsing SCC ABI: %v", err)
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

	batchLog, err := fakebackend.PackLog(
		contracts.StateCommitmentChainABI, "StateBatchAppended", testSCCAddress, 1, 0,
		[]interface{}{uint64(0)},
		[]interface{}{[32]byte(root), uint64(len(stateRoots)), uint64(0), []byte{}},
	)
	if err != nil {
		t.Fatalf("PackLog(StateBatchAppended): %v", err)
	}
	batchLog.TxHash = tx.Hash()
	chain.AddLog(batchLog)

	target := common.HexToAddress("0x1111111111111111111111111111111111111111")
	sender := common.HexToAddress("0x2222222222222222222222222222222222222222")
	payload, err := contracts.EncodeRelayMessagePayload(target, sender, []byte("hello"), 7)
	if err != nil {
		t.Fatalf("EncodeRelayMessagePayload: %v", err)
	}
	sentLog, err := fakebackend.PackLog(
		contracts.L2CrossDomainMessengerABI, "SentMessage", testL2XDMAddress, 2, 0,
		nil, []interface{}{payload},
	)
	if err != nil {
		t.Fatalf("PackLog(SentMessage): %v", err)
	}
	chain.AddLog(sentLog)

	chain.SetHead(10)

	l1, err := l1client.NewWithBackend(chain, testSCCAddress, testXDMAddress)
	if err != nil {
		t.Fatalf("l1client.NewWithBackend: %v", err)
	}
	batches, err := batchindex.New(l1)
	if err != nil {
		t.Fatalf("batchindex.New: %v", err)
	}

	proofHandler := func(address common.Address, keys []common.Hash, block string) (*fakebackend.ProofResult, error) {
		return &fakebackend.ProofResult{
			AccountProof: []string{hexutil.Encode([]byte("account-node"))},
			StorageProof: []fakebackend.ProofStorageEntry{{
				Key:   keys[0].Hex(),
				Value: "0x1",
				Proof: []string{hexutil.Encode([]byte("storage-node"))},
			}},
		}, nil
	}
	proofClient, stop, err := fakebackend.NewProofRPCClient(proofHandler)
	if err != nil {
		t.Fatalf("NewProofRPCClient: %v", err)
	}
	t.Cleanup(stop)

	l2, err := l2client.NewWithBackend(chain, rpcclient.NewWithClient(proofClient, rpcclient.DefaultClientConfig), testL2XDMAddress)
	if err != nil {
		t.Fatalf("l2client.NewWithBackend: %v", err)
	}

	scan := scanner.New(l2, 0)
	proofs := proof.New(batches, l2, testMessagePasser, testL2XDMAddress, 0)
	signer := newTestSigner(t)

	cfg := &config.Config{PollingInterval: time.Millisecond}
	r := New(l1, l2, batches, scan, proofs, signer, cfg)

	h := &harness{chain: chain, r: r, sentCh: make(chan *rtypes.SentMessage, 4), skippedC: make(chan string, 4)}
	r.SetObserver(&capturingObserver{relayed: h.sentCh, skipped: h.skippedC})
	return h
}

type capturingObserver struct {
	relayed chan *rtypes.SentMessage
	skipped chan string
}

func (o *capturingObserver) OnTick(cursor rtypes.Cursor) {}
func (o *capturingObserver) OnRelay(msg *rtypes.SentMessage) {
	o.relayed <- msg
}
func (o *capturingObserver) OnSkip(msg *rtypes.SentMessage, reason string) {
	o.skipped <- reason
}

func TestTickRelaysAFinalizedMessage(t *testing.T) {
	h := newHarness(t, false, false)

	h.r.tick(context.Background())

	select {
	case msg := <-h.sentCh:
		if msg.Height != 2 {
			t.Fatalf("expected relayed message at height 2, got %d", msg.Height)
		}
	default:
		t.Fatalf("expected a relayed message, none observed")
	}

	sent := h.chain.SentTransactions()
	if len(sent) != 1 {
		t.Fatalf("expected exactly one relayMessage transaction, got %d", len(sent))
	}

	if h.r.Cursor().LastFinalizedTxHeight != 2 {
		t.Fatalf("expected cursor to advance to height 2, got %d", h.r.Cursor().LastFinalizedTxHeight)
	}
}

func TestTickSkipsMessageInsideFraudProofWindow(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.tick(context.Background())

	select {
	case reason := <-h.skippedC:
		if reason != "inside fraud proof window" {
			t.Fatalf("expected fraud-proof-window skip, got %q", reason)
		}
	default:
		t.Fatalf("expected a skip observation")
	}
	if len(h.chain.SentTransactions()) != 0 {
		t.Fatalf("message inside its fraud proof window must not be relayed")
	}
	if h.r.Cursor().NextUnfinalizedTxHeight != 2 {
		t.Fatalf("cursor must hold at the unresolved height, got %d", h.r.Cursor().NextUnfinalizedTxHeight)
	}
}

func TestTickDoesNotDoubleRelay(t *testing.T) {
	h := newHarness(t, false, true)

	h.r.tick(context.Background())

	select {
	case reason := <-h.skippedC:
		if reason != "already relayed" {
			t.Fatalf("expected already-relayed skip, got %q", reason)
		}
	default:
		t.Fatalf("expected a skip observation")
	}
	if len(h.chain.SentTransactions()) != 0 {
		t.Fatalf("a message already marked successful must not be resubmitted")
	}
	if h.r.Cursor().LastFinalizedTxHeight != 2 {
		t.Fatalf("cursor should still advance past an already-relayed message")
	}
}
