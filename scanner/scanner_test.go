package scanner_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/l2client"
	"github.com/xdmrelay/relayer/scanner"
	"github.com/xdmrelay/relayer/testing/fakebackend"
)

var xdmAddress = common.HexToAddress("0xBBbB000000000000000000000000000000bBBb")

func newScanner(t *testing.T, chain *fakebackend.Chain, blockOffset uint64) *scanner.Scanner {
	t.Helper()
	l2, err := l2client.NewWithBackend(chain, nil, xdmAddress)
	if err != nil {
		t.Fatalf("NewWithBackend: %v", err)
	}
	return scanner.New(l2, blockOffset)
}

func addSentMessage(t *testing.T, chain *fakebackend.Chain, blockNumber uint64, logIndex uint, target, sender common.Address, data []byte, nonce uint64) {
	t.Helper()
	payload, err := contracts.EncodeRelayMessagePayload(target, sender, data, nonce)
	if err != nil {
		t.Fatalf("EncodeRelayMessagePayload: %v", err)
	}
	log, err := fakebackend.PackLog(
		contracts.L2CrossDomainMessengerABI, "SentMessage", xdmAddress, blockNumber, logIndex,
		nil, []interface{}{payload},
	)
	if err != nil {
		t.Fatalf("PackLog: %v", err)
	}
	chain.AddLog(log)
}

func TestGetSentMessagesDecodesAndOrders(t *testing.T) {
	chain := fakebackend.New()
	chain.SetHead(100)

	target := common.HexToAddress("0x1111111111111111111111111111111111111111")
	sender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	// Two messages in the same block, logged out of order; a third in a
	// later block.
	addSentMessage(t, chain, 10, 5, target, sender, []byte("second"), 2)
	addSentMessage(t, chain, 10, 1, target, sender, []byte("first"), 1)
	addSentMessage(t, chain, 12, 0, target, sender, []byte("third"), 3)

	s := newScanner(t, chain, 0)
	messages, err := s.GetSentMessages(context.Background(), 0, 100)
	if err != nil {
		t.Fatalf("GetSentMessages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if string(messages[0].Data) != "first" || string(messages[1].Data) != "second" || string(messages[2].Data) != "third" {
		t.Fatalf("messages not ordered by (height, logIndex): %v, %v, %v", messages[0].Data, messages[1].Data, messages[2].Data)
	}
	if messages[0].Height != 10 || messages[2].Height != 12 {
		t.Fatalf("unexpected heights: %d, %d", messages[0].Height, messages[2].Height)
	}
	if messages[0].Nonce.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("expected nonce 1, got %s", messages[0].Nonce)
	}
	wantHash := crypto.Keccak256Hash(messages[0].Calldata)
	if messages[0].Hash != wantHash {
		t.Fatalf("Hash does not match keccak256(Calldata)")
	}
}

func TestGetSentMessagesAppliesBlockOffset(t *testing.T) {
	chain := fakebackend.New()
	chain.SetHead(1000)

	target := common.HexToAddress("0x1111111111111111111111111111111111111111")
	sender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	const blockOffset = 500
	// The log's on-chain block number is in "element index" terms, i.e.
	// L2 height + blockOffset.
	addSentMessage(t, chain, 500+7, 0, target, sender, []byte("msg"), 1)

	s := newScanner(t, chain, blockOffset)
	messages, err := s.GetSentMessages(context.Background(), 7, 7)
	if err != nil {
		t.Fatalf("GetSentMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Height != 7 {
		t.Fatalf("expected height 7 after subtracting offset, got %d", messages[0].Height)
	}
}
