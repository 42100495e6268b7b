// Package l2client is the relayer's view of L2: scanning the cross-domain
// messenger's SentMessage log history and fetching account/storage proofs
// for the message-passer contract.
package l2client

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/contracts"
	"github.com/xdmrelay/relayer/rpcclient"
)

// Backend is the subset of *ethclient.Client the L2 client needs: log
// filtering for the cross-domain messenger plus the current head height.
// Tests satisfy it with a hand-rolled fake instead of dialing a real node.
type Backend interface {
	bind.ContractFilterer
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client is the relayer's L2-facing collaborator.
type Client struct {
	eth Backend
	rpc *rpcclient.Client
	xdm *contracts.L2CrossDomainMessengerFilterer

	xdmAddress common.Address
	log        log.Logger
}

// Dial connects to an L2 RPC endpoint over both a typed ethclient and a raw
// rpcclient (the latter is needed for eth_getProof, which ethclient does
// not expose).
func Dial(ctx context.Context, url string, xdmAddress common.Address, rpcConfig rpcclient.ClientConfig) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: dialing RPC endpoint")
	}
	rpcConfig.URL = url
	raw, err := rpcclient.Dial(ctx, rpcConfig)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: dialing raw RPC endpoint")
	}
	return NewWithBackend(eth, raw, xdmAddress)
}

// NewWithBackend builds a Client over an already-connected Backend and raw
// RPC client, letting tests substitute fakes for a live node.
func NewWithBackend(eth Backend, raw *rpcclient.Client, xdmAddress common.Address) (*Client, error) {
	xdm, err := contracts.NewL2CrossDomainMessengerFilterer(xdmAddress, eth)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: binding L2CrossDomainMessenger")
	}
	return &Client{eth: eth, rpc: raw, xdm: xdm, xdmAddress: xdmAddress, log: log.New("component", "l2client")}, nil
}

// BlockNumber returns the current L2 head height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

// ChainID returns the L2 chain ID. Used as the relayer's detectNetwork
// startup sanity check: a provider that cannot answer this isn't usable.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.eth.ChainID(ctx)
}

// SentMessageLog is one raw SentMessage event together with its position.
type SentMessageLog struct {
	Message     []byte
	BlockNumber uint64
	LogIndex    uint
}

// FilterSentMessages returns SentMessage logs in [fromBlock, toBlock],
// ordered by (blockNumber, logIndex).
func (c *Client) FilterSentMessages(ctx context.Context, fromBlock, toBlock uint64) ([]SentMessageLog, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.xdmAddress},
	}
	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: filtering SentMessage logs")
	}
	out := make([]SentMessageLog, 0, len(logs))
	for _, l := range logs {
		event, err := c.xdm.ParseSentMessage(l)
		if err != nil {
			return nil, errors.Wrap(err, "l2client: parsing SentMessage log")
		}
		out = append(out, SentMessageLog{
			Message:     event.Message,
			BlockNumber: l.BlockNumber,
			LogIndex:    l.Index,
		})
	}
	return out, nil
}

// accountResult mirrors the eth_getProof response shape; go-ethereum's
// ethclient does not expose this EIP-1186 method directly.
type accountResult struct {
	AccountProof []string       `json:"accountProof"`
	StorageProof []storageProof `json:"storageProof"`
}

type storageProof struct {
	Key   string   `json:"key"`
	Value string   `json:"value"`
	Proof []string `json:"proof"`
}

// Proof is a decoded account+storage proof for one (address, storage key)
// pair at blockNumber.
type Proof struct {
	AccountProof [][]byte
	StorageProof [][]byte
}

// GetProof calls eth_getProof for address and storageKey at blockNumber.
func (c *Client) GetProof(ctx context.Context, address common.Address, storageKey common.Hash, blockNumber uint64) (*Proof, error) {
	var result accountResult
	blockTag := hexutil.EncodeUint64(blockNumber)
	err := c.rpc.CallContext(ctx, &result, "eth_getProof", address, []common.Hash{storageKey}, blockTag)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: calling eth_getProof")
	}
	if len(result.StorageProof) != 1 {
		return nil, errors.Errorf("l2client: expected exactly one storage proof, got %d", len(result.StorageProof))
	}
	accountNodes, err := decodeHexNodes(result.AccountProof)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: decoding account proof")
	}
	storageNodes, err := decodeHexNodes(result.StorageProof[0].Proof)
	if err != nil {
		return nil, errors.Wrap(err, "l2client: decoding storage proof")
	}
	return &Proof{AccountProof: accountNodes, StorageProof: storageNodes}, nil
}

func decodeHexNodes(nodes []string) ([][]byte, error) {
	out := make([][]byte, len(nodes))
	for i, n := range nodes {
		b, err := hexutil.Decode(n)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
