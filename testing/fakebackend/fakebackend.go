// Package fakebackend is an in-memory stand-in for an L1 or L2 JSON-RPC
// node, implementing just enough of bind.ContractBackend and the raw chain
// reads the relayer's clients use. There is no EVM here: contract calls are
// dispatched to handler functions the test registers, and transactions are
// "mined" synchronously the instant they're submitted.
package fakebackend

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// HandlerFunc answers one contract call, given its already-ABI-decoded
// arguments, with the already-ABI-encodable return values.
type HandlerFunc func(args []interface{}) ([]interface{}, error)

// contractStub is one deployed contract's ABI plus its registered method
// handlers.
type contractStub struct {
	abi      abi.ABI
	handlers map[string]HandlerFunc
}

// Chain is a fake chain backend. The zero value is not usable; build one
// with New.
type Chain struct {
	mu sync.Mutex

	head uint64

	contracts map[common.Address]*contractStub
	logs      []types.Log
	txs       map[common.Hash]*types.Transaction
	receipts  map[common.Hash]*types.Receipt
	sent      []*types.Transaction
}

// New creates an empty Chain at head height 0.
func New() *Chain {
	return &Chain{
		contracts: make(map[common.Address]*contractStub),
		txs:       make(map[common.Hash]*types.Transaction),
		receipts:  make(map[common.Hash]*types.Receipt),
	}
}

// SetHead sets the current block number returned by BlockNumber.
func (c *Chain) SetHead(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.head = n
}

// AddLog appends a log to the fake chain's history, visible to FilterLogs.
func (c *Chain) AddLog(l types.Log) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, l)
}

// AddTransaction registers a transaction so TransactionByHash can find it,
// e.g. to stand in for an appendStateBatch submission that BatchIndex looks
// up after observing its StateBatchAppended log.
func (c *Chain) AddTransaction(tx *types.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.txs[tx.Hash()] = tx
}

// RegisterContract parses contractABI and returns a stub tests attach method
// handlers to via On.
func (c *Chain) RegisterContract(address common.Address, contractABI string) (*ContractStub, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, err
	}
	stub := &contractStub{abi: parsed, handlers: make(map[string]HandlerFunc)}
	c.mu.Lock()
	c.contracts[address] = stub
	c.mu.Unlock()
	return &ContractStub{stub: stub}, nil
}

// ContractStub is the handle tests use to register method handlers for one
// registered contract address.
type ContractStub struct {
	stub *contractStub
}

// On registers fn as the handler for calls to method.
func (s *ContractStub) On(method string, fn HandlerFunc) {
	s.stub.handlers[method] = fn
}

// SentTransactions returns every transaction submitted via SendTransaction,
// in submission order.
func (c *Chain) SentTransactions() []*types.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*types.Transaction, len(c.sent))
	copy(out, c.sent)
	return out
}

// BlockNumber returns the fake chain's current head.
func (c *Chain) BlockNumber(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.head, nil
}

// ChainID returns a fixed test chain ID of 1.
func (c *Chain) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

// CodeAt reports non-empty code for any registered contract address.
func (c *Chain) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.contracts[account]; ok {
		return []byte{0x1}, nil
	}
	return nil, nil
}

func (c *Chain) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return c.CodeAt(ctx, account, nil)
}

func (c *Chain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 0, nil
}

func (c *Chain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (c *Chain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (c *Chain) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 21000, nil
}

func (c *Chain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	c.mu.Lock()
	head := c.head
	c.mu.Unlock()
	n := new(big.Int).SetUint64(head)
	if number != nil {
		n = number
	}
	return &types.Header{Number: n}, nil
}

// CallContract dispatches a view call to the registered handler for its
// target address and 4-byte selector.
func (c *Chain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.mu.Lock()
	stub, ok := c.contracts[*call.To]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("fakebackend: no contract registered at %s", call.To)
	}
	if len(call.Data) < 4 {
		return nil, fmt.Errorf("fakebackend: call data shorter than a method selector")
	}
	method, err := stub.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	handler, ok := stub.handlers[method.Name]
	if !ok {
		return nil, fmt.Errorf("fakebackend: no handler registered for %s", method.Name)
	}
	results, err := handler(args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(results...)
}

// SendTransaction "mines" tx immediately: it is recorded as sent and a
// successful receipt is made available right away, so bind.WaitMined
// returns on its first poll.
func (c *Chain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, tx)
	c.txs[tx.Hash()] = tx
	c.receipts[tx.Hash()] = &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(c.head),
	}
	return nil
}

// TransactionByHash returns a previously-added or previously-sent
// transaction.
func (c *Chain) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tx, ok := c.txs[hash]
	if !ok {
		return nil, false, ethereum.NotFound
	}
	return tx, false, nil
}

// TransactionReceipt returns the receipt for a sent transaction.
func (c *Chain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	receipt, ok := c.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// FilterLogs returns every stored log matching query's address set and
// block range.
func (c *Chain) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	addrs := make(map[common.Address]bool, len(query.Addresses))
	for _, a := range query.Addresses {
		addrs[a] = true
	}
	var from, to uint64
	if query.FromBlock != nil {
		from = query.FromBlock.Uint64()
	}
	to = c.head
	if query.ToBlock != nil {
		to = query.ToBlock.Uint64()
	}
	var out []types.Log
	for _, l := range c.logs {
		if len(addrs) > 0 && !addrs[l.Address] {
			continue
		}
		if l.BlockNumber < from || l.BlockNumber > to {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// noopSubscription never fires; SubscribeFilterLogs isn't exercised by any
// component, which only ever calls FilterLogs directly, but the interface
// requires an implementation.
type noopSubscription struct{ errCh chan error }

func (s *noopSubscription) Unsubscribe() {}
func (s *noopSubscription) Err() <-chan error {
	return s.errCh
}

func (c *Chain) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return &noopSubscription{errCh: make(chan error)}, nil
}

// PackLog ABI-encodes an event emission by hand, the way a real node would
// have logged it, so tests can feed FilterLogs/ParseX functions realistic
// data without a live contract. indexedValues must list the event's indexed
// argument values in declaration order; nonIndexedValues the rest.
func PackLog(contractABI, eventName string, address common.Address, blockNumber uint64, logIndex uint, indexedValues, nonIndexedValues []interface{}) (types.Log, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return types.Log{}, err
	}
	event, ok := parsed.Events[eventName]
	if !ok {
		return types.Log{}, fmt.Errorf("fakebackend: event %s not found in ABI", eventName)
	}
	var nonIndexedArgs abi.Arguments
	for _, arg := range event.Inputs {
		if !arg.Indexed {
			nonIndexedArgs = append(nonIndexedArgs, arg)
		}
	}
	data, err := nonIndexedArgs.Pack(nonIndexedValues...)
	if err != nil {
		return types.Log{}, err
	}
	topics := []common.Hash{event.ID}
	if len(indexedValues) > 0 {
		queries := make([][]interface{}, len(indexedValues))
		for i, v := range indexedValues {
			queries[i] = []interface{}{v}
		}
		sets, err := abi.MakeTopics(queries...)
		if err != nil {
			return types.Log{}, err
		}
		for _, s := range sets {
			topics = append(topics, s[0])
		}
	}
	return types.Log{
		Address:     address,
		Topics:      topics,
		Data:        data,
		BlockNumber: blockNumber,
		Index:       logIndex,
	}, nil
}
