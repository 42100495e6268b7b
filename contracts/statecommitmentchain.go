// Code generated by hand in the style of abigen bindings. Keep in sync with
// the StateCommitmentChain contract's ABI if it changes.

package contracts

import (
	"errors"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = errors.New
	_ = big.NewInt
	_ = strings.NewReader
	_ = ethereum.NotFound
	_ = bind.Bind
	_ = common.Big1
	_ = types.BloomLookup
	_ = event.NewSubscription
)

// StateCommitmentChainMetaData contains the ABI for the contract that
// commits periodic L2 state batches to L1.
var StateCommitmentChainMetaData = &bind.MetaData{
	ABI: `[
		{"anonymous":false,"inputs":[
			{"indexed":true,"internalType":"uint64","name":"batchIndex","type":"uint64"},
			{"indexed":false,"internalType":"bytes32","name":"batchRoot","type":"bytes32"},
			{"indexed":false,"internalType":"uint64","name":"batchSize","type":"uint64"},
			{"indexed":false,"internalType":"uint64","name":"prevTotalElements","type":"uint64"},
			{"indexed":false,"internalType":"bytes","name":"extraData","type":"bytes"}
		],"name":"StateBatchAppended","type":"event"},
		{"inputs":[
			{"internalType":"bytes32[]","name":"_batch","type":"bytes32[]"},
			{"internalType":"uint64","name":"_shouldStartAtElement","type":"uint64"}
		],"name":"appendStateBatch","outputs":[],"stateMutability":"nonpayable","type":"function"},
		{"inputs":[
			{"internalType":"tuple","name":"_batchHeader","type":"tuple","components":[
				{"internalType":"uint64","name":"batchIndex","type":"uint64"},
				{"internalType":"bytes32","name":"batchRoot","type":"bytes32"},
				{"internalType":"uint64","name":"batchSize","type":"uint64"},
				{"internalType":"uint64","name":"prevTotalElements","type":"uint64"},
				{"internalType":"bytes","name":"extraData","type":"bytes"}
			]}
		],"name":"insideFraudProofWindow","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
		{"inputs":[],"name":"getTotalElements","outputs":[{"internalType":"uint64","name":"","type":"uint64"}],"stateMutability":"view","type":"function"}
	]`,
}

// StateCommitmentChainABI is the input ABI used to generate the binding from.
var StateCommitmentChainABI = StateCommitmentChainMetaData.ABI

// StateCommitmentChainBatchHeader is the ABI tuple for the on-chain batch
// header: the five fields the contract itself stores and checks. The full
// state-root list used to build an inclusion proof never goes on chain; it
// is kept off-chain in types.StateBatchHeader and is not part of this tuple.
type StateCommitmentChainBatchHeader struct {
	BatchIndex        uint64
	BatchRoot         [32]byte
	BatchSize         uint64
	PrevTotalElements uint64
	ExtraData         []byte
}

// StateCommitmentChain is an auto generated Go binding around an Ethereum contract.
type StateCommitmentChain struct {
	StateCommitmentChainCaller     // Read-only binding to the contract
	StateCommitmentChainTransactor // Write-only binding to the contract
	StateCommitmentChainFilterer   // Log filterer for contract events
}

// StateCommitmentChainCaller is a read-only Go binding around the contract.
type StateCommitmentChainCaller struct {
	contract *bind.BoundContract
}

// StateCommitmentChainTransactor is a write-only Go binding around the contract.
type StateCommitmentChainTransactor struct {
	contract *bind.BoundContract
}

// StateCommitmentChainFilterer is a log-filtering Go binding around the contract.
type StateCommitmentChainFilterer struct {
	contract *bind.BoundContract
}

// NewStateCommitmentChain creates a new instance bound to a deployed contract.
func NewStateCommitmentChain(address common.Address, backend bind.ContractBackend) (*StateCommitmentChain, error) {
	contract, err := bindStateCommitmentChain(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &StateCommitmentChain{
		StateCommitmentChainCaller:     StateCommitmentChainCaller{contract: contract},
		StateCommitmentChainTransactor: StateCommitmentChainTransactor{contract: contract},
		StateCommitmentChainFilterer:   StateCommitmentChainFilterer{contract: contract},
	}, nil
}

// NewStateCommitmentChainCaller creates a new read-only instance.
func NewStateCommitmentChainCaller(address common.Address, caller bind.ContractCaller) (*StateCommitmentChainCaller, error) {
	contract, err := bindStateCommitmentChain(address, caller, nil, nil)
	if err != nil {
		return nil, err
	}
	return &StateCommitmentChainCaller{contract: contract}, nil
}

// NewStateCommitmentChainFilterer creates a new log filterer instance.
func NewStateCommitmentChainFilterer(address common.Address, filterer bind.ContractFilterer) (*StateCommitmentChainFilterer, error) {
	contract, err := bindStateCommitmentChain(address, nil, nil, filterer)
	if err != nil {
		return nil, err
	}
	return &StateCommitmentChainFilterer{contract: contract}, nil
}

func bindStateCommitmentChain(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(StateCommitmentChainABI))
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, transactor, filterer), nil
}

// InsideFraudProofWindow reports whether a batch has not yet finished its
// challenge period.
//
// Solidity: function insideFraudProofWindow((uint64,bytes32,uint64,uint64,bytes) _batchHeader) view returns(bool)
func (_SCC *StateCommitmentChainCaller) InsideFraudProofWindow(opts *bind.CallOpts, batchHeader StateCommitmentChainBatchHeader) (bool, error) {
	var out []interface{}
	err := _SCC.contract.Call(opts, &out, "insideFraudProofWindow", batchHeader)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// GetTotalElements returns the number of L2 elements committed so far.
//
// Solidity: function getTotalElements() view returns(uint64)
func (_SCC *StateCommitmentChainCaller) GetTotalElements(opts *bind.CallOpts) (uint64, error) {
	var out []interface{}
	err := _SCC.contract.Call(opts, &out, "getTotalElements")
	if err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint64)).(*uint64), nil
}

// StateCommitmentChainStateBatchAppended represents a StateBatchAppended event.
type StateCommitmentChainStateBatchAppended struct {
	BatchIndex        uint64
	BatchRoot         [32]byte
	BatchSize         uint64
	PrevTotalElements uint64
	ExtraData         []byte
	Raw               types.Log
}

// StateCommitmentChainStateBatchAppendedIterator iterates over
// StateBatchAppended logs returned by FilterStateBatchAppended.
type StateCommitmentChainStateBatchAppendedIterator struct {
	Event *StateCommitmentChainStateBatchAppended

	contract *bind.BoundContract
	event    string

	logs chan types.Log
	sub  ethereum.Subscription
	done bool
	fail error
}

func (it *StateCommitmentChainStateBatchAppendedIterator) Next() bool {
	if it.fail != nil {
		return false
	}
	if it.done {
		select {
		case log := <-it.logs:
			return it.unpack(log)
		default:
			return false
		}
	}
	select {
	case log := <-it.logs:
		return it.unpack(log)
	case err := <-it.sub.Err():
		it.done = true
		it.fail = err
		return it.Next()
	}
}

func (it *StateCommitmentChainStateBatchAppendedIterator) unpack(log types.Log) bool {
	it.Event = new(StateCommitmentChainStateBatchAppended)
	if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
		it.fail = err
		return false
	}
	it.Event.Raw = log
	return true
}

func (it *StateCommitmentChainStateBatchAppendedIterator) Error() error { return it.fail }

func (it *StateCommitmentChainStateBatchAppendedIterator) Close() error {
	it.sub.Unsubscribe()
	return nil
}

// FilterStateBatchAppended binds a log retrieval operation to the
// StateBatchAppended event.
//
// Solidity: event StateBatchAppended(uint64 indexed batchIndex, bytes32 batchRoot, uint64 batchSize, uint64 prevTotalElements, bytes extraData)
func (_SCC *StateCommitmentChainFilterer) FilterStateBatchAppended(opts *bind.FilterOpts, batchIndex []uint64) (*StateCommitmentChainStateBatchAppendedIterator, error) {
	var batchIndexRule []interface{}
	for _, b := range batchIndex {
		batchIndexRule = append(batchIndexRule, b)
	}
	logs, sub, err := _SCC.contract.FilterLogs(opts, "StateBatchAppended", batchIndexRule)
	if err != nil {
		return nil, err
	}
	return &StateCommitmentChainStateBatchAppendedIterator{contract: _SCC.contract, event: "StateBatchAppended", logs: logs, sub: sub}, nil
}

// ParseStateBatchAppended unpacks a raw log into a StateBatchAppended event.
func (_SCC *StateCommitmentChainFilterer) ParseStateBatchAppended(log types.Log) (*StateCommitmentChainStateBatchAppended, error) {
	event := new(StateCommitmentChainStateBatchAppended)
	if err := _SCC.contract.UnpackLog(event, "StateBatchAppended", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// AppendStateBatchMethodID is the 4-byte selector of appendStateBatch, used
// by BatchIndex to recognize the calldata it decodes out of a
// StateBatchAppended-emitting transaction.
var AppendStateBatchMethodID [4]byte

func init() {
	parsed, err := abi.JSON(strings.NewReader(StateCommitmentChainABI))
	if err != nil {
		panic(err)
	}
	method, ok := parsed.Methods["appendStateBatch"]
	if !ok {
		panic("appendStateBatch method missing from StateCommitmentChain ABI")
	}
	copy(AppendStateBatchMethodID[:], method.ID)
}

// UnpackAppendStateBatch decodes the calldata of an appendStateBatch call
// into its (batch []common.Hash, shouldStartAtElement uint64) arguments.
func UnpackAppendStateBatch(data []byte) ([]common.Hash, uint64, error) {
	parsed, err := abi.JSON(strings.NewReader(StateCommitmentChainABI))
	if err != nil {
		return nil, 0, err
	}
	method, ok := parsed.Methods["appendStateBatch"]
	if !ok {
		return nil, 0, errors.New("appendStateBatch method missing from StateCommitmentChain ABI")
	}
	if len(data) < 4 {
		return nil, 0, errors.New("calldata shorter than a method selector")
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, 0, err
	}
	rawBatch := *abi.ConvertType(args[0], new([][32]byte)).(*[][32]byte)
	batch := make([]common.Hash, len(rawBatch))
	for i, b := range rawBatch {
		batch[i] = common.Hash(b)
	}
	shouldStartAtElement := *abi.ConvertType(args[1], new(uint64)).(*uint64)
	return batch, shouldStartAtElement, nil
}
