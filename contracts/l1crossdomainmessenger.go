// Code generated by hand in the style of abigen bindings. Keep in sync with
// the L1CrossDomainMessenger contract's ABI if it changes.

package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// L1CrossDomainMessengerMetaData contains the ABI for the L1 side of the
// cross-domain messenger, including the relayMessage entry point the relayer
// submits proofs to.
var L1CrossDomainMessengerMetaData = &bind.MetaData{
	ABI: `[
		{"anonymous":false,"inputs":[
			{"indexed":true,"internalType":"bytes32","name":"msgHash","type":"bytes32"}
		],"name":"RelayedMessage","type":"event"},
		{"inputs":[
			{"internalType":"bytes32","name":"","type":"bytes32"}
		],"name":"successfulMessages","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
		{"inputs":[
			{"internalType":"address","name":"_target","type":"address"},
			{"internalType":"address","name":"_sender","type":"address"},
			{"internalType":"bytes","name":"_message","type":"bytes"},
			{"internalType":"uint64","name":"_messageNonce","type":"uint64"},
			{"internalType":"tuple","name":"_proof","type":"tuple","components":[
				{"internalType":"bytes32","name":"stateRoot","type":"bytes32"},
				{"internalType":"tuple","name":"stateRootBatchHeader","type":"tuple","components":[
					{"internalType":"uint64","name":"batchIndex","type":"uint64"},
					{"internalType":"bytes32","name":"batchRoot","type":"bytes32"},
					{"internalType":"uint64","name":"batchSize","type":"uint64"},
					{"internalType":"uint64","name":"prevTotalElements","type":"uint64"},
					{"internalType":"bytes","name":"extraData","type":"bytes"}
				]},
				{"internalType":"tuple","name":"stateRootProof","type":"tuple","components":[
					{"internalType":"uint64","name":"index","type":"uint64"},
					{"internalType":"bytes32[]","name":"siblings","type":"bytes32[]"}
				]},
				{"internalType":"bytes","name":"stateTrieWitness","type":"bytes"},
				{"internalType":"bytes","name":"storageTrieWitness","type":"bytes"}
			]}
		],"name":"relayMessage","outputs":[],"stateMutability":"nonpayable","type":"function"},
		{"inputs":[
			{"internalType":"address","name":"_target","type":"address"},
			{"internalType":"address","name":"_sender","type":"address"},
			{"internalType":"bytes","name":"_message","type":"bytes"},
			{"internalType":"uint64","name":"_messageNonce","type":"uint64"}
		],"name":"relayedMessagePayload","outputs":[],"stateMutability":"nonpayable","type":"function"}
	]`,
}

// L1CrossDomainMessengerABI is the input ABI used to generate the binding from.
var L1CrossDomainMessengerABI = L1CrossDomainMessengerMetaData.ABI

// L1CrossDomainMessengerStateRootProof is the ABI tuple for an inclusion
// proof's position and sibling path.
type L1CrossDomainMessengerStateRootProof struct {
	Index    uint64
	Siblings [][32]byte
}

// L1CrossDomainMessengerMessageProof is the ABI tuple consumed by
// relayMessage: the whole two-level inclusion proof for one message.
type L1CrossDomainMessengerMessageProof struct {
	StateRoot            [32]byte
	StateRootBatchHeader StateCommitmentChainBatchHeader
	StateRootProof       L1CrossDomainMessengerStateRootProof
	StateTrieWitness     []byte
	StorageTrieWitness   []byte
}

// L1CrossDomainMessenger is an auto generated Go binding around an Ethereum contract.
type L1CrossDomainMessenger struct {
	L1CrossDomainMessengerCaller
	L1CrossDomainMessengerTransactor
	L1CrossDomainMessengerFilterer
}

type L1CrossDomainMessengerCaller struct{ contract *bind.BoundContract }
type L1CrossDomainMessengerTransactor struct{ contract *bind.BoundContract }
type L1CrossDomainMessengerFilterer struct{ contract *bind.BoundContract }

// NewL1CrossDomainMessenger creates a new instance bound to a deployed contract.
func NewL1CrossDomainMessenger(address common.Address, backend bind.ContractBackend) (*L1CrossDomainMessenger, error) {
	contract, err := bindL1CrossDomainMessenger(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &L1CrossDomainMessenger{
		L1CrossDomainMessengerCaller:     L1CrossDomainMessengerCaller{contract: contract},
		L1CrossDomainMessengerTransactor: L1CrossDomainMessengerTransactor{contract: contract},
		L1CrossDomainMessengerFilterer:   L1CrossDomainMessengerFilterer{contract: contract},
	}, nil
}

func bindL1CrossDomainMessenger(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(L1CrossDomainMessengerABI))
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, transactor, filterer), nil
}

// SuccessfulMessages reports whether a message hash has already been relayed.
//
// Solidity: function successfulMessages(bytes32) view returns(bool)
func (_L1XDM *L1CrossDomainMessengerCaller) SuccessfulMessages(opts *bind.CallOpts, msgHash [32]byte) (bool, error) {
	var out []interface{}
	err := _L1XDM.contract.Call(opts, &out, "successfulMessages", msgHash)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// RelayMessage submits a message and its inclusion proof for execution.
//
// Solidity: function relayMessage(address,address,bytes,uint64,(bytes32,(uint64,bytes32,uint64,uint64,bytes),(uint64,bytes32[]),bytes,bytes))
func (_L1XDM *L1CrossDomainMessengerTransactor) RelayMessage(opts *bind.TransactOpts, target common.Address, sender common.Address, message []byte, messageNonce uint64, proof L1CrossDomainMessengerMessageProof) (*types.Transaction, error) {
	return _L1XDM.contract.Transact(opts, "relayMessage", target, sender, message, messageNonce, proof)
}

// L1CrossDomainMessengerRelayedMessage represents a RelayedMessage event.
type L1CrossDomainMessengerRelayedMessage struct {
	MsgHash [32]byte
	Raw     types.Log
}

// ParseRelayedMessage unpacks a raw log into a RelayedMessage event.
func (_L1XDM *L1CrossDomainMessengerFilterer) ParseRelayedMessage(log types.Log) (*L1CrossDomainMessengerRelayedMessage, error) {
	event := new(L1CrossDomainMessengerRelayedMessage)
	if err := _L1XDM.contract.UnpackLog(event, "RelayedMessage", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// relayMessagePayloadArgs are the ABI arguments L2CrossDomainMessenger packs
// into its SentMessage event body: the same (target, sender, message, nonce)
// quadruple relayMessage ultimately executes on L1, but without the proof
// that only exists once the covering batch is finalized.
var relayMessagePayloadArgs abi.Arguments

func init() {
	parsed, err := abi.JSON(strings.NewReader(L1CrossDomainMessengerABI))
	if err != nil {
		panic(err)
	}
	method, ok := parsed.Methods["relayedMessagePayload"]
	if !ok {
		panic("relayedMessagePayload method missing from L1CrossDomainMessenger ABI")
	}
	relayMessagePayloadArgs = method.Inputs
}

// DecodeRelayMessagePayload decodes the (target, sender, message, nonce)
// calldata embedded in a SentMessage event's message bytes.
func DecodeRelayMessagePayload(data []byte) (target, sender common.Address, message []byte, nonce uint64, err error) {
	values, err := relayMessagePayloadArgs.Unpack(data)
	if err != nil {
		return common.Address{}, common.Address{}, nil, 0, err
	}
	target = *abi.ConvertType(values[0], new(common.Address)).(*common.Address)
	sender = *abi.ConvertType(values[1], new(common.Address)).(*common.Address)
	message = *abi.ConvertType(values[2], new([]byte)).(*[]byte)
	nonce = *abi.ConvertType(values[3], new(uint64)).(*uint64)
	return target, sender, message, nonce, nil
}

// EncodeRelayMessagePayload is the inverse of DecodeRelayMessagePayload; it
// is used by tests to build fake SentMessage event bodies.
func EncodeRelayMessagePayload(target, sender common.Address, message []byte, nonce uint64) ([]byte, error) {
	return relayMessagePayloadArgs.Pack(target, sender, message, nonce)
}
