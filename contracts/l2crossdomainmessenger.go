// Code generated by hand in the style of abigen bindings. Keep in sync with
// the L2CrossDomainMessenger contract's ABI if it changes.

package contracts

import (
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// L2CrossDomainMessengerMetaData contains the ABI for the L2 side of the
// cross-domain messenger. The relayer only ever reads its SentMessage log
// history; it never transacts against L2.
var L2CrossDomainMessengerMetaData = &bind.MetaData{
	ABI: `[
		{"anonymous":false,"inputs":[
			{"indexed":false,"internalType":"bytes","name":"message","type":"bytes"}
		],"name":"SentMessage","type":"event"},
		{"inputs":[
			{"internalType":"address","name":"_target","type":"address"},
			{"internalType":"bytes","name":"_message","type":"bytes"},
			{"internalType":"uint64","name":"_gasLimit","type":"uint64"}
		],"name":"sendMessage","outputs":[],"stateMutability":"nonpayable","type":"function"}
	]`,
}

// L2CrossDomainMessengerABI is the input ABI used to generate the binding from.
var L2CrossDomainMessengerABI = L2CrossDomainMessengerMetaData.ABI

// L2CrossDomainMessenger is an auto generated Go binding around an Ethereum contract.
type L2CrossDomainMessenger struct {
	L2CrossDomainMessengerCaller
	L2CrossDomainMessengerFilterer
}

type L2CrossDomainMessengerCaller struct{ contract *bind.BoundContract }
type L2CrossDomainMessengerFilterer struct{ contract *bind.BoundContract }

// NewL2CrossDomainMessengerFilterer creates a new log filterer instance.
func NewL2CrossDomainMessengerFilterer(address common.Address, filterer bind.ContractFilterer) (*L2CrossDomainMessengerFilterer, error) {
	contract, err := bindL2CrossDomainMessenger(address, nil, filterer)
	if err != nil {
		return nil, err
	}
	return &L2CrossDomainMessengerFilterer{contract: contract}, nil
}

func bindL2CrossDomainMessenger(address common.Address, caller bind.ContractCaller, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(L2CrossDomainMessengerABI))
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, nil, filterer), nil
}

// L2CrossDomainMessengerSentMessage represents a SentMessage event.
type L2CrossDomainMessengerSentMessage struct {
	Message []byte
	Raw     types.Log
}

// L2CrossDomainMessengerSentMessageIterator iterates over SentMessage logs
// returned by FilterSentMessage.
type L2CrossDomainMessengerSentMessageIterator struct {
	Event *L2CrossDomainMessengerSentMessage

	contract *bind.BoundContract
	event    string

	logs chan types.Log
	sub  ethereum.Subscription
	done bool
	fail error
}

// FilterSentMessage binds a log retrieval operation to the SentMessage event.
//
// Solidity: event SentMessage(bytes message)
func (_L2XDM *L2CrossDomainMessengerFilterer) FilterSentMessage(opts *bind.FilterOpts) (*L2CrossDomainMessengerSentMessageIterator, error) {
	logs, sub, err := _L2XDM.contract.FilterLogs(opts, "SentMessage")
	if err != nil {
		return nil, err
	}
	return &L2CrossDomainMessengerSentMessageIterator{
		contract: _L2XDM.contract,
		event:    "SentMessage",
		logs:     logs,
		sub:      sub,
	}, nil
}

func (it *L2CrossDomainMessengerSentMessageIterator) Next() bool {
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

func (it *L2CrossDomainMessengerSentMessageIterator) unpack(log types.Log) bool {
	it.Event = new(L2CrossDomainMessengerSentMessage)
	if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
		it.fail = err
		return false
	}
	it.Event.Raw = log
	return true
}

func (it *L2CrossDomainMessengerSentMessageIterator) Error() error { return it.fail }

func (it *L2CrossDomainMessengerSentMessageIterator) Close() error {
	it.sub.Unsubscribe()
	return nil
}

// ParseSentMessage unpacks a raw log into a SentMessage event.
func (_L2XDM *L2CrossDomainMessengerFilterer) ParseSentMessage(log types.Log) (*L2CrossDomainMessengerSentMessage, error) {
	event := new(L2CrossDomainMessengerSentMessage)
	if err := _L2XDM.contract.UnpackLog(event, "SentMessage", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}
