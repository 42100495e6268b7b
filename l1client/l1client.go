// Package l1client is the relayer's view of L1: reading state-batch
// history and fraud-proof-window status off the state commitment chain, and
// submitting proven messages to the L1 cross-domain messenger.
package l1client

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/xdmrelay/relayer/contracts"
	rtypes "github.com/xdmrelay/relayer/types"
)

// Signer produces the transact options used to sign and submit
// relayMessage calls. Its concrete implementation (a keystore, an HSM, a
// remote signer) lives outside this module; this is only the seam.
type Signer interface {
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
	From() common.Address
}

// Backend is the subset of *ethclient.Client the L1 client needs: contract
// binding plus the few raw chain reads abigen bindings don't cover. Tests
// satisfy it with a hand-rolled fake instead of dialing a real node.
type Backend interface {
	bind.ContractBackend
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client is the relayer's L1-facing collaborator.
type Client struct {
	eth Backend
	scc *contracts.StateCommitmentChain
	xdm *contracts.L1CrossDomainMessenger

	sccAddress common.Address
	log        log.Logger
}

// Dial connects to an L1 RPC endpoint and binds the state commitment chain
// and cross-domain messenger contracts.
func Dial(ctx context.Context, url string, sccAddress, xdmAddress common.Address) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "l1client: dialing RPC endpoint")
	}
	return NewWithBackend(eth, sccAddress, xdmAddress)
}

// NewWithBackend builds a Client over an already-connected Backend, letting
// tests substitute a fake for a live node.
func NewWithBackend(eth Backend, sccAddress, xdmAddress common.Address) (*Client, error) {
	scc, err := contracts.NewStateCommitmentChain(sccAddress, eth)
	if err != nil {
		return nil, errors.Wrap(err, "l1client: binding StateCommitmentChain")
	}
	xdm, err := contracts.NewL1CrossDomainMessenger(xdmAddress, eth)
	if err != nil {
		return nil, errors.Wrap(err, "l1client: binding L1CrossDomainMessenger")
	}
	return &Client{eth: eth, scc: scc, xdm: xdm, sccAddress: sccAddress, log: log.New("component", "l1client")}, nil
}

// BlockNumber returns the current L1 head height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

// ChainID returns the L1 chain ID, used at startup to build the relay
// signer's transact options.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.eth.ChainID(ctx)
}

// FilterStateBatchAppended returns StateBatchAppended logs in [fromBlock, toBlock].
func (c *Client) FilterStateBatchAppended(ctx context.Context, fromBlock, toBlock uint64) ([]contracts.StateCommitmentChainStateBatchAppended, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.sccAddress},
	}
	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "l1client: filtering StateBatchAppended logs")
	}
	filterer := &c.scc.StateCommitmentChainFilterer
	events := make([]contracts.StateCommitmentChainStateBatchAppended, 0, len(logs))
	for _, l := range logs {
		event, err := filterer.ParseStateBatchAppended(l)
		if err != nil {
			return nil, errors.Wrap(err, "l1client: parsing StateBatchAppended log")
		}
		events = append(events, *event)
	}
	return events, nil
}

// AppendStateBatchCalldata fetches the transaction that emitted a
// StateBatchAppended log and decodes its appendStateBatch arguments.
func (c *Client) AppendStateBatchCalldata(ctx context.Context, txHash common.Hash) (batch []common.Hash, shouldStartAtElement uint64, err error) {
	tx, _, err := c.eth.TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, 0, errors.Wrap(err, "l1client: fetching appendStateBatch transaction")
	}
	batch, shouldStartAtElement, err = contracts.UnpackAppendStateBatch(tx.Data())
	if err != nil {
		return nil, 0, errors.Wrap(err, "l1client: decoding appendStateBatch calldata")
	}
	return batch, shouldStartAtElement, nil
}

// InsideFraudProofWindow reports whether header's fraud-proof challenge
// period has not yet elapsed.
func (c *Client) InsideFraudProofWindow(ctx context.Context, header *rtypes.StateBatchHeader) (bool, error) {
	inside, err := c.scc.InsideFraudProofWindow(&bind.CallOpts{Context: ctx}, header.ToABI())
	if err != nil {
		return false, errors.Wrap(err, "l1client: calling insideFraudProofWindow")
	}
	return inside, nil
}

// SuccessfulMessages reports whether msgHash has already been relayed.
func (c *Client) SuccessfulMessages(ctx context.Context, msgHash common.Hash) (bool, error) {
	ok, err := c.xdm.SuccessfulMessages(&bind.CallOpts{Context: ctx}, msgHash)
	if err != nil {
		return false, errors.Wrap(err, "l1client: calling successfulMessages")
	}
	return ok, nil
}

// RelayMessage submits proof for (target, sender, message, nonce) and waits
// for it to be mined, returning the receipt.
func (c *Client) RelayMessage(ctx context.Context, signer Signer, target, sender common.Address, message []byte, nonce uint64, proof *rtypes.MessageProof) (*types.Receipt, error) {
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "l1client: building transact opts")
	}
	opts.GasLimit = 2_000_000
	tx, err := c.xdm.RelayMessage(opts, target, sender, message, nonce, proof.ToABI())
	if err != nil {
		return nil, errors.Wrap(err, "l1client: submitting relayMessage")
	}
	c.log.Info("submitted relayMessage", "tx", tx.Hash(), "target", target, "nonce", nonce)
	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, errors.Wrap(err, "l1client: waiting for relayMessage receipt")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, errors.Errorf("l1client: relayMessage tx %s reverted", tx.Hash())
	}
	return receipt, nil
}
