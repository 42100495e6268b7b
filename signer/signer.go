// Package signer builds the l1client.Signer the relayer submits
// relayMessage transactions with, from a config.WalletConfig: either a raw
// private key or a keystore file, following the same two paths the
// teacher's wallet handling supports.
package signer

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/xdmrelay/relayer/config"
)

// Signer wraps a *bind.TransactOpts built once at startup, handing out a
// per-call copy stamped with the caller's context.
type Signer struct {
	opts *bind.TransactOpts
}

// New builds a Signer from wallet, preferring a raw private key over a
// keystore when both are configured.
func New(wallet config.WalletConfig, chainID *big.Int) (*Signer, error) {
	if wallet.PrivateKey != "" {
		return newFromPrivateKey(wallet.PrivateKey, chainID)
	}
	return newFromKeystore(wallet.Pathname, wallet.Account, wallet.Password, chainID)
}

func newFromPrivateKey(hexKey string, chainID *big.Int) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, err
	}
	return &Signer{opts: opts}, nil
}

func newFromKeystore(keystorePath, accountAddress, passphrase string, chainID *big.Int) (*Signer, error) {
	if keystorePath == "" {
		return nil, errors.New("signer: neither wallet.private-key nor wallet.pathname is set")
	}
	ks := keystore.NewKeyStore(keystorePath, keystore.StandardScryptN, keystore.StandardScryptP)
	var account accounts.Account
	if accountAddress == "" {
		if len(ks.Accounts()) == 0 {
			return nil, errors.New("signer: keystore is empty")
		}
		account = ks.Accounts()[0]
	} else {
		var err error
		account, err = ks.Find(accounts.Account{Address: common.HexToAddress(accountAddress)})
		if err != nil {
			return nil, err
		}
	}
	if err := ks.Unlock(account, passphrase); err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyStoreTransactorWithChainID(ks, account, chainID)
	if err != nil {
		return nil, err
	}
	return &Signer{opts: opts}, nil
}

// TransactOpts returns a copy of the signer's transact options bound to ctx,
// satisfying l1client.Signer.
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts := *s.opts
	opts.Context = ctx
	return &opts, nil
}

// From satisfies l1client.Signer.
func (s *Signer) From() common.Address {
	return s.opts.From
}
