package fakebackend

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// ProofStorageEntry is one eth_getProof storage proof entry.
type ProofStorageEntry struct {
	Key   string   `json:"key"`
	Value string   `json:"value"`
	Proof []string `json:"proof"`
}

// ProofResult mirrors the eth_getProof JSON-RPC response shape l2client
// decodes.
type ProofResult struct {
	AccountProof []string            `json:"accountProof"`
	StorageProof []ProofStorageEntry `json:"storageProof"`
}

// ProofHandler answers one eth_getProof call.
type ProofHandler func(address common.Address, storageKeys []common.Hash, block string) (*ProofResult, error)

type ethProofAPI struct {
	handler ProofHandler
}

// GetProof is exposed over JSON-RPC as eth_getProof by rpc.Server's
// namespace/method-name convention.
func (a *ethProofAPI) GetProof(ctx context.Context, address common.Address, storageKeys []common.Hash, block string) (*ProofResult, error) {
	return a.handler(address, storageKeys, block)
}

// NewProofRPCClient starts an in-process JSON-RPC server exposing
// eth_getProof via handler and returns a client dialed against it. The
// returned func stops the server; callers should defer it.
func NewProofRPCClient(handler ProofHandler) (*rpc.Client, func(), error) {
	server := rpc.NewServer()
	if err := server.RegisterName("eth", &ethProofAPI{handler: handler}); err != nil {
		return nil, nil, err
	}
	client := rpc.DialInProc(server)
	return client, server.Stop, nil
}
