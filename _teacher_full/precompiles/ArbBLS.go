// Copyright 2021-2022, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package precompiles

// Provides a registry of BLS public keys for accounts.
type ArbBLS struct {
	Address addr
}
