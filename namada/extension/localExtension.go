package extension

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/tools/wallet"
)

const gatewayAccountAlias = "gateway"

// ArgsLocalExtension is the arguments DTO for the NewLocalExtension function
type ArgsLocalExtension struct {
	Wallet  wallet.Wallet
	ChainID string
}

// localExtension adapts the gateway's operational wallet to the Extension
// surface so custodial flows run through the same code path as
// extension-signed ones.
type localExtension struct {
	wallet  wallet.Wallet
	chainID string
	address string
}

// NewLocalExtension creates an Extension backed by a local wallet
func NewLocalExtension(args ArgsLocalExtension) (*localExtension, error) {
	if args.Wallet == nil {
		return nil, errNilWallet
	}
	if len(args.ChainID) == 0 {
		return nil, errEmptyChainID
	}

	addr, err := args.Wallet.Address()
	if err != nil {
		return nil, err
	}

	return &localExtension{
		wallet:  args.Wallet,
		chainID: args.ChainID,
		address: addr,
	}, nil
}

// Connect approves the connection when the requested chain matches the wallet
// chain. An empty chain id is the no-argument fallback call and is accepted.
func (le *localExtension) Connect(_ context.Context, chainID string) error {
	if len(chainID) == 0 || chainID == le.chainID {
		return nil
	}

	return fmt.Errorf("%w: requested %s, wallet is bound to %s", errChainMismatch, chainID, le.chainID)
}

// Accounts returns the single transparent operational account
func (le *localExtension) Accounts(_ context.Context) ([]*data.Account, error) {
	return []*data.Account{
		{
			Address:   le.address,
			PublicKey: hex.EncodeToString(le.wallet.PublicKey()),
			Alias:     gatewayAccountAlias,
			Shielded:  false,
		},
	}, nil
}

// Signer returns the extension itself, it signs with the wrapped wallet
func (le *localExtension) Signer() Signer {
	return le
}

// Sign signs every envelope of the batch with the operational wallet key
func (le *localExtension) Sign(_ context.Context, txs []*data.Tx, owner string) ([]*data.Tx, error) {
	if owner != le.address {
		return nil, fmt.Errorf("%w: %s", errUnknownOwner, owner)
	}

	signed := make([]*data.Tx, 0, len(txs))
	for _, tx := range txs {
		if tx == nil {
			return nil, errNilTx
		}

		buff, err := tx.SigningBytes()
		if err != nil {
			return nil, err
		}

		signature, err := le.wallet.Sign(buff)
		if err != nil {
			return nil, err
		}

		signedTx := *tx
		signedTx.Signature = signature
		signed = append(signed, &signedTx)
	}

	return signed, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (le *localExtension) IsInterfaceNil() bool {
	return le == nil
}
