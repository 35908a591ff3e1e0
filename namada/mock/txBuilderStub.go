package mock

import (
	"github.com/ethicalnode/staking-gateway-go/namada/data"
)

// TxBuilderStub -
type TxBuilderStub struct {
	BuildBondCalled     func(source string, validator string, displayAmount string, memo string) (*data.Tx, error)
	BuildRevealPKCalled func(source string, publicKey string) (*data.Tx, error)
}

// BuildBond -
func (stub *TxBuilderStub) BuildBond(source string, validator string, displayAmount string, memo string) (*data.Tx, error) {
	if stub.BuildBondCalled != nil {
		return stub.BuildBondCalled(source, validator, displayAmount, memo)
	}

	return &data.Tx{
		Type:      data.TxTypeBond,
		Source:    source,
		Validator: validator,
		Amount:    displayAmount,
		Memo:      memo,
	}, nil
}

// BuildRevealPK -
func (stub *TxBuilderStub) BuildRevealPK(source string, publicKey string) (*data.Tx, error) {
	if stub.BuildRevealPKCalled != nil {
		return stub.BuildRevealPKCalled(source, publicKey)
	}

	return &data.Tx{
		Type:      data.TxTypeRevealPK,
		Source:    source,
		PublicKey: publicKey,
	}, nil
}

// IsInterfaceNil -
func (stub *TxBuilderStub) IsInterfaceNil() bool {
	return stub == nil
}
