package builders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethicalnode/staking-gateway-go/namada/address"
	"github.com/ethicalnode/staking-gateway-go/namada/data"
)

const minGasLimit = uint64(1)

// ArgsTxBuilder is the arguments DTO for the NewTxBuilder function
type ArgsTxBuilder struct {
	ChainID          string
	NativeToken      string
	FeePerGasUnit    string
	GasLimit         uint64
	RevealPkGasLimit uint64
}

// txBuilder assembles sign-ready envelopes. Fees are fixed per transaction
// kind: a constant per-gas-unit amount times a constant gas limit.
type txBuilder struct {
	chainID          string
	nativeToken      string
	feePerGasUnit    string
	gasLimit         uint64
	revealPkGasLimit uint64
}

// NewTxBuilder creates a transaction builder bound to one chain
func NewTxBuilder(args ArgsTxBuilder) (*txBuilder, error) {
	err := checkArgsTxBuilder(args)
	if err != nil {
		return nil, err
	}

	revealPkGasLimit := args.RevealPkGasLimit
	if revealPkGasLimit == 0 {
		revealPkGasLimit = args.GasLimit
	}

	return &txBuilder{
		chainID:          args.ChainID,
		nativeToken:      args.NativeToken,
		feePerGasUnit:    args.FeePerGasUnit,
		gasLimit:         args.GasLimit,
		revealPkGasLimit: revealPkGasLimit,
	}, nil
}

func checkArgsTxBuilder(args ArgsTxBuilder) error {
	if len(args.ChainID) == 0 {
		return errEmptyChainID
	}
	if len(args.NativeToken) == 0 {
		return errEmptyNativeToken
	}
	if err := checkDisplayAmount(args.FeePerGasUnit); err != nil {
		return fmt.Errorf("%w for the fee per gas unit", errInvalidAmount)
	}
	if args.GasLimit < minGasLimit {
		return errInvalidGasLimit
	}

	return nil
}

// BuildBond assembles a staking bond envelope. Amount is expressed in display
// units of the native token.
func (tb *txBuilder) BuildBond(source string, validator string, displayAmount string, memo string) (*data.Tx, error) {
	err := address.ValidateTransparent(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source: %w", err)
	}
	err = address.ValidateTransparent(validator)
	if err != nil {
		return nil, fmt.Errorf("invalid validator: %w", err)
	}
	err = checkDisplayAmount(displayAmount)
	if err != nil {
		return nil, err
	}

	return &data.Tx{
		Type:      data.TxTypeBond,
		ChainID:   tb.chainID,
		Source:    source,
		Validator: validator,
		Amount:    displayAmount,
		Token:     tb.nativeToken,
		Memo:      memo,
		Fee:       tb.fee(tb.gasLimit),
	}, nil
}

// BuildRevealPK assembles a reveal-public-key envelope for the source address
func (tb *txBuilder) BuildRevealPK(source string, publicKey string) (*data.Tx, error) {
	err := address.ValidateTransparent(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source: %w", err)
	}
	if len(publicKey) == 0 {
		return nil, errEmptyPublicKey
	}

	return &data.Tx{
		Type:      data.TxTypeRevealPK,
		ChainID:   tb.chainID,
		Source:    source,
		PublicKey: publicKey,
		Fee:       tb.fee(tb.revealPkGasLimit),
	}, nil
}

func (tb *txBuilder) fee(gasLimit uint64) data.WrapperFee {
	return data.WrapperFee{
		Token:            tb.nativeToken,
		AmountPerGasUnit: tb.feePerGasUnit,
		GasLimit:         gasLimit,
	}
}

func checkDisplayAmount(amount string) error {
	trimmed := strings.TrimSpace(amount)
	if len(trimmed) == 0 {
		return errEmptyAmount
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", errInvalidAmount, amount)
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s", errInvalidAmount, amount)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (tb *txBuilder) IsInterfaceNil() bool {
	return tb == nil
}
