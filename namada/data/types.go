package data

import (
	"encoding/json"
	"fmt"
)

// TxType identifies the kind of transaction an envelope carries
type TxType string

const (
	// TxTypeRevealPK is the reveal-public-key transaction type
	TxTypeRevealPK TxType = "revealPublicKey"
	// TxTypeBond is the staking bond transaction type
	TxTypeBond TxType = "bond"
)

// WrapperFee holds the wrapper transaction fee parameters
type WrapperFee struct {
	Token            string `json:"token"`
	AmountPerGasUnit string `json:"amountPerGasUnit"`
	GasLimit         uint64 `json:"gasLimit"`
}

// Tx is a sign-ready transaction envelope. The actual protocol encoding is
// produced downstream, the gateway only fills and signs this shape.
type Tx struct {
	Type      TxType     `json:"type"`
	ChainID   string     `json:"chainId"`
	Source    string     `json:"source"`
	Validator string     `json:"validator,omitempty"`
	Amount    string     `json:"amount,omitempty"`
	Token     string     `json:"token,omitempty"`
	PublicKey string     `json:"publicKey,omitempty"`
	Memo      string     `json:"memo,omitempty"`
	Fee       WrapperFee `json:"fee"`
	Signature []byte     `json:"signature,omitempty"`
}

// SigningBytes returns the deterministic byte representation passed to signers.
// The signature field is excluded from the digest input.
func (tx *Tx) SigningBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signature = nil

	buff, err := json.Marshal(&unsigned)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errMarshalTx, err.Error())
	}

	return buff, nil
}

// IsSigned returns true if the envelope carries a non-empty signature
func (tx *Tx) IsSigned() bool {
	return len(tx.Signature) > 0
}

// TxResult is the outcome of a broadcast call. A zero code denotes acceptance,
// any other value denotes on-chain rejection.
type TxResult struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Code   uint32 `json:"code"`
	Log    string `json:"log"`
}

// IsSuccess returns true when the transaction was accepted on-chain
func (result *TxResult) IsSuccess() bool {
	return result != nil && result.Code == 0
}

// Account is one entry of the wallet extension account list
type Account struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	Alias     string `json:"alias"`
	Shielded  bool   `json:"shielded"`
}
