package wallet

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cosmos/go-bip39"
	"github.com/ethicalnode/staking-gateway-go/namada/address"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
)

const (
	mnemonicEntropyBits = 256
	seedLength          = 32
	addressHashLength   = 20
)

// implicitAddressDiscriminant marks addresses derived from a public key
const implicitAddressDiscriminant = byte(0)

var (
	suite  = ed25519.NewEd25519()
	keyGen = signing.NewKeyGenerator(suite)
	signer = &singlesig.Ed25519Signer{}
)

type wallet struct {
	privateKey      crypto.PrivateKey
	publicKey       crypto.PublicKey
	privateKeyBytes []byte
	publicKeyBytes  []byte
}

// NewWallet creates a wallet from fresh entropy and returns it together with
// the generated mnemonic
func NewWallet() (*wallet, string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, "", err
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, "", err
	}

	w, err := NewWalletFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, "", err
	}

	return w, mnemonic, nil
}

// NewWalletFromMnemonic restores a wallet from a bip39 mnemonic
func NewWalletFromMnemonic(mnemonic string, passphrase string) (*wallet, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidMnemonic, err.Error())
	}

	return newWalletFromSeed(seed[:seedLength])
}

// NewWalletFromSeedHex restores a wallet from a hex encoded 32 byte seed
func NewWalletFromSeedHex(seedHex string) (*wallet, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidSeed, err.Error())
	}

	return newWalletFromSeed(seed)
}

func newWalletFromSeed(seed []byte) (*wallet, error) {
	if len(seed) != seedLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errInvalidSeed, seedLength, len(seed))
	}

	privateKey, err := keyGen.PrivateKeyFromByteArray(seed)
	if err != nil {
		return nil, err
	}

	publicKey := privateKey.GeneratePublic()
	privateKeyBytes, err := privateKey.ToByteArray()
	if err != nil {
		return nil, err
	}
	publicKeyBytes, err := publicKey.ToByteArray()
	if err != nil {
		return nil, err
	}

	return &wallet{
		privateKey:      privateKey,
		publicKey:       publicKey,
		privateKeyBytes: privateKeyBytes,
		publicKeyBytes:  publicKeyBytes,
	}, nil
}

// PrivateKey returns the raw private key bytes
func (w *wallet) PrivateKey() []byte {
	return w.privateKeyBytes
}

// PublicKey returns the raw public key bytes
func (w *wallet) PublicKey() []byte {
	return w.publicKeyBytes
}

// Address derives the transparent implicit address of the wallet key
func (w *wallet) Address() (string, error) {
	hash := sha256.Sum256(w.publicKeyBytes)

	raw := make([]byte, 0, addressHashLength+1)
	raw = append(raw, implicitAddressDiscriminant)
	raw = append(raw, hash[:addressHashLength]...)

	addr, err := address.NewTransparentAddress(raw)
	if err != nil {
		return "", err
	}

	return addr.Bech32()
}

// Sign signs the provided message with the wallet private key
func (w *wallet) Sign(msg []byte) ([]byte, error) {
	return signer.Sign(w.privateKey, msg)
}

// SignHex decodes the hex encoded message and signs it
func (w *wallet) SignHex(msg string) ([]byte, error) {
	decoded, err := hex.DecodeString(msg)
	if err != nil {
		return nil, err
	}

	return w.Sign(decoded)
}

// Verify checks a signature produced by this wallet key
func (w *wallet) Verify(msg []byte, sig []byte) error {
	return signer.Verify(w.publicKey, msg, sig)
}
