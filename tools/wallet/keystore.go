package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xdg-go/pbkdf2"
)

const (
	keystoreVersion    = 1
	keystoreFileMode   = 0600
	kdfIterations      = 16384
	kdfKeyLength       = 32
	kdfSaltLength      = 16
	keystoreCipherName = "aes-256-gcm"
	keystoreKDFName    = "pbkdf2-sha256"
)

type keystoreCrypto struct {
	Cipher     string `json:"cipher"`
	CipherText string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"`
	Iterations int    `json:"iterations"`
}

type keystoreFile struct {
	Version int            `json:"version"`
	Address string         `json:"address"`
	Crypto  keystoreCrypto `json:"crypto"`
}

// SaveKeystore writes the wallet seed to an encrypted keystore file
func (w *wallet) SaveKeystore(path string, password string) error {
	salt := make([]byte, kdfSaltLength)
	_, err := rand.Read(salt)
	if err != nil {
		return err
	}

	aead, err := newAEAD(password, salt, kdfIterations)
	if err != nil {
		return err
	}

	nonce := make([]byte, aead.NonceSize())
	_, err = rand.Read(nonce)
	if err != nil {
		return err
	}

	addr, err := w.Address()
	if err != nil {
		return err
	}

	cipherText := aead.Seal(nil, nonce, w.privateKeyBytes[:seedLength], nil)

	content := &keystoreFile{
		Version: keystoreVersion,
		Address: addr,
		Crypto: keystoreCrypto{
			Cipher:     keystoreCipherName,
			CipherText: hex.EncodeToString(cipherText),
			Nonce:      hex.EncodeToString(nonce),
			KDF:        keystoreKDFName,
			Salt:       hex.EncodeToString(salt),
			Iterations: kdfIterations,
		},
	}

	buff, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, buff, keystoreFileMode)
}

// NewWalletFromKeystore restores a wallet from an encrypted keystore file
func NewWalletFromKeystore(path string, password string) (*wallet, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := &keystoreFile{}
	err = json.Unmarshal(buff, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidKeystore, err.Error())
	}
	if content.Version != keystoreVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errInvalidKeystore, content.Version)
	}

	salt, err := hex.DecodeString(content.Crypto.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidKeystore, err.Error())
	}
	nonce, err := hex.DecodeString(content.Crypto.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidKeystore, err.Error())
	}
	cipherText, err := hex.DecodeString(content.Crypto.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidKeystore, err.Error())
	}

	if content.Crypto.Iterations <= 0 {
		return nil, fmt.Errorf("%w: invalid kdf iterations %d", errInvalidKeystore, content.Crypto.Iterations)
	}

	aead, err := newAEAD(password, salt, content.Crypto.Iterations)
	if err != nil {
		return nil, err
	}

	seed, err := aead.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, errWrongPassword
	}

	return newWalletFromSeed(seed)
}

func newAEAD(password string, salt []byte, iterations int) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, iterations, kdfKeyLength, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
