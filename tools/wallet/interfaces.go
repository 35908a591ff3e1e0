package wallet

type Wallet interface {
	PrivateKey() []byte
	PublicKey() []byte
	Address() (string, error)
	Sign(msg []byte) ([]byte, error)
	SignHex(msg string) ([]byte, error)
}
