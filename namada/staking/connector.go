package staking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethicalnode/staking-gateway-go/namada/address"
	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/extension"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const defaultInjectionWait = time.Millisecond * 200

var log = logger.GetOrCreate("namada/staking")

// ConnectionState is the wallet connection state machine state
type ConnectionState int

const (
	// Disconnected is the initial and terminal state, no session exists
	Disconnected ConnectionState = iota
	// Connecting is the transient state while the extension handshake runs
	Connecting
	// Connected means a session with a selected account exists
	Connected
)

// String returns the human readable state name
func (state ConnectionState) String() string {
	switch state {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Session is the wallet session owned by the connector. Connected implies a
// non-empty address.
type Session struct {
	Address   string
	PublicKey string
	ChainID   string
	Connected bool
}

// ArgsConnector is the arguments DTO for the NewConnector function
type ArgsConnector struct {
	Locator       ExtensionLocator
	ChainID       string
	InjectionWait time.Duration
}

type connector struct {
	mut           sync.RWMutex
	locator       ExtensionLocator
	chainID       string
	injectionWait time.Duration
	state         ConnectionState
	session       Session
	ext           extension.Extension
	proxy         Proxy
}

// NewConnector creates a wallet connector in the Disconnected state. Every
// transition is caller initiated, there is no automatic reconnect.
func NewConnector(args ArgsConnector) (*connector, error) {
	err := checkArgsConnector(args)
	if err != nil {
		return nil, err
	}

	injectionWait := args.InjectionWait
	if injectionWait <= 0 {
		injectionWait = defaultInjectionWait
	}

	return &connector{
		locator:       args.Locator,
		chainID:       args.ChainID,
		injectionWait: injectionWait,
		state:         Disconnected,
	}, nil
}

func checkArgsConnector(args ArgsConnector) error {
	if check.IfNil(args.Locator) {
		return ErrNilExtensionLocator
	}
	if len(args.ChainID) == 0 {
		return ErrEmptyChainID
	}

	return nil
}

// Connect performs the Disconnected -> Connecting -> Connected transition.
// On any failure the state falls back to Disconnected and the session stays
// cleared. Calling Connect on an already connected instance returns the
// existing session.
func (c *connector) Connect(ctx context.Context) (Session, error) {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.state == Connected {
		return c.session, nil
	}

	c.state = Connecting

	ext, err := c.locator.Locate(ctx)
	if err != nil || check.IfNil(ext) {
		c.resetLocked()
		return Session{}, ErrExtensionMissing
	}

	err = ext.Connect(ctx, c.chainID)
	if err != nil {
		log.Debug("chain scoped connect failed, retrying without chain id", "chainId", c.chainID, "error", err)
		err = ext.Connect(ctx, "")
	}
	if err != nil {
		c.resetLocked()
		return Session{}, fmt.Errorf("%w: %s", ErrConnectRejected, err.Error())
	}

	// the extension injects its query methods shortly after approving the connection
	time.Sleep(c.injectionWait)

	accounts, err := ext.Accounts(ctx)
	if err != nil {
		c.resetLocked()
		return Session{}, fmt.Errorf("%w: %s", ErrNoAccounts, err.Error())
	}

	account := selectAccount(accounts)
	if account == nil {
		c.resetLocked()
		return Session{}, ErrNoAccounts
	}

	c.ext = ext
	c.session = Session{
		Address:   account.Address,
		PublicKey: account.PublicKey,
		ChainID:   c.chainID,
		Connected: true,
	}
	c.state = Connected

	log.Info("wallet connected", "address", account.Address, "chainId", c.chainID)

	return c.session, nil
}

// selectAccount applies the account selection rule: the first transparent
// non-shielded account wins, then the first transparent one, then the first
// of the list. An empty list selects nothing.
func selectAccount(accounts []*data.Account) *data.Account {
	for _, account := range accounts {
		if account == nil {
			continue
		}
		if address.HasTransparentPrefix(account.Address) && !account.Shielded {
			return account
		}
	}
	for _, account := range accounts {
		if account == nil {
			continue
		}
		if address.HasTransparentPrefix(account.Address) {
			return account
		}
	}
	for _, account := range accounts {
		if account != nil {
			return account
		}
	}

	return nil
}

// Disconnect clears the session, the cached extension handle and the cached
// chain client. It is idempotent.
func (c *connector) Disconnect() {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.state == Disconnected {
		return
	}

	c.resetLocked()
	log.Info("wallet disconnected")
}

func (c *connector) resetLocked() {
	c.state = Disconnected
	c.session = Session{}
	c.ext = nil
	c.proxy = nil
}

// State returns the current connection state
func (c *connector) State() ConnectionState {
	c.mut.RLock()
	defer c.mut.RUnlock()

	return c.state
}

// Session returns a copy of the current session
func (c *connector) Session() Session {
	c.mut.RLock()
	defer c.mut.RUnlock()

	return c.session
}

// Extension returns the cached extension handle, nil while disconnected
func (c *connector) Extension() extension.Extension {
	c.mut.RLock()
	defer c.mut.RUnlock()

	return c.ext
}

// CachedProxy returns the chain client cached for this session, if any
func (c *connector) CachedProxy() Proxy {
	c.mut.RLock()
	defer c.mut.RUnlock()

	return c.proxy
}

// StoreProxy caches the chain client for the lifetime of the session
func (c *connector) StoreProxy(proxy Proxy) {
	c.mut.Lock()
	defer c.mut.Unlock()

	c.proxy = proxy
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *connector) IsInterfaceNil() bool {
	return c == nil
}
