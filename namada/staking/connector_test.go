package staking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/extension"
	"github.com/ethicalnode/staking-gateway-go/namada/mock"
	"github.com/ethicalnode/staking-gateway-go/namada/staking"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChainID = "namada.test-chain"

func createMockArgsConnector() staking.ArgsConnector {
	return staking.ArgsConnector{
		Locator:       &mock.ExtensionLocatorStub{},
		ChainID:       testChainID,
		InjectionWait: time.Millisecond,
	}
}

func locatorFor(ext extension.Extension) *mock.ExtensionLocatorStub {
	return &mock.ExtensionLocatorStub{
		LocateCalled: func(ctx context.Context) (extension.Extension, error) {
			return ext, nil
		},
	}
}

func transparentAccount(addr string) *data.Account {
	return &data.Account{Address: addr, PublicKey: "pk-" + addr}
}

func shieldedAccount(addr string) *data.Account {
	return &data.Account{Address: addr, PublicKey: "pk-" + addr, Shielded: true}
}

func TestNewConnector(t *testing.T) {
	t.Parallel()

	t.Run("nil locator should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsConnector()
		args.Locator = nil
		c, err := staking.NewConnector(args)
		assert.True(t, check.IfNil(c))
		assert.Equal(t, staking.ErrNilExtensionLocator, err)
	})
	t.Run("empty chain id should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsConnector()
		args.ChainID = ""
		c, err := staking.NewConnector(args)
		assert.True(t, check.IfNil(c))
		assert.Equal(t, staking.ErrEmptyChainID, err)
	})
	t.Run("should work and start disconnected", func(t *testing.T) {
		t.Parallel()

		c, err := staking.NewConnector(createMockArgsConnector())
		require.Nil(t, err)
		assert.False(t, check.IfNil(c))
		assert.Equal(t, staking.Disconnected, c.State())
		assert.False(t, c.Session().Connected)
	})
}

func TestConnector_Connect(t *testing.T) {
	t.Parallel()

	t.Run("missing extension keeps state disconnected", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsConnector()
		args.Locator = locatorFor(nil)
		c, _ := staking.NewConnector(args)

		session, err := c.Connect(context.Background())
		assert.Equal(t, staking.ErrExtensionMissing, err)
		assert.False(t, session.Connected)
		assert.Equal(t, staking.Disconnected, c.State())
	})
	t.Run("locator error keeps state disconnected", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsConnector()
		args.Locator = &mock.ExtensionLocatorStub{
			LocateCalled: func(ctx context.Context) (extension.Extension, error) {
				return nil, errors.New("expected error")
			},
		}
		c, _ := staking.NewConnector(args)

		_, err := c.Connect(context.Background())
		assert.Equal(t, staking.ErrExtensionMissing, err)
		assert.Equal(t, staking.Disconnected, c.State())
	})
	t.Run("chain scoped connect falls back to no-argument call", func(t *testing.T) {
		t.Parallel()

		connectCalls := make([]string, 0)
		ext := &mock.ExtensionStub{
			ConnectCalled: func(ctx context.Context, chainID string) error {
				connectCalls = append(connectCalls, chainID)
				if len(chainID) > 0 {
					return errors.New("unsupported chain parameter")
				}
				return nil
			},
			AccountsCalled: func(ctx context.Context) ([]*data.Account, error) {
				return []*data.Account{transparentAccount("tnam1qqfallback")}, nil
			},
		}

		args := createMockArgsConnector()
		args.Locator = locatorFor(ext)
		c, _ := staking.NewConnector(args)

		session, err := c.Connect(context.Background())
		require.Nil(t, err)
		assert.True(t, session.Connected)
		assert.Equal(t, []string{testChainID, ""}, connectCalls)
	})
	t.Run("both connect calls failing keeps state disconnected", func(t *testing.T) {
		t.Parallel()

		ext := &mock.ExtensionStub{
			ConnectCalled: func(ctx context.Context, chainID string) error {
				return errors.New("user rejected")
			},
		}

		args := createMockArgsConnector()
		args.Locator = locatorFor(ext)
		c, _ := staking.NewConnector(args)

		_, err := c.Connect(context.Background())
		assert.True(t, errors.Is(err, staking.ErrConnectRejected))
		assert.Equal(t, staking.Disconnected, c.State())
	})
	t.Run("selects transparent non-shielded over shielded accounts", func(t *testing.T) {
		t.Parallel()

		accounts := []*data.Account{
			shieldedAccount("znam1qqshielded"),
			{Address: "tnam1qqshieldedalias", PublicKey: "pk-a", Shielded: true},
			transparentAccount("tnam1qqexpected"),
			transparentAccount("tnam1qqsecond"),
		}
		c := connectedConnector(t, accounts)

		session := c.Session()
		assert.Equal(t, "tnam1qqexpected", session.Address)
		assert.Equal(t, "pk-tnam1qqexpected", session.PublicKey)
		assert.Equal(t, testChainID, session.ChainID)
		assert.Equal(t, staking.Connected, c.State())
	})
	t.Run("falls back to the first transparent account", func(t *testing.T) {
		t.Parallel()

		accounts := []*data.Account{
			shieldedAccount("znam1qqshielded"),
			{Address: "tnam1qqonlyshieldedflag", PublicKey: "pk-b", Shielded: true},
		}
		c := connectedConnector(t, accounts)

		assert.Equal(t, "tnam1qqonlyshieldedflag", c.Session().Address)
	})
	t.Run("falls back to the first account of the list", func(t *testing.T) {
		t.Parallel()

		accounts := []*data.Account{
			shieldedAccount("znam1qqfirst"),
			shieldedAccount("znam1qqsecond"),
		}
		c := connectedConnector(t, accounts)

		assert.Equal(t, "znam1qqfirst", c.Session().Address)
	})
	t.Run("empty account list keeps state disconnected", func(t *testing.T) {
		t.Parallel()

		ext := &mock.ExtensionStub{
			AccountsCalled: func(ctx context.Context) ([]*data.Account, error) {
				return []*data.Account{}, nil
			},
		}

		args := createMockArgsConnector()
		args.Locator = locatorFor(ext)
		c, _ := staking.NewConnector(args)

		session, err := c.Connect(context.Background())
		assert.Equal(t, staking.ErrNoAccounts, err)
		assert.False(t, session.Connected)
		assert.Equal(t, staking.Disconnected, c.State())
	})
	t.Run("accounts query error keeps state disconnected", func(t *testing.T) {
		t.Parallel()

		ext := &mock.ExtensionStub{
			AccountsCalled: func(ctx context.Context) ([]*data.Account, error) {
				return nil, errors.New("expected error")
			},
		}

		args := createMockArgsConnector()
		args.Locator = locatorFor(ext)
		c, _ := staking.NewConnector(args)

		_, err := c.Connect(context.Background())
		assert.True(t, errors.Is(err, staking.ErrNoAccounts))
		assert.Equal(t, staking.Disconnected, c.State())
	})
	t.Run("connecting twice returns the existing session", func(t *testing.T) {
		t.Parallel()

		numAccountsCalls := 0
		ext := &mock.ExtensionStub{
			AccountsCalled: func(ctx context.Context) ([]*data.Account, error) {
				numAccountsCalls++
				return []*data.Account{transparentAccount("tnam1qqstable")}, nil
			},
		}

		args := createMockArgsConnector()
		args.Locator = locatorFor(ext)
		c, _ := staking.NewConnector(args)

		first, err := c.Connect(context.Background())
		require.Nil(t, err)

		second, err := c.Connect(context.Background())
		require.Nil(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, numAccountsCalls)
	})
}

type walletConnector interface {
	Connect(ctx context.Context) (staking.Session, error)
	Disconnect()
	State() staking.ConnectionState
	Session() staking.Session
	Extension() extension.Extension
	CachedProxy() staking.Proxy
	StoreProxy(proxy staking.Proxy)
	IsInterfaceNil() bool
}

func connectedConnector(t *testing.T, accounts []*data.Account) walletConnector {
	ext := &mock.ExtensionStub{
		AccountsCalled: func(ctx context.Context) ([]*data.Account, error) {
			return accounts, nil
		},
	}

	args := createMockArgsConnector()
	args.Locator = locatorFor(ext)
	c, err := staking.NewConnector(args)
	require.Nil(t, err)

	_, err = c.Connect(context.Background())
	require.Nil(t, err)

	return c
}

func TestConnector_Disconnect(t *testing.T) {
	t.Parallel()

	t.Run("clears the session and the cached handles", func(t *testing.T) {
		t.Parallel()

		c := connectedConnector(t, []*data.Account{transparentAccount("tnam1qqcleanup")})
		c.StoreProxy(&mock.ProxyStub{})

		c.Disconnect()

		assert.Equal(t, staking.Disconnected, c.State())
		assert.Equal(t, staking.Session{}, c.Session())
		assert.Nil(t, c.Extension())
		assert.True(t, check.IfNil(c.CachedProxy()))
	})
	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		c := connectedConnector(t, []*data.Account{transparentAccount("tnam1qqtwice")})

		c.Disconnect()
		firstState := c.State()
		firstSession := c.Session()

		c.Disconnect()
		assert.Equal(t, firstState, c.State())
		assert.Equal(t, firstSession, c.Session())
	})
	t.Run("disconnecting a fresh connector is a no-op", func(t *testing.T) {
		t.Parallel()

		c, _ := staking.NewConnector(createMockArgsConnector())
		c.Disconnect()
		assert.Equal(t, staking.Disconnected, c.State())
	})
}
