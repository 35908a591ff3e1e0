package proxy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethicalnode/staking-gateway-go/httpclient"
	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(method string, params map[string]interface{}) string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := map[string]interface{}{}
		require.Nil(t, json.NewDecoder(r.Body).Decode(&request))

		params, _ := request["params"].(map[string]interface{})
		_, _ = w.Write([]byte(handler(request["method"].(string), params)))
	}))
}

func newTestProxy(t *testing.T, url string) *proxy {
	client, err := httpclient.NewRestClient(httpclient.ArgsRestClient{})
	require.Nil(t, err)

	p, err := NewProxy(ArgsProxy{RPCURL: url, Client: client})
	require.Nil(t, err)

	return p
}

func TestNewProxy(t *testing.T) {
	t.Parallel()

	t.Run("empty rpc url should error", func(t *testing.T) {
		t.Parallel()

		p, err := NewProxy(ArgsProxy{})
		assert.Nil(t, p)
		assert.Equal(t, errEmptyRPCURL, err)
	})
	t.Run("nil client should error", func(t *testing.T) {
		t.Parallel()

		p, err := NewProxy(ArgsProxy{RPCURL: "http://localhost:26657"})
		assert.Nil(t, p)
		assert.Equal(t, errNilHTTPClient, err)
	})
}

func TestProxy_GetChainID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(method string, _ map[string]interface{}) string {
		assert.Equal(t, methodStatus, method)
		return `{"result":{"node_info":{"network":"namada.test-chain"}}}`
	})
	defer srv.Close()

	p := newTestProxy(t, srv.URL)
	chainID, err := p.GetChainID(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "namada.test-chain", chainID)
}

func TestProxy_GetBalance(t *testing.T) {
	t.Parallel()

	t.Run("existing balance", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("2000000"))
		srv := newTestServer(t, func(method string, params map[string]interface{}) string {
			assert.Equal(t, methodABCIQuery, method)
			assert.Contains(t, params["path"], "balance")
			return fmt.Sprintf(`{"result":{"response":{"code":0,"value":"%s"}}}`, encoded)
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		balance, err := p.GetBalance(context.Background(), "tnam1owner", "tnam1token")
		assert.Nil(t, err)
		assert.Equal(t, "2000000", balance)
	})
	t.Run("missing key yields zero", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return `{"result":{"response":{"code":1,"log":"key not found"}}}`
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		balance, err := p.GetBalance(context.Background(), "tnam1owner", "tnam1token")
		assert.Nil(t, err)
		assert.Equal(t, "0", balance)
	})
	t.Run("garbage value should error", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("not a number"))
		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return fmt.Sprintf(`{"result":{"response":{"code":0,"value":"%s"}}}`, encoded)
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		_, err := p.GetBalance(context.Background(), "tnam1owner", "tnam1token")
		assert.True(t, errors.Is(err, errInvalidBalanceValue))
	})
}

func TestProxy_IsPublicKeyRevealed(t *testing.T) {
	t.Parallel()

	t.Run("revealed", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("ed25519-pk"))
		srv := newTestServer(t, func(_ string, params map[string]interface{}) string {
			assert.Contains(t, params["path"], "/shell/pk/")
			return fmt.Sprintf(`{"result":{"response":{"code":0,"value":"%s"}}}`, encoded)
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		revealed, err := p.IsPublicKeyRevealed(context.Background(), "tnam1owner")
		assert.Nil(t, err)
		assert.True(t, revealed)
	})
	t.Run("not revealed", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return `{"result":{"response":{"code":1}}}`
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		revealed, err := p.IsPublicKeyRevealed(context.Background(), "tnam1owner")
		assert.Nil(t, err)
		assert.False(t, revealed)
	})
}

func TestProxy_BroadcastTx(t *testing.T) {
	t.Parallel()

	signedTx := &data.Tx{
		Type:      data.TxTypeBond,
		Source:    "tnam1source",
		Signature: []byte{1, 2, 3},
	}

	t.Run("unsigned tx should error", func(t *testing.T) {
		t.Parallel()

		p := newTestProxy(t, "http://localhost:1")
		result, err := p.BroadcastTx(context.Background(), &data.Tx{Type: data.TxTypeBond})
		assert.Nil(t, result)
		assert.Equal(t, errUnsignedTx, err)
	})
	t.Run("accepted tx", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(method string, params map[string]interface{}) string {
			assert.Equal(t, methodBroadcast, method)
			assert.NotEmpty(t, params["tx"])
			return `{"result":{"code":0,"hash":"CAFE01","height":"1234","log":""}}`
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		result, err := p.BroadcastTx(context.Background(), signedTx)
		require.Nil(t, err)
		assert.True(t, result.IsSuccess())
		assert.Equal(t, "CAFE01", result.Hash)
		assert.Equal(t, int64(1234), result.Height)
	})
	t.Run("rejected tx carries code and log", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return `{"result":{"code":4,"hash":"DEAD","log":"insufficient balance"}}`
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		result, err := p.BroadcastTx(context.Background(), signedTx)
		require.Nil(t, err)
		assert.False(t, result.IsSuccess())
		assert.Equal(t, uint32(4), result.Code)
		assert.Equal(t, "insufficient balance", result.Log)
	})
	t.Run("rpc error is reported", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return `{"error":{"code":-32600,"message":"invalid request","data":"tx too large"}}`
		})
		defer srv.Close()

		p := newTestProxy(t, srv.URL)
		result, err := p.BroadcastTx(context.Background(), signedTx)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errRPCCallFailed))
	})
}

func TestProxyFactory_CreateProxy(t *testing.T) {
	t.Parallel()

	t.Run("chain id mismatch should error", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return `{"result":{"node_info":{"network":"namada.other"}}}`
		})
		defer srv.Close()

		factory := NewProxyFactory()
		p, err := factory.CreateProxy(context.Background(), srv.URL, "namada.expected")
		assert.Nil(t, p)
		assert.True(t, errors.Is(err, errChainIDMismatch))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(_ string, _ map[string]interface{}) string {
			return `{"result":{"node_info":{"network":"namada.expected"}}}`
		})
		defer srv.Close()

		factory := NewProxyFactory()
		p, err := factory.CreateProxy(context.Background(), srv.URL, "namada.expected")
		assert.Nil(t, err)
		assert.NotNil(t, p)
	})
}
