package proxy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	methodStatus      = "status"
	methodABCIQuery   = "abci_query"
	methodBroadcast   = "broadcast_tx_commit"
	balancePathFormat = "/shell/value/#%s/balance/#%s"
	publicKeyPath     = "/shell/pk/#%s"
)

var log = logger.GetOrCreate("namada/proxy")

// HTTPClient executes JSON POST calls against the RPC endpoint
type HTTPClient interface {
	Post(ctx context.Context, url string, request interface{}, response interface{}) error
	IsInterfaceNil() bool
}

// ArgsProxy is the arguments DTO for the NewProxy function
type ArgsProxy struct {
	RPCURL string
	Client HTTPClient
}

// proxy consumes the Namada RPC endpoint. It only shuttles opaque payloads,
// the wire protocol itself lives behind the endpoint.
type proxy struct {
	rpcURL string
	client HTTPClient
}

// NewProxy creates a Namada RPC proxy
func NewProxy(args ArgsProxy) (*proxy, error) {
	if len(args.RPCURL) == 0 {
		return nil, errEmptyRPCURL
	}
	if check.IfNil(args.Client) {
		return nil, errNilHTTPClient
	}

	return &proxy{
		rpcURL: args.RPCURL,
		client: args.Client,
	}, nil
}

// GetChainID queries the network identifier of the RPC endpoint
func (p *proxy) GetChainID(ctx context.Context) (string, error) {
	response := &statusResponse{}
	err := p.call(ctx, methodStatus, nil, response)
	if err != nil {
		return "", err
	}

	return response.Result.NodeInfo.Network, nil
}

// GetBalance queries the balance of the owner for the given token, returned
// as a base unit decimal string
func (p *proxy) GetBalance(ctx context.Context, owner string, token string) (string, error) {
	path := fmt.Sprintf(balancePathFormat, token, owner)
	value, _, err := p.abciQuery(ctx, path)
	if err != nil {
		return "", err
	}
	if len(value) == 0 {
		return "0", nil
	}

	balance, ok := new(big.Int).SetString(string(value), 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", errInvalidBalanceValue, string(value))
	}

	return balance.String(), nil
}

// IsPublicKeyRevealed checks whether the owner's public key was already
// revealed on-chain
func (p *proxy) IsPublicKeyRevealed(ctx context.Context, owner string) (bool, error) {
	path := fmt.Sprintf(publicKeyPath, owner)
	value, found, err := p.abciQuery(ctx, path)
	if err != nil {
		return false, err
	}

	return found && len(value) > 0, nil
}

// BroadcastTx submits a signed envelope and waits for its inclusion result
func (p *proxy) BroadcastTx(ctx context.Context, tx *data.Tx) (*data.TxResult, error) {
	if tx == nil {
		return nil, errNilTx
	}
	if !tx.IsSigned() {
		return nil, errUnsignedTx
	}

	buff, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"tx": base64.StdEncoding.EncodeToString(buff),
	}

	response := &broadcastResponse{}
	err = p.call(ctx, methodBroadcast, params, response)
	if err != nil {
		return nil, err
	}

	height := int64(0)
	if len(response.Result.Height) > 0 {
		height, err = strconv.ParseInt(response.Result.Height, 10, 64)
		if err != nil {
			log.Warn("unparsable height in broadcast response", "height", response.Result.Height)
		}
	}

	return &data.TxResult{
		Hash:   response.Result.Hash,
		Height: height,
		Code:   response.Result.Code,
		Log:    response.Result.Log,
	}, nil
}

func (p *proxy) abciQuery(ctx context.Context, path string) ([]byte, bool, error) {
	params := map[string]string{
		"path": path,
	}

	response := &abciQueryResponse{}
	err := p.call(ctx, methodABCIQuery, params, response)
	if err != nil {
		return nil, false, err
	}

	inner := response.Result.Response
	if inner.Code != 0 {
		// a non-zero query code means the key does not exist
		return nil, false, nil
	}

	value, err := base64.StdEncoding.DecodeString(inner.Value)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", errInvalidQueryValue, err.Error())
	}

	return value, true, nil
}

func (p *proxy) call(ctx context.Context, method string, params interface{}, response rpcErrorHolder) error {
	request := &rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	err := p.client.Post(ctx, p.rpcURL, request, response)
	if err != nil {
		return fmt.Errorf("%w on %s: %s", errRPCCallFailed, method, err.Error())
	}

	rpcErr := response.rpcError()
	if rpcErr != nil {
		return fmt.Errorf("%w on %s: %s %s", errRPCCallFailed, method, rpcErr.Message, rpcErr.Data)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (p *proxy) IsInterfaceNil() bool {
	return p == nil
}
