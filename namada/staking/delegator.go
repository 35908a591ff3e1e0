package staking

import (
	"context"
	"fmt"

	"github.com/ethicalnode/staking-gateway-go/namada/data"
	"github.com/ethicalnode/staking-gateway-go/namada/denom"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// DelegateRequest describes one stake (bond) operation. Amount is expressed
// in base units of the native token.
type DelegateRequest struct {
	ValidatorAddress string
	AmountNam        string
	Memo             string
}

// ArgsDelegator is the arguments DTO for the NewDelegator function
type ArgsDelegator struct {
	Connector    Connector
	ProxyFactory ProxyFactory
	TxBuilder    TxBuilder
	RPCURL       string
	NativeToken  string
}

type delegator struct {
	connector    Connector
	proxyFactory ProxyFactory
	txBuilder    TxBuilder
	rpcURL       string
	nativeToken  string
}

// NewDelegator creates the component driving the delegate (stake) flow
func NewDelegator(args ArgsDelegator) (*delegator, error) {
	err := checkArgsDelegator(args)
	if err != nil {
		return nil, err
	}

	return &delegator{
		connector:    args.Connector,
		proxyFactory: args.ProxyFactory,
		txBuilder:    args.TxBuilder,
		rpcURL:       args.RPCURL,
		nativeToken:  args.NativeToken,
	}, nil
}

func checkArgsDelegator(args ArgsDelegator) error {
	if check.IfNil(args.Connector) {
		return ErrNilConnector
	}
	if check.IfNil(args.ProxyFactory) {
		return ErrNilProxyFactory
	}
	if check.IfNil(args.TxBuilder) {
		return ErrNilTxBuilder
	}
	if len(args.RPCURL) == 0 {
		return ErrEmptyRPCURL
	}
	if len(args.NativeToken) == 0 {
		return ErrEmptyNativeToken
	}

	return nil
}

// Delegate runs the bond flow: lazy chain client init, balance snapshot, unit
// conversion, reveal-public-key check, bond build, one signing request for
// the whole batch and sequential broadcast. Any failing step aborts the
// remaining ones. The flow is never retried automatically.
func (d *delegator) Delegate(ctx context.Context, request *DelegateRequest) (*data.TxResult, error) {
	if request == nil {
		return nil, ErrNilDelegateRequest
	}
	if len(request.ValidatorAddress) == 0 {
		return nil, ErrEmptyValidatorAddress
	}

	session := d.connector.Session()
	if !session.Connected {
		return nil, ErrNotConnected
	}

	proxy, err := d.chainClient(ctx, session)
	if err != nil {
		return nil, err
	}

	balance, err := proxy.GetBalance(ctx, session.Address, d.nativeToken)
	if err != nil {
		return nil, fmt.Errorf("balance query failed before delegation: %w", err)
	}
	log.Debug("balance before delegation", "address", session.Address, "balance", balance)

	// the signing side expects display units
	displayAmount, err := denom.ToDisplay(request.AmountNam)
	if err != nil {
		return nil, err
	}

	txs, err := d.buildBatch(ctx, proxy, session, request, displayAmount)
	if err != nil {
		return nil, err
	}

	signed, err := d.signBatch(ctx, session, txs)
	if err != nil {
		return nil, err
	}

	return d.broadcastBatch(ctx, proxy, session, signed)
}

// chainClient returns the cached chain client or lazily creates one bound to
// the configured RPC endpoint and the session chain id. A failure here
// happens before any funds are at risk.
func (d *delegator) chainClient(ctx context.Context, session Session) (Proxy, error) {
	proxy := d.connector.CachedProxy()
	if !check.IfNil(proxy) {
		return proxy, nil
	}

	proxy, err := d.proxyFactory.CreateProxy(ctx, d.rpcURL, session.ChainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrClientInit, err.Error())
	}

	d.connector.StoreProxy(proxy)

	return proxy, nil
}

func (d *delegator) buildBatch(
	ctx context.Context,
	proxy Proxy,
	session Session,
	request *DelegateRequest,
	displayAmount string,
) ([]*data.Tx, error) {
	txs := make([]*data.Tx, 0, 2)

	revealed, err := proxy.IsPublicKeyRevealed(ctx, session.Address)
	if err != nil {
		return nil, fmt.Errorf("reveal-public-key check failed: %w", err)
	}
	if !revealed {
		revealTx, errBuild := d.txBuilder.BuildRevealPK(session.Address, session.PublicKey)
		if errBuild != nil {
			return nil, errBuild
		}
		txs = append(txs, revealTx)
		log.Debug("public key not revealed, prepending reveal transaction", "address", session.Address)
	}

	bondTx, err := d.txBuilder.BuildBond(session.Address, request.ValidatorAddress, displayAmount, request.Memo)
	if err != nil {
		return nil, err
	}

	return append(txs, bondTx), nil
}

// signBatch delegates all built transactions as a single signing request. A
// missing signer or an empty signature result is fatal.
func (d *delegator) signBatch(ctx context.Context, session Session, txs []*data.Tx) ([]*data.Tx, error) {
	ext := d.connector.Extension()
	if check.IfNil(ext) {
		return nil, ErrNotConnected
	}

	signer := ext.Signer()
	if check.IfNil(signer) {
		return nil, ErrSigningUnavailable
	}

	signed, err := signer.Sign(ctx, txs, session.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSigningUnavailable, err.Error())
	}
	if len(signed) != len(txs) {
		return nil, ErrEmptySignature
	}
	for _, tx := range signed {
		if tx == nil || !tx.IsSigned() {
			return nil, ErrEmptySignature
		}
	}

	return signed, nil
}

// broadcastBatch sends the signed transactions sequentially, reveal first. A
// rejected transaction after a successful reveal leaves the reveal fee
// deducted, which the returned error states explicitly.
func (d *delegator) broadcastBatch(ctx context.Context, proxy Proxy, session Session, signed []*data.Tx) (*data.TxResult, error) {
	revealSucceeded := false
	var lastResult *data.TxResult

	for _, tx := range signed {
		result, err := proxy.BroadcastTx(ctx, tx)
		if err != nil {
			return nil, d.rejectionError(tx.Type, err.Error(), revealSucceeded)
		}

		balance, errBalance := proxy.GetBalance(ctx, session.Address, d.nativeToken)
		if errBalance != nil {
			log.Warn("balance query after broadcast failed", "error", errBalance)
		} else {
			log.Debug("balance after broadcast", "txType", tx.Type, "balance", balance)
		}

		if !result.IsSuccess() {
			return nil, d.rejectionError(tx.Type, fmt.Sprintf("code %d: %s", result.Code, result.Log), revealSucceeded)
		}

		if tx.Type == data.TxTypeRevealPK {
			revealSucceeded = true
		}
		lastResult = result

		log.Info("transaction broadcast", "txType", tx.Type, "hash", result.Hash, "height", result.Height)
	}

	return lastResult, nil
}

func (d *delegator) rejectionError(txType data.TxType, details string, revealSucceeded bool) error {
	if revealSucceeded {
		return fmt.Errorf(
			"%w: %s transaction failed (%s); the reveal-public-key transaction already succeeded and its fees were already deducted",
			ErrTxRejected, txType, details,
		)
	}

	return fmt.Errorf("%w: %s transaction failed (%s)", ErrTxRejected, txType, details)
}

// IsInterfaceNil returns true if there is no value under the interface
func (d *delegator) IsInterfaceNil() bool {
	return d == nil
}
