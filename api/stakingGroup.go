package api

import (
	"errors"
	"net/http"

	"github.com/ethicalnode/staking-gateway-go/namada/staking"
	"github.com/ethicalnode/staking-gateway-go/storage"
	"github.com/gin-gonic/gin"
)

// DelegationConfirmedEvent is the event type pushed to the websocket clients on a confirmed bond
const DelegationConfirmedEvent = "delegation_confirmed"

type delegateRequest struct {
	ValidatorAddress string `json:"validatorAddress" binding:"required"`
	Amount           string `json:"amount" binding:"required"`
	Memo             string `json:"memo"`
	ReferralCode     string `json:"referralCode"`
}

type sessionResponse struct {
	State     string `json:"state"`
	Address   string `json:"address,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
	ChainID   string `json:"chainId,omitempty"`
}

func (ws *webServer) connectWallet(c *gin.Context) {
	session, err := ws.connector.Connect(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusConflict, err)
		return
	}

	respondOK(c, http.StatusOK, sessionResponse{
		State:     ws.connector.State().String(),
		Address:   session.Address,
		PublicKey: session.PublicKey,
		ChainID:   session.ChainID,
	})
}

func (ws *webServer) disconnectWallet(c *gin.Context) {
	ws.connector.Disconnect()

	respondOK(c, http.StatusOK, sessionResponse{State: ws.connector.State().String()})
}

func (ws *webServer) walletSession(c *gin.Context) {
	session := ws.connector.Session()

	respondOK(c, http.StatusOK, sessionResponse{
		State:     ws.connector.State().String(),
		Address:   session.Address,
		PublicKey: session.PublicKey,
		ChainID:   session.ChainID,
	})
}

func (ws *webServer) delegate(c *gin.Context) {
	var request delegateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	session := ws.connector.Session()
	result, err := ws.delegator.Delegate(c.Request.Context(), &staking.DelegateRequest{
		ValidatorAddress: request.ValidatorAddress,
		AmountNam:        request.Amount,
		Memo:             request.Memo,
	})
	if err != nil {
		respondError(c, delegateErrorStatus(err), err)
		return
	}

	record := &storage.Delegation{
		DelegatorAddress: session.Address,
		ValidatorAddress: request.ValidatorAddress,
		Amount:           request.Amount,
		TxHash:           result.Hash,
		Height:           result.Height,
		ReferralCode:     request.ReferralCode,
	}
	err = ws.delegations.Insert(c.Request.Context(), record)
	if err != nil {
		// the bond already happened on-chain, the record failure must not hide that
		log.Warn("cannot persist delegation record", "txHash", result.Hash, "error", err)
	}

	if len(request.ReferralCode) > 0 {
		err = ws.referrals.IncrementUsage(c.Request.Context(), request.ReferralCode)
		if err != nil {
			log.Warn("cannot increment referral usage", "code", request.ReferralCode, "error", err)
		}
	}

	ws.broadcaster.Broadcast(DelegationConfirmedEvent, record)

	respondOK(c, http.StatusOK, record)
}

func delegateErrorStatus(err error) int {
	switch {
	case errors.Is(err, staking.ErrNotConnected),
		errors.Is(err, staking.ErrExtensionMissing):
		return http.StatusConflict
	case errors.Is(err, staking.ErrTxRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, staking.ErrNilDelegateRequest),
		errors.Is(err, staking.ErrEmptyValidatorAddress):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func (ws *webServer) listDelegations(c *gin.Context) {
	var page storage.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	records, total, err := ws.delegations.ListByDelegator(c.Request.Context(), c.Param("address"), page)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	normalized := page.Normalize()
	respondOK(c, http.StatusOK, listResponse{
		Items:    records,
		Total:    total,
		Page:     normalized.Page,
		PageSize: normalized.PageSize,
	})
}
