package api

import (
	"errors"
	"net/http"

	"github.com/ethicalnode/staking-gateway-go/storage"
	"github.com/gin-gonic/gin"
)

func (ws *webServer) getReferralCode(c *gin.Context) {
	record, err := ws.referrals.FindByCode(c.Request.Context(), c.Param("code"))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusOK, record)
}

func (ws *webServer) createReferralCode(c *gin.Context) {
	var record storage.ReferralCode
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ws.referrals.Insert(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusCreated, &record)
}

func (ws *webServer) updateReferralCode(c *gin.Context) {
	var record storage.ReferralCode
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	record.ID = c.Param("id")

	if err := ws.referrals.Update(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusOK, &record)
}

func (ws *webServer) deleteReferralCode(c *gin.Context) {
	err := ws.referrals.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusOK, nil)
}
