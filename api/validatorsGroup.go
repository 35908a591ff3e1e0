package api

import (
	"errors"
	"net/http"

	"github.com/ethicalnode/staking-gateway-go/storage"
	"github.com/gin-gonic/gin"
)

func (ws *webServer) listValidators(c *gin.Context) {
	var page storage.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	onlyActive := c.Query("active") == "true"

	records, total, err := ws.validators.List(c.Request.Context(), onlyActive, page)
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

func (ws *webServer) getValidator(c *gin.Context) {
	record, err := ws.validators.FindByID(c.Request.Context(), c.Param("id"))
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

func (ws *webServer) createValidator(c *gin.Context) {
	var record storage.Validator
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ws.validators.Insert(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusCreated, &record)
}

func (ws *webServer) updateValidator(c *gin.Context) {
	var record storage.Validator
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	record.ID = c.Param("id")

	if err := ws.validators.Update(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusOK, &record)
}

func (ws *webServer) deleteValidator(c *gin.Context) {
	err := ws.validators.Delete(c.Request.Context(), c.Param("id"))
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
