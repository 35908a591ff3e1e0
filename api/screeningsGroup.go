package api

import (
	"errors"
	"net/http"

	"github.com/ethicalnode/staking-gateway-go/storage"
	"github.com/gin-gonic/gin"
)

func (ws *webServer) listScreenings(c *gin.Context) {
	var page storage.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	records, total, err := ws.screenings.List(c.Request.Context(), c.Query("network"), page)
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

func (ws *webServer) createScreening(c *gin.Context) {
	var record storage.HalalScreening
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ws.screenings.Insert(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusCreated, &record)
}

func (ws *webServer) updateScreening(c *gin.Context) {
	var record storage.HalalScreening
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	record.ID = c.Param("id")

	if err := ws.screenings.Update(c.Request.Context(), &record); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondOK(c, http.StatusOK, &record)
}

func (ws *webServer) deleteScreening(c *gin.Context) {
	err := ws.screenings.Delete(c.Request.Context(), c.Param("id"))
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
