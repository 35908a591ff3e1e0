package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errPairNotTracked = errors.New("pair not tracked")

func (ws *webServer) listPrices(c *gin.Context) {
	base := c.Query("base")
	quote := c.Query("quote")

	if len(base) > 0 && len(quote) > 0 {
		change, found := ws.prices.Latest(base, quote)
		if !found {
			respondError(c, http.StatusNotFound, errPairNotTracked)
			return
		}

		respondOK(c, http.StatusOK, change)
		return
	}

	respondOK(c, http.StatusOK, ws.prices.LatestAll())
}
