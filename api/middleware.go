package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

var errUnauthorized = errors.New("unauthorized")

// adminAuth guards the mutating admin endpoints with a static bearer token
func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			respondError(c, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}

		provided := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			respondError(c, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}
