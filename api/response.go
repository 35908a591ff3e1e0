package api

import "github.com/gin-gonic/gin"

// response is the envelope every endpoint answers with
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// listResponse wraps a page of records with its pagination info
type listResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, response{
		Success: true,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, response{
		Success: false,
		Message: err.Error(),
	})
}
