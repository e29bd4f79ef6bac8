package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope padrão da API: {success, message, data}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListData[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data: ListData[T]{
			Items: items,
			Total: len(items),
		},
	})
}
