package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorBody{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond traduz qualquer erro vindo dos use cases para a resposta HTTP.
// Ponto único de tradução, os use cases nunca tocam no gin.
func Respond(c *gin.Context, err error) {
	if e, ok := As(err); ok {
		Write(c, e.Status, e.Code, e.Message)
		return
	}

	if IsUniqueViolation(err) {
		Write(c, http.StatusConflict, "conflict", "Conflito de dados.")
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
