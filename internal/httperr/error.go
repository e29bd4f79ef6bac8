package httperr

import (
	"errors"
	"net/http"
)

// ===============================
// Taxonomia de erros de negócio
// ===============================

// Error carrega status HTTP, código estável e mensagem legível.
// Sobe intacto das entidades/use cases até o handler.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func NewValidation(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

func NewNotFound(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message}
}

func NewConflict(code, message string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: message}
}

func NewInternal(code, message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: code, Message: message}
}

// ===============================
// Matchers
// ===============================

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsCode(err error, code string) bool {
	if e, ok := As(err); ok {
		return e.Code == code
	}
	return false
}

func IsValidation(err error) bool {
	e, ok := As(err)
	return ok && e.Status == http.StatusBadRequest
}

func IsNotFound(err error) bool {
	e, ok := As(err)
	return ok && e.Status == http.StatusNotFound
}

func IsConflict(err error) bool {
	e, ok := As(err)
	return ok && e.Status == http.StatusConflict
}

// StatusOf devolve o status HTTP do erro, 500 quando desconhecido.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}
