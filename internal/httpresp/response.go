package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Result é o formato uniforme devolvido por todas as ações de agendamento.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"error_code,omitempty"`
	Message string `json:"message,omitempty"`

	kind httperr.Kind
}

func Ok[T any](data *T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		Success: false,
		Error:   err.Error(),
		Code:    httperr.CodeOf(err),
		kind:    httperr.KindOf(err),
	}
}

func (r Result[T]) Kind() httperr.Kind {
	return r.kind
}

func (r Result[T]) Status(success int) int {
	if r.Success {
		return success
	}
	return httperr.StatusFor(r.kind)
}

// Write envia o Result com o status HTTP correspondente ao tipo do erro.
func Write[T any](c *gin.Context, success int, r Result[T]) {
	c.JSON(r.Status(success), r)
}

func OK[T any](c *gin.Context, r Result[T]) {
	Write(c, http.StatusOK, r)
}

func Created[T any](c *gin.Context, r Result[T]) {
	Write(c, http.StatusCreated, r)
}
