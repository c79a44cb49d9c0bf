package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
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

// FromError resolve o status a partir do Kind do erro de negócio.
// Erros fora da taxonomia viram 500.
func FromError(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, be.Message)
	case KindConflict:
		Conflict(c, be.Code, be.Message)
	default:
		BadRequest(c, be.Code, be.Message)
	}
}
