package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/apperror"
	"streamhub/infrastructure/logger"
)

// Res is the success envelope shared by every endpoint.
type Res struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ResError is the failure envelope.
type ResError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	Errors     []any  `json:"errors"`
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Res{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.Internal {
		logger.GetLogger().WithField("error", err).Error("Internal error")
	}
	status := kind.Status()
	c.JSON(status, ResError{
		StatusCode: status,
		Message:    apperror.MessageOf(err),
		Success:    false,
		Errors:     []any{},
	})
}

func errUnauthorized() error {
	return apperror.New(apperror.Unauthorized, "Unauthorized request")
}

func respondInvalid(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ResError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Success:    false,
		Errors:     []any{},
	})
}
