package api

import (
	"net/http"

	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse represents an error message structure for API responses.
// Kind and Action tell the screen how to react: retry, go back to login,
// show the message next to the form or show it as a banner.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Action string `json:"action"`
}

// statusFor maps an error kind to the gateway's HTTP status
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.NetworkError:
		return http.StatusServiceUnavailable
	case errors.AuthError:
		return http.StatusUnauthorized
	case errors.ValidationError:
		return http.StatusBadRequest
	case errors.ServerError:
		return http.StatusBadGateway
	case errors.NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorBody renders err the way the screen for op displays it
func errorBody(op errors.Operation, err error) ErrorResponse {
	kind := errors.TypeOf(err)
	message := errors.UserMessage(op, err)
	switch kind {
	case errors.NetworkError, errors.AuthError, errors.ValidationError, errors.ServerError:
	case errors.NotFoundError:
		if appErr, ok := err.(*errors.AppError); ok {
			message = appErr.Message
		}
	default:
		message = internalErrorMessage
	}

	return ErrorResponse{
		Error:  message,
		Kind:   kind.String(),
		Action: errors.ActionFor(err).String(),
	}
}

// handleError writes the classified error for op and logs it
func (s *HTTPServerAdapter) handleError(c *gin.Context, op errors.Operation, err error) {
	status := statusFor(err)
	fields := []ports.Field{
		ports.F("operation", string(op)),
		ports.F("status", status),
		ports.F("error_kind", errors.TypeOf(err).String()),
		ports.F("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", fields...)
	} else {
		s.logger.Warn("Request rejected", fields...)
	}

	c.AbortWithStatusJSON(status, errorBody(op, err))
}
