package errors

import (
	"fmt"
	"net/http"
)

// Classify maps the outcome of a remote call to an error type.
// It is total over its inputs: a call without a response is a network
// failure, 401 is an auth failure, 400 with a message is a validation
// failure and every other non-2xx status is a server failure. A 2xx status
// with a response yields ErrorTypeUnknown because nothing failed.
func Classify(hasResponse bool, statusCode int, message string) ErrorType {
	switch {
	case !hasResponse:
		return NetworkError
	case statusCode >= 200 && statusCode < 300:
		return ErrorTypeUnknown
	case statusCode == http.StatusUnauthorized:
		return AuthError
	case statusCode == http.StatusBadRequest && message != "":
		return ValidationError
	default:
		return ServerError
	}
}

// FromResponse builds the classified error for a non-2xx response.
// message is the server's structured message, if any.
func FromResponse(statusCode int, message string) *AppError {
	switch Classify(true, statusCode, message) {
	case AuthError:
		appErr := NewAuthError("session is missing or expired")
		if message != "" {
			appErr.Message = message
		}
		return appErr
	case ValidationError:
		return &AppError{Type: ValidationError, Message: message, StatusCode: statusCode}
	default:
		if message == "" {
			message = http.StatusText(statusCode)
		}
		return NewServerError(message, statusCode, nil)
	}
}

// Action tells a caller what to do about a classified error.
type Action int

const (
	ActionNone Action = iota
	ActionRetry
	ActionRedirectToLogin
	ActionShowFieldMessage
	ActionShowGeneric
)

func (a Action) String() string {
	switch a {
	case ActionRetry:
		return "retry"
	case ActionRedirectToLogin:
		return "redirect_login"
	case ActionShowFieldMessage:
		return "show_field_message"
	case ActionShowGeneric:
		return "show_generic"
	default:
		return "none"
	}
}

// ActionFor returns the caller action for err.
func ActionFor(err error) Action {
	if err == nil {
		return ActionNone
	}
	switch TypeOf(err) {
	case NetworkError:
		return ActionRetry
	case AuthError:
		return ActionRedirectToLogin
	case ValidationError:
		return ActionShowFieldMessage
	default:
		return ActionShowGeneric
	}
}

// Operation names a client operation for user-facing messages.
type Operation string

const (
	OpLogin       Operation = "login"
	OpRegister    Operation = "register"
	OpLogout      Operation = "logout"
	OpCurrentUser Operation = "current_user"
	OpDashboard   Operation = "dashboard"
	OpWeather     Operation = "weather"
	OpSoil        Operation = "soil"
	OpCrop        Operation = "crop"
	OpSensors     Operation = "sensors"
)

const (
	msgUnreachableForm      = "Unable to connect to the server. Check your internet or try again later."
	msgUnreachableDashboard = "Unable to connect to the server. Check your internet or try again."
	msgInvalidCredentials   = "Invalid email or password."
	msgSessionExpired       = "Session expired. Please log in again."
	msgInvalidInput         = "Invalid input. Please check your details."
)

// UserMessage returns the text a screen shows for err raised by op.
func UserMessage(op Operation, err error) string {
	if err == nil {
		return ""
	}

	var statusCode int
	var message string
	if appErr, ok := asAppError(err); ok {
		statusCode = appErr.StatusCode
		message = appErr.Message
	}

	switch TypeOf(err) {
	case NetworkError:
		if op == OpLogin || op == OpRegister {
			return msgUnreachableForm
		}
		return msgUnreachableDashboard
	case AuthError:
		if op == OpLogin {
			return msgInvalidCredentials
		}
		return msgSessionExpired
	case ValidationError:
		if message != "" {
			return message
		}
		return msgInvalidInput
	}

	switch op {
	case OpLogin:
		return "Failed to login. Please try again."
	case OpRegister:
		if statusCode == http.StatusBadRequest {
			return msgInvalidInput
		}
		return "Failed to register. Please try again."
	case OpDashboard, OpCurrentUser:
		return "Failed to load dashboard data."
	case OpLogout:
		return "Failed to logout."
	default:
		return fmt.Sprintf("Failed to refresh %s data.", op)
	}
}
