package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"swapi-server/internal/shared/errors"
)

// ErrorResponse represents the JSON error response sent to clients
type ErrorResponse struct {
	Success bool                `json:"success"`
	Msg     string              `json:"msg"`
	Error   string              `json:"error"`
	Code    int                 `json:"code"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}

// MessageResponse is the body of operations that only report an outcome
type MessageResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// Error logs an error and sends a JSON error response to the client
// This should be the only place where errors are logged in the application
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	errorType := errors.GetType(err)
	statusCode := StatusCode(errorType)

	logError(logger, r, err, errorType, statusCode)

	sendErrorResponse(w, errorType, errors.ClientMessage(err), errors.GetFields(err), statusCode)
}

// StatusCode maps error types to HTTP status codes
func StatusCode(errorType errors.ErrorType) int {
	switch errorType {
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeValidation, errors.ErrorTypeMethodNotAllowed:
		return http.StatusBadRequest
	case errors.ErrorTypeConflict:
		return http.StatusConflict
	case errors.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrorTypeForbidden:
		return http.StatusForbidden
	case errors.ErrorTypeExternal:
		return http.StatusServiceUnavailable
	case errors.ErrorTypeInternal:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}

func logError(logger *slog.Logger, r *http.Request, err error, errorType errors.ErrorType, statusCode int) {
	logCtx := logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"error_type", errorType,
		"status_code", statusCode,
	)

	switch errorType {
	case errors.ErrorTypeNotFound:
		logCtx.Debug("Resource not found", "error", err)
	case errors.ErrorTypeValidation, errors.ErrorTypeMethodNotAllowed:
		logCtx.Debug("Validation error", "error", err)
	case errors.ErrorTypeUnauthorized, errors.ErrorTypeForbidden:
		logCtx.Warn("Authorization error", "error", err)
	case errors.ErrorTypeConflict:
		logCtx.Info("Conflict error", "error", err)
	case errors.ErrorTypeExternal:
		logCtx.Error("External service error", "error", err)
	case errors.ErrorTypeInternal:
		fallthrough
	default:
		logCtx.Error("Internal server error", "error", err)
	}
}

func sendErrorResponse(w http.ResponseWriter, errorType errors.ErrorType, message string, fields []errors.FieldError, statusCode int) {
	response := ErrorResponse{
		Success: false,
		Msg:     message,
		Error:   string(errorType),
		Code:    statusCode,
		Errors:  fields,
	}

	Success(w, statusCode, response)
}

// Success sends a JSON response to the client
func Success(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		// The status code has already been sent
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Message sends a MessageResponse with the given status
func Message(w http.ResponseWriter, statusCode int, success bool, msg string) {
	Success(w, statusCode, MessageResponse{Success: success, Msg: msg})
}

// Text sends a plain body with an explicit content type
func Text(w http.ResponseWriter, statusCode int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}
