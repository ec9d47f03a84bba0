package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"starmap-server/internal/shared/errors"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

var statusByType = map[errors.ErrorType]int{
	errors.ErrorTypeNotFound:         http.StatusNotFound,
	errors.ErrorTypeValidation:       http.StatusBadRequest,
	errors.ErrorTypeConflict:         http.StatusConflict,
	errors.ErrorTypeUnauthorized:     http.StatusUnauthorized,
	errors.ErrorTypeForbidden:        http.StatusForbidden,
	errors.ErrorTypeMethodNotAllowed: http.StatusMethodNotAllowed,
	errors.ErrorTypeExternal:         http.StatusServiceUnavailable,
}

// Error logs err and writes it as JSON. Handlers log failures here and
// nowhere else.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	ErrorWithMessage(w, r, logger, err, err.Error())
}

// ErrorWithMessage is Error with a client-facing message that hides the
// internal one
func ErrorWithMessage(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, clientMessage string) {
	errorType := errors.GetType(err)
	status := statusCode(errorType)

	logError(logger, r, err, errorType, status)
	writeJSON(w, status, ErrorResponse{
		Error:   string(errorType),
		Message: clientMessage,
		Code:    status,
	})
}

func statusCode(errorType errors.ErrorType) int {
	if status, ok := statusByType[errorType]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// logError picks the level from the error type: expected client mistakes
// stay at debug, auth failures warn, anything server-side is an error.
func logError(logger *slog.Logger, r *http.Request, err error, errorType errors.ErrorType, status int) {
	logger = logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"error_type", errorType,
		"status_code", status,
	)

	switch errorType {
	case errors.ErrorTypeNotFound, errors.ErrorTypeValidation, errors.ErrorTypeMethodNotAllowed:
		logger.Debug("Request rejected", "error", err)
	case errors.ErrorTypeConflict:
		logger.Info("Request conflicts with stored world", "error", err)
	case errors.ErrorTypeUnauthorized, errors.ErrorTypeForbidden:
		logger.Warn("Authorization error", "error", err)
	case errors.ErrorTypeExternal:
		logger.Error("Backing service error", "error", err)
	default:
		logger.Error("Internal server error", "error", err)
	}
}

// Success writes data as JSON with the given status
func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	if data == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return
	}
	writeJSON(w, statusCode, data)
}

// Attachment sends data as a file download named filename
func Attachment(w http.ResponseWriter, contentType, filename string, data []byte) error {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(data)
	return err
}

// The status line is already out when encoding fails, so the error is dropped.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
