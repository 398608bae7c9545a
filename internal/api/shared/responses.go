package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform JSON wrapper used for every response.
// Success paths carry {success:true, message, item}; error paths carry
// {success:false, error, message, item:null}. The payload field is named
// "item" in both cases and "error" appears only on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Item    any    `json:"item"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes a success envelope with the given status code,
// message and item.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string, item any) {
	RespondWithJSON(w, r, status, Envelope{
		Success: true,
		Message: message,
		Item:    item,
	})
}

// RespondWithError writes an error envelope with the given status code and
// message. The message doubles as the error field.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Envelope{
		Success: false,
		Error:   message,
		Message: message,
	})
}

// RespondWithErrorAndLog writes a sanitized error envelope and logs the
// detailed error server-side. Unexpected failures (5xx) are logged at ERROR
// level with the operation name and request payload so internal detail never
// reaches the caller; 4xx responses are logged at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	operation string,
	err error,
	payload any,
) {
	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	attrs := []any{
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method,
		"status_code", status,
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	if payload != nil {
		attrs = append(attrs, "payload", payload)
	}

	slog.Log(r.Context(), logLevel, operation, attrs...)

	RespondWithJSON(w, r, status, Envelope{
		Success: false,
		Error:   userMessage,
		Message: userMessage,
	})
}
