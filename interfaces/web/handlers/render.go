// Package handlers exposes the management console's HTTP endpoints:
// thin orchestration between application services and presenters.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"eduadmin/domain/contracts"
)

// errorBody is the uniform JSON error envelope returned to the shell.
type errorBody struct {
	Success bool         `json:"success"`
	Error   errorDetails `json:"error"`
}

type errorDetails struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// RenderJSON writes a JSON response with the given status.
func RenderJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RenderError maps typed error kinds to HTTP statuses. Validation and
// permission failures are caller-correctable; transport and server
// failures indicate the backend, not this service.
func RenderError(w http.ResponseWriter, err error) {
	var typed *contracts.Error
	if !errors.As(err, &typed) {
		RenderJSON(w, http.StatusInternalServerError, errorBody{
			Error: errorDetails{Kind: "internal", Message: err.Error()},
		})
		return
	}

	status := http.StatusInternalServerError
	switch typed.Kind {
	case contracts.ErrorKindValidation:
		status = http.StatusBadRequest
	case contracts.ErrorKindPermission:
		status = http.StatusForbidden
	case contracts.ErrorKindTransport:
		status = http.StatusBadGateway
		if typed.Timeout {
			status = http.StatusGatewayTimeout
		}
	case contracts.ErrorKindServer:
		status = http.StatusBadGateway
	}

	RenderJSON(w, status, errorBody{
		Error: errorDetails{
			Kind:    string(typed.Kind),
			Message: typed.Message,
			Details: typed.Details,
		},
	})
}

// DecodeJSON reads a JSON request body into out.
func DecodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		return contracts.NewValidationError("malformed request body: " + err.Error())
	}
	return nil
}
