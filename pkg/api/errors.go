package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	errorsmod "cosmossdk.io/errors"

	authtypes "github.com/manus-ai/quorum-bridge/x/auth/types"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Error     string `json:"error"`
}

// APIError is returned by the Client for non-2xx answers.
type APIError struct {
	Status int
	ErrorResponse
}

func (e *APIError) Error() string {
	if e.Codespace == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.ErrorResponse.Error)
	}
	return fmt.Sprintf("http %d: %s (codespace %s, code %d)", e.Status, e.ErrorResponse.Error, e.Codespace, e.Code)
}

// internalCode is what errorsmod reports for errors that were never registered.
const internalCode = 1

func statusFor(err error) int {
	switch {
	case types.IsFatal(err):
		return http.StatusInternalServerError
	case errorsmod.IsOf(err, authtypes.ErrInvalidSignature, authtypes.ErrSignerMismatch):
		return http.StatusUnauthorized
	case errorsmod.IsOf(err, types.ErrUnauthorized, ledgertypes.ErrUnauthorized):
		return http.StatusForbidden
	case errorsmod.IsOf(err, types.ErrNotFound):
		return http.StatusNotFound
	}
	if _, code, _ := errorsmod.ABCIInfo(err, false); code == internalCode {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	codespace, code, log := errorsmod.ABCIInfo(err, false)
	writeJSON(w, statusFor(err), ErrorResponse{Codespace: codespace, Code: code, Error: log})
}

// badRequest reports malformed input that never reached the module.
func badRequest(w http.ResponseWriter, format string, args ...any) {
	writeError(w, errorsmod.Wrapf(types.ErrUnknownRequest, format, args...))
}
