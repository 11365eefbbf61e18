package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload.
// The body is encoded into a pooled buffer before any header is written.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for engine errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgGardenFullError       = "Your garden is full. Harvest or buy an extra field."
	ErrMsgPlantNotFoundError    = "Plant not found"
	ErrMsgPlantNotReadyError    = "That plant is still growing"
	ErrMsgUnknownPlantTypeError = "Unknown plant type"

	ErrMsgNotEnoughMoneyError = "Not enough coins or gems"
	ErrMsgUnknownItemError    = "Item not found"

	ErrMsgUnknownBoostError = "Boost not found"
	ErrMsgOnCooldownError   = "That boost is on cooldown. Try again later"

	ErrMsgDailyClaimedError = "Daily reward already claimed today"

	ErrMsgNoPremiumSeedsError  = "No premium seeds of that kind left"
	ErrMsgUnknownSeedPackError = "Seed pack not found"
	ErrMsgInvalidQuantityError = "Quantity must be positive"
	ErrMsgCapacityMaxedError   = "Your garden cannot grow any larger"

	ErrMsgInvalidNameError   = "Name must be 1 to 32 characters"
	ErrMsgInvalidBackupError = "Backup document is invalid"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// a player can act on. Unrecognized errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrGardenFull):
		return http.StatusConflict, ErrMsgGardenFullError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrPlantNotReady):
		return http.StatusConflict, ErrMsgPlantNotReadyError
	case errors.Is(err, domain.ErrUnknownPlantType):
		return http.StatusBadRequest, ErrMsgUnknownPlantTypeError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusNotFound, ErrMsgUnknownItemError
	case errors.Is(err, domain.ErrUnknownBoost):
		return http.StatusNotFound, ErrMsgUnknownBoostError
	case errors.Is(err, domain.ErrBoostOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrDailyRewardClaimed):
		return http.StatusConflict, ErrMsgDailyClaimedError
	case errors.Is(err, domain.ErrNoPremiumSeeds):
		return http.StatusConflict, ErrMsgNoPremiumSeedsError
	case errors.Is(err, domain.ErrUnknownSeedPack):
		return http.StatusNotFound, ErrMsgUnknownSeedPackError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrCapacityMaxedOut):
		return http.StatusConflict, ErrMsgCapacityMaxedError
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest, ErrMsgInvalidNameError
	case errors.Is(err, domain.ErrInvalidBackup):
		return http.StatusBadRequest, ErrMsgInvalidBackupError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed command and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgCommandFailed, "command", opName, "error", err)
	} else {
		log.Info(LogMsgCommandFailed, "command", opName, "status", status, "reason", err.Error())
	}
	respondError(w, status, msg)
}
