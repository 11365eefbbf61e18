package handler

import (
	"net/http"

	"github.com/osse101/DailyGarden_Go/internal/logger"
)

// RenameRequest represents the request to change the display name
type RenameRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

// RenameResponse returns the normalized name
type RenameResponse struct {
	Name string `json:"name"`
}

// HandleGetState returns everything a client renders at once
// @Summary Get full state
// @Tags player
// @Produce json
// @Success 200 {object} engine.Status
// @Router /api/v1/state [get]
func (h *GardenHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Status())
}

// HandleGetPlayer returns the player
// @Summary Get player
// @Tags player
// @Produce json
// @Success 200 {object} domain.Player
// @Router /api/v1/player [get]
func (h *GardenHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Player())
}

// HandleRename changes the player's display name
// @Summary Rename player
// @Tags player
// @Accept json
// @Produce json
// @Param request body RenameRequest true "New name"
// @Success 200 {object} RenameResponse
// @Failure 400 {object} ErrorResponse "Invalid name"
// @Router /api/v1/player/name [put]
func (h *GardenHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rename"); err != nil {
		return
	}

	name, err := h.svc.RenamePlayer(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, "rename", err)
		return
	}
	respondJSON(w, http.StatusOK, RenameResponse{Name: name})
}

// HandleClaimDaily claims today's login reward
// @Summary Claim daily reward
// @Tags player
// @Produce json
// @Success 200 {object} domain.DailyReward
// @Failure 409 {object} ErrorResponse "Already claimed today"
// @Router /api/v1/daily/claim [post]
func (h *GardenHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	reward, err := h.svc.ClaimDailyReward(r.Context())
	if err != nil {
		respondServiceError(w, r, "claim_daily", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCommandSucceeded, "command", "claim_daily", "day", reward.Day, "coins", reward.Coins, "gems", reward.Gems)
	respondJSON(w, http.StatusOK, reward)
}
