package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// LeaderboardResponse is one ranked view
type LeaderboardResponse struct {
	Category domain.LeaderboardCategory `json:"category"`
	Entries  []domain.LeaderboardEntry  `json:"entries"`
}

// HandleGetLeaderboard returns the leaderboard sorted for a category
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Param category query string false "score, level or daily" default(score)
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse "Invalid category"
// @Router /api/v1/leaderboard [get]
func (h *GardenHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	raw := GetOptionalQueryParam(r, "category", string(domain.CategoryScore))
	category, err := domain.ParseLeaderboardCategory(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidCategory, raw))
		return
	}

	respondJSON(w, http.StatusOK, LeaderboardResponse{
		Category: category,
		Entries:  h.svc.LeaderboardView(category),
	})
}
