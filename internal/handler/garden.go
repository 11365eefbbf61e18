package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/logger"
)

// PlantRequest represents the request to sow a crop
type PlantRequest struct {
	Type string `json:"type" validate:"required,planttype"`
}

// HarvestAllResponse lists the plants collected by one harvest-all
type HarvestAllResponse struct {
	Harvested []domain.HarvestResult `json:"harvested"`
	Coins     int                    `json:"coins"`
}

// CapacityResponse reports the garden's plot count
type CapacityResponse struct {
	MaxPlants int `json:"max_plants"`
}

// HandleGetGarden returns the garden
// @Summary Get garden
// @Tags garden
// @Produce json
// @Success 200 {object} domain.Garden
// @Router /api/v1/garden [get]
func (h *GardenHandler) HandleGetGarden(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Garden())
}

// HandlePlant sows a new crop for its coin cost
// @Summary Plant a crop
// @Description Plants a flower, vegetable, fruit or herb. Active boosts carry over to the new plant.
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant type"
// @Success 201 {object} domain.Plant
// @Failure 400 {object} ErrorResponse "Invalid plant type"
// @Failure 402 {object} ErrorResponse "Not enough coins"
// @Failure 409 {object} ErrorResponse "Garden full"
// @Router /api/v1/garden/plant [post]
func (h *GardenHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	plantType, err := domain.ParsePlantType(req.Type)
	if err != nil {
		respondServiceError(w, r, "plant", err)
		return
	}

	plant, err := h.svc.Plant(r.Context(), plantType)
	if err != nil {
		respondServiceError(w, r, "plant", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCommandSucceeded, "command", "plant", "plant_id", plant.ID, "type", plant.Type)
	respondJSON(w, http.StatusCreated, plant)
}

// HandleHarvest collects one ready plant
// @Summary Harvest a plant
// @Tags garden
// @Produce json
// @Param plantID path string true "Plant ID"
// @Success 200 {object} domain.HarvestResult
// @Failure 404 {object} ErrorResponse "Plant not found"
// @Failure 409 {object} ErrorResponse "Plant not ready"
// @Router /api/v1/garden/plants/{plantID}/harvest [post]
func (h *GardenHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	plantID := chi.URLParam(r, "plantID")

	res, err := h.svc.Harvest(r.Context(), plantID)
	if err != nil {
		respondServiceError(w, r, "harvest", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCommandSucceeded, "command", "harvest", "plant_id", res.PlantID, "coins", res.Coins)
	respondJSON(w, http.StatusOK, res)
}

// HandleHarvestAll collects every ready plant
// @Summary Harvest all ready plants
// @Tags garden
// @Produce json
// @Success 200 {object} HarvestAllResponse
// @Router /api/v1/garden/harvest-all [post]
func (h *GardenHandler) HandleHarvestAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.HarvestAllReady(r.Context())
	if err != nil {
		respondServiceError(w, r, "harvest_all", err)
		return
	}

	resp := HarvestAllResponse{Harvested: results}
	if resp.Harvested == nil {
		resp.Harvested = []domain.HarvestResult{}
	}
	for _, res := range results {
		resp.Coins += res.Coins
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleAddCapacity adds one plot to the garden without charging for it
// @Summary Add garden capacity
// @Tags garden
// @Produce json
// @Success 200 {object} CapacityResponse
// @Failure 409 {object} ErrorResponse "Capacity at maximum"
// @Router /api/v1/garden/capacity [post]
func (h *GardenHandler) HandleAddCapacity(w http.ResponseWriter, r *http.Request) {
	capacity, err := h.svc.AddGardenCapacity(r.Context())
	if err != nil {
		respondServiceError(w, r, "add_capacity", err)
		return
	}
	respondJSON(w, http.StatusOK, CapacityResponse{MaxPlants: capacity})
}
