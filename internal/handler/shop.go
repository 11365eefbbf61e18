package handler

import (
	"net/http"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/shop"
)

// ApplyBoostRequest applies a boost that was paid for elsewhere
type ApplyBoostRequest struct {
	BoostID string `json:"boost_id" validate:"required,max=64"`
}

// PurchaseRequest buys one catalog item
type PurchaseRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// AddSeedsRequest credits premium seeds
type AddSeedsRequest struct {
	Pack     string `json:"pack" validate:"required,seedpack"`
	Quantity int    `json:"quantity" validate:"gt=0,max=1000"`
}

// SeedRequest names one premium seed pack
type SeedRequest struct {
	Pack string `json:"pack" validate:"required,seedpack"`
}

// SeedCountResponse reports the seeds left in a pack
type SeedCountResponse struct {
	Pack      string `json:"pack"`
	Remaining int    `json:"remaining"`
}

// ShopResponse lists the catalog and the boost definitions behind it
type ShopResponse struct {
	Items  []shop.Item        `json:"items"`
	Boosts []boost.Definition `json:"boosts"`
}

// HandleGetShop lists purchasable items
// @Summary List shop items
// @Tags shop
// @Produce json
// @Success 200 {object} ShopResponse
// @Router /api/v1/shop/items [get]
func (h *GardenHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ShopResponse{
		Items:  shop.Items(),
		Boosts: boost.Definitions(),
	})
}

// HandlePurchase buys an item, debiting its price
// @Summary Purchase an item
// @Description Boosts go on a 30 minute cooldown after purchase.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Item"
// @Success 200 {object} shop.Item
// @Failure 402 {object} ErrorResponse "Not enough coins or gems"
// @Failure 404 {object} ErrorResponse "Unknown item"
// @Failure 429 {object} ErrorResponse "Boost on cooldown"
// @Router /api/v1/shop/purchase [post]
func (h *GardenHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	item, err := h.svc.Purchase(r.Context(), req.ItemID)
	if err != nil {
		respondServiceError(w, r, "purchase", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCommandSucceeded, "command", "purchase", "item", item.ID, "price", item.Price, "currency", item.Currency)
	respondJSON(w, http.StatusOK, item)
}

// HandleApplyBoost activates a boost without charging for it
// @Summary Apply a purchased boost
// @Tags boosts
// @Accept json
// @Produce json
// @Param request body ApplyBoostRequest true "Boost"
// @Success 200 {object} boost.Definition
// @Failure 404 {object} ErrorResponse "Unknown boost"
// @Router /api/v1/boosts/apply [post]
func (h *GardenHandler) HandleApplyBoost(w http.ResponseWriter, r *http.Request) {
	var req ApplyBoostRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply boost"); err != nil {
		return
	}

	def, err := h.svc.ApplyPurchasedBoost(r.Context(), req.BoostID)
	if err != nil {
		respondServiceError(w, r, "apply_boost", err)
		return
	}
	respondJSON(w, http.StatusOK, def)
}

// HandleAddSeeds credits premium seeds
// @Summary Add premium seeds
// @Tags seeds
// @Accept json
// @Produce json
// @Param request body AddSeedsRequest true "Seeds"
// @Success 200 {object} SeedCountResponse
// @Router /api/v1/seeds/add [post]
func (h *GardenHandler) HandleAddSeeds(w http.ResponseWriter, r *http.Request) {
	var req AddSeedsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add seeds"); err != nil {
		return
	}

	count, err := h.svc.AddPremiumSeeds(r.Context(), req.Pack, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "add_seeds", err)
		return
	}
	respondJSON(w, http.StatusOK, SeedCountResponse{Pack: req.Pack, Remaining: count})
}

// HandleUseSeed consumes one premium seed
// @Summary Use a premium seed
// @Tags seeds
// @Accept json
// @Produce json
// @Param request body SeedRequest true "Seed pack"
// @Success 200 {object} SeedCountResponse
// @Failure 409 {object} ErrorResponse "No seeds left"
// @Router /api/v1/seeds/use [post]
func (h *GardenHandler) HandleUseSeed(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Use seed"); err != nil {
		return
	}

	count, err := h.svc.UsePremiumSeed(r.Context(), req.Pack)
	if err != nil {
		respondServiceError(w, r, "use_seed", err)
		return
	}
	respondJSON(w, http.StatusOK, SeedCountResponse{Pack: req.Pack, Remaining: count})
}

// HandlePlantSeed plants a premium seed for free
// @Summary Plant a premium seed
// @Tags seeds
// @Accept json
// @Produce json
// @Param request body SeedRequest true "Seed pack"
// @Success 201 {object} domain.Plant
// @Failure 409 {object} ErrorResponse "No seeds left or garden full"
// @Router /api/v1/seeds/plant [post]
func (h *GardenHandler) HandlePlantSeed(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
		return
	}

	plant, err := h.svc.PlantPremiumSeed(r.Context(), req.Pack)
	if err != nil {
		respondServiceError(w, r, "plant_seed", err)
		return
	}
	respondJSON(w, http.StatusCreated, plant)
}
