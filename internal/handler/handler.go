// Package handler exposes the garden engine's commands and read models over HTTP.
package handler

import (
	"context"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/engine"
	"github.com/osse101/DailyGarden_Go/internal/shop"
)

// GardenService is the engine surface the handlers call
type GardenService interface {
	Plant(ctx context.Context, t domain.PlantType) (*domain.Plant, error)
	Harvest(ctx context.Context, plantID string) (domain.HarvestResult, error)
	HarvestAllReady(ctx context.Context) ([]domain.HarvestResult, error)
	AddGardenCapacity(ctx context.Context) (int, error)

	ClaimDailyReward(ctx context.Context) (domain.DailyReward, error)
	ApplyPurchasedBoost(ctx context.Context, id string) (boost.Definition, error)
	Purchase(ctx context.Context, itemID string) (shop.Item, error)

	AddPremiumSeeds(ctx context.Context, pack string, qty int) (int, error)
	UsePremiumSeed(ctx context.Context, pack string) (int, error)
	PlantPremiumSeed(ctx context.Context, pack string) (*domain.Plant, error)

	RenamePlayer(ctx context.Context, name string) (string, error)
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) error
	Reset(ctx context.Context) error

	Status() engine.Status
	Player() *domain.Player
	Garden() *domain.Garden
	LeaderboardView(category domain.LeaderboardCategory) []domain.LeaderboardEntry
}

var _ GardenService = (*engine.Engine)(nil)

// GardenHandler serves the player's command surface
type GardenHandler struct {
	svc GardenService
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(svc GardenService) *GardenHandler {
	return &GardenHandler{svc: svc}
}
