package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/engine"
	"github.com/osse101/DailyGarden_Go/internal/shop"
)

// MockGardenService mocks GardenService
type MockGardenService struct {
	mock.Mock
}

var _ GardenService = (*MockGardenService)(nil)

func (m *MockGardenService) Plant(ctx context.Context, t domain.PlantType) (*domain.Plant, error) {
	args := m.Called(ctx, t)
	p, _ := args.Get(0).(*domain.Plant)
	return p, args.Error(1)
}

func (m *MockGardenService) Harvest(ctx context.Context, plantID string) (domain.HarvestResult, error) {
	args := m.Called(ctx, plantID)
	return args.Get(0).(domain.HarvestResult), args.Error(1)
}

func (m *MockGardenService) HarvestAllReady(ctx context.Context) ([]domain.HarvestResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]domain.HarvestResult)
	return res, args.Error(1)
}

func (m *MockGardenService) AddGardenCapacity(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenService) ClaimDailyReward(ctx context.Context) (domain.DailyReward, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DailyReward), args.Error(1)
}

func (m *MockGardenService) ApplyPurchasedBoost(ctx context.Context, id string) (boost.Definition, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(boost.Definition), args.Error(1)
}

func (m *MockGardenService) Purchase(ctx context.Context, itemID string) (shop.Item, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(shop.Item), args.Error(1)
}

func (m *MockGardenService) AddPremiumSeeds(ctx context.Context, pack string, qty int) (int, error) {
	args := m.Called(ctx, pack, qty)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenService) UsePremiumSeed(ctx context.Context, pack string) (int, error) {
	args := m.Called(ctx, pack)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenService) PlantPremiumSeed(ctx context.Context, pack string) (*domain.Plant, error) {
	args := m.Called(ctx, pack)
	p, _ := args.Get(0).(*domain.Plant)
	return p, args.Error(1)
}

func (m *MockGardenService) RenamePlayer(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGardenService) Export(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockGardenService) Import(ctx context.Context, data []byte) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockGardenService) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGardenService) Status() engine.Status {
	return m.Called().Get(0).(engine.Status)
}

func (m *MockGardenService) Player() *domain.Player {
	p, _ := m.Called().Get(0).(*domain.Player)
	return p
}

func (m *MockGardenService) Garden() *domain.Garden {
	g, _ := m.Called().Get(0).(*domain.Garden)
	return g
}

func (m *MockGardenService) LeaderboardView(category domain.LeaderboardCategory) []domain.LeaderboardEntry {
	e, _ := m.Called(category).Get(0).([]domain.LeaderboardEntry)
	return e
}
