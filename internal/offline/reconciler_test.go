package offline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/growth"
)

var lastSeen = time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)

func newFixture() (*Reconciler, *domain.Player, *domain.Garden) {
	p := domain.NewPlayer("p1", "Tester", lastSeen)
	g := domain.NewGarden(lastSeen)
	g.Plants = []*domain.Plant{
		{ID: "a", Type: domain.PlantTypeFruit, Growth: 10},
		{ID: "b", Type: domain.PlantTypeFlower, Growth: 95},
	}
	return NewReconciler(growth.NewEngine(), time.UTC), p, g
}

func TestReconcile_ShortAbsenceGrowsButPaysNothing(t *testing.T) {
	r, p, g := newFixture()

	report := r.Reconcile(p, g, lastSeen.Add(30*time.Minute))

	assert.Zero(t, report.BonusCoins)
	assert.Equal(t, domain.DefaultPlayerCoins, p.Coins)
	// 1800s * 0.125 = 225 points, both plants capped
	assert.Equal(t, 2, report.PlantsReadied)
	for _, plant := range g.Plants {
		assert.Equal(t, domain.MaxGrowth, plant.Growth)
		assert.True(t, plant.IsReady)
	}
	assert.Equal(t, lastSeen.Add(30*time.Minute), p.LastLoginDate)
}

func TestReconcile_GrowthUsesFlatRate(t *testing.T) {
	r, p, g := newFixture()

	r.Reconcile(p, g, lastSeen.Add(40*time.Second))

	assert.InDelta(t, 15, g.Plants[0].Growth, 1e-9)
	assert.False(t, g.Plants[0].IsReady)
}

func TestReconcile_FreeCaps(t *testing.T) {
	r, p, g := newFixture()
	g.Plants = []*domain.Plant{{ID: "a", Type: domain.PlantTypeFruit}}
	g.Productivity = 1.5

	report := r.Reconcile(p, g, lastSeen.Add(12*time.Hour))

	assert.InDelta(t, (2 * time.Hour).Seconds(), report.GrowthSeconds, 1e-9)
	// capped at 8h: floor(8 * 1.5 * 5) = 60
	assert.Equal(t, 60, report.BonusCoins)
	assert.Equal(t, domain.DefaultPlayerCoins+60, p.Coins)
}

func TestReconcile_PremiumCaps(t *testing.T) {
	r, p, g := newFixture()
	p.IsPremium = true
	expiry := lastSeen.Add(30 * 24 * time.Hour)
	p.PremiumExpiry = &expiry

	report := r.Reconcile(p, g, lastSeen.Add(30*time.Hour))

	assert.InDelta(t, (24 * time.Hour).Seconds(), report.GrowthSeconds, 1e-9)
	assert.Equal(t, 120, report.BonusCoins)
	assert.False(t, report.PremiumLapsed)
}

func TestReconcile_LapsedPremiumUsesFreeCaps(t *testing.T) {
	r, p, g := newFixture()
	p.IsPremium = true
	expiry := lastSeen.Add(time.Hour)
	p.PremiumExpiry = &expiry

	report := r.Reconcile(p, g, lastSeen.Add(30*time.Hour))

	assert.True(t, report.PremiumLapsed)
	assert.False(t, p.IsPremium)
	assert.Nil(t, p.PremiumExpiry)
	assert.Equal(t, 40, report.BonusCoins)
}

func TestReconcile_IncomeFloorsFractionalHours(t *testing.T) {
	r, p, g := newFixture()

	report := r.Reconcile(p, g, lastSeen.Add(90*time.Minute))

	// floor(1.5 * 1 * 5) = 7
	assert.Equal(t, 7, report.BonusCoins)
}

func TestReconcile_IdempotentUnderZeroElapsed(t *testing.T) {
	r, p, g := newFixture()
	now := lastSeen.Add(5 * time.Hour)

	r.Reconcile(p, g, now)
	coins := p.Coins
	growths := []float64{g.Plants[0].Growth, g.Plants[1].Growth}
	streak := p.ConsecutiveLoginDays

	report := r.Reconcile(p, g, now)

	assert.Zero(t, report.BonusCoins)
	assert.Zero(t, report.PlantsReadied)
	assert.Equal(t, coins, p.Coins)
	assert.Equal(t, growths, []float64{g.Plants[0].Growth, g.Plants[1].Growth})
	assert.Equal(t, streak, p.ConsecutiveLoginDays)
}

func TestReconcile_ClockMovedBackwards(t *testing.T) {
	r, p, g := newFixture()

	report := r.Reconcile(p, g, lastSeen.Add(-3*time.Hour))

	assert.Zero(t, report.ElapsedSeconds)
	assert.Zero(t, report.BonusCoins)
	assert.InDelta(t, 10, g.Plants[0].Growth, 1e-9)
}

func TestReconcile_LoginStreak(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		streak int
		want   int
	}{
		{"same day", lastSeen.Add(2 * time.Hour), 3, 3},
		{"next calendar day after 5 hours", lastSeen.Add(5 * time.Hour), 3, 4},
		{"next day after 26 hours", lastSeen.Add(26 * time.Hour), 3, 4},
		{"missed a day", lastSeen.Add(50 * time.Hour), 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, p, g := newFixture()
			p.ConsecutiveLoginDays = tt.streak

			report := r.Reconcile(p, g, tt.now)

			assert.Equal(t, tt.want, p.ConsecutiveLoginDays)
			assert.Equal(t, tt.want, report.ConsecutiveLoginDays)
		})
	}
}

func TestReconcile_DecaysPlantBoosts(t *testing.T) {
	r, p, g := newFixture()
	g.Plants[0].Boosts = []domain.Boost{
		{Type: domain.BoostTypeGrowthSpeed, Multiplier: 5, Duration: 1800, RemainingTime: 1800},
		{Type: domain.BoostTypeExperienceMultiplier, Multiplier: 3, Duration: 7200, RemainingTime: 7200},
	}

	r.Reconcile(p, g, lastSeen.Add(time.Hour))

	require.Len(t, g.Plants[0].Boosts, 1)
	assert.InDelta(t, 3600, g.Plants[0].Boosts[0].RemainingTime, 1e-9)
}
