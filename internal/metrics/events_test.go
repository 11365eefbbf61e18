package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

func TestEventMetricsCollector(t *testing.T) {
	c := NewEventMetricsCollector()
	now := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)

	p := domain.NewPlayer("p", "", now)
	p.Level = 7
	c.HandleEvent(domain.EventTypePlayerUpdated, p)
	assert.Equal(t, 7.0, testutil.ToFloat64(PlayerLevel))

	g := domain.NewGarden(now)
	g.Plants = []*domain.Plant{
		{ID: "a", Type: domain.PlantTypeFlower, IsReady: true, Growth: domain.MaxGrowth},
		{ID: "b", Type: domain.PlantTypeHerb},
		{ID: "c", Type: domain.PlantTypeFruit},
	}
	c.HandleEvent(domain.EventTypeGardenUpdated, g)
	assert.Equal(t, 2.0, testutil.ToFloat64(PlantsGrowing))
	assert.Equal(t, 1.0, testutil.ToFloat64(PlantsReady))

	c.HandleEvent(domain.EventTypeLeaderboardUpdated, make([]domain.LeaderboardEntry, 16))
	assert.Equal(t, 16.0, testutil.ToFloat64(LeaderboardEntries))

	before := testutil.ToFloat64(LevelUps)
	c.HandleEvent(domain.EventTypeLevelUp, domain.LevelUpPayload{OldLevel: 1, NewLevel: 3})
	assert.Equal(t, before+2, testutil.ToFloat64(LevelUps))

	// wrong payload types are ignored
	c.HandleEvent(domain.EventTypePlayerUpdated, "nope")
	assert.Equal(t, 7.0, testutil.ToFloat64(PlayerLevel))
}
