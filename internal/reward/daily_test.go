package reward

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

func TestDailyRewardFor(t *testing.T) {
	assert.Equal(t, domain.DailyReward{Day: 1, Coins: 50}, DailyRewardFor(1))
	assert.Equal(t, domain.DailyReward{Day: 3, Coins: 100, Gems: 1}, DailyRewardFor(3))
	assert.Equal(t, domain.DailyReward{Day: 7, Coins: 500, Gems: 5}, DailyRewardFor(7))
	assert.Equal(t, DailyRewardFor(7), DailyRewardFor(45))
	assert.Equal(t, DailyRewardFor(1), DailyRewardFor(0))
}

func TestDailyRewardTable_IsCopy(t *testing.T) {
	table := DailyRewardTable()
	require.Len(t, table, MaxDailyRewardDay)
	table[0].Coins = 1
	assert.Equal(t, 50, DailyRewardFor(1).Coins)
}

func TestClaimDaily(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, loc)
	p := &domain.Player{Coins: 0, Gems: 0, ConsecutiveLoginDays: 5}

	r, err := ClaimDaily(p, now, loc)
	require.NoError(t, err)
	assert.Equal(t, 200, r.Coins)
	assert.Equal(t, 200, p.Coins)
	assert.Equal(t, 2, p.Gems)
	require.NotNil(t, p.LastDailyRewardAt)

	_, err = ClaimDaily(p, now.Add(10*time.Hour), loc)
	assert.ErrorIs(t, err, domain.ErrDailyRewardClaimed)
	assert.Equal(t, 200, p.Coins)

	assert.True(t, CanClaimDaily(p, now.Add(15*time.Hour), loc), "next calendar day")
}
