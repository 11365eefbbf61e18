package reward

import (
	"time"

	"github.com/osse101/DailyGarden_Go/internal/clock"
	"github.com/osse101/DailyGarden_Go/internal/domain"
)

var dailyRewards = [MaxDailyRewardDay]domain.DailyReward{
	{Day: 1, Coins: 50},
	{Day: 2, Coins: 75},
	{Day: 3, Coins: 100, Gems: 1},
	{Day: 4, Coins: 150},
	{Day: 5, Coins: 200, Gems: 2},
	{Day: 6, Coins: 300},
	{Day: 7, Coins: 500, Gems: 5},
}

// DailyRewardTable returns a copy of the seven-day reward table
func DailyRewardTable() []domain.DailyReward {
	out := make([]domain.DailyReward, len(dailyRewards))
	copy(out, dailyRewards[:])
	return out
}

// DailyRewardFor returns the reward for a login streak; streaks past seven days keep day seven's reward
func DailyRewardFor(streak int) domain.DailyReward {
	day := streak
	if day < 1 {
		day = 1
	}
	if day > MaxDailyRewardDay {
		day = MaxDailyRewardDay
	}
	return dailyRewards[day-1]
}

// CanClaimDaily reports whether the player has not yet claimed today's reward
func CanClaimDaily(p *domain.Player, now time.Time, loc *time.Location) bool {
	if p.LastDailyRewardAt == nil {
		return true
	}
	return clock.DaysBetween(*p.LastDailyRewardAt, now, loc) > 0
}

// ClaimDaily credits today's reward and stamps the claim time
func ClaimDaily(p *domain.Player, now time.Time, loc *time.Location) (domain.DailyReward, error) {
	if !CanClaimDaily(p, now, loc) {
		return domain.DailyReward{}, domain.ErrDailyRewardClaimed
	}
	r := DailyRewardFor(p.ConsecutiveLoginDays)
	p.Coins += r.Coins
	p.Gems += r.Gems
	claimed := now
	p.LastDailyRewardAt = &claimed
	return r, nil
}
