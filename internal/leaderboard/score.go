package leaderboard

import "github.com/osse101/DailyGarden_Go/internal/domain"

// Score computes a player's leaderboard score:
// (level-1)*100 + floor(coins/10) + gems*10 + (loginDays-1)*20
func Score(p *domain.Player) int {
	return ScoreOf(p.Level, p.Coins, p.Gems, p.ConsecutiveLoginDays)
}

// ScoreOf computes a score from raw stats
func ScoreOf(level, coins, gems, loginDays int) int {
	if level < 1 {
		level = 1
	}
	if loginDays < 1 {
		loginDays = 1
	}
	if coins < 0 {
		coins = 0
	}
	if gems < 0 {
		gems = 0
	}
	return (level-1)*PointsPerLevel + coins/CoinsPerPoint + gems*PointsPerGem + (loginDays-1)*PointsPerLoginDay
}

// dailyComposite ranks the "daily" category view
func dailyComposite(e domain.LeaderboardEntry) float64 {
	return float64(e.Level)*DailyLevelWeight + float64(e.Score)/DailyScoreDivisor
}
