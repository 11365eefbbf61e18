package leaderboard

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// GenerateRoster builds the synthetic competitors shown on first launch.
// The first of n names gets base level n and each following name one less,
// so the last name always starts at level 1.
func GenerateRoster(names []string, rng *rand.Rand, now time.Time) []domain.LeaderboardEntry {
	if len(names) == 0 {
		names = DefaultRosterNames
	}

	entries := make([]domain.LeaderboardEntry, 0, len(names))
	for i, name := range names {
		baseLevel := len(names) - i
		variation := rng.Float64()*2*RosterLevelVariation - RosterLevelVariation
		level := max(1, int(math.Round(float64(baseLevel)*(1+variation))))

		coins := int(rng.Float64()*rosterCoinsPerLevel*float64(level)) + rosterMinCoins
		gems := rng.IntN(rosterMaxGemBonus) + level
		loginDays := rng.IntN(rosterMaxLoginDays) + 1

		activity := now.Add(-time.Duration(rng.Float64() * float64(rosterActivityWindow)))
		entries = append(entries, domain.LeaderboardEntry{
			PlayerID:     fmt.Sprintf("%s%d_%s", DemoIDPrefix, i, uuid.NewString()),
			PlayerName:   name,
			Score:        ScoreOf(level, coins, gems, loginDays),
			Level:        level,
			IsDemo:       true,
			LastActivity: &activity,
		})
	}
	return entries
}
