package domain

import (
	"fmt"
	"time"
)

// MaxLeaderboardEntries bounds the canonical leaderboard
const MaxLeaderboardEntries = 50

// LeaderboardEntry is one ranked row. Rank is always derived from sort order.
type LeaderboardEntry struct {
	PlayerID     string     `json:"player_id"`
	PlayerName   string     `json:"player_name"`
	Score        int        `json:"score"`
	Level        int        `json:"level"`
	Rank         int        `json:"rank"`
	IsDemo       bool       `json:"is_demo,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// LeaderboardCategory selects an alternate ordering of the same entries
type LeaderboardCategory string

const (
	CategoryLevel LeaderboardCategory = "level"
	CategoryScore LeaderboardCategory = "score"
	CategoryDaily LeaderboardCategory = "daily"
)

// ParseLeaderboardCategory converts user input into a category, defaulting to score
func ParseLeaderboardCategory(s string) (LeaderboardCategory, error) {
	switch LeaderboardCategory(s) {
	case "", CategoryScore:
		return CategoryScore, nil
	case CategoryLevel, CategoryDaily:
		return LeaderboardCategory(s), nil
	}
	return "", fmt.Errorf("unknown leaderboard category %q", s)
}
