package domain

import "time"

// Player defaults for a fresh installation
const (
	DefaultPlayerName   = "Player"
	DefaultPlayerCoins  = 100
	DefaultPlayerGems   = 10
	DefaultPlayerLevel  = 1
	DefaultLoginStreak  = 1
	MaxPlayerNameLength = 32
)

// Player is the single local player of the garden
type Player struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Coins                int        `json:"coins"`
	Gems                 int        `json:"gems"`
	Level                int        `json:"level"`
	Experience           int        `json:"experience"`
	LastLoginDate        time.Time  `json:"last_login_date"`
	ConsecutiveLoginDays int        `json:"consecutive_login_days"`
	IsPremium            bool       `json:"is_premium"`
	PremiumExpiry        *time.Time `json:"premium_expiry,omitempty"`
	LastDailyRewardAt    *time.Time `json:"last_daily_reward_at,omitempty"`
}

// NewPlayer returns a player with starting balances
func NewPlayer(id, name string, now time.Time) *Player {
	if name == "" {
		name = DefaultPlayerName
	}
	return &Player{
		ID:                   id,
		Name:                 name,
		Coins:                DefaultPlayerCoins,
		Gems:                 DefaultPlayerGems,
		Level:                DefaultPlayerLevel,
		LastLoginDate:        now,
		ConsecutiveLoginDays: DefaultLoginStreak,
	}
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	if p.PremiumExpiry != nil {
		t := *p.PremiumExpiry
		c.PremiumExpiry = &t
	}
	if p.LastDailyRewardAt != nil {
		t := *p.LastDailyRewardAt
		c.LastDailyRewardAt = &t
	}
	return &c
}

// PremiumActive reports whether premium applies at now
func (p *Player) PremiumActive(now time.Time) bool {
	if !p.IsPremium {
		return false
	}
	return p.PremiumExpiry == nil || p.PremiumExpiry.After(now)
}
