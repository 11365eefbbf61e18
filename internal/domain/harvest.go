package domain

// DailyReward is one row of the seven-day login reward table
type DailyReward struct {
	Day   int `json:"day"`
	Coins int `json:"coins"`
	Gems  int `json:"gems,omitempty"`
}

// LevelUp describes a change of player level caused by one experience grant
type LevelUp struct {
	OldLevel   int `json:"old_level"`
	NewLevel   int `json:"new_level"`
	BonusCoins int `json:"bonus_coins"`
}

// Levels returns how many levels were gained
func (l LevelUp) Levels() int {
	return l.NewLevel - l.OldLevel
}

// HarvestResult is returned by a successful harvest
type HarvestResult struct {
	PlantID    string    `json:"plant_id"`
	Type       PlantType `json:"type"`
	Coins      int       `json:"coins"`
	Experience int       `json:"experience"`
	LevelUp    *LevelUp  `json:"level_up,omitempty"`
}

// OfflineReport summarizes what the startup catch-up granted
type OfflineReport struct {
	ElapsedSeconds       float64 `json:"elapsed_seconds"`
	GrowthSeconds        float64 `json:"growth_seconds"`
	PlantsReadied        int     `json:"plants_readied"`
	BonusCoins           int     `json:"bonus_coins"`
	ConsecutiveLoginDays int     `json:"consecutive_login_days"`
	PremiumLapsed        bool    `json:"premium_lapsed"`
}
