package domain

// Event type constants published by the engine to its subscribers.
//
// Event types follow the pattern: <entity>.<action> (e.g., "garden.updated")
const (
	// EventTypePlayerUpdated carries a fresh Player snapshot after any player mutation
	EventTypePlayerUpdated = "player.updated"

	// EventTypeGardenUpdated carries a fresh Garden snapshot after planting, harvesting or a tick
	EventTypeGardenUpdated = "garden.updated"

	// EventTypeLeaderboardUpdated carries the canonical ordered entries after a resort
	EventTypeLeaderboardUpdated = "leaderboard.updated"

	// EventTypeLevelUp is published once per harvest that raised the player's level
	EventTypeLevelUp = "player.level_up"

	// EventTypePlantReady is published when a plant crosses the ready threshold
	EventTypePlantReady = "garden.plant_ready"
)

// AllEventTypes lists every event type the engine publishes
var AllEventTypes = []string{
	EventTypePlayerUpdated,
	EventTypeGardenUpdated,
	EventTypeLeaderboardUpdated,
	EventTypeLevelUp,
	EventTypePlantReady,
}

// LevelUpPayload is the payload of EventTypeLevelUp
type LevelUpPayload struct {
	PlayerID   string `json:"player_id"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	BonusCoins int    `json:"bonus_coins"`
}

// PlantReadyPayload is the payload of EventTypePlantReady
type PlantReadyPayload struct {
	PlantID string    `json:"plant_id"`
	Type    PlantType `json:"type"`
}
