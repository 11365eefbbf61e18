package domain

// BoostType is the stat a boost multiplies
type BoostType string

const (
	BoostTypeGrowthSpeed          BoostType = "growth_speed"
	BoostTypeCoinMultiplier       BoostType = "coin_multiplier"
	BoostTypeExperienceMultiplier BoostType = "experience_multiplier"
)

// Boost is a per-plant copy of a temporary multiplier.
// Duration and RemainingTime are in seconds.
type Boost struct {
	Type          BoostType `json:"type"`
	Multiplier    float64   `json:"multiplier"`
	Duration      float64   `json:"duration"`
	RemainingTime float64   `json:"remaining_time"`
}
