package reward

// Leveling constants
const (
	// ExperiencePerLevel scales the experience needed to leave a level: level * ExperiencePerLevel
	ExperiencePerLevel = 100

	// LevelUpBonusPerLevel is paid in coins per newly reached level: newLevel * LevelUpBonusPerLevel
	LevelUpBonusPerLevel = 50
)

// Daily reward constants
const (
	// MaxDailyRewardDay caps the streak index into the daily reward table
	MaxDailyRewardDay = 7
)

// Base harvest rewards per plant type
const (
	FlowerCoins         = 20
	FlowerExperience    = 5
	VegetableCoins      = 30
	VegetableExperience = 8
	FruitCoins          = 50
	FruitExperience     = 12
	HerbCoins           = 40
	HerbExperience      = 10
)
