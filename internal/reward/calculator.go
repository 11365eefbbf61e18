package reward

import (
	"math"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// Calculator converts harvests into coins and experience and applies level-ups.
// It holds no state.
type Calculator struct{}

// NewCalculator creates a new reward calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// BaseReward returns the unboosted coins and experience for harvesting a plant type
func (c *Calculator) BaseReward(t domain.PlantType) (coins, experience int) {
	switch t {
	case domain.PlantTypeFlower:
		return FlowerCoins, FlowerExperience
	case domain.PlantTypeVegetable:
		return VegetableCoins, VegetableExperience
	case domain.PlantTypeFruit:
		return FruitCoins, FruitExperience
	case domain.PlantTypeHerb:
		return HerbCoins, HerbExperience
	}
	return 0, 0
}

// Harvest returns the boosted reward for a plant, floored to whole units
func (c *Calculator) Harvest(p *domain.Plant) (coins, experience int) {
	baseCoins, baseXP := c.BaseReward(p.Type)
	coinMult := boost.Product(p.Boosts, domain.BoostTypeCoinMultiplier)
	xpMult := boost.Product(p.Boosts, domain.BoostTypeExperienceMultiplier)
	coins = int(math.Floor(float64(baseCoins) * coinMult))
	experience = int(math.Floor(float64(baseXP) * xpMult))
	return coins, experience
}

// Threshold returns the experience needed to advance past level
func (c *Calculator) Threshold(level int) int {
	return level * ExperiencePerLevel
}

// GrantExperience adds experience to the player and performs every level-up it
// pays for, crediting the per-level coin bonus. It returns nil when the level
// did not change.
func (c *Calculator) GrantExperience(p *domain.Player, experience int) *domain.LevelUp {
	if experience > 0 {
		p.Experience += experience
	}
	if p.Level < 1 {
		p.Level = 1
	}

	oldLevel := p.Level
	bonus := 0
	for threshold := c.Threshold(p.Level); p.Experience >= threshold; threshold = c.Threshold(p.Level) {
		p.Experience -= threshold
		p.Level++
		bonus += p.Level * LevelUpBonusPerLevel
	}
	if p.Level == oldLevel {
		return nil
	}

	p.Coins += bonus
	return &domain.LevelUp{OldLevel: oldLevel, NewLevel: p.Level, BonusCoins: bonus}
}
