package domain

import "fmt"

// Boost catalog identifiers
const (
	BoostIDGrowth     = "growth_boost_1h"
	BoostIDCoin       = "coin_boost_30min"
	BoostIDMega       = "mega_boost_15min"
	BoostIDExperience = "exp_boost_2h"
)

// Premium seed pack identifiers
const (
	SeedPackRareFlowers  = "rare_flowers"
	SeedPackExoticFruits = "exotic_fruits"
	SeedPackMagicHerbs   = "magic_herbs"
)

// AllSeedPacks lists every premium seed pack
var AllSeedPacks = []string{
	SeedPackRareFlowers,
	SeedPackExoticFruits,
	SeedPackMagicHerbs,
}

// SeedPackPlantType returns the crop grown from a premium seed pack
func SeedPackPlantType(pack string) (PlantType, error) {
	switch pack {
	case SeedPackRareFlowers:
		return PlantTypeFlower, nil
	case SeedPackExoticFruits:
		return PlantTypeFruit, nil
	case SeedPackMagicHerbs:
		return PlantTypeHerb, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeedPack, pack)
}
