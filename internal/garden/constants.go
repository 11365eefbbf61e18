package garden

// Seed costs in coins per plant type
const (
	FlowerSeedCost    = 10
	VegetableSeedCost = 15
	FruitSeedCost     = 25
	HerbSeedCost      = 20
)

// Log messages
const (
	LogMsgPlanted        = "Seed planted"
	LogMsgHarvested      = "Plant harvested"
	LogMsgPlantReady     = "Plant ready"
	LogMsgCapacityRaised = "Garden capacity raised"
)
