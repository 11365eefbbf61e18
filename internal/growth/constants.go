package growth

import "time"

// Unboosted time from seed to ready, per plant type
const (
	FlowerGrowDuration    = 600 * time.Second
	VegetableGrowDuration = 800 * time.Second
	FruitGrowDuration     = 1200 * time.Second
	HerbGrowDuration      = 1000 * time.Second
)

// OfflineRate is the growth per second applied during offline catch-up,
// regardless of plant type.
const OfflineRate = 0.125

// readyTolerance absorbs float accumulation from many small steps
const readyTolerance = 1e-6
