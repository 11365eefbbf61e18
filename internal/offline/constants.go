package offline

import "time"

// Growth catch-up caps
const (
	FreeGrowthCap    = 2 * time.Hour
	PremiumGrowthCap = 24 * time.Hour
)

// Passive income
const (
	// MinIncomeHours must be exceeded before any passive coins are paid
	MinIncomeHours = 1.0

	FreeIncomeCapHours    = 8.0
	PremiumIncomeCapHours = 24.0

	// CoinsPerProductiveHour is multiplied by capped hours and garden productivity
	CoinsPerProductiveHour = 5.0
)
