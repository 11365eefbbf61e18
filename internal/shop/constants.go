package shop

import "time"

// Non-boost item identifiers
const (
	ItemExtraField = "extra_field"
	ItemPremium30d = "premium_30d"
)

const (
	// SeedPackSize is the number of premium seeds in one pack
	SeedPackSize = 5

	// PremiumDuration is how long one premium purchase lasts
	PremiumDuration = 30 * 24 * time.Hour
)

// Log messages
const (
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgPurchaseRejected  = "Purchase rejected"
)
