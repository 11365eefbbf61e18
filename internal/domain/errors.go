package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Garden errors
	ErrMsgGardenFull       = "garden is full"
	ErrMsgPlantNotFound    = "plant not found"
	ErrMsgPlantNotReady    = "plant is not ready"
	ErrMsgUnknownPlantType = "unknown plant type"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUnknownItem       = "unknown shop item"

	// Boost errors
	ErrMsgUnknownBoost    = "unknown boost"
	ErrMsgBoostOnCooldown = "boost on cooldown"

	// Reward errors
	ErrMsgDailyRewardClaimed = "daily reward already claimed"

	// Premium seed errors
	ErrMsgNoPremiumSeeds   = "no premium seeds left"
	ErrMsgUnknownSeedPack  = "unknown seed pack"
	ErrMsgInvalidQuantity  = "quantity must be positive"
	ErrMsgCapacityMaxedOut = "garden capacity is at its maximum"

	// Profile errors
	ErrMsgInvalidName   = "invalid player name"
	ErrMsgInvalidBackup = "invalid backup document"

	// Storage errors
	ErrMsgStorageError = "storage error"
)

// Common domain errors
// Commands return these for expected rule failures; callers match them with errors.Is.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Garden errors
	ErrGardenFull       = errors.New(ErrMsgGardenFull)
	ErrPlantNotFound    = errors.New(ErrMsgPlantNotFound)
	ErrPlantNotReady    = errors.New(ErrMsgPlantNotReady)
	ErrUnknownPlantType = errors.New(ErrMsgUnknownPlantType)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUnknownItem       = errors.New(ErrMsgUnknownItem)

	// Boost errors
	ErrUnknownBoost    = errors.New(ErrMsgUnknownBoost)
	ErrBoostOnCooldown = errors.New(ErrMsgBoostOnCooldown)

	// Reward errors
	ErrDailyRewardClaimed = errors.New(ErrMsgDailyRewardClaimed)

	// Premium seed errors
	ErrNoPremiumSeeds   = errors.New(ErrMsgNoPremiumSeeds)
	ErrUnknownSeedPack  = errors.New(ErrMsgUnknownSeedPack)
	ErrInvalidQuantity  = errors.New(ErrMsgInvalidQuantity)
	ErrCapacityMaxedOut = errors.New(ErrMsgCapacityMaxedOut)

	// Profile errors
	ErrInvalidName   = errors.New(ErrMsgInvalidName)
	ErrInvalidBackup = errors.New(ErrMsgInvalidBackup)

	// Storage errors
	ErrStorage = errors.New(ErrMsgStorageError)
)
