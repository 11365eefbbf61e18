package engine

import "time"

// Scheduling defaults
const (
	DefaultTickInterval       = time.Second
	DefaultSimulationInterval = 30 * time.Second
	DefaultSaveProbability    = 0.1

	// MaxTickStep bounds the growth applied by one live tick. A process that was
	// suspended longer than this does not get the missed time at boosted rates.
	MaxTickStep = 10 * time.Second
)

// Worker pool sizing
const (
	tickWorkers   = 1
	tickQueueSize = 4
	saveWorkers   = 1
	saveQueueSize = 16
)

// Job names
const (
	JobGrowthTick     = "growth_tick"
	JobSimulationTick = "simulation_tick"
)

// Log messages
const (
	LogMsgStateLoaded       = "Garden state loaded"
	LogMsgStateLoadFailed   = "Failed to read saved state, using defaults"
	LogMsgStateCorrupt      = "Saved state is corrupt, using defaults"
	LogMsgEncodeFailed      = "Failed to encode state"
	LogMsgOfflineReconciled = "Offline progress applied"
	LogMsgRosterSeeded      = "Demo competitors created"
	LogMsgEngineStarted     = "Engine started"
	LogMsgEngineStopped     = "Engine stopped"
	LogMsgCommandRejected   = "Command rejected"
	LogMsgPlanted           = "Seed planted"
	LogMsgHarvested         = "Plant harvested"
	LogMsgLevelUp           = "Player leveled up"
	LogMsgPlantReady        = "Plant ready"
	LogMsgBoostApplied      = "Boost applied"
	LogMsgDailyClaimed      = "Daily reward claimed"
	LogMsgPlayerRenamed     = "Player renamed"
	LogMsgImported          = "Backup imported"
	LogMsgReset             = "Garden reset"
	LogMsgResetClearFailed  = "Failed to clear store during reset"
	LogMsgSimulated         = "Demo competitors simulated"
)
