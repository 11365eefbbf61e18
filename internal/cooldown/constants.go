package cooldown

import "time"

// DefaultCooldownDuration is the wait between two purchases of the same boost
const DefaultCooldownDuration = 30 * time.Minute

const (
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgDroppedEntry  = "Dropping unreadable cooldown entry"
)

// ErrFmtOnCooldown takes the action and the remaining wait rounded to the second
const ErrFmtOnCooldown = "%s is on cooldown for another %s"
