package cooldown

import "time"

// Config sets per-action cooldowns. Actions not listed wait DefaultCooldownDuration.
type Config struct {
	// DevMode turns every cooldown off; purchases are still recorded
	DevMode   bool
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the wait after action is used
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if d, ok := c.Cooldowns[action]; ok {
		return d
	}
	return DefaultCooldownDuration
}
