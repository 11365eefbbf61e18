package config

// Warnings returns non-fatal observations about a loaded configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the command API accepts unauthenticated requests")
	}
	if c.StoreBackend == "memory" {
		warnings = append(warnings, "STORE_BACKEND is memory - garden progress is lost on restart")
	}
	if c.SaveProbability == 0 {
		warnings = append(warnings, "SAVE_PROBABILITY is 0 - growth ticks never persist, only commands do")
	}
	if c.IsProduction() && c.LogLevel == "debug" {
		warnings = append(warnings, "LOG_LEVEL is debug in production")
	}

	return warnings
}
