package leaderboard

import "time"

// Score weights
const (
	PointsPerLevel    = 100
	CoinsPerPoint     = 10
	PointsPerGem      = 10
	PointsPerLoginDay = 20
	DailyLevelWeight  = 2.0
	DailyScoreDivisor = 100.0
)

// View cache settings
const (
	viewCacheSize = 8
)

// Demo roster generation
const (
	// RosterLevelVariation is the +/- fraction applied to each synthetic player's base level
	RosterLevelVariation = 0.15

	rosterMaxLoginDays   = 30
	rosterMaxGemBonus    = 20
	rosterCoinsPerLevel  = 1000
	rosterMinCoins       = 100
	rosterActivityWindow = time.Hour

	// DemoIDPrefix marks synthetic player ids
	DemoIDPrefix = "demo_"
)

// DefaultRosterNames is the synthetic population shown on a fresh install
var DefaultRosterNames = []string{
	"Max Müller",
	"Anna Schmidt",
	"Leon Wagner",
	"Emma Fischer",
	"Felix Weber",
	"Mia Meyer",
	"Paul Hoffmann",
	"Sophie Schäfer",
	"Lukas Koch",
	"Marie Bauer",
	"Tim Richter",
	"Laura Klein",
	"Jonas Wolf",
	"Lena Schröder",
	"Finn Neumann",
}
