package domain

import "time"

// BackupVersion is the current export document version
const BackupVersion = 1

// Backup is the export/import document for a whole installation
type Backup struct {
	Version     int                `json:"version"`
	Player      *Player            `json:"player"`
	Garden      *Garden            `json:"garden"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	ExportDate  time.Time          `json:"export_date"`
}
