package models

// LeaderboardEntry is one row of the all-time wins leaderboard
type LeaderboardEntry struct {
	// PlayerID is the opaque player identifier
	PlayerID string `json:"playerId"`

	// PlayerName is the last display name the player won with
	PlayerName string `json:"playerName"`

	// Wins is the number of games won
	Wins int `json:"wins"`
}

// Leaderboard represents the all-time standings
type Leaderboard struct {
	// Entries are ordered by wins, most first
	Entries []*LeaderboardEntry `json:"entries"`
}
