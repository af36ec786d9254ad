package model

// LeaderboardEntry is one ranked session on the XP leaderboard
type LeaderboardEntry struct {
	SessionID string `json:"session_id"`
	TotalXP   int    `json:"total_xp"`
	Level     int    `json:"level"`
	Rank      int    `json:"rank"`
}
