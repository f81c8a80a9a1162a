package dto

// LeaderboardEntry is one row of the activity leaderboard. Rank is 1-based
// in output order.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	RatingCount int    `json:"rating_count"`
}
