package models

// RatingRecord is a best or last rating for one game type, as reported by
// the upstream player-statistics resource.
type RatingRecord struct {
	Rating int   `json:"rating"`
	Date   int64 `json:"date,omitempty"`
}

// GameTypeRecord pairs the current and best ratings for one game type.
type GameTypeRecord struct {
	Last RatingRecord `json:"last"`
	Best RatingRecord `json:"best"`
}

// LeaderboardEntry is one roster player's standing ratings, taken verbatim
// from the upstream player-statistics resource.
type LeaderboardEntry struct {
	Username    string                    `json:"username"`
	DisplayName string                    `json:"display_name"`
	GameTypes   map[string]GameTypeRecord `json:"game_types"`
	TacticsHigh int                       `json:"tactics_high,omitempty"`
	PuzzleRush  int                       `json:"puzzle_rush,omitempty"`
}
