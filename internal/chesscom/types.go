package chesscom

// Side is one player's seat in a game record: username, rating at game
// end, and the upstream outcome code for that side.
type Side struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Result   string `json:"result"`
}

// Game is a raw game record from the monthly archive endpoint. Read-only
// input; exactly one of the two sides is expected to match the queried
// player (case-insensitively).
type Game struct {
	URL       string `json:"url"`
	PGN       string `json:"pgn"`
	TimeClass string `json:"time_class"`
	Rules     string `json:"rules"`
	EndTime   int64  `json:"end_time"`
	White     Side   `json:"white"`
	Black     Side   `json:"black"`
}

// RatingSnapshot is a rating with an optional epoch timestamp.
type RatingSnapshot struct {
	Rating int   `json:"rating"`
	Date   int64 `json:"date"`
}

// GameTypeStats holds the current and best ratings for one game type.
type GameTypeStats struct {
	Last RatingSnapshot `json:"last"`
	Best RatingSnapshot `json:"best"`
}

// PlayerStats is the player-statistics resource. Fields are pointers
// because the upstream omits game types the player never played.
type PlayerStats struct {
	Blitz  *GameTypeStats `json:"chess_blitz"`
	Rapid  *GameTypeStats `json:"chess_rapid"`
	Bullet *GameTypeStats `json:"chess_bullet"`
	Daily  *GameTypeStats `json:"chess_daily"`

	Tactics *struct {
		Highest RatingSnapshot `json:"highest"`
	} `json:"tactics"`

	PuzzleRush *struct {
		Best struct {
			Score int `json:"score"`
		} `json:"best"`
	} `json:"puzzle_rush"`
}

// GameTypes returns the per-game-type records keyed by their plain names.
func (s PlayerStats) GameTypes() map[string]GameTypeStats {
	out := map[string]GameTypeStats{}
	if s.Blitz != nil {
		out["blitz"] = *s.Blitz
	}
	if s.Rapid != nil {
		out["rapid"] = *s.Rapid
	}
	if s.Bullet != nil {
		out["bullet"] = *s.Bullet
	}
	if s.Daily != nil {
		out["daily"] = *s.Daily
	}
	return out
}
