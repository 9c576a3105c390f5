package models

import "time"

// Outcome is a game result from the queried player's perspective.
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
	OutcomeDraw    Outcome = "draw"
	OutcomeUnknown Outcome = "unknown"
)

// Opening is a human-readable opening name plus its reference URL.
type Opening struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GameDetail is one classified game inside a category accumulator.
type GameDetail struct {
	Outcome         Outcome   `json:"outcome"`
	OpponentOutcome Outcome   `json:"opponent_outcome"`
	Opponent        string    `json:"opponent"`
	PlayedAs        string    `json:"played_as"`
	Rating          int       `json:"rating"`
	Duration        int       `json:"duration"`
	MoveCount       int       `json:"move_count"`
	Opening         Opening   `json:"opening"`
	EndTime         time.Time `json:"end_time"`
	URL             string    `json:"url"`
}

// StatsByType accumulates totals for one time-control category during a
// single aggregation pass. Created lazily on the first game of the
// category and never persisted across requests.
//
// Invariant: Played == Won + Lost + Draw + Unknown.
type StatsByType struct {
	Played   int `json:"played"`
	Won      int `json:"won"`
	Lost     int `json:"lost"`
	Draw     int `json:"draw"`
	Unknown  int `json:"unknown"`
	Duration int `json:"duration"` // seconds, >= 0

	// Rating is the last rating seen in input order; RatingBefore is the
	// rating going into the window (first-write-wins). Both depend on the
	// input game list being chronological, oldest first.
	Rating       int `json:"rating"`
	RatingBefore int `json:"rating_before"`

	Games []GameDetail `json:"games"`
}

// PlayerResult is the per-player output of one aggregation pass.
// Immutable once returned.
type PlayerResult struct {
	Username    string                  `json:"username"`
	DisplayName string                  `json:"display_name"`
	StatsByType map[string]*StatsByType `json:"stats_by_type"`
}

// NonDailyDuration sums playing time across all categories except daily.
// Daily games run for days and would dominate any duration ordering.
func (p PlayerResult) NonDailyDuration() int {
	var total int
	for category, stats := range p.StatsByType {
		if category == "daily" {
			continue
		}
		total += stats.Duration
	}
	return total
}

// TotalPlayed sums game counts across all categories.
func (p PlayerResult) TotalPlayed() int {
	var total int
	for _, stats := range p.StatsByType {
		total += stats.Played
	}
	return total
}
