package stats

import "github.com/alexzavalny/chessstats/internal/models"

// ClassifyResult maps an upstream outcome code to a result bucket from
// the perspective of the side that carried the code. Matching is exact
// and case-sensitive; unrecognized codes land in unknown. The same
// mapping classifies both the queried player's outcome and the opponent's
// descriptive label.
func ClassifyResult(code string) models.Outcome {
	switch code {
	case "win":
		return models.OutcomeWon
	case "checkmated", "timeout", "resigned", "abandoned":
		return models.OutcomeLost
	case "agreed", "stalemate", "insufficient", "50move", "timevsinsufficient", "repetition":
		return models.OutcomeDraw
	default:
		return models.OutcomeUnknown
	}
}
