package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexzavalny/chessstats/internal/chesscom"
	apperrors "github.com/alexzavalny/chessstats/internal/errors"
	"github.com/alexzavalny/chessstats/internal/models"
	"github.com/alexzavalny/chessstats/internal/pgn"
)

// standardRules is the rules value for plain chess; anything else is a
// variant and becomes the category key itself.
const standardRules = "chess"

// Aggregate buckets a raw game list into per-category accumulators for
// one player and window. Records where neither side matches the player
// are silently skipped; the upstream occasionally returns shared or
// duplicated data and such records simply do not belong to this player.
//
// Precondition: games must be in chronological order, oldest first, as
// the monthly archive endpoint returns them. Rating (last write wins) and
// RatingBefore (first write wins) both depend on that order; sorting or
// parallelizing the loop would silently corrupt them. The engine never
// sorts.
//
// The pass is deterministic and idempotent: the same inputs produce an
// identical result every time.
func Aggregate(games []chesscom.Game, player string, window Window, ref time.Time) map[string]*models.StatsByType {
	result, _ := aggregate(games, player, window, ref, false)
	return result
}

// AggregateStrict is Aggregate with the silent skip turned into an error:
// a record naming neither side is treated as an upstream-contract
// violation, since the archive was fetched scoped to this very player.
func AggregateStrict(games []chesscom.Game, player string, window Window, ref time.Time) (map[string]*models.StatsByType, error) {
	return aggregate(games, player, window, ref, true)
}

func aggregate(games []chesscom.Game, player string, window Window, ref time.Time, strict bool) (map[string]*models.StatsByType, error) {
	statsByType := make(map[string]*models.StatsByType)

	// Rating of the most recent out-of-window game per category, a
	// candidate for RatingBefore once in-window games start.
	beforeCandidate := make(map[string]int)
	hasCandidate := make(map[string]bool)

	for _, g := range games {
		category := categoryKey(g)

		mine, theirs, playedAs, ok := pickSide(g, player)
		if !ok {
			if strict {
				return nil, apperrors.NewMalformedRecordError(
					fmt.Sprintf("neither side of %s matches player %q", g.URL, player))
			}
			continue
		}

		if !window.Contains(time.Unix(g.EndTime, 0), ref) {
			// Out-of-window games are only rating bookkeeping: the last
			// one seen before the window becomes the RatingBefore
			// candidate for its category.
			beforeCandidate[category] = mine.Rating
			hasCandidate[category] = true
			continue
		}

		acc := statsByType[category]
		if acc == nil {
			acc = &models.StatsByType{}
			statsByType[category] = acc
		}

		outcome := ClassifyResult(mine.Result)
		acc.Played++
		switch outcome {
		case models.OutcomeWon:
			acc.Won++
		case models.OutcomeLost:
			acc.Lost++
		case models.OutcomeDraw:
			acc.Draw++
		default:
			acc.Unknown++
		}

		if acc.Played == 1 {
			if hasCandidate[category] {
				acc.RatingBefore = beforeCandidate[category]
			} else {
				acc.RatingBefore = mine.Rating
			}
		}
		acc.Rating = mine.Rating

		duration := pgn.GameDuration(g.PGN)
		acc.Duration += duration

		acc.Games = append(acc.Games, models.GameDetail{
			Outcome:         outcome,
			OpponentOutcome: ClassifyResult(theirs.Result),
			Opponent:        theirs.Username,
			PlayedAs:        playedAs,
			Rating:          mine.Rating,
			Duration:        duration,
			MoveCount:       pgn.MoveCount(g.PGN),
			Opening:         pgn.GameOpening(g.PGN),
			EndTime:         time.Unix(g.EndTime, 0),
			URL:             g.URL,
		})
	}

	return statsByType, nil
}

// categoryKey is the game's time class, unless a non-standard rule set
// makes the variant name the category instead.
func categoryKey(g chesscom.Game) string {
	if g.Rules != "" && g.Rules != standardRules {
		return g.Rules
	}
	return g.TimeClass
}

// pickSide finds which side the queried player occupies, matching
// usernames case-insensitively.
func pickSide(g chesscom.Game, player string) (mine, theirs chesscom.Side, playedAs string, ok bool) {
	if strings.EqualFold(g.White.Username, player) {
		return g.White, g.Black, "white", true
	}
	if strings.EqualFold(g.Black.Username, player) {
		return g.Black, g.White, "black", true
	}
	return chesscom.Side{}, chesscom.Side{}, "", false
}
