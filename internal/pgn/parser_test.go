package pgn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexzavalny/chessstats/internal/pgn"
)

const samplePGN = `[Event "Live Chess"]
[Site "Chess.com"]
[Date "2024.01.15"]
[White "bob"]
[Black "alice"]
[Result "1-0"]
[ECOUrl "https://www.chess.com/openings/Sicilian-Defense-Open"]
[StartTime "12:00:00"]
[EndTime "12:05:00"]

1. e4 c5 2. Nf3 d6 1-0`

func TestGameDuration(t *testing.T) {
	tests := []struct {
		name     string
		pgn      string
		expected int
	}{
		{
			name:     "five minute game",
			pgn:      samplePGN,
			expected: 300,
		},
		{
			name:     "same start and end",
			pgn:      "[StartTime \"08:30:00\"]\n[EndTime \"08:30:00\"]",
			expected: 0,
		},
		{
			name:     "hours and minutes",
			pgn:      "[StartTime \"10:15:30\"]\n[EndTime \"11:20:45\"]",
			expected: 3915,
		},
		{
			name:     "missing start time",
			pgn:      "[EndTime \"12:05:00\"]",
			expected: 0,
		},
		{
			name:     "missing end time",
			pgn:      "[StartTime \"12:00:00\"]",
			expected: 0,
		},
		{
			name:     "no tags at all",
			pgn:      "1. e4 e5",
			expected: 0,
		},
		{
			name: "game spanning midnight clamps to zero",
			// End before start in clock time. A real fix needs dates,
			// which the tags do not carry.
			pgn:      "[StartTime \"23:58:00\"]\n[EndTime \"00:03:00\"]",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pgn.GameDuration(tt.pgn))
			assert.GreaterOrEqual(t, pgn.GameDuration(tt.pgn), 0)
		})
	}
}

func TestGameOpening_KnownURL(t *testing.T) {
	opening := pgn.GameOpening(samplePGN)

	assert.Equal(t, "Sicilian Defense Open...", opening.Name)
	assert.Equal(t, "https://www.chess.com/openings/Sicilian-Defense-Open", opening.URL)
}

func TestGameOpening_MissingTag(t *testing.T) {
	opening := pgn.GameOpening("[Event \"Live Chess\"]\n1. e4 e5")

	assert.Equal(t, "Unknown opening", opening.Name)
	assert.Equal(t, "#", opening.URL)
}

func TestGameOpening_AlwaysAppendsEllipsis(t *testing.T) {
	// The ellipsis is appended even for names far shorter than the
	// 50-character cut. Faithful to how the stats page always rendered.
	opening := pgn.GameOpening(`[ECOUrl "https://www.chess.com/openings/Kings-Gambit"]`)

	assert.Equal(t, "Kings Gambit...", opening.Name)
	assert.True(t, strings.HasSuffix(opening.Name, "..."))
}

func TestGameOpening_TruncatesLongNames(t *testing.T) {
	opening := pgn.GameOpening(`[ECOUrl "https://www.chess.com/openings/Queens-Gambit-Declined-Exchange-Variation-Positional-Line-With-Carlsbad-Structure"]`)

	assert.Len(t, []rune(strings.TrimSuffix(opening.Name, "...")), 50)
	assert.True(t, strings.HasSuffix(opening.Name, "..."))
}

func TestGameOpening_TitleCasesPathSegments(t *testing.T) {
	opening := pgn.GameOpening(`[ECOUrl "https://www.chess.com/openings/sicilian-defense/open-variation"]`)

	assert.Equal(t, "Sicilian defense Open variation...", opening.Name)
}

func TestMoveCount_ParsedGame(t *testing.T) {
	count := pgn.MoveCount(samplePGN)
	assert.Equal(t, 4, count)
}

func TestMoveCount_FallbackTokenCounting(t *testing.T) {
	// Unparseable movetext falls back to counting SAN tokens.
	blob := "[Event \"Live Chess\"]\n\n1. e4 {[%clk 0:02:59]} 1... zz9 2. Nf3 1-0"
	count := pgn.MoveCount(blob)
	assert.Equal(t, 3, count)
}

func TestMoveCount_Empty(t *testing.T) {
	assert.Equal(t, 0, pgn.MoveCount(""))
}
