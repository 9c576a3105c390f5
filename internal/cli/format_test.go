package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexzavalny/chessstats/internal/models"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0m"},
		{"under a minute", 45, "0m"},
		{"minutes only", 300, "5m"},
		{"exactly one hour", 3600, "1h 0m"},
		{"hours and minutes", 3900, "1h 5m"},
		{"multiple hours", 7940, "2h 12m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.seconds))
		})
	}
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		name  string
		stats models.StatsByType
		want  string
	}{
		{"no rating", models.StatsByType{}, "-"},
		{"rating only", models.StatsByType{Rating: 1500}, "1500"},
		{"gain", models.StatsByType{Rating: 1520, RatingBefore: 1500}, "1500 -> 1520 (+20)"},
		{"loss", models.StatsByType{Rating: 1480, RatingBefore: 1500}, "1500 -> 1480 (-20)"},
		{"unchanged", models.StatsByType{Rating: 1500, RatingBefore: 1500}, "1500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRating(&tt.stats))
		})
	}
}

func TestFormatGameType(t *testing.T) {
	types := map[string]models.GameTypeRecord{
		"blitz": {
			Last: models.RatingRecord{Rating: 1500},
			Best: models.RatingRecord{Rating: 1610},
		},
		"rapid": {
			Last: models.RatingRecord{Rating: 1400},
		},
	}

	assert.Equal(t, "1500 (1610)", formatGameType(types, "blitz"))
	assert.Equal(t, "1400", formatGameType(types, "rapid"))
	assert.Equal(t, "-", formatGameType(types, "bullet"))
}
