package pgn

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/corentings/chess/v2"

	"github.com/alexzavalny/chessstats/internal/models"
)

var (
	startTimeRe = regexp.MustCompile(`\[StartTime "(\d+:\d+:\d+)"\]`)
	endTimeRe   = regexp.MustCompile(`\[EndTime "(\d+:\d+:\d+)"\]`)
	ecoURLRe    = regexp.MustCompile(`\[ECOUrl "(.+?)"\]`)
)

const openingCatalogPrefix = "https://www.chess.com/openings/"

// openingNameLimit is the display truncation applied to opening names.
const openingNameLimit = 50

// GameDuration computes elapsed wall-clock seconds from the StartTime and
// EndTime tags embedded in a PGN blob. Either tag missing yields 0.
// Times are clock times without a date, so a game spanning local midnight
// would subtract negative; the difference clamps to 0 instead. True
// multi-day duration is not computed.
func GameDuration(pgn string) int {
	start := startTimeRe.FindStringSubmatch(pgn)
	end := endTimeRe.FindStringSubmatch(pgn)
	if start == nil || end == nil {
		return 0
	}

	diff := clockSeconds(end[1]) - clockSeconds(start[1])
	if diff < 0 {
		return 0
	}
	return diff
}

// clockSeconds converts "HH:MM:SS" to seconds since midnight.
func clockSeconds(s string) int {
	var total int
	for _, part := range strings.Split(s, ":") {
		n := 0
		for _, r := range part {
			n = n*10 + int(r-'0')
		}
		total = total*60 + n
	}
	return total
}

// GameOpening extracts the opening name and reference URL from the ECOUrl
// tag of a PGN blob. A missing tag yields the "Unknown opening" fallback.
//
// The name is the URL path after the chess.com openings catalog prefix,
// with each path segment title-cased and hyphens turned into spaces. The
// result is cut at 50 characters and always gets a trailing ellipsis,
// even when shorter; the web UI has displayed it that way from the start
// and keeping the marker unconditional preserves that rendering.
func GameOpening(pgn string) models.Opening {
	m := ecoURLRe.FindStringSubmatch(pgn)
	if m == nil {
		return models.Opening{Name: "Unknown opening", URL: "#"}
	}

	fullURL := m[1]
	rest := strings.TrimPrefix(fullURL, openingCatalogPrefix)

	segments := strings.Split(rest, "/")
	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}
	name := strings.ReplaceAll(strings.Join(segments, " "), "-", " ")

	if runes := []rune(name); len(runes) > openingNameLimit {
		name = string(runes[:openingNameLimit])
	}
	return models.Opening{Name: name + "...", URL: fullURL}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// MoveCount counts the moves recorded in a PGN blob. It is a best-effort
// annotation: the blob is parsed as a real game first, and unparseable
// input falls back to counting SAN tokens in the movetext.
func MoveCount(pgn string) int {
	if opt, err := chess.PGN(strings.NewReader(pgn)); err == nil {
		return len(chess.NewGame(opt).Moves())
	}
	return countMoveTokens(pgn)
}

func countMoveTokens(pgn string) int {
	var count int
	inComment := false
	for _, line := range strings.Split(pgn, "\n") {
		if strings.HasPrefix(line, "[") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			if inComment {
				if strings.HasSuffix(tok, "}") {
					inComment = false
				}
				continue
			}
			if strings.HasPrefix(tok, "{") {
				if !strings.HasSuffix(tok, "}") {
					inComment = true
				}
				continue
			}
			if isMoveNumber(tok) || isGameResult(tok) {
				continue
			}
			count++
		}
	}
	return count
}

func isMoveNumber(tok string) bool {
	trimmed := strings.TrimRight(tok, ".")
	if trimmed == "" || trimmed == tok {
		return false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isGameResult(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}
