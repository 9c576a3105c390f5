package cli

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/alexzavalny/chessstats/internal/models"
	"github.com/alexzavalny/chessstats/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [period]",
	Short: "Show roster game statistics for a period",
	Long: `Fetch each roster player's games for the given period (today, yesterday,
month, prevmonth) and print per-category win/loss/draw counts, time played,
and rating movement. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	window := stats.WindowToday
	if len(args) == 1 {
		w, err := stats.ParseWindow(args[0])
		if err != nil {
			return err
		}
		window = w
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	results, err := app.roster.FetchAll(cmd.Context(), window, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n=== Roster stats (%s) ===\n", window)
	for _, player := range results {
		renderPlayer(player)
	}
	if last := app.roster.LastFetch(); !last.IsZero() {
		fmt.Fprintf(os.Stdout, "\nLast fetch: %s\n", last.Format("15:04:05"))
	}
	return nil
}

func renderPlayer(player models.PlayerResult) {
	fmt.Fprintf(os.Stdout, "\n%s (%s) played %d game(s), %s\n",
		player.DisplayName, player.Username, player.TotalPlayed(),
		formatDuration(player.NonDailyDuration()))

	if len(player.StatsByType) == 0 {
		return
	}

	categories := make([]string, 0, len(player.StatsByType))
	for category := range player.StatsByType {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("TYPE", "PLAYED", "W/L/D", "TIME", "RATING")
	for _, category := range categories {
		s := player.StatsByType[category]
		table.Append(
			category,
			fmt.Sprintf("%d", s.Played),
			fmt.Sprintf("%d/%d/%d", s.Won, s.Lost, s.Draw),
			formatDuration(s.Duration),
			formatRating(s),
		)
	}
	table.Render()
}

// formatDuration renders seconds as "1h 5m", dropping the hour part
// when it is zero.
func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func formatRating(s *models.StatsByType) string {
	if s.Rating == 0 {
		return "-"
	}
	if s.RatingBefore != 0 && s.RatingBefore != s.Rating {
		return fmt.Sprintf("%d -> %d (%+d)", s.RatingBefore, s.Rating, s.Rating-s.RatingBefore)
	}
	return fmt.Sprintf("%d", s.Rating)
}
