package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/alexzavalny/chessstats/internal/models"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show current and best ratings for the roster",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	entries, err := app.leaderboard.Standings(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n=== Leaderboard ===\n\n")
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("PLAYER", "BLITZ", "RAPID", "BULLET", "DAILY", "TACTICS", "RUSH")
	for _, entry := range entries {
		table.Append(
			entry.DisplayName,
			formatGameType(entry.GameTypes, "blitz"),
			formatGameType(entry.GameTypes, "rapid"),
			formatGameType(entry.GameTypes, "bullet"),
			formatGameType(entry.GameTypes, "daily"),
			formatCount(entry.TacticsHigh),
			formatCount(entry.PuzzleRush),
		)
	}
	table.Render()
	return nil
}

// formatGameType renders "last (best)" for one game type, or "-" when
// the player has never played it.
func formatGameType(types map[string]models.GameTypeRecord, name string) string {
	record, ok := types[name]
	if !ok || record.Last.Rating == 0 {
		return "-"
	}
	if record.Best.Rating > 0 {
		return fmt.Sprintf("%d (%d)", record.Last.Rating, record.Best.Rating)
	}
	return fmt.Sprintf("%d", record.Last.Rating)
}

func formatCount(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}
