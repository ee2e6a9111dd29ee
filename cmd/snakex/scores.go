package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-extreme/internal/games/snakex"
	"github.com/vovakirdan/snake-extreme/internal/registry"
	"github.com/vovakirdan/snake-extreme/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
	flagScoresRound string
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the specified mode (default: snakex).

Examples:
  snakex scores
  snakex scores snakex_classic --limit 20
  snakex scores snakex --all
  snakex scores --round 6f1c0c52-8d0e-4a4e-9d57-2b0f3b1f0c9e
  snakex scores --stats
  snakex scores snakex --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded round of the mode")
	scoresCmd.Flags().StringVar(&flagScoresRound, "round", "", "Show a single round by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show totals for every mode played")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := string(snakex.VariantExtreme)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'snakex list' to see available modes", gameID)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	case flagScoresRound != "":
		return writeRound(os.Stdout, store, flagScoresRound)
	case flagScoresStats:
		return writeAllStats(os.Stdout, store)
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}
	writeScores(os.Stdout, store, gameID, title, scores)
	return nil
}

// writeScores prints a ranked table of scores and the mode totals.
func writeScores(w io.Writer, store *storage.Store, gameID, title string, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'snakex play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-16s  %s\n", "Rank", "Score", "Turns", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-16s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-16s  %s\n", i+1, entry.Score, entry.Turns, playerName(entry.Player), dateStr)
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Fprintf(w, "Best: %d  |  Rounds: %d  |  Average: %.1f  |  Turns: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalTurns)
	}
}

// writeRound prints one saved round.
func writeRound(w io.Writer, store *storage.Store, roundID string) error {
	entry, err := store.ScoreByRound(roundID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no round with ID %q", roundID)
	}

	fmt.Fprintf(w, "Round:  %s\n", entry.RoundID)
	fmt.Fprintf(w, "Mode:   %s\n", entry.GameID)
	fmt.Fprintf(w, "Player: %s\n", playerName(entry.Player))
	fmt.Fprintf(w, "Score:  %d\n", entry.Score)
	fmt.Fprintf(w, "Turns:  %d\n", entry.Turns)
	fmt.Fprintf(w, "Date:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// writeAllStats prints one totals line per played mode, sorted by mode ID.
func writeAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-16s  %-6s  %-6s  %-7s  %-7s  %s\n", "Mode", "Rounds", "Best", "Average", "Turns", "Last played")
	fmt.Fprintf(w, "  %-16s  %-6s  %-6s  %-7s  %-7s  %s\n", "----", "------", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(w, "  %-16s  %-6d  %-6d  %-7.1f  %-7d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.TotalTurns, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}
