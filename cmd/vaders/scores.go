package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termvaders/internal/platform/tui"
	"github.com/vovakirdan/termvaders/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the game history",
	Long: `Display the best recorded games.

Examples:
  vaders scores
  vaders scores --limit 20
  vaders scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the history interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Paths.HistoryDB)
	if err != nil {
		fatalf("opening history database: %v", err)
	}
	defer store.Close()

	if flagTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fatalf("%v", err)
		}
		return
	}

	records, err := store.TopScores(flagLimit)
	if err != nil {
		store.Close()
		fatalf("retrieving scores: %v", err)
	}

	fmt.Println(lipgloss.NewStyle().Bold(true).Render("Termvaders High Scores"))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'vaders' to set the first high score!")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Wave", "Outcome", "Date")
	for i, r := range records {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Wave),
			tui.OutcomeLabel(r.Outcome),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	if stats, err := store.Stats(); err == nil {
		fmt.Printf("\nBest: %d   Games: %d   Completed: %d\n",
			stats.HighScore, stats.Games, stats.Completions)
	}
}
