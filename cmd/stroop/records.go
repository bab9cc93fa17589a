package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stroop/internal/game"
	"github.com/vovakirdan/stroop/internal/storage"
)

var flagHistory int

var recordsCmd = &cobra.Command{
	Use:   "records [mode]",
	Short: "Show best records and recent sessions",
	Long: `Display the best record per mode and recent session history.
With a mode argument, only that mode is shown.

Examples:
  stroop records
  stroop records timed
  stroop records classic --history 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagHistory, "history", 10, "Number of recent sessions to show per mode")
}

func runRecords(cmd *cobra.Command, args []string) {
	modes := game.AllModes[:]
	if len(args) == 1 {
		mode, err := parseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		modes = []game.Mode{mode}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.BestRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		printMode(store, records, mode)
	}
}

func printMode(store *storage.Store, records game.Records, mode game.Mode) {
	fmt.Printf("%s\n", mode.Title())

	rec, ok := records.Best(mode)
	if !ok {
		fmt.Println("  No completed sessions yet.")
		fmt.Printf("  Play 'stroop play %s' to set the first record!\n", mode)
		return
	}

	count, err := store.SessionCount(mode)
	if err == nil {
		fmt.Printf("  Best: %d (%.1f%% accuracy, %dms avg) over %d sessions\n",
			rec.Score, rec.Accuracy, rec.AvgReaction.Milliseconds(), count)
	} else {
		fmt.Printf("  Best: %d (%.1f%% accuracy, %dms avg)\n",
			rec.Score, rec.Accuracy, rec.AvgReaction.Milliseconds())
	}

	history, err := store.History(mode, flagHistory)
	if err != nil || len(history) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-7s  %-9s  %-7s  %s\n", "Score", "Accuracy", "Avg", "Date")
	fmt.Printf("  %-7s  %-9s  %-7s  %s\n", "-----", "--------", "---", "----")
	for _, e := range history {
		fmt.Printf("  %-7s  %-9s  %-7s  %s\n",
			fmt.Sprintf("%d/%d", e.Score, e.Total),
			fmt.Sprintf("%.1f%%", e.Accuracy),
			fmt.Sprintf("%dms", e.AvgReactionMs),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
