package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stroop/internal/config"
	"github.com/vovakirdan/stroop/internal/game"
	"github.com/vovakirdan/stroop/internal/platform/tui"
	"github.com/vovakirdan/stroop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start playing. With no mode argument a menu opens; with one of
classic, timed, or endless the game starts immediately.

Controls:
  r/g/b/y or 1-4  - Answer with the ink color
  Esc             - Back to menu (ends and records an endless run)
  Q/Ctrl+C        - Quit

Examples:
  stroop play
  stroop play classic
  stroop play timed --seed 42
  stroop play endless --config ./my-stroop.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	var startMode game.Mode
	if len(args) == 1 {
		mode, err := parseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		startMode = mode
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - the game still works, records
		// just don't survive the process.
		store = nil
	}

	// Probe the terminal size early so the first frame lays out right.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(gameCfg, store, seed, startMode, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func parseMode(s string) (game.Mode, error) {
	for _, mode := range game.AllModes {
		if s == string(mode) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (choose classic, timed, or endless)", s)
}
