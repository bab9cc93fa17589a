// stroop is a terminal Stroop-effect reaction trainer: a color word is
// drawn in a (usually different) ink color and you must name the ink,
// not the word.
//
// Usage:
//
//	stroop play [mode]    - Play (classic, timed, or endless); no mode opens the menu
//	stroop records        - Show best records and session history
//	stroop serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible round sequences
//	--db <path>      - Records database path (default: ~/.stroop/records.db)
//	--config <path>  - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stroop",
	Short: "Stroop - a reaction test against your own reading reflex",
	Long: `Stroop is a terminal reaction game based on the Stroop effect:
a color word is shown in a conflicting ink color, and you must answer
with the ink color while your brain insists on reading the word.

Modes:
  classic  - 20 rounds, score as many as you can
  timed    - 60 seconds on the clock
  endless  - keep going until you stop

Examples:
  stroop play
  stroop play timed
  stroop records
  stroop serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stroop/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
