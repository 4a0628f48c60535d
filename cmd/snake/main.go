// snake is a terminal snake game.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--fps <rate>     - Override the tick rate
//	--seed <value>   - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - play the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: steer the
snake, eat food to grow, and avoid the walls and your own tail.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --fps 20 --seed 12345
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
