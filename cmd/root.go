package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hexsweep/director/basic"
	"hexsweep/director/random"
	"hexsweep/game"
)

var (
	boardSize    int
	numMines     int
	seed         int64
	presetName   string
	presetsFile  string
	directorName string
	numGames     int
	snapshotDir  string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "hexsweep",
	Short: "Play manual or computer-driven hexagonal Minesweeper",
	Long: `hexsweep is Minesweeper on a hexagonal grid, played in the
terminal by a human or by a computer player.

Run with no arguments to play manually
	hexsweep

Use the director flag to make the computer play for you
	hexsweep --director basic --games 10
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log().SetLevel(logrus.DebugLevel)
		}

		size, mines := boardSize, numMines
		if presetName != "" {
			presets, err := loadPresets(presetsFile)
			if err != nil {
				return err
			}
			preset, ok := presets[presetName]
			if !ok {
				return fmt.Errorf("unknown preset %q", presetName)
			}
			size, mines = preset.Size, preset.Mines
		}

		board, err := game.NewBoard(game.BoardConfig{
			Size:     size,
			NumMines: mines,
			Seed:     seed,
		})
		if err != nil {
			return err
		}

		shell := newShell(board, os.Stdout, snapshotDir)

		var director game.Director
		switch directorName {
		case "":
			return shell.playInteractive(os.Stdin)
		case "random":
			director = &random.Director{}
		case "basic":
			director = &basic.Director{}
		default:
			return fmt.Errorf("unknown director %q (want random or basic)", directorName)
		}
		return shell.autoplay(director, numGames)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&boardSize, "size", "s", 5, "Size of the hexagonal board: the number of tiles in its top row")
	rootCmd.Flags().IntVarP(&numMines, "mines", "m", 10, "Number of mines to place in the board")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for mine placement (0 seeds from the clock)")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Difficulty preset (overrides --size/--mines)")
	rootCmd.Flags().StringVar(&presetsFile, "presets", "", "Path to a YAML file of extra difficulty presets")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", "Make the computer play: random or basic")
	rootCmd.Flags().IntVarP(&numGames, "games", "g", 1, "Number of games a director plays before exiting")
	rootCmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "Directory to save snapshots of finished games to")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
