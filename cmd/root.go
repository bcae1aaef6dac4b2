package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/tui"
)

var gameConfig = game.NewGameConfig()

var difficulty difficultyValue

var (
	presetsPath string
	logFile     string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a Minesweeper game for the terminal, with unlimited undo.

Run with no arguments to pick a difficulty from the menu
	termsweep

Skip the menu by naming a difficulty or giving the board size
	termsweep --difficulty hard
	termsweep -w 16 -h 16 -m 40
`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := newLogger(logFile, logLevel)
		if err != nil {
			return err
		}
		defer closeLog()
		gameConfig.Logger = logger

		difficulties := game.Difficulties
		if presetsPath != "" {
			if difficulties, err = game.LoadDifficulties(presetsPath); err != nil {
				return fmt.Errorf("loading difficulties: %w", err)
			}
		}

		options := tui.Options{Config: gameConfig, Difficulties: difficulties}
		if name := string(difficulty); name != "" {
			preset, ok := game.FindDifficulty(difficulties, name)
			if !ok {
				return fmt.Errorf("unknown difficulty %q (available: %s)", name, difficultyNames(difficulties))
			}
			preset.Apply(&options.Config)
			options.SkipMenu = true
		}

		// Explicit dimensions win over a named difficulty
		flags := cmd.Flags()
		if flags.Changed("width") || flags.Changed("height") || flags.Changed("mines") {
			options.Config.Width = gameConfig.Width
			options.Config.Height = gameConfig.Height
			options.Config.NumMines = gameConfig.NumMines
			options.SkipMenu = true
		}

		logger.WithFields(logrus.Fields{
			"width":     options.Config.Width,
			"height":    options.Config.Height,
			"mines":     options.Config.NumMines,
			"seed":      options.Config.Seed,
			"skip_menu": options.SkipMenu,
		}).Debug("starting")

		return tui.Run(options)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(path, level string) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(parsed)

	// The terminal belongs to the game, so logs only go to a file
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { f.Close() }, nil
}

func difficultyNames(difficulties []game.Difficulty) string {
	names := make([]string, len(difficulties))
	for i, difficulty := range difficulties {
		names[i] = difficulty.Name
	}
	return strings.Join(names, ", ")
}

// difficultyValue names a difficulty preset. It is resolved once the presets
// file, if any, has been loaded.
type difficultyValue string

var _ pflag.Value = (*difficultyValue)(nil)

func (value *difficultyValue) String() string {
	return string(*value)
}

func (value *difficultyValue) Set(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("difficulty must not be empty")
	}
	*value = difficultyValue(strings.ToLower(name))
	return nil
}

func (value *difficultyValue) Type() string {
	return "difficulty"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().VarP(&difficulty, "difficulty", "d", "Difficulty preset to start with, skipping the menu (easy, medium, hard, extreme)")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement; 0 picks one from the clock")
	rootCmd.Flags().IntVar(&gameConfig.MaxUndo, "undo-depth", 0, "Maximum number of moves that can be undone; 0 means unlimited")
	rootCmd.Flags().StringVar(&presetsPath, "config", "", "YAML file of difficulty presets to offer instead of the built-in ones")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where finished boards are saved as YAML")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "File to write logs to; logging is off when empty")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
