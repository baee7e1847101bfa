package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/config"
	"github.com/they4kman/gomaze/director/random"
	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/ui/terminal"
	"github.com/they4kman/gomaze/ui/window"
)

type uiMode string

const (
	uiWindow   uiMode = "window"
	uiTerminal uiMode = "terminal"
	uiHeadless uiMode = "headless"
)

var uiModes = map[string]uiMode{
	"window":   uiWindow,
	"terminal": uiTerminal,
	"headless": uiHeadless,
}

type uiModeValue uiMode

func newUIModeValue(val uiMode, p *uiMode) *uiModeValue {
	*p = val
	return (*uiModeValue)(p)
}

func (modeVal *uiModeValue) String() string {
	return string(*modeVal)
}

func (modeVal *uiModeValue) Set(value string) error {
	mode, err := parseUIMode(value)
	if err != nil {
		return err
	}
	*modeVal = uiModeValue(mode)
	return nil
}

func (modeVal *uiModeValue) Type() string {
	return "ui"
}

func parseUIMode(value string) (uiMode, error) {
	if mode, isValid := uiModes[value]; isValid {
		return mode, nil
	}
	return "", fmt.Errorf("invalid ui %q: expected window, terminal or headless", value)
}

// Flag values; only flags set on the command line override the config file
var flags struct {
	width, height int
	seed          int64
	tick          time.Duration
	step          int
	ui            uiMode
	director      bool
	config        string
	logLevel      string
	logFile       string
	scale         float64
	spritesheet   string
	keyHold       time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "gomaze",
	Short: "Guide a mouse through a random maze to its cheese",
	Long: `gomaze generates a random perfect maze and lets you steer a mouse
from the top-left corner to the cheese in the bottom-right corner.

Run with no arguments to play in a window
	gomaze

Play in the terminal instead, fitting the maze to its size
	gomaze --ui terminal -w 0 -h 0

Watch the computer wander the maze
	gomaze --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		closeLog, err := setupLogging(settings.logLevel, settings.logFile, settings.ui == uiTerminal)
		if err != nil {
			return err
		}
		defer closeLog()

		if flags.director {
			settings.game.Director = &random.Director{}
		}
		if err := settings.game.Validate(); err != nil {
			return err
		}

		switch settings.ui {
		case uiTerminal:
			return terminal.Run(settings.game, terminal.Options{KeyHold: settings.keyHold})
		case uiHeadless:
			return runHeadless(cmd.OutOrStdout(), settings.game)
		default:
			pixelgl.Run(func() {
				err = window.Run(settings.game, window.Options{
					Scale:       settings.scale,
					Spritesheet: settings.spritesheet,
				})
			})
			return err
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type settings struct {
	game        game.GameConfig
	ui          uiMode
	logLevel    string
	logFile     string
	scale       float64
	spritesheet string
	keyHold     time.Duration
}

// loadSettings merges defaults, the config file and environment, then the
// flags given on the command line
func loadSettings(cmd *cobra.Command) (*settings, error) {
	file, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}

	s := &settings{
		game:        game.NewGameConfig(),
		ui:          uiWindow,
		logLevel:    "info",
		logFile:     file.LogFile,
		scale:       file.Scale,
		spritesheet: file.Spritesheet,
	}
	if err := file.Apply(&s.game); err != nil {
		return nil, err
	}
	if file.UI != "" {
		if s.ui, err = parseUIMode(file.UI); err != nil {
			return nil, err
		}
	}
	if file.LogLevel != "" {
		s.logLevel = file.LogLevel
	}
	if s.keyHold, err = file.KeyHoldDuration(terminal.DefaultKeyHold); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		s.game.Width = flags.width
	}
	if changed("height") {
		s.game.Height = flags.height
	}
	if changed("seed") {
		s.game.Seed = flags.seed
	}
	if changed("tick") {
		s.game.TickPeriod = flags.tick
	}
	if changed("step") {
		s.game.AnimationStep = flags.step
	}
	if changed("ui") {
		s.ui = flags.ui
	}
	if changed("log-level") {
		s.logLevel = flags.logLevel
	}
	if changed("log-file") {
		s.logFile = flags.logFile
	}
	if changed("scale") {
		s.scale = flags.scale
	}
	if changed("spritesheet") {
		s.spritesheet = flags.spritesheet
	}
	if changed("key-hold") {
		s.keyHold = flags.keyHold
	}

	return s, nil
}

// setupLogging configures the standard logger. The terminal UI owns the
// screen, so without a log file its logs are discarded.
func setupLogging(level, path string, quiet bool) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	switch {
	case path != "":
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(file)
		return func() { file.Close() }, nil
	case quiet:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}, nil
}

// runHeadless lets the director play without any display, then prints a
// summary of the run
func runHeadless(out io.Writer, config game.GameConfig) error {
	if config.Director == nil {
		return errors.New("headless play needs a director (--director)")
	}

	g, err := game.NewGame(config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := game.Loop{Game: g}
	runErr := loop.Run(ctx)

	fmt.Fprint(out, g.Result().Serialize())
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	defaults := game.NewGameConfig()
	rootCmd.Flags().IntVarP(&flags.width, "width", "w", defaults.Width, "Width of the maze, in cells (odd; 0 fits the screen)")
	rootCmd.Flags().IntVarP(&flags.height, "height", "h", defaults.Height, "Height of the maze, in cells (odd; 0 fits the screen)")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "Seed for maze generation (0 picks one at random)")
	rootCmd.Flags().DurationVar(&flags.tick, "tick", defaults.TickPeriod, "Time between two game ticks")
	rootCmd.Flags().IntVar(&flags.step, "step", defaults.AnimationStep, fmt.Sprintf("Animation units moved per tick (a cell is %d units)", game.TileSize))
	rootCmd.Flags().Var(newUIModeValue(uiWindow, &flags.ui), "ui", `Where to play.
window: a desktop window
terminal: full-screen in this terminal
headless: no display; needs --director`)
	rootCmd.Flags().BoolVarP(&flags.director, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVarP(&flags.config, "config", "c", "", fmt.Sprintf("YAML config file (default %s, if present)", config.DefaultPath))
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	rootCmd.Flags().Float64Var(&flags.scale, "scale", window.DefaultScale, "Window pixels per maze pixel")
	rootCmd.Flags().StringVar(&flags.spritesheet, "spritesheet", "", "PNG spritesheet replacing the built-in one")
	rootCmd.Flags().DurationVar(&flags.keyHold, "key-hold", terminal.DefaultKeyHold, "Terminal only: how long a key counts as held after it is pressed")

	rootCmd.AddCommand(generateCmd)
}
