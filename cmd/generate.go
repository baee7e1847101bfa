package cmd

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/game"
)

var generateFlags struct {
	width, height int
	seed          int64
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a maze as text",
	Long: `Print a generated maze without playing it.

Walls are drawn as #, floors as spaces, S marks the start and G the goal.
The same size and seed always print the same maze.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := generateFlags.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		maze, err := game.Generate(generateFlags.width, generateFlags.height, rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"seed":   seed,
			"width":  maze.Width(),
			"height": maze.Height(),
			"floors": maze.Floors(),
		}).Debug("Generated maze")

		fmt.Fprint(cmd.OutOrStdout(), maze.String())
		return nil
	},
}

func init() {
	defaults := game.NewGameConfig()
	generateCmd.Flags().IntVarP(&generateFlags.width, "width", "w", defaults.Width, "Width of the maze, in cells (odd)")
	generateCmd.Flags().IntVarP(&generateFlags.height, "height", "h", defaults.Height, "Height of the maze, in cells (odd)")
	generateCmd.Flags().Int64Var(&generateFlags.seed, "seed", 0, "Seed for maze generation (0 picks one at random)")
}
