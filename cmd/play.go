package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("mode")
		mode := game.Mode(raw)
		if !mode.Valid() {
			var names []string
			for _, m := range game.Modes {
				names = append(names, string(m))
			}
			return fmt.Errorf("unknown mode %q (valid: %s)", raw, strings.Join(names, ", "))
		}
		return runApp(cmd, mode)
	},
}

func init() {
	playCmd.Flags().String("mode", string(game.ModeTimeAttack), "Game mode to start")
}
