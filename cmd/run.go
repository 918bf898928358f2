package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/app"
	"github.com/abhisek/mathrush/internal/engine"
	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/store"
)

// runApp opens the store, builds the engine, and launches the TUI.
// startMode, when non-empty, skips home and drops straight into a game.
func runApp(cmd *cobra.Command, startMode game.Mode) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eng := engine.New(game.NewGenerator(), st)

	return app.Run(app.Options{
		Engine:    eng,
		Store:     st,
		StartMode: startMode,
	})
}
