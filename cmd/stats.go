package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/game"
	"github.com/abhisek/mathrush/internal/player"
	"github.com/abhisek/mathrush/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print profile and best scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		profile := st.LoadProfile(ctx)
		history := st.LoadHistory(ctx)

		fmt.Printf("%s %s — Level %d %s, XP %d\n",
			profile.Avatar, profile.Name, profile.Level, profile.Rank(), profile.XP)
		fmt.Printf("Games played: %d   Best streak: ×%d\n\n", profile.GamesPlayed, profile.BestStreak)

		for _, mode := range game.Modes {
			results := player.BestByMode(history, mode)
			fmt.Printf("%s\n", mode.Label())
			if len(results) == 0 {
				fmt.Println("  no games yet")
				continue
			}
			for i, r := range results {
				fmt.Printf("  %2d. %5d pts  %2d solved  %3.0f%%  %s\n",
					i+1, r.Score, r.Solved, r.Accuracy*100,
					r.Timestamp.Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}
