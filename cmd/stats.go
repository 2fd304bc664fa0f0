package cmd

import (
	"fmt"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		counts, total, err := st.WordRepo().TierCounts(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Words: %d\n", total)
		for _, tier := range []string{"new", "in_progress", "needs_review", "mastered"} {
			fmt.Printf("  %-13s %d\n", tier, counts[tier])
		}

		sessions, err := st.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("\nNo sessions yet.")
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, s := range sessions {
			fmt.Printf("  %s  %-9s %2d words  %3.0f%%  score %d\n",
				s.Timestamp.Format("2006-01-02 15:04"),
				s.QuizType, s.TotalPlayed, s.Accuracy*100, s.Score)
		}
		return nil
	},
}
