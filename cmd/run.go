package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Words:     st.WordRepo(),
		Events:    eventRepo,
		Snapshots: st.SnapshotRepo(),
		Analytics: store.NewAnalytics(st),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Story and cloze quizzes will be unavailable.")
	} else {
		opts.Generator = contentgen.New(provider, contentgen.DefaultConfig())
	}

	return app.Run(opts)
}
