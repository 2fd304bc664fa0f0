package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests logged yet.")
			return nil
		}

		fmt.Printf("%-5s %-16s %-12s %-26s %7s %7s %7s %s\n",
			"ID", "WHEN", "PURPOSE", "MODEL", "IN", "OUT", "MS", "OK")
		for _, ev := range events {
			// Purpose filtering happens here; the event log is small
			// enough that a query-side filter is not worth a column index.
			if purpose != "" && ev.Purpose != purpose {
				continue
			}
			ok := "yes"
			if !ev.Success {
				ok = "NO"
			}
			model := ev.Model
			if len(model) > 26 {
				model = model[:26]
			}
			fmt.Printf("%-5d %-16s %-12s %-26s %7d %7d %7d %s\n",
				ev.ID,
				ev.Timestamp.Local().Format("Jan 02 15:04:05"),
				ev.Purpose,
				model,
				ev.InputTokens,
				ev.OutputTokens,
				ev.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response bodies for one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ev, err := s.EventRepo().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if ev == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("ID:       %d\n", ev.ID)
		fmt.Printf("When:     %s\n", ev.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider: %s\n", ev.Provider)
		fmt.Printf("Model:    %s\n", ev.Model)
		fmt.Printf("Purpose:  %s\n", ev.Purpose)
		fmt.Printf("Tokens:   %d in, %d out\n", ev.InputTokens, ev.OutputTokens)
		fmt.Printf("Latency:  %dms\n", ev.LatencyMs)
		if !ev.Success {
			fmt.Printf("Error:    %s\n", ev.ErrorMessage)
		}

		printBody := func(label, body string) {
			fmt.Printf("\n--- %s ---\n", label)
			if body == "" {
				fmt.Println("(not captured)")
				return
			}
			fmt.Println(body)
		}
		printBody("REQUEST", ev.RequestBody)
		printBody("RESPONSE", ev.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("By purpose:")
		fmt.Printf("  %-14s %6s %10s %10s %8s\n", "PURPOSE", "CALLS", "IN", "OUT", "AVG MS")
		var calls, in, out int
		for _, u := range byPurpose {
			fmt.Printf("  %-14s %6d %10d %10d %8d\n",
				u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			calls += u.Calls
			in += u.InputTokens
			out += u.OutputTokens
		}
		fmt.Printf("  %-14s %6d %10d %10d\n", "total", calls, in, out)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("By model (estimated cost, USD):")
		fmt.Printf("  %-30s %6s %10s %10s %10s\n", "MODEL", "CALLS", "IN", "OUT", "COST")
		var total float64
		var unpriced []string
		for _, u := range byModel {
			name := u.Model
			if len(name) > 30 {
				name = name[:30]
			}
			pricing := llm.LookupCost(u.Model)
			if pricing == nil {
				unpriced = append(unpriced, u.Model)
				fmt.Printf("  %-30s %6d %10d %10d %10s\n",
					name, u.Calls, u.InputTokens, u.OutputTokens, "?")
				continue
			}
			c := pricing.Cost(u.InputTokens, u.OutputTokens)
			total += c
			fmt.Printf("  %-30s %6d %10d %10d %10s\n",
				name, u.Calls, u.InputTokens, u.OutputTokens, formatCost(c))
		}

		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		fmt.Printf("  %-30s %6s %10s %10s %10s\n", label, "", "", "", formatCost(total))
		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing data for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. story-gen, cloze-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
