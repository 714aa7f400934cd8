package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/devika/grammaroll/internal/llm"
	"github.com/devika/grammaroll/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.EventRepo().RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		// Header.
		fmt.Printf("%-6s  %-19s  %-20s  %-28s  %-6s  %-6s  %-7s  %-8s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 114))

		var totalCost float64
		var unpriced bool
		for _, r := range records {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			costStr := "?"
			if c := llm.LookupCost(r.Model); c != nil {
				usd := c.Cost(r.InputTokens, r.OutputTokens)
				totalCost += usd
				costStr = formatCost(usd)
			} else {
				unpriced = true
			}
			fmt.Printf("%-6d  %-19s  %-20s  %-28s  %-6d  %-6d  %-7d  %-8s  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				clip(r.Model, 28),
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				costStr,
				ok,
			)
			if !r.Success && r.ErrorMessage != "" {
				fmt.Printf("        error: %s\n", clip(r.ErrorMessage, 90))
			}
		}

		label := "Total estimated cost"
		if unpriced {
			label = "Total estimated cost (partial)"
		}
		fmt.Printf("\n%s: %s\n", label, formatCost(totalCost))
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
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. sentence_generation)")

	llmCmd.AddCommand(llmListCmd)
}
