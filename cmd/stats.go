package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
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

		ctx := context.Background()
		svc := progress.NewService(st.StateRepo())

		rec, err := svc.Get(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		if rec.TotalQuestions == 0 {
			fmt.Println("No practice recorded yet. Run `grammaroll play` to get started.")
			return nil
		}

		accuracy := float64(rec.TotalCorrect) / float64(rec.TotalQuestions) * 100

		fmt.Println("Lifetime")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  Answered:       %d\n", rec.TotalQuestions)
		fmt.Printf("  Correct:        %d (%.0f%%)\n", rec.TotalCorrect, accuracy)
		fmt.Printf("  Current streak: %d (best %d)\n", rec.CurrentStreak, rec.LongestStreak)
		fmt.Printf("  Level:          %d\n", rec.CurrentDifficultyLevel)

		now := time.Now()
		week, err := svc.StatsForRange(ctx, now.AddDate(0, 0, -7), now)
		if err != nil {
			return fmt.Errorf("range stats: %w", err)
		}
		if week.TotalQuestions > 0 {
			fmt.Println()
			fmt.Println("Last 7 days")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("  Answered:       %d\n", week.TotalQuestions)
			fmt.Printf("  Correct:        %d (%.0f%%)\n", week.CorrectAnswers, week.Accuracy)
			fmt.Printf("  Average level:  %.1f\n", week.AverageLevel)
		}

		summary, err := st.EventRepo().AttemptSummarySince(ctx, now.AddDate(0, 0, -30))
		if err != nil {
			return fmt.Errorf("attempt summary: %w", err)
		}
		if summary.Total > 0 {
			fmt.Println()
			fmt.Println("Last 30 days by mode")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("  Sentences:      %d\n", summary.ByMode[store.ModeSelect])
			fmt.Printf("  Diagrams:       %d\n", summary.ByMode[store.ModeDiagram])
		}

		if len(rec.Sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 48))
			shown := rec.Sessions
			if len(shown) > 5 {
				shown = shown[:5]
			}
			for _, s := range shown {
				fmt.Printf("  %s  %2d answered, %2d correct\n",
					s.StartTime.Local().Format("2006-01-02 15:04"),
					s.QuestionsAttempted, s.CorrectAnswers)
			}
		}

		return nil
	},
}
