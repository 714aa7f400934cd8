package cmd

import (
	"fmt"
	"strings"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/diagram"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse the built-in sentence and exercise banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sentences (optionally filtered by level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")

		var sentences []bank.Sentence
		if level != 0 {
			sentences = bank.ByLevel(bank.Level(level))
			if len(sentences) == 0 {
				return fmt.Errorf("no sentences found for level %d", level)
			}
		} else {
			sentences = bank.All()
		}

		// Header.
		fmt.Printf("%-18s  %5s  %-44s  %s\n", "ID", "Level", "Sentence", "Subject")
		fmt.Println(strings.Repeat("─", 100))

		for _, s := range sentences {
			fmt.Printf("%-18s  %5d  %-44s  %s\n",
				s.ID, s.Level,
				clip(s.Text, 44),
				clip(s.SpanText(s.Spans.CompleteSubject), 28))
		}

		fmt.Printf("\n%d sentences\n", len(sentences))
		return nil
	},
}

var bankDiagramsCmd = &cobra.Command{
	Use:   "diagrams",
	Short: "List diagram exercises (optionally filtered by level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")

		var exercises []diagram.Exercise
		if level != 0 {
			exercises = diagram.ExercisesByLevel(level)
			if len(exercises) == 0 {
				return fmt.Errorf("no exercises found for level %d", level)
			}
		} else {
			exercises = diagram.Exercises()
		}

		// Header.
		fmt.Printf("%-20s  %5s  %6s  %5s  %s\n", "ID", "Level", "Tokens", "Slots", "Sentence")
		fmt.Println(strings.Repeat("─", 96))

		for _, ex := range exercises {
			fmt.Printf("%-20s  %5d  %6d  %5d  %s\n",
				ex.ID, ex.Level, len(ex.Tokens), len(ex.Diagram.Constraints),
				clip(ex.Sentence, 44))
		}

		fmt.Printf("\n%d exercises\n", len(exercises))
		return nil
	},
}

var bankCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate internal consistency of the seed banks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bank.CheckAll(); err != nil {
			return fmt.Errorf("sentence bank: %w", err)
		}
		if err := diagram.CheckAll(); err != nil {
			return fmt.Errorf("diagram bank: %w", err)
		}
		fmt.Printf("OK: %d sentences, %d diagram exercises\n",
			len(bank.All()), len(diagram.Exercises()))
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	bankListCmd.Flags().Int("level", 0, "Filter by level (1-3)")
	bankDiagramsCmd.Flags().Int("level", 0, "Filter by level (1-3)")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankDiagramsCmd)
	bankCmd.AddCommand(bankCheckCmd)
}
