package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/llm"
	"github.com/devika/grammaroll/internal/sentencegen"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate candidate sentences with an LLM (no database)",
	Long: `Generate annotated sentence candidates for the seed bank.

This is a stateless authoring tool — nothing is stored. Candidates that pass
validation are printed for review; keepers are promoted into the bank by hand.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().Int("level", 1, "Target difficulty band (1-3)")
	genCmd.Flags().String("pattern", "", "Sentence pattern: simple, compound-subject, or compound-predicate")
	genCmd.Flags().Int("count", 5, "Number of candidates to generate")
}

func runGen(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	pattern, _ := cmd.Flags().GetString("pattern")
	count, _ := cmd.Flags().GetInt("count")

	if level < int(bank.MinLevel) || level > int(bank.MaxLevel) {
		return fmt.Errorf("level must be between %d and %d", bank.MinLevel, bank.MaxLevel)
	}
	switch pattern {
	case "", sentencegen.PatternSimple, sentencegen.PatternCompoundSubject, sentencegen.PatternCompoundPredicate:
	default:
		return fmt.Errorf("invalid pattern %q", pattern)
	}

	// No EventRepo — logging skipped for this stateless tool.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := sentencegen.New(provider, sentencegen.DefaultConfig())

	fmt.Printf("Generating %d level-%d candidates", count, level)
	if pattern != "" {
		fmt.Printf(" (%s)", pattern)
	}
	fmt.Println("...")
	fmt.Println()

	prior := make([]string, 0, count)
	for _, s := range bank.ByLevel(bank.Level(level)) {
		prior = append(prior, s.Text)
	}

	var kept int
	for i := 1; i <= count; i++ {
		c, err := gen.Generate(ctx, sentencegen.GenerateInput{
			Level:          bank.Level(level),
			Pattern:        pattern,
			PriorSentences: prior,
		})
		if err != nil {
			fmt.Printf("Candidate %d: %v\n\n", i, err)
			continue
		}
		kept++
		prior = append(prior, c.Sentence.Text)
		printCandidate(i, count, c)
	}

	fmt.Printf("── %d/%d candidates passed validation ──\n", kept, count)
	return nil
}

func printCandidate(i, count int, c *sentencegen.Candidate) {
	s := c.Sentence
	fmt.Printf("── Candidate %d/%d ──\n", i, count)
	fmt.Println(s.Text)
	fmt.Printf("  pattern:   %s\n", c.Pattern)
	fmt.Printf("  tokens:    %s\n", strings.Join(s.Tokens, " | "))
	fmt.Printf("  subject:   %s (simple: %s)\n",
		s.SpanText(s.Spans.CompleteSubject), s.SpanText(s.Spans.SimpleSubject))
	fmt.Printf("  predicate: %s (simple: %s)\n",
		s.SpanText(s.Spans.CompletePredicate), s.SpanText(s.Spans.SimplePredicate))
	fmt.Println()
}
