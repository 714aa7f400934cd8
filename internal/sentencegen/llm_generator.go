package sentencegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/llm"
)

// LLMGenerator implements Generator on an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// sentenceOutput is the raw LLM response before validation.
type sentenceOutput struct {
	Text              string   `json:"text"`
	Tokens            []string `json:"tokens"`
	CompleteSubject   []int    `json:"complete_subject"`
	SimpleSubject     []int    `json:"simple_subject"`
	CompletePredicate []int    `json:"complete_predicate"`
	SimplePredicate   []int    `json:"simple_predicate"`
	Level             int      `json:"level"`
	Pattern           string   `json:"pattern"`
	Tags              []string `json:"tags"`
}

// Generate produces one candidate, running the validator chain before
// returning it.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Candidate, error) {
	ctx = llm.WithPurpose(ctx, "sentence_generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      SentenceSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw sentenceOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	c := &Candidate{
		Sentence: bank.Sentence{
			ID:     "gen-" + uuid.NewString()[:8],
			Text:   raw.Text,
			Tokens: raw.Tokens,
			Spans: bank.Spans{
				CompleteSubject:   raw.CompleteSubject,
				SimpleSubject:     raw.SimpleSubject,
				CompletePredicate: raw.CompletePredicate,
				SimplePredicate:   raw.SimplePredicate,
			},
			Tags:  raw.Tags,
			Level: bank.Level(raw.Level),
		},
		Pattern: raw.Pattern,
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(c, input); verr != nil {
			return nil, verr
		}
	}
	return c, nil
}
