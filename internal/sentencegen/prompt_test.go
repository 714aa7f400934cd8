package sentencegen

import (
	"strings"
	"testing"
)

func TestPriorList(t *testing.T) {
	tests := []struct {
		name  string
		prior []string
		max   int
		want  string
	}{
		{"empty", nil, 5, "None"},
		{"one", []string{"Birds sing."}, 5, "1. Birds sing."},
		{"two", []string{"Birds sing.", "Dogs bark."}, 5, "1. Birds sing.\n2. Dogs bark."},
		{"truncated to most recent", []string{"a", "b", "c", "d"}, 2, "1. c\n2. d"},
		{"zero max keeps all", []string{"a", "b"}, 0, "1. a\n2. b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priorList(tt.prior, tt.max); got != tt.want {
				t.Errorf("priorList() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Level:          3,
		Pattern:        PatternCompoundSubject,
		PriorSentences: []string{"The cat and the dog played."},
	}, DefaultConfig())

	for _, want := range []string{"Level: 3", "Pattern: compound-subject", "1. The cat and the dog played."} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessageOmitsEmptyPattern(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Level: 1}, DefaultConfig())
	if strings.Contains(msg, "Pattern:") {
		t.Errorf("message should omit pattern line:\n%s", msg)
	}
}
