package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/ui/theme"
)

// SpanTarget identifies which span the selector is currently marking.
type SpanTarget int

const (
	TargetSubject SpanTarget = iota
	TargetPredicate
)

// TokenSelector lets the learner mark token spans in a sentence.
// Tokens are toggled in and out of the active span with the space bar.
type TokenSelector struct {
	Tokens    []string
	Cursor    int
	Target    SpanTarget
	Subject   map[int]bool
	Predicate map[int]bool
	Locked    bool
}

// NewTokenSelector creates a selector over the given tokens with the
// subject span active first.
func NewTokenSelector(tokens []string) TokenSelector {
	return TokenSelector{
		Tokens:    tokens,
		Subject:   make(map[int]bool),
		Predicate: make(map[int]bool),
	}
}

// Init returns nil.
func (t TokenSelector) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and span toggling.
func (t TokenSelector) Update(msg tea.Msg) (TokenSelector, tea.Cmd) {
	if t.Locked {
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if t.Cursor > 0 {
			t.Cursor--
		}
	case "right", "l":
		if t.Cursor < len(t.Tokens)-1 {
			t.Cursor++
		}
	case "space", " ":
		t.toggle(t.Cursor)
	}

	return t, nil
}

// toggle flips the cursor token's membership in the active span. A
// token can belong to one span only, so marking it here removes it
// from the other span.
func (t *TokenSelector) toggle(i int) {
	active, other := t.Subject, t.Predicate
	if t.Target == TargetPredicate {
		active, other = t.Predicate, t.Subject
	}
	if active[i] {
		delete(active, i)
		return
	}
	delete(other, i)
	active[i] = true
}

// Selected returns the marked indices for a span in ascending order.
func (t TokenSelector) Selected(target SpanTarget) []int {
	marks := t.Subject
	if target == TargetPredicate {
		marks = t.Predicate
	}
	out := make([]int, 0, len(marks))
	for i := range t.Tokens {
		if marks[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the sentence with span highlights and the cursor.
func (t TokenSelector) View() string {
	var s string
	for i, tok := range t.Tokens {
		style := lipgloss.NewStyle().Foreground(theme.Text)

		switch {
		case t.Subject[i]:
			style = style.Background(theme.SubjectHL)
		case t.Predicate[i]:
			style = style.Background(theme.PredicateHL)
		}

		if i == t.Cursor && !t.Locked {
			style = style.Underline(true).Bold(true)
		}

		s += style.Render(tok)
		if i < len(t.Tokens)-1 {
			s += " "
		}
	}
	return s
}
