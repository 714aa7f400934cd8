package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/router"
	"github.com/devika/grammaroll/internal/screen"
	"github.com/devika/grammaroll/internal/store"
	"github.com/devika/grammaroll/internal/ui/components"
	"github.com/devika/grammaroll/internal/ui/layout"
	"github.com/devika/grammaroll/internal/ui/theme"
)

const recentShown = 8

// StatsScreen shows lifetime progress, a seven-day window, and the
// most recent graded attempts.
type StatsScreen struct {
	state  *store.StateRepo
	events store.EventRepo

	record  *progress.Record
	week    progress.RangeStats
	modes   store.AttemptSummary
	loaded  bool
	loadErr string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen over the persisted state.
func New(state *store.StateRepo, events store.EventRepo) *StatsScreen {
	return &StatsScreen{
		state:  state,
		events: events,
	}
}

type statsReadyMsg struct {
	record *progress.Record
	week   progress.RangeStats
	modes  store.AttemptSummary
	err    error
}

func (s *StatsScreen) Init() tea.Cmd {
	state, events := s.state, s.events
	return func() tea.Msg {
		ctx := context.Background()
		msg := statsReadyMsg{record: progress.NewRecord()}

		var repo progress.Repo = progress.NewMemoryRepo()
		if state != nil {
			repo = state
		}
		svc := progress.NewService(repo)

		rec, err := svc.Get(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.record = rec

		now := time.Now()
		week, err := svc.StatsForRange(ctx, now.AddDate(0, 0, -7), now)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.week = week

		if events != nil {
			modes, err := events.AttemptSummarySince(ctx, now.AddDate(0, 0, -30))
			if err == nil {
				msg.modes = modes
			}
		}

		return msg
	}
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsReadyMsg:
		if msg.err != nil {
			s.loadErr = msg.err.Error()
		}
		s.record = msg.record
		s.week = msg.week
		s.modes = msg.modes
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Crunching numbers..."))
	}
	if s.loadErr != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.loadErr))
	}

	cw := components.ContentWidth(width)

	sections := []string{
		components.InfoCard(s.renderLifetime(cw), cw),
		components.InfoCard(s.renderWeek(cw), cw),
	}

	if len(s.record.History) > 0 {
		sections = append(sections, components.InfoCard(s.renderRecent(), cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *StatsScreen) renderLifetime(cw int) string {
	rec := s.record

	accuracy := 0.0
	if rec.TotalQuestions > 0 {
		accuracy = float64(rec.TotalCorrect) / float64(rec.TotalQuestions) * 100
	}

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("All time")

	bar := components.NewProgressBar("accuracy", accuracy/100, true, cw-10)

	lines := []string{
		header,
		"",
		statLine("answered", fmt.Sprintf("%d", rec.TotalQuestions)),
		statLine("correct", fmt.Sprintf("%d", rec.TotalCorrect)),
		statLine("streak", fmt.Sprintf("%d (best %d)", rec.CurrentStreak, rec.LongestStreak)),
		statLine("level", fmt.Sprintf("%d", rec.CurrentDifficultyLevel)),
		"",
		bar.View(),
	}

	if s.modes.Total > 0 {
		lines = append(lines, "",
			statLine("last 30 days", fmt.Sprintf("%d sentences, %d diagrams",
				s.modes.ByMode[store.ModeSelect], s.modes.ByMode[store.ModeDiagram])))
	}

	return strings.Join(lines, "\n")
}

func (s *StatsScreen) renderWeek(cw int) string {
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Last 7 days")

	if s.week.TotalQuestions == 0 {
		return header + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No practice this week yet.")
	}

	return strings.Join([]string{
		header,
		"",
		statLine("answered", fmt.Sprintf("%d", s.week.TotalQuestions)),
		statLine("accuracy", fmt.Sprintf("%.0f%%", s.week.Accuracy)),
		statLine("avg level", fmt.Sprintf("%.1f", s.week.AverageLevel)),
	}, "\n")
}

func (s *StatsScreen) renderRecent() string {
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Recent answers")

	lines := []string{header, ""}
	n := len(s.record.History)
	if n > recentShown {
		n = recentShown
	}
	for _, h := range s.record.History[:n] {
		mark := theme.Correct.Render("✓")
		if !h.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		sentence := h.Sentence
		if len(sentence) > 44 {
			sentence = sentence[:41] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s L%d  %s",
			mark, h.DifficultyLevel,
			lipgloss.NewStyle().Foreground(theme.Text).Render(sentence)))
	}

	return strings.Join(lines, "\n")
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(14).Render(label) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
}
