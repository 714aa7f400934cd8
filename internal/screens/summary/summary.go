package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/router"
	"github.com/devika/grammaroll/internal/screen"
	"github.com/devika/grammaroll/internal/ui/components"
	"github.com/devika/grammaroll/internal/ui/layout"
	"github.com/devika/grammaroll/internal/ui/theme"
)

// SummaryScreen shows the end-of-session rollup.
type SummaryScreen struct {
	stats      *progress.SessionStats
	startLevel int
	endLevel   int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary for a finished session. stats may be nil when
// the session ended before any answer was recorded.
func New(stats *progress.SessionStats, startLevel, endLevel int) *SummaryScreen {
	return &SummaryScreen{
		stats:      stats,
		startLevel: startLevel,
		endLevel:   endLevel,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!")

	var body string
	if s.stats == nil || s.stats.QuestionsAttempted == 0 {
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No answers this time. Come back soon!")
	} else {
		body = s.renderStats()
	}

	content := title + "\n\n" + components.InfoCard(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SummaryScreen) renderStats() string {
	st := s.stats

	accuracy := 0.0
	if st.QuestionsAttempted > 0 {
		accuracy = float64(st.CorrectAnswers) / float64(st.QuestionsAttempted) * 100
	}

	var duration time.Duration
	if st.EndTime != nil {
		duration = st.EndTime.Sub(st.StartTime)
	} else {
		duration = time.Since(st.StartTime)
	}

	rows := []string{
		statRow("questions", fmt.Sprintf("%d", st.QuestionsAttempted)),
		statRow("correct", fmt.Sprintf("%d", st.CorrectAnswers)),
		statRow("accuracy", fmt.Sprintf("%.0f%%", accuracy)),
		statRow("time", formatDuration(duration)),
	}

	levelLine := statRow("level", fmt.Sprintf("%d", s.endLevel))
	if s.endLevel > s.startLevel {
		levelLine = statRow("level", fmt.Sprintf("%d → %d  moving up!", s.startLevel, s.endLevel))
	} else if s.endLevel < s.startLevel {
		levelLine = statRow("level", fmt.Sprintf("%d → %d", s.startLevel, s.endLevel))
	}
	rows = append(rows, levelLine)

	return strings.Join(rows, "\n")
}

func statRow(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(12).Render(label) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if mins == 0 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %02ds", mins, secs)
}
