package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/ui/components"
	"github.com/devika/grammaroll/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch p.phase {
	case phaseError:
		return renderError(width, height, p.errMsg)
	case phaseLoading:
		return renderLoading(width, height)
	case phaseQuitConfirm:
		return p.renderQuitConfirm(width, height)
	case phaseFeedback:
		return p.renderFeedback(width, height)
	default:
		return p.renderQuestion(width, height)
	}
}

func renderLoading(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Setting up your session..."))
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg) +
		"\n\n" +
		theme.Hint.Render("press any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PracticeScreen) renderQuitConfirm(width, height int) string {
	keep, end := p.quitButtons()
	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End this session?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your progress is saved either way.") +
		"\n\n" +
		keep.View() + "   " + end.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.InfoCard(content, 44))
}

func (p *PracticeScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if p.mode == ModeDiagram {
		b.WriteString(p.renderDiagramPrompt(width))
	} else {
		b.WriteString(p.renderSelectionPrompt(width))
	}

	return b.String()
}

func (p *PracticeScreen) renderStatusLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + levelName(p.Level()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("session %s", shortID(p.svc.SessionID())))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (p *PracticeScreen) renderSelectionPrompt(width int) string {
	var b strings.Builder

	instruction := "Mark the complete subject, then press Enter."
	if p.selector.Target == components.TargetPredicate {
		instruction = "Now mark the complete predicate, then press Enter to submit."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(instruction))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(p.selector.View()))
	b.WriteString("\n\n")

	legend := lipgloss.NewStyle().Background(theme.SubjectHL).Render(" subject ") +
		"  " +
		lipgloss.NewStyle().Background(theme.PredicateHL).Render(" predicate ")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(legend))

	return b.String()
}

func (p *PracticeScreen) renderDiagramPrompt(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(p.exercise.Sentence))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Give every word a place on the diagram."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(p.assign.View()))

	return b.String()
}

func (p *PracticeScreen) renderFeedback(width, height int) string {
	if p.mode == ModeDiagram {
		return p.renderDiagramFeedback(width, height)
	}
	return p.renderSelectionFeedback(width, height)
}

func (p *PracticeScreen) renderSelectionFeedback(width, height int) string {
	out := p.selOut
	var sections []string

	sections = append(sections, verdictLine(out.Correct), "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(p.selector.View()), "")

	scores := fmt.Sprintf("subject %.0f%%   predicate %.0f%%",
		out.Grade.Correctness.CompleteSubject*100,
		out.Grade.Correctness.CompletePredicate*100)
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(scores), "")

	split := out.Grade.PrettySplit
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.SubjectHL).Bold(true).Render("subject:   ")+
			lipgloss.NewStyle().Foreground(theme.Text).Render(split.Subject),
		lipgloss.NewStyle().Foreground(theme.PredicateHL).Bold(true).Render("predicate: ")+
			lipgloss.NewStyle().Foreground(theme.Text).Render(split.Predicate))

	if len(out.Grade.Tips) > 0 {
		sections = append(sections, "", renderTips(out.Grade.Tips))
	}

	if line := p.celebrationLine(out.StreakMilestone, out.Streak); line != "" {
		sections = append(sections, "", line)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PracticeScreen) renderDiagramFeedback(width, height int) string {
	out := p.diagOut
	var sections []string

	sections = append(sections, verdictLine(out.Correct), "")
	sections = append(sections, p.assign.View())

	if len(out.Result.Missing) > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d placement(s) still missing", len(out.Result.Missing))))
	}

	if len(out.Result.Tips) > 0 {
		sections = append(sections, "", renderTips(out.Result.Tips))
	}

	if out.Correct && len(p.exercise.TeachingNotes) > 0 {
		sections = append(sections, "",
			theme.Hint.Render(p.exercise.TeachingNotes[0]))
	}

	if line := p.celebrationLine(out.StreakMilestone, out.Streak); line != "" {
		sections = append(sections, "", line)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PracticeScreen) celebrationLine(milestone bool, streak int) string {
	if milestone {
		return lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("★ %d in a row! ★", streak))
	}
	return theme.Hint.Render(p.svc.Encouragement())
}

func verdictLine(correct bool) string {
	if correct {
		return theme.Correct.Render("✓ Correct!")
	}
	return theme.Incorrect.Render("✗ Not quite")
}

func renderTips(tips []string) string {
	var b strings.Builder
	for i, tip := range tips {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("tip: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(tip))
		if i < len(tips)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
