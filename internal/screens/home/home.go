package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/router"
	"github.com/devika/grammaroll/internal/screen"
	"github.com/devika/grammaroll/internal/screens/practice"
	"github.com/devika/grammaroll/internal/screens/stats"
	"github.com/devika/grammaroll/internal/store"
	"github.com/devika/grammaroll/internal/ui/components"
	"github.com/devika/grammaroll/internal/ui/layout"
	"github.com/devika/grammaroll/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu   components.Menu
	state  *store.StateRepo
	events store.EventRepo
	record *progress.Record
	level  int

	// Manual level override, opened with "l".
	levelEntry  bool
	levelInput  components.TextInput
	levelErrMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen backed by the persisted learner state.
func New(state *store.StateRepo, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		state:  state,
		events: events,
		level:  1,
	}

	ctx := context.Background()
	if state != nil {
		if rec, err := state.Get(ctx); err == nil {
			h.record = rec
			if rec.CurrentDifficultyLevel > 0 {
				h.level = rec.CurrentDifficultyLevel
			}
		}
		if ds, err := state.Difficulty(ctx); err == nil && ds != nil {
			h.level = ds.Level
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Practice Sentences", Action: func() tea.Cmd {
			return pushCmd(practice.New(practice.ModeSelect, state, events))
		}},
		{Label: "Diagram Exercises", Action: func() tea.Cmd {
			return pushCmd(practice.New(practice.ModeDiagram, state, events))
		}},
		{Label: "Progress & Stats", Action: func() tea.Cmd {
			return pushCmd(stats.New(state, events))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	return h
}

func pushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Level returns the current difficulty level for the header.
func (h *HomeScreen) Level() int {
	return h.level
}

// Streak returns the current answer streak for the header.
func (h *HomeScreen) Streak() int {
	if h.record == nil {
		return 0
	}
	return h.record.CurrentStreak
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.levelEntry {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "L", Description: "Set level"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.levelEntry {
		return h.updateLevelEntry(msg)
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "l" {
		h.levelEntry = true
		h.levelErrMsg = ""
		h.levelInput = components.NewTextInput(fmt.Sprintf("%d", h.level), true, 1)
		return h, h.levelInput.Init()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateLevelEntry(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.levelEntry = false
			return h, nil
		case "enter":
			target, err := h.levelInput.NumericValue()
			if err != nil || target < difficulty.MinLevel || target > difficulty.MaxLevel {
				h.levelInput.Submit(false)
				h.levelErrMsg = fmt.Sprintf("Enter a level from %d to %d.", difficulty.MinLevel, difficulty.MaxLevel)
				return h, nil
			}
			h.levelInput.Submit(true)
			h.applyLevel(target)
			h.levelEntry = false
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.levelInput, cmd = h.levelInput.Update(msg)
	return h, cmd
}

// applyLevel persists a manual level override and logs the transition.
func (h *HomeScreen) applyLevel(target int) {
	from := h.level
	h.level = target
	if h.record != nil {
		h.record.CurrentDifficultyLevel = target
	}
	if h.state == nil || from == target {
		return
	}

	ctx := context.Background()
	engine := difficulty.New(difficulty.MinLevel)
	if ds, err := h.state.Difficulty(ctx); err == nil && ds != nil {
		engine.SetState(*ds)
	}
	engine.SetLevel(target)

	rec := h.record
	if rec == nil {
		rec = progress.NewRecord()
	}
	rec.CurrentDifficultyLevel = target

	newState := engine.State()
	if err := h.state.SaveAll(ctx, rec, &newState); err != nil {
		h.levelErrMsg = "Could not save the new level."
		return
	}
	if h.events != nil {
		_ = h.events.AppendLevelChange(ctx, store.LevelEventData{
			FromLevel: from,
			ToLevel:   target,
			Trigger:   "manual",
		})
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	greeting := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Ready to roll?")
	sections = append(sections, greeting, "")

	if h.record != nil && h.record.TotalQuestions > 0 {
		sections = append(sections, components.InfoCard(h.statsLine(), cw), "")
	}

	if h.levelEntry {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("New level (%d-%d): ", difficulty.MinLevel, difficulty.MaxLevel))
		entry := prompt + h.levelInput.View()
		if h.levelErrMsg != "" {
			entry += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(h.levelErrMsg)
		}
		sections = append(sections, components.InfoCard(entry, cw), "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) statsLine() string {
	rec := h.record
	accuracy := 0.0
	if rec.TotalQuestions > 0 {
		accuracy = float64(rec.TotalCorrect) / float64(rec.TotalQuestions) * 100
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	return dim.Render("answered ") + val.Render(fmt.Sprintf("%d", rec.TotalQuestions)) +
		dim.Render("   accuracy ") + val.Render(fmt.Sprintf("%.0f%%", accuracy)) +
		dim.Render("   best streak ") + val.Render(fmt.Sprintf("%d", rec.LongestStreak))
}
