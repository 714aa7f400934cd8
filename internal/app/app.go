// Package app hosts the root Bubble Tea model: it owns the screen
// router and the shared header/footer chrome.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/router"
	"github.com/devika/grammaroll/internal/screen"
	"github.com/devika/grammaroll/internal/screens/home"
	"github.com/devika/grammaroll/internal/screens/practice"
	"github.com/devika/grammaroll/internal/screens/welcome"
	"github.com/devika/grammaroll/internal/store"
	"github.com/devika/grammaroll/internal/ui/layout"
)

// Options carries the shared dependencies screens need.
type Options struct {
	State  *store.StateRepo
	Events store.EventRepo

	// SkipSplash starts directly on the home screen.
	SkipSplash bool

	// StartMode, when set to practice.ModeSelect or
	// practice.ModeDiagram, opens a session immediately on launch.
	StartMode practice.Mode
}

// levelProvider lets a screen report the difficulty level shown in
// the header.
type levelProvider interface {
	Level() int
}

// streakProvider lets a screen report the streak shown in the header.
type streakProvider interface {
	Streak() int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.State, opts.Events)
	}

	var initial screen.Screen
	if opts.SkipSplash || opts.StartMode != "" {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	cmd := active.Init()
	if m.opts.StartMode != "" {
		push := func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practice.New(m.opts.StartMode, m.opts.State, m.opts.Events),
			}
		}
		return tea.Batch(cmd, push)
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The splash draws the whole frame itself.
	if active != nil && active.Title() == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	title := ""
	level := 1
	streak := 0
	if active != nil {
		title = active.Title()
		if lp, ok := active.(levelProvider); ok {
			level = lp.Level()
		}
		if sp, ok := active.(streakProvider); ok {
			streak = sp.Streak()
		}
	}

	header := layout.RenderHeader(title, level, streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
