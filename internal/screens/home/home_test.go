package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/grammaroll/internal/router"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSelectPushesPractice(t *testing.T) {
	h := New(nil, nil)

	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from menu selection")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
}

func TestLevelOverrideApplies(t *testing.T) {
	h := New(nil, nil)

	h.Update(key('l'))
	if !h.levelEntry {
		t.Fatal("expected level entry mode after pressing l")
	}

	h.levelInput.Model.SetValue("4")
	h.Update(key(tea.KeyEnter))

	if h.levelEntry {
		t.Error("level entry should close after a valid submit")
	}
	if h.Level() != 4 {
		t.Errorf("Level() = %d, want 4", h.Level())
	}
}

func TestLevelOverrideRejectsOutOfRange(t *testing.T) {
	h := New(nil, nil)

	h.Update(key('l'))
	h.levelInput.Model.SetValue("9")
	h.Update(key(tea.KeyEnter))

	if !h.levelEntry {
		t.Error("level entry should stay open after an invalid submit")
	}
	if h.levelErrMsg == "" {
		t.Error("expected an error message for an out-of-range level")
	}
	if h.Level() != 1 {
		t.Errorf("Level() = %d, want unchanged 1", h.Level())
	}
}

func TestLevelOverrideCancel(t *testing.T) {
	h := New(nil, nil)

	h.Update(key('l'))
	h.Update(key(tea.KeyEscape))

	if h.levelEntry {
		t.Error("escape should close level entry")
	}
	if h.Level() != 1 {
		t.Errorf("Level() = %d, want unchanged 1", h.Level())
	}
}

func TestViewShowsGreeting(t *testing.T) {
	h := New(nil, nil)

	view := h.View(100, 30)
	if !strings.Contains(view, "Ready to roll?") {
		t.Error("expected greeting in the home view")
	}
	if !strings.Contains(view, "Practice Sentences") {
		t.Error("expected menu items in the home view")
	}
}
