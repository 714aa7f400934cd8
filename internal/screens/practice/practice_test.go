package practice

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/grammaroll/internal/router"
	"github.com/devika/grammaroll/internal/ui/components"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// newReadyScreen runs Init synchronously and feeds the resulting
// message back, leaving the screen on its first question.
func newReadyScreen(t *testing.T, mode Mode) *PracticeScreen {
	t.Helper()
	p := New(mode, nil, nil)
	msg := p.Init()()
	s, _ := p.Update(msg)
	p, ok := s.(*PracticeScreen)
	if !ok {
		t.Fatalf("Update returned %T, want *PracticeScreen", s)
	}
	if p.phase != phaseAnswer {
		t.Fatalf("phase = %v after init, want phaseAnswer (err: %s)", p.phase, p.errMsg)
	}
	return p
}

func TestInitServesFirstSentence(t *testing.T) {
	p := newReadyScreen(t, ModeSelect)
	if p.sentence.ID == "" {
		t.Error("expected a sentence after init")
	}
	if len(p.selector.Tokens) == 0 {
		t.Error("expected selector tokens after init")
	}
}

func TestInitServesFirstExercise(t *testing.T) {
	p := newReadyScreen(t, ModeDiagram)
	if p.exercise.ID == "" {
		t.Error("expected an exercise after init")
	}
	if len(p.assign.Rows) != len(p.exercise.Tokens) {
		t.Errorf("assign rows = %d, want %d", len(p.assign.Rows), len(p.exercise.Tokens))
	}
}

func TestCorrectSelectionReachesFeedback(t *testing.T) {
	p := newReadyScreen(t, ModeSelect)

	for _, i := range p.sentence.Spans.CompleteSubject {
		p.selector.Subject[i] = true
	}
	for _, i := range p.sentence.Spans.CompletePredicate {
		p.selector.Predicate[i] = true
	}
	p.selector.Target = components.TargetPredicate

	p.Update(key(tea.KeyEnter))

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %v, want phaseFeedback", p.phase)
	}
	if p.selOut == nil || !p.selOut.Grade.IsCorrect {
		t.Error("expected a correct grade for the ground-truth spans")
	}
	if !p.selector.Locked {
		t.Error("selector should lock after submit")
	}
}

func TestFirstEnterAdvancesToPredicate(t *testing.T) {
	p := newReadyScreen(t, ModeSelect)

	if p.selector.Target != components.TargetSubject {
		t.Fatal("selection should start on the subject")
	}
	p.Update(key(tea.KeyEnter))
	if p.selector.Target != components.TargetPredicate {
		t.Error("first enter should move on to the predicate")
	}
	if p.phase != phaseAnswer {
		t.Error("first enter should not submit")
	}
}

func TestDiagramSubmitRequiresAllPlaced(t *testing.T) {
	p := newReadyScreen(t, ModeDiagram)

	p.Update(key(tea.KeyEnter))
	if p.phase != phaseAnswer {
		t.Error("submit with unplaced tokens should be a no-op")
	}
}

func TestQuitConfirmButtons(t *testing.T) {
	p := newReadyScreen(t, ModeSelect)

	p.Update(key(tea.KeyEscape))
	if p.phase != phaseQuitConfirm {
		t.Fatalf("phase = %v, want phaseQuitConfirm", p.phase)
	}
	if p.quitEnd {
		t.Error("keep-going button should start focused")
	}

	p.Update(key(tea.KeyRight))
	if !p.quitEnd {
		t.Error("right should focus the end-session button")
	}
	p.Update(key(tea.KeyLeft))
	if p.quitEnd {
		t.Error("left should focus the keep-going button")
	}

	// Enter on the focused keep-going button resumes.
	_, cmd := p.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from the keep-going button")
	}
	s, _ := p.Update(cmd())
	if s.(*PracticeScreen).phase != phaseAnswer {
		t.Error("keep going should return to the question")
	}
}

func TestQuitConfirmEndSession(t *testing.T) {
	p := newReadyScreen(t, ModeSelect)

	p.Update(key(tea.KeyEscape))
	_, cmd := p.Update(key('y'))
	if cmd == nil {
		t.Fatal("expected an end-session command")
	}
	msg := cmd()
	done, ok := msg.(sessionDoneMsg)
	if !ok {
		t.Fatalf("expected sessionDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("end session: %v", done.err)
	}

	s, cmd := p.Update(done)
	if cmd == nil {
		t.Fatal("expected a replace command after session end")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("session end should replace the screen with the summary")
	}
	if s.(*PracticeScreen) != p {
		t.Error("screen identity should be stable")
	}
}
