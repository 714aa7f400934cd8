package practice

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/diagram"
	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/grading"
	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/router"
	"github.com/devika/grammaroll/internal/screen"
	"github.com/devika/grammaroll/internal/screens/summary"
	sess "github.com/devika/grammaroll/internal/session"
	"github.com/devika/grammaroll/internal/store"
	"github.com/devika/grammaroll/internal/ui/components"
	"github.com/devika/grammaroll/internal/ui/layout"
)

// Mode selects which exercise type the screen runs.
type Mode string

const (
	ModeSelect  Mode = "select"
	ModeDiagram Mode = "diagram"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswer
	phaseFeedback
	phaseQuitConfirm
	phaseError
)

// PracticeScreen drives one practice session, either subject/predicate
// selection or diagram placement.
type PracticeScreen struct {
	mode   Mode
	state  *store.StateRepo
	events store.EventRepo

	svc    *sess.Service
	engine *difficulty.Engine
	prog   *progress.Service

	phase   phase
	errMsg  string
	quitEnd bool // which quit-confirm button is focused

	// Selection mode.
	sentence bank.Sentence
	selector components.TokenSelector
	selOut   *sess.SelectionOutcome

	// Diagram mode.
	exercise diagram.Exercise
	assign   components.SlotAssign
	diagOut  *sess.DiagramOutcome
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given mode.
func New(mode Mode, state *store.StateRepo, events store.EventRepo) *PracticeScreen {
	return &PracticeScreen{
		mode:   mode,
		state:  state,
		events: events,
	}
}

// sessionReadyMsg carries the initialized session service.
type sessionReadyMsg struct {
	svc    *sess.Service
	engine *difficulty.Engine
	prog   *progress.Service
	err    error
}

// sessionDoneMsg signals that the end-of-session flow finished.
type sessionDoneMsg struct {
	stats *progress.SessionStats
	start int
	end   int
	err   error
}

func (p *PracticeScreen) Init() tea.Cmd {
	state, events := p.state, p.events
	return func() tea.Msg {
		ctx := context.Background()

		engine := difficulty.New(1)
		var repo progress.Repo
		if state != nil {
			repo = state
			if ds, err := state.Difficulty(ctx); err == nil && ds != nil {
				engine.SetState(*ds)
			}
		} else {
			repo = progress.NewMemoryRepo()
		}

		prog := progress.NewService(repo)
		svc := sess.NewService(engine, prog, events)
		if err := svc.Start(ctx); err != nil {
			return sessionReadyMsg{err: err}
		}

		return sessionReadyMsg{svc: svc, engine: engine, prog: prog}
	}
}

func (p *PracticeScreen) Title() string {
	if p.mode == ModeDiagram {
		return "Diagram"
	}
	return "Practice"
}

// Level returns the engine level for the header, 1 before init.
func (p *PracticeScreen) Level() int {
	if p.svc == nil {
		return 1
	}
	return p.svc.Level()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
			{Key: "Esc", Description: "Finish"},
		}
	case phaseAnswer:
		if p.mode == ModeDiagram {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Token"},
				{Key: "←→", Description: "Slot"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Finish"},
			}
		}
		hints := []layout.KeyHint{
			{Key: "←→", Description: "Move"},
			{Key: "Space", Description: "Mark"},
		}
		if p.selector.Target == components.TargetSubject {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Predicate next"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Finish"})
	}
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.err != nil {
			p.phase = phaseError
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.svc = msg.svc
		p.engine = msg.engine
		p.prog = msg.prog
		p.nextQuestion()
		return p, nil

	case sessionDoneMsg:
		if msg.err != nil {
			p.phase = phaseError
			p.errMsg = msg.err.Error()
			return p, nil
		}
		sum := summary.New(msg.stats, msg.start, msg.end)
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: sum}
		}

	case resumeMsg:
		p.phase = phaseAnswer
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

// quitButtons returns the quit-confirm buttons with focus applied.
func (p *PracticeScreen) quitButtons() (keep, end components.Button) {
	keep = components.NewButton("Keep going", !p.quitEnd, func() tea.Cmd {
		return func() tea.Msg { return resumeMsg{} }
	})
	end = components.NewButton("End session", p.quitEnd, func() tea.Cmd {
		return p.endSession()
	})
	return keep, end
}

// resumeMsg dismisses the quit confirmation.
type resumeMsg struct{}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseError:
		return p, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return p, p.endSession()
		case "n", "N", "esc":
			p.phase = phaseAnswer
			return p, nil
		case "left", "right", "h", "l", "tab":
			p.quitEnd = !p.quitEnd
			return p, nil
		}
		keep, end := p.quitButtons()
		var cmd tea.Cmd
		if p.quitEnd {
			_, cmd = end.Update(msg)
		} else {
			_, cmd = keep.Update(msg)
		}
		return p, cmd

	case phaseFeedback:
		if key == "esc" {
			return p, p.endSession()
		}
		p.nextQuestion()
		return p, nil

	case phaseAnswer:
		if key == "esc" {
			p.phase = phaseQuitConfirm
			p.quitEnd = false
			return p, nil
		}
		if key == "enter" {
			return p.handleEnter()
		}
		if p.mode == ModeDiagram {
			var cmd tea.Cmd
			p.assign, cmd = p.assign.Update(msg)
			return p, cmd
		}
		if key == "tab" {
			p.toggleTarget()
			return p, nil
		}
		var cmd tea.Cmd
		p.selector, cmd = p.selector.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) toggleTarget() {
	if p.selector.Target == components.TargetSubject {
		p.selector.Target = components.TargetPredicate
	} else {
		p.selector.Target = components.TargetSubject
	}
}

func (p *PracticeScreen) handleEnter() (screen.Screen, tea.Cmd) {
	if p.mode == ModeDiagram {
		return p.submitDiagram()
	}

	// First enter moves on to marking the predicate, second submits.
	if p.selector.Target == components.TargetSubject {
		p.selector.Target = components.TargetPredicate
		return p, nil
	}
	return p.submitSelection()
}

func (p *PracticeScreen) submitSelection() (screen.Screen, tea.Cmd) {
	out, err := p.svc.SubmitSelection(context.Background(), p.sentence, grading.Selection{
		CompleteSubject:   p.selector.Selected(components.TargetSubject),
		CompletePredicate: p.selector.Selected(components.TargetPredicate),
	})
	if err != nil {
		p.phase = phaseError
		p.errMsg = err.Error()
		return p, nil
	}
	p.selOut = out
	p.selector.Locked = true
	p.phase = phaseFeedback
	return p, nil
}

func (p *PracticeScreen) submitDiagram() (screen.Screen, tea.Cmd) {
	if !p.assign.AllPlaced() {
		return p, nil
	}

	var placements []diagram.Placement
	for tokenID, slotPath := range p.assign.Assignments() {
		placements = append(placements, diagram.Placement{
			TokenID: tokenID,
			Slot:    diagram.SlotID{Path: slotPath},
		})
	}

	out, err := p.svc.SubmitDiagram(context.Background(), p.exercise, placements)
	if err != nil {
		p.phase = phaseError
		p.errMsg = err.Error()
		return p, nil
	}
	p.diagOut = out

	p.assign.Submitted = true
	p.assign.RowResult = p.rowResults(placements, out.Result)
	p.phase = phaseFeedback
	return p, nil
}

// rowResults marks each placed token correct unless it shows up in the
// result's extras.
func (p *PracticeScreen) rowResults(placements []diagram.Placement, result diagram.Result) map[string]bool {
	extras := make(map[string]bool)
	for _, e := range result.Extras {
		extras[e.TokenID] = true
	}
	rows := make(map[string]bool, len(placements))
	for _, pl := range placements {
		rows[pl.TokenID] = !extras[pl.TokenID]
	}
	return rows
}

// nextQuestion pulls the next sentence or exercise from the session.
func (p *PracticeScreen) nextQuestion() {
	p.selOut = nil
	p.diagOut = nil

	if p.mode == ModeDiagram {
		ex, ok := p.svc.NextExercise()
		if !ok {
			p.phase = phaseError
			p.errMsg = "no diagram exercises available"
			return
		}
		p.exercise = ex
		p.assign = newAssign(ex)
		p.phase = phaseAnswer
		return
	}

	p.sentence = p.svc.NextSentence()
	p.selector = components.NewTokenSelector(p.sentence.Tokens)
	p.phase = phaseAnswer
}

// newAssign builds a slot assigner from the exercise's tokens and the
// slots its diagram constraints name.
func newAssign(ex diagram.Exercise) components.SlotAssign {
	ids := make([]string, len(ex.Tokens))
	texts := make([]string, len(ex.Tokens))
	for i, tok := range ex.Tokens {
		ids[i] = tok.ID
		texts[i] = tok.Text
	}

	slots := make([]string, 0, len(ex.Diagram.Constraints))
	for _, c := range ex.Diagram.Constraints {
		slots = append(slots, c.Slot.Path)
	}

	return components.NewSlotAssign(ids, texts, slots)
}

// endSession closes out the session, persists state, and hands off to
// the summary screen.
func (p *PracticeScreen) endSession() tea.Cmd {
	svc, engine, prog, state := p.svc, p.engine, p.prog, p.state
	return func() tea.Msg {
		ctx := context.Background()
		start := svc.StartLevel()
		end := svc.Level()

		rec, err := prog.Get(ctx)
		if err != nil {
			return sessionDoneMsg{err: err}
		}
		stats := rec.CurrentSession

		if err := svc.End(ctx); err != nil {
			return sessionDoneMsg{err: err}
		}

		if state != nil {
			rec, err = prog.Get(ctx)
			if err != nil {
				return sessionDoneMsg{err: err}
			}
			es := engine.State()
			if err := state.SaveAll(ctx, rec, &es); err != nil {
				return sessionDoneMsg{err: err}
			}
		}

		return sessionDoneMsg{stats: stats, start: start, end: end}
	}
}

func levelName(level int) string {
	return fmt.Sprintf("Level %d", level)
}
