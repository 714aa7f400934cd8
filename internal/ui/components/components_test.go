package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTokenSelectorToggleAndMove(t *testing.T) {
	sel := NewTokenSelector([]string{"The", "dog", "barked", "."})

	sel, _ = sel.Update(key(tea.KeySpace)) // mark "The" as subject
	sel, _ = sel.Update(key(tea.KeyRight))
	sel, _ = sel.Update(key(tea.KeySpace)) // mark "dog"

	got := sel.Selected(TargetSubject)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("subject selection = %v, want [0 1]", got)
	}

	// Toggle off.
	sel, _ = sel.Update(key(tea.KeySpace))
	if got := sel.Selected(TargetSubject); len(got) != 1 || got[0] != 0 {
		t.Errorf("subject selection after toggle = %v, want [0]", got)
	}
}

func TestTokenSelectorSpansAreExclusive(t *testing.T) {
	sel := NewTokenSelector([]string{"Birds", "sing", "."})

	sel, _ = sel.Update(key(tea.KeySpace)) // subject: Birds
	sel.Target = TargetPredicate
	sel, _ = sel.Update(key(tea.KeySpace)) // re-mark same token as predicate

	if got := sel.Selected(TargetSubject); len(got) != 0 {
		t.Errorf("subject selection = %v, want empty after re-mark", got)
	}
	if got := sel.Selected(TargetPredicate); len(got) != 1 || got[0] != 0 {
		t.Errorf("predicate selection = %v, want [0]", got)
	}
}

func TestTokenSelectorCursorBounds(t *testing.T) {
	sel := NewTokenSelector([]string{"a", "b"})

	sel, _ = sel.Update(key(tea.KeyLeft))
	if sel.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 at left edge", sel.Cursor)
	}

	sel, _ = sel.Update(key(tea.KeyRight))
	sel, _ = sel.Update(key(tea.KeyRight))
	if sel.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 at right edge", sel.Cursor)
	}
}

func TestTokenSelectorLockedIgnoresInput(t *testing.T) {
	sel := NewTokenSelector([]string{"a", "b"})
	sel.Locked = true

	sel, _ = sel.Update(key(tea.KeySpace))
	if got := sel.Selected(TargetSubject); len(got) != 0 {
		t.Errorf("locked selector accepted input: %v", got)
	}
}

func TestSlotAssignCycle(t *testing.T) {
	sa := NewSlotAssign(
		[]string{"birds", "sing"},
		[]string{"Birds", "sing"},
		[]string{"spine.subject", "spine.verb"},
	)

	if sa.AllPlaced() {
		t.Fatal("expected unplaced rows initially")
	}

	sa, _ = sa.Update(key(tea.KeyRight)) // first row → spine.subject
	sa, _ = sa.Update(key(tea.KeyDown))
	sa, _ = sa.Update(key(tea.KeyRight)) // second row → spine.subject
	sa, _ = sa.Update(key(tea.KeyRight)) // second row → spine.verb

	if !sa.AllPlaced() {
		t.Fatal("expected all rows placed")
	}

	got := sa.Assignments()
	if got["birds"] != "spine.subject" || got["sing"] != "spine.verb" {
		t.Errorf("assignments = %v", got)
	}
}

func TestSlotAssignCycleWrapsThroughUnplaced(t *testing.T) {
	sa := NewSlotAssign([]string{"a"}, []string{"a"}, []string{"s1", "s2"})

	// Three steps forward wraps back to unplaced.
	for i := 0; i < 3; i++ {
		sa, _ = sa.Update(key(tea.KeyRight))
	}
	if sa.Rows[0].SlotIndex != -1 {
		t.Errorf("slot index = %d, want -1 after wrap", sa.Rows[0].SlotIndex)
	}

	// One step back from unplaced lands on the last slot.
	sa, _ = sa.Update(key(tea.KeyLeft))
	if got := sa.Assignments()["a"]; got != "s2" {
		t.Errorf("assignment = %q, want s2", got)
	}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second"},
		{Label: "third"},
	})

	if m.Selected != 1 {
		t.Errorf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("selection moved onto disabled item: %d", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("selection = %d, want 2", m.Selected)
	}
}
