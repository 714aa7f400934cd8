package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/grammaroll/internal/ui/theme"
)

// SlotRow is one assignable token in a SlotAssign component.
type SlotRow struct {
	TokenID   string
	TokenText string
	SlotIndex int // index into Slots, -1 when unplaced
}

// SlotAssign maps tokens onto diagram slots. Up/down moves between
// tokens, left/right cycles the slot assigned to the current token.
type SlotAssign struct {
	Rows      []SlotRow
	Slots     []string
	Selected  int
	Submitted bool
	// RowResult marks each row correct/incorrect after submission.
	RowResult map[string]bool
}

// NewSlotAssign creates an assigner with every token unplaced.
func NewSlotAssign(tokenIDs, tokenTexts, slots []string) SlotAssign {
	rows := make([]SlotRow, len(tokenIDs))
	for i := range tokenIDs {
		rows[i] = SlotRow{TokenID: tokenIDs[i], TokenText: tokenTexts[i], SlotIndex: -1}
	}
	return SlotAssign{
		Rows:  rows,
		Slots: slots,
	}
}

// Init returns nil.
func (s SlotAssign) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and slot cycling.
func (s SlotAssign) Update(msg tea.Msg) (SlotAssign, tea.Cmd) {
	if s.Submitted {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.Selected > 0 {
			s.Selected--
		}
	case "down", "j":
		if s.Selected < len(s.Rows)-1 {
			s.Selected++
		}
	case "right", "l":
		s.cycle(1)
	case "left", "h":
		s.cycle(-1)
	}

	return s, nil
}

// cycle advances the current row's slot by delta, wrapping through
// the unplaced state at -1.
func (s *SlotAssign) cycle(delta int) {
	if len(s.Rows) == 0 || len(s.Slots) == 0 {
		return
	}
	row := &s.Rows[s.Selected]
	n := len(s.Slots) + 1 // extra state for unplaced
	idx := row.SlotIndex + 1
	idx = (idx + delta + n) % n
	row.SlotIndex = idx - 1
}

// AllPlaced reports whether every token has a slot.
func (s SlotAssign) AllPlaced() bool {
	for _, row := range s.Rows {
		if row.SlotIndex < 0 {
			return false
		}
	}
	return true
}

// Assignments returns token-to-slot pairs for the placed rows.
func (s SlotAssign) Assignments() map[string]string {
	out := make(map[string]string)
	for _, row := range s.Rows {
		if row.SlotIndex >= 0 {
			out[row.TokenID] = s.Slots[row.SlotIndex]
		}
	}
	return out
}

// View renders the assignment rows.
func (s SlotAssign) View() string {
	var out string
	for i, row := range s.Rows {
		slotName := "—"
		if row.SlotIndex >= 0 {
			slotName = s.Slots[row.SlotIndex]
		}

		prefix := "  "
		if i == s.Selected && !s.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%-14s %s", prefix, row.TokenText, slotName)

		switch {
		case s.Submitted && s.RowResult != nil && s.RowResult[row.TokenID]:
			out += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		case s.Submitted && s.RowResult != nil:
			out += lipgloss.NewStyle().Foreground(theme.Error).Render(line) + "\n"
		case i == s.Selected:
			out += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			out += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return out
}
