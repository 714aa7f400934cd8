package diagram

import "fmt"

// CheckExercise validates exercise data integrity: every mapping
// references a real token and a real slot, and every token with roles
// can be placed somewhere. Authoring defects surface here, once, at
// load time, not during validation.
func CheckExercise(ex Exercise) error {
	tokens := make(map[string]bool, len(ex.Tokens))
	for _, tok := range ex.Tokens {
		if tokens[tok.ID] {
			return fmt.Errorf("%s: duplicate token ID %q", ex.ID, tok.ID)
		}
		tokens[tok.ID] = true
	}

	slots := make(map[string][]Role, len(ex.Diagram.Constraints))
	for _, c := range ex.Diagram.Constraints {
		if _, dup := slots[c.Slot.Path]; dup {
			return fmt.Errorf("%s: duplicate slot constraint %q", ex.ID, c.Slot.Path)
		}
		slots[c.Slot.Path] = c.Accepts
	}

	mappings := append([]GroundTruthMapping{ex.Answer}, ex.AcceptedVariants...)
	for _, mapping := range mappings {
		for _, p := range mapping.Placements {
			if !tokens[p.TokenID] {
				return fmt.Errorf("%s: mapping references unknown token %q", ex.ID, p.TokenID)
			}
			if _, ok := slots[p.Slot.Path]; !ok {
				return fmt.Errorf("%s: mapping references unknown slot %q", ex.ID, p.Slot.Path)
			}
		}
	}

	// Every token with roles must be placeable in at least one slot.
	for tokenID, roles := range ex.Roles {
		if !tokens[tokenID] {
			return fmt.Errorf("%s: roles reference unknown token %q", ex.ID, tokenID)
		}
		if len(roles) == 0 {
			continue
		}
		if !placeable(roles, slots) {
			return fmt.Errorf("%s: token %q (roles %v) fits no slot", ex.ID, tokenID, roles)
		}
	}
	return nil
}

// CheckAll validates the whole seed set.
func CheckAll() error {
	seen := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		if seen[ex.ID] {
			return fmt.Errorf("duplicate exercise ID %q", ex.ID)
		}
		seen[ex.ID] = true
		if err := CheckExercise(ex); err != nil {
			return err
		}
	}
	return nil
}

func placeable(roles []Role, slots map[string][]Role) bool {
	for _, accepts := range slots {
		for _, accepted := range accepts {
			for _, r := range roles {
				if r == accepted {
					return true
				}
			}
		}
	}
	return false
}
