package diagram

import (
	"strings"
	"testing"
)

func mustExercise(t *testing.T, id string) Exercise {
	t.Helper()
	ex, ok := ExerciseByID(id)
	if !ok {
		t.Fatalf("exercise %q not found", id)
	}
	return ex
}

func optsFor(ex Exercise) Options {
	return Options{Tokens: ex.Tokens, Roles: ex.Roles}
}

func TestValidateExactMatch(t *testing.T) {
	ex := mustExercise(t, "l1-birds-sing")

	// Same pairs, different order.
	placements := []Placement{
		{TokenID: "sing", Slot: slot("spine.verb")},
		{TokenID: "birds", Slot: slot("spine.subject")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if !res.Correct {
		t.Fatal("expected correct")
	}
	if len(res.Missing) != 0 || len(res.Extras) != 0 || len(res.Tips) != 0 {
		t.Errorf("expected empty diagnostics, got %+v", res)
	}
}

func TestValidateAcceptedVariant(t *testing.T) {
	// Swapped modifier ordering matches the listed variant, not the
	// primary answer, and must still be correct.
	ex := mustExercise(t, "l3-quick-fox-jumped")
	placements := []Placement{
		{TokenID: "fox", Slot: slot("spine.subject")},
		{TokenID: "jumped", Slot: slot("spine.verb")},
		{TokenID: "quick", Slot: slot("spine.subject.mod[0]")},
		{TokenID: "the", Slot: slot("spine.subject.mod[1]")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if !res.Correct {
		t.Fatalf("variant placement rejected: %+v", res)
	}
}

func TestValidateCardinalityMismatch(t *testing.T) {
	ex := mustExercise(t, "l1-birds-sing")
	placements := []Placement{
		{TokenID: "birds", Slot: slot("spine.subject")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if res.Correct {
		t.Fatal("incomplete placement must not be correct")
	}
	if len(res.Missing) != 1 || res.Missing[0].TokenID != "sing" {
		t.Errorf("missing = %+v, want sing", res.Missing)
	}
	if len(res.Extras) != 0 {
		t.Errorf("extras = %+v, want none", res.Extras)
	}
}

func TestValidateWrongSlotAppearsInBothDiffs(t *testing.T) {
	ex := mustExercise(t, "l1-birds-sing")
	placements := []Placement{
		{TokenID: "birds", Slot: slot("spine.verb")},
		{TokenID: "sing", Slot: slot("spine.subject")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if res.Correct {
		t.Fatal("swapped placement must not be correct")
	}
	// Both tokens are in the wrong slot: each appears in missing with
	// its canonical slot and in extras with its actual slot.
	if len(res.Missing) != 2 || len(res.Extras) != 2 {
		t.Fatalf("missing=%d extras=%d, want 2 and 2", len(res.Missing), len(res.Extras))
	}
	if res.Missing[0].TokenID != "birds" || res.Missing[0].Slot.Path != "spine.subject" {
		t.Errorf("missing[0] = %+v, want birds at spine.subject", res.Missing[0])
	}
	if res.Extras[0].TokenID != "birds" || res.Extras[0].Slot.Path != "spine.verb" {
		t.Errorf("extras[0] = %+v, want birds at spine.verb", res.Extras[0])
	}
}

func TestValidateMisplacedTipWins(t *testing.T) {
	// birds in the wrong slot is a misplaced token with a known home:
	// the first-preference rule fires with its role guidance and text.
	ex := mustExercise(t, "l1-birds-sing")
	placements := []Placement{
		{TokenID: "birds", Slot: slot("spine.verb")},
		{TokenID: "sing", Slot: slot("spine.subject")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if len(res.Tips) != 1 {
		t.Fatalf("tips = %v, want exactly one", res.Tips)
	}
	tip := res.Tips[0]
	if !strings.Contains(tip, "Subjects sit on the left side of the main line.") {
		t.Errorf("tip missing role guidance: %q", tip)
	}
	if !strings.Contains(tip, `"Birds"`) {
		t.Errorf("tip missing token text: %q", tip)
	}
	if !strings.Contains(tip, "in the subject slot") {
		t.Errorf("tip missing role label: %q", tip)
	}
}

func TestValidateMissingTip(t *testing.T) {
	// Nothing misplaced, one token not placed at all: the missing rule
	// fires for it.
	ex := mustExercise(t, "l1-birds-sing")
	placements := []Placement{
		{TokenID: "birds", Slot: slot("spine.subject")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if len(res.Tips) != 1 {
		t.Fatalf("tips = %v, want exactly one", res.Tips)
	}
	if !strings.Contains(res.Tips[0], `"sing"`) {
		t.Errorf("tip should name the missing token: %q", res.Tips[0])
	}
	if !strings.Contains(res.Tips[0], "vertical bar") {
		t.Errorf("tip should carry verb guidance: %q", res.Tips[0])
	}
}

func TestValidateExtraneousTip(t *testing.T) {
	// A token with no canonical slot at all gets the generic
	// out-of-place tip — but only when nothing is misplaced or missing.
	ex := mustExercise(t, "l1-birds-sing")
	intruder := Token{ID: "ghost", Text: "ghost", POS: []PartOfSpeech{POSNoun}}
	opts := Options{
		Tokens: append(append([]Token{}, ex.Tokens...), intruder),
		Roles:  ex.Roles,
	}
	placements := []Placement{
		{TokenID: "birds", Slot: slot("spine.subject")},
		{TokenID: "sing", Slot: slot("spine.verb")},
		{TokenID: "ghost", Slot: slot("spine.subject.mod[0]")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, opts)

	if res.Correct {
		t.Fatal("extraneous token must fail validation")
	}
	if len(res.Missing) != 0 {
		t.Errorf("missing = %+v, want none", res.Missing)
	}
	if len(res.Tips) != 1 || !strings.Contains(res.Tips[0], `"ghost" looks out of place`) {
		t.Errorf("tips = %v, want out-of-place tip for ghost", res.Tips)
	}
}

func TestValidateCompletelyCompares(t *testing.T) {
	// Level 3: put loudly under the subject instead of the verb. It is
	// an extra with a known home, so the misplaced rule explains the
	// verb-modifier role.
	ex := mustExercise(t, "l3-small-birds-chirped-loudly")
	placements := []Placement{
		{TokenID: "birds", Slot: slot("spine.subject")},
		{TokenID: "chirped", Slot: slot("spine.verb")},
		{TokenID: "the", Slot: slot("spine.subject.mod[0]")},
		{TokenID: "small", Slot: slot("spine.subject.mod[1]")},
		{TokenID: "loudly", Slot: slot("spine.subject.mod[1]")},
	}
	res := Validate(placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))

	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if len(res.Tips) != 1 {
		t.Fatalf("tips = %v", res.Tips)
	}
	if !strings.Contains(res.Tips[0], "Modifiers lean diagonally") {
		t.Errorf("tip should use loudly's primary role (modifier): %q", res.Tips[0])
	}
	if !strings.Contains(res.Tips[0], `"loudly"`) {
		t.Errorf("tip should name loudly: %q", res.Tips[0])
	}
}

func TestRoleLabel(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleSubject, "subject"},
		{RoleDirectObject, "direct object"},
		{RolePredicateAdjective, "predicate adjective"},
		{RoleSubjectModifier, "subject modifier"},
	}
	for _, tt := range tests {
		if got := roleLabel(tt.role); got != tt.want {
			t.Errorf("roleLabel(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestSeedExercisesAreWellFormed(t *testing.T) {
	if err := CheckAll(); err != nil {
		t.Fatalf("seed exercises failed validation: %v", err)
	}
	if len(Exercises()) != 12 {
		t.Errorf("exercise count = %d, want 12", len(Exercises()))
	}
	for _, level := range []int{1, 2, 3} {
		if got := len(ExercisesByLevel(level)); got != 4 {
			t.Errorf("level %d exercise count = %d, want 4", level, got)
		}
	}
}

func TestAnswerAlwaysValidates(t *testing.T) {
	for _, ex := range Exercises() {
		res := Validate(ex.Answer.Placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))
		if !res.Correct {
			t.Errorf("%s: canonical answer rejected: %+v", ex.ID, res)
		}
		for _, variant := range ex.AcceptedVariants {
			res := Validate(variant.Placements, ex.Answer, ex.AcceptedVariants, optsFor(ex))
			if !res.Correct {
				t.Errorf("%s: accepted variant rejected: %+v", ex.ID, res)
			}
		}
	}
}
