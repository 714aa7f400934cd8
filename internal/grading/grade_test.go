package grading

import (
	"math"
	"testing"

	"github.com/devika/grammaroll/internal/bank"
)

func s001(t *testing.T) bank.Sentence {
	t.Helper()
	s, err := bank.ByID("s001")
	if err != nil {
		t.Fatalf("load s001: %v", err)
	}
	return s
}

func TestIoUBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, 1},
		{"disjoint", []int{1, 2}, []int{3, 4}, 0},
		{"half overlap", []int{1, 2}, []int{2, 3}, 1.0 / 3.0},
		{"subset", []int{1}, []int{1, 2}, 0.5},
		{"one empty", nil, []int{1, 2}, 0},
		{"duplicates collapse", []int{1, 1, 2}, []int{2, 2, 3}, 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IoU(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IoU(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("IoU out of [0,1]: %v", got)
			}
			// Symmetry.
			if rev := IoU(tt.b, tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("IoU not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestGradePerfect(t *testing.T) {
	s := s001(t)
	resp := Grade(Request{
		SentenceID: s.ID,
		Student: Selection{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6},
			CompletePredicate: []int{7, 8, 9},
		},
	}, s)

	if resp.Correctness.CompleteSubject != 1.0 {
		t.Errorf("subject IoU = %v, want 1.0", resp.Correctness.CompleteSubject)
	}
	if resp.Correctness.CompletePredicate != 1.0 {
		t.Errorf("predicate IoU = %v, want 1.0", resp.Correctness.CompletePredicate)
	}
	if !resp.IsCorrect {
		t.Error("expected IsCorrect")
	}
	if len(resp.Tips) != 0 {
		t.Errorf("expected no tips, got %v", resp.Tips)
	}
	if resp.PrettySplit.Subject != "The energetic golden retriever behind the fence" {
		t.Errorf("subject split = %q", resp.PrettySplit.Subject)
	}
	if resp.PrettySplit.Predicate != "barked loudly ." {
		t.Errorf("predicate split = %q", resp.PrettySplit.Predicate)
	}
}

func TestGradeVerbBoundaryTip(t *testing.T) {
	// Subject selection swallows index 7, the main verb. IoU is 7/8 =
	// 0.875 which passes the threshold, but the crosses-verb tip must
	// still fire because 7 is in simple_predicate.
	s := s001(t)
	resp := Grade(Request{
		SentenceID: s.ID,
		Student: Selection{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6, 7},
			CompletePredicate: []int{7, 8, 9},
		},
	}, s)

	if got := resp.Correctness.CompleteSubject; math.Abs(got-0.875) > 1e-9 {
		t.Errorf("subject IoU = %v, want 0.875", got)
	}
	if !resp.IsCorrect {
		t.Error("0.875 should pass the threshold")
	}
	if len(resp.Tips) != 1 {
		t.Fatalf("tips = %v, want exactly the verb-boundary tip", resp.Tips)
	}
	if resp.Tips[0] != tipVerbanchor {
		t.Errorf("tip = %q, want verb-boundary tip", resp.Tips[0])
	}
}

func TestGradeThresholdEdge(t *testing.T) {
	// Synthetic sentence with 10-token subject span: dropping one token
	// gives IoU 9/10 (pass); selecting 4 of 5 non-overlapping gives a
	// sub-threshold score. Exercise exactly-0.8 as a pass.
	s := bank.Sentence{
		ID:     "edge",
		Text:   "a b c d e f g h i j",
		Tokens: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		Spans: bank.Spans{
			CompleteSubject:   []int{0, 1, 2, 3},
			SimpleSubject:     []int{0},
			CompletePredicate: []int{4, 5, 6, 7, 8, 9},
			SimplePredicate:   []int{4},
		},
	}

	// Subject {0,1,2,3,4}: inter 4, union 5 → exactly 0.8.
	resp := Grade(Request{Student: Selection{
		CompleteSubject:   []int{0, 1, 2, 3, 4},
		CompletePredicate: []int{4, 5, 6, 7, 8, 9},
	}}, s)
	if got := resp.Correctness.CompleteSubject; math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("subject IoU = %v, want 0.8", got)
	}
	if !resp.IsCorrect {
		t.Error("exactly 0.8 on both spans must pass")
	}

	// Subject {0,1,2}: inter 3, union 4 → 0.75, fails.
	resp = Grade(Request{Student: Selection{
		CompleteSubject:   []int{0, 1, 2},
		CompletePredicate: []int{4, 5, 6, 7, 8, 9},
	}}, s)
	if resp.IsCorrect {
		t.Error("0.75 subject IoU must fail")
	}
	if len(resp.Tips) == 0 || resp.Tips[0] != tipSubject {
		t.Errorf("expected subject tip first, got %v", resp.Tips)
	}
}

func TestGradePunctuationInvariance(t *testing.T) {
	s := s001(t)
	base := Grade(Request{Student: Selection{
		CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6},
		CompletePredicate: []int{7, 8},
	}}, s)

	// Index 9 is the trailing period; adding it must not move either score.
	withPunct := Grade(Request{Student: Selection{
		CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6, 9},
		CompletePredicate: []int{7, 8, 9},
	}}, s)

	if base.Correctness != withPunct.Correctness {
		t.Errorf("punctuation changed scores: %+v vs %+v", base.Correctness, withPunct.Correctness)
	}
}

func TestGradeEmptySelection(t *testing.T) {
	s := s001(t)
	resp := Grade(Request{}, s)

	if resp.Correctness.CompleteSubject != 0 || resp.Correctness.CompletePredicate != 0 {
		t.Errorf("empty selection must score 0, got %+v", resp.Correctness)
	}
	if resp.IsCorrect {
		t.Error("empty selection must not be correct")
	}
	// Both span tips fire; no verb-boundary tip.
	if len(resp.Tips) != 2 {
		t.Errorf("tips = %v, want subject and predicate tips", resp.Tips)
	}
}

func TestGradeBothSpanTipsAndCrossTip(t *testing.T) {
	// A selection that is bad on both spans and crosses the verb emits
	// all three tips, in order.
	s := s001(t)
	resp := Grade(Request{Student: Selection{
		CompleteSubject:   []int{7, 8},
		CompletePredicate: []int{3},
	}}, s)

	want := []string{tipSubject, tipPredicate, tipVerbanchor}
	if len(resp.Tips) != len(want) {
		t.Fatalf("tips = %v, want %v", resp.Tips, want)
	}
	for i := range want {
		if resp.Tips[i] != want[i] {
			t.Errorf("tips[%d] = %q, want %q", i, resp.Tips[i], want[i])
		}
	}
}

func TestGradeIgnoresOutOfRangeIndices(t *testing.T) {
	s := s001(t)
	// Out-of-range indices participate as set members only; they count
	// against the union but must never panic.
	resp := Grade(Request{Student: Selection{
		CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6, 42},
		CompletePredicate: []int{7, 8, 9, -1},
	}}, s)
	if resp.Correctness.CompleteSubject >= 1.0 {
		t.Error("stray index should dilute the subject score")
	}
}
