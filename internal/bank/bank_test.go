package bank

import "testing"

func TestCheckAll(t *testing.T) {
	if err := CheckAll(); err != nil {
		t.Fatalf("seed bank failed validation: %v", err)
	}
}

func TestByID(t *testing.T) {
	s, err := ByID("s001")
	if err != nil {
		t.Fatalf("ByID(s001): %v", err)
	}
	if s.Text != "The energetic golden retriever behind the fence barked loudly." {
		t.Errorf("unexpected text: %q", s.Text)
	}
	if len(s.Tokens) != 10 {
		t.Errorf("token count = %d, want 10", len(s.Tokens))
	}

	if _, err := ByID("nope"); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestByLevel(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		got := ByLevel(level)
		if len(got) == 0 {
			t.Errorf("level %d has no sentences", level)
		}
		for _, s := range got {
			if s.Level != level {
				t.Errorf("ByLevel(%d) returned %s at level %d", level, s.ID, s.Level)
			}
		}
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in   int
		want Level
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 3},
	}
	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRandomRespectsLevel(t *testing.T) {
	for range 20 {
		s := Random(2)
		if s.Level != 2 {
			t.Fatalf("Random(2) returned %s at level %d", s.ID, s.Level)
		}
	}
}

func TestSpanText(t *testing.T) {
	s, err := ByID("s001")
	if err != nil {
		t.Fatal(err)
	}
	got := s.SpanText(s.Spans.CompleteSubject)
	want := "The energetic golden retriever behind the fence"
	if got != want {
		t.Errorf("SpanText = %q, want %q", got, want)
	}

	// Order of indices must not matter.
	got = s.SpanText([]int{9, 8, 7})
	if got != "barked loudly ." {
		t.Errorf("SpanText (reversed indices) = %q", got)
	}
}

func TestCheckRejectsBadSpans(t *testing.T) {
	s, _ := ByID("s001")
	s.Spans.SimpleSubject = []int{99}
	if err := Check(s); err == nil {
		t.Error("expected out-of-range index to fail Check")
	}

	s, _ = ByID("s001")
	s.Spans.SimpleSubject = []int{7} // not inside complete_subject
	if err := Check(s); err == nil {
		t.Error("expected subset violation to fail Check")
	}
}
