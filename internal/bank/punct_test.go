package bank

import "testing"

func TestIsPunct(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{",", true},
		{".", true},
		{";", true},
		{":", true},
		{"!", true},
		{"?", true},
		{"(", true},
		{")", true},
		{"[", true},
		{"]", true},
		{"{", true},
		{"}", true},
		{"'", true},
		{`"`, true},
		{"-", true},
		{"—", true},
		{"–", true},
		{"", false},
		{"a", false},
		{"dog", false},
		{"..", false},
		{"it's", false},
		{"--", false},
	}

	for _, tt := range tests {
		if got := IsPunct(tt.tok); got != tt.want {
			t.Errorf("IsPunct(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}
