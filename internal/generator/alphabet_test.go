package generator

import (
	"strings"
	"testing"
)

func TestBuildAlphabet(t *testing.T) {
	tests := []struct {
		name           string
		includeDigits  bool
		includeSymbols bool
		want           string
	}{
		{
			name: "letters only",
			want: letterChars,
		},
		{
			name:          "letters and digits",
			includeDigits: true,
			want:          letterChars + digitChars,
		},
		{
			name:           "letters and symbols",
			includeSymbols: true,
			want:           letterChars + symbolChars,
		},
		{
			name:           "everything",
			includeDigits:  true,
			includeSymbols: true,
			want:           letterChars + digitChars + symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAlphabet(tt.includeDigits, tt.includeSymbols)
			if got != tt.want {
				t.Errorf("BuildAlphabet(%v, %v) = %q, want %q", tt.includeDigits, tt.includeSymbols, got, tt.want)
			}
			if len(got) < 52 {
				t.Errorf("BuildAlphabet() length = %d, want >= 52", len(got))
			}
			if !strings.HasPrefix(got, letterChars) {
				t.Errorf("BuildAlphabet() = %q, does not start with the base letters", got)
			}
		})
	}
}

func TestBuildAlphabetDigits(t *testing.T) {
	for _, symbols := range []bool{false, true} {
		with := BuildAlphabet(true, symbols)
		without := BuildAlphabet(false, symbols)

		for _, d := range digitChars {
			if n := strings.Count(with, string(d)); n != 1 {
				t.Errorf("digit %q appears %d times with digits enabled, want 1", d, n)
			}
			if strings.ContainsRune(without, d) {
				t.Errorf("digit %q present with digits disabled", d)
			}
		}
	}
}

func TestBuildAlphabetSizes(t *testing.T) {
	if n := len(letterChars); n != 52 {
		t.Fatalf("base letters = %d, want 52", n)
	}
	if n := len(symbolChars); n != 18 {
		t.Fatalf("symbols = %d, want 18", n)
	}

	all := BuildAlphabet(true, true)
	if len(all) != 80 {
		t.Errorf("full alphabet length = %d, want 80", len(all))
	}

	seen := make(map[rune]bool)
	for _, c := range all {
		if seen[c] {
			t.Errorf("full alphabet repeats %q", c)
		}
		seen[c] = true
	}
}
