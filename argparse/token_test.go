package argparse

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		tok  string
		want TokenKind
	}{
		{"", TokenPositional},
		{"file.txt", TokenPositional},
		{"42", TokenPositional},
		{"a-b", TokenPositional},
		{"-i", TokenShortOption},
		{"-intparam", TokenShortOption},
		{"-x-", TokenShortOption},
		{"--a", TokenLongOption},
		{"--intparam", TokenLongOption},
		{"--with-dash", TokenLongOption},
		{"-", TokenMalformed},
		{"--", TokenMalformed},
		{"---", TokenMalformed},
		{"---x", TokenMalformed},
	}

	for _, tt := range tests {
		if got := Classify(tt.tok); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.tok, got, tt.want)
		}
	}
}

func TestTokenKind_IsOption(t *testing.T) {
	if !TokenShortOption.IsOption() || !TokenLongOption.IsOption() {
		t.Error("Expected short and long options to be options")
	}
	if TokenPositional.IsOption() || TokenMalformed.IsOption() {
		t.Error("Expected positional and malformed tokens not to be options")
	}
}
