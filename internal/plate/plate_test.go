package plate

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"asu123x", "ASU123"},
		{"abc", "ABC"},
		{"", ""},
		{"AbC 12", "ABC 12"},
		{"straße", "STRASS"},
		{"ñandú9", "ÑANDÚ9"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeNumber(tt.in); got != tt.want {
				t.Errorf("NormalizeNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeNumberInvariant(t *testing.T) {
	inputs := []string{"a", "abcdefghijkl", "MiXeD cAsE", "12345678", "ßßßßßß", "日本語のテキスト"}
	for _, in := range inputs {
		got := NormalizeNumber(in)
		if utf8.RuneCountInString(got) > MaxNumberLen {
			t.Errorf("NormalizeNumber(%q) = %q exceeds %d runes", in, got, MaxNumberLen)
		}
		if got != strings.ToUpper(got) {
			t.Errorf("NormalizeNumber(%q) = %q is not upper-case", in, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo", 2); got != "hé" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hi", 0); got != "" {
		t.Errorf("Truncate(0) = %q", got)
	}
}
