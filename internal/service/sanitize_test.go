package service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeNote_RedactsPII(t *testing.T) {
	raw := "Call John Smith at 5551234567 or john@x.com"
	got := SanitizeNote(raw)

	for _, token := range []string{"[name]", "[number]", "[email]"} {
		if !strings.Contains(got, token) {
			t.Errorf("expected %s in %q", token, got)
		}
	}
	for _, pii := range []string{"John", "Smith", "5551234567", "john@x.com"} {
		if strings.Contains(got, pii) {
			t.Errorf("PII %q survived sanitization: %q", pii, got)
		}
	}
}

func TestSanitizeNote_Rules(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "short digit runs untouched",
			raw:  "slept 8 hours, woke at 0630",
			want: "slept 8 hours, woke at 0630",
		},
		{
			name: "ten digit run redacted",
			raw:  "my number is 0123456789 now",
			want: "my number is [number] now",
		},
		{
			name: "email redacted",
			raw:  "wrote to help@example.org today",
			want: "wrote to [email] today",
		},
		{
			name: "three capitalized words collapse to one token",
			raw:  "met Anna Maria Lopez downtown",
			want: "met [name] downtown",
		},
		{
			name: "single capitalized word kept",
			raw:  "felt calm on Tuesday",
			want: "felt calm on Tuesday",
		},
		{
			name: "trims whitespace",
			raw:  "  a quiet day  ",
			want: "a quiet day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeNote(tt.raw); got != tt.want {
				t.Errorf("SanitizeNote(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitizeNote_Truncates(t *testing.T) {
	raw := strings.Repeat("x", 600)
	got := SanitizeNote(raw)
	if len(got) != maxNoteSummaryLen {
		t.Errorf("expected %d chars, got %d", maxNoteSummaryLen, len(got))
	}
}

func TestSanitizeNote_TruncatesByRunesNotBytes(t *testing.T) {
	// 200 three-byte runes: under the 500-character cap, must survive whole
	raw := strings.Repeat("猫", 200)
	if got := SanitizeNote(raw); got != raw {
		t.Errorf("expected a 200-rune note to pass through untouched, got %d runes", len([]rune(got)))
	}

	// 600 three-byte runes: cut to exactly 500 runes, still valid UTF-8
	long := strings.Repeat("猫", 600)
	got := SanitizeNote(long)
	if n := len([]rune(got)); n != maxNoteSummaryLen {
		t.Errorf("expected %d runes, got %d", maxNoteSummaryLen, n)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation must not split a rune")
	}
}

func TestNoteHash_NormalizesCaseAndWhitespace(t *testing.T) {
	a := NoteHash("  Felt Better Today  ")
	b := NoteHash("felt better today")
	if a != b {
		t.Error("hash should be identical after lowercasing and trimming")
	}

	c := NoteHash("felt worse today")
	if a == c {
		t.Error("different notes should hash differently")
	}

	if len(a) != 64 {
		t.Errorf("expected 64 hex chars for sha256, got %d", len(a))
	}
}
