package service

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// maxNoteSummaryLen caps the stored note summary length.
const maxNoteSummaryLen = 500

// Redaction patterns, applied in order. The name heuristic matches runs of
// two or more consecutive capitalized words.
var (
	longNumberPattern = regexp.MustCompile(`\d{10,}`)
	emailPattern      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	namePattern       = regexp.MustCompile(`\b(?:[A-Z][a-z]+ )+[A-Z][a-z]+\b`)
)

// SanitizeNote redacts number, email and name shaped substrings from a raw
// note and returns text safe to store as the entry's summary. The result is
// trimmed and truncated to 500 characters. The cap counts runes, not bytes,
// so multi-byte scripts get the full length and never end mid-rune.
func SanitizeNote(raw string) string {
	out := longNumberPattern.ReplaceAllString(raw, "[number]")
	out = emailPattern.ReplaceAllString(out, "[email]")
	out = namePattern.ReplaceAllString(out, "[name]")
	out = strings.TrimSpace(out)
	if runes := []rune(out); len(runes) > maxNoteSummaryLen {
		out = string(runes[:maxNoteSummaryLen])
	}
	return out
}

// NoteHash computes a content hash of the raw note, normalized by
// lowercasing and trimming. Stored for a future dedup feature; nothing
// reads it back today.
func NoteHash(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
