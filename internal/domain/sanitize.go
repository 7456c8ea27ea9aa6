package domain

import (
	"strings"
)

const (
	MaxNameLen   = 40
	FallbackName = "Contestant"
	CodeLen      = 4
)

// CleanName normalizes a contestant display name: line breaks stripped,
// whitespace trimmed, capped at MaxNameLen runes. Empty input falls back
// to FallbackName.
func CleanName(raw string) string {
	name := strings.NewReplacer("\r", "", "\n", "").Replace(raw)
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLen {
		name = string(r[:MaxNameLen])
	}
	if name == "" {
		return FallbackName
	}
	return name
}

// CleanCode extracts a room code from user input: digits only, at least
// CodeLen of them, truncated to CodeLen. Reports false when the input
// cannot yield a valid code and the caller should generate one instead.
func CleanCode(raw string) (RoomCode, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < CodeLen {
		return "", false
	}
	return RoomCode(digits[:CodeLen]), true
}
