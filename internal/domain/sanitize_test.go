package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkeye/Buzz/internal/domain"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "Alex", want: "Alex"},
		{name: "surrounding whitespace trimmed", in: "  Alex  ", want: "Alex"},
		{name: "line breaks stripped", in: "Al\r\nex", want: "Alex"},
		{name: "empty falls back", in: "", want: domain.FallbackName},
		{name: "whitespace only falls back", in: " \r\n ", want: domain.FallbackName},
		{name: "capped at forty runes", in: strings.Repeat("a", 60), want: strings.Repeat("a", 40)},
		{name: "multibyte names count runes", in: strings.Repeat("é", 60), want: strings.Repeat("é", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CleanName(tt.in))
		})
	}
}

func TestCleanCode(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  domain.RoomCode
		valid bool
	}{
		{name: "exact code", in: "1234", want: "1234", valid: true},
		{name: "non-digits dropped", in: "12a3b4", want: "1234", valid: true},
		{name: "long input truncated", in: "987654", want: "9876", valid: true},
		{name: "spaced digits", in: " 56 78 ", want: "5678", valid: true},
		{name: "too short", in: "123", valid: false},
		{name: "no digits", in: "abcd", valid: false},
		{name: "empty", in: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.CleanCode(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSlotKeys(t *testing.T) {
	order := domain.SlotOrder()
	assert.Equal(t, domain.SlotID("contestant-1"), order[0])
	assert.Equal(t, "1", order[0].Key())
	assert.Equal(t, "2", order[1].Key())
	assert.Equal(t, "3", order[2].Key())
	assert.Equal(t, "", domain.SlotID("contestant-9").Key())
}
