package core

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "bot prefix", prefix: "b"},
		{name: "command prefix", prefix: "cmd"},
		{name: "uppercase prefix gets lowercased", prefix: "ENV"},
		{name: "prefix with spaces gets trimmed", prefix: "  b  "},
	}

	fullPattern := regexp.MustCompile(`^[a-z0-9]+_[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewID(tt.prefix)

			expectedPrefix := strings.ToLower(strings.TrimSpace(tt.prefix)) + "_"
			assert.True(t, strings.HasPrefix(got, expectedPrefix), "NewID() = %v, want prefix %v", got, expectedPrefix)
			assert.Len(t, strings.TrimPrefix(got, expectedPrefix), 26)
			assert.Regexp(t, fullPattern, got)
		})
	}
}

func TestNewIDPanic(t *testing.T) {
	for _, prefix := range []string{"", "   "} {
		assert.Panics(t, func() { NewID(prefix) })
	}
}

func TestNewIDUniqueness(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("b")
		assert.False(t, ids[id], "duplicate ID: %v", id)
		ids[id] = true
	}
}

func TestIsValidULID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "generated bot id", id: NewID("b"), want: true},
		{name: "generated command id", id: NewID("cmd"), want: true},
		{name: "empty string", id: "", want: false},
		{name: "no underscore separator", id: "b01G0EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "multiple underscores", id: "b_01G0_EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "empty prefix", id: "_01G0EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "uppercase prefix", id: "BOT_01G0EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "ULID part too short", id: "b_01G0EZ1XTM37C5X11SQTDNCT", want: false},
		{name: "invalid ULID characters", id: "b_01G0EZ1XTM37C5X11SQTDNCTL1", want: false},
		{name: "lowercase ULID part", id: "b_01g0ez1xtm37c5x11sqtdnctm1", want: false},
		{name: "random string", id: "not-a-ulid-at-all", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidULID(tt.id))
		})
	}
}
