package commandspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkeleton(t *testing.T) {
	src := "a('x//y') // c\n/* d */ b(\"q\\\"\")"
	skel := skeleton(src)

	require.Len(t, skel, len(src))
	assert.Equal(t, "a('____')     \n        b(\"___\")", skel)
}

func TestReadLiteral(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value string
		end   int
		ok    bool
	}{
		{name: "single quoted", src: "'ping')", value: "ping", end: 6, ok: true},
		{name: "escaped quote", src: `"say \"hi\""`, value: `say "hi"`, end: 13, ok: true},
		{name: "newline escape", src: "'a\\nb'", value: "a\nb", end: 6, ok: true},
		{name: "backtick spans lines", src: "`a\nb`", value: "a\nb", end: 5, ok: true},
		{name: "unterminated", src: "'open", ok: false},
		{name: "line break in quote", src: "'a\nb'", ok: false},
		{name: "not a quote", src: "ping", ok: false},
		{name: "invalid utf8 replaced", src: "'\xff'", value: "\uFFFD", end: 3, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, end, ok := readLiteral(tt.src, 0)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.value, value)
				assert.Equal(t, tt.end, end)
			}
		})
	}
}
