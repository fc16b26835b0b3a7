package commandspec

import (
	"strings"
)

// skeleton returns a copy of src, byte-aligned with it, in which comment
// bytes are blanked to spaces and string literal contents are replaced by
// '_' while the quote characters themselves are kept. Patterns are matched
// against the skeleton so that calls appearing in comments or inside string
// literals are never picked up, and literal values are then read back from
// src at the same offsets.
//
// Regex literals and ${} interpolation in template strings are not
// understood; a quote inside a regex literal will desynchronize the scan.
func skeleton(src string) string {
	const (
		stateCode = iota
		stateLineComment
		stateBlockComment
		stateString
	)

	out := []byte(src)
	state := stateCode
	var quote byte

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch state {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				state = stateLineComment
				out[i] = ' '
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				state = stateBlockComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '\'' || c == '"' || c == '`':
				state = stateString
				quote = c
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
				continue
			}
			out[i] = ' '
		case stateBlockComment:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = stateCode
				continue
			}
			if c != '\n' {
				out[i] = ' '
			}
		case stateString:
			switch {
			case c == '\\' && i+1 < len(src):
				out[i], out[i+1] = '_', '_'
				i++
			case c == quote:
				state = stateCode
			case c == '\n' && quote != '`':
				// unterminated literal; resume scanning code on the next line
				state = stateCode
			default:
				out[i] = '_'
			}
		}
	}

	return string(out)
}

// readLiteral reads the quoted literal that opens at src[start] and returns
// its unescaped value and the offset just past the closing quote. Invalid
// UTF-8 in the value is replaced with U+FFFD.
func readLiteral(src string, start int) (string, int, bool) {
	if start >= len(src) {
		return "", start, false
	}
	quote := src[start]
	if quote != '\'' && quote != '"' && quote != '`' {
		return "", start, false
	}

	var b strings.Builder
	for i := start + 1; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			i++
			switch src[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(src[i])
			}
		case c == quote:
			return strings.ToValidUTF8(b.String(), "\uFFFD"), i + 1, true
		case c == '\n' && quote != '`':
			return "", i, false
		default:
			b.WriteByte(c)
		}
	}

	return "", len(src), false
}

// matchingParen returns the offset of the parenthesis closing the one at
// skel[open], or len(skel) when the call is never closed.
func matchingParen(skel string, open int) int {
	depth := 0
	for i := open; i < len(skel); i++ {
		switch skel[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(skel)
}

type span struct {
	start int
	end   int
}

func (s span) contains(offset int) bool {
	return offset > s.start && offset < s.end
}
