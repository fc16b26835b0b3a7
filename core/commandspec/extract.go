// Package commandspec recovers command metadata from AI-generated
// discord.js slash command source.
//
// The generator is instructed to follow a fixed convention:
//
//	new SlashCommandBuilder()
//	    .setName('weather')
//	    .setDescription('Shows the weather')
//	    .addStringOption(option =>
//	        option.setName('city').setDescription('City name').setRequired(true))
//
// Extraction is a bounded pattern scan over that convention, not a parse.
// The result is always a best guess and never an error.
package commandspec

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"botforge/models"
)

const (
	FallbackName        = "generated-command"
	FallbackDescription = "Generated command"

	// Discord rejects command and option descriptions longer than this.
	MaxDescriptionLength = 100
)

var (
	setNamePattern        = regexp.MustCompile(`\.setName\s*\(\s*['"` + "`" + `]`)
	setDescriptionPattern = regexp.MustCompile(`\.setDescription\s*\(\s*['"` + "`" + `]`)
	setRequiredPattern    = regexp.MustCompile(`\.setRequired\s*\(\s*true\s*\)`)
	addOptionPattern      = regexp.MustCompile(`\.add([A-Za-z]+)Option\s*\(`)
	addAnyPattern         = regexp.MustCompile(`\.add[A-Za-z]+\s*\(`)
	closeCallPattern      = regexp.MustCompile(`^\s*\)`)
)

// Extract returns the descriptor of the command defined in sourceText.
// Missing pieces fall back to FallbackName, FallbackDescription and an
// empty option list.
func Extract(sourceText string) models.CommandDescriptor {
	skel := skeleton(sourceText)
	nested := callSpans(skel, addAnyPattern)

	descriptor := models.CommandDescriptor{
		Name:        FallbackName,
		Description: FallbackDescription,
		Options:     []models.OptionDescriptor{},
	}

	if name, ok := firstCallArgument(sourceText, skel, setNamePattern, 0, len(skel), nested); ok {
		descriptor.Name = name
	}
	if description, ok := firstCallArgument(sourceText, skel, setDescriptionPattern, 0, len(skel), nested); ok {
		descriptor.Description = truncate(description, MaxDescriptionLength)
	}

	for _, m := range addOptionPattern.FindAllStringSubmatchIndex(skel, -1) {
		open := m[1] - 1
		body := span{start: open, end: matchingParen(skel, open)}

		name, ok := firstCallArgument(sourceText, skel, setNamePattern, body.start, body.end, nil)
		if !ok {
			continue
		}
		description, _ := firstCallArgument(sourceText, skel, setDescriptionPattern, body.start, body.end, nil)

		descriptor.Options = append(descriptor.Options, models.OptionDescriptor{
			Type:        strings.ToLower(skel[m[2]:m[3]]),
			Name:        name,
			Description: truncate(description, MaxDescriptionLength),
			Required:    setRequiredPattern.MatchString(skel[body.start:body.end]),
		})
	}

	return descriptor
}

// firstCallArgument finds the first call matched by pattern within
// skel[from:to] whose single argument is a complete string literal, skipping
// matches that fall inside any of the excluded spans.
func firstCallArgument(src, skel string, pattern *regexp.Regexp, from, to int, excluded []span) (string, bool) {
	if to > len(skel) {
		to = len(skel)
	}

	for _, m := range pattern.FindAllStringIndex(skel[from:to], -1) {
		start := from + m[0]
		if insideAny(excluded, start) {
			continue
		}

		literalStart := from + m[1] - 1
		value, end, ok := readLiteral(src, literalStart)
		if !ok || end > to {
			continue
		}
		if !closeCallPattern.MatchString(skel[end:to]) {
			continue
		}
		return value, true
	}

	return "", false
}

// callSpans returns the argument spans of every call matched by pattern.
func callSpans(skel string, pattern *regexp.Regexp) []span {
	var spans []span
	for _, m := range pattern.FindAllStringIndex(skel, -1) {
		open := m[1] - 1
		spans = append(spans, span{start: open, end: matchingParen(skel, open)})
	}
	return spans
}

func insideAny(spans []span, offset int) bool {
	for _, s := range spans {
		if s.contains(offset) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
