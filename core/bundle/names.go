package bundle

import (
	"regexp"
	"strings"
)

const (
	defaultManifestName = "discord-bot"
	defaultFileName     = "command"
	defaultSlashName    = "command"

	// Discord limits chat-input command names to 32 characters.
	maxSlashNameLength = 32
)

var (
	manifestNameInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	fileNameInvalid     = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	slashNameInvalid    = regexp.MustCompile(`[^a-z0-9_-]+`)
	envKeyInvalid       = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// ManifestName derives the package manifest name from a bot name: lower-cased,
// with every character outside [a-z0-9-] replaced by '-'.
func ManifestName(botName string) string {
	name := manifestNameInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(botName)), "-")
	if name == "" {
		return defaultManifestName
	}
	return name
}

// ArchiveName is the file name suggested to the packaging step.
func ArchiveName(botName string) string {
	return ManifestName(botName) + "-bot.zip"
}

// CommandFileName maps a command name to its module file name (without
// extension): every character outside [a-zA-Z0-9_-] becomes '_'.
func CommandFileName(commandName string) string {
	name := fileNameInvalid.ReplaceAllString(strings.TrimSpace(commandName), "_")
	if name == "" {
		return defaultFileName
	}
	return name
}

// SlashName turns a free-form command name into one Discord accepts.
func SlashName(commandName string) string {
	name := slashNameInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(commandName)), "-")
	name = strings.Trim(name, "-")
	if len(name) > maxSlashNameLength {
		name = strings.Trim(name[:maxSlashNameLength], "-")
	}
	if name == "" {
		return defaultSlashName
	}
	return name
}

func envKey(key string) string {
	k := envKeyInvalid.ReplaceAllString(strings.TrimSpace(key), "_")
	if k == "" {
		return "UNNAMED_VAR"
	}
	return k
}

// singleLine collapses line breaks so a value can sit on one line of a
// generated file.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
