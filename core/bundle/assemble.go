// Package bundle assembles the runnable discord.js project exported for a
// bot. Assemble is a pure function of its inputs: every file is derived from
// a single list of command entries, so the manifest, the command modules,
// the README and the environment template cannot drift apart.
package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"strings"
	"unicode/utf8"

	"botforge/core/commandspec"
	"botforge/models"
	"botforge/utils"
)

const (
	ManifestPath   = "package.json"
	EntryPath      = "index.js"
	DeployPath     = "deploy-commands.js"
	EnvExamplePath = ".env.example"
	ReadmePath     = "README.md"
	DockerfilePath = "Dockerfile"
	GitignorePath  = ".gitignore"
	CommandsDir    = "commands"

	StartScript  = "start"
	DeployScript = "deploy"

	TokenVar    = "DISCORD_TOKEN"
	ClientIDVar = "CLIENT_ID"
	GuildIDVar  = "GUILD_ID"

	defaultBotName          = "Discord Bot"
	defaultBotDescription   = "Discord bot created with BotForge"
	defaultEnvVarComment    = "User defined variable"
	defaultCommandDesc      = "Generated command"
	undocumentedCommandDesc = "No description"
)

// Entry is one command module of the exported project.
type Entry struct {
	Path        string
	Name        string
	Description string
	Source      string
}

type envLine struct {
	Key         string
	Description string
}

type templateData struct {
	BotName        string
	BotDescription string
	ManifestName   string
	MainFile       string
	StartScript    string
	DeployScript   string
	CommandsDir    string
	TokenVar       string
	ClientIDVar    string
	GuildIDVar     string
	Commands       []Entry
	EnvVars        []envLine
}

type manifestScripts struct {
	Start  string `json:"start"`
	Deploy string `json:"deploy"`
}

type packageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Main         string            `json:"main"`
	Type         string            `json:"type"`
	Scripts      manifestScripts   `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
	Keywords     []string          `json:"keywords"`
	Author       string            `json:"author"`
}

// Assemble produces the complete file set for bot. It never fails: malformed
// names are sanitized and an empty command list yields a default ping
// command.
func Assemble(bot models.Bot, commands []models.Command, envVars []models.EnvVar) models.FileBundle {
	entries := Entries(commands)

	data := templateData{
		BotName:        displayName(bot.Name),
		BotDescription: botDescription(bot.Description),
		ManifestName:   ManifestName(bot.Name),
		MainFile:       EntryPath,
		StartScript:    StartScript,
		DeployScript:   DeployScript,
		CommandsDir:    CommandsDir,
		TokenVar:       TokenVar,
		ClientIDVar:    ClientIDVar,
		GuildIDVar:     GuildIDVar,
		Commands:       entries,
		EnvVars:        envLines(envVars),
	}

	files := models.FileBundle{
		ManifestPath:   renderManifest(data),
		EntryPath:      render("index.js.tmpl", data),
		DeployPath:     render("deploy-commands.js.tmpl", data),
		EnvExamplePath: render("env.example.tmpl", data),
		ReadmePath:     render("README.md.tmpl", data),
		DockerfilePath: render("Dockerfile.tmpl", data),
		GitignorePath:  render("gitignore.tmpl", data),
	}

	for _, entry := range entries {
		utils.AssertInvariant(files[entry.Path] == "", "duplicate bundle path "+entry.Path)
		files[entry.Path] = entry.Source
	}

	return files
}

// Entries computes the canonical command list of the exported project, in
// input order. Each entry gets a unique file under CommandsDir; the source is
// the user's code, else the generated code, else a placeholder module.
func Entries(commands []models.Command) []Entry {
	if len(commands) == 0 {
		return []Entry{{
			Path:        path.Join(CommandsDir, "ping.js"),
			Name:        "ping",
			Description: "Replies with Pong!",
			Source:      render("ping.js.tmpl", nil),
		}}
	}

	takenPaths := make(map[string]bool, len(commands))
	entries := make([]Entry, len(commands))

	// Names written in command source cannot be changed here, so they are
	// reserved before any placeholder is named.
	takenNames := make(map[string]bool, len(commands))
	for i, cmd := range commands {
		source, ok := cmd.Source()
		if !ok {
			continue
		}
		descriptor := commandspec.Extract(source)
		name := SlashName(cmd.Name)
		if descriptor.Name != commandspec.FallbackName {
			name = descriptor.Name
		}
		if takenNames[strings.ToLower(name)] {
			log.Printf("⚠️ Command name /%s is declared by more than one command source", name)
		}
		takenNames[strings.ToLower(name)] = true

		description := singleLine(cmd.Description)
		if description == "" && descriptor.Description != commandspec.FallbackDescription {
			description = singleLine(descriptor.Description)
		}
		if description == "" {
			description = undocumentedCommandDesc
		}
		entries[i] = Entry{Name: name, Description: description, Source: source}
	}

	for i, cmd := range commands {
		entries[i].Path = uniquePath(CommandFileName(cmd.Name), takenPaths)
		if entries[i].Source != "" {
			continue
		}
		entries[i].Name = uniqueSlashName(SlashName(cmd.Name), takenNames)
		entries[i].Description = placeholderDescription(cmd.Description)
		entries[i].Source = render("command.js.tmpl", entries[i])
	}

	return entries
}

// uniqueSlashName reserves name, suffixing -2, -3, ... on collisions while
// staying within Discord's name length limit.
func uniqueSlashName(name string, taken map[string]bool) string {
	candidate := name
	for i := 2; taken[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf("-%d", i)
		base := name
		if len(base)+len(suffix) > maxSlashNameLength {
			base = strings.TrimRight(base[:maxSlashNameLength-len(suffix)], "-")
		}
		candidate = base + suffix
	}
	taken[strings.ToLower(candidate)] = true
	return candidate
}

// uniquePath reserves commands/<base>.js, suffixing _2, _3, ... on
// collisions. Comparison ignores case so the project also unpacks on
// case-insensitive file systems.
func uniquePath(base string, taken map[string]bool) string {
	candidate := base
	for i := 2; taken[strings.ToLower(candidate)]; i++ {
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
	taken[strings.ToLower(candidate)] = true
	return path.Join(CommandsDir, candidate+".js")
}

func renderManifest(data templateData) string {
	manifest := packageManifest{
		Name:        data.ManifestName,
		Version:     "1.0.0",
		Description: data.BotDescription,
		Main:        EntryPath,
		Type:        "commonjs",
		Scripts: manifestScripts{
			Start:  "node " + EntryPath,
			Deploy: "node " + DeployPath,
		},
		Dependencies: map[string]string{
			"discord.js": "^14.16.3",
			"dotenv":     "^16.4.5",
		},
		Keywords: []string{"discord", "bot", "botforge"},
		Author:   "BotForge User",
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(manifest)
	utils.AssertInvariant(err == nil, "failed to encode package manifest")
	return buf.String()
}

func envLines(envVars []models.EnvVar) []envLine {
	lines := make([]envLine, 0, len(envVars))
	for _, v := range envVars {
		description := singleLine(v.Description)
		if description == "" {
			description = defaultEnvVarComment
		}
		lines = append(lines, envLine{Key: envKey(v.Key), Description: description})
	}
	return lines
}

func displayName(name string) string {
	if n := singleLine(name); n != "" {
		return n
	}
	return defaultBotName
}

func botDescription(description string) string {
	if d := singleLine(description); d != "" {
		return d
	}
	return defaultBotDescription
}

func placeholderDescription(description string) string {
	d := singleLine(description)
	if d == "" {
		return defaultCommandDesc
	}
	if utf8.RuneCountInString(d) > commandspec.MaxDescriptionLength {
		d = string([]rune(d)[:commandspec.MaxDescriptionLength])
	}
	return d
}
