package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botforge/models"
)

const sampleInput = `{
  "bot": {"name": "Weather Bot", "description": "Tells the weather"},
  "commands": [
    {"name": "forecast", "description": "Five day forecast", "generated_code": "module.exports = { data: new SlashCommandBuilder().setName('forecast') };"},
    {"name": "about"}
  ],
  "env_vars": [{"key": "WEATHER_API_KEY", "description": "API key"}]
}`

func TestRun_FromInputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bot.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleInput), 0644))
	out := filepath.Join(dir, "out")

	require.NoError(t, run(Options{Input: input, Out: out}))

	for _, p := range []string{"package.json", "index.js", "deploy-commands.js", ".env.example", "commands/forecast.js", "commands/about.js"} {
		_, err := os.Stat(filepath.Join(out, p))
		assert.NoError(t, err, p)
	}

	forecast, err := os.ReadFile(filepath.Join(out, "commands", "forecast.js"))
	require.NoError(t, err)
	assert.Contains(t, string(forecast), "setName('forecast')")

	envExample, err := os.ReadFile(filepath.Join(out, ".env.example"))
	require.NoError(t, err)
	assert.Contains(t, string(envExample), "WEATHER_API_KEY=# API key")
}

func TestRun_RejectsAmbiguousSource(t *testing.T) {
	out := t.TempDir()

	err := run(Options{Out: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	err = run(Options{Input: "bot.json", BotID: "b_1", Out: out})
	require.Error(t, err)

	err = run(Options{BotID: "b_1", Out: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--owner-id")
}

func TestWriteBundle_NonEmptyDirRequiresForce(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, "existing.txt"), []byte("keep"), 0644))
	files := models.FileBundle{"index.js": "new", "commands/ping.js": "ping"}

	err := writeBundle(out, files, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	_, statErr := os.Stat(filepath.Join(out, "index.js"))
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, writeBundle(out, files, true))
	content, err := os.ReadFile(filepath.Join(out, "commands", "ping.js"))
	require.NoError(t, err)
	assert.Equal(t, "ping", string(content))
}
