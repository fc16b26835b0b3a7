package commandspec

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botforge/models"
)

const weatherCommand = `const { SlashCommandBuilder } = require('discord.js');

module.exports = {
  data: new SlashCommandBuilder()
    .setName('weather')
    .setDescription('Shows the current weather for a city')
    .addStringOption(option =>
      option.setName('city')
        .setDescription('City to look up')
        .setRequired(true))
    .addIntegerOption(option =>
      option.setName('days').setDescription('Forecast length'))
    .addUserOption(option => option.setName("notify").setDescription("User to ping").setRequired(true)),
  async execute(interaction) {
    await interaction.reply("ok");
  }
};`

func TestExtract_FallbackDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "empty text", source: ""},
		{name: "prose", source: "Sorry, I cannot help with that request."},
		{name: "name call with non-literal argument", source: "builder.setName(commandName).setDescription(desc)"},
		{name: "unterminated literal", source: "builder.setName('oops"},
		{name: "calls only inside a comment", source: "// .setName('hidden')\n/* .setDescription('hidden') */"},
		{name: "calls only inside a string", source: `const s = ".setName('quoted')";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.source)
			assert.Equal(t, FallbackName, got.Name)
			assert.Equal(t, FallbackDescription, got.Description)
			require.NotNil(t, got.Options)
			assert.Empty(t, got.Options)
		})
	}
}

func TestExtract_ConventionalSource(t *testing.T) {
	got := Extract(weatherCommand)

	assert.Equal(t, "weather", got.Name)
	assert.Equal(t, "Shows the current weather for a city", got.Description)
	assert.Equal(t, []models.OptionDescriptor{
		{Type: "string", Name: "city", Description: "City to look up", Required: true},
		{Type: "integer", Name: "days", Description: "Forecast length", Required: false},
		{Type: "user", Name: "notify", Description: "User to ping", Required: true},
	}, got.Options)
}

func TestExtract_OptionCountAndOrder(t *testing.T) {
	types := []string{"String", "Integer", "Boolean", "User", "Channel", "Role", "Mentionable", "Number"}

	var b strings.Builder
	b.WriteString("new SlashCommandBuilder().setName('multi').setDescription('Many options')")
	for i, typ := range types {
		b.WriteString("\n  .add" + typ + "Option(o => o.setName('opt" + string(rune('a'+i)) + "').setDescription('d'))")
	}

	got := Extract(b.String())

	require.Len(t, got.Options, len(types))
	for i, typ := range types {
		assert.Equal(t, strings.ToLower(typ), got.Options[i].Type)
		assert.Equal(t, "opt"+string(rune('a'+i)), got.Options[i].Name)
		assert.False(t, got.Options[i].Required)
	}
}

func TestExtract_RequiredTrackedPerOption(t *testing.T) {
	// identical name and description text must not leak the flag between options
	source := `new SlashCommandBuilder().setName('dup').setDescription('Duplicates')
  .addStringOption(o => o.setName('value').setDescription('Same text'))
  .addIntegerOption(o => o.setName('value').setDescription('Same text').setRequired(true))
  .addBooleanOption(o => o.setName('value').setDescription('Same text').setRequired(false))`

	got := Extract(source)

	require.Len(t, got.Options, 3)
	assert.False(t, got.Options[0].Required)
	assert.True(t, got.Options[1].Required)
	assert.False(t, got.Options[2].Required)
}

func TestExtract_AdversarialInputs(t *testing.T) {
	t.Run("first name call wins", func(t *testing.T) {
		got := Extract(`b.setName('first').setDescription('one'); c.setName('second').setDescription('two');`)
		assert.Equal(t, "first", got.Name)
		assert.Equal(t, "one", got.Description)
	})

	t.Run("nested quotes and escapes", func(t *testing.T) {
		got := Extract(`b.setName("quote").setDescription("It's a \"quoted\" command")` +
			`.addStringOption(o => o.setName('text').setDescription('Don\'t panic'))`)
		assert.Equal(t, "quote", got.Name)
		assert.Equal(t, `It's a "quoted" command`, got.Description)
		require.Len(t, got.Options, 1)
		assert.Equal(t, "Don't panic", got.Options[0].Description)
	})

	t.Run("trigger words in comments are ignored", func(t *testing.T) {
		got := Extract(`// .setName('commented').addStringOption(o => o.setName('ghost').setDescription('x'))
/*
 * .addUserOption(o => o.setName('ghost2').setDescription('y').setRequired(true))
 */
new SlashCommandBuilder().setName('real').setDescription('Real command')`)
		assert.Equal(t, "real", got.Name)
		assert.Empty(t, got.Options)
	})

	t.Run("option names are not taken as the command name", func(t *testing.T) {
		got := Extract(`new SlashCommandBuilder()
  .addStringOption(o => o.setName('query').setDescription('Search query'))
  .setName('search')
  .setDescription('Searches things')`)
		assert.Equal(t, "search", got.Name)
		assert.Equal(t, "Searches things", got.Description)
		require.Len(t, got.Options, 1)
		assert.Equal(t, "query", got.Options[0].Name)
	})

	t.Run("url inside a string is not a comment", func(t *testing.T) {
		got := Extract(`const url = 'https://example.com'; b.setName('link').setDescription('Links')`)
		assert.Equal(t, "link", got.Name)
	})

	t.Run("option without a name is skipped", func(t *testing.T) {
		got := Extract(`b.setName('x').setDescription('y').addStringOption(o => o.setDescription('nameless'))`)
		assert.Empty(t, got.Options)
	})

	t.Run("truncated source keeps what it can", func(t *testing.T) {
		got := Extract(`b.setName('cut').setDescription('Cut off').addStringOption(o => o.setName('a').setDescription('b').setRequired(true)`)
		require.Len(t, got.Options, 1)
		assert.True(t, got.Options[0].Required)
	})
}

func TestExtract_InvalidUTF8BecomesValidText(t *testing.T) {
	got := Extract("\xff\xfe.setName('\xff').setDescription('bad \xc3 byte')")

	assert.Equal(t, "\uFFFD", got.Name)
	assert.Equal(t, "bad \uFFFD byte", got.Description)
	assert.True(t, utf8.ValidString(got.Name))
	assert.True(t, utf8.ValidString(got.Description))
}

func TestExtract_DescriptionTruncated(t *testing.T) {
	long := strings.Repeat("é", MaxDescriptionLength+20)
	got := Extract("b.setName('long').setDescription('" + long + "')")
	assert.Equal(t, strings.Repeat("é", MaxDescriptionLength), got.Description)
}
