package models

import (
	"github.com/bwmarrin/discordgo"
)

// GeneratedCommand is the outcome of generating a command from a
// description: the source to store, the metadata for the canvas and the
// registration payload derived from it.
type GeneratedCommand struct {
	Code    string
	Command CommandDescriptor
	Schema  *discordgo.ApplicationCommand
}

// BotExport is an assembled project ready for packaging
type BotExport struct {
	Files       FileBundle
	BotName     string
	ArchiveName string
}
