package commandspec

import (
	"github.com/bwmarrin/discordgo"

	"botforge/models"
)

var optionTypes = map[string]discordgo.ApplicationCommandOptionType{
	"string":          discordgo.ApplicationCommandOptionString,
	"integer":         discordgo.ApplicationCommandOptionInteger,
	"boolean":         discordgo.ApplicationCommandOptionBoolean,
	"user":            discordgo.ApplicationCommandOptionUser,
	"channel":         discordgo.ApplicationCommandOptionChannel,
	"role":            discordgo.ApplicationCommandOptionRole,
	"mentionable":     discordgo.ApplicationCommandOptionMentionable,
	"number":          discordgo.ApplicationCommandOptionNumber,
	"attachment":      discordgo.ApplicationCommandOptionAttachment,
	"subcommand":      discordgo.ApplicationCommandOptionSubCommand,
	"subcommandgroup": discordgo.ApplicationCommandOptionSubCommandGroup,
}

// OptionType maps a lower-cased builder type token to the Discord option
// type. Unknown tokens map to a string option and report false.
func OptionType(token string) (discordgo.ApplicationCommandOptionType, bool) {
	t, ok := optionTypes[token]
	if !ok {
		return discordgo.ApplicationCommandOptionString, false
	}
	return t, true
}

// ToApplicationCommand converts a descriptor into the chat-input command
// payload the Discord registration endpoint expects.
func ToApplicationCommand(d models.CommandDescriptor) *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(d.Options))
	for _, opt := range d.Options {
		optionType, _ := OptionType(opt.Type)
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        optionType,
			Name:        opt.Name,
			Description: opt.Description,
			Required:    opt.Required,
		})
	}

	return &discordgo.ApplicationCommand{
		Type:        discordgo.ChatApplicationCommand,
		Name:        d.Name,
		Description: d.Description,
		Options:     options,
	}
}
