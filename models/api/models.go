package api

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"botforge/models"
)

// BotModel represents the bot data returned by the API
type BotModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommandModel represents a stored command returned by the API
type CommandModel struct {
	ID            string    `json:"id"`
	BotID         string    `json:"bot_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	UserCode      *string   `json:"user_code"`
	GeneratedCode *string   `json:"generated_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EnvVarModel represents a declared environment variable returned by the API
type EnvVarModel struct {
	ID          string    `json:"id"`
	BotID       string    `json:"bot_id"`
	Key         string    `json:"key"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// GeneratedCommandModel is the response of the generate endpoint
type GeneratedCommandModel struct {
	Code    string                        `json:"code"`
	Command models.CommandDescriptor      `json:"command"`
	Schema  *discordgo.ApplicationCommand `json:"schema"`
}

// BotExportModel is the response of the export endpoints
type BotExportModel struct {
	Files       map[string]string `json:"files"`
	BotName     string            `json:"botName"`
	ArchiveName string            `json:"archiveName"`
}
