package services

import (
	"context"

	"github.com/samber/mo"

	"botforge/models"
)

// GenerationService turns a free-form description into command source
type GenerationService interface {
	GenerateCommand(ctx context.Context, description string) (*models.GeneratedCommand, error)
}

// ValidationService reviews command source
type ValidationService interface {
	ValidateCommand(ctx context.Context, code string) (*models.ValidationResult, error)
}

// ExportService assembles the downloadable project of a stored bot
type ExportService interface {
	ExportBot(ctx context.Context, ownerID, botID string) (*models.BotExport, error)
}

// BotsService defines the interface for bot, command and env var persistence
type BotsService interface {
	CreateBot(ctx context.Context, ownerID, name, description string) (*models.Bot, error)
	GetBotsByOwnerID(ctx context.Context, ownerID string) ([]*models.Bot, error)
	GetBotByID(ctx context.Context, ownerID, botID string) (mo.Option[*models.Bot], error)
	UpdateBot(ctx context.Context, ownerID, botID, name, description string) (*models.Bot, error)
	DeleteBot(ctx context.Context, ownerID, botID string) error

	AddCommand(ctx context.Context, ownerID, botID string, params CommandParams) (*models.Command, error)
	GetCommands(ctx context.Context, ownerID, botID string) ([]*models.Command, error)
	GetCommandByID(ctx context.Context, ownerID, botID, commandID string) (mo.Option[*models.Command], error)
	UpdateCommandCode(ctx context.Context, ownerID, botID, commandID, code string) (*models.Command, error)
	DeleteCommand(ctx context.Context, ownerID, botID, commandID string) error

	AddEnvVar(ctx context.Context, ownerID, botID, key, description string) (*models.EnvVar, error)
	GetEnvVars(ctx context.Context, ownerID, botID string) ([]*models.EnvVar, error)
	DeleteEnvVar(ctx context.Context, ownerID, botID, envVarID string) error
}

// CommandParams carries the fields of a new command. Either code may be nil.
type CommandParams struct {
	Name          string
	Description   string
	UserCode      *string
	GeneratedCode *string
}

// TransactionManager handles database transactions via context
type TransactionManager interface {
	// Execute function within a transaction (recommended approach)
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Manual transaction control (for complex scenarios)
	BeginTransaction(ctx context.Context) (context.Context, error)
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error
}
