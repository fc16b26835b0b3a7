package export

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"botforge/core"
	"botforge/core/bundle"
	"botforge/models"
	"botforge/services"
)

type BotsRepository interface {
	GetBotByID(ctx context.Context, id, ownerID string) (mo.Option[*models.Bot], error)
}

type CommandsRepository interface {
	GetCommandsByBotID(ctx context.Context, botID string) ([]*models.Command, error)
}

type EnvVarsRepository interface {
	GetEnvVarsByBotID(ctx context.Context, botID string) ([]*models.EnvVar, error)
}

type ExportService struct {
	botsRepo     BotsRepository
	commandsRepo CommandsRepository
	envVarsRepo  EnvVarsRepository
	txManager    services.TransactionManager
}

func NewExportService(
	botsRepo BotsRepository,
	commandsRepo CommandsRepository,
	envVarsRepo EnvVarsRepository,
	txManager services.TransactionManager,
) *ExportService {
	return &ExportService{
		botsRepo:     botsRepo,
		commandsRepo: commandsRepo,
		envVarsRepo:  envVarsRepo,
		txManager:    txManager,
	}
}

// ExportBot assembles the project of a stored bot from its persisted
// records. The records are read in one transaction so the bundle reflects a
// single snapshot; nothing is written.
func (s *ExportService) ExportBot(ctx context.Context, ownerID, botID string) (*models.BotExport, error) {
	log.Printf("📋 Starting to export bot: %s", botID)
	if ownerID == "" {
		return nil, fmt.Errorf("owner_id is required: %w", core.ErrInvalidInput)
	}
	if botID == "" {
		return nil, fmt.Errorf("bot ID is required: %w", core.ErrInvalidInput)
	}
	if !core.IsValidULID(botID) {
		return nil, fmt.Errorf("bot ID must be a valid ULID: %w", core.ErrInvalidInput)
	}

	var (
		bot      *models.Bot
		commands []*models.Command
		envVars  []*models.EnvVar
	)
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		maybeBot, err := s.botsRepo.GetBotByID(ctx, botID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to get bot: %w", err)
		}
		if !maybeBot.IsPresent() {
			return fmt.Errorf("bot %s: %w", botID, core.ErrNotFound)
		}
		bot = maybeBot.MustGet()

		commands, err = s.commandsRepo.GetCommandsByBotID(ctx, botID)
		if err != nil {
			return fmt.Errorf("failed to get commands: %w", err)
		}

		envVars, err = s.envVarsRepo.GetEnvVarsByBotID(ctx, botID)
		if err != nil {
			return fmt.Errorf("failed to get env vars: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	export := Assemble(bot, commands, envVars)

	log.Printf("📋 Completed successfully - exported bot %s with %d files", botID, len(export.Files))
	return export, nil
}

// Assemble builds the export of already-loaded records
func Assemble(bot *models.Bot, commands []*models.Command, envVars []*models.EnvVar) *models.BotExport {
	cmds := make([]models.Command, 0, len(commands))
	for _, c := range commands {
		cmds = append(cmds, *c)
	}
	vars := make([]models.EnvVar, 0, len(envVars))
	for _, v := range envVars {
		vars = append(vars, *v)
	}

	return &models.BotExport{
		Files:       bundle.Assemble(*bot, cmds, vars),
		BotName:     bot.Name,
		ArchiveName: bundle.ArchiveName(bot.Name),
	}
}
