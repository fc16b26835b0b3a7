package bots

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lucasepe/codename"
	"github.com/samber/mo"

	"botforge/core"
	"botforge/db"
	"botforge/models"
	"botforge/services"
)

const (
	MaxBotNameLength     = 100
	MaxDescriptionLength = 500
	MaxCommandNameLength = 100
)

var envVarKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type BotsService struct {
	botsRepo     *db.PostgresBotsRepository
	commandsRepo *db.PostgresCommandsRepository
	envVarsRepo  *db.PostgresEnvVarsRepository
	txManager    services.TransactionManager
}

func NewBotsService(
	botsRepo *db.PostgresBotsRepository,
	commandsRepo *db.PostgresCommandsRepository,
	envVarsRepo *db.PostgresEnvVarsRepository,
	txManager services.TransactionManager,
) *BotsService {
	return &BotsService{
		botsRepo:     botsRepo,
		commandsRepo: commandsRepo,
		envVarsRepo:  envVarsRepo,
		txManager:    txManager,
	}
}

// CreateBot stores a new bot. A blank name is replaced by a generated codename.
func (s *BotsService) CreateBot(ctx context.Context, ownerID, name, description string) (*models.Bot, error) {
	log.Printf("📋 Starting to create bot for owner: %s", ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("owner_id is required: %w", core.ErrInvalidInput)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		generated, err := generateBotName()
		if err != nil {
			return nil, err
		}
		name = generated
	}
	if utf8.RuneCountInString(name) > MaxBotNameLength {
		return nil, fmt.Errorf("bot name must be at most %d characters: %w", MaxBotNameLength, core.ErrInvalidInput)
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters: %w", MaxDescriptionLength, core.ErrInvalidInput)
	}

	bot := &models.Bot{
		ID:          core.NewID("b"),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	if err := s.botsRepo.CreateBot(ctx, bot); err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	log.Printf("📋 Completed successfully - created bot %s (%s)", bot.ID, bot.Name)
	return bot, nil
}

func (s *BotsService) GetBotsByOwnerID(ctx context.Context, ownerID string) ([]*models.Bot, error) {
	log.Printf("📋 Starting to get bots for owner: %s", ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("owner_id is required: %w", core.ErrInvalidInput)
	}

	bots, err := s.botsRepo.GetBotsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bots: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d bots", len(bots))
	return bots, nil
}

func (s *BotsService) GetBotByID(ctx context.Context, ownerID, botID string) (mo.Option[*models.Bot], error) {
	log.Printf("📋 Starting to get bot by ID: %s", botID)
	if ownerID == "" {
		return mo.None[*models.Bot](), fmt.Errorf("owner_id is required: %w", core.ErrInvalidInput)
	}
	if !core.IsValidULID(botID) {
		return mo.None[*models.Bot](), fmt.Errorf("bot ID must be a valid ULID: %w", core.ErrInvalidInput)
	}

	maybeBot, err := s.botsRepo.GetBotByID(ctx, botID, ownerID)
	if err != nil {
		return mo.None[*models.Bot](), fmt.Errorf("failed to get bot: %w", err)
	}
	if !maybeBot.IsPresent() {
		log.Printf("📋 Completed successfully - bot not found")
		return mo.None[*models.Bot](), nil
	}

	log.Printf("📋 Completed successfully - retrieved bot %s", botID)
	return maybeBot, nil
}

// UpdateBot renames the bot and replaces its description
func (s *BotsService) UpdateBot(ctx context.Context, ownerID, botID, name, description string) (*models.Bot, error) {
	log.Printf("📋 Starting to update bot: %s", botID)
	if ownerID == "" {
		return nil, fmt.Errorf("owner_id is required: %w", core.ErrInvalidInput)
	}
	if !core.IsValidULID(botID) {
		return nil, fmt.Errorf("bot ID must be a valid ULID: %w", core.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("bot name is required: %w", core.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxBotNameLength {
		return nil, fmt.Errorf("bot name must be at most %d characters: %w", MaxBotNameLength, core.ErrInvalidInput)
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters: %w", MaxDescriptionLength, core.ErrInvalidInput)
	}

	bot := &models.Bot{
		ID:          botID,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	updated, err := s.botsRepo.UpdateBot(ctx, bot)
	if err != nil {
		return nil, fmt.Errorf("failed to update bot: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("bot %s: %w", botID, core.ErrNotFound)
	}

	log.Printf("📋 Completed successfully - updated bot %s", botID)
	return bot, nil
}

// DeleteBot removes the bot together with its commands and env vars
func (s *BotsService) DeleteBot(ctx context.Context, ownerID, botID string) error {
	log.Printf("📋 Starting to delete bot: %s", botID)

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
			return err
		}

		deletedCommands, err := s.commandsRepo.DeleteCommandsByBotID(ctx, botID)
		if err != nil {
			return fmt.Errorf("failed to delete commands: %w", err)
		}
		deletedEnvVars, err := s.envVarsRepo.DeleteEnvVarsByBotID(ctx, botID)
		if err != nil {
			return fmt.Errorf("failed to delete env vars: %w", err)
		}

		deleted, err := s.botsRepo.DeleteBot(ctx, botID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete bot: %w", err)
		}
		if !deleted {
			return fmt.Errorf("bot %s: %w", botID, core.ErrNotFound)
		}

		log.Printf("📋 Removed %d commands and %d env vars of bot %s", deletedCommands, deletedEnvVars, botID)
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("📋 Completed successfully - deleted bot %s", botID)
	return nil
}

func (s *BotsService) AddCommand(
	ctx context.Context,
	ownerID, botID string,
	params services.CommandParams,
) (*models.Command, error) {
	log.Printf("📋 Starting to add command to bot: %s", botID)
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("command name is required: %w", core.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxCommandNameLength {
		return nil, fmt.Errorf("command name must be at most %d characters: %w", MaxCommandNameLength, core.ErrInvalidInput)
	}
	description := strings.TrimSpace(params.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters: %w", MaxDescriptionLength, core.ErrInvalidInput)
	}

	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return nil, err
	}

	command := &models.Command{
		ID:            core.NewID("cmd"),
		BotID:         botID,
		Name:          name,
		Description:   description,
		UserCode:      nonBlank(params.UserCode),
		GeneratedCode: nonBlank(params.GeneratedCode),
	}
	if err := s.commandsRepo.CreateCommand(ctx, command); err != nil {
		return nil, fmt.Errorf("failed to create command: %w", err)
	}

	log.Printf("📋 Completed successfully - added command %s to bot %s", command.ID, botID)
	return command, nil
}

func (s *BotsService) GetCommands(ctx context.Context, ownerID, botID string) ([]*models.Command, error) {
	log.Printf("📋 Starting to get commands of bot: %s", botID)
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return nil, err
	}

	commands, err := s.commandsRepo.GetCommandsByBotID(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("failed to get commands: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d commands", len(commands))
	return commands, nil
}

func (s *BotsService) GetCommandByID(
	ctx context.Context,
	ownerID, botID, commandID string,
) (mo.Option[*models.Command], error) {
	log.Printf("📋 Starting to get command by ID: %s", commandID)
	if !core.IsValidULID(commandID) {
		return mo.None[*models.Command](), fmt.Errorf("command ID must be a valid ULID: %w", core.ErrInvalidInput)
	}
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return mo.None[*models.Command](), err
	}

	maybeCommand, err := s.commandsRepo.GetCommandByID(ctx, commandID, botID)
	if err != nil {
		return mo.None[*models.Command](), fmt.Errorf("failed to get command: %w", err)
	}

	log.Printf("📋 Completed successfully - command found: %t", maybeCommand.IsPresent())
	return maybeCommand, nil
}

// UpdateCommandCode stores code as the author's version of the command. This
// is how a validation correction gets applied: only on explicit request.
func (s *BotsService) UpdateCommandCode(
	ctx context.Context,
	ownerID, botID, commandID, code string,
) (*models.Command, error) {
	log.Printf("📋 Starting to update code of command: %s", commandID)
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("code is required: %w", core.ErrInvalidInput)
	}
	if !core.IsValidULID(commandID) {
		return nil, fmt.Errorf("command ID must be a valid ULID: %w", core.ErrInvalidInput)
	}
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return nil, err
	}

	maybeCommand, err := s.commandsRepo.UpdateCommandUserCode(ctx, commandID, botID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to update command code: %w", err)
	}
	command, ok := maybeCommand.Get()
	if !ok {
		return nil, fmt.Errorf("command %s: %w", commandID, core.ErrNotFound)
	}

	log.Printf("📋 Completed successfully - updated code of command %s", commandID)
	return command, nil
}

func (s *BotsService) DeleteCommand(ctx context.Context, ownerID, botID, commandID string) error {
	log.Printf("📋 Starting to delete command: %s", commandID)
	if !core.IsValidULID(commandID) {
		return fmt.Errorf("command ID must be a valid ULID: %w", core.ErrInvalidInput)
	}
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return err
	}

	deleted, err := s.commandsRepo.DeleteCommand(ctx, commandID, botID)
	if err != nil {
		return fmt.Errorf("failed to delete command: %w", err)
	}
	if !deleted {
		return fmt.Errorf("command %s: %w", commandID, core.ErrNotFound)
	}

	log.Printf("📋 Completed successfully - deleted command %s", commandID)
	return nil
}

func (s *BotsService) AddEnvVar(ctx context.Context, ownerID, botID, key, description string) (*models.EnvVar, error) {
	log.Printf("📋 Starting to add env var to bot: %s", botID)
	key = strings.TrimSpace(key)
	if !envVarKeyPattern.MatchString(key) {
		return nil, fmt.Errorf("env var key must match %s: %w", envVarKeyPattern, core.ErrInvalidInput)
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters: %w", MaxDescriptionLength, core.ErrInvalidInput)
	}
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return nil, err
	}

	envVar := &models.EnvVar{
		ID:          core.NewID("env"),
		BotID:       botID,
		Key:         key,
		Description: description,
	}
	if err := s.envVarsRepo.CreateEnvVar(ctx, envVar); err != nil {
		return nil, fmt.Errorf("failed to create env var: %w", err)
	}

	log.Printf("📋 Completed successfully - added env var %s to bot %s", envVar.Key, botID)
	return envVar, nil
}

func (s *BotsService) GetEnvVars(ctx context.Context, ownerID, botID string) ([]*models.EnvVar, error) {
	log.Printf("📋 Starting to get env vars of bot: %s", botID)
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return nil, err
	}

	envVars, err := s.envVarsRepo.GetEnvVarsByBotID(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("failed to get env vars: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d env vars", len(envVars))
	return envVars, nil
}

func (s *BotsService) DeleteEnvVar(ctx context.Context, ownerID, botID, envVarID string) error {
	log.Printf("📋 Starting to delete env var: %s", envVarID)
	if !core.IsValidULID(envVarID) {
		return fmt.Errorf("env var ID must be a valid ULID: %w", core.ErrInvalidInput)
	}
	if _, err := s.requireBot(ctx, ownerID, botID); err != nil {
		return err
	}

	deleted, err := s.envVarsRepo.DeleteEnvVar(ctx, envVarID, botID)
	if err != nil {
		return fmt.Errorf("failed to delete env var: %w", err)
	}
	if !deleted {
		return fmt.Errorf("env var %s: %w", envVarID, core.ErrNotFound)
	}

	log.Printf("📋 Completed successfully - deleted env var %s", envVarID)
	return nil
}

// requireBot loads the owner's bot or fails with core.ErrNotFound
func (s *BotsService) requireBot(ctx context.Context, ownerID, botID string) (*models.Bot, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner_id is required: %w", core.ErrInvalidInput)
	}
	if !core.IsValidULID(botID) {
		return nil, fmt.Errorf("bot ID must be a valid ULID: %w", core.ErrInvalidInput)
	}

	maybeBot, err := s.botsRepo.GetBotByID(ctx, botID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}
	bot, ok := maybeBot.Get()
	if !ok {
		return nil, fmt.Errorf("bot %s: %w", botID, core.ErrNotFound)
	}
	return bot, nil
}

func generateBotName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", fmt.Errorf("failed to seed bot name generator: %w", err)
	}
	return codename.Generate(rng, 0), nil
}

func nonBlank(code *string) *string {
	if code == nil || strings.TrimSpace(*code) == "" {
		return nil
	}
	return code
}
