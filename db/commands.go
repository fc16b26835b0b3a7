package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	dbtx "botforge/db/tx"
	"botforge/models"
)

type PostgresCommandsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for commands table
var commandsColumns = []string{
	"id",
	"bot_id",
	"name",
	"description",
	"user_code",
	"generated_code",
	"created_at",
	"updated_at",
}

func NewPostgresCommandsRepository(db *sqlx.DB, schema string) *PostgresCommandsRepository {
	return &PostgresCommandsRepository{db: db, schema: schema}
}

func (r *PostgresCommandsRepository) CreateCommand(ctx context.Context, command *models.Command) error {
	db := dbtx.GetTransactional(ctx, r.db)
	returningStr := strings.Join(commandsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.commands (id, bot_id, name, description, user_code, generated_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, r.schema, returningStr)

	err := db.QueryRowxContext(ctx, query,
		command.ID,
		command.BotID,
		command.Name,
		command.Description,
		command.UserCode,
		command.GeneratedCode).
		StructScan(command)
	if err != nil {
		return fmt.Errorf("failed to create command: %w", err)
	}

	return nil
}

// GetCommandsByBotID returns the bot's commands in creation order
func (r *PostgresCommandsRepository) GetCommandsByBotID(ctx context.Context, botID string) ([]*models.Command, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	columnsStr := strings.Join(commandsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.commands
		WHERE bot_id = $1
		ORDER BY created_at ASC, id ASC`, columnsStr, r.schema)

	commands := []*models.Command{}
	if err := db.SelectContext(ctx, &commands, query, botID); err != nil {
		return nil, fmt.Errorf("failed to get commands: %w", err)
	}

	return commands, nil
}

func (r *PostgresCommandsRepository) GetCommandByID(
	ctx context.Context,
	id, botID string,
) (mo.Option[*models.Command], error) {
	db := dbtx.GetTransactional(ctx, r.db)
	columnsStr := strings.Join(commandsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.commands
		WHERE id = $1 AND bot_id = $2`, columnsStr, r.schema)

	var command models.Command
	err := db.GetContext(ctx, &command, query, id, botID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Command](), nil
		}
		return mo.None[*models.Command](), fmt.Errorf("failed to get command: %w", err)
	}

	return mo.Some(&command), nil
}

// UpdateCommandUserCode stores the author's version of the command source.
// Generated code is left untouched.
func (r *PostgresCommandsRepository) UpdateCommandUserCode(
	ctx context.Context,
	id, botID, code string,
) (mo.Option[*models.Command], error) {
	db := dbtx.GetTransactional(ctx, r.db)
	returningStr := strings.Join(commandsColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.commands
		SET user_code = $3, updated_at = NOW()
		WHERE id = $1 AND bot_id = $2
		RETURNING %s`, r.schema, returningStr)

	var command models.Command
	err := db.QueryRowxContext(ctx, query, id, botID, code).StructScan(&command)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Command](), nil
		}
		return mo.None[*models.Command](), fmt.Errorf("failed to update command code: %w", err)
	}

	return mo.Some(&command), nil
}

func (r *PostgresCommandsRepository) DeleteCommand(ctx context.Context, id, botID string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.commands
		WHERE id = $1 AND bot_id = $2`, r.schema)

	result, err := db.ExecContext(ctx, query, id, botID)
	if err != nil {
		return false, fmt.Errorf("failed to delete command: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostgresCommandsRepository) DeleteCommandsByBotID(ctx context.Context, botID string) (int64, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s.commands WHERE bot_id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, botID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete commands: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
