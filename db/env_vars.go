package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	dbtx "botforge/db/tx"
	"botforge/models"
)

type PostgresEnvVarsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for env_vars table
var envVarsColumns = []string{
	"id",
	"bot_id",
	"key",
	"description",
	"created_at",
}

func NewPostgresEnvVarsRepository(db *sqlx.DB, schema string) *PostgresEnvVarsRepository {
	return &PostgresEnvVarsRepository{db: db, schema: schema}
}

func (r *PostgresEnvVarsRepository) CreateEnvVar(ctx context.Context, envVar *models.EnvVar) error {
	db := dbtx.GetTransactional(ctx, r.db)
	returningStr := strings.Join(envVarsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.env_vars (id, bot_id, key, description, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s`, r.schema, returningStr)

	err := db.QueryRowxContext(ctx, query, envVar.ID, envVar.BotID, envVar.Key, envVar.Description).
		StructScan(envVar)
	if err != nil {
		return fmt.Errorf("failed to create env var: %w", err)
	}

	return nil
}

// GetEnvVarsByBotID returns the bot's environment variables in creation order
func (r *PostgresEnvVarsRepository) GetEnvVarsByBotID(ctx context.Context, botID string) ([]*models.EnvVar, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	columnsStr := strings.Join(envVarsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.env_vars
		WHERE bot_id = $1
		ORDER BY created_at ASC, id ASC`, columnsStr, r.schema)

	envVars := []*models.EnvVar{}
	if err := db.SelectContext(ctx, &envVars, query, botID); err != nil {
		return nil, fmt.Errorf("failed to get env vars: %w", err)
	}

	return envVars, nil
}

func (r *PostgresEnvVarsRepository) DeleteEnvVar(ctx context.Context, id, botID string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.env_vars
		WHERE id = $1 AND bot_id = $2`, r.schema)

	result, err := db.ExecContext(ctx, query, id, botID)
	if err != nil {
		return false, fmt.Errorf("failed to delete env var: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostgresEnvVarsRepository) DeleteEnvVarsByBotID(ctx context.Context, botID string) (int64, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s.env_vars WHERE bot_id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, botID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete env vars: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
