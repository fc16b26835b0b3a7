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

type PostgresBotsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for bots table
var botsColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"created_at",
	"updated_at",
}

func NewPostgresBotsRepository(db *sqlx.DB, schema string) *PostgresBotsRepository {
	return &PostgresBotsRepository{db: db, schema: schema}
}

func (r *PostgresBotsRepository) CreateBot(ctx context.Context, bot *models.Bot) error {
	db := dbtx.GetTransactional(ctx, r.db)
	returningStr := strings.Join(botsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.bots (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s`, r.schema, returningStr)

	err := db.QueryRowxContext(ctx, query, bot.ID, bot.OwnerID, bot.Name, bot.Description).StructScan(bot)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	return nil
}

func (r *PostgresBotsRepository) GetBotByID(
	ctx context.Context,
	id, ownerID string,
) (mo.Option[*models.Bot], error) {
	db := dbtx.GetTransactional(ctx, r.db)
	columnsStr := strings.Join(botsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.bots
		WHERE id = $1 AND owner_id = $2`, columnsStr, r.schema)

	var bot models.Bot
	err := db.GetContext(ctx, &bot, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Bot](), nil
		}
		return mo.None[*models.Bot](), fmt.Errorf("failed to get bot: %w", err)
	}

	return mo.Some(&bot), nil
}

func (r *PostgresBotsRepository) GetBotsByOwnerID(ctx context.Context, ownerID string) ([]*models.Bot, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	columnsStr := strings.Join(botsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.bots
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`, columnsStr, r.schema)

	bots := []*models.Bot{}
	if err := db.SelectContext(ctx, &bots, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to get bots: %w", err)
	}

	return bots, nil
}

func (r *PostgresBotsRepository) UpdateBot(ctx context.Context, bot *models.Bot) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	returningStr := strings.Join(botsColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.bots
		SET name = $3, description = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING %s`, r.schema, returningStr)

	err := db.QueryRowxContext(ctx, query, bot.ID, bot.OwnerID, bot.Name, bot.Description).StructScan(bot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update bot: %w", err)
	}

	return true, nil
}

func (r *PostgresBotsRepository) DeleteBot(ctx context.Context, id, ownerID string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.bots
		WHERE id = $1 AND owner_id = $2`, r.schema)

	result, err := db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete bot: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
