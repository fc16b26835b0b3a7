package models

import (
	"time"
)

type EnvVar struct {
	ID          string    `db:"id"          json:"id"`
	BotID       string    `db:"bot_id"      json:"bot_id"`
	Key         string    `db:"key"         json:"key"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
}
