package models

import (
	"time"
)

type Bot struct {
	ID          string    `db:"id"          json:"id"`
	OwnerID     string    `db:"owner_id"    json:"owner_id"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}
