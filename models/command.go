package models

import (
	"time"
)

// Command is a persisted slash command owned by a bot. UserCode holds the
// author's edits and takes precedence over GeneratedCode when exporting.
type Command struct {
	ID            string    `db:"id"             json:"id"`
	BotID         string    `db:"bot_id"         json:"bot_id"`
	Name          string    `db:"name"           json:"name"`
	Description   string    `db:"description"    json:"description"`
	UserCode      *string   `db:"user_code"      json:"user_code"`
	GeneratedCode *string   `db:"generated_code" json:"generated_code"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"     json:"updated_at"`
}

// Source returns the code that should be shipped for this command, if any.
func (c Command) Source() (string, bool) {
	if c.UserCode != nil && *c.UserCode != "" {
		return *c.UserCode, true
	}
	if c.GeneratedCode != nil && *c.GeneratedCode != "" {
		return *c.GeneratedCode, true
	}
	return "", false
}
