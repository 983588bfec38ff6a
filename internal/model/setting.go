package model

import (
	"time"

	"github.com/google/uuid"
)

// Setting is a keyed configuration value, optionally grouped.
type Setting struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Key         string    `db:"key"         json:"key"`
	Value       Document  `db:"value"       json:"value"`
	Group       string    `db:"group"       json:"group"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

type NewSetting struct {
	Key         string
	Value       Document
	Group       string
	Description *string
}

type SettingPatch struct {
	Key         *string
	Value       Document
	Group       *string
	Description *string
}
