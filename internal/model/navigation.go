package model

import (
	"time"

	"github.com/google/uuid"
)

// NavigationEntry is one item of the app navigation menu.
type NavigationEntry struct {
	ID        uuid.UUID  `db:"id"         json:"id"`
	Label     string     `db:"label"      json:"label"`
	URL       string     `db:"url"        json:"url"`
	ParentID  *uuid.UUID `db:"parent_id"  json:"parent_id"`
	Order     int        `db:"order"      json:"order"`
	IsActive  bool       `db:"is_active"  json:"is_active"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

type NewNavigationEntry struct {
	Label    string
	URL      string
	ParentID *uuid.UUID
	Order    int
	IsActive bool
}

type NavigationEntryPatch struct {
	Label    *string
	URL      *string
	ParentID *uuid.UUID
	Order    *int
	IsActive *bool
}
