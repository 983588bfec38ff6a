package model

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	ID              uuid.UUID `db:"id"               json:"id"`
	Title           string    `db:"title"            json:"title"`
	Slug            string    `db:"slug"             json:"slug"`
	MetaDescription *string   `db:"meta_description" json:"meta_description"`
	Status          Status    `db:"status"           json:"status"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

// PageWithBlocks is a page with its content blocks embedded, ordered by Order.
type PageWithBlocks struct {
	Page
	ContentBlocks []ContentBlock `json:"content_blocks"`
}

// NewPage carries the fields a caller supplies when creating a page.
type NewPage struct {
	Title           string
	Slug            string
	MetaDescription *string
	Status          Status
}

// PagePatch is a partial page update; nil fields are left untouched.
type PagePatch struct {
	Title           *string
	Slug            *string
	MetaDescription *string
	Status          *Status
}
