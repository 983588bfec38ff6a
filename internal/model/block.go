package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentBlock is a unit of page content rendered in Order within its page.
type ContentBlock struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	PageID      uuid.UUID `db:"page_id"      json:"page_id"`
	Identifier  string    `db:"identifier"   json:"identifier"`
	ContentType string    `db:"content_type" json:"content_type"`
	Content     Document  `db:"content"      json:"content"`
	Order       int       `db:"order"        json:"order"`
	Status      Status    `db:"status"       json:"status"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

type NewContentBlock struct {
	PageID      uuid.UUID
	Identifier  string
	ContentType string
	Content     Document
	Order       int
	Status      Status
}

type ContentBlockPatch struct {
	PageID      *uuid.UUID
	Identifier  *string
	ContentType *string
	Content     Document
	Order       *int
	Status      *Status
}
